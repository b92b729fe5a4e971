package share

import (
	"fmt"
	"os"
	"sync/atomic"
)

var debugMode atomic.Bool

// SetDebug 设置全局调试模式
func SetDebug(enabled bool) {
	debugMode.Store(enabled)
}

// GetDebug 返回当前调试模式
func GetDebug() bool {
	return debugMode.Load()
}

// Debugf 调试信息，仅在调试模式下输出
func Debugf(format string, args ...any) {
	if !GetDebug() {
		return
	}
	fmt.Fprintf(os.Stderr, "[debug] "+BUILDNAME+" - "+format+"\n", args...)
}

// Infof 一般信息
func Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[info] "+BUILDNAME+" - "+format+"\n", args...)
}

// Warnf 警告信息，对应可恢复的异常情况
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[warn] "+BUILDNAME+" - "+format+"\n", args...)
}
