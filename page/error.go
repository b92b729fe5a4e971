// NotFoundError 与 ScanError 封装页面树操作中的错误信息
package page

import "fmt"

// NotFoundError 按名称查找子页面失败
type NotFoundError struct {
	Parent string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("页面 '%s' 下没有名为 '%s' 的子页面", e.Parent, e.Name)
}

// ScanError 扫描目录时遇到的致命错误
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("扫描错误 [%s]: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
