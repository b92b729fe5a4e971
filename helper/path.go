package helper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/yeshu/share"
)

// StandardizePath 标准化路径
func StandardizePath(path string) string {
	cleanPath := path
	if len(cleanPath) > 0 && cleanPath[0] != '/' {
		cleanPath = "/" + cleanPath
	}

	// 处理 Windows 路径分隔符
	cleanPath = strings.ReplaceAll(cleanPath, "\\", "/")

	// 处理多余的 /
	prevPath := ""
	for prevPath != cleanPath {
		prevPath = cleanPath
		cleanPath = strings.ReplaceAll(cleanPath, "//", "/")
	}

	return cleanPath
}

// GetPath 返回用户配置目录下指定名称的路径，name 为空时返回目录本身
func GetPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, share.PATH)
	if name == "" {
		return dir
	}
	return filepath.Join(dir, name)
}

// HasExtension 检查文件名的扩展名是否在给定集合中（不含点，忽略大小写）
func HasExtension(name string, extensions []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if e == "*" || strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
