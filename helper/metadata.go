package helper

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FileMetadata 从文件名中提取出的排序键、标题和语言
type FileMetadata struct {
	Order string // 前导数字序号，无则为空
	Title string // 去掉序号前缀和语言后缀的剩余部分，不做 slug 化
	Lang  string // 文件名尾部的语言后缀，无则为空
}

// orderPattern 匹配前导数字加一个分隔符（下划线、连字符或空格）
var orderPattern = regexp.MustCompile(`^([0-9]+)([-_ ])`)

// ParseFileName 按固定模式解析文件或目录的基础名。
// 语言后缀只在 langs 集合内时才被识别；识别失败一律视为无语言，
// 由调用方回退到站点默认语言。
func ParseFileName(base string, langs []string) FileMetadata {
	name := base
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}

	meta := FileMetadata{Title: name}

	if m := orderPattern.FindStringSubmatch(name); m != nil {
		meta.Order = m[1]
		meta.Title = name[len(m[0]):]
	}

	// 语言后缀形如 -en、-de，必须位于标题末尾
	for _, l := range langs {
		suffix := "-" + l
		if strings.HasSuffix(meta.Title, suffix) && len(meta.Title) > len(suffix) {
			meta.Lang = l
			meta.Title = strings.TrimSuffix(meta.Title, suffix)
			break
		}
	}

	return meta
}
