package config

import (
	"strings"

	"github.com/sjzsdu/yeshu/share"
)

// 站点级配置的类型化读取，键与 yeshu config 命令的标志一一对应

// DefaultLang 站点默认语言
func DefaultLang() string {
	return GetConfigWithDefault("default_lang", share.DEFAULT_LANG)
}

// Languages 文件名后缀可识别的语言集合
func Languages() []string {
	value := GetConfig("languages")
	if value == "" {
		return share.LANGUAGES
	}
	return splitList(value)
}

// ContentDirs 内容根目录，允许逗号分隔的多个路径
func ContentDirs() []string {
	value := GetConfig("content_dirs")
	if value == "" {
		return []string{"content"}
	}
	return splitList(value)
}

// Extensions 作为内容页面处理的扩展名
func Extensions() []string {
	value := GetConfig("extensions")
	if value == "" {
		return share.CONTENT_EXTENSIONS
	}
	return splitList(value)
}

// Excludes 扫描时排除的目录名集合，在默认集合上追加
func Excludes() map[string]bool {
	excludes := make(map[string]bool, len(share.EXCLUDED_DIRS))
	for name, ok := range share.EXCLUDED_DIRS {
		excludes[name] = ok
	}
	for _, name := range splitList(GetConfig("excludes")) {
		excludes[name] = true
	}
	return excludes
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
