package export

import (
	"fmt"
	"strings"
)

// Formatter 把大纲条目转换为特定格式的文本
type Formatter interface {
	Header(title string) string
	Line(e Entry) string
	Footer() string
	Extension() string
}

type textFormatter struct{}

func (textFormatter) Header(title string) string {
	return title + "\n" + strings.Repeat("=", len(title)) + "\n\n"
}

func (textFormatter) Line(e Entry) string {
	indent := strings.Repeat("  ", e.Depth-1)
	marker := ""
	if e.Page.Virtual {
		marker = " *"
	}
	return fmt.Sprintf("%s%s%s\n", indent, e.Page.Title, marker)
}

func (textFormatter) Footer() string { return "" }

func (textFormatter) Extension() string { return "txt" }

type markdownFormatter struct{}

func (markdownFormatter) Header(title string) string {
	return "# " + title + "\n\n"
}

func (markdownFormatter) Line(e Entry) string {
	indent := strings.Repeat("  ", e.Depth-1)
	return fmt.Sprintf("%s- [%s](%s)\n", indent, e.Page.Title, e.Page.URL())
}

func (markdownFormatter) Footer() string { return "" }

func (markdownFormatter) Extension() string { return "md" }

// formatters 已注册的文本类格式
var formatters = map[string]Formatter{
	"txt": textFormatter{},
	"md":  markdownFormatter{},
}
