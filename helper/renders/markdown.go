package renders

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 把 Markdown 内容渲染为终端可读文本
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer 创建一个新的 Markdown 渲染器
func NewMarkdownRenderer() (*MarkdownRenderer, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化 Markdown 渲染器失败: %v", err)
	}

	return &MarkdownRenderer{renderer: renderer}, nil
}

// Render 渲染内容，渲染失败时返回原始内容
func (m *MarkdownRenderer) Render(content string) string {
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
