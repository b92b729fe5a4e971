// export 把页面树导出为大纲文件，支持文本、Markdown 和 PDF 三种格式
package export

import "github.com/sjzsdu/yeshu/page"

// Entry 大纲中的一行：一个页面及其相对根的深度
type Entry struct {
	Page  *page.Page
	Depth int
}

// Outline 前序展开以 root 为根的树，root 本身不计入
func Outline(root *page.Page) []Entry {
	var entries []Entry
	root.Walk(func(p *page.Page, depth int) error {
		if depth == 0 {
			return nil
		}
		entries = append(entries, Entry{Page: p, Depth: depth})
		return nil
	})
	return entries
}
