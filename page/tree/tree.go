// tree 把页面树渲染为类似 Unix tree 命令的字符图
package tree

import (
	"strings"

	"github.com/sjzsdu/yeshu/page"
)

// PrintItem 节点的展示投影，返回一行中节点自身的文本
type PrintItem func(p *page.Page) string

// Titles 以标题展示节点
func Titles(p *page.Page) string {
	return p.Title
}

// Names 以名称展示节点
func Names(p *page.Page) string {
	return p.Name
}

// Render 渲染以 node 为根的树状图。
// 子节点严格按照子页面映射的插入顺序输出，不做重新排序；
// 最后一个子节点用转角连接符，其余用丁字连接符。
func Render(node *page.Page, printItem PrintItem) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	render(node, &b, "", "", printItem)
	return b.String()
}

func render(node *page.Page, b *strings.Builder, prefix, connector string, printItem PrintItem) {
	b.WriteString(prefix + connector + printItem(node) + "\n")

	children := node.SubPages()
	last := len(children) - 1
	for i, child := range children {
		childPrefix := prefix
		switch connector {
		case "├── ":
			childPrefix += "│   "
		case "└── ":
			childPrefix += "    "
		}
		if i == last {
			render(child, b, childPrefix, "└── ", printItem)
		} else {
			render(child, b, childPrefix, "├── ", printItem)
		}
	}
}
