package tree

import (
	"fmt"

	"github.com/sjzsdu/yeshu/page"
)

// Statistics 页面树的统计信息
type Statistics struct {
	TotalPages   int // 总节点数（不含根）
	VirtualPages int // 虚拟占位节点数量
	MaxDepth     int // 最大层级深度
}

// Stats 返回以 node 为根的子树统计信息，node 本身不计入
func Stats(node *page.Page) Statistics {
	stats := Statistics{}
	if node == nil {
		return stats
	}
	for _, child := range node.SubPages() {
		collectStats(child, 1, &stats)
	}
	return stats
}

func collectStats(p *page.Page, depth int, stats *Statistics) {
	stats.TotalPages++
	if p.Virtual {
		stats.VirtualPages++
	}
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for _, child := range p.SubPages() {
		collectStats(child, depth+1, stats)
	}
}

// String 返回统计信息的字符串表示
func (s Statistics) String() string {
	return fmt.Sprintf("%d pages (%d virtual), max depth %d",
		s.TotalPages, s.VirtualPages, s.MaxDepth)
}
