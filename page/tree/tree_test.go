package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/page"
)

func makePage(title string) *page.Page {
	return page.NewPage(helper.FileMetadata{Title: title}, "en")
}

func buildTree() *page.Page {
	root := page.NewRootPage()
	guide := makePage("Guide")
	install := makePage("Install")
	usage := makePage("Usage")
	about := makePage("About")

	root.SetSubPage(guide)
	guide.Parent = root
	guide.SetSubPage(install)
	install.Parent = guide
	guide.SetSubPage(usage)
	usage.Parent = guide
	root.SetSubPage(about)
	about.Parent = root
	return root
}

func TestRender(t *testing.T) {
	output := Render(buildTree(), Titles)

	expected := strings.Join([]string{
		"Home",
		"├── Guide",
		"│   ├── Install",
		"│   └── Usage",
		"└── About",
		"",
	}, "\n")
	assert.Equal(t, expected, output)
}

func TestRenderNames(t *testing.T) {
	output := Render(buildTree(), Names)
	assert.Contains(t, output, "guide")
	assert.Contains(t, output, "install")
	assert.NotContains(t, output, "Guide")
}

func TestRenderInsertionOrder(t *testing.T) {
	root := page.NewRootPage()
	// 按非字母顺序插入
	for _, title := range []string{"Zeta", "Alpha", "Mid"} {
		p := makePage(title)
		root.SetSubPage(p)
		p.Parent = root
	}

	output := Render(root, Titles)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Zeta")
	assert.Contains(t, lines[2], "Alpha")
	assert.Contains(t, lines[3], "Mid")
}

func TestRenderNil(t *testing.T) {
	assert.Equal(t, "", Render(nil, Titles))
}

func TestStats(t *testing.T) {
	root := buildTree()
	virtual := page.NewVirtualPage(helper.FileMetadata{Title: "Section"}, "en")
	root.SetSubPage(virtual)
	virtual.Parent = root

	stats := Stats(root)
	assert.Equal(t, 5, stats.TotalPages)
	assert.Equal(t, 1, stats.VirtualPages)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.Equal(t, "5 pages (1 virtual), max depth 2", stats.String())
}

// TestRenderRoundTrip 从渲染输出的连接符位置反推邻接关系，
// 应与源树的前序遍历完全一致
func TestRenderRoundTrip(t *testing.T) {
	root := buildTree()
	output := Render(root, Names)

	// 每行的深度由连接符前的前缀宽度决定（每级 4 个字符）
	type flat struct {
		name  string
		depth int
	}
	var parsed []flat
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		depth := 0
		rest := line
		for {
			if strings.HasPrefix(rest, "│   ") {
				depth++
				rest = strings.TrimPrefix(rest, "│   ")
				continue
			}
			if strings.HasPrefix(rest, "    ") {
				depth++
				rest = strings.TrimPrefix(rest, "    ")
				continue
			}
			if strings.HasPrefix(rest, "├── ") {
				depth++
				rest = strings.TrimPrefix(rest, "├── ")
			} else if strings.HasPrefix(rest, "└── ") {
				depth++
				rest = strings.TrimPrefix(rest, "└── ")
			}
			break
		}
		parsed = append(parsed, flat{name: rest, depth: depth})
	}

	var expected []flat
	require.NoError(t, root.Walk(func(p *page.Page, depth int) error {
		expected = append(expected, flat{name: p.Name, depth: depth})
		return nil
	}))
	assert.Equal(t, expected, parsed)
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(page.NewRootPage())
	assert.Equal(t, 0, stats.TotalPages)
	assert.Equal(t, 0, stats.MaxDepth)
}
