package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/page"
	"github.com/sjzsdu/yeshu/site"
)

func newToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textFromResult(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, r)
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// newTestServer 手工装配一个小站点：root -> guide -> install
func newTestServer() *SiteServer {
	root := page.NewRootPage()
	guide := page.NewPage(helper.FileMetadata{Title: "Guide"}, "en")
	guide.Content = "guide body"
	install := page.NewPage(helper.FileMetadata{Title: "Install"}, "en")

	root.SetSubPage(guide)
	guide.Parent = root
	guide.SetSubPage(install)
	install.Parent = guide

	hiddenPage := page.NewPage(helper.FileMetadata{Title: "Secret"}, "en")
	hiddenPage.Status = page.StatusHidden

	return NewSiteMCPServer(&site.Context{
		Root:        root,
		Pages:       []*page.Page{guide, install},
		HiddenPages: []*page.Page{hiddenPage},
	})
}

func TestSiteTreeTool(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()

	res, err := s.handleSiteTree(ctx, newToolRequest("site_tree", map[string]any{}))
	require.NoError(t, err)
	text := textFromResult(t, res)
	assert.Contains(t, text, "Home")
	assert.Contains(t, text, "├── Guide")
	assert.Contains(t, text, "└── Install")
}

func TestSiteTreeSubtree(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()

	res, err := s.handleSiteTree(ctx, newToolRequest("site_tree", map[string]any{"root": "guide", "names": true}))
	require.NoError(t, err)
	text := textFromResult(t, res)
	assert.Contains(t, text, "guide")
	assert.Contains(t, text, "install")
	assert.NotContains(t, text, "Home")
}

func TestSiteTreeUnknownRoot(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()

	res, err := s.handleSiteTree(ctx, newToolRequest("site_tree", map[string]any{"root": "missing"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestSitePagesTool(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()

	res, err := s.handleSitePages(ctx, newToolRequest("site_pages", map[string]any{}))
	require.NoError(t, err)

	var infos []pageInfo
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "guide", infos[0].Name)
	assert.Equal(t, "guide.html", infos[0].URL)
	assert.Equal(t, []string{"install"}, infos[0].SubPages)

	// 隐藏页面单独列出
	res, err = s.handleSitePages(ctx, newToolRequest("site_pages", map[string]any{"hidden": true}))
	require.NoError(t, err)
	infos = nil
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "secret", infos[0].Name)
}

func TestSitePageTool(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()

	res, err := s.handleSitePage(ctx, newToolRequest("site_page", map[string]any{"name": "guide", "content": true}))
	require.NoError(t, err)

	var info struct {
		pageInfo
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &info))
	assert.Equal(t, "Guide", info.Title)
	assert.Equal(t, "guide body", info.Content)

	// 缺少 name 参数
	res, err = s.handleSitePage(ctx, newToolRequest("site_page", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	// 不存在的页面
	res, err = s.handleSitePage(ctx, newToolRequest("site_page", map[string]any{"name": "missing"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestSiteBreadcrumbsTool(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()

	res, err := s.handleSiteBreadcrumbs(ctx, newToolRequest("site_breadcrumbs", map[string]any{"name": "install"}))
	require.NoError(t, err)

	var crumbs []page.Crumb
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &crumbs))
	require.Len(t, crumbs, 1)
	assert.Equal(t, "Guide", crumbs[0].Title)
	assert.Equal(t, "guide.html", crumbs[0].URL)
}
