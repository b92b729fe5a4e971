package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/page"
	"github.com/sjzsdu/yeshu/page/tree"
)

// pageInfo 工具返回中页面的公共投影
type pageInfo struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Lang       string   `json:"lang"`
	Status     string   `json:"status"`
	URL        string   `json:"url"`
	Slug       string   `json:"slug"`
	Level      int      `json:"level"`
	Virtual    bool     `json:"virtual,omitempty"`
	SourcePath string   `json:"source_path,omitempty"`
	SubPages   []string `json:"sub_pages,omitempty"`
}

func toPageInfo(p *page.Page) pageInfo {
	return pageInfo{
		Name:       p.Name,
		Title:      p.Title,
		Lang:       p.Lang,
		Status:     string(p.Status),
		URL:        p.URL(),
		Slug:       p.Slug(),
		Level:      p.Level(),
		Virtual:    p.Virtual,
		SourcePath: p.SourcePath,
		SubPages:   p.SubPageNames(),
	}
}

func (s *SiteServer) registerTools() {
	s.srv.AddTool(mcp.NewTool("site_tree",
		mcp.WithDescription("渲染站点页面树的字符图"),
		mcp.WithString("root",
			mcp.Description("子树根页面的名称，省略时从虚拟根开始"),
		),
		mcp.WithBoolean("names",
			mcp.Description("用名称替代标题展示节点"),
		),
	), s.handleSiteTree)

	s.srv.AddTool(mcp.NewTool("site_pages",
		mcp.WithDescription("列出站点的全部页面"),
		mcp.WithBoolean("hidden",
			mcp.Description("改为列出隐藏页面"),
		),
		mcp.WithBoolean("translations",
			mcp.Description("改为列出翻译变体"),
		),
	), s.handleSitePages)

	s.srv.AddTool(mcp.NewTool("site_page",
		mcp.WithDescription("按名称返回单个页面的详细信息"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("页面名称"),
		),
		mcp.WithBoolean("content",
			mcp.Description("是否附带页面正文"),
		),
	), s.handleSitePage)

	s.srv.AddTool(mcp.NewTool("site_breadcrumbs",
		mcp.WithDescription("返回页面的面包屑导航，从最外层祖先到直接父节点"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("页面名称"),
		),
	), s.handleSiteBreadcrumbs)
}

func (s *SiteServer) handleSiteTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.site.Root
	if name := req.GetString("root", ""); name != "" {
		if root = s.site.Page(name); root == nil {
			return mcp.NewToolResultError("页面不存在: " + name), nil
		}
	}

	printItem := tree.Titles
	if req.GetBool("names", false) {
		printItem = tree.Names
	}
	return mcp.NewToolResultText(tree.Render(root, printItem)), nil
}

func (s *SiteServer) handleSitePages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pages := s.site.Pages
	if req.GetBool("hidden", false) {
		pages = s.site.HiddenPages
	} else if req.GetBool("translations", false) {
		pages = s.site.Translations
	}

	infos := make([]pageInfo, 0, len(pages))
	for _, p := range pages {
		infos = append(infos, toPageInfo(p))
	}
	return mcp.NewToolResultText(helper.ToJSON(infos)), nil
}

func (s *SiteServer) handleSitePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p := s.site.Page(name)
	if p == nil {
		return mcp.NewToolResultError("页面不存在: " + name), nil
	}

	info := struct {
		pageInfo
		Content string `json:"content,omitempty"`
	}{pageInfo: toPageInfo(p)}
	if req.GetBool("content", false) {
		info.Content = p.Content
	}
	return mcp.NewToolResultText(helper.ToJSON(info)), nil
}

func (s *SiteServer) handleSiteBreadcrumbs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p := s.site.Page(name)
	if p == nil {
		return mcp.NewToolResultError("页面不存在: " + name), nil
	}
	return mcp.NewToolResultText(helper.ToJSON(p.Breadcrumbs())), nil
}
