// mcpserver 把站点页面树通过 MCP 协议暴露给外部工具
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/sjzsdu/yeshu/share"
	"github.com/sjzsdu/yeshu/site"
)

// SiteServer 包装 MCP 服务器和它服务的站点上下文
type SiteServer struct {
	srv  *server.MCPServer
	site *site.Context
}

// NewSiteMCPServer 创建 MCP 服务器并注册全部站点工具
func NewSiteMCPServer(ctx *site.Context) *SiteServer {
	s := &SiteServer{
		srv: server.NewMCPServer(
			share.BUILDNAME,
			share.VERSION,
			server.WithToolCapabilities(true),
		),
		site: ctx,
	}
	s.registerTools()
	return s
}

// ServeStdio 在标准输入输出上提供服务，阻塞直到连接关闭
func (s *SiteServer) ServeStdio() error {
	return server.ServeStdio(s.srv)
}

// ServeHTTP 以 Streamable HTTP 传输在 addr 上提供服务
func (s *SiteServer) ServeHTTP(addr string) error {
	return server.NewStreamableHTTPServer(s.srv).Start(addr)
}

// ServeSSE 以 SSE 传输在 addr 上提供服务
func (s *SiteServer) ServeSSE(addr string) error {
	return server.NewSSEServer(s.srv).Start(addr)
}
