package site

import (
	"fmt"
	"log"
	"os"

	"github.com/sjzsdu/yeshu/mcpserver"
	"github.com/spf13/cobra"
)

var (
	mcpTransport string
	mcpPortFlag  string
)

var MCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "以 MCP 服务器的形式暴露页面树",
	Long: `mcp 命令启动一个 MCP 服务器，把站点页面树暴露给外部工具。

示例：
  yeshu site mcp                       # 使用 STDIO 传输启动
  yeshu site mcp --transport http      # 使用 HTTP 传输启动
  yeshu site mcp --transport sse       # 使用 SSE 传输启动
  yeshu site mcp --port 9000           # 指定端口启动`,
	Run: runMCPServer,
}

func init() {
	MCPCmd.Flags().StringVar(&mcpTransport, "transport", "", "传输方式 (stdio, http, sse)，默认为 stdio")
	MCPCmd.Flags().StringVar(&mcpPortFlag, "port", "8080", "HTTP/SSE 服务器端口，默认为 8080")
}

func runMCPServer(cmd *cobra.Command, args []string) {
	srv := mcpserver.NewSiteMCPServer(GetContext())

	transport := mcpTransport
	if transport == "" {
		transport = os.Getenv("MCP_TRANSPORT")
	}

	port := mcpPortFlag
	if envPort := os.Getenv("MCP_PORT"); envPort != "" {
		port = envPort
	}

	switch transport {
	case "http":
		fmt.Printf("使用 HTTP 传输，端口: %s\n", port)
		if err := srv.ServeHTTP(":" + port); err != nil {
			log.Fatalf("HTTP 服务器启动失败: %v", err)
		}
	case "sse":
		fmt.Printf("使用 SSE 传输，端口: %s\n", port)
		if err := srv.ServeSSE(":" + port); err != nil {
			log.Fatalf("SSE 服务器启动失败: %v", err)
		}
	default:
		fmt.Println("使用 STDIO 传输，等待客户端连接...")
		if err := srv.ServeStdio(); err != nil {
			log.Fatalf("STDIO 服务器启动失败: %v", err)
		}
	}
}
