package site

import (
	"fmt"
	"os"

	"github.com/sjzsdu/yeshu/helper/renders"
	"github.com/spf13/cobra"
)

var PreviewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "在终端中预览页面内容",
	Long: `preview 命令把页面正文按 Markdown 渲染后输出到终端。

示例：
  yeshu site preview getting-started`,
	Args: cobra.ExactArgs(1),
	Run:  runPreview,
}

func runPreview(cmd *cobra.Command, args []string) {
	target, err := GetTargetPage(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if target.Virtual {
		fmt.Printf("页面 %s 是目录占位节点，没有正文\n", target.Name)
		return
	}

	renderer, err := renders.NewMarkdownRenderer()
	if err != nil {
		fmt.Print(target.Content)
		return
	}
	fmt.Print(renderer.Render(target.Content))
}
