package site

import (
	"fmt"
	"os"

	"github.com/sjzsdu/yeshu/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var ExportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "把页面树导出为大纲文件",
	Long: `export 命令把页面树导出为文本、Markdown 或 PDF 大纲。

格式省略时根据输出文件扩展名推断。

示例：
  yeshu site export -o outline.txt     # 导出文本大纲
  yeshu site export -o outline.md      # 导出 Markdown 大纲
  yeshu site export -o outline.pdf     # 导出 PDF 大纲
  yeshu site export handbook -o h.md   # 只导出指定子树`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func init() {
	ExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "导出格式 (txt, md, pdf)")
	ExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "输出文件路径")
}

func runExport(cmd *cobra.Command, args []string) {
	if exportOut == "" {
		fmt.Fprintln(os.Stderr, "必须通过 --out 指定输出文件")
		os.Exit(1)
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	target, err := GetTargetPage(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := export.Export(target, exportFormat, exportOut); err != nil {
		fmt.Fprintf(os.Stderr, "导出失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("已导出到 %s\n", exportOut)
}
