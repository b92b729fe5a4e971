package site

import (
	"fmt"

	"github.com/sjzsdu/yeshu/page"
	"github.com/spf13/cobra"
)

var (
	listHidden       bool
	listTranslations bool
	listDrafts       bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出站点的页面",
	Long: `list 命令按扫描顺序列出站点的页面。

示例：
  yeshu site list                      # 列出规范页面
  yeshu site list --hidden             # 列出隐藏页面
  yeshu site list --translations       # 列出翻译变体
  yeshu site list --drafts             # 只列出草稿`,
	Run: runList,
}

func init() {
	ListCmd.Flags().BoolVarP(&listHidden, "hidden", "a", false, "列出隐藏页面")
	ListCmd.Flags().BoolVarP(&listTranslations, "translations", "t", false, "列出翻译变体")
	ListCmd.Flags().BoolVarP(&listDrafts, "drafts", "", false, "只列出草稿")
}

func runList(cmd *cobra.Command, args []string) {
	ctx := GetContext()

	pages := ctx.Pages
	if listHidden {
		pages = ctx.HiddenPages
	} else if listTranslations {
		pages = ctx.Translations
	}

	for _, p := range pages {
		if listDrafts && p.Status != page.StatusDraft {
			continue
		}
		fmt.Printf("%-30s %-6s %-10s %s\n", p.Name, p.Lang, p.Status, p.URL())
	}
}
