package site

import (
	"fmt"
	"os"

	"github.com/sjzsdu/yeshu/page/tree"
	"github.com/spf13/cobra"
)

var (
	showNames bool
	showStats bool
)

var TreeCmd = &cobra.Command{
	Use:   "tree [name]",
	Short: "显示页面树的树状结构",
	Long: `tree 命令以树状结构显示站点的页面层级。

子页面严格按照扫描时的插入顺序展示。

示例：
  yeshu site tree                      # 显示完整页面树
  yeshu site tree handbook             # 显示指定页面的子树
  yeshu site tree --names              # 用名称替代标题展示
  yeshu site tree --stats              # 显示统计信息`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTree,
}

func init() {
	TreeCmd.Flags().BoolVarP(&showNames, "names", "n", false, "用名称替代标题展示节点")
	TreeCmd.Flags().BoolVarP(&showStats, "stats", "s", false, "显示统计信息")
}

func runTree(cmd *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	target, err := GetTargetPage(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	printItem := tree.Titles
	if showNames {
		printItem = tree.Names
	}
	fmt.Print(tree.Render(target, printItem))

	if showStats {
		stats := tree.Stats(target)
		fmt.Printf("\n%s\n", stats.String())
	}
}
