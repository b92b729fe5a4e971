package cmd

import (
	"fmt"
	"os"

	siteSubcommand "github.com/sjzsdu/yeshu/cmd/site"
	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/lang"
	"github.com/sjzsdu/yeshu/share"
	"github.com/sjzsdu/yeshu/site"
	"github.com/spf13/cobra"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "站点页面树工具",
	Long: `site 命令围绕站点内容目录构建层级页面树，并提供查看和导出功能。

可用的子命令：
  tree     显示页面树的树状结构
  list     列出全部页面
  preview  在终端中预览页面内容
  export   把页面树导出为大纲文件
  browse   交互式浏览页面树
  mcp      以 MCP 服务器的形式暴露页面树

示例：
  yeshu site tree                      # 显示当前目录站点的页面树
  yeshu site tree --stats              # 同时显示统计信息
  yeshu site export -o outline.pdf     # 导出 PDF 大纲`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// 在执行任何子命令之前，先构建站点上下文
		ctx, err := buildSiteContext()
		if err != nil {
			fmt.Fprintf(os.Stderr, "构建站点失败: %v\n", err)
			os.Exit(1)
		}
		siteSubcommand.SetSharedContext(ctx)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(siteCmd)

	siteCmd.AddCommand(siteSubcommand.TreeCmd)
	siteCmd.AddCommand(siteSubcommand.ListCmd)
	siteCmd.AddCommand(siteSubcommand.PreviewCmd)
	siteCmd.AddCommand(siteSubcommand.ExportCmd)
	siteCmd.AddCommand(siteSubcommand.BrowseCmd)
	siteCmd.AddCommand(siteSubcommand.MCPCmd)

	siteCmd.PersistentFlags().StringSliceVarP(&contentDirs, "content", "c", nil, lang.T("Content directory path"))
	siteCmd.PersistentFlags().StringVarP(&defaultLang, "default-lang", "l", "", lang.T("Default language"))
	siteCmd.PersistentFlags().StringSliceVarP(&languages, "languages", "L", nil, lang.T("Languages recognized in file names"))
	siteCmd.PersistentFlags().StringSliceVarP(&excludeDirs, "exclude", "x", nil, lang.T("Directory names to exclude"))
}

// buildSiteContext 根据全局标志准备生成器并执行一次完整构建。
// 指定了 --repository 时先克隆仓库，用克隆目录替代工作目录。
func buildSiteContext() (*site.Context, error) {
	basePath := workDir
	if repoURL != "" {
		if helper.IsGitRoot(basePath) {
			share.Warnf("指定了 --repository，工作目录 %s 下的 git 仓库被忽略", basePath)
		}
		cloned, err := helper.CloneContent(repoURL)
		if err != nil {
			return nil, err
		}
		basePath = cloned
	}

	generator := site.NewGenerator(basePath)
	if len(contentDirs) > 0 {
		generator.ContentDirs = contentDirs
	}
	if defaultLang != "" {
		generator.DefaultLang = defaultLang
	}
	if len(languages) > 0 {
		generator.Languages = languages
	}
	if len(excludeDirs) > 0 {
		for _, name := range excludeDirs {
			generator.Excludes[name] = true
		}
	}
	return generator.GenerateContext()
}
