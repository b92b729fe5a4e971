package site

import (
	"fmt"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/sjzsdu/yeshu/helper/renders"
	"github.com/sjzsdu/yeshu/lang"
	"github.com/sjzsdu/yeshu/page"
	"github.com/sjzsdu/yeshu/page/tree"
	"github.com/spf13/cobra"
)

var BrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "交互式浏览页面树",
	Long: `browse 命令启动一个交互式会话，按目录方式浏览页面树。

可用的指令：
  ls            列出当前页面的子页面
  cd <name>     进入子页面，cd .. 返回上级
  tree          显示当前页面的子树
  info          显示当前页面的详细信息
  crumbs        显示当前页面的面包屑
  cat           渲染当前页面的正文
  exit          退出会话`,
	Run: runBrowse,
}

// browser 交互会话的游标状态
type browser struct {
	current *page.Page
}

func runBrowse(cmd *cobra.Command, args []string) {
	b := &browser{current: GetContext().Root}

	p := prompt.New(
		b.execute,
		b.complete,
		prompt.OptionPrefix("yeshu> "),
		prompt.OptionLivePrefix(b.livePrefix),
		prompt.OptionTitle("yeshu browse"),
	)
	p.Run()
}

func (b *browser) livePrefix() (string, bool) {
	return b.current.Name + "> ", true
}

func (b *browser) execute(input string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "ls":
		for _, sub := range b.current.SubPages() {
			marker := ""
			if sub.HasChildren() {
				marker = "/"
			}
			fmt.Printf("%s%s\t%s\n", sub.Name, marker, sub.Title)
		}

	case "cd":
		if len(fields) < 2 {
			b.current = GetContext().Root
			return
		}
		b.enter(fields[1])

	case "tree":
		fmt.Print(tree.Render(b.current, tree.Titles))

	case "info":
		fmt.Printf("名称:   %s\n", b.current.Name)
		fmt.Printf("标题:   %s\n", b.current.Title)
		fmt.Printf("语言:   %s\n", b.current.Lang)
		fmt.Printf("状态:   %s\n", b.current.Status)
		fmt.Printf("层级:   %d\n", b.current.Level())
		fmt.Printf("URL:    %s\n", b.current.URL())
		fmt.Printf("Slug:   %s\n", b.current.Slug())
		if b.current.SourcePath != "" {
			fmt.Printf("来源:   %s\n", b.current.SourcePath)
		}

	case "crumbs":
		for _, crumb := range b.current.Breadcrumbs() {
			fmt.Printf("%s (%s)\n", crumb.Title, crumb.URL)
		}

	case "cat":
		if b.current.Content == "" {
			fmt.Println("当前页面没有正文")
			return
		}
		if renderer, err := renders.NewMarkdownRenderer(); err == nil {
			fmt.Print(renderer.Render(b.current.Content))
		} else {
			fmt.Print(b.current.Content)
		}

	case "exit", "quit":
		fmt.Println(lang.T("Interactive session terminated"))
		os.Exit(0)

	default:
		fmt.Println("未知指令: " + fields[0])
	}
}

func (b *browser) enter(name string) {
	if name == ".." {
		if b.current.Parent != nil {
			b.current = b.current.Parent
		}
		return
	}
	child, err := b.current.Child(name)
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}
	b.current = child
}

func (b *browser) complete(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	if strings.HasPrefix(text, "cd ") {
		suggests := make([]prompt.Suggest, 0, b.current.Len())
		for _, sub := range b.current.SubPages() {
			suggests = append(suggests, prompt.Suggest{Text: sub.Name, Description: sub.Title})
		}
		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
	}

	commands := []prompt.Suggest{
		{Text: "ls", Description: "列出子页面"},
		{Text: "cd", Description: "进入子页面"},
		{Text: "tree", Description: "显示子树"},
		{Text: "info", Description: "页面详情"},
		{Text: "crumbs", Description: "面包屑"},
		{Text: "cat", Description: "渲染正文"},
		{Text: "exit", Description: "退出"},
	}
	return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
}
