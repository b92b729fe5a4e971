package site

import (
	"fmt"
	"os"
	"strings"

	"github.com/sjzsdu/yeshu/page"
	"github.com/sjzsdu/yeshu/site"
)

// 共享的站点上下文
var sharedContext *site.Context

// SetSharedContext 设置共享的站点上下文
func SetSharedContext(ctx *site.Context) {
	sharedContext = ctx
}

// GetContext 返回共享的站点上下文，缺失时直接退出
func GetContext() *site.Context {
	if sharedContext == nil {
		fmt.Fprintln(os.Stderr, "错误: 未找到共享的站点上下文")
		os.Exit(1)
	}
	return sharedContext
}

// GetTargetPage 根据参数获取对应的页面节点：空值返回根节点，
// 带路径分隔符的参数按层级路径解析，其余按名称查找
func GetTargetPage(name string) (*page.Page, error) {
	ctx := GetContext()
	if name == "" {
		return ctx.Root, nil
	}
	if strings.ContainsAny(name, "/\\") {
		if p := ctx.FindByPath(name); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("找不到路径: %s", name)
	}
	if p := ctx.Page(name); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("找不到页面: %s", name)
}
