// site 把扫描、翻译整理和静态资源登记组装成一次完整的站点构建
package site

import (
	"strings"

	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/page"
)

// Context 一次构建产出的全部结果
type Context struct {
	Root               *page.Page   // 虚拟根节点，层级树的入口
	Pages              []*page.Page // 已发布和草稿的规范页面，按扫描顺序
	HiddenPages        []*page.Page // 隐藏的规范页面，不在树上
	Translations       []*page.Page // 可见页面的翻译变体
	HiddenTranslations []*page.Page // 隐藏页面的翻译变体
	StaticFiles        []string     // 登记到的静态资源相对路径
}

// Page 按名称查找规范页面
func (c *Context) Page(name string) *page.Page {
	for _, p := range c.Pages {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindByPath 按层级路径从根向下查找页面。
// 路径先做标准化，反斜杠和重复的分隔符都被接受。
func (c *Context) FindByPath(path string) *page.Page {
	current := c.Root
	for _, name := range strings.Split(helper.StandardizePath(path), "/") {
		if name == "" {
			continue
		}
		child, err := current.Child(name)
		if err != nil {
			return nil
		}
		current = child
	}
	if current == c.Root {
		return nil
	}
	return current
}

// TranslationsOf 返回指定名称页面的全部翻译变体，按扫描顺序
func (c *Context) TranslationsOf(name string) []*page.Page {
	var out []*page.Page
	for _, p := range c.Translations {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// FindBySlug 按 slug 查找页面，覆盖规范页面和翻译
func (c *Context) FindBySlug(slug string) *page.Page {
	for _, p := range c.Pages {
		if p.Slug() == slug {
			return p
		}
	}
	for _, p := range c.Translations {
		if p.Slug() == slug {
			return p
		}
	}
	return nil
}
