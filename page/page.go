package page

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/share"
)

// NewPage 根据文件名元数据创建一个页面节点。
// Name 由标题 slug 化得到，序号前缀只保存在 Order 中，不参与标识。
// 语言缺失时回退到站点默认语言。
func NewPage(meta helper.FileMetadata, defaultLang string) *Page {
	lang := meta.Lang
	if lang == "" {
		lang = defaultLang
	}
	return &Page{
		Name:          helper.Slugify(meta.Title),
		Order:         meta.Order,
		Title:         meta.Title,
		Lang:          lang,
		InDefaultLang: lang == defaultLang,
		Status:        StatusPublished,
		subPages:      newOrderedPages(),
	}
}

// NewVirtualPage 为没有对应内容文件的目录创建占位节点
func NewVirtualPage(meta helper.FileMetadata, defaultLang string) *Page {
	p := NewPage(meta, defaultLang)
	p.Virtual = true
	return p
}

// NewRootPage 创建森林的虚拟根节点，层级为 0
func NewRootPage() *Page {
	root := &Page{
		Name:          share.ROOT_NAME,
		Title:         share.ROOT_TITLE,
		Lang:          share.DEFAULT_LANG,
		InDefaultLang: true,
		Status:        StatusPublished,
		subPages:      newOrderedPages(),
	}
	root.SetSlug(share.ROOT_SLUG)
	return root
}

// SubPages 按插入顺序返回直接子页面，不含隐藏页面和祖先
func (p *Page) SubPages() []*Page {
	if p.subPages == nil {
		return nil
	}
	return p.subPages.Values()
}

// SubPageNames 按插入顺序返回子页面的名称
func (p *Page) SubPageNames() []string {
	if p.subPages == nil {
		return nil
	}
	return p.subPages.Names()
}

// Len 直接子页面数量
func (p *Page) Len() int {
	if p.subPages == nil {
		return 0
	}
	return p.subPages.Len()
}

// HasChildren 是否存在子页面
func (p *Page) HasChildren() bool {
	return p.Len() > 0
}

// Has 判断是否存在指定名称的子页面
func (p *Page) Has(name string) bool {
	if p.subPages == nil {
		return false
	}
	_, ok := p.subPages.Get(name)
	return ok
}

// HasPage 判断某个页面是否为本页面的直接子页面（按名称归一化判断）
func (p *Page) HasPage(child *Page) bool {
	if child == nil {
		return false
	}
	return p.Has(child.Name)
}

// Child 按名称返回子页面，不存在时返回 NotFoundError
func (p *Page) Child(name string) (*Page, error) {
	if p.subPages != nil {
		if child, ok := p.subPages.Get(name); ok {
			return child, nil
		}
	}
	return nil, &NotFoundError{Parent: p.Name, Name: name}
}

// SetSubPage 写入或覆盖子页面映射条目。
// 只维护映射本身，父链接由扫描器统一负责。
func (p *Page) SetSubPage(child *Page) {
	if p.subPages == nil {
		p.subPages = newOrderedPages()
	}
	p.subPages.Set(child.Name, child)
}

// RemoveSubPage 从映射中移除指定名称的条目
func (p *Page) RemoveSubPage(name string) {
	if p.subPages != nil {
		p.subPages.Delete(name)
	}
}

// AdoptChildren 把 from 的所有子页面转移到本页面名下并改写它们的父链接。
// 用于真实页面替换虚拟占位、默认语言替换翻译的两种合并场景。
func (p *Page) AdoptChildren(from *Page) {
	if from == nil || from.subPages == nil {
		return
	}
	for _, sub := range from.subPages.Values() {
		p.SetSubPage(sub)
		sub.Parent = p
	}
}

// Ancestors 返回从直接父节点向上直到根的惰性序列。
// 每次调用都从当前的父链接重新开始。
func (p *Page) Ancestors() iter.Seq[*Page] {
	return func(yield func(*Page) bool) {
		for up := p.Parent; up != nil; up = up.Parent {
			if !yield(up) {
				return
			}
		}
	}
}

// Level 节点在层级中的深度，虚拟根节点为 0
func (p *Page) Level() int {
	level := 0
	for range p.Ancestors() {
		level++
	}
	return level
}

// Breadcrumbs 返回从最外层祖先到直接父节点的 (url, title) 序列，
// 不含无父的根节点，也不含自身
func (p *Page) Breadcrumbs() []Crumb {
	var crumbs []Crumb
	for up := range p.Ancestors() {
		if up.Parent != nil {
			crumbs = append(crumbs, Crumb{URL: up.URL(), Title: up.Title})
		}
	}
	// 从上到下反转
	for i, j := 0, len(crumbs)-1; i < j; i, j = i+1, j-1 {
		crumbs[i], crumbs[j] = crumbs[j], crumbs[i]
	}
	return crumbs
}

// HierarchyPath 层级路径：根以下的祖先名称加上自身名称，用 / 连接
func (p *Page) HierarchyPath() string {
	var names []string
	for up := range p.Ancestors() {
		if up.Parent != nil {
			names = append(names, up.Name)
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(append(names, p.Name), "/")
}

// URL 按层级路径和语言展开 URL 模板
func (p *Page) URL() string {
	template := share.PAGE_URL
	if !p.InDefaultLang {
		template = share.PAGE_LANG_URL
	}
	url := strings.ReplaceAll(template, "{hierarchy}", p.HierarchyPath())
	url = strings.ReplaceAll(url, "{lang}", p.Lang)
	return url
}

// Slug 页面的唯一标识。显式覆盖优先，否则用 > 连接层级链
func (p *Page) Slug() string {
	if p.slug != "" {
		return p.slug
	}
	var names []string
	for up := range p.Ancestors() {
		if up.Parent != nil {
			names = append(names, up.Name)
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(append(names, p.Name), ">")
}

// SetSlug 显式设置 slug，绕过派生规则
func (p *Page) SetSlug(slug string) {
	p.slug = slug
}

// Walk 前序遍历本节点及其子树
func (p *Page) Walk(visitor VisitorFunc) error {
	return p.walk(0, visitor)
}

func (p *Page) walk(depth int, visitor VisitorFunc) error {
	if err := visitor(p, depth); err != nil {
		return err
	}
	for _, child := range p.SubPages() {
		if err := child.walk(depth+1, visitor); err != nil {
			return err
		}
	}
	return nil
}

func (p *Page) String() string {
	return fmt.Sprintf("<Page %s>", p.URL())
}
