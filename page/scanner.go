package page

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/share"
)

// Options 扫描器的配置，全部来自外部设置
type Options struct {
	Extensions  []string        // 作为内容页面处理的扩展名
	Excludes    map[string]bool // 需要跳过的目录名
	DefaultLang string
	Languages   []string
	Reader      Reader
	Validator   Validator
}

// Scanner 递归扫描内容目录并装配页面树。
// 扫描是单线程的深度优先遍历：同级条目按文件名排序处理，
// 冲突解决规则依赖这个从左到右的顺序。
type Scanner struct {
	opts Options
}

// NewScanner 创建扫描器，未设置的选项回退到站点默认值
func NewScanner(opts Options) *Scanner {
	if len(opts.Extensions) == 0 {
		opts.Extensions = share.CONTENT_EXTENSIONS
	}
	if opts.Excludes == nil {
		opts.Excludes = share.EXCLUDED_DIRS
	}
	if opts.DefaultLang == "" {
		opts.DefaultLang = share.DEFAULT_LANG
	}
	if len(opts.Languages) == 0 {
		opts.Languages = share.LANGUAGES
	}
	return &Scanner{opts: opts}
}

// ScanDir 递归扫描 basePath/relPath，把发现的页面挂到 parent 下。
// 返回两个累积列表：已发布和草稿页面、隐藏页面。
// 可恢复的失败（解析错误、无效内容、未知状态）只记日志并跳过；
// 遇到既不是文件也不是目录的条目则中止整个扫描。
func (s *Scanner) ScanDir(basePath, relPath string, parent *Page) ([]*Page, []*Page, error) {
	var pages []*Page
	var hidden []*Page

	dirPath := filepath.Join(basePath, relPath)
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, nil, &ScanError{Path: relPath, Err: err}
	}

	// os.ReadDir 已按文件名排序
	for _, entry := range entries {
		name := entry.Name()
		absItem := filepath.Join(dirPath, name)
		relItem := filepath.Join(relPath, name)
		share.Debugf("扫描 %s", relItem)

		// 通过 Stat 跟随符号链接判断真实类型
		info, err := os.Stat(absItem)
		if err != nil {
			return nil, nil, &ScanError{Path: relItem, Err: err}
		}

		switch {
		case info.Mode().IsRegular():
			pg, ok := s.readFile(basePath, relItem, name)
			if !ok {
				continue
			}
			pages, hidden = s.placePage(pg, parent, relItem, pages, hidden)

		case info.IsDir():
			if s.opts.Excludes[name] {
				continue
			}
			dirPage, added := s.enterDir(name, relItem, parent)
			if added {
				pages = append(pages, dirPage)
			}
			subPages, subHidden, err := s.ScanDir(basePath, relItem, dirPage)
			if err != nil {
				return nil, nil, err
			}
			pages = append(pages, subPages...)
			hidden = append(hidden, subHidden...)

		default:
			return nil, nil, &ScanError{Path: relItem, Err: errors.New("既不是文件也不是目录")}
		}
	}

	return pages, hidden, nil
}

// readFile 读取并校验单个内容文件，失败时返回 ok=false
func (s *Scanner) readFile(basePath, relItem, name string) (*Page, bool) {
	if !helper.HasExtension(name, s.opts.Extensions) {
		share.Debugf("跳过 %s (未知扩展名)", relItem)
		return nil, false
	}

	pg, err := s.opts.Reader.Read(basePath, relItem)
	if err != nil {
		share.Warnf("无法处理 %s: %v", relItem, err)
		return nil, false
	}

	if s.opts.Validator != nil && !s.opts.Validator(pg, relItem) {
		share.Warnf("无效内容: %s", relItem)
		return nil, false
	}

	return pg, true
}

// placePage 解决同名冲突并按状态把页面放进树和结果列表
func (s *Scanner) placePage(pg *Page, parent *Page, relItem string, pages, hidden []*Page) ([]*Page, []*Page) {
	if old, err := parent.Child(pg.Name); err == nil {
		if old.Virtual {
			// 真实页面替换虚拟占位：继承其子页面，占位从树和列表中清除
			share.Debugf("用 %s 替换虚拟页面", pg)
			pg.AdoptChildren(old)
			parent.RemoveSubPage(pg.Name)
			pages = removePage(pages, old)
		} else if pg.InDefaultLang {
			// 默认语言页面取代已占位的翻译：翻译保留在扁平列表里，
			// 但从树上摘除
			pg.AdoptChildren(old)
			parent.RemoveSubPage(pg.Name)
		}
	}

	switch pg.Status {
	case StatusPublished:
		pages = append(pages, pg)
		pg.Parent = parent
		if pg.InDefaultLang {
			// 默认语言页面总是占据槽位，可能覆盖先处理的翻译
			parent.SetSubPage(pg)
		} else if !parent.Has(pg.Name) {
			// 翻译只在槽位空着时才进树
			parent.SetSubPage(pg)
		} else {
			share.Warnf("%s 下已存在 %s 的条目，翻译 %s 不进树", parent.Name, pg.Name, relItem)
		}

	case StatusHidden:
		// 隐藏页面不挂到父节点的映射上，只进隐藏列表
		hidden = append(hidden, pg)

	case StatusDraft:
		pages = append(pages, pg)

	default:
		share.Warnf("未知状态 '%s'，跳过文件 %s", pg.Status, relItem)
	}

	return pages, hidden
}

// enterDir 为目录准备递归下降用的父节点。
// 已有同名子页面（比如目录的索引文件先被扫到）时复用它，
// 否则插入一个新的虚拟占位节点。added 表示是否新建了占位。
func (s *Scanner) enterDir(name, relItem string, parent *Page) (*Page, bool) {
	meta := helper.ParseFileName(name, s.opts.Languages)
	dirPage := NewVirtualPage(meta, s.opts.DefaultLang)
	dirPage.SourcePath = relItem
	dirPage.Parent = parent

	if existing, err := parent.Child(dirPage.Name); err == nil {
		share.Debugf("目录 %s 复用已有页面 %s", relItem, existing)
		return existing, false
	}

	share.Debugf("目录 %s 作为虚拟页面 %s", relItem, dirPage.Name)
	parent.SetSubPage(dirPage)
	return dirPage, true
}

// removePage 按指针相等从列表中移除页面
func removePage(pages []*Page, target *Page) []*Page {
	for i, p := range pages {
		if p == target {
			return append(pages[:i], pages[i+1:]...)
		}
	}
	return pages
}
