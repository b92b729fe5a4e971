package site

import (
	"os"
	"path/filepath"

	"github.com/sjzsdu/yeshu/config"
	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/page"
	"github.com/sjzsdu/yeshu/page/tree"
	"github.com/sjzsdu/yeshu/reader"
	"github.com/sjzsdu/yeshu/share"
)

// Generator 驱动一次站点构建，配置来自显式选项，零值回退到站点配置
type Generator struct {
	BasePath    string   // 站点根目录
	ContentDirs []string // 相对于站点根目录的内容目录
	DefaultLang string
	Languages   []string
	Extensions  []string
	Excludes    map[string]bool
	Reader      page.Reader
	Validator   page.Validator
}

// NewGenerator 创建生成器，未显式给出的选项从站点配置读取
func NewGenerator(basePath string) *Generator {
	return &Generator{
		BasePath:    basePath,
		ContentDirs: config.ContentDirs(),
		DefaultLang: config.DefaultLang(),
		Languages:   config.Languages(),
		Extensions:  config.Extensions(),
		Excludes:    config.Excludes(),
	}
}

// GenerateContext 执行完整构建：扫描所有内容目录、整理翻译、
// 为翻译补齐子页面映射、登记静态资源。
// 任意内容目录的扫描失败都会中止整个构建。
func (g *Generator) GenerateContext() (*Context, error) {
	rd := g.Reader
	if rd == nil {
		rd = reader.New(g.DefaultLang, g.Languages)
	}

	scanner := page.NewScanner(page.Options{
		Extensions:  g.Extensions,
		Excludes:    g.Excludes,
		DefaultLang: g.DefaultLang,
		Languages:   g.Languages,
		Reader:      rd,
		Validator:   g.Validator,
	})

	root := page.NewRootPage()
	var allPages []*page.Page
	var allHidden []*page.Page

	for _, dir := range g.ContentDirs {
		base := filepath.Join(g.BasePath, dir)
		if _, err := os.Stat(base); err != nil {
			share.Warnf("内容目录 %s 不可用: %v", dir, err)
			continue
		}
		pages, hidden, err := scanner.ScanDir(base, "", root)
		if err != nil {
			return nil, err
		}
		allPages = append(allPages, pages...)
		allHidden = append(allHidden, hidden...)
	}

	index, translations := page.ProcessTranslations(allPages)
	hiddenIndex, hiddenTranslations := page.ProcessTranslations(allHidden)
	page.BackfillTranslations(index, translations)

	ctx := &Context{
		Root:               root,
		Pages:              index,
		HiddenPages:        hiddenIndex,
		Translations:       translations,
		HiddenTranslations: hiddenTranslations,
		StaticFiles:        g.collectStatic(),
	}

	if share.GetDebug() {
		share.Debugf("页面树:\n%s", tree.Render(root, tree.Titles))
	}
	return ctx, nil
}

// collectStatic 登记内容目录下的静态资源，只记路径不做解析
func (g *Generator) collectStatic() []string {
	var files []string
	for _, dir := range g.ContentDirs {
		base := filepath.Join(g.BasePath, dir)
		filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if g.Excludes[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if helper.HasExtension(d.Name(), share.STATIC_EXTENSIONS) {
				rel, err := filepath.Rel(g.BasePath, path)
				if err == nil {
					files = append(files, rel)
				}
			}
			return nil
		})
	}
	return files
}
