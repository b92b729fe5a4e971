package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T, base, rel, content string) {
	t.Helper()
	path := filepath.Join(base, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newTestGenerator 构造一个不依赖全局配置的生成器
func newTestGenerator(basePath string) *Generator {
	return &Generator{
		BasePath:    basePath,
		ContentDirs: []string{"content"},
		DefaultLang: "en",
		Languages:   []string{"en", "de"},
		Extensions:  []string{"md"},
		Excludes:    map[string]bool{".git": true},
	}
}

func TestGenerateContext(t *testing.T) {
	base := t.TempDir()
	writeContent(t, base, "content/01_guide.md", "Title: Guide\n\nguide body\n")
	writeContent(t, base, "content/guide/install.md", "Title: Install\n\ninstall body\n")
	writeContent(t, base, "content/about.md", "Title: About\n\nabout body\n")
	writeContent(t, base, "content/about-de.md", "Title: About\nLang: de\n\nde body\n")
	writeContent(t, base, "content/secret.md", "Title: Secret\nStatus: hidden\n\nshh\n")
	writeContent(t, base, "content/logo.png", "binary")

	ctx, err := newTestGenerator(base).GenerateContext()
	require.NoError(t, err)

	// 树结构：扫描顺序决定根的子页面排列
	assert.Equal(t, []string{"guide", "about"}, ctx.Root.SubPageNames())

	guide, err := ctx.Root.Child("guide")
	require.NoError(t, err)
	assert.False(t, guide.Virtual)
	assert.Equal(t, []string{"install"}, guide.SubPageNames())

	// 德语翻译先占槽位，默认语言的 about.md 随后取代它
	about, err := ctx.Root.Child("about")
	require.NoError(t, err)
	assert.True(t, about.InDefaultLang)
	require.Len(t, ctx.Translations, 1)
	assert.Equal(t, "de", ctx.Translations[0].Lang)

	names := make([]string, 0, len(ctx.Pages))
	for _, p := range ctx.Pages {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "guide")
	assert.Contains(t, names, "about")
	assert.Contains(t, names, "install")

	require.Len(t, ctx.HiddenPages, 1)
	assert.Equal(t, "secret", ctx.HiddenPages[0].Name)

	require.Len(t, ctx.StaticFiles, 1)
	assert.Equal(t, filepath.Join("content", "logo.png"), ctx.StaticFiles[0])
}

func TestGenerateContextTranslationBackfill(t *testing.T) {
	base := t.TempDir()
	// 同名页面的德语翻译：标题相同，名称才会相同
	writeContent(t, base, "content/setup.md", "Title: Setup\n\nen\n")
	writeContent(t, base, "content/setup-de.md", "Title: Setup\nLang: de\n\nde\n")
	writeContent(t, base, "content/setup/step.md", "Title: Step\n\nstep\n")

	ctx, err := newTestGenerator(base).GenerateContext()
	require.NoError(t, err)

	require.Len(t, ctx.Translations, 1)
	translation := ctx.Translations[0]
	assert.Equal(t, "de", translation.Lang)

	// 翻译补齐了规范页面的子页面，且引用共享
	require.Equal(t, []string{"step"}, translation.SubPageNames())
	canonical := ctx.Page("setup")
	require.NotNil(t, canonical)
	canonicalStep, _ := canonical.Child("step")
	translationStep, _ := translation.Child("step")
	assert.Same(t, canonicalStep, translationStep)
	assert.Same(t, canonical, canonicalStep.Parent)
}

func TestGenerateContextTitleOverrideMergesDir(t *testing.T) {
	base := t.TempDir()
	writeContent(t, base, "content/guide.md", "Title: User Guide\n\ng\n")
	writeContent(t, base, "content/guide/install.md", "Title: Install\n\ni\n")

	ctx, err := newTestGenerator(base).GenerateContext()
	require.NoError(t, err)

	// 标题覆盖不改变标识：guide.md 仍然替换同名目录的虚拟占位
	require.Equal(t, []string{"guide"}, ctx.Root.SubPageNames())
	guide, err := ctx.Root.Child("guide")
	require.NoError(t, err)
	assert.False(t, guide.Virtual)
	assert.Equal(t, "User Guide", guide.Title)
	assert.Equal(t, []string{"install"}, guide.SubPageNames())

	for _, p := range ctx.Pages {
		assert.False(t, p.Virtual)
	}
}

func TestGenerateContextMissingContentDir(t *testing.T) {
	ctx, err := newTestGenerator(t.TempDir()).GenerateContext()
	require.NoError(t, err)
	assert.Empty(t, ctx.Pages)
	assert.Empty(t, ctx.Root.SubPageNames())
}

func TestGenerateContextMultipleDirs(t *testing.T) {
	base := t.TempDir()
	writeContent(t, base, "content/one.md", "Title: One\n\nx\n")
	writeContent(t, base, "extra/two.md", "Title: Two\n\ny\n")

	g := newTestGenerator(base)
	g.ContentDirs = []string{"content", "extra"}
	ctx, err := g.GenerateContext()
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, ctx.Root.SubPageNames())
}

func TestContextLookups(t *testing.T) {
	base := t.TempDir()
	writeContent(t, base, "content/guide.md", "Title: Guide\n\ng\n")
	writeContent(t, base, "content/guide/install.md", "Title: Install\n\ni\n")

	ctx, err := newTestGenerator(base).GenerateContext()
	require.NoError(t, err)

	assert.NotNil(t, ctx.Page("guide"))
	assert.Nil(t, ctx.Page("missing"))

	install := ctx.FindBySlug("guide>install")
	require.NotNil(t, install)
	assert.Equal(t, "install", install.Name)
	assert.Nil(t, ctx.FindBySlug("no>such"))
}

func TestContextFindByPath(t *testing.T) {
	base := t.TempDir()
	writeContent(t, base, "content/guide.md", "Title: Guide\n\ng\n")
	writeContent(t, base, "content/guide/install.md", "Title: Install\n\ni\n")

	ctx, err := newTestGenerator(base).GenerateContext()
	require.NoError(t, err)

	install := ctx.FindByPath("guide/install")
	require.NotNil(t, install)
	assert.Equal(t, "install", install.Name)

	// 路径先被标准化：反斜杠和重复分隔符都能接受
	assert.Same(t, install, ctx.FindByPath("/guide//install"))
	assert.Same(t, install, ctx.FindByPath("guide\\install"))

	assert.Nil(t, ctx.FindByPath("guide/missing"))
	assert.Nil(t, ctx.FindByPath(""))
	assert.Nil(t, ctx.FindByPath("/"))
}

func TestContextTranslationsOf(t *testing.T) {
	base := t.TempDir()
	writeContent(t, base, "content/setup.md", "Title: Setup\n\nen\n")
	writeContent(t, base, "content/setup-de.md", "Title: Setup\nLang: de\n\nde\n")

	ctx, err := newTestGenerator(base).GenerateContext()
	require.NoError(t, err)

	variants := ctx.TranslationsOf("setup")
	require.Len(t, variants, 1)
	assert.Equal(t, "de", variants[0].Lang)
	assert.Empty(t, ctx.TranslationsOf("missing"))
}
