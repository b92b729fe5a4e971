package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/yeshu/helper"
)

func makePage(title, lang string) *Page {
	return NewPage(helper.FileMetadata{Title: title, Lang: lang}, "en")
}

func TestProcessTranslations(t *testing.T) {
	setupEN := makePage("setup", "en")
	setupDE := makePage("setup", "de")
	guideDE := makePage("guide", "de")
	about := makePage("about", "en")

	index, translations := ProcessTranslations([]*Page{setupDE, setupEN, guideDE, about})

	// 默认语言优先成为规范页面，只有翻译的组取先出现的
	assert.Equal(t, []*Page{setupEN, guideDE, about}, index)
	assert.Equal(t, []*Page{setupDE}, translations)
}

func TestProcessTranslationsFirstDefaultWins(t *testing.T) {
	first := makePage("setup", "en")
	second := makePage("setup", "en")

	index, translations := ProcessTranslations([]*Page{first, second})
	require.Len(t, index, 1)
	assert.Same(t, first, index[0])
	assert.Equal(t, []*Page{second}, translations)
}

func TestProcessTranslationsEmpty(t *testing.T) {
	index, translations := ProcessTranslations(nil)
	assert.Empty(t, index)
	assert.Empty(t, translations)
}

func TestBackfillTranslations(t *testing.T) {
	canonical := makePage("setup", "en")
	child := makePage("child", "en")
	canonical.SetSubPage(child)
	child.Parent = canonical

	translation := makePage("setup", "de")

	BackfillTranslations([]*Page{canonical}, []*Page{translation})

	// 翻译拿到与规范页面共享的子页面引用
	require.Equal(t, []string{"child"}, translation.SubPageNames())
	got, err := translation.Child("child")
	require.NoError(t, err)
	assert.Same(t, child, got)

	// 子页面的父链接仍然指向规范页面
	assert.Same(t, canonical, child.Parent)
}

func TestBackfillTranslationsNoCanonical(t *testing.T) {
	orphan := makePage("lonely", "de")
	BackfillTranslations(nil, []*Page{orphan})
	assert.Empty(t, orphan.SubPageNames())
}
