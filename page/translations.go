package page

import "github.com/sjzsdu/yeshu/share"

// ProcessTranslations 把扁平页面列表按名称分组，拆成规范页面和翻译变体。
// 每组的规范页面优先取默认语言的那个，没有时取先出现的；
// 其余成员进入翻译列表。两个返回列表都保持原有的相对顺序。
func ProcessTranslations(pages []*Page) ([]*Page, []*Page) {
	canonical := make(map[string]*Page)

	// 第一遍确定每个名称的规范页面
	for _, p := range pages {
		existing, ok := canonical[p.Name]
		if !ok {
			canonical[p.Name] = p
			continue
		}
		if !existing.InDefaultLang && p.InDefaultLang {
			canonical[p.Name] = p
		} else if existing.InDefaultLang && p.InDefaultLang && existing != p {
			share.Warnf("名称 %s 有多个默认语言页面，保留 %s", p.Name, existing.SourcePath)
		}
	}

	var index []*Page
	var translations []*Page
	for _, p := range pages {
		if canonical[p.Name] == p {
			index = append(index, p)
		} else {
			translations = append(translations, p)
		}
	}
	return index, translations
}

// BackfillTranslations 为没能进树的翻译补齐子页面映射：
// 把同名规范页面当前的子页面以共享引用的方式拷贝过来，
// 使翻译页面也能导航到相同的子树。子页面的父链接保持指向规范页面。
func BackfillTranslations(index []*Page, translations []*Page) {
	byName := make(map[string]*Page, len(index))
	for _, p := range index {
		byName[p.Name] = p
	}

	for _, t := range translations {
		orig, ok := byName[t.Name]
		if !ok {
			share.Debugf("翻译 %s 没有对应的规范页面", t.Name)
			continue
		}
		for _, sub := range orig.SubPages() {
			t.SetSubPage(sub)
		}
	}
}
