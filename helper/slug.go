package helper

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugTransformer 去掉组合变音符号，使带重音的标题得到稳定的 slug
var slugTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Slugify 将标题转换为稳定的标识符：小写、去变音符号、
// 非字母数字折叠为单个连字符
func Slugify(title string) string {
	normalized, _, err := transform.String(slugTransformer, title)
	if err != nil {
		normalized = title
	}

	var b strings.Builder
	lastHyphen := true // 抑制开头的连字符
	for _, r := range strings.ToLower(normalized) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
