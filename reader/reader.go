// reader 解析内容文件头部的元数据块并生成页面节点
package reader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sjzsdu/yeshu/helper"
	"github.com/sjzsdu/yeshu/page"
)

// headerPattern 匹配一行 "Key: Value" 形式的元数据
var headerPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z_-]*):\s*(.*)$`)

// FrontMatterReader 从文件头部读取 "Key: Value" 元数据块。
// 元数据块到第一个空行为止，之后的内容作为正文原样保留。
// 文件名提供默认的标题、序号和语言，元数据可以覆盖其中一部分。
type FrontMatterReader struct {
	defaultLang string
	languages   []string
}

// New 创建内容读取器
func New(defaultLang string, languages []string) *FrontMatterReader {
	return &FrontMatterReader{
		defaultLang: defaultLang,
		languages:   languages,
	}
}

// Read 读取 basePath/relPath 并返回填充好的页面节点。
// 文件不存在或首行不是合法的元数据行时返回错误，由扫描器决定跳过。
func (r *FrontMatterReader) Read(basePath, relPath string) (*page.Page, error) {
	f, err := os.Open(filepath.Join(basePath, relPath))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta := helper.ParseFileName(filepath.Base(relPath), r.languages)
	pg := page.NewPage(meta, r.defaultLang)
	pg.SourcePath = relPath

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	first := true
	inHeader := true
	var body strings.Builder
	for scanner.Scan() {
		line := scanner.Text()

		if inHeader {
			if strings.TrimSpace(line) == "" {
				inHeader = false
				continue
			}
			m := headerPattern.FindStringSubmatch(line)
			if m == nil {
				if first {
					return nil, fmt.Errorf("文件 %s 缺少元数据头", relPath)
				}
				// 元数据块中间的坏行：当作正文开始
				inHeader = false
				body.WriteString(line + "\n")
				continue
			}
			first = false
			r.applyField(pg, strings.ToLower(m[1]), strings.TrimSpace(m[2]))
			continue
		}

		body.WriteString(line + "\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	pg.Content = body.String()
	return pg, nil
}

// applyField 把一条元数据应用到页面上，未知键被忽略
func (r *FrontMatterReader) applyField(pg *page.Page, key, value string) {
	switch key {
	case "title":
		// 标题只影响展示，Name 保持由文件名派生，
		// 否则同名目录的占位合并会失配
		pg.Title = value
	case "status":
		pg.Status = page.Status(strings.ToLower(value))
	case "lang":
		pg.Lang = value
		pg.InDefaultLang = value == r.defaultLang
	case "slug":
		pg.SetSlug(value)
	case "order":
		pg.Order = value
	}
}
