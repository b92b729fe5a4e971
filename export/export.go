package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/sjzsdu/yeshu/page"
)

// Export 把以 root 为根的页面树导出到 outputPath。
// format 可选 txt、md、pdf，空值时根据输出文件扩展名推断。
func Export(root *page.Page, format, outputPath string) error {
	if format == "" {
		if idx := strings.LastIndex(outputPath, "."); idx >= 0 {
			format = outputPath[idx+1:]
		}
	}

	if format == "pdf" {
		return ExportPDF(root, outputPath)
	}

	formatter, ok := formatters[format]
	if !ok {
		return fmt.Errorf("不支持的导出格式: %s", format)
	}

	var b strings.Builder
	b.WriteString(formatter.Header(root.Title))
	for _, e := range Outline(root) {
		b.WriteString(formatter.Line(e))
	}
	b.WriteString(formatter.Footer())

	return os.WriteFile(outputPath, []byte(b.String()), 0644)
}
