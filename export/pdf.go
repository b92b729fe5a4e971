package export

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/sjzsdu/yeshu/page"
)

// ExportPDF 把页面树导出为 PDF 大纲，每个条目按深度缩进
func ExportPDF(root *page.Page, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, root.Title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, e := range Outline(root) {
		pdf.SetX(10 + float64(e.Depth-1)*6)
		style := ""
		if e.Page.HasChildren() {
			style = "B"
		}
		pdf.SetFontStyle(style)
		pdf.CellFormat(0, 7, e.Page.Title, "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(outputPath)
}
