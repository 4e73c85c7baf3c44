package payslip

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF lays the same sections as FormatText out on one A4 page.
func RenderPDF(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title.String("payslip"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, s := range sections(p) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, title.String(s.title), "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, r := range s.rows {
			pdf.CellFormat(100, 7, r.label, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, r.value, "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
