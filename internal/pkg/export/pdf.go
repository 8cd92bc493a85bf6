package export

import (
	"fmt"
	"net/http"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the report as a simple landscape table, one row per data
// row, with the metadata preamble as a title block.
func WritePDF(w http.ResponseWriter, filename string, data []map[string]interface{}, headers []Header, meta *Metadata) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if meta != nil {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 8, meta.ReportName, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		if meta.Period != "" {
			pdf.CellFormat(0, 6, "Period: "+meta.Period, "", 1, "L", false, 0, "")
		}
		if meta.GeneratedDate != "" {
			pdf.CellFormat(0, 6, "Generated: "+meta.GeneratedDate, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(headers))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 7, h.Label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data {
		for _, h := range headers {
			pdf.CellFormat(colWidth, 6, escapeCell(row[h.Key]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".pdf"))
	return pdf.Output(w)
}

func escapeCell(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
