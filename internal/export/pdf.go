package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// DefaultPDFName is the PDF file name used when the user gives none.
const DefaultPDFName = "trip_plan.pdf"

// core fonts are cp1252; map the few symbols we emit that it lacks
var pdfReplacer = strings.NewReplacer("→", "->", "–", "-", "…", "...")

// BuildPDF renders a one-page printable summary of doc.
func BuildPDF(doc Document, currency string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	txt := func(s string) string { return tr(pdfReplacer.Replace(s)) }
	money := func(v float64) string { return txt(fmt.Sprintf("%.2f %s", v, currency)) }

	pdf.SetTitle("Trip plan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP PLAN")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 7, txt("Route: "+strings.Join(doc.Route, " -> ")), "", "", false)
	pdf.Cell(0, 7, fmt.Sprintf("Days per city: %d", doc.Days))
	pdf.Ln(7)
	pdf.Cell(0, 7, txt("Transport: "+doc.Transport))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	widths := []float64{34, 62, 30, 30, 34}
	headers := []string{"City", "Hotel / Food", "Per unit", "Total", "Sight"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range doc.Breakdown {
		pdf.CellFormat(widths[0], 6, txt(c.City), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, txt(c.Hotel.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, money(c.Hotel.PerNight), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, money(c.Hotel.Total), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, txt(c.Sight), "", 0, "L", false, 0, "")
		pdf.Ln(-1)
		pdf.CellFormat(widths[0], 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, txt(c.Food.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, money(c.Food.PerDay), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, money(c.Food.Total), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	rows := []struct {
		label string
		value float64
	}{
		{"Transport", doc.Costs.Transport},
		{"Food", doc.Costs.Food},
		{"Hotels", doc.Costs.Hotel},
	}
	for _, r := range rows {
		pdf.CellFormat(60, 7, r.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, money(r.value), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(60, 9, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, money(doc.Costs.Total), "T", 0, "R", false, 0, "")
	pdf.Ln(-1)

	return pdf
}

// WritePDF writes the printable summary of doc to path and returns the
// absolute path written.
func WritePDF(path string, doc Document, currency string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	pdf := BuildPDF(doc, currency)
	if err := pdf.OutputFileAndClose(abs); err != nil {
		return "", fmt.Errorf("writing pdf: %w", err)
	}
	return abs, nil
}
