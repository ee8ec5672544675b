package infra

// pdf.go — printable supplement fact report using go-pdf/fpdf.
// One block per supplement: name, brand, barcode and provenance, followed
// by a nutrient table (canonical name, amount, unit, %DV). Intended for
// reviewing an import batch on paper, not as a consumer-facing label.

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"supplementdb/internal/dto"
)

// FactReport accumulates supplements into an A4 PDF document.
type FactReport struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	contentW float64
	count    int
}

func NewFactReport(title string) *FactReport {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// Core fonts are cp1252; names and units carry µ and friends.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	return &FactReport{pdf: pdf, tr: tr, contentW: contentW}
}

// Add renders one supplement block.
func (r *FactReport) Add(s dto.SupplementExport) {
	pdf := r.pdf

	// Keep a block from starting at the very bottom of a page
	if _, pageH := pdf.GetPageSize(); pdf.GetY() > pageH-50 {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(r.contentW, 6, r.tr(s.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	meta := s.Barcode
	if s.Brand != nil {
		meta = *s.Brand + "  ·  " + meta
	}
	if s.Source != "" {
		meta += "  ·  " + s.Source
	}
	pdf.CellFormat(r.contentW, 4, r.tr(meta), "", 1, "L", false, 0, "")

	if s.ServingSize != nil {
		serving := "Serving: " + *s.ServingSize
		if s.ServingUnit != nil {
			serving += " " + *s.ServingUnit
		}
		pdf.CellFormat(r.contentW, 4, serving, "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)

	if len(s.Nutrients) > 0 {
		col1 := r.contentW * 0.50
		col2 := r.contentW * 0.20
		col3 := r.contentW * 0.14
		col4 := r.contentW * 0.16

		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(col1, 5, "Nutrient", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "Amount", "B", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 5, "Unit", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, "% DV", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, n := range s.Nutrients {
			dv := "—"
			if n.DailyValue != nil {
				dv = fmt.Sprintf("%.1f%%", *n.DailyValue)
			}
			pdf.CellFormat(col1, 5, r.tr(n.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, fmt.Sprintf("%g", n.Amount), "", 0, "R", false, 0, "")
			pdf.CellFormat(col3, 5, " "+r.tr(n.Unit), "", 0, "L", false, 0, "")
			pdf.CellFormat(col4, 5, r.tr(dv), "", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(4)
	r.count++
}

// Save writes the document. Returns the number of supplements rendered.
func (r *FactReport) Save(path string) (int, error) {
	if err := r.pdf.OutputFileAndClose(path); err != nil {
		return 0, fmt.Errorf("pdf: write %s: %w", path, err)
	}
	return r.count, nil
}
