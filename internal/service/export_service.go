package service

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"supplementdb/internal/dto"
	"supplementdb/internal/infra"
	"supplementdb/internal/model"
	"supplementdb/internal/repository"
)

// ExportService renders the full supplement store into its distribution
// formats: a JSON dump, a generated Go source file for embedding into a
// client binary, and a printable PDF fact report. All three stream rows
// in barcode order.
type ExportService struct {
	repo repository.SupplementRepository
}

func NewExportService(repo repository.SupplementRepository) *ExportService {
	return &ExportService{repo: repo}
}

// WriteJSON streams the whole store as one JSON array of supplement
// objects. Returns the number of supplements written.
func (s *ExportService) WriteJSON(ctx context.Context, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0

	bw.WriteString("[")
	err := s.repo.ExportAll(ctx, func(m model.Supplement) error {
		b, err := json.Marshal(dto.FromModel(m))
		if err != nil {
			return fmt.Errorf("encode %s: %w", m.Barcode, err)
		}
		if count > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  ")
		bw.Write(b)
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	if count > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return count, bw.Flush()
}

// WriteGoSource generates a self-contained Go source file embedding the
// store as a barcode-keyed map, for compiling a preloaded database into
// a client app. The generated package has no imports beyond strings.
func (s *ExportService) WriteGoSource(ctx context.Context, w io.Writer, pkg string) (int, error) {
	if pkg == "" {
		pkg = "preloaded"
	}
	bw := bufio.NewWriter(w)
	count := 0

	fmt.Fprintf(bw, "// Code generated by supplementdb export; DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package %s\n\n", pkg)
	bw.WriteString("import \"strings\"\n\n")
	bw.WriteString(generatedTypes)
	bw.WriteString("// Supplements is the preloaded database, keyed by barcode.\nvar Supplements = map[string]Supplement{\n")

	err := s.repo.ExportAll(ctx, func(m model.Supplement) error {
		writeGoSupplement(bw, m)
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	bw.WriteString("}\n")
	bw.WriteString(generatedFuncs)
	return count, bw.Flush()
}

const generatedTypes = `type Nutrient struct {
	Name   string
	Amount float64
	Unit   string
	// DailyValue is the percent of the reference daily intake; 0 means no
	// reference value exists for this nutrient.
	DailyValue float64
}

type Supplement struct {
	Barcode     string
	Name        string
	Brand       string
	Category    string
	ServingSize string
	ServingUnit string
	Nutrients   []Nutrient
}

`

const generatedFuncs = `
// Lookup returns the supplement with the given barcode.
func Lookup(barcode string) (Supplement, bool) {
	s, ok := Supplements[barcode]
	return s, ok
}

// Search returns supplements whose name contains query, case-insensitively.
func Search(query string) []Supplement {
	q := strings.ToLower(query)
	var out []Supplement
	for _, s := range Supplements {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
`

func writeGoSupplement(w io.Writer, m model.Supplement) {
	fmt.Fprintf(w, "\t%s: {\n", strconv.Quote(m.Barcode))
	fmt.Fprintf(w, "\t\tBarcode: %s,\n", strconv.Quote(m.Barcode))
	fmt.Fprintf(w, "\t\tName: %s,\n", strconv.Quote(m.Name))
	writeGoOptField(w, "Brand", m.Brand)
	writeGoOptField(w, "Category", m.Category)
	writeGoOptField(w, "ServingSize", m.ServingSize)
	writeGoOptField(w, "ServingUnit", m.ServingUnit)
	if len(m.Nutrients) > 0 {
		fmt.Fprintf(w, "\t\tNutrients: []Nutrient{\n")
		for _, n := range m.Nutrients {
			dv := 0.0
			if n.DailyValue != nil {
				dv = *n.DailyValue
			}
			fmt.Fprintf(w, "\t\t\t{Name: %s, Amount: %s, Unit: %s, DailyValue: %s},\n",
				strconv.Quote(n.Name), goFloat(n.Amount), strconv.Quote(n.Unit), goFloat(dv))
		}
		fmt.Fprintf(w, "\t\t},\n")
	}
	fmt.Fprintf(w, "\t},\n")
}

func writeGoOptField(w io.Writer, field string, v *string) {
	if v == nil || *v == "" {
		return
	}
	fmt.Fprintf(w, "\t\t%s: %s,\n", field, strconv.Quote(*v))
}

func goFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WritePDF renders the fact report to path. Returns the number of
// supplements rendered.
func (s *ExportService) WritePDF(ctx context.Context, path, title string) (int, error) {
	report := infra.NewFactReport(title)
	err := s.repo.ExportAll(ctx, func(m model.Supplement) error {
		report.Add(dto.FromModel(m))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return report.Save(path)
}
