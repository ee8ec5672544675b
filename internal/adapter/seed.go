package adapter

import (
	"context"

	"supplementdb/internal/catalog"
)

// Seed emits a built-in set of common generic supplements with typical
// label compositions. They carry no real barcode, so the normalizer
// assigns each a synthetic GENERIC_* one; running the seed twice is a
// no-op thanks to upsert semantics.
type Seed struct{}

func NewSeed() *Seed { return &Seed{} }

func (s *Seed) Tag() string { return catalog.SourceManual }

func (s *Seed) Records(ctx context.Context, emit func(raw map[string]any) error) error {
	for _, record := range seedSupplements() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(record); err != nil {
			return err
		}
	}
	return nil
}

func seedSupplements() []map[string]any {
	return []map[string]any{
		{
			"name":         "Multivitamin",
			"brand":        "Generic",
			"category":     "Multivitamin",
			"serving_size": "1",
			"serving_unit": "serving",
			"nutriments": map[string]any{
				"Vitamin A":   900.0,
				"Vitamin C":   90.0,
				"Vitamin D":   20.0,
				"Vitamin E":   15.0,
				"Thiamine":    1.2,
				"Riboflavin":  1.3,
				"Niacin":      16.0,
				"Vitamin B6":  1.7,
				"Folate":      400.0,
				"Vitamin B12": 2.4,
			},
		},
		{
			"name":         "Vitamin D3",
			"brand":        "Generic",
			"category":     "Single Vitamin",
			"serving_size": "1",
			"serving_unit": "softgel",
			"nutriments": map[string]any{
				"Vitamin D3": 50.0,
			},
		},
		{
			"name":         "Omega-3 Fish Oil",
			"brand":        "Generic",
			"category":     "Fatty Acids",
			"serving_size": "2",
			"serving_unit": "softgels",
			"nutriments": map[string]any{
				"EPA":           360.0,
				"DHA":           240.0,
				"Total Omega-3": 600.0,
			},
		},
		{
			"name":         "Probiotic",
			"brand":        "Generic",
			"category":     "Probiotic",
			"serving_size": "1",
			"serving_unit": "capsule",
			"nutriments": map[string]any{
				"Probiotic Blend": 10.0,
			},
		},
		{
			"name":         "Calcium + Vitamin D",
			"brand":        "Generic",
			"category":     "Mineral",
			"serving_size": "1",
			"serving_unit": "serving",
			"nutriments": map[string]any{
				"Calcium":    600.0,
				"Vitamin D3": 10.0,
			},
		},
		{
			"name":         "Magnesium Glycinate",
			"brand":        "Generic",
			"category":     "Mineral",
			"serving_size": "1",
			"serving_unit": "serving",
			"nutriments": map[string]any{
				"Magnesium": 200.0,
			},
		},
		{
			"name":         "B-Complex",
			"brand":        "Generic",
			"category":     "B Vitamins",
			"serving_size": "1",
			"serving_unit": "serving",
			"nutriments": map[string]any{
				"Thiamine (B1)":    50.0,
				"Riboflavin (B2)":  50.0,
				"Niacin (B3)":      50.0,
				"Vitamin B6":       50.0,
				"Folate":           400.0,
				"Vitamin B12":      50.0,
				"Biotin":           300.0,
				"Pantothenic Acid": 50.0,
			},
		},
	}
}
