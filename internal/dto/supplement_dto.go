package dto

import (
	"github.com/shopspring/decimal"

	"supplementdb/internal/model"
)

// NutrientExport is one nutrient inside the export/API shape. Field names
// and nesting are a compatibility contract with the consuming app — do not
// rename.
type NutrientExport struct {
	Name       string   `json:"name"`
	Amount     float64  `json:"amount"`
	Unit       string   `json:"unit"`
	DailyValue *float64 `json:"daily_value,omitempty"`
}

// SupplementExport is the nested supplement + nutrients object produced by
// the export operation and by the read API.
type SupplementExport struct {
	Barcode     string           `json:"barcode"`
	Name        string           `json:"name"`
	Brand       *string          `json:"brand"`
	Category    *string          `json:"category"`
	ServingSize *string          `json:"serving_size"`
	ServingUnit *string          `json:"serving_unit"`
	Ingredients *string          `json:"ingredients"`
	Warnings    *string          `json:"warnings,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Source      string           `json:"source,omitempty"`
	Nutrients   []NutrientExport `json:"nutrients"`
}

// FromModel flattens a persisted supplement into the export shape.
func FromModel(s model.Supplement) SupplementExport {
	out := SupplementExport{
		Barcode:     s.Barcode,
		Name:        s.Name,
		Brand:       s.Brand,
		Category:    s.Category,
		ServingSize: s.ServingSize,
		ServingUnit: s.ServingUnit,
		Ingredients: s.Ingredients,
		Warnings:    s.Warnings,
		ImageURL:    s.ImageURL,
		Description: s.Description,
		Price:       s.Price,
		Source:      s.Source,
		Nutrients:   make([]NutrientExport, 0, len(s.Nutrients)),
	}
	for _, n := range s.Nutrients {
		out.Nutrients = append(out.Nutrients, NutrientExport{
			Name:       n.Name,
			Amount:     n.Amount,
			Unit:       n.Unit,
			DailyValue: n.DailyValue,
		})
	}
	return out
}

// SearchRequest binds the query parameters of GET /v1/supplements.
type SearchRequest struct {
	Query string `form:"query" validate:"required,min=2"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=100"`
}
