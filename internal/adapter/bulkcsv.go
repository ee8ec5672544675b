package adapter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"supplementdb/internal/catalog"
	"supplementdb/internal/normalizer"
)

// BulkCSV streams a CSV export of the Open Food Facts bulk dump. The dump
// covers all of groceries, so rows are kept only when a category or name
// column matches a supplement keyword. Columns ending in _100g are
// collected as nutriments; everything else passes through keyed by its
// header name.
type BulkCSV struct {
	r io.Reader
}

func NewBulkCSV(r io.Reader) *BulkCSV { return &BulkCSV{r: r} }

func (b *BulkCSV) Tag() string { return catalog.SourceBulkCSV }

var bulkSupplementKeywords = []string{
	"supplement", "vitamin", "mineral", "multivitamin",
	"omega-3", "omega-6", "probiotic", "protein powder",
	"collagen", "biotin", "calcium", "iron", "zinc",
	"magnesium", "fish oil", "cod liver", "glucosamine",
	"chondroitin", "coq10", "coenzyme", "melatonin",
	"ashwagandha", "turmeric", "curcumin", "elderberry",
	"echinacea", "ginseng", "ginkgo", "st john",
	"dietary supplement", "nutritional supplement",
	"food supplement", "herbal supplement",
}

// Columns checked against the keyword list, when present.
var bulkFilterColumns = []string{"categories_en", "categories_tags", "product_name_en", "product_name"}

func (b *BulkCSV) Records(ctx context.Context, emit func(raw map[string]any) error) error {
	cr := csv.NewReader(b.r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("bulk csv: read header: %w", err)
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				log.Warn().Int("line", line).Err(err).Msg("bulk csv: malformed row skipped")
				continue
			}
			return fmt.Errorf("bulk csv: read row %d: %w", line, err)
		}

		raw, nutriments := splitBulkRow(header, row)
		if !isBulkSupplement(raw) {
			continue
		}
		raw[normalizer.NutrimentsKey] = nutriments

		if err := emit(raw); err != nil {
			return err
		}
	}
}

func splitBulkRow(header, row []string) (raw, nutriments map[string]any) {
	raw = make(map[string]any, len(row))
	nutriments = make(map[string]any)
	for i, col := range header {
		if i >= len(row) {
			break
		}
		val := strings.TrimSpace(row[i])
		if val == "" {
			continue
		}
		if strings.HasSuffix(col, "_100g") {
			nutriments[col] = val
			continue
		}
		raw[col] = val
	}
	return raw, nutriments
}

func isBulkSupplement(raw map[string]any) bool {
	for _, col := range bulkFilterColumns {
		val, _ := raw[col].(string)
		if val == "" {
			continue
		}
		lower := strings.ToLower(val)
		for _, kw := range bulkSupplementKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
