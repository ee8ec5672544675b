// Package normalizer turns one raw vendor record into a canonical
// Supplement plus its Nutrient rows. It is a pure transform: no I/O, no
// store access — adapters fetch, the normalizer shapes, the repository
// persists.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"supplementdb/internal/catalog"
	"supplementdb/internal/model"
)

// ErrMissingName rejects records without a usable display name. A barcode
// alone is not enough; the consuming app needs something to show.
var ErrMissingName = errors.New("record has no usable product name")

// NutrimentsKey is the well-known raw-record key under which adapters
// place the vendor's nutrient map (vendor nutrient key -> amount).
const NutrimentsKey = "nutriments"

// Result carries the normalized entities plus the per-nutrient skip count
// for the run report.
type Result struct {
	Supplement *model.Supplement
	Nutrients  []model.Nutrient
	// SkippedNutrients counts nutrient fields dropped because their amount
	// was missing, non-numeric, or negative. Never fatal for the record.
	SkippedNutrients int
}

// Normalize maps a raw vendor record onto the canonical shape using the
// vendor binding resolved from the registry. Records without a barcode
// come back with an empty one — barcodes are never invented here; the
// ingest pipeline assigns a synthetic one before persisting.
func Normalize(raw map[string]any, source string, b catalog.Binding) (Result, error) {
	name := strings.TrimSpace(firstString(raw, b.Fields["name"]))
	if name == "" {
		return Result{}, ErrMissingName
	}

	s := &model.Supplement{
		Name:        name,
		Barcode:     strings.TrimSpace(firstString(raw, b.Fields["barcode"])),
		Brand:       optString(raw, b.Fields["brand"]),
		Category:    optString(raw, b.Fields["category"]),
		ServingSize: optString(raw, b.Fields["serving_size"]),
		ServingUnit: optString(raw, b.Fields["serving_unit"]),
		Ingredients: optString(raw, b.Fields["ingredients"]),
		Warnings:    optString(raw, b.Fields["warnings"]),
		ImageURL:    optString(raw, b.Fields["image_url"]),
		ProductURL:  optString(raw, b.Fields["product_url"]),
		Description: optString(raw, b.Fields["description"]),
		Source:      source,
	}

	if p, ok := parsePrice(raw["price"]); ok {
		s.Price = &p
	}

	res := Result{Supplement: s}

	nutriments, _ := raw[NutrimentsKey].(map[string]any)
	if len(nutriments) == 0 {
		return res, nil
	}

	// Alias keys may collapse onto one canonical name; last write wins so a
	// supplement never carries two rows for the same nutrient.
	byName := make(map[string]int)
	for key, rawAmount := range nutriments {
		entry, known := b.Catalog.Lookup(key)
		if !known {
			if b.Unknown != catalog.HumanizeUnknown {
				continue
			}
			entry = catalog.Humanize(key)
		}

		amount, ok := parseAmount(rawAmount)
		if !ok || amount < 0 {
			res.SkippedNutrients++
			continue
		}

		n := model.Nutrient{
			Name:       entry.Name,
			Amount:     amount,
			Unit:       entry.Unit,
			DailyValue: percentOfDV(amount, entry.DailyValue),
		}
		if i, dup := byName[n.Name]; dup {
			res.Nutrients[i] = n
			continue
		}
		byName[n.Name] = len(res.Nutrients)
		res.Nutrients = append(res.Nutrients, n)
	}

	return res, nil
}

// percentOfDV computes amount/dv*100 with no rounding; nil when no
// reference value exists. Full float64 precision keeps the result
// deterministic for a given input.
func percentOfDV(amount, dv float64) *float64 {
	if dv <= 0 {
		return nil
	}
	pct := amount / dv * 100
	return &pct
}

// parseAmount accepts the numeric shapes vendors actually send: JSON
// numbers, Go numerics from CSV parsing, and numeric strings. Anything
// else (e.g. "n/a") is a per-nutrient skip.
func parseAmount(v any) (float64, bool) {
	switch a := v.(type) {
	case float64:
		return a, true
	case float32:
		return float64(a), true
	case int:
		return float64(a), true
	case int64:
		return float64(a), true
	case json.Number:
		f, err := a.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// parsePrice reads an optional retailer price. Only manual and scraped
// records carry one; API vendors never send it.
func parsePrice(v any) (decimal.Decimal, bool) {
	switch p := v.(type) {
	case float64:
		return decimal.NewFromFloat(p), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(p))
		return d, err == nil
	case json.Number:
		d, err := decimal.NewFromString(p.String())
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

var nonBarcodeChars = regexp.MustCompile(`[^A-Z0-9]+`)

// SyntheticBarcode derives a deterministic placeholder barcode for generic
// or manual entries that have no real UPC. Adapters must call this before
// Normalize when the vendor record lacks a barcode, since the store keys
// uniqueness on it.
func SyntheticBarcode(name string) string {
	token := nonBarcodeChars.ReplaceAllString(strings.ToUpper(strings.TrimSpace(name)), "_")
	return fmt.Sprintf("GENERIC_%s", strings.Trim(token, "_"))
}

func firstString(raw map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := raw[k].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func optString(raw map[string]any, keys []string) *string {
	s := strings.TrimSpace(firstString(raw, keys))
	if s == "" {
		return nil
	}
	return &s
}
