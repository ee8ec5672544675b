package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"supplementdb/internal/catalog"
	"supplementdb/internal/infra"
	"supplementdb/internal/normalizer"
)

// USDA searches FoodData Central for supplement products. The search
// endpoint takes its parameters as a POSTed JSON body; results are
// filtered down to things that look like supplements, since the Branded
// data type covers all groceries.
type USDA struct {
	client   *infra.VendorClient
	baseURL  string
	apiKey   string
	queries  []string
	barcodes []string
	pageSize int
}

func NewUSDA(client *infra.VendorClient, baseURL, apiKey string, queries []string) *USDA {
	return &USDA{
		client:   client,
		baseURL:  baseURL,
		apiKey:   apiKey,
		queries:  queries,
		pageSize: 25,
	}
}

// NewUSDABarcodes searches by UPC instead of free text. A hit must match
// gtinUpc exactly; the supplement keyword filter does not apply, since the
// caller asked for that specific product.
func NewUSDABarcodes(client *infra.VendorClient, baseURL, apiKey string, barcodes []string) *USDA {
	return &USDA{
		client:   client,
		baseURL:  baseURL,
		apiKey:   apiKey,
		barcodes: barcodes,
		pageSize: 10,
	}
}

func (u *USDA) Tag() string { return catalog.SourceUSDA }

var usdaSupplementKeywords = []string{
	"supplement", "vitamin", "mineral", "probiotic",
	"omega", "multivitamin", "calcium", "iron", "zinc",
	"magnesium", "biotin", "collagen", "protein powder",
}

type usdaSearchResponse struct {
	Foods []map[string]any `json:"foods"`
}

func (u *USDA) Records(ctx context.Context, emit func(raw map[string]any) error) error {
	for _, barcode := range u.barcodes {
		resp, err := u.search(ctx, barcode)
		if err != nil {
			return fmt.Errorf("usda: barcode %s: %w", barcode, err)
		}

		found := false
		for _, food := range resp.Foods {
			if gtin, _ := food["gtinUpc"].(string); gtin != barcode {
				continue
			}
			found = true
			if err := emit(usdaRaw(food)); err != nil {
				return err
			}
			break
		}
		if !found {
			log.Warn().Str("barcode", barcode).Msg("usda: no gtinUpc match")
		}
	}

	for _, query := range u.queries {
		resp, err := u.search(ctx, query)
		if err != nil {
			return fmt.Errorf("usda: search %q: %w", query, err)
		}
		log.Debug().Str("query", query).Int("foods", len(resp.Foods)).Msg("usda search")

		for _, food := range resp.Foods {
			if !isUSDASupplement(food) {
				continue
			}
			if err := emit(usdaRaw(food)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *USDA) search(ctx context.Context, query string) (*usdaSearchResponse, error) {
	payload := map[string]any{
		"api_key":   u.apiKey,
		"query":     query,
		"dataType":  []string{"Branded", "Dietary Supplement"},
		"pageSize":  u.pageSize,
		"sortBy":    "score",
		"sortOrder": "desc",
	}

	var resp usdaSearchResponse
	if err := u.client.PostJSON(ctx, u.baseURL+"/foods/search", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func isUSDASupplement(food map[string]any) bool {
	category, _ := food["foodCategory"].(string)
	description, _ := food["description"].(string)
	haystack := strings.ToLower(category) + " " + strings.ToLower(description)

	for _, kw := range usdaSupplementKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// usdaRaw reshapes a search hit for the normalizer: top-level fields pass
// through, foodNutrients collapse into a nutriments map keyed by the
// numeric nutrient id.
func usdaRaw(food map[string]any) map[string]any {
	raw := make(map[string]any, len(food)+1)
	for k, v := range food {
		if k == "foodNutrients" {
			continue
		}
		raw[k] = v
	}

	nutriments := make(map[string]any)
	if list, ok := food["foodNutrients"].([]any); ok {
		for _, item := range list {
			n, ok := item.(map[string]any)
			if !ok {
				continue
			}
			id, ok := n["nutrientId"].(float64)
			if !ok {
				continue
			}
			nutriments[catalog.USDAKey(int(id))] = n["value"]
		}
	}
	raw[normalizer.NutrimentsKey] = nutriments
	return raw
}
