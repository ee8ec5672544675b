package adapter

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"supplementdb/internal/catalog"
	"supplementdb/internal/infra"
	"supplementdb/internal/normalizer"
)

// Spoonacular looks up products by UPC, or searches and then fetches each
// hit's detail page. Nutrition arrives as a list of {name, amount, unit}
// objects under nutrition.nutrients, which gets flattened into a
// nutriments map keyed by the English nutrient name.
type Spoonacular struct {
	client      *infra.VendorClient
	baseURL     string
	apiKey      string
	barcodes    []string
	queries     []string
	searchLimit int
}

func NewSpoonacular(client *infra.VendorClient, baseURL, apiKey string, barcodes []string) *Spoonacular {
	return &Spoonacular{client: client, baseURL: baseURL, apiKey: apiKey, barcodes: barcodes}
}

// NewSpoonacularSearch drives the product search endpoint instead of UPC
// lookups. Search hits carry no nutrition, so each one costs a second
// request for the full product.
func NewSpoonacularSearch(client *infra.VendorClient, baseURL, apiKey string, queries []string) *Spoonacular {
	return &Spoonacular{client: client, baseURL: baseURL, apiKey: apiKey, queries: queries, searchLimit: 10}
}

func (s *Spoonacular) Tag() string { return catalog.SourceSpoonacular }

type spoonacularSearchResponse struct {
	Products []struct {
		ID int `json:"id"`
	} `json:"products"`
}

func (s *Spoonacular) Records(ctx context.Context, emit func(raw map[string]any) error) error {
	for _, barcode := range s.barcodes {
		url := fmt.Sprintf("%s/food/products/upc/%s?apiKey=%s", s.baseURL, barcode, s.apiKey)

		var product map[string]any
		if err := s.client.GetJSON(ctx, url, &product); err != nil {
			if infra.IsStatus(err, http.StatusNotFound) {
				log.Warn().Str("barcode", barcode).Msg("spoonacular: product not found")
				continue
			}
			return fmt.Errorf("spoonacular: fetch %s: %w", barcode, err)
		}

		if err := emit(spoonacularRaw(product, barcode)); err != nil {
			return err
		}
	}

	for _, query := range s.queries {
		url := fmt.Sprintf("%s/food/products/search?query=%s&number=%d&apiKey=%s",
			s.baseURL, neturl.QueryEscape(query), s.searchLimit, s.apiKey)

		var resp spoonacularSearchResponse
		if err := s.client.GetJSON(ctx, url, &resp); err != nil {
			return fmt.Errorf("spoonacular: search %q: %w", query, err)
		}
		log.Debug().Str("query", query).Int("products", len(resp.Products)).Msg("spoonacular search")

		for _, hit := range resp.Products {
			detailURL := fmt.Sprintf("%s/food/products/%d?apiKey=%s", s.baseURL, hit.ID, s.apiKey)

			var product map[string]any
			if err := s.client.GetJSON(ctx, detailURL, &product); err != nil {
				if infra.IsStatus(err, http.StatusNotFound) {
					log.Warn().Int("id", hit.ID).Msg("spoonacular: product detail not found")
					continue
				}
				return fmt.Errorf("spoonacular: product %d: %w", hit.ID, err)
			}

			if err := emit(spoonacularRaw(product, "")); err != nil {
				return err
			}
		}
	}
	return nil
}

func spoonacularRaw(product map[string]any, barcode string) map[string]any {
	raw := make(map[string]any, len(product)+3)
	for k, v := range product {
		if k == "nutrition" {
			continue
		}
		raw[k] = v
	}
	if _, ok := raw["upc"].(string); !ok && barcode != "" {
		raw["upc"] = barcode
	}

	nutriments := make(map[string]any)
	if nutrition, ok := product["nutrition"].(map[string]any); ok {
		if list, ok := nutrition["nutrients"].([]any); ok {
			for _, item := range list {
				n, ok := item.(map[string]any)
				if !ok {
					continue
				}
				name, _ := n["name"].(string)
				if name == "" {
					continue
				}
				nutriments[name] = n["amount"]
			}
		}
	}
	raw[normalizer.NutrimentsKey] = nutriments

	if wps, ok := product["weightPerServing"].(map[string]any); ok {
		if amount, ok := wps["amount"].(float64); ok {
			raw["serving_size"] = strconv.FormatFloat(amount, 'f', -1, 64)
		}
		if unit, ok := wps["unit"].(string); ok {
			raw["serving_unit"] = unit
		}
	}
	return raw
}
