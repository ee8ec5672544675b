package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"supplementdb/internal/catalog"
	"supplementdb/internal/infra"
)

// OpenFoodFacts fetches single products by barcode from the Open Food
// Facts v2 API.
type OpenFoodFacts struct {
	client   *infra.VendorClient
	baseURL  string
	barcodes []string
	delay    time.Duration
}

func NewOpenFoodFacts(client *infra.VendorClient, baseURL string, barcodes []string) *OpenFoodFacts {
	return &OpenFoodFacts{
		client:   client,
		baseURL:  baseURL,
		barcodes: barcodes,
		// Open Food Facts asks bulk consumers to stay under ~2 req/s.
		delay: 500 * time.Millisecond,
	}
}

func (o *OpenFoodFacts) Tag() string { return catalog.SourceOpenFoodFacts }

// offProduct is the v2 product envelope: status 1 means found.
type offProduct struct {
	Status  int            `json:"status"`
	Product map[string]any `json:"product"`
}

func (o *OpenFoodFacts) Records(ctx context.Context, emit func(raw map[string]any) error) error {
	for i, barcode := range o.barcodes {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(o.delay):
			}
		}

		url := fmt.Sprintf("%s/api/v2/product/%s.json", o.baseURL, barcode)

		var resp offProduct
		if err := o.client.GetJSON(ctx, url, &resp); err != nil {
			if infra.IsStatus(err, http.StatusNotFound) {
				log.Warn().Str("barcode", barcode).Msg("open food facts: product not found")
				continue
			}
			return fmt.Errorf("open food facts: fetch %s: %w", barcode, err)
		}
		if resp.Status != 1 || resp.Product == nil {
			log.Warn().Str("barcode", barcode).Msg("open food facts: product not found")
			continue
		}

		raw := resp.Product
		// The product payload often omits its own code; the barcode we
		// asked for is authoritative.
		raw["code"] = barcode

		if err := emit(raw); err != nil {
			return err
		}
	}
	return nil
}
