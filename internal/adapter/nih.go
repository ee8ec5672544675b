package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"supplementdb/internal/catalog"
	"supplementdb/internal/infra"
)

// NIH queries the Dietary Supplement Label Database. DSLD responses carry
// label metadata only — no parsed nutrient amounts — so its records enter
// the pipeline nutrient-free and usually without a barcode.
type NIH struct {
	client  *infra.VendorClient
	baseURL string
	queries []string
	limit   int
}

func NewNIH(client *infra.VendorClient, baseURL string, queries []string) *NIH {
	return &NIH{client: client, baseURL: baseURL, queries: queries, limit: 20}
}

func (n *NIH) Tag() string { return catalog.SourceNIH }

func (n *NIH) Records(ctx context.Context, emit func(raw map[string]any) error) error {
	for _, query := range n.queries {
		u := fmt.Sprintf("%s/label?search=%s&limit=%d", n.baseURL, url.QueryEscape(query), n.limit)

		var labels []map[string]any
		if err := n.client.GetJSON(ctx, u, &labels); err != nil {
			return fmt.Errorf("nih dsld: search %q: %w", query, err)
		}
		log.Debug().Str("query", query).Int("labels", len(labels)).Msg("nih dsld search")

		for _, label := range labels {
			if err := emit(label); err != nil {
				return err
			}
		}
	}
	return nil
}
