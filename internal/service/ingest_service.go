package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"supplementdb/internal/adapter"
	"supplementdb/internal/catalog"
	"supplementdb/internal/normalizer"
	"supplementdb/internal/repository"
)

// IngestReport summarizes one adapter run. Rejected counts records that
// failed normalization (usually a missing name); StorageFailures counts
// records that normalized fine but could not be persisted. Neither stops
// the batch.
type IngestReport struct {
	Source           string
	Accepted         int
	Rejected         int
	StorageFailures  int
	NutrientsKept    int
	NutrientsSkipped int
	Elapsed          time.Duration
}

// Summary renders the report as a short human-readable block, used for
// log output and the run-summary mail.
func (r *IngestReport) Summary() string {
	return fmt.Sprintf(
		"source: %s\naccepted: %d\nrejected: %d\nstorage failures: %d\nnutrients kept: %d\nnutrients skipped: %d\nelapsed: %s\n",
		r.Source, r.Accepted, r.Rejected, r.StorageFailures, r.NutrientsKept, r.NutrientsSkipped, r.Elapsed.Round(time.Millisecond),
	)
}

// Ingestor drives raw records from a source through normalization into
// the store. One record at a time, in feed order; a bad record is logged
// and skipped, never aborting the rest of the batch.
type Ingestor struct {
	repo     repository.SupplementRepository
	registry *catalog.Registry
}

func NewIngestor(repo repository.SupplementRepository, registry *catalog.Registry) *Ingestor {
	return &Ingestor{repo: repo, registry: registry}
}

// Run consumes the source to exhaustion. The returned report is valid
// even when err is non-nil: a vendor fault mid-stream still reports
// whatever was ingested before it.
func (i *Ingestor) Run(ctx context.Context, src adapter.Source) (*IngestReport, error) {
	binding, err := i.registry.Resolve(src.Tag())
	if err != nil {
		return nil, err
	}

	report := &IngestReport{Source: src.Tag()}
	start := time.Now()
	defer func() { report.Elapsed = time.Since(start) }()

	log.Info().Str("source", src.Tag()).Msg("ingest started")

	err = src.Records(ctx, func(raw map[string]any) error {
		res, err := normalizer.Normalize(raw, src.Tag(), binding)
		if err != nil {
			report.Rejected++
			log.Warn().Str("source", src.Tag()).Err(err).Msg("record rejected")
			return nil
		}

		s := res.Supplement
		if s.Barcode == "" {
			s.Barcode = normalizer.SyntheticBarcode(s.Name)
		}
		report.NutrientsSkipped += res.SkippedNutrients

		if _, err := i.repo.Upsert(ctx, s, res.Nutrients); err != nil {
			report.StorageFailures++
			log.Error().
				Str("source", src.Tag()).
				Str("barcode", s.Barcode).
				Err(err).
				Msg("upsert failed")
			return nil
		}

		report.Accepted++
		report.NutrientsKept += len(res.Nutrients)
		return nil
	})

	log.Info().
		Str("source", src.Tag()).
		Int("accepted", report.Accepted).
		Int("rejected", report.Rejected).
		Int("storage_failures", report.StorageFailures).
		Int("nutrients_kept", report.NutrientsKept).
		Int("nutrients_skipped", report.NutrientsSkipped).
		Msg("ingest finished")

	return report, err
}
