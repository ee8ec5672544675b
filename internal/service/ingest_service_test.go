package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"supplementdb/internal/adapter"
	"supplementdb/internal/catalog"
	"supplementdb/internal/model"
)

// ── In-memory SupplementRepository stub ──────────────────────────────────────

type storedSupplement struct {
	supplement model.Supplement
	nutrients  []model.Nutrient
}

type stubSupplementRepo struct {
	byBarcode map[string]*storedSupplement
	failOn    map[string]error // barcode → forced upsert error
}

func newStubRepo() *stubSupplementRepo {
	return &stubSupplementRepo{
		byBarcode: make(map[string]*storedSupplement),
		failOn:    make(map[string]error),
	}
}

func (r *stubSupplementRepo) Upsert(_ context.Context, s *model.Supplement, nutrients []model.Nutrient) (uuid.UUID, error) {
	if err := r.failOn[s.Barcode]; err != nil {
		return uuid.Nil, err
	}
	existing, ok := r.byBarcode[s.Barcode]
	if ok {
		s.ID = existing.supplement.ID
	} else if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.byBarcode[s.Barcode] = &storedSupplement{supplement: *s, nutrients: append([]model.Nutrient(nil), nutrients...)}
	return s.ID, nil
}

func (r *stubSupplementRepo) FindByBarcode(_ context.Context, barcode string) (*model.Supplement, error) {
	stored, ok := r.byBarcode[barcode]
	if !ok {
		return nil, errors.New("record not found")
	}
	s := stored.supplement
	s.Nutrients = append([]model.Nutrient(nil), stored.nutrients...)
	return &s, nil
}

func (r *stubSupplementRepo) SearchByName(_ context.Context, _ string, _ int) ([]model.Supplement, error) {
	return nil, nil
}

func (r *stubSupplementRepo) ExportAll(_ context.Context, fn func(model.Supplement) error) error {
	barcodes := make([]string, 0, len(r.byBarcode))
	for b := range r.byBarcode {
		barcodes = append(barcodes, b)
	}
	sort.Strings(barcodes)
	for _, b := range barcodes {
		stored := r.byBarcode[b]
		s := stored.supplement
		s.Nutrients = append([]model.Nutrient(nil), stored.nutrients...)
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubSupplementRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byBarcode)), nil
}

func (r *stubSupplementRepo) DB() *gorm.DB { return nil }

// ── Fake source ──────────────────────────────────────────────────────────────

type fakeSource struct {
	tag     string
	records []map[string]any
	err     error // returned after all records are emitted
}

func (f *fakeSource) Tag() string { return f.tag }

func (f *fakeSource) Records(_ context.Context, emit func(raw map[string]any) error) error {
	for _, r := range f.records {
		if err := emit(r); err != nil {
			return err
		}
	}
	return f.err
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestIngestBadRecordsDoNotAbortBatch(t *testing.T) {
	repo := newStubRepo()
	ingestor := NewIngestor(repo, catalog.Default())

	src := &fakeSource{
		tag: catalog.SourceOpenFoodFacts,
		records: []map[string]any{
			{"code": "111"}, // no name — rejected
			{
				"product_name": "Vitamin D3 Softgels",
				"code":         "222",
				"nutriments":   map[string]any{"vitamin-d_100g": 50.0, "calcium_100g": "n/a"},
			},
		},
	}

	report, err := ingestor.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 1, report.NutrientsKept)
	assert.Equal(t, 1, report.NutrientsSkipped)
	assert.Zero(t, report.StorageFailures)

	got, err := repo.FindByBarcode(context.Background(), "222")
	require.NoError(t, err)
	require.Len(t, got.Nutrients, 1)
	assert.Equal(t, "Vitamin D", got.Nutrients[0].Name)
	require.NotNil(t, got.Nutrients[0].DailyValue)
	assert.Equal(t, 250.0, *got.Nutrients[0].DailyValue)
}

func TestIngestSynthesizesMissingBarcode(t *testing.T) {
	repo := newStubRepo()
	ingestor := NewIngestor(repo, catalog.Default())

	src := &fakeSource{
		tag: catalog.SourceManual,
		records: []map[string]any{
			{"name": "Magnesium Glycinate"},
		},
	}

	report, err := ingestor.Run(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Accepted)

	_, err = repo.FindByBarcode(context.Background(), "GENERIC_MAGNESIUM_GLYCINATE")
	assert.NoError(t, err)
}

func TestIngestStorageFailureCountedBatchContinues(t *testing.T) {
	repo := newStubRepo()
	repo.failOn["111"] = errors.New("disk full")
	ingestor := NewIngestor(repo, catalog.Default())

	src := &fakeSource{
		tag: catalog.SourceOpenFoodFacts,
		records: []map[string]any{
			{"product_name": "Fails", "code": "111"},
			{"product_name": "Succeeds", "code": "222"},
		},
	}

	report, err := ingestor.Run(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.StorageFailures)

	_, err = repo.FindByBarcode(context.Background(), "222")
	assert.NoError(t, err)
}

func TestIngestUnknownSource(t *testing.T) {
	ingestor := NewIngestor(newStubRepo(), catalog.Default())

	_, err := ingestor.Run(context.Background(), &fakeSource{tag: "mystery_feed"})
	assert.ErrorIs(t, err, catalog.ErrUnknownSource)
}

func TestIngestVendorFaultReturnsPartialReport(t *testing.T) {
	repo := newStubRepo()
	ingestor := NewIngestor(repo, catalog.Default())

	src := &fakeSource{
		tag: catalog.SourceOpenFoodFacts,
		records: []map[string]any{
			{"product_name": "Landed", "code": "1"},
		},
		err: errors.New("vendor unreachable"),
	}

	report, err := ingestor.Run(context.Background(), src)
	require.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Accepted)
}

func TestIngestSeedSupplements(t *testing.T) {
	repo := newStubRepo()
	ingestor := NewIngestor(repo, catalog.Default())

	report, err := ingestor.Run(context.Background(), adapter.NewSeed())
	require.NoError(t, err)

	assert.Equal(t, 7, report.Accepted)
	assert.Zero(t, report.Rejected)
	assert.Zero(t, report.NutrientsSkipped)

	d3, err := repo.FindByBarcode(context.Background(), "GENERIC_VITAMIN_D3")
	require.NoError(t, err)
	require.Len(t, d3.Nutrients, 1)
	assert.Equal(t, "Vitamin D3", d3.Nutrients[0].Name)
	assert.Equal(t, 50.0, d3.Nutrients[0].Amount)
	require.NotNil(t, d3.Nutrients[0].DailyValue)
	assert.Equal(t, 250.0, *d3.Nutrients[0].DailyValue)

	// Nutrients without a reference intake keep a nil daily value
	omega, err := repo.FindByBarcode(context.Background(), "GENERIC_OMEGA_3_FISH_OIL")
	require.NoError(t, err)
	require.Len(t, omega.Nutrients, 3)
	for _, n := range omega.Nutrients {
		assert.Nil(t, n.DailyValue, n.Name)
	}

	// Running the seed twice leaves the store unchanged
	_, err = ingestor.Run(context.Background(), adapter.NewSeed())
	require.NoError(t, err)
	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 7, count)
}
