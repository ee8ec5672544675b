package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplementdb/internal/catalog"
)

func offBinding(t *testing.T) catalog.Binding {
	t.Helper()
	b, err := catalog.Default().Resolve(catalog.SourceOpenFoodFacts)
	require.NoError(t, err)
	return b
}

func bulkBinding(t *testing.T) catalog.Binding {
	t.Helper()
	b, err := catalog.Default().Resolve(catalog.SourceBulkCSV)
	require.NoError(t, err)
	return b
}

func TestNormalizeMissingNameRejected(t *testing.T) {
	_, err := Normalize(map[string]any{"code": "123"}, catalog.SourceOpenFoodFacts, offBinding(t))
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = Normalize(map[string]any{"product_name": "   "}, catalog.SourceOpenFoodFacts, offBinding(t))
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestNormalizeBasicFields(t *testing.T) {
	raw := map[string]any{
		"product_name": "  Vitamin D3 Softgels  ",
		"code":         "0123456789012",
		"brands":       "Acme",
		"image_url":    "https://img.example/d3.jpg",
	}

	res, err := Normalize(raw, catalog.SourceOpenFoodFacts, offBinding(t))
	require.NoError(t, err)

	s := res.Supplement
	assert.Equal(t, "Vitamin D3 Softgels", s.Name)
	assert.Equal(t, "0123456789012", s.Barcode)
	require.NotNil(t, s.Brand)
	assert.Equal(t, "Acme", *s.Brand)
	assert.Equal(t, catalog.SourceOpenFoodFacts, s.Source)
	assert.Empty(t, res.Nutrients)
}

func TestNormalizePrefersEnglishName(t *testing.T) {
	raw := map[string]any{
		"product_name":    "Vitamine C",
		"product_name_en": "Vitamin C",
		"code":            "1",
	}

	res, err := Normalize(raw, catalog.SourceOpenFoodFacts, offBinding(t))
	require.NoError(t, err)
	assert.Equal(t, "Vitamin C", res.Supplement.Name)
}

func TestNormalizePercentOfDailyValue(t *testing.T) {
	raw := map[string]any{
		"product_name": "D3 5000",
		"code":         "2",
		"nutriments": map[string]any{
			"vitamin-d_100g": 50.0, // catalog DV is 20 µg
		},
	}

	res, err := Normalize(raw, catalog.SourceOpenFoodFacts, offBinding(t))
	require.NoError(t, err)
	require.Len(t, res.Nutrients, 1)

	n := res.Nutrients[0]
	assert.Equal(t, "Vitamin D", n.Name)
	assert.Equal(t, 50.0, n.Amount)
	assert.Equal(t, "µg", n.Unit)
	require.NotNil(t, n.DailyValue)
	assert.Equal(t, 250.0, *n.DailyValue)
}

func TestNormalizeNoDailyValueStaysNil(t *testing.T) {
	b, err := catalog.Default().Resolve(catalog.SourceManual)
	require.NoError(t, err)

	raw := map[string]any{
		"name": "Fish Oil",
		"nutriments": map[string]any{
			"EPA": 360.0,
		},
	}

	res, err := Normalize(raw, catalog.SourceManual, b)
	require.NoError(t, err)
	require.Len(t, res.Nutrients, 1)
	assert.Nil(t, res.Nutrients[0].DailyValue)
}

func TestNormalizeSkipsBadAmounts(t *testing.T) {
	raw := map[string]any{
		"product_name": "Mixed Bag",
		"code":         "3",
		"nutriments": map[string]any{
			"vitamin-c_100g": "n/a",
			"calcium_100g":   -5.0,
			"zinc_100g":      "11",
		},
	}

	res, err := Normalize(raw, catalog.SourceOpenFoodFacts, offBinding(t))
	require.NoError(t, err)

	// Only the parseable, non-negative amount survives
	require.Len(t, res.Nutrients, 1)
	assert.Equal(t, "Zinc", res.Nutrients[0].Name)
	assert.Equal(t, 11.0, res.Nutrients[0].Amount)
	assert.Equal(t, 2, res.SkippedNutrients)
}

func TestNormalizeUnknownKeyPolicies(t *testing.T) {
	raw := map[string]any{
		"product_name": "Herbal Mix",
		"code":         "4",
		"nutriments": map[string]any{
			"ashwagandha-extract_100g": 300.0,
		},
	}

	// API binding drops unknown keys
	res, err := Normalize(raw, catalog.SourceOpenFoodFacts, offBinding(t))
	require.NoError(t, err)
	assert.Empty(t, res.Nutrients)

	// Bulk binding humanizes them
	res, err = Normalize(raw, catalog.SourceBulkCSV, bulkBinding(t))
	require.NoError(t, err)
	require.Len(t, res.Nutrients, 1)
	assert.Equal(t, "Ashwagandha Extract", res.Nutrients[0].Name)
	assert.Equal(t, "mg", res.Nutrients[0].Unit)
	assert.Nil(t, res.Nutrients[0].DailyValue)
}

func TestNormalizeAliasKeysCollapse(t *testing.T) {
	raw := map[string]any{
		"product_name": "B1 Tabs",
		"code":         "5",
		"nutriments": map[string]any{
			"vitamin-b1_100g": 1.2,
			"thiamin_100g":    1.2,
		},
	}

	res, err := Normalize(raw, catalog.SourceOpenFoodFacts, offBinding(t))
	require.NoError(t, err)

	// Both vendor spellings map to the same canonical nutrient — one row
	require.Len(t, res.Nutrients, 1)
}

func TestParseAmountShapes(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want float64
		ok   bool
	}{
		{42.5, 42.5, true},
		{7, 7, true},
		{"3.14", 3.14, true},
		{" 10 ", 10, true},
		{"", 0, false},
		{"n/a", 0, false},
		{nil, 0, false},
		{true, 0, false},
	} {
		got, ok := parseAmount(tc.in)
		assert.Equal(t, tc.ok, ok, "input %v", tc.in)
		if ok {
			assert.Equal(t, tc.want, got, "input %v", tc.in)
		}
	}
}

func TestNormalizeOptionalPrice(t *testing.T) {
	b, err := catalog.Default().Resolve(catalog.SourceManual)
	require.NoError(t, err)

	res, err := Normalize(map[string]any{"name": "Fish Oil", "price": 12.99}, catalog.SourceManual, b)
	require.NoError(t, err)
	require.NotNil(t, res.Supplement.Price)
	assert.Equal(t, "12.99", res.Supplement.Price.String())

	res, err = Normalize(map[string]any{"name": "Fish Oil", "price": "not a price"}, catalog.SourceManual, b)
	require.NoError(t, err)
	assert.Nil(t, res.Supplement.Price)
}

func TestSyntheticBarcode(t *testing.T) {
	assert.Equal(t, "GENERIC_MULTIVITAMIN", SyntheticBarcode("Multivitamin"))
	assert.Equal(t, "GENERIC_OMEGA_3_FISH_OIL", SyntheticBarcode("Omega-3 Fish Oil"))
	assert.Equal(t, "GENERIC_CALCIUM_VITAMIN_D", SyntheticBarcode("Calcium + Vitamin D"))
	// Deterministic
	assert.Equal(t, SyntheticBarcode("Probiotic"), SyntheticBarcode("Probiotic"))
}
