package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFoodFactsAliasesShareCanonicalName(t *testing.T) {
	c := OpenFoodFacts()

	b1, ok := c.Lookup("vitamin-b1_100g")
	require.True(t, ok)
	thiamin, ok := c.Lookup("thiamin_100g")
	require.True(t, ok)

	// Two vendor spellings, one canonical nutrient
	assert.Equal(t, b1.Name, thiamin.Name)
	assert.Equal(t, b1.Unit, thiamin.Unit)
	assert.Equal(t, b1.DailyValue, thiamin.DailyValue)
}

func TestOpenFoodFactsVitaminD(t *testing.T) {
	c := OpenFoodFacts()

	e, ok := c.Lookup("vitamin-d_100g")
	require.True(t, ok)
	assert.Equal(t, "Vitamin D", e.Name)
	assert.Equal(t, "µg", e.Unit)
	assert.Equal(t, 20.0, e.DailyValue)
}

func TestUSDAKeyedByNumericID(t *testing.T) {
	c := USDA()

	e, ok := c.Lookup(USDAKey(1008))
	require.True(t, ok)
	assert.Equal(t, "Calories", e.Name)

	_, ok = c.Lookup(USDAKey(999999))
	assert.False(t, ok)
}

func TestHumanizeStripsSuffixAndTitleCases(t *testing.T) {
	e := Humanize("pantothenic-acid_100g")
	assert.Equal(t, "Pantothenic Acid", e.Name)
	assert.Equal(t, "mg", e.Unit)
	assert.Zero(t, e.DailyValue)

	e = Humanize("some_new_thing_100g")
	assert.Equal(t, "Some New Thing", e.Name)
}

func TestRegistryResolvesEveryShippedSource(t *testing.T) {
	r := Default()

	for _, source := range []string{
		SourceOpenFoodFacts, SourceBulkCSV, SourceUSDA,
		SourceNIH, SourceSpoonacular, SourceManual,
	} {
		b, err := r.Resolve(source)
		require.NoError(t, err, source)
		require.NotNil(t, b.Catalog, source)
		assert.NotEmpty(t, b.Fields["name"], source)
	}
}

func TestRegistryUnknownSource(t *testing.T) {
	_, err := Default().Resolve("mystery_feed")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestBulkBindingHumanizesUnknownKeys(t *testing.T) {
	r := Default()

	bulk, err := r.Resolve(SourceBulkCSV)
	require.NoError(t, err)
	assert.Equal(t, HumanizeUnknown, bulk.Unknown)

	api, err := r.Resolve(SourceOpenFoodFacts)
	require.NoError(t, err)
	assert.Equal(t, DropUnknown, api.Unknown)
}
