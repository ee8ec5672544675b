package service

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplementdb/internal/model"
)

func exportFixture(t *testing.T) *stubSupplementRepo {
	t.Helper()
	repo := newStubRepo()
	ctx := context.Background()

	dv := 250.0
	_, err := repo.Upsert(ctx, &model.Supplement{
		Barcode: "0123456789012",
		Name:    "Vitamin D3 Softgels",
		Brand:   strPtr("Acme"),
		Source:  "open_food_facts",
	}, []model.Nutrient{
		{Name: "Vitamin D", Amount: 50, Unit: "µg", DailyValue: &dv},
	})
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, &model.Supplement{
		Barcode: "GENERIC_PROBIOTIC",
		Name:    "Probiotic",
		Source:  "manual_entry",
	}, []model.Nutrient{
		{Name: "Probiotic Blend", Amount: 10, Unit: "billion CFU"},
	})
	require.NoError(t, err)

	return repo
}

func strPtr(s string) *string { return &s }

func TestWriteJSONShapeAndOrder(t *testing.T) {
	svc := NewExportService(exportFixture(t))

	var buf bytes.Buffer
	count, err := svc.WriteJSON(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var dump []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &dump))
	require.Len(t, dump, 2)

	// Barcode order
	assert.Equal(t, "0123456789012", dump[0]["barcode"])
	assert.Equal(t, "GENERIC_PROBIOTIC", dump[1]["barcode"])

	nutrients := dump[0]["nutrients"].([]any)
	require.Len(t, nutrients, 1)
	n := nutrients[0].(map[string]any)
	assert.Equal(t, "Vitamin D", n["name"])
	assert.Equal(t, 50.0, n["amount"])
	assert.Equal(t, "µg", n["unit"])
	assert.Equal(t, 250.0, n["daily_value"])

	// No reference intake → the key is omitted entirely
	probiotic := dump[1]["nutrients"].([]any)[0].(map[string]any)
	_, present := probiotic["daily_value"]
	assert.False(t, present)
}

func TestWriteJSONEmptyStore(t *testing.T) {
	svc := NewExportService(newStubRepo())

	var buf bytes.Buffer
	count, err := svc.WriteJSON(context.Background(), &buf)
	require.NoError(t, err)
	assert.Zero(t, count)

	var dump []any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &dump))
	assert.Empty(t, dump)
}

func TestWriteGoSource(t *testing.T) {
	svc := NewExportService(exportFixture(t))

	var buf bytes.Buffer
	count, err := svc.WriteGoSource(context.Background(), &buf, "preloaded")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "// Code generated"))
	assert.Contains(t, out, "package preloaded")
	assert.Contains(t, out, `"0123456789012": {`)
	assert.Contains(t, out, `Name: "Vitamin D3 Softgels",`)
	assert.Contains(t, out, `{Name: "Vitamin D", Amount: 50, Unit: "µg", DailyValue: 250},`)
	assert.Contains(t, out, "func Lookup(barcode string) (Supplement, bool)")
	assert.Contains(t, out, "func Search(query string) []Supplement")

	// Optional fields absent from the row stay out of the literal
	assert.NotContains(t, out, "Category:")
}

func TestWritePDF(t *testing.T) {
	svc := NewExportService(exportFixture(t))

	path := filepath.Join(t.TempDir(), "report.pdf")
	count, err := svc.WritePDF(context.Background(), path, "Supplement Database")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
