package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplementdb/internal/dto"
	"supplementdb/internal/repository"
)

type stubSupplementService struct {
	byBarcode map[string]dto.SupplementExport
}

func (s *stubSupplementService) GetByBarcode(_ context.Context, barcode string) (*dto.SupplementExport, error) {
	if resp, ok := s.byBarcode[barcode]; ok {
		return &resp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubSupplementService) Search(_ context.Context, req dto.SearchRequest) ([]dto.SupplementExport, error) {
	var out []dto.SupplementExport
	for _, resp := range s.byBarcode {
		out = append(out, resp)
	}
	return out, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &stubSupplementService{
		byBarcode: map[string]dto.SupplementExport{
			"0123456789012": {Barcode: "0123456789012", Name: "Vitamin D3 Softgels"},
		},
	}
	h := NewSupplementsHandler(svc, nil)

	r := gin.New()
	r.GET("/v1/supplements", h.Search)
	r.GET("/v1/supplements/:barcode", h.GetByBarcode)
	return r
}

func TestGetByBarcodeFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/supplements/0123456789012", nil)
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.SupplementExport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Vitamin D3 Softgels", body.Name)
}

func TestGetByBarcodeNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/supplements/999", nil)
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchValidation(t *testing.T) {
	for path, want := range map[string]int{
		"/v1/supplements":                         http.StatusUnprocessableEntity, // query required
		"/v1/supplements?query=v":                 http.StatusUnprocessableEntity, // too short
		"/v1/supplements?query=vitamin&limit=500": http.StatusUnprocessableEntity,
		"/v1/supplements?query=vitamin":           http.StatusOK,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		testRouter().ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, path)
	}
}

func TestSearchResponseShape(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/supplements?query=vitamin", nil)
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Count   int                    `json:"count"`
		Results []dto.SupplementExport `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Results, 1)
}
