package handler

import (
	"errors"
	"net/http"
	"strings"

	"supplementdb/internal/apierror"
	"supplementdb/internal/dto"
	"supplementdb/internal/repository"
	"supplementdb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SupplementsHandler struct {
	svc    service.SupplementService
	export *service.ExportService
}

func NewSupplementsHandler(svc service.SupplementService, export *service.ExportService) *SupplementsHandler {
	return &SupplementsHandler{svc: svc, export: export}
}

func (h *SupplementsHandler) GetByBarcode(c *gin.Context) {
	barcode := strings.TrimSpace(c.Param("barcode"))
	if barcode == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Barcode is required"))
		return
	}
	resp, err := h.svc.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Supplement not found"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SupplementsHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	results, err := h.svc.Search(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

// Export streams the whole store as a JSON array. Errors after the first
// byte can only be logged — the status line is already on the wire.
func (h *SupplementsHandler) Export(c *gin.Context) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := h.export.WriteJSON(c.Request.Context(), c.Writer); err != nil {
		log.Error().Err(err).Msg("export stream aborted")
	}
}
