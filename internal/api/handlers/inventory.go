package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/service"
	apperrors "github.com/JuanQuenga/Storefront/pkg/errors"
)

// HandleInventoryCheckGET handles GET /inventory/check with ids as a
// comma-separated list of variant IDs.
func HandleInventoryCheckGET(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := splitIDs(c.Query("ids"))
		checkInventory(c, catalog, logger, ids)
	}
}

// HandleInventoryCheckPOST handles POST /inventory/check with a JSON body
// {variantIds:[...]}. A body that fails to parse is treated as absent.
func HandleInventoryCheckPOST(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			VariantIDs []string `json:"variantIds"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			req.VariantIDs = nil
		}
		ids := make([]string, 0, len(req.VariantIDs))
		for _, id := range req.VariantIDs {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		checkInventory(c, catalog, logger, ids)
	}
}

func checkInventory(c *gin.Context, catalog service.Catalog, logger *zap.Logger, ids []string) {
	if len(ids) == 0 {
		respondError(c, logger, &apperrors.ErrValidation{Message: "Variant IDs are required"})
		return
	}
	if len(ids) > MaxInventoryIDs {
		respondError(c, logger, &apperrors.ErrValidation{
			Message: fmt.Sprintf("Maximum %d variant IDs per request", MaxInventoryIDs),
		})
		return
	}

	report, err := catalog.CheckInventory(c.Request.Context(), ids)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
