package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/service"
	"github.com/JuanQuenga/Storefront/internal/toolcall"
)

// HandleListCollections handles GET /collections with limit, cursor and
// include_products parameters.
func HandleListCollections(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := DefaultCollectionLimit
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil {
				limit = n
			}
		}
		limit = toolcall.ClampLimit(limit)

		includeProducts := false
		switch c.Query("include_products") {
		case "true", "1", "yes":
			includeProducts = true
		}

		list, err := catalog.ListCollections(c.Request.Context(), limit, c.Query("cursor"), includeProducts)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
