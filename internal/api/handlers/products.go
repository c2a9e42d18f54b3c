package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/service"
)

// HandleGetProduct handles GET /products/:id. The id may be a bare numeric
// ID or a full gid:// form; normalization happens in the catalog layer.
func HandleGetProduct(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		detail, err := catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
