package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/JuanQuenga/Storefront/pkg/errors"
)

// Per-route limit defaults. The tool-call oriented POST path keeps the small
// default the assistant integration expects; plain REST paths page at 20.
const (
	DefaultSearchLimitGET  = 20
	DefaultSearchLimitPOST = 5
	DefaultCollectionLimit = 20
)

// MaxInventoryIDs bounds one inventory check.
const MaxInventoryIDs = 50

// respondError maps the error taxonomy onto plain-convention HTTP responses:
// validation 400, not-found 404, everything else 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *apperrors.ErrValidation
	var notFoundErr *apperrors.ErrNotFound
	var upstreamErr *apperrors.ErrUpstream

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", notFoundErr.Resource)})
	case errors.As(err, &upstreamErr):
		logger.Error("Upstream request failed",
			zap.Int("upstream_status", upstreamErr.Status),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamErr.Error()})
	default:
		logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
