package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/api/handlers"
	"github.com/JuanQuenga/Storefront/internal/api/middleware"
	"github.com/JuanQuenga/Storefront/internal/config"
	"github.com/JuanQuenga/Storefront/internal/debuglog"
	"github.com/JuanQuenga/Storefront/internal/service"
	"github.com/JuanQuenga/Storefront/pkg/metrics"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, catalog service.Catalog, buf *debuglog.Buffer, m *metrics.ServerMetrics, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(loggingMiddleware(logger, buf))
	router.Use(middleware.CORSMiddleware())
	if m != nil {
		router.Use(middleware.MetricsMiddleware(m))
	}

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Storefront Gateway",
			"store":   cfg.Shopify.StoreDomain,
			"endpoints": []string{
				"GET /health",
				"GET /search",
				"POST /search",
				"GET /products/:id",
				"GET /inventory/check",
				"POST /inventory/check",
				"GET /collections",
				"GET /debug/logs",
				"DELETE /debug/logs",
				"GET /metrics",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/search", handlers.HandleSearchGET(catalog, logger))
	router.POST("/search", handlers.HandleSearchPOST(catalog, logger))
	router.GET("/products/:id", handlers.HandleGetProduct(catalog, logger))
	router.GET("/inventory/check", handlers.HandleInventoryCheckGET(catalog, logger))
	router.POST("/inventory/check", handlers.HandleInventoryCheckPOST(catalog, logger))
	router.GET("/collections", handlers.HandleListCollections(catalog, logger))

	router.GET("/debug/logs", handlers.HandleGetDebugLogs(buf))
	router.DELETE("/debug/logs", handlers.HandleClearDebugLogs(buf))

	if m != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests to zap and mirrors one line per
// request into the bounded debug buffer.
func loggingMiddleware(logger *zap.Logger, buf *debuglog.Buffer) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("request_id", middleware.RequestID(c)),
		)
		if buf != nil {
			buf.Append("info", "HTTP request", map[string]interface{}{
				"method":      method,
				"path":        path,
				"status":      status,
				"duration_ms": duration.Milliseconds(),
				"request_id":  middleware.RequestID(c),
			})
		}
	}
}
