package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware attaches the permissive CORS headers every response carries
// and short-circuits OPTIONS preflights. The request origin is echoed back
// when present, "*" otherwise.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
