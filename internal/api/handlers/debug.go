package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JuanQuenga/Storefront/internal/debuglog"
)

// HandleGetDebugLogs handles GET /debug/logs, returning the ring buffer
// contents oldest first.
func HandleGetDebugLogs(buf *debuglog.Buffer) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := buf.Entries()
		c.JSON(http.StatusOK, gin.H{
			"logs":  entries,
			"count": len(entries),
		})
	}
}

// HandleClearDebugLogs handles DELETE /debug/logs.
func HandleClearDebugLogs(buf *debuglog.Buffer) gin.HandlerFunc {
	return func(c *gin.Context) {
		buf.Clear()
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}
