package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/service"
	"github.com/JuanQuenga/Storefront/internal/toolcall"
)

// HandleSearchGET handles GET /search. Accepts plain q/limit/cursor params,
// a tool-call envelope URL-encoded into the "message" parameter, and
// format=text for the customer-friendly text rendering. Tool-call results on
// this path are the text summary, matching what the voice integration reads
// aloud.
func HandleSearchGET(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := c.Request.URL.Query()
		extraction := toolcall.ExtractSearch(nil, params, DefaultSearchLimitGET)

		result, err := catalog.SearchProducts(c.Request.Context(), extraction.Args)
		if err != nil {
			if extraction.IsToolCall {
				c.JSON(http.StatusInternalServerError, toolcall.WrapError(extraction.ToolCallID, err.Error()))
				return
			}
			respondError(c, logger, err)
			return
		}

		if extraction.IsToolCall {
			summary := service.SummarizeSearch(result, extraction.Args.Query)
			c.JSON(http.StatusOK, toolcall.WrapResult(extraction.ToolCallID, summary))
			return
		}
		if params.Get("format") == "text" {
			c.String(http.StatusOK, service.SummarizeSearch(result, extraction.Args.Query))
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// HandleSearchPOST handles POST /search. Accepts a plain {q,limit,cursor}
// body or any of the tool-call envelope shapes. Tool-call results on this
// path are the structured search object.
func HandleSearchPOST(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			body = nil
		}
		params := c.Request.URL.Query()
		extraction := toolcall.ExtractSearch(body, params, DefaultSearchLimitPOST)

		logger.Debug("Search request normalized",
			zap.String("query", extraction.Args.Query),
			zap.Int("limit", extraction.Args.Limit),
			zap.Bool("tool_call", extraction.IsToolCall),
			zap.String("tool_call_id", extraction.ToolCallID),
		)

		result, err := catalog.SearchProducts(c.Request.Context(), extraction.Args)
		if err != nil {
			if extraction.IsToolCall {
				// Callers of the tool convention expect the failure inside
				// the envelope; the ID is re-extracted best-effort.
				id := extraction.ToolCallID
				if id == toolcall.UnknownToolCallID {
					id = toolcall.RecoverToolCallID(body, params)
				}
				c.JSON(http.StatusInternalServerError, toolcall.WrapError(id, err.Error()))
				return
			}
			respondError(c, logger, err)
			return
		}

		if extraction.IsToolCall {
			c.JSON(http.StatusOK, toolcall.WrapResult(extraction.ToolCallID, result))
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
