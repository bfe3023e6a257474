package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/history"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/middleware"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/services"
)

type HistoryHandler struct {
	history *history.Manager
	cache   *services.CacheService
}

func NewHistoryHandler(h *history.Manager, cache *services.CacheService) *HistoryHandler {
	return &HistoryHandler{history: h, cache: cache}
}

// GetHistory returns the session's predictions newest first, cursor
// paginated.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	p := ParsePagination(c)
	store := h.history.Get(middleware.SessionID(c))

	rows, hasMore := store.Page(p.Limit, p.Before)

	var nextCursor string
	if hasMore && len(rows) > 0 {
		nextCursor = rows[len(rows)-1].CreatedAt.Format(time.RFC3339Nano)
	}

	c.JSON(http.StatusOK, CursorResponse{Data: rows, NextCursor: nextCursor, HasMore: hasMore})
}

// GetStats returns per-class counts and parameter correlations for the
// history charts.
func (h *HistoryHandler) GetStats(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	store := h.history.Get(sessionID)

	cacheKey := fmt.Sprintf("history:stats:%s:%d", sessionID, store.Len())

	var cached history.Stats
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.CountsByClass != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	stats := store.Stats()
	go h.cache.Set(context.Background(), cacheKey, stats, 5*time.Second)

	c.JSON(http.StatusOK, stats)
}

// ExportCSV streams the full session history as a CSV download.
func (h *HistoryHandler) ExportCSV(c *gin.Context) {
	store := h.history.Get(middleware.SessionID(c))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="traffic_severity_predictions.csv"`)

	if err := store.WriteCSV(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
