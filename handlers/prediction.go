package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/history"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/middleware"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/models"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/observability"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/pipeline"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/services"
)

// PredictionsChannel carries newly recorded predictions to websocket clients.
const PredictionsChannel = "severity:predictions"

type PredictionHandler struct {
	pipeline *pipeline.Pipeline
	history  *history.Manager
	cache    *services.CacheService
	metrics  *observability.Metrics
}

func NewPredictionHandler(p *pipeline.Pipeline, h *history.Manager, cache *services.CacheService, m *observability.Metrics) *PredictionHandler {
	return &PredictionHandler{pipeline: p, history: h, cache: cache, metrics: m}
}

type PredictionResponse struct {
	Severity models.SeverityInfo     `json:"severity"`
	Record   models.PredictionRecord `json:"record"`
}

// Predict runs one synchronous validate → predict → record pass and returns
// the severity class or an inline error message.
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req pipeline.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fv, err := pipeline.Validate(req)
	if err != nil {
		var vErr *pipeline.ValidationError
		if errors.As(err, &vErr) {
			h.metrics.ValidationErrors.WithLabelValues(vErr.Field).Inc()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	severity, err := h.pipeline.Predict(fv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	rec := models.PredictionRecord{
		ID:            uuid.NewString(),
		Features:      fv,
		SeverityClass: severity,
		SeverityLabel: severity.Label(),
		CreatedAt:     time.Now().UTC(),
	}
	h.history.Get(middleware.SessionID(c)).Append(rec)

	go h.cache.Publish(context.Background(), PredictionsChannel, rec)

	c.JSON(http.StatusOK, PredictionResponse{Severity: severity.Info(), Record: rec})
}

// GetSeverityClasses returns the four-class reference scale.
func GetSeverityClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"classes": models.SeverityClasses()})
}
