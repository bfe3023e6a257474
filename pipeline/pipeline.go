package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/artifacts"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/models"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/observability"
)

// ErrPrediction marks inference failures (shape mismatch, out-of-range class).
// These surface to the caller and no record is appended.
var ErrPrediction = errors.New("prediction failed")

// Pipeline runs scale → predict → label against the loaded artifacts.
// Artifacts are read-only shared state; the pipeline itself is stateless.
type Pipeline struct {
	artifacts *artifacts.Artifacts
	metrics   *observability.Metrics
}

func New(a *artifacts.Artifacts, m *observability.Metrics) *Pipeline {
	return &Pipeline{artifacts: a, metrics: m}
}

// Predict maps a validated FeatureVector to a severity class. Deterministic
// for identical inputs and unchanged artifacts.
func (p *Pipeline) Predict(fv models.FeatureVector) (models.Severity, error) {
	start := time.Now()
	defer func() {
		p.metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	}()

	features := fv.Values()

	if p.artifacts.Scaler != nil {
		scaled, err := p.artifacts.Scaler.Transform(features)
		if err != nil {
			p.metrics.PredictionErrors.Inc()
			return 0, fmt.Errorf("%w: scaling: %v", ErrPrediction, err)
		}
		features = scaled
	}

	class, err := p.artifacts.Classifier.Predict(features)
	if err != nil {
		p.metrics.PredictionErrors.Inc()
		return 0, fmt.Errorf("%w: %v", ErrPrediction, err)
	}

	severity := models.Severity(class)
	if !severity.Valid() {
		p.metrics.PredictionErrors.Inc()
		return 0, fmt.Errorf("%w: model returned unknown class %d", ErrPrediction, class)
	}

	p.metrics.Predictions.WithLabelValues(severity.Label()).Inc()
	return severity, nil
}
