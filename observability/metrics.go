package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instruments for the prediction pipeline.
type Metrics struct {
	Predictions        *prometheus.CounterVec // label: severity
	ValidationErrors   *prometheus.CounterVec // label: field
	PredictionErrors   prometheus.Counter
	PredictionDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Predictions,
		m.ValidationErrors,
		m.PredictionErrors,
		m.PredictionDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so repeated test setup
// does not panic with "already registered".
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "traffic_severity",
			Name:      "predictions_total",
			Help:      "Total successful predictions by severity label.",
		}, []string{"severity"}),
		ValidationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "traffic_severity",
			Name:      "validation_errors_total",
			Help:      "Total rejected inputs by field.",
		}, []string{"field"}),
		PredictionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "traffic_severity",
			Name:      "prediction_errors_total",
			Help:      "Total inference failures.",
		}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "traffic_severity",
			Name:      "prediction_duration_seconds",
			Help:      "Duration of a scale-and-predict pass.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}
