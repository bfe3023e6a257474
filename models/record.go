package models

import "time"

// PredictionRecord is one successful prediction. Records are append-only and
// never mutated after creation.
type PredictionRecord struct {
	ID            string        `json:"id"`
	Features      FeatureVector `json:"features"`
	SeverityClass Severity      `json:"severity_class"`
	SeverityLabel string        `json:"severity_label"`
	CreatedAt     time.Time     `json:"created_at"`
}
