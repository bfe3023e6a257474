package history

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/models"
)

// minCorrelationSamples is the smallest history for which parameter
// correlations are meaningful enough to chart.
const minCorrelationSamples = 5

type ClassCount struct {
	Class int    `json:"class"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ParameterCorrelation struct {
	Parameter string `json:"parameter"`
	// Correlation is the absolute Pearson correlation between the parameter
	// and the predicted class across this session's history.
	Correlation float64 `json:"correlation"`
}

type Stats struct {
	Total                 int                    `json:"total"`
	CountsByClass         []ClassCount           `json:"counts_by_class"`
	ParameterCorrelations []ParameterCorrelation `json:"parameter_correlations,omitempty"`
}

// Stats summarizes the session history for the distribution and parameter
// importance charts.
func (s *Store) Stats() Stats {
	records := s.Snapshot()

	counts := make([]ClassCount, 0, 4)
	for _, info := range models.SeverityClasses() {
		counts = append(counts, ClassCount{Class: info.Class, Label: info.Label})
	}
	for _, rec := range records {
		if rec.SeverityClass.Valid() {
			counts[rec.SeverityClass].Count++
		}
	}

	stats := Stats{Total: len(records), CountsByClass: counts}
	if len(records) >= minCorrelationSamples {
		stats.ParameterCorrelations = parameterCorrelations(records)
	}
	return stats
}

func parameterCorrelations(records []models.PredictionRecord) []ParameterCorrelation {
	classes := make([]float64, len(records))
	for i, rec := range records {
		classes[i] = float64(rec.SeverityClass)
	}

	out := make([]ParameterCorrelation, 0, models.NumFeatures)
	values := make([]float64, len(records))
	for p, name := range models.FeatureNames {
		for i, rec := range records {
			values[i] = rec.Features.Values()[p]
		}
		corr := math.Abs(stat.Correlation(values, classes, nil))
		if math.IsNaN(corr) {
			corr = 0
		}
		out = append(out, ParameterCorrelation{Parameter: name, Correlation: corr})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Correlation > out[j].Correlation
	})
	return out
}
