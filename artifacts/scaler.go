package artifacts

import (
	"errors"
	"fmt"
)

// StandardScaler holds the parameters of a scaler fitted at training time and
// exported to JSON (sklearn mean_ / scale_ arrays).
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform normalizes a feature vector element-wise: (x - mean) / scale.
// A zero scale entry only centers the feature.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("feature count mismatch: got %d, scaler fitted with %d", len(features), len(s.Mean))
	}

	scaled := make([]float64, len(features))
	for i, v := range features {
		if s.Scale[i] != 0 {
			scaled[i] = (v - s.Mean[i]) / s.Scale[i]
		} else {
			scaled[i] = v - s.Mean[i]
		}
	}
	return scaled, nil
}

func (s *StandardScaler) validate() error {
	if len(s.Mean) == 0 {
		return errors.New("empty mean array")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("mean has %d entries, scale has %d", len(s.Mean), len(s.Scale))
	}
	return nil
}
