package artifacts

import (
	"fmt"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/models"
)

// HeuristicClassifier is the rule-based severity model used before a trained
// classifier was available. Rush-hour traffic near an intersection escalates
// with incident duration; far or short incidents stay minimal.
type HeuristicClassifier struct{}

func (HeuristicClassifier) NumFeatures() int { return models.NumFeatures }

func (HeuristicClassifier) Predict(features []float64) (int, error) {
	if len(features) != models.NumFeatures {
		return 0, fmt.Errorf("feature count mismatch: got %d, expected %d", len(features), models.NumFeatures)
	}

	distance := features[2]
	hour := int(features[6])
	duration := features[7]

	rushHour := hour == 7 || hour == 8 || hour == 9 || hour == 16 || hour == 17 || hour == 18

	if rushHour && distance < 10 {
		switch {
		case duration > 60:
			return int(models.SeveritySevere), nil
		case duration > 30:
			return int(models.SeverityModerate), nil
		default:
			return int(models.SeverityMinor), nil
		}
	}

	if distance > 30 || duration < 15 {
		return int(models.SeverityMinimal), nil
	}
	return int(models.SeverityMinor), nil
}
