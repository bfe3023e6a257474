package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/config"
)

var (
	ErrArtifactMissing = errors.New("artifact missing")
	ErrArtifactCorrupt = errors.New("artifact corrupt")
)

// Artifacts is the pair of serialized objects the pipeline depends on. Loaded
// once at startup and shared read-only; reloading requires a restart.
type Artifacts struct {
	Scaler     *StandardScaler
	Classifier Classifier
	// Fallback is true when the heuristic stands in for a missing model.
	Fallback bool
}

// Load reads and validates the classifier and scaler from the model
// directory. When the classifier is absent and fallback is allowed, the
// heuristic model is returned instead and no scaler is used.
func Load(cfg config.ModelConfig) (*Artifacts, error) {
	classifier, err := loadClassifier(filepath.Join(cfg.Dir, cfg.ClassifierFile))
	if err != nil {
		if cfg.AllowFallback && errors.Is(err, ErrArtifactMissing) {
			return &Artifacts{Classifier: HeuristicClassifier{}, Fallback: true}, nil
		}
		return nil, err
	}

	scaler, err := loadScaler(filepath.Join(cfg.Dir, cfg.ScalerFile))
	if err != nil {
		return nil, err
	}

	if classifier.NumFeatures() != len(scaler.Mean) {
		return nil, fmt.Errorf("%w: classifier expects %d features, scaler fitted with %d",
			ErrArtifactCorrupt, classifier.NumFeatures(), len(scaler.Mean))
	}

	return &Artifacts{Scaler: scaler, Classifier: classifier}, nil
}

func loadClassifier(path string) (*LinearClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: classifier (%s)", ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("read classifier %s: %w", path, err)
	}

	var c LinearClassifier
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: classifier (%s): %v", ErrArtifactCorrupt, path, err)
	}
	if err := c.init(); err != nil {
		return nil, fmt.Errorf("%w: classifier (%s): %v", ErrArtifactCorrupt, path, err)
	}
	return &c, nil
}

func loadScaler(path string) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: scaler (%s)", ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("read scaler %s: %w", path, err)
	}

	var s StandardScaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: scaler (%s): %v", ErrArtifactCorrupt, path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%w: scaler (%s): %v", ErrArtifactCorrupt, path, err)
	}
	return &s, nil
}
