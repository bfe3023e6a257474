package artifacts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/config"
)

const testClassifierJSON = `{
	"classes": [0, 1, 2, 3],
	"coefficients": [
		[0, 0, -0.5, 0, 0, 0, 0, -0.5],
		[0, 0, -0.1, 0, 0, 0, 0.1, 0.1],
		[0, 0, 0.1, 0, 0, 0, 0.2, 0.3],
		[0, 0, 0.5, 0, 0, 0, 0.3, 0.5]
	],
	"intercepts": [0.2, 0.1, -0.1, -0.2]
}`

const testScalerJSON = `{
	"mean": [-73.9, 40.7, 5.0, 25.0, 65.0, 1013.0, 12.0, 30.0],
	"scale": [10.0, 10.0, 5.0, 10.0, 20.0, 10.0, 6.9, 40.0]
}`

func writeModelDir(t *testing.T, classifier, scaler string) config.ModelConfig {
	t.Helper()
	dir := t.TempDir()

	if classifier != "" {
		if err := os.WriteFile(filepath.Join(dir, "traffic_severity_model.json"), []byte(classifier), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if scaler != "" {
		if err := os.WriteFile(filepath.Join(dir, "scaler.json"), []byte(scaler), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return config.ModelConfig{
		Dir:            dir,
		ClassifierFile: "traffic_severity_model.json",
		ScalerFile:     "scaler.json",
	}
}

func TestLoad(t *testing.T) {
	arts, err := Load(writeModelDir(t, testClassifierJSON, testScalerJSON))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if arts.Fallback {
		t.Error("Fallback = true, want false")
	}
	if arts.Scaler == nil {
		t.Fatal("Scaler is nil")
	}
	if arts.Classifier.NumFeatures() != 8 {
		t.Errorf("NumFeatures() = %d, want 8", arts.Classifier.NumFeatures())
	}
}

func TestLoadMissingScaler(t *testing.T) {
	_, err := Load(writeModelDir(t, testClassifierJSON, ""))
	if !errors.Is(err, ErrArtifactMissing) {
		t.Fatalf("error = %v, want ErrArtifactMissing", err)
	}
	if !strings.Contains(err.Error(), "scaler") {
		t.Errorf("error %q should name the scaler", err)
	}
}

func TestLoadMissingClassifier(t *testing.T) {
	_, err := Load(writeModelDir(t, "", testScalerJSON))
	if !errors.Is(err, ErrArtifactMissing) {
		t.Fatalf("error = %v, want ErrArtifactMissing", err)
	}
	if !strings.Contains(err.Error(), "classifier") {
		t.Errorf("error %q should name the classifier", err)
	}
}

func TestLoadCorruptClassifier(t *testing.T) {
	_, err := Load(writeModelDir(t, "{not json", testScalerJSON))
	if !errors.Is(err, ErrArtifactCorrupt) {
		t.Fatalf("error = %v, want ErrArtifactCorrupt", err)
	}
}

func TestLoadCorruptScaler(t *testing.T) {
	_, err := Load(writeModelDir(t, testClassifierJSON, `{"mean": [1, 2], "scale": [1]}`))
	if !errors.Is(err, ErrArtifactCorrupt) {
		t.Fatalf("error = %v, want ErrArtifactCorrupt", err)
	}
}

func TestLoadDimensionMismatch(t *testing.T) {
	scaler := `{"mean": [0, 0], "scale": [1, 1]}`
	_, err := Load(writeModelDir(t, testClassifierJSON, scaler))
	if !errors.Is(err, ErrArtifactCorrupt) {
		t.Fatalf("error = %v, want ErrArtifactCorrupt for classifier/scaler mismatch", err)
	}
}

func TestLoadFallback(t *testing.T) {
	cfg := writeModelDir(t, "", "")
	cfg.AllowFallback = true

	arts, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !arts.Fallback {
		t.Error("Fallback = false, want true")
	}
	if arts.Scaler != nil {
		t.Error("fallback mode should not use a scaler")
	}
	if _, ok := arts.Classifier.(HeuristicClassifier); !ok {
		t.Errorf("Classifier = %T, want HeuristicClassifier", arts.Classifier)
	}
}

func TestLoadFallbackDisabled(t *testing.T) {
	_, err := Load(writeModelDir(t, "", ""))
	if !errors.Is(err, ErrArtifactMissing) {
		t.Fatalf("error = %v, want ErrArtifactMissing when fallback disabled", err)
	}
}
