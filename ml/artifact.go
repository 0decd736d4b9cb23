package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Algorithm names accepted in model artifacts.
const (
	AlgorithmLinearRegression   = "linear_regression"
	AlgorithmLogisticRegression = "logistic_regression"
)

// Artifact is the on-disk form of a pre-trained model: the fitted
// parameters plus the feature schema (order, bounds, categorical
// encodings) the model was trained against. The schema travels with the
// parameters so serving never has to guess an encoding.
type Artifact struct {
	Name         string    `json:"name"`
	Algorithm    string    `json:"algorithm"`
	Version      string    `json:"version,omitempty"`
	TrainedAt    string    `json:"trained_at,omitempty"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	Features     Schema    `json:"features"`
}

// LoadArtifact reads and validates one model artifact file.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the artifact is internally consistent before it is
// allowed to serve predictions.
func (a *Artifact) Validate() error {
	if a.Name == "" {
		return errors.New("artifact missing name")
	}
	if a.Algorithm != AlgorithmLinearRegression && a.Algorithm != AlgorithmLogisticRegression {
		return fmt.Errorf("unknown algorithm %q", a.Algorithm)
	}
	if len(a.Features) == 0 {
		return errors.New("artifact has no features")
	}
	if len(a.Coefficients) != len(a.Features) {
		return fmt.Errorf("artifact has %d coefficients for %d features",
			len(a.Coefficients), len(a.Features))
	}
	for i := range a.Features {
		f := &a.Features[i]
		switch f.Kind {
		case FeatureNumeric, FeatureInteger:
		case FeatureCategorical:
			if len(f.Levels) == 0 {
				return fmt.Errorf("categorical feature %q has no levels", f.Name)
			}
		default:
			return fmt.Errorf("feature %q has unknown kind %q", f.Name, f.Kind)
		}
	}
	return nil
}

// Predictor builds the in-memory predictor for the artifact's algorithm.
func (a *Artifact) Predictor() Predictor {
	if a.Algorithm == AlgorithmLogisticRegression {
		return &LogisticModel{Intercept: a.Intercept, Coefficients: a.Coefficients}
	}
	return &LinearModel{Intercept: a.Intercept, Coefficients: a.Coefficients}
}
