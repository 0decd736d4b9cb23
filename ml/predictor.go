package ml

import (
	"fmt"
	"math"
)

// Predictor is the minimal surface of a deserialized model: a feature
// vector in, a raw output out. The meaning of the output depends on the
// algorithm (a price for regression, a class label for classification).
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// LinearModel is an ordinary least squares regressor restored from an
// artifact's fitted parameters.
type LinearModel struct {
	Intercept    float64
	Coefficients []float64
}

func (m *LinearModel) Predict(features []float64) (float64, error) {
	z, err := dot(m.Coefficients, features, m.Intercept)
	if err != nil {
		return 0, err
	}
	return z, nil
}

// LogisticModel is a binary logistic regression classifier. Predict
// returns the class label; Proba exposes the positive-class probability
// for confidence reporting.
type LogisticModel struct {
	Intercept    float64
	Coefficients []float64
}

// Proba returns P(class=1) = 1/(1+e^-z) for z = w.x + b.
func (m *LogisticModel) Proba(features []float64) (float64, error) {
	z, err := dot(m.Coefficients, features, m.Intercept)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Predict thresholds the probability at 0.5 and returns 1 or 0.
func (m *LogisticModel) Predict(features []float64) (float64, error) {
	p, err := m.Proba(features)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

func dot(coefficients, features []float64, intercept float64) (float64, error) {
	if len(features) != len(coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(coefficients), len(features))
	}
	sum := intercept
	for i, c := range coefficients {
		sum += c * features[i]
	}
	return sum, nil
}
