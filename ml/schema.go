package ml

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FeatureKind describes how a submitted form value becomes a vector entry
type FeatureKind string

const (
	FeatureNumeric     FeatureKind = "numeric"
	FeatureInteger     FeatureKind = "integer"
	FeatureCategorical FeatureKind = "categorical"
)

// Feature is one entry of a model's input schema. Categorical features
// carry their level→code encoding; numeric features may carry bounds.
type Feature struct {
	Name   string         `json:"name"`
	Kind   FeatureKind    `json:"kind"`
	Min    *float64       `json:"min,omitempty"`
	Max    *float64       `json:"max,omitempty"`
	Levels map[string]int `json:"levels,omitempty"`
}

// Schema is the ordered feature list a model was trained against. Order
// is positional: the vector produced by Vectorize follows it exactly.
type Schema []Feature

// FieldError reports a single missing or malformed form field. Handlers
// surface the message to the user verbatim.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// IsFieldError reports whether err is a validation failure on a single field
func IsFieldError(err error) bool {
	var target *FieldError
	return errors.As(err, &target)
}

// Vectorize assembles the fixed-order feature vector from submitted form
// values. Every schema field must be present and well-formed; the first
// violation is returned as a FieldError.
func (s Schema) Vectorize(values map[string]string) ([]float64, error) {
	vec := make([]float64, 0, len(s))

	for i := range s {
		f := &s[i]
		raw := strings.TrimSpace(values[f.Name])
		if raw == "" {
			return nil, &FieldError{Field: f.Name, Reason: "is required"}
		}

		switch f.Kind {
		case FeatureCategorical:
			code, ok := f.Levels[raw]
			if !ok {
				return nil, &FieldError{
					Field:  f.Name,
					Reason: "must be one of " + strings.Join(f.levelNames(), ", "),
				}
			}
			vec = append(vec, float64(code))

		case FeatureInteger:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, &FieldError{Field: f.Name, Reason: "must be a whole number"}
			}
			v := float64(n)
			if err := f.checkBounds(v); err != nil {
				return nil, err
			}
			vec = append(vec, v)

		default: // FeatureNumeric
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &FieldError{Field: f.Name, Reason: "must be a number"}
			}
			if err := f.checkBounds(v); err != nil {
				return nil, err
			}
			vec = append(vec, v)
		}
	}

	return vec, nil
}

func (f *Feature) checkBounds(v float64) error {
	if f.Min != nil && v < *f.Min {
		return &FieldError{Field: f.Name, Reason: fmt.Sprintf("must be at least %g", *f.Min)}
	}
	if f.Max != nil && v > *f.Max {
		return &FieldError{Field: f.Name, Reason: fmt.Sprintf("must be at most %g", *f.Max)}
	}
	return nil
}

// levelNames returns the categorical levels sorted by code so error
// messages list them in encoding order.
func (f *Feature) levelNames() []string {
	names := make([]string, 0, len(f.Levels))
	for name := range f.Levels {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return f.Levels[names[i]] < f.Levels[names[j]]
	})
	return names
}
