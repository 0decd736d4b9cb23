package ml

import (
	"errors"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func testSchema() Schema {
	return Schema{
		{Name: "bedrooms", Kind: FeatureInteger, Min: floatPtr(0), Max: floatPtr(20)},
		{Name: "flat_area_sqft", Kind: FeatureNumeric, Min: floatPtr(1)},
		{Name: "property_area", Kind: FeatureCategorical, Levels: map[string]int{
			"Urban": 0, "Semiurban": 1, "Rural": 2,
		}},
	}
}

func TestVectorizeOrder(t *testing.T) {
	s := testSchema()
	vec, err := s.Vectorize(map[string]string{
		"property_area":  "Rural",
		"flat_area_sqft": "1520.5",
		"bedrooms":       "3",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []float64{3, 1520.5, 2}
	if len(vec) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(vec))
	}
	for i := range want {
		if vec[i] != want[i] {
			t.Errorf("Expected vec[%d] = %v, got %v", i, want[i], vec[i])
		}
	}
}

func TestVectorizeDeterministic(t *testing.T) {
	s := testSchema()
	values := map[string]string{
		"bedrooms":       "4",
		"flat_area_sqft": "2000",
		"property_area":  "Urban",
	}
	first, err := s.Vectorize(values)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := s.Vectorize(values)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Expected identical vectors, got %v and %v at index %d", first[i], second[i], i)
		}
	}
}

func TestVectorizeCategorical(t *testing.T) {
	s := testSchema()
	vec, err := s.Vectorize(map[string]string{
		"bedrooms":       "2",
		"flat_area_sqft": "900",
		"property_area":  "Semiurban",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if vec[2] != 1 {
		t.Errorf("Expected Semiurban to encode as 1, got %v", vec[2])
	}
}

func TestVectorizeUnknownLevel(t *testing.T) {
	s := testSchema()
	_, err := s.Vectorize(map[string]string{
		"bedrooms":       "2",
		"flat_area_sqft": "900",
		"property_area":  "Suburb",
	})
	if err == nil {
		t.Fatal("Expected error for unknown level, got nil")
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected FieldError, got %T", err)
	}
	if fe.Field != "property_area" {
		t.Errorf("Expected field property_area, got %s", fe.Field)
	}
	if !strings.Contains(fe.Reason, "Urban, Semiurban, Rural") {
		t.Errorf("Expected levels listed in encoding order, got %q", fe.Reason)
	}
}

func TestVectorizeInvalidValues(t *testing.T) {
	s := testSchema()
	valid := map[string]string{
		"bedrooms":       "3",
		"flat_area_sqft": "1200",
		"property_area":  "Urban",
	}

	tests := []struct {
		name   string
		field  string
		value  string
		reason string
	}{
		{"missing field", "bedrooms", "", "is required"},
		{"whitespace only", "flat_area_sqft", "   ", "is required"},
		{"non-numeric integer", "bedrooms", "many", "whole number"},
		{"fractional integer", "bedrooms", "2.5", "whole number"},
		{"non-numeric float", "flat_area_sqft", "big", "must be a number"},
		{"nan rejected", "flat_area_sqft", "NaN", "must be a number"},
		{"inf rejected", "flat_area_sqft", "+Inf", "must be a number"},
		{"below minimum", "bedrooms", "-1", "at least"},
		{"above maximum", "bedrooms", "25", "at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make(map[string]string, len(valid))
			for k, v := range valid {
				values[k] = v
			}
			values[tt.field] = tt.value

			_, err := s.Vectorize(values)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected FieldError, got %T", err)
			}
			if fe.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, fe.Field)
			}
			if !strings.Contains(fe.Reason, tt.reason) {
				t.Errorf("Expected reason to contain %q, got %q", tt.reason, fe.Reason)
			}
		})
	}
}

func TestIsFieldError(t *testing.T) {
	fe := &FieldError{Field: "bedrooms", Reason: "is required"}
	if !IsFieldError(fe) {
		t.Error("Expected IsFieldError to be true for FieldError")
	}
	if IsFieldError(errors.New("boom")) {
		t.Error("Expected IsFieldError to be false for generic error")
	}
	if IsFieldError(nil) {
		t.Error("Expected IsFieldError to be false for nil")
	}
}
