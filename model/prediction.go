package model

import (
	"time"
)

// PredictionKind identifies which model produced a prediction
type PredictionKind string

// PredictionKind constants
const (
	KindHouse PredictionKind = "house"
	KindLoan  PredictionKind = "loan"
)

// InputField is a single submitted form value. Inputs are kept as an
// ordered slice, not a map, so reports list parameters in schema order.
type InputField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Prediction represents one completed model invocation. Records live in
// the in-memory store only, to back report downloads for the current
// process; nothing is persisted.
type Prediction struct {
	ID         string          `json:"id"`
	Kind       PredictionKind  `json:"kind"`
	Title      string          `json:"title"`
	Inputs     []InputField    `json:"inputs"`
	Result     string          `json:"result"`
	Confidence float64         `json:"confidence,omitempty"` // percent; 0 means not reported
	Factors    []ExplainFactor `json:"factors,omitempty"`
	CacheHit   bool            `json:"cache_hit,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ExplainFactor is a qualitative driver shown alongside a result.
type ExplainFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
	Desc   string `json:"desc"`
}
