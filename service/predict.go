package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/ml"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/pkg/logger"
)

// probaModel is implemented by classifiers that report a positive-class
// probability alongside the label.
type probaModel interface {
	Proba(features []float64) (float64, error)
}

// PredictService runs a form submission through vectorization, cache,
// model and store, producing the record the result page renders.
type PredictService struct {
	registry *ml.Registry
	cache    PredictionCache
	store    *PredictionStore
}

func NewPredictService(registry *ml.Registry, cache PredictionCache, store *PredictionStore) *PredictService {
	return &PredictService{registry: registry, cache: cache, store: store}
}

// Predict evaluates the submitted form values against the named model
// and stores the outcome. It returns ml.ErrModelUnavailable when the
// model did not load, and a *ml.FieldError when a value is missing or
// malformed.
func (s *PredictService) Predict(ctx context.Context, kind model.PredictionKind, values map[string]string) (*model.Prediction, error) {
	handle, err := s.registry.Lookup(string(kind))
	if err != nil {
		return nil, err
	}

	features, err := handle.Artifact.Features.Vectorize(values)
	if err != nil {
		return nil, err
	}

	key := CacheKey(string(kind), features)
	result, cacheHit := s.cachedResult(ctx, key)
	if !cacheHit {
		output, err := handle.Predictor.Predict(features)
		if err != nil {
			return nil, err
		}
		result = &CachedResult{Output: output}
		if pm, ok := handle.Predictor.(probaModel); ok {
			if p, err := pm.Proba(features); err == nil {
				result.Probability = p
			}
		}
		s.storeResult(ctx, key, result)
	}

	pred := &model.Prediction{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     Title(kind),
		Inputs:    inputFields(handle.Artifact.Features, values),
		Result:    FormatResult(kind, result.Output),
		Factors:   ExplainFactors(kind),
		CacheHit:  cacheHit,
		CreatedAt: time.Now(),
	}
	if kind == model.KindLoan {
		pred.Confidence = Confidence(result.Probability, result.Output >= 0.5)
	}

	s.store.Save(pred)

	logger.Info(ctx, "prediction completed",
		"prediction_id", pred.ID,
		"result", pred.Result,
		"cache_hit", cacheHit,
	)
	return pred, nil
}

func (s *PredictService) cachedResult(ctx context.Context, key string) (*CachedResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	result, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn(ctx, "prediction cache get failed", "key", key, "error", err)
		return nil, false
	}
	return result, result != nil
}

func (s *PredictService) storeResult(ctx context.Context, key string, result *CachedResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, result); err != nil {
		logger.Warn(ctx, "prediction cache set failed", "key", key, "error", err)
	}
}

// inputFields pairs schema order with the submitted values for display
func inputFields(schema ml.Schema, values map[string]string) []model.InputField {
	fields := make([]model.InputField, 0, len(schema))
	for _, f := range schema {
		fields = append(fields, model.InputField{
			Name:  FieldLabel(f.Name),
			Value: strings.TrimSpace(values[f.Name]),
		})
	}
	return fields
}
