package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/config"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
)

// PredictionStore is an in-memory store for completed predictions,
// kept only so result pages and report downloads can look them up.
// Entries are capped and the oldest are evicted first.
type PredictionStore struct {
	predictions    map[string]*model.Prediction
	mu             sync.RWMutex
	maxPredictions int // Maximum predictions to keep, 0 = unlimited
}

var (
	globalStore *PredictionStore
	storeOnce   sync.Once
)

// InitPredictionStore initializes the global prediction store with configuration
func InitPredictionStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxPredictions := cfg.MaxPredictions
		if maxPredictions < 0 {
			maxPredictions = 0
		}
		globalStore = &PredictionStore{
			predictions:    make(map[string]*model.Prediction),
			maxPredictions: maxPredictions,
		}
		slog.Info("prediction store initialized", "max_predictions", maxPredictions)
	})
}

// GetPredictionStore returns the global prediction store
func GetPredictionStore() *PredictionStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = &PredictionStore{
			predictions:    make(map[string]*model.Prediction),
			maxPredictions: 100, // Default: keep 100 predictions
		}
	}
	return globalStore
}

func (s *PredictionStore) Save(pred *model.Prediction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pred.CreatedAt.IsZero() {
		pred.CreatedAt = time.Now()
	}
	s.predictions[pred.ID] = pred

	// Cleanup if exceeds max
	s.cleanupIfNeeded()
}

func (s *PredictionStore) Get(id string) *model.Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.predictions[id]
}

func (s *PredictionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.predictions, id)
}

// cleanupIfNeeded removes oldest predictions if store exceeds maxPredictions
// Must be called with lock held
func (s *PredictionStore) cleanupIfNeeded() {
	if s.maxPredictions <= 0 {
		return // Unlimited
	}

	if len(s.predictions) <= s.maxPredictions {
		return
	}

	// Sort predictions by creation time
	predictions := make([]*model.Prediction, 0, len(s.predictions))
	for _, p := range s.predictions {
		predictions = append(predictions, p)
	}
	sort.Slice(predictions, func(i, j int) bool {
		return predictions[i].CreatedAt.Before(predictions[j].CreatedAt)
	})

	// Remove oldest predictions
	removeCount := len(predictions) - s.maxPredictions
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old prediction",
			"prediction_id", predictions[i].ID,
			"created_at", predictions[i].CreatedAt,
		)
		delete(s.predictions, predictions[i].ID)
	}
}

// Count returns the number of predictions in the store
func (s *PredictionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.predictions)
}
