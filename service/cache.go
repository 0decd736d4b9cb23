package service

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/config"
)

// CachedResult is the raw model output stored in the prediction cache.
// Formatting happens on the way out, so a cached entry and a fresh
// prediction render identically.
type CachedResult struct {
	Output      float64 `json:"output"`
	Probability float64 `json:"probability,omitempty"`
}

// PredictionCache stores model outputs keyed by model name and feature
// vector. A miss is (nil, nil); callers treat errors as misses too, the
// cache is never allowed to block a prediction.
type PredictionCache interface {
	Get(ctx context.Context, key string) (*CachedResult, error)
	Set(ctx context.Context, key string, result *CachedResult) error
}

// CacheKey derives a stable key from the model name and the exact
// feature vector, so identical submissions land on the same entry.
func CacheKey(modelName string, features []float64) string {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, f := range features {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(f))
		h.Write(buf)
	}
	return fmt.Sprintf("predict:%s:%016x", modelName, h.Sum64())
}

// RedisCache backs the prediction cache with a shared redis instance.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg *config.CacheConfig) *RedisCache {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}

	var result CachedResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return &result, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, result *CachedResult) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Ping reports cache connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// MemoryCache is the process-local fallback used when no redis address
// is configured. At capacity an arbitrary entry is dropped.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]CachedResult
	maxEntries int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]CachedResult),
		maxEntries: 1024,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*CachedResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if result, ok := c.entries[key]; ok {
		return &result, nil
	}
	return nil, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, result *CachedResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = *result
	return nil
}
