package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Models    ModelsConfig    `yaml:"models"`
	Cache     CacheConfig     `yaml:"cache"`
	Store     StoreConfig     `yaml:"store"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ModelsConfig locates the serialized model artifacts on disk.
type ModelsConfig struct {
	Dir           string `yaml:"dir"`
	HouseArtifact string `yaml:"house_artifact"`
	LoanArtifact  string `yaml:"loan_artifact"`
}

// CacheConfig controls the optional Redis prediction cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	RedisAddr  string `yaml:"redis_addr"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// StoreConfig bounds the in-memory prediction store backing report downloads.
type StoreConfig struct {
	MaxPredictions int `yaml:"max_predictions"`
}

// ArtifactsConfig enables pulling model artifacts from S3-compatible
// object storage into the model directory before loading.
type ArtifactsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Load reads configuration from a YAML file, fills defaults, and applies
// environment overrides. A missing config file is not an error: the app
// runs on defaults plus environment.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Models.Dir == "" {
		cfg.Models.Dir = "models"
	}
	if cfg.Models.HouseArtifact == "" {
		cfg.Models.HouseArtifact = "house_price_model.json"
	}
	if cfg.Models.LoanArtifact == "" {
		cfg.Models.LoanArtifact = "loan_eligibility_model.json"
	}
	if cfg.Cache.RedisAddr == "" {
		cfg.Cache.RedisAddr = "localhost:6379"
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 10
	}
	if cfg.Store.MaxPredictions == 0 {
		cfg.Store.MaxPredictions = 100
	}

	// Environment overrides
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	if dir := os.Getenv("MODEL_DIR"); dir != "" {
		cfg.Models.Dir = dir
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Cache.RedisAddr = addr
		cfg.Cache.Enabled = true
	}

	return &cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
