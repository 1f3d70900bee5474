package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	DatasetPath     string
	BannerPath      string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DatasetCacheSize bounds the loader's per-source cache. The common case
	// is one entry; demos that cycle fixture files need a few more.
	DatasetCacheSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseDatasetCacheSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		DatasetPath:      envOrDefault("DATASET_PATH", "nuclear_explosions.csv"),
		BannerPath:       envOrDefault("BANNER_PATH", "banner.png"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		LogFormat:        envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:  shutdownTimeout,
		DatasetCacheSize: cacheSize,
	}

	if cfg.DatasetPath == "" {
		return nil, errors.New("DATASET_PATH is required")
	}
	if cfg.BannerPath == "" {
		return nil, errors.New("BANNER_PATH is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func parseDatasetCacheSize() (int, error) {
	s := os.Getenv("DATASET_CACHE_SIZE")
	if s == "" {
		return 8, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid DATASET_CACHE_SIZE")
	}
	return n, nil
}
