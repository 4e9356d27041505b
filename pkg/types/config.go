// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Configuration validation errors.
var (
	ErrCacheCapacity    = errors.New("cache capacity must be at least 1")
	ErrStoreDir         = errors.New("store directory must not be empty")
	ErrBatchConcurrency = errors.New("batch concurrency must be at least 1")
	ErrLogLevel         = errors.New("unknown log level")
	ErrLogFormat        = errors.New("unknown log format")
)

// CacheConfig holds settings for the per-operation extraction cache.
type CacheConfig struct {
	// Capacity is the maximum number of cached extraction results
	// (default 512). Least recently used entries are evicted first.
	Capacity int `json:"capacity" yaml:"capacity" mapstructure:"capacity"`
}

// StoreConfig holds settings for the lesson store.
type StoreConfig struct {
	// Dir is the directory holding the lesson database and exports
	// (default "lessons").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// BatchConfig holds settings for directory processing.
type BatchConfig struct {
	// Concurrency is the number of articles processed at once (default 4).
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`
}

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config is the tutor-engine configuration file layout.
type Config struct {
	Cache CacheConfig `json:"cache" yaml:"cache" mapstructure:"cache"`
	Store StoreConfig `json:"store" yaml:"store" mapstructure:"store"`
	Batch BatchConfig `json:"batch" yaml:"batch" mapstructure:"batch"`
	Log   LogConfig   `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when no file or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{Capacity: 512},
		Store: StoreConfig{Dir: "lessons"},
		Batch: BatchConfig{Concurrency: 4},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("cache.capacity=%d: %w", c.Cache.Capacity, ErrCacheCapacity)
	}
	if c.Store.Dir == "" {
		return ErrStoreDir
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency=%d: %w", c.Batch.Concurrency, ErrBatchConcurrency)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrLogLevel)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrLogFormat)
	}
	return nil
}
