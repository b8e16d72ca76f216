// config.go: configuration for bigram
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for a ScoringCache.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	// Must be > 0.
	Capacity int

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider stamps entries when they are inserted or updated
	// (LastModified, eviction logs). Upsert latency uses the monotonic clock.
	// If nil, a go-timecache backed provider is used.
	TimeProvider TimeProvider

	// MetricsCollector receives upsert, eviction and match metrics.
	// If nil, NoOpMetricsCollector is used.
	MetricsCollector MetricsCollector

	// OnEvict is called with the evicted key and value after an entry leaves
	// the cache because of capacity. The slices are owned by the callback.
	OnEvict func(key, value []byte)
}

// Validate checks the capacity and fills in default collaborators.
//
// Unlike the optional collaborators, Capacity has no default: a cache built
// from a Config with Capacity <= 0 is an error (BIGRAM_INVALID_CAPACITY).
//
// Defaults applied:
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return NewErrInvalidCapacity(c.Capacity)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Capacity:         DefaultCapacity,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
