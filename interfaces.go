// interfaces.go: public interfaces for bigram
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

// Scorer is the public surface shared by ScoringCache and SyncScoringCache.
type Scorer interface {
	// Upsert inserts key with value, or replaces the value of an existing key,
	// and returns the best match among the entries positioned before it in
	// insertion order.
	Upsert(key, value []byte) (Match, error)

	// UpsertWithData is Upsert with an opaque payload that is returned in
	// Match.Data when the entry is a best match.
	UpsertWithData(key, value []byte, data any) (Match, error)

	// UpsertString is Upsert for string arguments.
	UpsertString(key, value string) (Match, error)

	// Add is the boundary adapter for loosely typed callers.
	// key and value must be string or []byte.
	Add(key, value interface{}) (Match, error)

	// Has reports whether key is currently stored.
	Has(key []byte) bool

	// Get returns a copy of the value stored under key.
	Get(key []byte) ([]byte, bool)

	// Compare scores two stored entries against each other using the
	// current weights. It never mutates the cache.
	Compare(keyA, keyB []byte) (float64, error)

	// Keys returns copies of the stored keys, oldest first.
	Keys() [][]byte

	// Len returns the current number of entries.
	Len() int

	// Capacity returns the maximum number of entries.
	Capacity() int

	// SetCapacity changes the capacity. Shrinking evicts the oldest entries.
	SetCapacity(capacity int) error

	// Clear removes every entry and resets the frequency table.
	// Statistics are reset as well.
	Clear()

	// Stats returns cache statistics.
	Stats() Stats

	// Close releases the cache. Later calls fail with BIGRAM_CACHE_CLOSED.
	Close() error
}

// Resizer is implemented by caches whose capacity can change at runtime.
// HotConfig only needs this much.
type Resizer interface {
	Capacity() int
	SetCapacity(capacity int) error
}

// Match is the result of an upsert: the most similar earlier entry.
type Match struct {
	// Score is in [0, 1], or NoMatchScore when nothing was compared.
	Score float64

	// Key is a copy of the best matching key. Nil when Found is false.
	Key []byte

	// Data is the payload of the best matching entry. Nil when Found is
	// false or when the entry was stored without one.
	Data any

	// Found is false when the upserted entry had no earlier entry to compare against.
	Found bool
}

// Stats provides statistics about cache activity.
type Stats struct {
	// Upserts is the number of successful upsert operations
	Upserts uint64

	// Inserts is the number of upserts that stored a new key
	Inserts uint64

	// Updates is the number of upserts that replaced an existing value
	Updates uint64

	// Evictions is the number of entries removed to respect capacity
	Evictions uint64

	// Matches is the number of upserts that found at least one candidate
	Matches uint64

	// Size is the current number of entries
	Size int

	// Capacity is the maximum number of entries
	Capacity int
}

// UpdateRatio returns the share of upserts that hit an existing key, as a
// percentage (0-100). Returns 0 when no upsert happened yet.
func (s Stats) UpdateRatio() float64 {
	if s.Upserts == 0 {
		return 0
	}
	return float64(s.Updates) / float64(s.Upserts) * 100
}

// Logger defines a minimal structured logging interface.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing.
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing.
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing.
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing.
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides the current time in nanoseconds.
type TimeProvider interface {
	Now() int64
}

// MetricsCollector receives upsert metrics. Implementations can forward them
// to Prometheus, OpenTelemetry or any other backend; see the otel sub-module.
//
// Methods are called synchronously from Upsert and must be cheap.
type MetricsCollector interface {
	// RecordUpsert records an upsert with its latency.
	// inserted is true for a new key, false for an update.
	RecordUpsert(latencyNs int64, inserted bool)

	// RecordEviction records an entry evicted to respect capacity.
	RecordEviction()

	// RecordMatch records the best score of an upsert that had candidates.
	RecordMatch(score float64)
}

// NoOpMetricsCollector is a metrics collector that does nothing.
type NoOpMetricsCollector struct{}

// RecordUpsert does nothing.
func (NoOpMetricsCollector) RecordUpsert(latencyNs int64, inserted bool) {}

// RecordEviction does nothing.
func (NoOpMetricsCollector) RecordEviction() {}

// RecordMatch does nothing.
func (NoOpMetricsCollector) RecordMatch(score float64) {}
