// cache_generic.go: type-safe generic scoring API
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

// Text is the constraint for keys and values of a GenericScoringCache.
type Text interface {
	~string | ~[]byte
}

// GenericScoringCache provides a type-safe scoring interface using Go
// generics. Keys and values must be string-like or byte-slice-like, so named
// types such as `type TicketID string` work while integers, structs and
// fmt.Stringer implementations are rejected at compile time.
//
// Example:
//
//	sc, _ := bigram.NewGenericScoringCache[string, string](bigram.Config{Capacity: 1_000})
//	m, _ := sc.Upsert("T-42", "disk full on db-01")
//	if m.Found {
//	    fmt.Printf("similar to ticket %s (%.2f)\n", m.Key, m.Score)
//	}
type GenericScoringCache[K Text, V Text] struct {
	inner Scorer
}

// NewGenericScoringCache creates a new type-safe scoring cache from cfg.
func NewGenericScoringCache[K Text, V Text](cfg Config) (*GenericScoringCache[K, V], error) {
	inner, err := NewScoringCache(cfg)
	if err != nil {
		return nil, err
	}
	return &GenericScoringCache[K, V]{inner: inner}, nil
}

// WrapScorer gives typed access to an existing Scorer, for example a
// *SyncScoringCache shared with a HotConfig.
func WrapScorer[K Text, V Text](s Scorer) *GenericScoringCache[K, V] {
	return &GenericScoringCache[K, V]{inner: s}
}

// Upsert stores value under key and returns the best earlier match.
// Match.Key holds the bytes of the matching key.
func (c *GenericScoringCache[K, V]) Upsert(key K, value V) (Match, error) {
	return c.inner.Upsert([]byte(key), []byte(value))
}

// UpsertWithData is Upsert with a payload returned in Match.Data.
func (c *GenericScoringCache[K, V]) UpsertWithData(key K, value V, data any) (Match, error) {
	return c.inner.UpsertWithData([]byte(key), []byte(value), data)
}

// Get returns the value stored under key.
func (c *GenericScoringCache[K, V]) Get(key K) (value V, found bool) {
	b, found := c.inner.Get([]byte(key))
	if !found {
		var zero V
		return zero, false
	}
	return V(b), true
}

// Has reports whether key is stored.
func (c *GenericScoringCache[K, V]) Has(key K) bool {
	return c.inner.Has([]byte(key))
}

// Compare scores the values stored under a and b with the current weights.
func (c *GenericScoringCache[K, V]) Compare(a, b K) (float64, error) {
	return c.inner.Compare([]byte(a), []byte(b))
}

// Len returns the number of stored entries.
func (c *GenericScoringCache[K, V]) Len() int {
	return c.inner.Len()
}

// Capacity returns the maximum number of entries.
func (c *GenericScoringCache[K, V]) Capacity() int {
	return c.inner.Capacity()
}

// SetCapacity changes the capacity, evicting the oldest entries if needed.
func (c *GenericScoringCache[K, V]) SetCapacity(capacity int) error {
	return c.inner.SetCapacity(capacity)
}

// Clear removes all entries and resets statistics.
func (c *GenericScoringCache[K, V]) Clear() {
	c.inner.Clear()
}

// Stats returns current cache statistics.
func (c *GenericScoringCache[K, V]) Stats() Stats {
	return c.inner.Stats()
}

// Close releases the cache. Upserts fail afterwards.
func (c *GenericScoringCache[K, V]) Close() error {
	return c.inner.Close()
}

var _ Resizer = (*GenericScoringCache[string, string])(nil)
