// cache.go: the scoring cache engine
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import "time"

// ScoringCache is a bounded FIFO cache of (key, value) byte strings that
// reports, on every upsert, the most similar earlier value.
//
// ScoringCache is not safe for concurrent use. Wrap it with
// NewSyncScoringCache, or hold one lock around every call.
type ScoringCache struct {
	capacity int
	store    *entryStore
	freq     *frequencyTable
	closed   bool

	logger       Logger
	timeProvider TimeProvider
	metrics      MetricsCollector
	onEvict      func(key, value []byte)

	upserts   uint64
	inserts   uint64
	updates   uint64
	evictions uint64
	matches   uint64
}

// New creates a ScoringCache holding at most capacity entries, with default
// collaborators. It fails with BIGRAM_INVALID_CAPACITY when capacity <= 0.
func New(capacity int) (*ScoringCache, error) {
	cfg := DefaultConfig()
	cfg.Capacity = capacity
	return NewScoringCache(cfg)
}

// NewScoringCache creates a ScoringCache from config.
func NewScoringCache(config Config) (*ScoringCache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &ScoringCache{
		capacity:     config.Capacity,
		store:        newEntryStore(),
		freq:         newFrequencyTable(),
		logger:       config.Logger,
		timeProvider: config.TimeProvider,
		metrics:      config.MetricsCollector,
		onEvict:      config.OnEvict,
	}, nil
}

// Upsert stores value under key and returns the best match among the entries
// inserted before key. It is UpsertWithData with a nil payload.
//
// If key is already present its value is replaced in place and it keeps its
// FIFO position; only entries older than it are candidates. Otherwise the
// oldest entries are evicted until there is room, key is appended, and every
// other entry is a candidate. Weights are recomputed before scoring.
//
// Ties keep the earliest candidate. With no candidate the result is
// Match{Score: NoMatchScore}.
func (c *ScoringCache) Upsert(key, value []byte) (Match, error) {
	return c.UpsertWithData(key, value, nil)
}

// UpsertWithData is Upsert with an opaque payload stored next to the value.
// The payload of the best matching entry is returned in Match.Data. Updating
// a key replaces its payload.
func (c *ScoringCache) UpsertWithData(key, value []byte, data any) (Match, error) {
	if c.closed {
		return Match{}, NewErrCacheClosed("upsert")
	}

	start := time.Now()

	e, found := c.store.find(key)
	if found {
		if err := c.replace(e, value, data); err != nil {
			return Match{}, err
		}
	} else {
		var err error
		if e, err = c.insert(key, value, data); err != nil {
			return Match{}, err
		}
	}
	e.modified = c.timeProvider.Now()

	c.freq.recomputeWeights(c.store.len())

	m := c.bestMatch(e)

	c.upserts++
	if found {
		c.updates++
	} else {
		c.inserts++
	}
	if m.Found {
		c.matches++
		c.metrics.RecordMatch(m.Score)
	}
	c.metrics.RecordUpsert(time.Since(start).Nanoseconds(), !found)

	return m, nil
}

// replace swaps the value of a stored entry, moving its bigram contribution
// from the old value to the new one.
func (c *ScoringCache) replace(e *entry, value []byte, data any) error {
	if err := c.freq.adjust(e.value, -1); err != nil {
		c.logger.Error("frequency table corrupted", "operation", "update", "key", string(e.key), "error", err)
		return err
	}
	c.store.updateValue(e, value, data)
	// increments cannot fail
	_ = c.freq.adjust(e.value, +1)
	return nil
}

// insert evicts the oldest entries until there is room, then appends key.
func (c *ScoringCache) insert(key, value []byte, data any) (*entry, error) {
	for c.store.len() >= c.capacity {
		if err := c.evictOldest(); err != nil {
			return nil, err
		}
	}
	e := c.store.insert(key, value, data)
	_ = c.freq.adjust(e.value, +1)
	return e, nil
}

// evictOldest retracts the head entry's bigrams and drops it.
func (c *ScoringCache) evictOldest() error {
	oldest := c.store.at(0)
	if err := c.freq.adjust(oldest.value, -1); err != nil {
		c.logger.Error("frequency table corrupted", "operation", "evict", "key", string(oldest.key), "error", err)
		return err
	}
	c.store.evictOldest()

	c.evictions++
	c.metrics.RecordEviction()
	c.logger.Debug("entry evicted", "key", string(oldest.key), "size", c.store.len(),
		"age_ns", c.timeProvider.Now()-oldest.modified)
	if c.onEvict != nil {
		c.onEvict(oldest.key, oldest.value)
	}
	return nil
}

// bestMatch scans the entries positioned before e, oldest first, and keeps
// the first one with the strictly highest score.
func (c *ScoringCache) bestMatch(e *entry) Match {
	best := Match{Score: NoMatchScore}
	pos := c.store.position(e)
	for i := 0; i < pos; i++ {
		candidate := c.store.at(i)
		s := score(e.value, candidate.value, &c.freq.weights)
		if s > best.Score {
			best.Score = s
			best.Key = candidate.key
			best.Data = candidate.data
			best.Found = true
		}
	}
	if best.Found {
		best.Key = cloneBytes(best.Key)
	}
	return best
}

// Has reports whether key is stored.
func (c *ScoringCache) Has(key []byte) bool {
	_, ok := c.store.find(key)
	return ok
}

// Get returns a copy of the value stored under key.
func (c *ScoringCache) Get(key []byte) ([]byte, bool) {
	e, ok := c.store.find(key)
	if !ok {
		return nil, false
	}
	return cloneBytes(e.value), true
}

// LastModified returns when key was last inserted or updated, in nanoseconds
// from the configured TimeProvider.
func (c *ScoringCache) LastModified(key []byte) (int64, bool) {
	e, ok := c.store.find(key)
	if !ok {
		return 0, false
	}
	return e.modified, true
}

// Compare scores the values stored under keyA and keyB with the current
// weights. It returns BIGRAM_KEY_NOT_FOUND if either key is missing.
func (c *ScoringCache) Compare(keyA, keyB []byte) (float64, error) {
	a, ok := c.store.find(keyA)
	if !ok {
		return 0, NewErrKeyNotFound(keyA)
	}
	b, ok := c.store.find(keyB)
	if !ok {
		return 0, NewErrKeyNotFound(keyB)
	}
	return score(a.value, b.value, &c.freq.weights), nil
}

// Keys returns copies of the stored keys, oldest first.
func (c *ScoringCache) Keys() [][]byte {
	return c.store.keys()
}

// DocumentFrequency returns how many stored values contain bg.
func (c *ScoringCache) DocumentFrequency(bg uint16) int {
	return int(c.freq.counts[bg])
}

// Weight returns the current IDF weight of bg.
func (c *ScoringCache) Weight(bg uint16) float64 {
	return c.freq.weights[bg]
}

// Len returns the number of stored entries.
func (c *ScoringCache) Len() int {
	return c.store.len()
}

// Capacity returns the maximum number of entries.
func (c *ScoringCache) Capacity() int {
	return c.capacity
}

// SetCapacity changes the capacity. When the new capacity is below the
// current size the oldest entries are evicted, in FIFO order, and the
// weights are recomputed.
func (c *ScoringCache) SetCapacity(capacity int) error {
	if c.closed {
		return NewErrCacheClosed("set_capacity")
	}
	if capacity <= 0 {
		return NewErrInvalidCapacity(capacity)
	}

	old := c.capacity
	c.capacity = capacity
	evicted := 0
	for c.store.len() > c.capacity {
		if err := c.evictOldest(); err != nil {
			return err
		}
		evicted++
	}
	if evicted > 0 {
		c.freq.recomputeWeights(c.store.len())
	}

	c.logger.Debug("capacity changed", "old", old, "new", capacity, "evicted", evicted)
	return nil
}

// Clear removes every entry, resets the frequency table and the statistics.
func (c *ScoringCache) Clear() {
	c.store.reset()
	c.freq.reset()

	c.upserts = 0
	c.inserts = 0
	c.updates = 0
	c.evictions = 0
	c.matches = 0
}

// Stats returns cache statistics.
func (c *ScoringCache) Stats() Stats {
	return Stats{
		Upserts:   c.upserts,
		Inserts:   c.inserts,
		Updates:   c.updates,
		Evictions: c.evictions,
		Matches:   c.matches,
		Size:      c.store.len(),
		Capacity:  c.capacity,
	}
}

// Close clears the cache. Upsert and SetCapacity fail afterwards.
func (c *ScoringCache) Close() error {
	c.Clear()
	c.closed = true
	return nil
}
