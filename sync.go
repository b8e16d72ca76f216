// sync.go: mutex guarded ScoringCache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import "sync"

// SyncScoringCache serializes every call to a ScoringCache behind one mutex.
//
// The frequency table is shared by every upsert and the weight pass touches
// all of it, so there is no finer-grained locking.
type SyncScoringCache struct {
	mu    sync.Mutex
	inner *ScoringCache
}

// NewSyncScoringCache creates a ScoringCache from config and wraps it.
func NewSyncScoringCache(config Config) (*SyncScoringCache, error) {
	inner, err := NewScoringCache(config)
	if err != nil {
		return nil, err
	}
	return &SyncScoringCache{inner: inner}, nil
}

// Upsert locks and calls ScoringCache.Upsert.
func (s *SyncScoringCache) Upsert(key, value []byte) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Upsert(key, value)
}

// UpsertWithData locks and calls ScoringCache.UpsertWithData.
func (s *SyncScoringCache) UpsertWithData(key, value []byte, data any) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.UpsertWithData(key, value, data)
}

// UpsertString locks and calls ScoringCache.UpsertString.
func (s *SyncScoringCache) UpsertString(key, value string) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.UpsertString(key, value)
}

// Add locks and calls ScoringCache.Add.
func (s *SyncScoringCache) Add(key, value interface{}) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Add(key, value)
}

func (s *SyncScoringCache) Has(key []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Has(key)
}

func (s *SyncScoringCache) Get(key []byte) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(key)
}

// LastModified locks and calls ScoringCache.LastModified.
func (s *SyncScoringCache) LastModified(key []byte) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.LastModified(key)
}

func (s *SyncScoringCache) Compare(keyA, keyB []byte) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Compare(keyA, keyB)
}

func (s *SyncScoringCache) Keys() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Keys()
}

func (s *SyncScoringCache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

func (s *SyncScoringCache) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Capacity()
}

func (s *SyncScoringCache) SetCapacity(capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SetCapacity(capacity)
}

func (s *SyncScoringCache) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Clear()
}

func (s *SyncScoringCache) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Stats()
}

func (s *SyncScoringCache) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Close()
}

// Compile-time interface checks
var (
	_ Scorer = (*ScoringCache)(nil)
	_ Scorer = (*SyncScoringCache)(nil)
)
