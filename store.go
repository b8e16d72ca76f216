// store.go: insertion ordered entry store with a key index
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	"github.com/gammazero/deque"
)

// entry is a stored (key, value) pair. Both slices are owned by the store.
// data is the caller's payload and is never inspected.
type entry struct {
	key      []byte
	value    []byte
	data     any
	modified int64
}

// entryStore keeps entries in insertion order (oldest at the front) and
// indexes them by key. order and index always hold the same entries.
//
// Capacity is not enforced here; the cache evicts before it inserts.
type entryStore struct {
	order deque.Deque[*entry]
	index map[string]*entry
}

func newEntryStore() *entryStore {
	return &entryStore{
		index: make(map[string]*entry),
	}
}

func (s *entryStore) len() int {
	return s.order.Len()
}

func (s *entryStore) find(key []byte) (*entry, bool) {
	e, ok := s.index[string(key)]
	return e, ok
}

// insert appends a new entry at the tail. key must not be present.
// key and value are copied.
func (s *entryStore) insert(key, value []byte, data any) *entry {
	e := &entry{
		key:   cloneBytes(key),
		value: cloneBytes(value),
		data:  data,
	}
	s.order.PushBack(e)
	s.index[string(e.key)] = e
	return e
}

// evictOldest removes and returns the head of the order. The store must not be empty.
func (s *entryStore) evictOldest() *entry {
	e := s.order.PopFront()
	delete(s.index, string(e.key))
	return e
}

// updateValue replaces value and data in place; the position in order is kept.
func (s *entryStore) updateValue(e *entry, value []byte, data any) {
	e.value = cloneBytes(value)
	e.data = data
}

// position returns the index of e in insertion order, or -1.
func (s *entryStore) position(e *entry) int {
	return s.order.Index(func(candidate *entry) bool {
		return candidate == e
	})
}

func (s *entryStore) at(i int) *entry {
	return s.order.At(i)
}

// keys returns copies of the keys, oldest first.
func (s *entryStore) keys() [][]byte {
	keys := make([][]byte, 0, s.order.Len())
	for i := 0; i < s.order.Len(); i++ {
		keys = append(keys, cloneBytes(s.order.At(i).key))
	}
	return keys
}

func (s *entryStore) reset() {
	s.order.Clear()
	s.index = make(map[string]*entry)
}

// cloneBytes copies b. A nil or empty input yields a non-nil empty slice, so
// stored keys and values never alias caller memory.
func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
