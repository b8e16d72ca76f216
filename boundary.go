// boundary.go: argument adapters for callers that do not hold []byte
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	"unsafe"
)

// UpsertString is Upsert for string arguments.
func (c *ScoringCache) UpsertString(key, value string) (Match, error) {
	return c.Upsert(stringBytes(key), stringBytes(value))
}

// Add is Upsert for loosely typed callers, such as decoded JSON or config
// maps. key and value must each be a string or a []byte; anything else,
// including types with a String method, fails with BIGRAM_INVALID_ARGUMENT
// before the cache is touched.
func (c *ScoringCache) Add(key, value interface{}) (Match, error) {
	k, err := toBytes("key", key)
	if err != nil {
		return Match{}, err
	}
	v, err := toBytes("val", value)
	if err != nil {
		return Match{}, err
	}
	return c.Upsert(k, v)
}

// toBytes converts a byte-string-like argument. The result may alias the
// argument; Upsert copies what it keeps.
func toBytes(argument string, v interface{}) ([]byte, error) {
	switch s := v.(type) {
	case []byte:
		return s, nil
	case string:
		return stringBytes(s), nil
	default:
		return nil, NewErrInvalidArgument(argument, v)
	}
}

// stringBytes views s as a byte slice without copying.
func stringBytes(s string) []byte {
	// #nosec G103 - read-only view; the cache copies the bytes it stores
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
