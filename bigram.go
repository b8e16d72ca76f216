// Package bigram provides a bounded in-memory cache that scores every new
// or updated value against the values already stored.
//
// Similarity is a weighted Sørensen–Dice coefficient over two-byte bigrams.
// Each bigram is weighted by an inverse document frequency term computed from
// the current cache contents, so bigrams shared by most entries contribute
// almost nothing and rare bigrams dominate the score.
//
// Example usage:
//
//	sc, err := bigram.New(1_000)
//	if err != nil {
//		return err
//	}
//
//	sc.UpsertString("ticket:1", "disk full on db-01")
//	// ... more tickets ...
//	m, _ := sc.UpsertString("ticket:9", "disk full on db-02")
//	if m.Found && m.Score > 0.8 {
//		fmt.Println("probable duplicate of", string(m.Key))
//	}
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

const (
	// Version of the bigram library
	Version = "v0.1.0-dev"

	// DefaultCapacity is the default maximum number of entries
	DefaultCapacity = 1_000

	// BigramSpace is the number of distinct two-byte bigram values
	BigramSpace = 1 << 16

	// NoMatchScore is reported when an upsert had no earlier entry to compare against
	NoMatchScore = -1.0
)
