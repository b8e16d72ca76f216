// Package bigram provides a bounded, self-maintaining similarity-scoring cache.
//
// # Overview
//
// A ScoringCache stores at most Capacity (key, value) byte strings. Every
// Upsert reports which earlier value is most similar to the one just stored,
// and how similar it is:
//
//	sc, _ := bigram.New(100)
//	sc.UpsertString("t1", "disk full on db-01")
//	sc.UpsertString("t2", "cpu hot on web-02")
//	sc.UpsertString("t3", "link down on sw-03")
//	sc.UpsertString("t4", "oom killed api-04")
//	sc.UpsertString("t5", "cert expired lb-05")
//	m, _ := sc.UpsertString("t6", "disk full on db-02")
//	// m.Key == "t1", m.Score ≈ 0.83
//
// # Scoring
//
// Values are split into two-byte bigrams: "abcd" has "ab", "bc" and "cd".
// Bytes are not decoded, so multi-byte UTF-8 runes simply contribute more
// bigrams.
//
// Each bigram b is weighted by a Robertson–Sparck-Jones IDF term over the
// current contents:
//
//	w(b) = max(0, ln((n - df(b) + 0.5) / (df(b) + 0.5)))
//
// where n is the number of stored entries and df(b) the number of stored
// values that contain b. Bigrams shared by more than about half of the
// entries weigh 0. Weights are recomputed after every mutation.
//
// The score of two values is a weighted Sørensen–Dice coefficient:
//
//	score(a, b) = 2 * joint / (Σw(a) + Σw(b))
//
// where Σw sums the weight of every bigram occurrence and joint sums the
// weights of the occurrences of a matched one to one with occurrences of b.
// Scores are in [0, 1]; a value scores 1 against itself when any of its
// bigrams has a positive weight.
//
// # Capacity and order
//
// Entries are kept in insertion order. Inserting a new key into a full cache
// evicts the oldest entry first (strict FIFO). Upserting an existing key
// replaces its value but keeps its position.
//
// Candidates for the best match are the entries positioned before the
// upserted one. For a new key that is every other entry; for an updated key it
// is only the entries inserted before it. Ties go to the oldest candidate.
// When there is no candidate the Match has Found == false and Score ==
// NoMatchScore (-1).
//
// # Concurrency
//
// ScoringCache is not safe for concurrent use: every upsert touches the whole
// frequency table. SyncScoringCache wraps an instance behind a single mutex.
//
// # Errors
//
// Errors are structured go-errors values with codes:
//
//	_, err := bigram.New(0)
//	bigram.IsConfigError(err)              // true
//	bigram.GetErrorCode(err)               // BIGRAM_INVALID_CAPACITY
//
//	_, err = sc.Add(42, "value")
//	bigram.IsInvalidArgument(err)          // true
//
// # Observability
//
// Config.Logger receives structured debug/info/warn/error events and
// Config.MetricsCollector receives upsert latency, eviction and match score
// events. The otel sub-module implements MetricsCollector on top of
// OpenTelemetry.
//
// # Hot reload
//
// HotConfig watches a configuration file with Argus and resizes a running
// cache when its capacity setting changes.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package bigram
