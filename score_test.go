// score_test.go: unit tests for the weighted Dice scorer
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	"math"
	"testing"
)

// uniformWeights gives every bigram of the listed values weight 1.
func uniformWeights(values ...string) *[BigramSpace]float64 {
	var w [BigramSpace]float64
	for _, v := range values {
		for i := 0; i < len(v)-1; i++ {
			w[bigramAt([]byte(v), i)] = 1
		}
	}
	return &w
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "abcd", b: "abcd", want: 1},
		{name: "disjoint", a: "abcd", b: "wxyz", want: 0},
		{name: "partial", a: "abcd", b: "abcx", want: 2 * 2.0 / 6.0},
		{name: "multiplicity respected", a: "aaa", b: "aa", want: 2 * 1.0 / 3.0},
		{name: "repeats consumed once", a: "abab", b: "ab", want: 2 * 1.0 / 4.0},
		{name: "both too short", a: "a", b: "b", want: 0},
		{name: "one empty", a: "", b: "abcd", want: 0},
	}

	w := uniformWeights("abcd", "abcx", "wxyz", "aaa", "abab")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := score([]byte(tt.a), []byte(tt.b), w)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScore_ZeroWeights(t *testing.T) {
	var w [BigramSpace]float64
	if got := score([]byte("abcd"), []byte("abcd"), &w); got != 0 {
		t.Errorf("score with all-zero weights = %v, want 0", got)
	}
}

func TestScore_SelfIsOne(t *testing.T) {
	var w [BigramSpace]float64
	v := []byte("the quick brown fox")
	for i := 0; i < len(v)-1; i++ {
		w[bigramAt(v, i)] = 0.1 * float64(i%7+1)
	}

	if got := score(v, v, &w); got != 1 {
		t.Errorf("score(v, v) = %v, want exactly 1", got)
	}
}

func TestScore_WeightsFavourRareBigrams(t *testing.T) {
	var w [BigramSpace]float64
	w[bigramAt([]byte("ab"), 0)] = 0.1 // common
	w[bigramAt([]byte("cd"), 0)] = 3.0 // rare
	w[bigramAt([]byte("xy"), 0)] = 0.1

	// Both pairs share one bigram out of two, but the rare one weighs more.
	rare := score([]byte("cdxy"), []byte("cd"), &w)
	common := score([]byte("abxy"), []byte("ab"), &w)
	if rare <= common {
		t.Errorf("rare shared bigram scored %v, common %v; want rare > common", rare, common)
	}
}

func TestScore_Symmetric(t *testing.T) {
	w := uniformWeights("abcdef", "cdefgh", "xbcdqz")
	w[bigramAt([]byte("cd"), 0)] = 2.5
	w[bigramAt([]byte("ef"), 0)] = 0.25

	pairs := [][2]string{
		{"abcdef", "cdefgh"},
		{"abcdef", "xbcdqz"},
		{"cdefgh", "xbcdqz"},
	}
	for _, p := range pairs {
		ab := score([]byte(p[0]), []byte(p[1]), w)
		ba := score([]byte(p[1]), []byte(p[0]), w)
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("score(%q,%q)=%v but score(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	values := []string{"", "a", "aa", "aaaa", "abab", "banana", "bandana", "xyz", "zyx"}
	w := uniformWeights(values...)
	w[bigramAt([]byte("an"), 0)] = 7

	for _, a := range values {
		for _, b := range values {
			s := score([]byte(a), []byte(b), w)
			if s < 0 || s > 1 {
				t.Errorf("score(%q, %q) = %v out of [0,1]", a, b, s)
			}
		}
	}
}
