// frequency.go: bigram document frequencies and IDF weights
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// frequencyTable tracks, for every bigram value, how many stored entries
// contain it at least once, and the weight derived from that count.
//
// counts is only changed through adjust. weights is a pure function of counts
// and the entry count and is rebuilt wholesale by recomputeWeights.
type frequencyTable struct {
	counts  [BigramSpace]uint32
	weights [BigramSpace]float64
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{}
}

// bigramAt returns the bigram starting at offset i.
// A value of length L has L-1 bigrams, at offsets 0..L-2.
func bigramAt(value []byte, i int) uint16 {
	return uint16(value[i])<<8 | uint16(value[i+1])
}

// distinctBigrams returns every bigram of value once, in order of first occurrence.
func distinctBigrams(value []byte) []uint16 {
	if len(value) < 2 {
		return nil
	}

	var seen bitset.BitSet
	distinct := make([]uint16, 0, len(value)-1)
	for i := 0; i < len(value)-1; i++ {
		b := bigramAt(value, i)
		if seen.Test(uint(b)) {
			continue
		}
		seen.Set(uint(b))
		distinct = append(distinct, b)
	}
	return distinct
}

// adjust adds delta (+1 or -1) to the count of every distinct bigram of value.
// A decrement that would take a count below zero is refused before any count
// changes, so the table is never left half-adjusted.
func (f *frequencyTable) adjust(value []byte, delta int) error {
	distinct := distinctBigrams(value)

	if delta < 0 {
		for _, b := range distinct {
			if f.counts[b] < uint32(-delta) { // #nosec G115 - delta is -1
				return NewErrInvariantViolation(b, f.counts[b])
			}
		}
		for _, b := range distinct {
			f.counts[b] -= uint32(-delta) // #nosec G115 - delta is -1
		}
		return nil
	}

	for _, b := range distinct {
		f.counts[b] += uint32(delta) // #nosec G115 - delta is +1
	}
	return nil
}

// recomputeWeights rebuilds every weight from the current counts.
//
//	w = max(0, ln((n - count + 0.5) / (count + 0.5)))   for count > 0
//	w = 0                                               for count == 0
//
// where n is the number of entries currently stored.
func (f *frequencyTable) recomputeWeights(entries int) {
	n := float64(entries)
	for i := range f.counts {
		count := f.counts[i]
		if count == 0 {
			f.weights[i] = 0
			continue
		}
		c := float64(count)
		f.weights[i] = math.Max(0, math.Log((n-c+0.5)/(c+0.5)))
	}
}

// reset zeroes counts and weights.
func (f *frequencyTable) reset() {
	f.counts = [BigramSpace]uint32{}
	f.weights = [BigramSpace]float64{}
}
