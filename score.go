// score.go: weighted Dice similarity over bigram occurrences
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

// score returns the weighted Sørensen–Dice coefficient of a and b, in [0, 1].
//
// Every bigram occurrence of a and of b adds its weight to total. Occurrences
// of a are then matched, in offset order, against the first unmatched
// occurrence of the same bigram in b; each occurrence of b is consumed at
// most once and every match adds the bigram weight to joint.
//
// Returns 2*joint/total, or 0 when total is 0 (no bigrams or all weights 0).
func score(a, b []byte, weights *[BigramSpace]float64) float64 {
	var totalA, totalB, joint float64

	for i := 0; i < len(a)-1; i++ {
		totalA += weights[bigramAt(a, i)]
	}
	for i := 0; i < len(b)-1; i++ {
		totalB += weights[bigramAt(b, i)]
	}
	total := totalA + totalB
	if total <= 0 {
		return 0
	}

	// Occurrences of b not yet consumed, per bigram. Which occurrence gets
	// consumed does not change joint, only how many remain.
	available := make(map[uint16]int, len(b))
	for i := 0; i < len(b)-1; i++ {
		available[bigramAt(b, i)]++
	}

	for i := 0; i < len(a)-1; i++ {
		bg := bigramAt(a, i)
		if available[bg] == 0 {
			continue
		}
		available[bg]--
		joint += weights[bg]
	}

	s := 2 * joint / total
	if s > 1 {
		// float rounding on long values
		s = 1
	}
	return s
}
