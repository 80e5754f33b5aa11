package seqops

import "math"

// Max returns the largest element of s and whether one exists.
//
// Algorithm Outline:
//  1. Seed the running maximum with the first element.
//  2. Scan the remainder once, replacing the running maximum only on a
//     strictly larger element, so ties keep the earliest occurrence.
//
// On an empty or nil slice Max returns (math.MinInt, false): the sentinel
// keeps misbehaving callers that ignore ok from mistaking failure for a
// plausible maximum, and ok stays false on every path short of a fully
// computed result.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
func Max(s []int) (int, bool) {
	if len(s) == 0 {
		return math.MinInt, false
	}

	maxv := s[0]
	for _, v := range s[1:] {
		if v > maxv {
			maxv = v
		}
	}

	return maxv, true
}

// Min returns the smallest element of s and whether one exists.
//
// Mirror of Max: strict less-than comparison keeps the earliest occurrence
// under ties, and an empty or nil slice yields (math.MaxInt, false).
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
func Min(s []int) (int, bool) {
	if len(s) == 0 {
		return math.MaxInt, false
	}

	minv := s[0]
	for _, v := range s[1:] {
		if v < minv {
			minv = v
		}
	}

	return minv, true
}
