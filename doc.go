// Package seqops provides primitive, allocation-free operations over
// caller-owned integer slices: sum, in-place reversal, copy, and
// minimum/maximum with a validity flag.
//
// 🚀 What is seqops?
//
//	A tiny, zero-dependency toolkit for the handful of slice scans every
//	program ends up writing by hand:
//		• Sum / SumChecked: wrapping or overflow-checked reduction
//		• Reverse / Reversed: in-place or allocating order reversal
//		• Copy: strict same-length element transfer
//		• Max / Min: single-pass extremum with an explicit ok flag
//
// ✨ Why choose seqops?
//
//   - Predictable – every call is a single O(n) pass, no hidden allocation
//   - Honest about failure – extremum lookups return (value, ok), never a
//     guessable in-band zero
//   - Pure Go – no cgo, no hidden deps
//   - Caller-owned memory – functions only borrow slices for the duration
//     of the call; nothing is retained, freed, or resized
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqops"
//
//	total := seqops.Sum(readings)
//	seqops.Reverse(readings)
//	if max, ok := seqops.Max(readings); ok {
//		fmt.Println("peak:", max)
//	}
//
// Concurrency:
//
//	All functions are safe to call concurrently on disjoint or read-only
//	slices. Concurrent Reverse or Copy on the same backing array is a data
//	race; callers must serialize such access themselves.
//
// Performance:
//
//   - Time:   O(n) per call, single pass
//   - Memory: O(1) auxiliary (Reversed allocates its result, nothing else)
package seqops
