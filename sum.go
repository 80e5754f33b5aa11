package seqops

import "errors"

// ErrSumOverflow indicates a checked sum would exceed the int range.
var ErrSumOverflow = errors.New("seqops: sum overflows int")

// Sum returns the arithmetic sum of all elements of s.
//
// Description:
//
//	A single ascending pass accumulating into a platform-width int.
//	A nil or empty slice sums to 0.
//
// Overflow:
//
//	Intentionally unchecked. The accumulator wraps with two's-complement
//	semantics, trading safety for a branch-free loop the compiler can
//	vectorize. Use SumChecked when wraparound must be detected.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
func Sum(s []int) int {
	var total int
	for _, v := range s {
		total += v
	}

	return total
}

// SumChecked returns the arithmetic sum of all elements of s, failing
// instead of wrapping on overflow.
//
// Algorithm Outline:
//  1. Accumulate exactly as Sum does.
//  2. After each addition, detect wraparound by sign: adding two values of
//     the same sign must not flip the sign of the result.
//  3. On the first wrapped addition, return (0, ErrSumOverflow); the
//     partial total is discarded.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrSumOverflow — an intermediate total left the int range.
func SumChecked(s []int) (int, error) {
	var total int
	for _, v := range s {
		next := total + v
		if (v > 0 && next < total) || (v < 0 && next > total) {
			return 0, ErrSumOverflow
		}
		total = next
	}

	return total, nil
}
