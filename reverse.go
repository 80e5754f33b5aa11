package seqops

// Reverse reorders s in place so that element order is reversed.
//
// Algorithm Outline:
//  1. Place one cursor on the first element, the other past the last.
//  2. Step the trailing cursor backward, swap the two elements under the
//     cursors, step the leading cursor forward.
//  3. Stop the moment the cursors meet or cross. For length 0 or 1 the
//     loop body never runs, so empty and single-element slices are no-ops
//     without a separate bounds check.
//
// The swap is symmetric, so applying Reverse twice restores the original
// order.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1) auxiliary
func Reverse(s []int) {
	for left, right := 0, len(s)-1; left < right; left, right = left+1, right-1 {
		s[left], s[right] = s[right], s[left]
	}
}

// Reversed returns a new slice holding the elements of s in reverse order,
// leaving s untouched. A nil input yields nil.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) for the result
func Reversed(s []int) []int {
	if s == nil {
		return nil
	}

	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
