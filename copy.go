package seqops

import "errors"

// ErrLengthMismatch indicates Copy was given slices of unequal length.
var ErrLengthMismatch = errors.New("seqops: destination and source lengths differ")

// Copy writes each element of src into the corresponding position of dst.
//
// Description:
//
//	A linear element-by-element transfer in ascending order. The slices
//	must have exactly the same length; dst is fully overwritten on
//	success. Two nil (length-0) slices copy successfully.
//
// Overlap:
//
//	dst and src sharing backing memory is unsupported: the transfer runs
//	front to back, so an overlapping destination that starts inside src
//	reads elements it has already clobbered. Callers needing overlap-safe
//	moves should use the built-in copy on the raw slices instead.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrLengthMismatch — len(dst) != len(src).
func Copy(dst, src []int) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	for i, v := range src {
		dst[i] = v
	}

	return nil
}
