package seqops_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/seqops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSum_Basic verifies the sum of a small positive sequence.
func TestSum_Basic(t *testing.T) {
	assert.Equal(t, 10, seqops.Sum([]int{1, 2, 3, 4}), "1+2+3+4 must be 10")
}

// TestSum_EmptyAndNil verifies that both empty and nil slices sum to zero.
func TestSum_EmptyAndNil(t *testing.T) {
	assert.Equal(t, 0, seqops.Sum(nil), "nil slice must sum to 0")
	assert.Equal(t, 0, seqops.Sum([]int{}), "empty slice must sum to 0")
}

// TestSum_MixedSigns verifies accumulation over positive and negative values.
func TestSum_MixedSigns(t *testing.T) {
	assert.Equal(t, -3, seqops.Sum([]int{5, -10, 2}), "5-10+2 must be -3")
	assert.Equal(t, 0, seqops.Sum([]int{7, -7}), "opposites must cancel")
}

// TestSum_Wraparound verifies that overflow wraps with two's-complement
// semantics rather than saturating or panicking.
func TestSum_Wraparound(t *testing.T) {
	assert.Equal(t, math.MinInt, seqops.Sum([]int{math.MaxInt, 1}),
		"MaxInt+1 must wrap to MinInt")
	assert.Equal(t, math.MaxInt, seqops.Sum([]int{math.MinInt, -1}),
		"MinInt-1 must wrap to MaxInt")
}

// TestSumChecked_MatchesSum verifies the checked variant agrees with Sum
// whenever no overflow occurs.
func TestSumChecked_MatchesSum(t *testing.T) {
	s := []int{4, -2, 19, 0, -5, 100}

	total, err := seqops.SumChecked(s)
	require.NoError(t, err, "safe input must not error")
	assert.Equal(t, seqops.Sum(s), total, "checked and wrapping sums must agree")
}

// TestSumChecked_Overflow verifies overflow is reported in both directions
// and the partial total is discarded.
func TestSumChecked_Overflow(t *testing.T) {
	total, err := seqops.SumChecked([]int{math.MaxInt, 1})
	assert.ErrorIs(t, err, seqops.ErrSumOverflow, "positive overflow must error")
	assert.Equal(t, 0, total, "overflow must discard the partial total")

	total, err = seqops.SumChecked([]int{math.MinInt, -1})
	assert.ErrorIs(t, err, seqops.ErrSumOverflow, "negative overflow must error")
	assert.Equal(t, 0, total, "overflow must discard the partial total")
}

// TestSumChecked_RecoversNearLimit verifies that touching the int boundary
// without crossing it is not an overflow.
func TestSumChecked_RecoversNearLimit(t *testing.T) {
	total, err := seqops.SumChecked([]int{math.MaxInt, -1, 1})
	require.NoError(t, err, "total stays inside int range at every step")
	assert.Equal(t, math.MaxInt, total)
}
