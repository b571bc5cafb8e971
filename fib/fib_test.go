package fib_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/tricks/fib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlice_Recurrence checks length, seed values and the sum rule for n >= 2.
func TestSlice_Recurrence(t *testing.T) {
	for _, n := range []int{2, 3, 10, 50, fib.MaxCount} {
		seq, err := fib.Slice(n)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, seq, n)
		assert.Equal(t, uint64(0), seq[0])
		assert.Equal(t, uint64(1), seq[1])
		for i := 2; i < n; i++ {
			assert.Equal(t, seq[i-1]+seq[i-2], seq[i], "n=%d i=%d", n, i)
		}
	}
}

// TestSlice_Short covers the degenerate lengths.
func TestSlice_Short(t *testing.T) {
	seq, err := fib.Slice(0)
	require.NoError(t, err)
	assert.Empty(t, seq)

	seq, err = fib.Slice(1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0}, seq)
}

// TestSlice_Errors covers invalid and overflowing lengths.
func TestSlice_Errors(t *testing.T) {
	_, err := fib.Slice(-1)
	assert.ErrorIs(t, err, fib.ErrNegativeCount)

	_, err = fib.Slice(fib.MaxCount + 1)
	assert.ErrorIs(t, err, fib.ErrOverflow)
}

// TestSlice_LastValue pins the largest representable element.
func TestSlice_LastValue(t *testing.T) {
	seq, err := fib.Slice(fib.MaxCount)
	require.NoError(t, err)
	last := seq[len(seq)-1]
	assert.Equal(t, uint64(12200160415121876738), last)
	assert.Greater(t, seq[len(seq)-2], uint64(math.MaxUint64)-last, "F(94) would overflow")
}

// TestGenerator_MatchesSlice pulls n values lazily and compares with Slice(n).
func TestGenerator_MatchesSlice(t *testing.T) {
	for n := 0; n <= fib.MaxCount; n++ {
		want, err := fib.Slice(n)
		require.NoError(t, err)

		g := fib.New()
		got := make([]uint64, 0, n)
		for i := 0; i < n; i++ {
			v, ok := g.Next()
			require.True(t, ok, "n=%d i=%d", n, i)
			got = append(got, v)
		}
		assert.Equal(t, want, got, "n=%d", n)
		assert.Equal(t, n, g.Count())
	}
}

// TestGenerator_Exhaustion stops cleanly at the uint64 limit.
func TestGenerator_Exhaustion(t *testing.T) {
	g := fib.New()
	for g.HasNext() {
		_, ok := g.Next()
		require.True(t, ok)
	}
	assert.Equal(t, fib.MaxCount, g.Count())

	v, ok := g.Next()
	assert.False(t, ok)
	assert.Zero(t, v)
}

// TestGenerator_TenthAndEleventh mirrors the demo: the 10th value, then one more.
func TestGenerator_TenthAndEleventh(t *testing.T) {
	g := fib.New()
	var v uint64
	for i := 0; i < 10; i++ {
		v, _ = g.Next()
	}
	assert.Equal(t, uint64(34), v)

	v, _ = g.Next()
	assert.Equal(t, uint64(55), v)
}

// TestSeq_RestartsAndBreaks checks each Seq call is independent and honours break.
func TestSeq_RestartsAndBreaks(t *testing.T) {
	var first []uint64
	for v := range fib.Seq() {
		if len(first) == 5 {
			break
		}
		first = append(first, v)
	}
	assert.Equal(t, []uint64{0, 1, 1, 2, 3}, first)

	count := 0
	for range fib.Seq() {
		count++
	}
	assert.Equal(t, fib.MaxCount, count, "fresh Seq runs to the limit")
}

// TestFirstAbove covers the demo threshold and the edges.
func TestFirstAbove(t *testing.T) {
	tests := []struct {
		threshold uint64
		want      uint64
	}{
		{2016, 2584},
		{0, 1},
		{2583, 2584},
		{2584, 4181},
	}
	for _, tc := range tests {
		got, err := fib.FirstAbove(tc.threshold)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "threshold=%d", tc.threshold)
	}

	_, err := fib.FirstAbove(math.MaxUint64)
	assert.ErrorIs(t, err, fib.ErrOverflow)
}

// TestBigSeq_AgreesAndContinues checks BigSeq against Slice and past the uint64 limit.
func TestBigSeq_AgreesAndContinues(t *testing.T) {
	want, err := fib.Slice(fib.MaxCount)
	require.NoError(t, err)

	var got []*big.Int
	for v := range fib.BigSeq() {
		got = append(got, v)
		if len(got) == fib.MaxCount+2 {
			break
		}
	}
	for i, w := range want {
		assert.Equal(t, new(big.Int).SetUint64(w).String(), got[i].String(), "i=%d", i)
	}
	sum := new(big.Int).Add(got[fib.MaxCount-1], got[fib.MaxCount-2])
	assert.Equal(t, sum.String(), got[fib.MaxCount].String())
	assert.False(t, got[fib.MaxCount].IsUint64(), "F(94) does not fit uint64")
}
