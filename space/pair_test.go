package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discrete/space"
)

// TestPair_Scenarios pins the worked values for unordered pairs.
func TestPair_Scenarios(t *testing.T) {
	s := space.Pair[U]{}
	assert.Equal(t, U(6), s.Count(4))
	assert.Equal(t, U(0), s.ToIndex(4, [2]U{0, 1}))
	assert.Equal(t, U(1), s.ToIndex(4, [2]U{0, 2}))
	assert.Equal(t, U(2), s.ToIndex(4, [2]U{1, 2}))
	assert.Equal(t, U(3), s.ToIndex(4, [2]U{0, 3}))
	assert.Equal(t, [2]U{0, 1}, s.Zero(4))

	assert.Equal(t,
		[]string{"[0 1]", "[0 2]", "[1 2]", "[0 3]", "[1 3]", "[2 3]"},
		checkBijection[U, [2]U, U](t, s, 4))
}

// TestPair_SmallDimensions covers the empty and single-point cases.
func TestPair_SmallDimensions(t *testing.T) {
	s := space.Pair[U]{}
	assert.Equal(t, U(0), s.Count(0))
	assert.Equal(t, U(0), s.Count(1))
	assert.Equal(t, U(1), s.Count(2))
	assert.Empty(t, positions[U, [2]U, U](s, 1))
}

// TestPair_LargeIndices unranks indices near perfect triangular numbers,
// where a floating-point square root would be off by one.
func TestPair_LargeIndices(t *testing.T) {
	s := space.Pair[U]{}
	for _, m := range []U{1 << 20, 1<<26 + 3, 3_037_000_000} {
		for _, i := range []U{m * (m - 1) / 2, m*(m-1)/2 + m - 1, m*(m+1)/2 - 1} {
			var pos [2]U
			s.ToPos(0, i, &pos)
			require.Less(t, pos[0], pos[1])
			require.Equal(t, i, s.ToIndex(0, pos), "index %d", i)
		}
	}
}

// TestEqPair_Scenarios pins the worked values for pairs with loops.
func TestEqPair_Scenarios(t *testing.T) {
	s := space.EqPair[U]{}
	assert.Equal(t, U(10), s.Count(4))
	assert.Equal(t, [2]U{0, 0}, s.Zero(4))
	assert.Equal(t,
		[]string{"[0 0]", "[0 1]", "[1 1]", "[0 2]", "[1 2]", "[2 2]"},
		checkBijection[U, [2]U, U](t, s, 3))
	checkBijection[U, [2]U, U](t, s, 9)
}

// TestNeqPair_Scenarios pins the worked values for ordered pairs.
func TestNeqPair_Scenarios(t *testing.T) {
	s := space.NeqPair[U]{}
	assert.Equal(t, U(12), s.Count(4))
	assert.Equal(t, U(0), s.ToIndex(4, [2]U{0, 1}))
	assert.Equal(t, U(1), s.ToIndex(4, [2]U{1, 0}))
	assert.Equal(t, U(2), s.ToIndex(4, [2]U{0, 2}))
	assert.Equal(t,
		[]string{"[0 1]", "[1 0]", "[0 2]", "[2 0]", "[1 2]", "[2 1]"},
		checkBijection[U, [2]U, U](t, s, 3))
	checkBijection[U, [2]U, U](t, s, 7)
}

// TestSqPair_Scenarios pins the row-major order of the full grid.
func TestSqPair_Scenarios(t *testing.T) {
	s := space.SqPair[U]{}
	assert.Equal(t, U(16), s.Count(4))
	assert.Equal(t, U(7), s.ToIndex(4, [2]U{3, 1}))
	assert.Equal(t,
		[]string{"[0 0]", "[1 0]", "[0 1]", "[1 1]"},
		checkBijection[U, [2]U, U](t, s, 2))
	checkBijection[U, [2]U, U](t, s, 5)
}

// TestPairs_Domains checks every pair space on both domains.
func TestPairs_Domains(t *testing.T) {
	for n := uint64(0); n <= 8; n++ {
		assert.Equal(t,
			checkBijection[U, [2]U, U](t, space.Pair[U]{}, U(n)),
			checkBijection[B, [2]B, B](t, space.Pair[B]{}, big(n)))
		assert.Equal(t,
			checkBijection[U, [2]U, U](t, space.EqPair[U]{}, U(n)),
			checkBijection[B, [2]B, B](t, space.EqPair[B]{}, big(n)))
		assert.Equal(t,
			checkBijection[U, [2]U, U](t, space.NeqPair[U]{}, U(n)),
			checkBijection[B, [2]B, B](t, space.NeqPair[B]{}, big(n)))
		assert.Equal(t,
			checkBijection[U, [2]U, U](t, space.SqPair[U]{}, U(n)),
			checkBijection[B, [2]B, B](t, space.SqPair[B]{}, big(n)))
	}
}

// TestPairs_CheckPosition rejects malformed pairs.
func TestPairs_CheckPosition(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"pair reversed", space.Pair[U]{}.CheckPosition(4, [2]U{2, 1})},
		{"pair equal", space.Pair[U]{}.CheckPosition(4, [2]U{2, 2})},
		{"pair out of range", space.Pair[U]{}.CheckPosition(4, [2]U{0, 4})},
		{"eqpair reversed", space.EqPair[U]{}.CheckPosition(4, [2]U{3, 1})},
		{"neqpair equal", space.NeqPair[U]{}.CheckPosition(4, [2]U{1, 1})},
		{"sqpair out of range", space.SqPair[U]{}.CheckPosition(4, [2]U{4, 0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, space.ErrBadPosition)
		})
	}
}

// TestPairs_CheckDimension reports counts that wrap around uint64.
func TestPairs_CheckDimension(t *testing.T) {
	huge := U(1) << 40
	assert.ErrorIs(t, space.Pair[U]{}.CheckDimension(huge), space.ErrBadDimension)
	assert.ErrorIs(t, space.EqPair[U]{}.CheckDimension(huge), space.ErrBadDimension)
	assert.ErrorIs(t, space.NeqPair[U]{}.CheckDimension(huge), space.ErrBadDimension)
	assert.ErrorIs(t, space.SqPair[U]{}.CheckDimension(huge), space.ErrBadDimension)
	assert.ErrorIs(t, space.EqPair[U]{}.CheckDimension(^U(0)), space.ErrBadDimension)

	assert.NoError(t, space.Pair[U]{}.CheckDimension(1<<20))
	assert.NoError(t, space.Pair[B]{}.CheckDimension(big(1<<40)))
}
