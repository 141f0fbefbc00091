package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discrete/space"
)

// TestChecked_Pair exercises every error path on a primitive space.
func TestChecked_Pair(t *testing.T) {
	c := space.NewChecked[U, [2]U, U](space.Pair[U]{})

	n, err := c.Count(4)
	require.NoError(t, err)
	assert.Equal(t, U(6), n)

	_, err = c.Count(1 << 40)
	assert.ErrorIs(t, err, space.ErrBadDimension)

	_, err = c.Zero(1)
	assert.ErrorIs(t, err, space.ErrIndexOutOfRange)

	z, err := c.Zero(4)
	require.NoError(t, err)
	assert.Equal(t, [2]U{0, 1}, z)

	var pos [2]U
	assert.ErrorIs(t, c.ToPos(4, 6, &pos), space.ErrIndexOutOfRange)
	require.NoError(t, c.ToPos(4, 5, &pos))
	assert.Equal(t, [2]U{2, 3}, pos)

	_, err = c.ToIndex(4, [2]U{1, 0})
	assert.ErrorIs(t, err, space.ErrBadPosition)

	i, err := c.ToIndex(4, [2]U{0, 3})
	require.NoError(t, err)
	assert.Equal(t, U(3), i)

	p, err := c.Pos(4, 4)
	require.NoError(t, err)
	assert.Equal(t, [2]U{1, 3}, p)

	_, err = c.Pos(4, 40)
	assert.ErrorIs(t, err, space.ErrIndexOutOfRange)
}

// TestChecked_Composites validates through compositors.
func TestChecked_Composites(t *testing.T) {
	dag := space.NewChecked(space.PowerSetOf(space.Pair[U]{}))
	_, err := dag.Count(11)
	assert.NoError(t, err)
	_, err = dag.Count(12)
	assert.ErrorIs(t, err, space.ErrBadDimension)

	_, err = dag.ToIndex(4, [][2]U{{0, 2}, {0, 1}})
	assert.ErrorIs(t, err, space.ErrBadPosition, "members out of rank order")
	_, err = dag.ToIndex(4, [][2]U{{0, 1}, {1, 1}})
	assert.ErrorIs(t, err, space.ErrBadPosition, "inner pair invalid")
	i, err := dag.ToIndex(4, [][2]U{{0, 1}, {0, 2}})
	require.NoError(t, err)
	assert.Equal(t, U(3), i)

	prod := space.NewChecked(space.NewProduct(space.Permutation[U]{}, space.Permutation[U]{}))
	_, err = prod.Count(space.Of2(U(10), U(10)))
	assert.NoError(t, err)
	_, err = prod.Count(space.Of2(U(20), U(20)))
	assert.ErrorIs(t, err, space.ErrBadDimension)

	sum := space.NewChecked(space.NewSum(space.Pair[U]{}, space.Dimension[U]{}))
	dim := space.Of2(U(3), U(2))
	_, err = sum.ToIndex(dim, space.Select[[2]U, U]{Side: 5})
	assert.ErrorIs(t, err, space.ErrBadPosition)
	_, err = sum.ToIndex(dim, space.Snd[[2]U](U(2)))
	assert.ErrorIs(t, err, space.ErrBadPosition)
	i, err = sum.ToIndex(dim, space.Snd[[2]U](U(1)))
	require.NoError(t, err)
	assert.Equal(t, U(4), i)

	grid := space.NewChecked(space.ContextOf(space.Pair[U]{}))
	_, err = grid.ToIndex([]U{3, 3}, space.Edge[[2]U]{Coords: [][2]U{{0, 1}, {0, 1}}, Axis: 0, Value: [2]U{0, 1}})
	assert.ErrorIs(t, err, space.ErrBadPosition, "edge does not move")
	_, err = grid.Count(nil)
	assert.ErrorIs(t, err, space.ErrBadDimension)
}

// TestChecked_Homotopy rejects trees whose points fall outside the base.
func TestChecked_Homotopy(t *testing.T) {
	c := space.NewChecked[space.HDim[U], space.HPoint[U], U](space.Homotopy[U]{})
	_, err := c.ToIndex(hdim(0, 3), space.Point[U](7))
	assert.ErrorIs(t, err, space.ErrBadPosition)

	i, err := c.ToIndex(hdim(0, 3), space.Point[U](2))
	require.NoError(t, err)
	assert.Equal(t, U(2), i)
}

// TestNewChecked_Nil panics on a nil space.
func TestNewChecked_Nil(t *testing.T) {
	assert.Panics(t, func() { space.NewChecked[U, U, U](nil) })
}

// TestRange_Bounds clamps the upper bound and stops early on demand.
func TestRange_Bounds(t *testing.T) {
	s := space.Pair[U]{}

	var got []string
	for i, pos := range space.Range[U, [2]U, U](s, 4, 2, 100) {
		got = append(got, sprint(i)+":"+sprint(pos))
	}
	assert.Equal(t, []string{"2:[1 2]", "3:[0 3]", "4:[1 3]", "5:[2 3]"}, got)

	n := 0
	for range space.All[U, [2]U, U](s, 10) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	assert.Equal(t, [2]U{0, 3}, space.Pos[U, [2]U, U](s, 4, 3))
}
