// SPDX-License-Identifier: MIT
// Package space_test cross-checks counts and position sets against
// gonum's combinatorics package.
//
// gonum enumerates in its own order, so position sets are compared as
// multisets; orders are pinned separately in the per-space tests.

package space_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/discrete/space"
)

func ints(xs []U) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}

// TestOracle_Counts compares every primitive count with gonum.
func TestOracle_Counts(t *testing.T) {
	for n := 0; n <= 12; n++ {
		u := U(n)
		assert.Equal(t, combin.NumPermutations(n, n), int(space.Permutation[U]{}.Count(u)), "Permutation n=%d", n)
		if n >= 1 {
			assert.Equal(t, combin.Binomial(n+1, 2), int(space.EqPair[U]{}.Count(u)), "EqPair n=%d", n)
		}
		if n >= 2 {
			assert.Equal(t, combin.Binomial(n, 2), int(space.Pair[U]{}.Count(u)), "Pair n=%d", n)
			assert.Equal(t, combin.NumPermutations(n, 2), int(space.NeqPair[U]{}.Count(u)), "NeqPair n=%d", n)
		}
	}
}

// TestOracle_PowerSetSizes counts subsets by size.
func TestOracle_PowerSetSizes(t *testing.T) {
	const n = 8
	bySize := make([]int, n+1)
	for _, pos := range space.All[U, []U, U](space.PowerSet[U]{}, n) {
		bySize[len(pos)]++
	}
	for k := 0; k <= n; k++ {
		assert.Equal(t, combin.Binomial(n, k), bySize[k], "k=%d", k)
	}
}

// TestOracle_PairSet matches gonum's 2-combinations.
func TestOracle_PairSet(t *testing.T) {
	const n = 7
	var got [][]int
	for _, pos := range space.All[U, [2]U, U](space.Pair[U]{}, n) {
		got = append(got, []int{int(pos[0]), int(pos[1])})
	}
	assert.ElementsMatch(t, combin.Combinations(n, 2), got)
}

// TestOracle_PermutationSet matches gonum's full permutations.
func TestOracle_PermutationSet(t *testing.T) {
	const n = 5
	var got [][]int
	for _, pos := range space.All[U, []U, U](space.Permutation[U]{}, n) {
		got = append(got, ints(pos))
	}
	assert.ElementsMatch(t, combin.Permutations(n, n), got)
}

// TestOracle_Cartesian matches gonum's Cartesian product.
func TestOracle_Cartesian(t *testing.T) {
	lens := []int{2, 3, 4}
	var got [][]int
	for _, pos := range space.All[[]U, []U, U](space.DimensionN[U]{}, []U{2, 3, 4}) {
		got = append(got, ints(pos))
	}
	assert.ElementsMatch(t, combin.Cartesian(lens), got)
}

// TestOracle_CartesianOrder relates the two orders: gonum varies the last
// element fastest, DimensionN the first, so reversing both axes and
// coordinates gives the same sequence.
func TestOracle_CartesianOrder(t *testing.T) {
	want := combin.Cartesian([]int{4, 3, 2})
	i := 0
	for _, pos := range space.All[[]U, []U, U](space.DimensionN[U]{}, []U{2, 3, 4}) {
		rev := ints(pos)
		slices.Reverse(rev)
		assert.Equal(t, want[i], rev, "index %d", i)
		i++
	}
	assert.Equal(t, len(want), i)
}
