// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// pair.go — unordered pairs {a, b} with a < b over [0, n).
//
// Layout (n = 4), index in each cell, row = max, column = min:
//
//	      0  1  2
//	1  |  0
//	2  |  1  2
//	3  |  3  4  5
//
// Complexity: O(1) domain operations per call (one integer square root
// when unranking).

package space

import "github.com/katalvlaran/discrete/natural"

// Pair is the space of unordered pairs (min, max) with min < max < n.
// Dimension n, position [2]N{min, max}.
type Pair[N natural.Natural[N]] struct{}

// Count returns n(n-1)/2.
func (Pair[N]) Count(n N) N {
	if n.IsZero() {
		return n
	}
	return natural.Tri(n.Sub(natural.One[N]()))
}

// Zero returns (0, 1).
func (Pair[N]) Zero(N) [2]N {
	return [2]N{natural.Zero[N](), natural.One[N]()}
}

// ToIndex returns min + max(max-1)/2. The dimension is not needed.
func (Pair[N]) ToIndex(_ N, pos [2]N) N {
	return pos[0].Add(natural.Tri(pos[1].Sub(natural.One[N]())))
}

// ToPos inverts ToIndex: max = TriRoot(index)+1, min = index - Tri(max-1).
func (Pair[N]) ToPos(_ N, index N, pos *[2]N) {
	m := natural.TriRoot(index)
	pos[0] = index.Sub(natural.Tri(m))
	pos[1] = natural.Inc(m)
}

// CheckDimension rejects n whose count does not fit the domain. n < 2 is
// accepted and yields an empty space.
func (Pair[N]) CheckDimension(n N) error {
	if !n.IsZero() && mulOverflows(n.Sub(natural.One[N]()), n) {
		return overflow("Pair", n)
	}
	return nil
}

// CheckPosition reports whether pos is a valid pair under n.
func (Pair[N]) CheckPosition(n N, pos [2]N) error {
	if !natural.Less(pos[0], pos[1]) || !natural.Less(pos[1], n) {
		return badPosition("Pair", pos)
	}
	return nil
}
