// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// power_set.go — subsets of [0, n) as bitmasks.
//
// Contract:
//   • Position is the strictly increasing list of members.
//   • index = Σ 2^member; unranking scans bits low to high, so the members
//     come out sorted.
//   • ToPos clears the caller's slice and appends into it.
//
// Complexity: O(n) per call.

package space

import (
	"fmt"

	"github.com/katalvlaran/discrete/natural"
)

// PowerSet is the space of subsets of [0, n). Dimension n, position []N.
type PowerSet[N natural.Natural[N]] struct{}

// Count returns 2^n.
func (PowerSet[N]) Count(n N) N { return natural.Pow2(n) }

// Zero returns the empty set.
func (PowerSet[N]) Zero(N) []N { return []N{} }

// ToIndex returns the bitmask of pos.
func (PowerSet[N]) ToIndex(_ N, pos []N) N {
	index := natural.Zero[N]()
	for _, m := range pos {
		index = index.Add(natural.Pow2(m))
	}
	return index
}

// ToPos writes the members of the bitmask index into pos.
func (PowerSet[N]) ToPos(n N, index N, pos *[]N) {
	*pos = (*pos)[:0]
	for i, end := uint64(0), n.Uint64(); i < end; i++ {
		if index.Bit(uint(i)) == 1 {
			*pos = append(*pos, natural.Lit[N](i))
		}
	}
}

// CheckDimension rejects n whose 2^n does not fit the domain or needs more
// than MaxCountBits bits.
func (PowerSet[N]) CheckDimension(n N) error {
	if !wordSized(n) || n.Uint64() >= MaxCountBits {
		return tooLarge("PowerSet", n)
	}
	if natural.Pow2(n).IsZero() {
		return fmt.Errorf("PowerSet: 2^%v overflows: %w", n, ErrBadDimension)
	}
	return nil
}

// CheckPosition reports whether pos is strictly increasing and below n.
func (PowerSet[N]) CheckPosition(n N, pos []N) error {
	for i, m := range pos {
		if !natural.Less(m, n) || (i > 0 && !natural.Less(pos[i-1], m)) {
			return badPosition("PowerSet", pos)
		}
	}
	return nil
}
