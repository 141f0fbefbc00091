// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// permutation.go — orderings of [0, n) in the factorial number system.
//
// Unranking keeps a working list of the n values. At step i the first n-i
// entries are the unused values in ascending order; the value at
// index/(n-1-i)! among them is removed and appended to the end. After n
// steps the list holds the permutation. For n = 4:
//
//	0 -> 0123   1 -> 0132   2 -> 0213   3 -> 0231   4 -> 0312   5 -> 0321
//	6 -> 1023   ...
//
// Ranking is the Lehmer code of the same order: Σ rank_i · (n-1-i)!, where
// rank_i counts the later values smaller than pos[i].
//
// Complexity: O(n²) per call.

package space

import (
	"fmt"

	"github.com/katalvlaran/discrete/natural"
)

// Permutation is the space of orderings of [0, n). Dimension n, position []N.
type Permutation[N natural.Natural[N]] struct{}

// Count returns n!.
func (Permutation[N]) Count(n N) N { return natural.Factorial(n) }

// Zero returns the identity permutation.
func (Permutation[N]) Zero(n N) []N {
	size := int(n.Uint64())
	pos := make([]N, size)
	for i := range pos {
		pos[i] = natural.Lit[N](uint64(i))
	}
	return pos
}

// ToIndex returns the Lehmer rank of pos.
func (Permutation[N]) ToIndex(_ N, pos []N) N {
	index := natural.Zero[N]()
	weight := natural.One[N]()
	for i := len(pos) - 1; i >= 0; i-- {
		rank := uint64(0)
		for _, later := range pos[i+1:] {
			if natural.Less(later, pos[i]) {
				rank++
			}
		}
		index = index.Add(natural.Lit[N](rank).Mul(weight))
		weight = weight.Mul(natural.Lit[N](uint64(len(pos) - i)))
	}
	return index
}

// ToPos writes the permutation with rank index into pos.
func (Permutation[N]) ToPos(n N, index N, pos *[]N) {
	size := int(n.Uint64())
	work := (*pos)[:0]
	for j := 0; j < size; j++ {
		work = append(work, natural.Lit[N](uint64(j)))
	}

	count := natural.Factorial(n)
	for i := 0; i < size; i++ {
		block := count.Div(natural.Lit[N](uint64(size - i)))
		sel, rest := natural.DivMod(index, block)
		k := int(sel.Uint64())
		item := work[k]
		copy(work[k:], work[k+1:])
		work[size-1] = item
		count, index = block, rest
	}
	*pos = work
}

// CheckDimension rejects n whose n! does not fit the domain. n! < n^n, so
// n is also rejected when n·BitLen(n) exceeds MaxCountBits.
func (Permutation[N]) CheckDimension(n N) error {
	if m := n.Uint64(); !wordSized(n) || m > MaxCountBits || m*uint64(n.BitLen()) > MaxCountBits {
		return tooLarge("Permutation", n)
	}
	f := natural.One[N]()
	for k, end := uint64(2), n.Uint64(); k <= end; k++ {
		kk := natural.Lit[N](k)
		next := f.Mul(kk)
		if !natural.Equal(next.Div(kk), f) {
			return fmt.Errorf("Permutation: %v! overflows: %w", n, ErrBadDimension)
		}
		f = next
	}
	return nil
}

// CheckPosition reports whether pos lists every value of [0, n) exactly once.
func (Permutation[N]) CheckPosition(n N, pos []N) error {
	if uint64(len(pos)) != n.Uint64() {
		return badPosition("Permutation", pos)
	}
	seen := make(map[uint64]bool, len(pos))
	for _, v := range pos {
		if !natural.Less(v, n) || seen[v.Uint64()] {
			return badPosition("Permutation", pos)
		}
		seen[v.Uint64()] = true
	}
	return nil
}
