// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// homotopy.go — towers of paths between paths.
//
// Level 0 is a base set of points. Level k is EqPair over level k-1: an
// unordered pair of lower elements, where pairing an element with itself
// is the identity path (a loop). Positions are binary trees:
//
//	Point(v)          an element of the base set
//	Path(a, b)        a path between two elements one level down
//
// Counts for a base of n points:
//
//	level  n=2  n=3
//	0      2    3
//	1      3    6
//	2      6    21
//	3      21   231
//
// Complexity: ToIndex and ToPos visit every node of the tree, 2^level
// leaves for a full tree.

package space

import (
	"fmt"

	"github.com/katalvlaran/discrete/natural"
)

// HDim is the dimension of a homotopy space: the level and the dimension of
// the base set.
type HDim[T any] struct {
	Level int
	Dim   T
}

// HPoint is a position in a homotopy space. A point has nil Left and Right;
// a path has both set and ignores Value.
type HPoint[T any] struct {
	Value       T
	Left, Right *HPoint[T]
}

// Point returns the level 0 position v.
func Point[T any](v T) HPoint[T] { return HPoint[T]{Value: v} }

// Path returns the path between a and b.
func Path[T any](a, b HPoint[T]) HPoint[T] { return HPoint[T]{Left: &a, Right: &b} }

// IsPath reports whether h is a path.
func (h HPoint[T]) IsPath() bool { return h.Left != nil }

// Level returns 0 for a point and 1 + the deeper child level for a path.
func (h HPoint[T]) Level() int {
	if !h.IsPath() {
		return 0
	}
	return 1 + max(h.Left.Level(), h.Right.Level())
}

// String implements fmt.Stringer.
func (h HPoint[T]) String() string {
	if !h.IsPath() {
		return fmt.Sprintf("%v", h.Value)
	}
	return fmt.Sprintf("(%v, %v)", *h.Left, *h.Right)
}

// Homotopy is the homotopy tower over the numbers [0, Dim).
// Dimension HDim[N], position HPoint[N].
type Homotopy[N natural.Natural[N]] struct{}

func (Homotopy[N]) tower() TowerOf[N, N, N] {
	return HomotopyOf[N, N, N](Dimension[N]{})
}

// Count returns EqPair.Count applied Level times to Dim.
func (h Homotopy[N]) Count(dim HDim[N]) N { return h.tower().Count(dim) }

// Zero returns the tree of loops on point 0.
func (h Homotopy[N]) Zero(dim HDim[N]) HPoint[N] { return h.tower().Zero(dim) }

// ToIndex ranks pos.
func (h Homotopy[N]) ToIndex(dim HDim[N], pos HPoint[N]) N { return h.tower().ToIndex(dim, pos) }

// ToPos writes the tree with rank index into pos.
func (h Homotopy[N]) ToPos(dim HDim[N], index N, pos *HPoint[N]) { h.tower().ToPos(dim, index, pos) }

// CheckDimension delegates to the tower over Dimension.
func (h Homotopy[N]) CheckDimension(dim HDim[N]) error { return h.tower().CheckDimension(dim) }

// CheckPosition delegates to the tower over Dimension.
func (h Homotopy[N]) CheckPosition(dim HDim[N], pos HPoint[N]) error {
	return h.tower().CheckPosition(dim, pos)
}

// TowerOf is the homotopy tower over the elements of an inner space.
// Dimension HDim[D], position HPoint[P].
type TowerOf[D, P any, N natural.Natural[N]] struct {
	Of[D, P, N]
}

// HomotopyOf returns the homotopy tower whose points are inner positions.
func HomotopyOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) TowerOf[D, P, N] {
	return TowerOf[D, P, N]{Of: NewOf(inner)}
}

// levels returns the count of every level from 0 to dim.Level.
func (o TowerOf[D, P, N]) levels(dim HDim[D]) []N {
	c := make([]N, dim.Level+1)
	c[0] = o.Inner.Count(dim.Dim)
	for i := 1; i <= dim.Level; i++ {
		c[i] = EqPair[N]{}.Count(c[i-1])
	}
	return c
}

// Count returns EqPair.Count applied Level times to the inner count.
func (o TowerOf[D, P, N]) Count(dim HDim[D]) N { return o.levels(dim)[dim.Level] }

// Zero returns the tree of loops on the inner zero.
func (o TowerOf[D, P, N]) Zero(dim HDim[D]) HPoint[P] {
	var pos HPoint[P]
	o.ToPos(dim, natural.Zero[N](), &pos)
	return pos
}

// ToIndex ranks the children one level down, orders the two ranks and
// ranks them as an EqPair.
func (o TowerOf[D, P, N]) ToIndex(dim HDim[D], pos HPoint[P]) N {
	return o.rank(dim.Dim, o.levels(dim), dim.Level, pos)
}

func (o TowerOf[D, P, N]) rank(dim D, c []N, level int, h HPoint[P]) N {
	if level == 0 {
		return o.Inner.ToIndex(dim, h.Value)
	}
	a := o.rank(dim, c, level-1, *h.Left)
	b := o.rank(dim, c, level-1, *h.Right)
	return EqPair[N]{}.ToIndex(c[level-1], [2]N{natural.Min(a, b), natural.Max(a, b)})
}

// ToPos writes the tree with rank index into pos. Every node is freshly
// allocated; trees previously held by pos are left untouched.
func (o TowerOf[D, P, N]) ToPos(dim HDim[D], index N, pos *HPoint[P]) {
	*pos = o.unrank(dim.Dim, o.levels(dim), dim.Level, index)
}

func (o TowerOf[D, P, N]) unrank(dim D, c []N, level int, index N) HPoint[P] {
	if level == 0 {
		return Point(o.at(dim, index))
	}
	var ix [2]N
	EqPair[N]{}.ToPos(c[level-1], index, &ix)
	return Path(o.unrank(dim, c, level-1, ix[0]), o.unrank(dim, c, level-1, ix[1]))
}

// CheckDimension rejects negative levels, an invalid inner dimension and
// towers whose count overflows N or needs more than MaxCountBits bits.
// Levels are checked bottom up, so a huge tower stops at the first level
// past the limit.
func (o TowerOf[D, P, N]) CheckDimension(dim HDim[D]) error {
	if dim.Level < 0 {
		return fmt.Errorf("Homotopy: level %d: %w", dim.Level, ErrBadDimension)
	}
	if err := CheckDimension(o.Inner, dim.Dim); err != nil {
		return err
	}
	c := o.Inner.Count(dim.Dim)
	for i := 0; i < dim.Level; i++ {
		if c.BitLen() > MaxCountBits {
			return tooLarge("Homotopy", dim)
		}
		if err := (EqPair[N]{}).CheckDimension(c); err != nil {
			return overflow("Homotopy", dim)
		}
		c = EqPair[N]{}.Count(c)
	}
	if c.BitLen() > MaxCountBits {
		return tooLarge("Homotopy", dim)
	}
	return nil
}

// CheckPosition reports whether pos is a full tree of depth Level whose
// points are inner positions.
func (o TowerOf[D, P, N]) CheckPosition(dim HDim[D], pos HPoint[P]) error {
	if !fullTree(pos, dim.Level) {
		return badPosition("Homotopy", pos)
	}
	return o.checkPoints(dim.Dim, pos)
}

func (o TowerOf[D, P, N]) checkPoints(dim D, h HPoint[P]) error {
	if !h.IsPath() {
		return CheckPosition(o.Inner, dim, h.Value)
	}
	if err := o.checkPoints(dim, *h.Left); err != nil {
		return err
	}
	return o.checkPoints(dim, *h.Right)
}

func fullTree[T any](h HPoint[T], level int) bool {
	if level == 0 {
		return !h.IsPath()
	}
	if !h.IsPath() || h.Right == nil {
		return false
	}
	return fullTree(*h.Left, level-1) && fullTree(*h.Right, level-1)
}
