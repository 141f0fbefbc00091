// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// of.go — element substitution: running a combinator over the elements of
// another space.
//
// Every combinator in this package is defined over plain indices: Pair pairs
// numbers, PowerSet collects numbers, Context moves along numeric axes. Of
// substitutes an inner space for those numbers:
//
//  1. inner positions are ranked with Inner.ToIndex,
//  2. the outer combinator runs on the ranks with Inner.Count as its
//     dimension,
//  3. the resulting ranks are unranked with Inner.ToPos.
//
// The lifted values are themselves spaces, so lifts nest freely:
// PairOf(PairOf(Pair[N]{})) is the space of unordered pairs of edges of a
// complete graph.
//
// Go has no higher-kinded types, so one lifted type exists per position
// shape:
//
//	TwoOf   [2]P     PairOf EqPairOf NeqPairOf SqPairOf
//	ListOf  []P      PowerSetOf PermutationOf
//	AxesOf  []P      DimensionNOf (one inner dimension per axis)
//	EdgesOf Edge[P]  ContextOf DirectedContextOf
//	TowerOf HPoint[P] HomotopyOf (homotopy.go)

package space

import "github.com/katalvlaran/discrete/natural"

// Of lifts Inner into the identity combinator. It behaves exactly like
// Inner and is the base case of element substitution.
type Of[D, P any, N natural.Natural[N]] struct {
	Inner Space[D, P, N]
}

// NewOf wraps inner.
func NewOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) Of[D, P, N] {
	return Of[D, P, N]{Inner: inner}
}

// Count returns Inner.Count.
func (o Of[D, P, N]) Count(dim D) N { return o.Inner.Count(dim) }

// Zero returns Inner.Zero.
func (o Of[D, P, N]) Zero(dim D) P { return o.Inner.Zero(dim) }

// ToIndex returns Inner.ToIndex.
func (o Of[D, P, N]) ToIndex(dim D, pos P) N { return o.Inner.ToIndex(dim, pos) }

// ToPos delegates to Inner.ToPos.
func (o Of[D, P, N]) ToPos(dim D, index N, pos *P) { o.Inner.ToPos(dim, index, pos) }

// CheckDimension delegates to Inner.
func (o Of[D, P, N]) CheckDimension(dim D) error { return CheckDimension(o.Inner, dim) }

// CheckPosition delegates to Inner.
func (o Of[D, P, N]) CheckPosition(dim D, pos P) error { return CheckPosition(o.Inner, dim, pos) }

// at returns the inner position with rank index, unranked into a fresh
// Zero buffer.
func (o Of[D, P, N]) at(dim D, index N) P {
	p := o.Inner.Zero(dim)
	o.Inner.ToPos(dim, index, &p)
	return p
}

// counts returns the inner count of every dimension in dims.
func (o Of[D, P, N]) counts(dims []D) []N {
	out := make([]N, len(dims))
	for i, d := range dims {
		out[i] = o.Inner.Count(d)
	}
	return out
}

// TwoOf runs a pair combinator over the elements of an inner space.
// Dimension D (the inner dimension), position [2]P.
type TwoOf[D, P any, N natural.Natural[N]] struct {
	Outer Space[N, [2]N, N]
	Of[D, P, N]
}

// PairOf returns unordered pairs {a, b}, a before b, of inner elements.
func PairOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) TwoOf[D, P, N] {
	return TwoOf[D, P, N]{Outer: Pair[N]{}, Of: NewOf(inner)}
}

// EqPairOf returns unordered pairs of inner elements, loops included.
func EqPairOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) TwoOf[D, P, N] {
	return TwoOf[D, P, N]{Outer: EqPair[N]{}, Of: NewOf(inner)}
}

// NeqPairOf returns ordered pairs of distinct inner elements.
func NeqPairOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) TwoOf[D, P, N] {
	return TwoOf[D, P, N]{Outer: NeqPair[N]{}, Of: NewOf(inner)}
}

// SqPairOf returns all ordered pairs of inner elements.
func SqPairOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) TwoOf[D, P, N] {
	return TwoOf[D, P, N]{Outer: SqPair[N]{}, Of: NewOf(inner)}
}

// Count returns Outer.Count(Inner.Count(dim)).
func (o TwoOf[D, P, N]) Count(dim D) N { return o.Outer.Count(o.Inner.Count(dim)) }

// Zero maps the outer zero through the inner space.
func (o TwoOf[D, P, N]) Zero(dim D) [2]P {
	ix := o.Outer.Zero(o.Inner.Count(dim))
	return [2]P{o.at(dim, ix[0]), o.at(dim, ix[1])}
}

// ToIndex ranks both elements, then the pair of ranks.
func (o TwoOf[D, P, N]) ToIndex(dim D, pos [2]P) N {
	ix := [2]N{o.Inner.ToIndex(dim, pos[0]), o.Inner.ToIndex(dim, pos[1])}
	return o.Outer.ToIndex(o.Inner.Count(dim), ix)
}

// ToPos unranks the pair of ranks, then both elements.
func (o TwoOf[D, P, N]) ToPos(dim D, index N, pos *[2]P) {
	var ix [2]N
	o.Outer.ToPos(o.Inner.Count(dim), index, &ix)
	o.Inner.ToPos(dim, ix[0], &pos[0])
	o.Inner.ToPos(dim, ix[1], &pos[1])
}

// ListOf runs a list combinator over the elements of an inner space.
// Dimension D (the inner dimension), position []P.
type ListOf[D, P any, N natural.Natural[N]] struct {
	Outer Space[N, []N, N]
	Of[D, P, N]
}

// PowerSetOf returns subsets of the inner space, members in rank order.
func PowerSetOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) ListOf[D, P, N] {
	return ListOf[D, P, N]{Outer: PowerSet[N]{}, Of: NewOf(inner)}
}

// PermutationOf returns orderings of all inner elements.
func PermutationOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) ListOf[D, P, N] {
	return ListOf[D, P, N]{Outer: Permutation[N]{}, Of: NewOf(inner)}
}

// Count returns Outer.Count(Inner.Count(dim)).
func (o ListOf[D, P, N]) Count(dim D) N { return o.Outer.Count(o.Inner.Count(dim)) }

// Zero maps the outer zero through the inner space.
func (o ListOf[D, P, N]) Zero(dim D) []P {
	ix := o.Outer.Zero(o.Inner.Count(dim))
	pos := make([]P, len(ix))
	for i, x := range ix {
		pos[i] = o.at(dim, x)
	}
	return pos
}

// ToIndex ranks every element, then the list of ranks.
func (o ListOf[D, P, N]) ToIndex(dim D, pos []P) N {
	ix := make([]N, len(pos))
	for i, p := range pos {
		ix[i] = o.Inner.ToIndex(dim, p)
	}
	return o.Outer.ToIndex(o.Inner.Count(dim), ix)
}

// ToPos unranks the list of ranks, then every element, reusing the
// element buffers already in pos.
func (o ListOf[D, P, N]) ToPos(dim D, index N, pos *[]P) {
	var ix []N
	o.Outer.ToPos(o.Inner.Count(dim), index, &ix)
	p := resize(*pos, len(ix))
	for i, x := range ix {
		o.Inner.ToPos(dim, x, &p[i])
	}
	*pos = p
}

// AxesOf is the Cartesian product of one inner space instance per axis.
// Dimension []D (one inner dimension per axis), position []P.
type AxesOf[D, P any, N natural.Natural[N]] struct {
	Of[D, P, N]
}

// DimensionNOf returns grids whose axes are inner spaces.
func DimensionNOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) AxesOf[D, P, N] {
	return AxesOf[D, P, N]{Of: NewOf(inner)}
}

// Count returns the product of the inner counts.
func (o AxesOf[D, P, N]) Count(dim []D) N { return natural.Product(o.counts(dim)) }

// Zero returns the inner zero on every axis.
func (o AxesOf[D, P, N]) Zero(dim []D) []P {
	pos := make([]P, len(dim))
	for i, d := range dim {
		pos[i] = o.Inner.Zero(d)
	}
	return pos
}

// ToIndex ranks each coordinate within its axis, then the grid point.
func (o AxesOf[D, P, N]) ToIndex(dim []D, pos []P) N {
	ix := make([]N, len(dim))
	for i, d := range dim {
		ix[i] = o.Inner.ToIndex(d, pos[i])
	}
	return DimensionN[N]{}.ToIndex(o.counts(dim), ix)
}

// ToPos unranks the grid point, then each coordinate.
func (o AxesOf[D, P, N]) ToPos(dim []D, index N, pos *[]P) {
	var ix []N
	DimensionN[N]{}.ToPos(o.counts(dim), index, &ix)
	p := resize(*pos, len(dim))
	for i, d := range dim {
		o.Inner.ToPos(d, ix[i], &p[i])
	}
	*pos = p
}

// EdgesOf runs a grid edge combinator over grids whose axes are inner
// spaces. Dimension []D, position Edge[P].
type EdgesOf[D, P any, N natural.Natural[N]] struct {
	Outer Space[[]N, Edge[N], N]
	Of[D, P, N]
}

// ContextOf returns undirected edges of a grid of inner spaces.
func ContextOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) EdgesOf[D, P, N] {
	return EdgesOf[D, P, N]{Outer: Context[N]{}, Of: NewOf(inner)}
}

// DirectedContextOf returns directed edges of a grid of inner spaces.
func DirectedContextOf[D, P any, N natural.Natural[N]](inner Space[D, P, N]) EdgesOf[D, P, N] {
	return EdgesOf[D, P, N]{Outer: DirectedContext[N]{}, Of: NewOf(inner)}
}

// Count returns Outer.Count over the inner counts.
func (o EdgesOf[D, P, N]) Count(dim []D) N { return o.Outer.Count(o.counts(dim)) }

// Zero maps the outer zero through the inner spaces.
func (o EdgesOf[D, P, N]) Zero(dim []D) Edge[P] {
	if len(dim) == 0 {
		return Edge[P]{Coords: []P{}}
	}
	e := o.Outer.Zero(o.counts(dim))
	pos := Edge[P]{Coords: make([]P, len(dim)), Axis: e.Axis}
	for i, d := range dim {
		pos.Coords[i] = o.at(d, e.Coords[i])
	}
	pos.Value = o.at(dim[e.Axis], e.Value)
	return pos
}

// ToIndex ranks every coordinate and the new value, then the edge.
func (o EdgesOf[D, P, N]) ToIndex(dim []D, pos Edge[P]) N {
	e := Edge[N]{Coords: make([]N, len(dim)), Axis: pos.Axis}
	for i, d := range dim {
		e.Coords[i] = o.Inner.ToIndex(d, pos.Coords[i])
	}
	e.Value = o.Inner.ToIndex(dim[pos.Axis], pos.Value)
	return o.Outer.ToIndex(o.counts(dim), e)
}

// ToPos unranks the edge, then every coordinate and the new value.
func (o EdgesOf[D, P, N]) ToPos(dim []D, index N, pos *Edge[P]) {
	var e Edge[N]
	o.Outer.ToPos(o.counts(dim), index, &e)
	coords := resize(pos.Coords, len(dim))
	for i, d := range dim {
		o.Inner.ToPos(d, e.Coords[i], &coords[i])
	}
	pos.Coords = coords
	pos.Axis = e.Axis
	o.Inner.ToPos(dim[e.Axis], e.Value, &pos.Value)
}
