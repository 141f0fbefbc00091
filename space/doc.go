// Package space implements exact, order-preserving bijections between the
// natural numbers and the elements of finite combinatorial structures.
//
// What:
//
//	Every space implements the same four-operation contract:
//
//	  Count(dim)              -> N   number of positions under dim
//	  Zero(dim)               -> P   canonical first position (index 0)
//	  ToIndex(dim, pos)       -> N   rank of pos in [0, Count(dim))
//	  ToPos(dim, index, &pos)        unrank index into the caller's buffer
//
//	The dimension D describes the shape (a count, a list of axis sizes, a
//	level plus a base count, ...), the position P one element, and N is the
//	numeric domain (natural.Uint or natural.Big).
//
// Spaces:
//
//   - Primitive: Dimension, Pair, EqPair, NeqPair, SqPair, PowerSet,
//     Permutation, DimensionN.
//   - Compositors: Product (mixed radix), Sum (tagged disjoint union) and Of
//     (element substitution: PairOf, EqPairOf, NeqPairOf, SqPairOf,
//     PowerSetOf, PermutationOf, DimensionNOf, ContextOf,
//     DirectedContextOf, HomotopyOf).
//   - Derived: Context and DirectedContext (edges of an n-dimensional grid
//     graph), Homotopy (recursive tower of EqPair: paths between paths).
//
// Usage:
//
//	s := space.PowerSetOf(space.Pair[natural.Uint]{}) // DAGs on n nodes
//	n := natural.Uint(3)
//	pos := s.Zero(n)
//	for i := natural.Uint(0); i < s.Count(n); i++ {
//		s.ToPos(n, i, &pos)
//		fmt.Println(pos)
//	}
//
// Guarantees:
//
//   - ToIndex(dim, ToPos(dim, i)) == i for every i in [0, Count(dim)).
//   - ToIndex(dim, Zero(dim)) == 0 for every non-empty space.
//   - Spaces carry no state; every operation is a pure function and safe
//     for concurrent use without synchronisation.
//   - Recursion depth is bounded by the static nesting of Of/Product/Sum and
//     by the Homotopy level, never by the size of a dimension.
//
// Errors:
//
//	The four operations are unchecked: an index >= Count(dim) or a malformed
//	position silently yields a wrong result. Wrap a space with NewChecked to
//	get ErrIndexOutOfRange, ErrBadPosition and ErrBadDimension instead.
package space
