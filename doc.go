// Package discrete maps the elements of finite combinatorial spaces to
// natural numbers and back: every pair, subset, permutation, grid point,
// grid edge or homotopy tree gets a unique index, and every index decodes
// to exactly one element.
//
// 🚀 What is discrete?
//
//	A small, stateless, generic library that brings together:
//		• Numeric domains: machine words (natural.Uint) and big integers (natural.Big)
//		• Primitive spaces: Dimension, Pair, EqPair, NeqPair, SqPair,
//		  PowerSet, Permutation, DimensionN
//		• Compositors: Product, Sum and element substitution (PairOf, PowerSetOf, ...)
//		• Grid edges: Context, DirectedContext
//		• Paths between paths: Homotopy
//		• Runtime descriptors, YAML/JSON codecs and sampling: catalog
//
// ✨ Why choose discrete?
//
//   - Exact – ToIndex and ToPos are inverse bijections, never approximations
//   - Composable – spaces nest freely: PowerSetOf(PairOf(Permutation))
//   - Cheap – nothing is materialised; an index is decoded on demand
//   - Safe to share – spaces are zero-size values with no state
//
// Packages:
//
//	natural/      — the Natural capability interface, Uint and Big
//	space/        — the Space contract, every space, Checked and iterators
//	catalog/      — descriptors such as "power-set(pair)" built at runtime
//	cmd/discrete/ — command-line front end
//
// Quick example: the directed acyclic graphs on 3 nodes are the subsets of
// the pairs (a, b), a < b.
//
//	dags := space.PowerSetOf(space.Pair[natural.Uint]{})
//	dags.Count(3)                     // 8
//	space.Pos(dags, 3, 5)             // [[0 1] [1 2]]
//
//	go get github.com/katalvlaran/discrete
package discrete
