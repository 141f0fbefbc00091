// Package catalog builds spaces at runtime from textual descriptors.
//
// A descriptor names a space and, optionally, the spaces it is built from:
//
//	pair                     unordered pairs of [0, n)
//	power-set(pair)          sets of pairs: directed acyclic graphs
//	product(pair, sum(permutation, dimension-n))
//
// A bare name stands for the name applied to dimension, so "pair" and
// "pair(dimension)" describe the same space. Parse turns a descriptor into a
// Space whose dimensions and positions are plain Go values (natural.Big
// numbers, slices, [2]any pairs and the space package's Tuple, Select, Edge,
// HDim and HPoint), counted in natural.Big.
//
// Dimensions and positions travel as YAML nodes. YAML flow syntax is a
// superset of JSON, so both of these decode the same homotopy dimension:
//
//	{level: 2, dim: 3}
//	{"level": 2, "dim": 3}
//
// Encoded forms:
//
//	numbers            3
//	pairs and lists    [a, b]   [a, b, c]
//	product            [first, second]             (dimension and position)
//	sum                [first, second]             (dimension)
//	                   {first: p} | {second: p}    (position)
//	context            [d0, d1, ...]               (dimension)
//	                   {coords: [...], axis: k, value: v}
//	homotopy           {level: l, dim: d}          (dimension)
//	                   {point: p} | {path: [a, b]} (position)
//
// Sample draws uniformly distributed indices; combine it with ToPos to draw
// random positions.
package catalog
