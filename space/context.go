// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// context.go — undirected edges of an n-dimensional grid graph.
//
// Vertices are DimensionN positions; two vertices are joined when they
// differ in exactly one coordinate. An edge is written as Edge{Coords, Axis,
// Value}: the vertex Coords, the axis that changes and the value that axis
// changes to.
//
// Layout: the index range is split into one block per axis, in axis order.
// The block of axis a holds
//
//	Pair.Count(dim[a]) · ∏_{j≠a} dim[j]
//
// edges. Inside a block the Pair rank of {Coords[a], Value} is the most
// significant digit, followed by the other coordinates in mixed radix with
// the last axis most significant. For dim [2, 2, 2] this yields the 12
// edges of a cube.
//
// Complexity: O(len(dim)²) per call (block sizes are recomputed).

package space

import "github.com/katalvlaran/discrete/natural"

// Context is the undirected edge space of a grid. Dimension []N, position
// Edge[N].
type Context[N natural.Natural[N]] struct{}

// contextBlock returns the number of edges whose changing axis is a, and the
// number of vertices of the grid with axis a removed.
func contextBlock[N natural.Natural[N]](dim []N, a int) (size, rest N) {
	rest = natural.ProductExcept(dim, a)
	return Pair[N]{}.Count(dim[a]).Mul(rest), rest
}

// Count returns Σ_a Pair.Count(dim[a]) · ∏_{j≠a} dim[j].
func (Context[N]) Count(dim []N) N {
	sum := natural.Zero[N]()
	for a := range dim {
		size, _ := contextBlock(dim, a)
		sum = sum.Add(size)
	}
	return sum
}

// Zero returns the edge with index 0, or the origin with Axis 0 when the
// grid has no edges.
func (c Context[N]) Zero(dim []N) Edge[N] {
	var pos Edge[N]
	if c.Count(dim).IsZero() {
		pos.Coords = DimensionN[N]{}.Zero(dim)
		pos.Value = natural.Zero[N]()
		return pos
	}
	c.ToPos(dim, natural.Zero[N](), &pos)
	return pos
}

// ToIndex returns the rank of the edge pos.
func (Context[N]) ToIndex(dim []N, pos Edge[N]) N {
	a := pos.Axis
	offset := natural.Zero[N]()
	for j := 0; j < a; j++ {
		size, _ := contextBlock(dim, j)
		offset = offset.Add(size)
	}
	_, rest := contextBlock(dim, a)

	lo, hi := natural.Min(pos.Coords[a], pos.Value), natural.Max(pos.Coords[a], pos.Value)
	single := Pair[N]{}.ToIndex(dim[a], [2]N{lo, hi})

	others := natural.Zero[N]()
	for j := len(dim) - 1; j >= 0; j-- {
		if j == a {
			continue
		}
		others = others.Mul(dim[j]).Add(pos.Coords[j])
	}
	return offset.Add(single.Mul(rest)).Add(others)
}

// ToPos writes the edge with rank index into pos. The smaller of the two
// values on the changing axis is stored in Coords, the larger in Value.
func (Context[N]) ToPos(dim []N, index N, pos *Edge[N]) {
	a := 0
	var rest N
	for ; a < len(dim); a++ {
		var size N
		size, rest = contextBlock(dim, a)
		if natural.Less(index, size) {
			break
		}
		index = index.Sub(size)
	}

	single, others := natural.DivMod(index, rest)
	var pair [2]N
	Pair[N]{}.ToPos(dim[a], single, &pair)

	coords := resize(pos.Coords, len(dim))
	for j, d := range dim {
		if j == a {
			continue
		}
		others, coords[j] = natural.DivMod(others, d)
	}
	coords[a] = pair[0]
	pos.Coords = coords
	pos.Axis = a
	pos.Value = pair[1]
}

// CheckDimension rejects an empty axis list.
func (Context[N]) CheckDimension(dim []N) error {
	return DimensionN[N]{}.CheckDimension(dim)
}

// CheckPosition reports whether pos is an edge of the grid.
func (Context[N]) CheckPosition(dim []N, pos Edge[N]) error {
	if pos.Axis < 0 || pos.Axis >= len(dim) {
		return badPosition("Context", pos)
	}
	if err := (DimensionN[N]{}).CheckPosition(dim, pos.Coords); err != nil {
		return badPosition("Context", pos)
	}
	if natural.Equal(pos.Coords[pos.Axis], pos.Value) || !natural.Less(pos.Value, dim[pos.Axis]) {
		return badPosition("Context", pos)
	}
	return nil
}
