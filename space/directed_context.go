package space

import "github.com/katalvlaran/discrete/natural"

// DirectedContext is the directed edge space of a grid: every undirected
// Context edge in both directions. It relates to Context the way NeqPair
// relates to Pair:
//
//	index = 2*Context.ToIndex(edge) + [Coords[Axis] > Value]
//
// Dimension []N, position Edge[N].
type DirectedContext[N natural.Natural[N]] struct{}

// Count returns twice the number of undirected edges.
func (DirectedContext[N]) Count(dim []N) N {
	return Context[N]{}.Count(dim).Mul(natural.Lit[N](2))
}

// Zero returns the edge with index 0.
func (DirectedContext[N]) Zero(dim []N) Edge[N] { return Context[N]{}.Zero(dim) }

// ToIndex encodes the undirected edge and the direction bit.
func (DirectedContext[N]) ToIndex(dim []N, pos Edge[N]) N {
	index := Context[N]{}.ToIndex(dim, pos).Mul(natural.Lit[N](2))
	if pos.Value.Cmp(pos.Coords[pos.Axis]) < 0 {
		index = natural.Inc(index)
	}
	return index
}

// ToPos decodes the undirected edge at index/2 and reverses it when the low
// bit is set.
func (DirectedContext[N]) ToPos(dim []N, index N, pos *Edge[N]) {
	Context[N]{}.ToPos(dim, index.Div(natural.Lit[N](2)), pos)
	if index.Bit(0) == 1 {
		a := pos.Axis
		pos.Coords[a], pos.Value = pos.Value, pos.Coords[a]
	}
}

// CheckDimension rejects an empty axis list.
func (DirectedContext[N]) CheckDimension(dim []N) error {
	return DimensionN[N]{}.CheckDimension(dim)
}

// CheckPosition reports whether pos is an edge of the grid.
func (DirectedContext[N]) CheckPosition(dim []N, pos Edge[N]) error {
	return Context[N]{}.CheckPosition(dim, pos)
}
