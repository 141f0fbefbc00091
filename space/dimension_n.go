package space

import (
	"fmt"

	"github.com/katalvlaran/discrete/natural"
)

// DimensionN is the Cartesian product of axes [0, dim[0]) × [0, dim[1]) × ...
// Dimension []N (axis sizes), position []N (coordinates).
//
// The index is mixed radix with the LAST axis most significant:
//
//	index = pos[0] + dim[0]*(pos[1] + dim[1]*(pos[2] + ...))
//
// so for dim [3, 3] the order is [0 0] [1 0] [2 0] [0 1] ...
type DimensionN[N natural.Natural[N]] struct{}

// Count returns the product of the axis sizes.
func (DimensionN[N]) Count(dim []N) N { return natural.Product(dim) }

// Zero returns the origin.
func (DimensionN[N]) Zero(dim []N) []N {
	pos := make([]N, len(dim))
	for i := range pos {
		pos[i] = natural.Zero[N]()
	}
	return pos
}

// ToIndex folds the coordinates from the last axis to the first.
// Complexity: O(len(dim)).
func (DimensionN[N]) ToIndex(dim []N, pos []N) N {
	index := natural.Zero[N]()
	for i := len(dim) - 1; i >= 0; i-- {
		index = index.Mul(dim[i]).Add(pos[i])
	}
	return index
}

// ToPos peels coordinates off from the first axis to the last.
// Complexity: O(len(dim)).
func (DimensionN[N]) ToPos(dim []N, index N, pos *[]N) {
	p := resize(*pos, len(dim))
	for i, d := range dim {
		index, p[i] = natural.DivMod(index, d)
	}
	*pos = p
}

// CheckDimension rejects an empty axis list and grids whose size does not
// fit the domain.
func (DimensionN[N]) CheckDimension(dim []N) error {
	if len(dim) == 0 {
		return fmt.Errorf("DimensionN: no axes: %w", ErrBadDimension)
	}
	p := natural.One[N]()
	for _, d := range dim {
		if mulOverflows(p, d) {
			return overflow("DimensionN", dim)
		}
		p = p.Mul(d)
	}
	return nil
}

// CheckPosition reports whether pos has one in-range coordinate per axis.
func (DimensionN[N]) CheckPosition(dim []N, pos []N) error {
	if len(pos) != len(dim) {
		return badPosition("DimensionN", pos)
	}
	for i, d := range dim {
		if !natural.Less(pos[i], d) {
			return badPosition("DimensionN", pos)
		}
	}
	return nil
}
