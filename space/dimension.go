package space

import "github.com/katalvlaran/discrete/natural"

// Dimension is the identity space: dimension n, positions 0..n-1, each
// position equal to its own index.
type Dimension[N natural.Natural[N]] struct{}

// Count returns n.
func (Dimension[N]) Count(n N) N { return n }

// Zero returns 0.
func (Dimension[N]) Zero(N) N { return natural.Zero[N]() }

// ToIndex returns pos.
func (Dimension[N]) ToIndex(_ N, pos N) N { return pos }

// ToPos writes index into pos.
func (Dimension[N]) ToPos(_ N, index N, pos *N) { *pos = index }

// CheckPosition reports whether pos < n.
func (Dimension[N]) CheckPosition(n N, pos N) error {
	if !natural.Less(pos, n) {
		return badPosition("Dimension", pos)
	}
	return nil
}
