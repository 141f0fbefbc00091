package space

import "github.com/katalvlaran/discrete/natural"

// SqPair is the full n×n grid of ordered pairs (a, b), a, b in [0, n),
// encoded row-major: index = a + b*n.
type SqPair[N natural.Natural[N]] struct{}

// Count returns n².
func (SqPair[N]) Count(n N) N { return n.Mul(n) }

// Zero returns (0, 0).
func (SqPair[N]) Zero(N) [2]N { return [2]N{} }

// ToIndex returns a + b*n.
func (SqPair[N]) ToIndex(n N, pos [2]N) N { return pos[0].Add(pos[1].Mul(n)) }

// ToPos writes (index % n, index / n).
func (SqPair[N]) ToPos(n N, index N, pos *[2]N) {
	pos[1], pos[0] = natural.DivMod(index, n)
}

// CheckDimension rejects n whose n² does not fit the domain.
func (SqPair[N]) CheckDimension(n N) error {
	if mulOverflows(n, n) {
		return overflow("SqPair", n)
	}
	return nil
}

// CheckPosition reports whether both coordinates are below n.
func (SqPair[N]) CheckPosition(n N, pos [2]N) error {
	if !natural.Less(pos[0], n) || !natural.Less(pos[1], n) {
		return badPosition("SqPair", pos)
	}
	return nil
}
