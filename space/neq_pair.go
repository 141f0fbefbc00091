package space

import "github.com/katalvlaran/discrete/natural"

// NeqPair is the space of ordered pairs (a, b) with a != b over [0, n).
//
// It doubles Pair and keeps the order in the low bit:
//
//	index = 2*Pair(min(a,b), max(a,b)) + [a > b]
//
// so for n = 4 the order is (0,1) (1,0) (0,2) (2,0) (1,2) (2,1) (0,3) ...
type NeqPair[N natural.Natural[N]] struct{}

// Count returns n(n-1).
func (NeqPair[N]) Count(n N) N {
	return Pair[N]{}.Count(n).Mul(natural.Lit[N](2))
}

// Zero returns (0, 1).
func (NeqPair[N]) Zero(n N) [2]N { return Pair[N]{}.Zero(n) }

// ToIndex encodes the unordered pair and the direction bit.
func (NeqPair[N]) ToIndex(n N, pos [2]N) N {
	a, b := pos[0], pos[1]
	two := natural.Lit[N](2)
	if natural.Less(a, b) {
		return Pair[N]{}.ToIndex(n, [2]N{a, b}).Mul(two)
	}
	return Pair[N]{}.ToIndex(n, [2]N{b, a}).Mul(two).Add(natural.One[N]())
}

// ToPos decodes the pair at index/2 and swaps it when the low bit is set.
func (NeqPair[N]) ToPos(n N, index N, pos *[2]N) {
	Pair[N]{}.ToPos(n, index.Div(natural.Lit[N](2)), pos)
	if index.Bit(0) == 1 {
		pos[0], pos[1] = pos[1], pos[0]
	}
}

// CheckDimension rejects n whose count does not fit the domain.
func (NeqPair[N]) CheckDimension(n N) error {
	if err := (Pair[N]{}).CheckDimension(n); err != nil {
		return overflow("NeqPair", n)
	}
	if mulOverflows(Pair[N]{}.Count(n), natural.Lit[N](2)) {
		return overflow("NeqPair", n)
	}
	return nil
}

// CheckPosition reports whether pos is a valid ordered pair under n.
func (NeqPair[N]) CheckPosition(n N, pos [2]N) error {
	if natural.Equal(pos[0], pos[1]) || !natural.Less(pos[0], n) || !natural.Less(pos[1], n) {
		return badPosition("NeqPair", pos)
	}
	return nil
}
