package space

import "github.com/katalvlaran/discrete/natural"

// EqPair is the space of unordered pairs (min, max) with min <= max < n,
// i.e. Pair plus the n "loops" (a, a).
//
// Layout (n = 4):
//
//	      0  1  2  3
//	0  |  0
//	1  |  1  2
//	2  |  3  4  5
//	3  |  6  7  8  9
type EqPair[N natural.Natural[N]] struct{}

// Count returns n(n+1)/2.
func (EqPair[N]) Count(n N) N { return natural.Tri(n) }

// Zero returns (0, 0).
func (EqPair[N]) Zero(N) [2]N { return [2]N{} }

// ToIndex returns min + max(max+1)/2.
func (EqPair[N]) ToIndex(_ N, pos [2]N) N {
	return pos[0].Add(natural.Tri(pos[1]))
}

// ToPos inverts ToIndex: max = TriRoot(index), min = index - Tri(max).
func (EqPair[N]) ToPos(_ N, index N, pos *[2]N) {
	m := natural.TriRoot(index)
	pos[0] = index.Sub(natural.Tri(m))
	pos[1] = m
}

// CheckDimension rejects n whose count does not fit the domain.
func (EqPair[N]) CheckDimension(n N) error {
	n1 := natural.Inc(n)
	if n1.IsZero() || mulOverflows(n, n1) {
		return overflow("EqPair", n)
	}
	return nil
}

// CheckPosition reports whether pos is a valid pair under n.
func (EqPair[N]) CheckPosition(n N, pos [2]N) error {
	if pos[1].Cmp(pos[0]) < 0 || !natural.Less(pos[1], n) {
		return badPosition("EqPair", pos)
	}
	return nil
}
