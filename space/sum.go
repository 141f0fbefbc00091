package space

import "github.com/katalvlaran/discrete/natural"

// Sum is the disjoint union of two spaces. Positions of T take the indices
// [0, T.Count) and positions of U take [T.Count, T.Count+U.Count).
// Dimension Tuple[D1, D2], position Select[P1, P2].
type Sum[D1, P1, D2, P2 any, N natural.Natural[N]] struct {
	T Space[D1, P1, N]
	U Space[D2, P2, N]
}

// NewSum returns the disjoint union of t and u.
func NewSum[D1, P1, D2, P2 any, N natural.Natural[N]](t Space[D1, P1, N], u Space[D2, P2, N]) Sum[D1, P1, D2, P2, N] {
	return Sum[D1, P1, D2, P2, N]{T: t, U: u}
}

// Count returns T.Count + U.Count.
func (s Sum[D1, P1, D2, P2, N]) Count(dim Tuple[D1, D2]) N {
	return s.T.Count(dim.First).Add(s.U.Count(dim.Second))
}

// Zero returns First(T.Zero).
func (s Sum[D1, P1, D2, P2, N]) Zero(dim Tuple[D1, D2]) Select[P1, P2] {
	return Fst[P1, P2](s.T.Zero(dim.First))
}

// ToIndex places First positions before Second positions.
func (s Sum[D1, P1, D2, P2, N]) ToIndex(dim Tuple[D1, D2], pos Select[P1, P2]) N {
	if pos.Side == First {
		return s.T.ToIndex(dim.First, pos.First)
	}
	return s.T.Count(dim.First).Add(s.U.ToIndex(dim.Second, pos.Second))
}

// ToPos picks the side by comparing index with T.Count. The buffer of the
// side not chosen is left untouched.
func (s Sum[D1, P1, D2, P2, N]) ToPos(dim Tuple[D1, D2], index N, pos *Select[P1, P2]) {
	ct := s.T.Count(dim.First)
	if natural.Less(index, ct) {
		pos.Side = First
		s.T.ToPos(dim.First, index, &pos.First)
		return
	}
	pos.Side = Second
	s.U.ToPos(dim.Second, index.Sub(ct), &pos.Second)
}
