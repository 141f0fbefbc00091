package space

import (
	"iter"

	"github.com/katalvlaran/discrete/natural"
)

// All iterates over every position of s under dim in index order. Each
// yielded position is a fresh value the caller may keep.
func All[D, P any, N natural.Natural[N]](s Space[D, P, N], dim D) iter.Seq2[N, P] {
	return Range(s, dim, natural.Zero[N](), s.Count(dim))
}

// Range iterates over the positions with index in [from, to). to is
// clamped to Count(dim).
func Range[D, P any, N natural.Natural[N]](s Space[D, P, N], dim D, from, to N) iter.Seq2[N, P] {
	to = natural.Min(to, s.Count(dim))
	return func(yield func(N, P) bool) {
		for i := from; natural.Less(i, to); i = natural.Inc(i) {
			pos := s.Zero(dim)
			s.ToPos(dim, i, &pos)
			if !yield(i, pos) {
				return
			}
		}
	}
}

// Pos returns the position with rank index, unranked into a fresh Zero
// buffer.
func Pos[D, P any, N natural.Natural[N]](s Space[D, P, N], dim D, index N) P {
	pos := s.Zero(dim)
	s.ToPos(dim, index, &pos)
	return pos
}
