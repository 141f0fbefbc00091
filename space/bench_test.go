// Package space_test provides benchmarks for ranking and unranking on both
// numeric domains.
package space_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

// sinks to defeat dead-code elimination
var (
	sinkU   U
	sinkB   B
	sinkPos [2]U
	sinkSet [][2]U
)

func BenchmarkPair_ToPos(b *testing.B) {
	b.ReportAllocs()
	s := space.Pair[U]{}
	n := U(1 << 20)
	count := s.Count(n)
	for i := 0; i < b.N; i++ {
		s.ToPos(n, U(i)%count, &sinkPos)
	}
}

func BenchmarkPair_ToPosBig(b *testing.B) {
	b.ReportAllocs()
	s := space.Pair[B]{}
	n := natural.Pow2(big(40))
	var pos [2]B
	for i := 0; i < b.N; i++ {
		s.ToPos(n, big(uint64(i)), &pos)
	}
	sinkB = pos[1]
}

func BenchmarkPermutation(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []U{8, 12, 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := space.Permutation[U]{}
			count := s.Count(n)
			pos := s.Zero(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.ToPos(n, U(i*7919)%count, &pos)
				sinkU = s.ToIndex(n, pos)
			}
		})
	}
}

func BenchmarkPowerSetOf_Pair(b *testing.B) {
	b.ReportAllocs()
	dag := space.PowerSetOf(space.Pair[U]{})
	n := U(8)
	count := dag.Count(n)
	pos := dag.Zero(n)
	for i := 0; i < b.N; i++ {
		dag.ToPos(n, U(i)%count, &pos)
	}
	sinkSet = pos
}

func BenchmarkDirectedContext(b *testing.B) {
	b.ReportAllocs()
	s := space.DirectedContext[U]{}
	dim := []U{3, 3, 3, 3, 3}
	count := s.Count(dim)
	pos := s.Zero(dim)
	for i := 0; i < b.N; i++ {
		s.ToPos(dim, U(i)%count, &pos)
		sinkU = s.ToIndex(dim, pos)
	}
}

func BenchmarkHomotopy(b *testing.B) {
	b.ReportAllocs()
	s := space.Homotopy[U]{}
	dim := space.HDim[U]{Level: 4, Dim: 3}
	count := s.Count(dim)
	pos := s.Zero(dim)
	for i := 0; i < b.N; i++ {
		s.ToPos(dim, U(i)%count, &pos)
		sinkU = s.ToIndex(dim, pos)
	}
}
