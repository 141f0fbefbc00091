// SPDX-License-Identifier: MIT
// Package: discrete/natural
//
// arith.go — arithmetic helpers shared by every space, written once
// against Natural so both domains compute identical results.

package natural

// Tri returns the triangular number n(n+1)/2.
// Complexity: O(1) domain operations.
func Tri[N Natural[N]](n N) N {
	return n.Mul(Inc(n)).Div(Lit[N](2))
}

// TriRoot returns the largest m with Tri(m) <= i.
//
// Behavior:
//  1. s = floor(sqrt(2i)) with the exact integer square root.
//  2. Tri(s-1) <= i always holds and Tri(s+1) > i always holds,
//     so a single downward fix-up is enough.
//
// Complexity: one Sqrt plus O(1) domain operations.
func TriRoot[N Natural[N]](i N) N {
	s := i.Mul(Lit[N](2)).Sqrt()
	if Tri(s).Cmp(i) > 0 {
		s = s.Sub(One[N]())
	}
	return s
}

// Factorial returns n!. n must fit in a machine word.
// Complexity: O(n) multiplications.
func Factorial[N Natural[N]](n N) N {
	f := One[N]()
	for k, end := uint64(2), n.Uint64(); k <= end; k++ {
		f = f.Mul(Lit[N](k))
	}
	return f
}

// Pow2 returns 2^n. n must fit in a machine word.
func Pow2[N Natural[N]](n N) N {
	return One[N]().Lsh(uint(n.Uint64()))
}

// Product returns the product of xs (1 for an empty slice).
func Product[N Natural[N]](xs []N) N {
	p := One[N]()
	for _, x := range xs {
		p = p.Mul(x)
	}
	return p
}

// ProductExcept returns the product of all xs except xs[skip].
func ProductExcept[N Natural[N]](xs []N, skip int) N {
	p := One[N]()
	for j, x := range xs {
		if j == skip {
			continue
		}
		p = p.Mul(x)
	}
	return p
}
