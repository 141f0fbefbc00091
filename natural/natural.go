// SPDX-License-Identifier: MIT
// Package: discrete/natural
//
// natural.go — the Natural capability interface and literal helpers.

package natural

// Natural is the arithmetic capability set required by the indexing
// algorithms. N is the implementing value type itself, so generic code reads
// naturally: a.Add(b).Mul(c).
//
// Contract:
//   - All operations are pure; receivers and arguments are never mutated.
//   - Div and Mod floor (both operands are non-negative).
//   - Sqrt returns the exact floor square root.
//   - BitLen is the number of bits needed to write the value (0 for 0).
//   - From ignores its receiver and converts a small literal into N.
type Natural[N any] interface {
	Add(N) N
	Sub(N) N
	Mul(N) N
	Div(N) N
	Mod(N) N
	Cmp(N) int
	Sqrt() N
	Lsh(uint) N
	Bit(uint) uint
	BitLen() int
	IsZero() bool
	From(uint64) N
	Uint64() uint64
	String() string
}

// Lit converts a small literal into the domain N.
func Lit[N Natural[N]](v uint64) N {
	var z N
	return z.From(v)
}

// Zero returns 0 in the domain N.
func Zero[N Natural[N]]() N { return Lit[N](0) }

// One returns 1 in the domain N.
func One[N Natural[N]]() N { return Lit[N](1) }

// Inc returns n+1.
func Inc[N Natural[N]](n N) N { return n.Add(One[N]()) }

// Less reports whether a < b.
func Less[N Natural[N]](a, b N) bool { return a.Cmp(b) < 0 }

// Equal reports whether a == b.
func Equal[N Natural[N]](a, b N) bool { return a.Cmp(b) == 0 }

// Min returns the smaller of a and b.
func Min[N Natural[N]](a, b N) N {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[N Natural[N]](a, b N) N {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// DivMod returns n/d and n%d.
func DivMod[N Natural[N]](n, d N) (q, r N) {
	q = n.Div(d)
	return q, n.Sub(q.Mul(d))
}
