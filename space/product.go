// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// product.go — Cartesian product of two arbitrary spaces.
//
// The index is mixed radix with the second space as the low digit:
//
//	index = T.ToIndex(t) · U.Count(du) + U.ToIndex(u)
//
// Every other composite in this package reduces to this law.

package space

import "github.com/katalvlaran/discrete/natural"

// Product pairs a position of T with a position of U.
// Dimension Tuple[D1, D2], position Tuple[P1, P2].
type Product[D1, P1, D2, P2 any, N natural.Natural[N]] struct {
	T Space[D1, P1, N]
	U Space[D2, P2, N]
}

// NewProduct returns the product of t and u.
func NewProduct[D1, P1, D2, P2 any, N natural.Natural[N]](t Space[D1, P1, N], u Space[D2, P2, N]) Product[D1, P1, D2, P2, N] {
	return Product[D1, P1, D2, P2, N]{T: t, U: u}
}

// Count returns T.Count · U.Count.
func (p Product[D1, P1, D2, P2, N]) Count(dim Tuple[D1, D2]) N {
	return p.T.Count(dim.First).Mul(p.U.Count(dim.Second))
}

// Zero pairs the zeros of both spaces.
func (p Product[D1, P1, D2, P2, N]) Zero(dim Tuple[D1, D2]) Tuple[P1, P2] {
	return Tuple[P1, P2]{First: p.T.Zero(dim.First), Second: p.U.Zero(dim.Second)}
}

// ToIndex returns T.ToIndex · U.Count + U.ToIndex.
func (p Product[D1, P1, D2, P2, N]) ToIndex(dim Tuple[D1, D2], pos Tuple[P1, P2]) N {
	hi := p.T.ToIndex(dim.First, pos.First)
	lo := p.U.ToIndex(dim.Second, pos.Second)
	return hi.Mul(p.U.Count(dim.Second)).Add(lo)
}

// ToPos divides index by U.Count and unranks both halves.
func (p Product[D1, P1, D2, P2, N]) ToPos(dim Tuple[D1, D2], index N, pos *Tuple[P1, P2]) {
	hi, lo := natural.DivMod(index, p.U.Count(dim.Second))
	p.T.ToPos(dim.First, hi, &pos.First)
	p.U.ToPos(dim.Second, lo, &pos.Second)
}
