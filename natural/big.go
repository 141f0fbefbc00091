// SPDX-License-Identifier: MIT
// Package: discrete/natural
//
// big.go — arbitrary-precision domain backed by math/big.
//
// Design:
//   • Big is an immutable value: every operation allocates a fresh *big.Int,
//     so values can be shared freely between goroutines and positions.
//   • The zero value Big{} is the number 0 (a nil pointer reads as 0).
//   • Sub saturates at 0 instead of going negative.

package natural

import (
	"fmt"
	"math/big"
)

// Big is the arbitrary-precision natural number domain.
type Big struct {
	v *big.Int
}

var _ Natural[Big] = Big{}

// NewBig returns v as a Big.
func NewBig(v uint64) Big { return Big{v: new(big.Int).SetUint64(v)} }

// BigOf copies x into a Big. Negative values clamp to 0; nil reads as 0.
func BigOf(x *big.Int) Big {
	if x == nil || x.Sign() <= 0 {
		return Big{}
	}
	return Big{v: new(big.Int).Set(x)}
}

// ParseBig parses a base-10 natural number.
func ParseBig(s string) (Big, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok || x.Sign() < 0 {
		return Big{}, fmt.Errorf("natural: %q is not a natural number", s)
	}
	return Big{v: x}, nil
}

// int returns the underlying value, substituting 0 for nil. Never mutate it.
func (n Big) int() *big.Int {
	if n.v == nil {
		return new(big.Int)
	}
	return n.v
}

// Int returns a copy of n as *big.Int.
func (n Big) Int() *big.Int { return new(big.Int).Set(n.int()) }

// Add returns n+m.
func (n Big) Add(m Big) Big { return Big{v: new(big.Int).Add(n.int(), m.int())} }

// Sub returns n-m, or 0 when m > n.
func (n Big) Sub(m Big) Big {
	d := new(big.Int).Sub(n.int(), m.int())
	if d.Sign() < 0 {
		return Big{}
	}
	return Big{v: d}
}

// Mul returns n*m.
func (n Big) Mul(m Big) Big { return Big{v: new(big.Int).Mul(n.int(), m.int())} }

// Div returns floor(n/m). Panics when m == 0, like Uint.
func (n Big) Div(m Big) Big { return Big{v: new(big.Int).Quo(n.int(), m.int())} }

// Mod returns n%m. Panics when m == 0.
func (n Big) Mod(m Big) Big { return Big{v: new(big.Int).Rem(n.int(), m.int())} }

// Cmp returns -1, 0 or +1.
func (n Big) Cmp(m Big) int { return n.int().Cmp(m.int()) }

// Sqrt returns floor(sqrt(n)).
func (n Big) Sqrt() Big { return Big{v: new(big.Int).Sqrt(n.int())} }

// Lsh returns n<<s.
func (n Big) Lsh(s uint) Big { return Big{v: new(big.Int).Lsh(n.int(), s)} }

// Bit returns the value of bit i.
func (n Big) Bit(i uint) uint { return n.int().Bit(int(i)) }

// BitLen returns the length of n in bits.
func (n Big) BitLen() int { return n.int().BitLen() }

// IsZero reports n == 0.
func (n Big) IsZero() bool { return n.v == nil || n.v.Sign() == 0 }

// From converts v to Big.
func (Big) From(v uint64) Big { return NewBig(v) }

// Uint64 returns the low 64 bits of n.
func (n Big) Uint64() uint64 { return n.int().Uint64() }

// IsUint64 reports whether n fits in 64 bits.
func (n Big) IsUint64() bool { return n.int().IsUint64() }

// String renders n in base 10.
func (n Big) String() string { return n.int().String() }
