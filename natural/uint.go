// SPDX-License-Identifier: MIT
// Package: discrete/natural
//
// uint.go — fixed-width domain backed by uint64.
//
// Arithmetic wraps exactly like uint64; callers are responsible for keeping
// counts below 2^64. Sqrt uses an exact integer square root, never floats.

package natural

import (
	"strconv"

	"modernc.org/mathutil"
)

// Uint is the fixed-width natural number domain.
type Uint uint64

var _ Natural[Uint] = Uint(0)

// Add returns n+m (wrapping).
func (n Uint) Add(m Uint) Uint { return n + m }

// Sub returns n-m (wrapping).
func (n Uint) Sub(m Uint) Uint { return n - m }

// Mul returns n*m (wrapping).
func (n Uint) Mul(m Uint) Uint { return n * m }

// Div returns floor(n/m). Panics when m == 0, like the built-in operator.
func (n Uint) Div(m Uint) Uint { return n / m }

// Mod returns n%m. Panics when m == 0.
func (n Uint) Mod(m Uint) Uint { return n % m }

// Cmp returns -1, 0 or +1.
func (n Uint) Cmp(m Uint) int {
	switch {
	case n < m:
		return -1
	case n > m:
		return 1
	}
	return 0
}

// Sqrt returns floor(sqrt(n)).
func (n Uint) Sqrt() Uint { return Uint(mathutil.SqrtUint64(uint64(n))) }

// Lsh returns n<<s.
func (n Uint) Lsh(s uint) Uint { return n << s }

// Bit returns the value of bit i.
func (n Uint) Bit(i uint) uint { return uint(n>>i) & 1 }

// BitLen returns the length of n in bits.
func (n Uint) BitLen() int { return mathutil.BitLenUint64(uint64(n)) }

// IsZero reports n == 0.
func (n Uint) IsZero() bool { return n == 0 }

// From converts v to Uint.
func (Uint) From(v uint64) Uint { return Uint(v) }

// Uint64 returns n as uint64.
func (n Uint) Uint64() uint64 { return uint64(n) }

// String renders n in base 10.
func (n Uint) String() string { return strconv.FormatUint(uint64(n), 10) }
