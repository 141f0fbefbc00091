// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// errors.go — sentinel errors reported by Checked and the Check* methods.
// The four core operations never return errors.

package space

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/discrete/natural"
)

var (
	// ErrIndexOutOfRange is returned when an index is not below Count(dim).
	ErrIndexOutOfRange = errors.New("space: index out of range")

	// ErrBadDimension is returned when a dimension is not valid for a space.
	ErrBadDimension = errors.New("space: invalid dimension")

	// ErrBadPosition is returned when a position is not an element of the space.
	ErrBadPosition = errors.New("space: invalid position")
)

// MaxCountBits bounds the counts accepted by the Check* methods. Spaces
// whose count would need more bits are rejected with ErrBadDimension before
// anything of that size is computed. It only binds unbounded domains such
// as natural.Big; natural.Uint overflows long before.
const MaxCountBits = 1 << 20

func badPosition(name string, pos any) error {
	return fmt.Errorf("%s: position %v: %w", name, pos, ErrBadPosition)
}

func overflow(name string, dim any) error {
	return fmt.Errorf("%s: count for dimension %v overflows: %w", name, dim, ErrBadDimension)
}

func tooLarge(name string, dim any) error {
	return fmt.Errorf("%s: count for dimension %v exceeds %d bits: %w", name, dim, MaxCountBits, ErrBadDimension)
}

// wordSized reports whether n survives a round trip through uint64.
func wordSized[N natural.Natural[N]](n N) bool { return n.BitLen() <= 64 }

// mulOverflows reports whether a*b wraps around in N.
func mulOverflows[N natural.Natural[N]](a, b N) bool {
	if a.IsZero() {
		return false
	}
	return !natural.Equal(a.Mul(b).Div(a), b)
}
