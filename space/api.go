// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// api.go — the Space contract and the shared position/dimension types.

package space

import (
	"fmt"

	"github.com/katalvlaran/discrete/natural"
)

// Space is the four-operation contract implemented by every discrete space.
//
//   - D is the dimension type: the shape of one concrete space instance.
//   - P is the position type: one element of the space.
//   - N is the numeric domain for counts and indices.
//
// Implementations are stateless; the zero value is ready to use.
type Space[D, P any, N natural.Natural[N]] interface {
	// Count returns the number of positions admissible under dim.
	Count(dim D) N
	// Zero returns the canonical first position (index 0 when Count > 0).
	Zero(dim D) P
	// ToIndex returns the rank of pos in [0, Count(dim)).
	ToIndex(dim D, pos P) N
	// ToPos writes the position with rank index into pos, reusing its buffers.
	ToPos(dim D, index N, pos *P)
}

// Tuple is the dimension and position type of Product, and the dimension
// type of Sum.
type Tuple[T, U any] struct {
	First  T
	Second U
}

// Of2 builds a Tuple.
func Of2[T, U any](first T, second U) Tuple[T, U] {
	return Tuple[T, U]{First: first, Second: second}
}

// Side tells which alternative of a Sum a Select holds.
type Side int

const (
	// First selects the left alternative.
	First Side = iota
	// Second selects the right alternative.
	Second
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Second {
		return "Second"
	}
	return "First"
}

// Select is the tagged choice produced by Sum. Only the field named by Side
// is meaningful.
type Select[T, U any] struct {
	Side   Side
	First  T
	Second U
}

// Fst returns a Select holding the first alternative.
func Fst[T, U any](v T) Select[T, U] { return Select[T, U]{Side: First, First: v} }

// Snd returns a Select holding the second alternative.
func Snd[T, U any](v U) Select[T, U] { return Select[T, U]{Side: Second, Second: v} }

// String implements fmt.Stringer.
func (s Select[T, U]) String() string {
	if s.Side == Second {
		return fmt.Sprintf("Second(%v)", s.Second)
	}
	return fmt.Sprintf("First(%v)", s.First)
}

// Edge is the position type of Context and DirectedContext: a vertex of the
// grid (Coords) together with the axis that changes and the new value of
// that axis.
type Edge[T any] struct {
	Coords []T
	Axis   int
	Value  T
}

// String implements fmt.Stringer.
func (e Edge[T]) String() string {
	return fmt.Sprintf("(%v, %d, %v)", e.Coords, e.Axis, e.Value)
}

// resize returns buf truncated and extended to n elements, reusing storage.
func resize[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}
