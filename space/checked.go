// SPDX-License-Identifier: MIT
// Package: discrete/space
//
// checked.go — validating wrapper around any Space.
//
// The core operations never validate: an index ≥ Count or a malformed
// position gives an unspecified result. Checked adds the validation at the
// boundary where untrusted input enters (the catalog and the CLI):
//
//   - dimensions are passed to CheckDimension when the space implements
//     DimensionChecker,
//   - positions are passed to CheckPosition when the space implements
//     PositionChecker, and their rank must fall below Count,
//   - indices must fall below Count.
//
// Primitive spaces implement both checkers; compositors implement them by
// delegating to their parts.

package space

import (
	"fmt"

	"github.com/katalvlaran/discrete/natural"
)

// DimensionChecker is implemented by spaces that can reject a dimension.
type DimensionChecker[D any] interface {
	CheckDimension(dim D) error
}

// PositionChecker is implemented by spaces that can reject a position.
type PositionChecker[D, P any] interface {
	CheckPosition(dim D, pos P) error
}

// CheckDimension runs s.CheckDimension when s implements DimensionChecker.
func CheckDimension[D, P any, N natural.Natural[N]](s Space[D, P, N], dim D) error {
	if c, ok := s.(DimensionChecker[D]); ok {
		return c.CheckDimension(dim)
	}
	return nil
}

// CheckPosition runs s.CheckPosition when s implements PositionChecker.
func CheckPosition[D, P any, N natural.Natural[N]](s Space[D, P, N], dim D, pos P) error {
	if c, ok := s.(PositionChecker[D, P]); ok {
		return c.CheckPosition(dim, pos)
	}
	return nil
}

// Checked wraps a Space and validates every argument.
type Checked[D, P any, N natural.Natural[N]] struct {
	Space Space[D, P, N]
}

// NewChecked wraps s. Panics if s is nil.
func NewChecked[D, P any, N natural.Natural[N]](s Space[D, P, N]) Checked[D, P, N] {
	if s == nil {
		panic("space: NewChecked(nil)")
	}
	return Checked[D, P, N]{Space: s}
}

// Count validates dim and returns the size of the space.
func (c Checked[D, P, N]) Count(dim D) (N, error) {
	if err := CheckDimension(c.Space, dim); err != nil {
		var z N
		return z, fmt.Errorf("Count: %w", err)
	}
	return c.Space.Count(dim), nil
}

// Zero validates dim and returns the first position. An empty space has no
// first position and yields ErrIndexOutOfRange.
func (c Checked[D, P, N]) Zero(dim D) (P, error) {
	var z P
	n, err := c.Count(dim)
	if err != nil {
		return z, fmt.Errorf("Zero: %w", err)
	}
	if n.IsZero() {
		return z, fmt.Errorf("Zero: empty space: %w", ErrIndexOutOfRange)
	}
	return c.Space.Zero(dim), nil
}

// ToIndex validates dim and pos and returns the rank of pos.
func (c Checked[D, P, N]) ToIndex(dim D, pos P) (N, error) {
	var z N
	n, err := c.Count(dim)
	if err != nil {
		return z, fmt.Errorf("ToIndex: %w", err)
	}
	if err = CheckPosition(c.Space, dim, pos); err != nil {
		return z, fmt.Errorf("ToIndex: %w", err)
	}
	i := c.Space.ToIndex(dim, pos)
	if !natural.Less(i, n) {
		return z, fmt.Errorf("ToIndex: rank %v of %v: %w", i, pos, ErrBadPosition)
	}
	return i, nil
}

// ToPos validates dim and index and writes the position into pos.
func (c Checked[D, P, N]) ToPos(dim D, index N, pos *P) error {
	n, err := c.Count(dim)
	if err != nil {
		return fmt.Errorf("ToPos: %w", err)
	}
	if !natural.Less(index, n) {
		return fmt.Errorf("ToPos: index %v, count %v: %w", index, n, ErrIndexOutOfRange)
	}
	c.Space.ToPos(dim, index, pos)
	return nil
}

// Pos is ToPos into a fresh Zero buffer.
func (c Checked[D, P, N]) Pos(dim D, index N) (P, error) {
	pos, err := c.Zero(dim)
	if err != nil {
		return pos, fmt.Errorf("Pos: %w", err)
	}
	if err = c.ToPos(dim, index, &pos); err != nil {
		return pos, fmt.Errorf("Pos: %w", err)
	}
	return pos, nil
}

// CheckDimension validates both dimensions.
func (p Product[D1, P1, D2, P2, N]) CheckDimension(dim Tuple[D1, D2]) error {
	if err := CheckDimension(p.T, dim.First); err != nil {
		return err
	}
	if err := CheckDimension(p.U, dim.Second); err != nil {
		return err
	}
	if mulOverflows(p.T.Count(dim.First), p.U.Count(dim.Second)) {
		return overflow("Product", dim)
	}
	return nil
}

// CheckPosition validates both halves.
func (p Product[D1, P1, D2, P2, N]) CheckPosition(dim Tuple[D1, D2], pos Tuple[P1, P2]) error {
	if err := CheckPosition(p.T, dim.First, pos.First); err != nil {
		return err
	}
	return CheckPosition(p.U, dim.Second, pos.Second)
}

// CheckDimension validates both dimensions.
func (s Sum[D1, P1, D2, P2, N]) CheckDimension(dim Tuple[D1, D2]) error {
	if err := CheckDimension(s.T, dim.First); err != nil {
		return err
	}
	if err := CheckDimension(s.U, dim.Second); err != nil {
		return err
	}
	ct := s.T.Count(dim.First)
	if natural.Less(ct.Add(s.U.Count(dim.Second)), ct) {
		return overflow("Sum", dim)
	}
	return nil
}

// CheckPosition validates the selected side.
func (s Sum[D1, P1, D2, P2, N]) CheckPosition(dim Tuple[D1, D2], pos Select[P1, P2]) error {
	switch pos.Side {
	case First:
		return CheckPosition(s.T, dim.First, pos.First)
	case Second:
		return CheckPosition(s.U, dim.Second, pos.Second)
	}
	return badPosition("Sum", pos)
}

// CheckDimension validates the inner dimension, then the outer combinator
// over the inner count.
func (o TwoOf[D, P, N]) CheckDimension(dim D) error {
	if err := CheckDimension(o.Inner, dim); err != nil {
		return err
	}
	return CheckDimension(o.Outer, o.Inner.Count(dim))
}

// CheckPosition validates both elements, then the pair of their ranks.
func (o TwoOf[D, P, N]) CheckPosition(dim D, pos [2]P) error {
	var ix [2]N
	for i, p := range pos {
		if err := CheckPosition(o.Inner, dim, p); err != nil {
			return err
		}
		ix[i] = o.Inner.ToIndex(dim, p)
	}
	return CheckPosition(o.Outer, o.Inner.Count(dim), ix)
}

// CheckDimension validates the inner dimension, then the outer combinator
// over the inner count.
func (o ListOf[D, P, N]) CheckDimension(dim D) error {
	if err := CheckDimension(o.Inner, dim); err != nil {
		return err
	}
	return CheckDimension(o.Outer, o.Inner.Count(dim))
}

// CheckPosition validates every element, then the list of their ranks.
func (o ListOf[D, P, N]) CheckPosition(dim D, pos []P) error {
	ix := make([]N, len(pos))
	for i, p := range pos {
		if err := CheckPosition(o.Inner, dim, p); err != nil {
			return err
		}
		ix[i] = o.Inner.ToIndex(dim, p)
	}
	return CheckPosition(o.Outer, o.Inner.Count(dim), ix)
}

// CheckDimension validates every axis and the grid size.
func (o AxesOf[D, P, N]) CheckDimension(dim []D) error {
	for _, d := range dim {
		if err := CheckDimension(o.Inner, d); err != nil {
			return err
		}
	}
	return DimensionN[N]{}.CheckDimension(o.counts(dim))
}

// CheckPosition validates the coordinate on every axis.
func (o AxesOf[D, P, N]) CheckPosition(dim []D, pos []P) error {
	if len(pos) != len(dim) {
		return badPosition("DimensionN", pos)
	}
	for i, d := range dim {
		if err := CheckPosition(o.Inner, d, pos[i]); err != nil {
			return err
		}
	}
	return nil
}

// CheckDimension validates every axis, then the grid of inner counts.
func (o EdgesOf[D, P, N]) CheckDimension(dim []D) error {
	for _, d := range dim {
		if err := CheckDimension(o.Inner, d); err != nil {
			return err
		}
	}
	return CheckDimension(o.Outer, o.counts(dim))
}

// CheckPosition validates every coordinate and the new value, then the
// edge of their ranks.
func (o EdgesOf[D, P, N]) CheckPosition(dim []D, pos Edge[P]) error {
	if len(pos.Coords) != len(dim) || pos.Axis < 0 || pos.Axis >= len(dim) {
		return badPosition("Context", pos)
	}
	e := Edge[N]{Coords: make([]N, len(dim)), Axis: pos.Axis}
	for i, d := range dim {
		if err := CheckPosition(o.Inner, d, pos.Coords[i]); err != nil {
			return err
		}
		e.Coords[i] = o.Inner.ToIndex(d, pos.Coords[i])
	}
	if err := CheckPosition(o.Inner, dim[pos.Axis], pos.Value); err != nil {
		return err
	}
	e.Value = o.Inner.ToIndex(dim[pos.Axis], pos.Value)
	return CheckPosition(o.Outer, o.counts(dim), e)
}
