// SPDX-License-Identifier: MIT
// Package: discrete/catalog
//
// space.go — the runtime Space and its adapter over typed spaces.

package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

// Space is a space built from a descriptor. Dimensions and positions are
// held as any; their dynamic types are fixed by the descriptor and produced
// by DecodeDim and DecodePos.
//
// The four space operations panic when handed values of the wrong dynamic
// type. CheckDimension and CheckPosition report ErrBadValue instead.
type Space interface {
	space.Space[any, any, natural.Big]
	space.DimensionChecker[any]
	space.PositionChecker[any, any]

	// Descriptor returns the descriptor the space was built from.
	Descriptor() Descriptor

	DecodeDim(n *yaml.Node) (any, error)
	DecodePos(n *yaml.Node) (any, error)
	EncodeDim(dim any) *yaml.Node
	EncodePos(pos any) *yaml.Node
}

// adapter erases the dimension and position types of a typed space.
type adapter[D, P any] struct {
	desc Descriptor
	s    space.Space[D, P, natural.Big]
	dim  codec[D]
	pos  codec[P]
}

func wrap[D, P any](desc Descriptor, s space.Space[D, P, natural.Big], dim codec[D], pos codec[P]) Space {
	return adapter[D, P]{desc: desc, s: s, dim: dim, pos: pos}
}

func (a adapter[D, P]) Descriptor() Descriptor { return a.desc }

func (a adapter[D, P]) Count(dim any) natural.Big { return a.s.Count(dim.(D)) }

func (a adapter[D, P]) Zero(dim any) any { return a.s.Zero(dim.(D)) }

func (a adapter[D, P]) ToIndex(dim any, pos any) natural.Big {
	return a.s.ToIndex(dim.(D), pos.(P))
}

// ToPos reuses *pos when it already holds a P and starts from the zero P
// otherwise.
func (a adapter[D, P]) ToPos(dim any, index natural.Big, pos *any) {
	p, _ := (*pos).(P)
	a.s.ToPos(dim.(D), index, &p)
	*pos = p
}

func (a adapter[D, P]) CheckDimension(dim any) error {
	d, ok := dim.(D)
	if !ok {
		return fmt.Errorf("%s: dimension of type %T: %w", a.desc, dim, ErrBadValue)
	}
	if err := space.CheckDimension(a.s, d); err != nil {
		return fmt.Errorf("%s: %w", a.desc, err)
	}
	return nil
}

func (a adapter[D, P]) CheckPosition(dim any, pos any) error {
	d, ok := dim.(D)
	if !ok {
		return fmt.Errorf("%s: dimension of type %T: %w", a.desc, dim, ErrBadValue)
	}
	p, ok := pos.(P)
	if !ok {
		return fmt.Errorf("%s: position of type %T: %w", a.desc, pos, ErrBadValue)
	}
	if err := space.CheckPosition(a.s, d, p); err != nil {
		return fmt.Errorf("%s: %w", a.desc, err)
	}
	return nil
}

func (a adapter[D, P]) DecodeDim(n *yaml.Node) (any, error) {
	d, err := a.dim.decode(n)
	if err != nil {
		return nil, fmt.Errorf("%s: dimension: %w", a.desc, err)
	}
	return d, nil
}

func (a adapter[D, P]) DecodePos(n *yaml.Node) (any, error) {
	p, err := a.pos.decode(n)
	if err != nil {
		return nil, fmt.Errorf("%s: position: %w", a.desc, err)
	}
	return p, nil
}

func (a adapter[D, P]) EncodeDim(dim any) *yaml.Node { return a.dim.encode(dim.(D)) }

func (a adapter[D, P]) EncodePos(pos any) *yaml.Node { return a.pos.encode(pos.(P)) }

// dimCodec and posCodec expose an inner space's codecs to the space built
// on top of it.
func dimCodec(s Space) codec[any] { return codec[any]{decode: s.DecodeDim, encode: s.EncodeDim} }

func posCodec(s Space) codec[any] { return codec[any]{decode: s.DecodePos, encode: s.EncodePos} }
