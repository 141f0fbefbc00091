// SPDX-License-Identifier: MIT
// Package: discrete/catalog
//
// catalog.go — the table of named spaces and the descriptor builder.

package catalog

import (
	"fmt"

	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

type num = natural.Big

// Entry describes one named space.
type Entry struct {
	Name string
	// Inner is the number of inner spaces: 1 means "optional, defaults to
	// dimension", 2 means exactly two.
	Inner   int
	Summary string
	// Dim and Pos show the encoded dimension and position over dimension.
	Dim, Pos string

	build func(d Descriptor, in []Space) Space
}

var entries = []Entry{
	{
		Name: "dimension", Inner: 1, Dim: "n", Pos: "i",
		Summary: "the numbers [0, n); over an inner space, the inner space itself",
		build: func(d Descriptor, in []Space) Space {
			if len(in) == 0 {
				return wrap[num, num](d, space.Dimension[num]{}, bigCodec, bigCodec)
			}
			return wrap(d, space.NewOf[any, any, num](in[0]), dimCodec(in[0]), posCodec(in[0]))
		},
	},
	{
		Name: "pair", Inner: 1, Dim: "n", Pos: "[a, b]",
		Summary: "unordered pairs a < b",
		build:   twoOf(space.PairOf[any, any, num]),
	},
	{
		Name: "eq-pair", Inner: 1, Dim: "n", Pos: "[a, b]",
		Summary: "unordered pairs a <= b, loops included",
		build:   twoOf(space.EqPairOf[any, any, num]),
	},
	{
		Name: "neq-pair", Inner: 1, Dim: "n", Pos: "[a, b]",
		Summary: "ordered pairs a != b",
		build:   twoOf(space.NeqPairOf[any, any, num]),
	},
	{
		Name: "sq-pair", Inner: 1, Dim: "n", Pos: "[a, b]",
		Summary: "all ordered pairs",
		build:   twoOf(space.SqPairOf[any, any, num]),
	},
	{
		Name: "power-set", Inner: 1, Dim: "n", Pos: "[a, b, ...]",
		Summary: "subsets, members in increasing order",
		build:   listOf(space.PowerSetOf[any, any, num]),
	},
	{
		Name: "permutation", Inner: 1, Dim: "n", Pos: "[a, b, ...]",
		Summary: "orderings of all n elements",
		build:   listOf(space.PermutationOf[any, any, num]),
	},
	{
		Name: "dimension-n", Inner: 1, Dim: "[d0, d1, ...]", Pos: "[x0, x1, ...]",
		Summary: "points of a grid, last axis most significant",
		build: func(d Descriptor, in []Space) Space {
			inner := innerOf(in)
			return wrap(d, space.DimensionNOf[any, any, num](inner),
				listCodec(dimCodec(inner)), listCodec(posCodec(inner)))
		},
	},
	{
		Name: "context", Inner: 1, Dim: "[d0, d1, ...]", Pos: "{coords: [...], axis: k, value: v}",
		Summary: "undirected edges of a grid graph",
		build:   edgesOf(space.ContextOf[any, any, num]),
	},
	{
		Name: "directed-context", Inner: 1, Dim: "[d0, d1, ...]", Pos: "{coords: [...], axis: k, value: v}",
		Summary: "directed edges of a grid graph",
		build:   edgesOf(space.DirectedContextOf[any, any, num]),
	},
	{
		Name: "homotopy", Inner: 1, Dim: "{level: l, dim: n}", Pos: "{point: p} | {path: [a, b]}",
		Summary: "paths between paths, level times over n points",
		build: func(d Descriptor, in []Space) Space {
			inner := innerOf(in)
			return wrap(d, space.HomotopyOf[any, any, num](inner),
				hdimCodec(dimCodec(inner)), hpointCodec(posCodec(inner)))
		},
	},
	{
		Name: "product", Inner: 2, Dim: "[dt, du]", Pos: "[pt, pu]",
		Summary: "pairs of one position from each space",
		build: func(d Descriptor, in []Space) Space {
			t, u := in[0], in[1]
			return wrap(d, space.NewProduct[any, any, any, any, num](t, u),
				tupleCodec(dimCodec(t), dimCodec(u)), tupleCodec(posCodec(t), posCodec(u)))
		},
	},
	{
		Name: "sum", Inner: 2, Dim: "[dt, du]", Pos: "{first: pt} | {second: pu}",
		Summary: "a position from either space, first space first",
		build: func(d Descriptor, in []Space) Space {
			t, u := in[0], in[1]
			return wrap(d, space.NewSum[any, any, any, any, num](t, u),
				tupleCodec(dimCodec(t), dimCodec(u)), selectCodec(posCodec(t), posCodec(u)))
		},
	},
}

// leaf is the inner space of a bare name.
var leaf = wrap[num, num](Descriptor{Name: "dimension"}, space.Dimension[num]{}, bigCodec, bigCodec)

func innerOf(in []Space) Space {
	if len(in) == 0 {
		return leaf
	}
	return in[0]
}

func twoOf(lift func(space.Space[any, any, num]) space.TwoOf[any, any, num]) func(Descriptor, []Space) Space {
	return func(d Descriptor, in []Space) Space {
		inner := innerOf(in)
		return wrap(d, lift(inner), dimCodec(inner), pairCodec(posCodec(inner)))
	}
}

func listOf(lift func(space.Space[any, any, num]) space.ListOf[any, any, num]) func(Descriptor, []Space) Space {
	return func(d Descriptor, in []Space) Space {
		inner := innerOf(in)
		return wrap(d, lift(inner), dimCodec(inner), listCodec(posCodec(inner)))
	}
}

func edgesOf(lift func(space.Space[any, any, num]) space.EdgesOf[any, any, num]) func(Descriptor, []Space) Space {
	return func(d Descriptor, in []Space) Space {
		inner := innerOf(in)
		return wrap(d, lift(inner), listCodec(dimCodec(inner)), edgeCodec(posCodec(inner)))
	}
}

// Entries returns the named spaces in catalog order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Build constructs the space described by d, inner spaces first.
func Build(d Descriptor) (Space, error) {
	e, ok := lookup(d.Name)
	if !ok {
		return nil, fmt.Errorf("Build: %q: %w", d.Name, ErrUnknownSpace)
	}
	switch {
	case e.Inner == 1 && len(d.Args) > 1:
		return nil, fmt.Errorf("Build: %s takes at most one inner space, got %d: %w", d.Name, len(d.Args), ErrNoInner)
	case e.Inner == 2 && len(d.Args) != 2:
		return nil, fmt.Errorf("Build: %s takes two inner spaces, got %d: %w", d.Name, len(d.Args), ErrNoInner)
	}

	in := make([]Space, len(d.Args))
	for i, a := range d.Args {
		s, err := Build(a)
		if err != nil {
			return nil, err
		}
		in[i] = s
	}
	return e.build(d, in), nil
}

// Parse parses a descriptor and builds its space.
func Parse(src string) (Space, error) {
	d, err := ParseDescriptor(src)
	if err != nil {
		return nil, err
	}
	return Build(d)
}
