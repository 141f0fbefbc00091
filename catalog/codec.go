// SPDX-License-Identifier: MIT
// Package: discrete/catalog
//
// codec.go — YAML node codecs for dimensions and positions.
//
// Encoders emit flow-style collections with untagged scalars, so a value
// prints on one line in YAML and maps one-to-one onto JSON.

package catalog

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

// codec converts one Go value type to and from YAML nodes.
type codec[T any] struct {
	decode func(*yaml.Node) (T, error)
	encode func(T) *yaml.Node
}

func badValue(want string, n *yaml.Node) error {
	return fmt.Errorf("want %s at line %d, column %d: %w", want, n.Line, n.Column, ErrBadValue)
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func seq(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: items}
}

// mapping builds a flow mapping from alternating key and value nodes.
func mapping(kv ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle, Content: kv}
}

// fields returns the values of a mapping by key. Every key must be one of
// keys and appear at most once.
func fields(n *yaml.Node, want string, keys ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, badValue(want, n)
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		known := false
		for _, key := range keys {
			known = known || k.Value == key
		}
		if !known || out[k.Value] != nil {
			return nil, fmt.Errorf("key %q at line %d: %w", k.Value, k.Line, ErrBadValue)
		}
		out[k.Value] = n.Content[i+1]
	}
	return out, nil
}

// items returns the elements of a sequence, checking the length when
// size >= 0.
func items(n *yaml.Node, want string, size int) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode || size >= 0 && len(n.Content) != size {
		return nil, badValue(want, n)
	}
	return n.Content, nil
}

var bigCodec = codec[natural.Big]{
	decode: func(n *yaml.Node) (natural.Big, error) {
		if n.Kind != yaml.ScalarNode {
			return natural.Big{}, badValue("a natural number", n)
		}
		v, err := natural.ParseBig(n.Value)
		if err != nil {
			return natural.Big{}, fmt.Errorf("%w: %w", err, ErrBadValue)
		}
		return v, nil
	},
	encode: func(v natural.Big) *yaml.Node { return scalar(v.String()) },
}

var intCodec = codec[int]{
	decode: func(n *yaml.Node) (int, error) {
		if n.Kind != yaml.ScalarNode {
			return 0, badValue("an integer", n)
		}
		v, err := strconv.Atoi(n.Value)
		if err != nil {
			return 0, badValue("an integer", n)
		}
		return v, nil
	},
	encode: func(v int) *yaml.Node { return scalar(strconv.Itoa(v)) },
}

// anyCodec lifts a typed codec to the erased value type.
func anyCodec[T any](c codec[T]) codec[any] {
	return codec[any]{
		decode: func(n *yaml.Node) (any, error) { return c.decode(n) },
		encode: func(v any) *yaml.Node { return c.encode(v.(T)) },
	}
}

func pairCodec(c codec[any]) codec[[2]any] {
	return codec[[2]any]{
		decode: func(n *yaml.Node) ([2]any, error) {
			xs, err := items(n, "a pair [a, b]", 2)
			if err != nil {
				return [2]any{}, err
			}
			var out [2]any
			for i, x := range xs {
				if out[i], err = c.decode(x); err != nil {
					return [2]any{}, err
				}
			}
			return out, nil
		},
		encode: func(v [2]any) *yaml.Node { return seq(c.encode(v[0]), c.encode(v[1])) },
	}
}

func listCodec(c codec[any]) codec[[]any] {
	return codec[[]any]{
		decode: func(n *yaml.Node) ([]any, error) {
			xs, err := items(n, "a list", -1)
			if err != nil {
				return nil, err
			}
			out := make([]any, len(xs))
			for i, x := range xs {
				if out[i], err = c.decode(x); err != nil {
					return nil, err
				}
			}
			return out, nil
		},
		encode: func(v []any) *yaml.Node {
			out := seq()
			for _, x := range v {
				out.Content = append(out.Content, c.encode(x))
			}
			return out
		},
	}
}

func tupleCodec(t, u codec[any]) codec[space.Tuple[any, any]] {
	return codec[space.Tuple[any, any]]{
		decode: func(n *yaml.Node) (space.Tuple[any, any], error) {
			xs, err := items(n, "a tuple [first, second]", 2)
			if err != nil {
				return space.Tuple[any, any]{}, err
			}
			first, err := t.decode(xs[0])
			if err != nil {
				return space.Tuple[any, any]{}, err
			}
			second, err := u.decode(xs[1])
			if err != nil {
				return space.Tuple[any, any]{}, err
			}
			return space.Of2(first, second), nil
		},
		encode: func(v space.Tuple[any, any]) *yaml.Node { return seq(t.encode(v.First), u.encode(v.Second)) },
	}
}

func selectCodec(t, u codec[any]) codec[space.Select[any, any]] {
	const want = "{first: p} or {second: p}"
	return codec[space.Select[any, any]]{
		decode: func(n *yaml.Node) (space.Select[any, any], error) {
			f, err := fields(n, want, "first", "second")
			if err != nil {
				return space.Select[any, any]{}, err
			}
			if len(f) != 1 {
				return space.Select[any, any]{}, badValue(want, n)
			}
			if v := f["second"]; v != nil {
				p, err := u.decode(v)
				return space.Snd[any](p), err
			}
			p, err := t.decode(f["first"])
			return space.Fst[any, any](p), err
		},
		encode: func(v space.Select[any, any]) *yaml.Node {
			if v.Side == space.Second {
				return mapping(scalar("second"), u.encode(v.Second))
			}
			return mapping(scalar("first"), t.encode(v.First))
		},
	}
}

func edgeCodec(c codec[any]) codec[space.Edge[any]] {
	const want = "{coords: [...], axis: k, value: v}"
	coords := listCodec(c)
	return codec[space.Edge[any]]{
		decode: func(n *yaml.Node) (space.Edge[any], error) {
			f, err := fields(n, want, "coords", "axis", "value")
			if err != nil {
				return space.Edge[any]{}, err
			}
			if len(f) != 3 {
				return space.Edge[any]{}, badValue(want, n)
			}
			var e space.Edge[any]
			if e.Coords, err = coords.decode(f["coords"]); err != nil {
				return space.Edge[any]{}, err
			}
			if e.Axis, err = intCodec.decode(f["axis"]); err != nil {
				return space.Edge[any]{}, err
			}
			if e.Value, err = c.decode(f["value"]); err != nil {
				return space.Edge[any]{}, err
			}
			return e, nil
		},
		encode: func(e space.Edge[any]) *yaml.Node {
			return mapping(
				scalar("coords"), coords.encode(e.Coords),
				scalar("axis"), intCodec.encode(e.Axis),
				scalar("value"), c.encode(e.Value),
			)
		},
	}
}

func hdimCodec(c codec[any]) codec[space.HDim[any]] {
	const want = "{level: l, dim: d}"
	return codec[space.HDim[any]]{
		decode: func(n *yaml.Node) (space.HDim[any], error) {
			f, err := fields(n, want, "level", "dim")
			if err != nil {
				return space.HDim[any]{}, err
			}
			if len(f) != 2 {
				return space.HDim[any]{}, badValue(want, n)
			}
			var d space.HDim[any]
			if d.Level, err = intCodec.decode(f["level"]); err != nil {
				return space.HDim[any]{}, err
			}
			if d.Dim, err = c.decode(f["dim"]); err != nil {
				return space.HDim[any]{}, err
			}
			return d, nil
		},
		encode: func(d space.HDim[any]) *yaml.Node {
			return mapping(scalar("level"), intCodec.encode(d.Level), scalar("dim"), c.encode(d.Dim))
		},
	}
}

func hpointCodec(c codec[any]) codec[space.HPoint[any]] {
	const want = "{point: p} or {path: [a, b]}"
	var hc codec[space.HPoint[any]]
	hc.decode = func(n *yaml.Node) (space.HPoint[any], error) {
		f, err := fields(n, want, "point", "path")
		if err != nil {
			return space.HPoint[any]{}, err
		}
		if len(f) != 1 {
			return space.HPoint[any]{}, badValue(want, n)
		}
		if v := f["point"]; v != nil {
			p, err := c.decode(v)
			return space.Point(p), err
		}
		xs, err := items(f["path"], "a path [a, b]", 2)
		if err != nil {
			return space.HPoint[any]{}, err
		}
		a, err := hc.decode(xs[0])
		if err != nil {
			return space.HPoint[any]{}, err
		}
		b, err := hc.decode(xs[1])
		if err != nil {
			return space.HPoint[any]{}, err
		}
		return space.Path(a, b), nil
	}
	hc.encode = func(h space.HPoint[any]) *yaml.Node {
		if !h.IsPath() {
			return mapping(scalar("point"), c.encode(h.Value))
		}
		return mapping(scalar("path"), seq(hc.encode(*h.Left), hc.encode(*h.Right)))
	}
	return hc
}

// ParseValue parses YAML or JSON text into a value node for DecodeDim or
// DecodePos.
func ParseValue(text string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("ParseValue: %w: %w", err, ErrBadValue)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("ParseValue: %q holds no value: %w", text, ErrBadValue)
	}
	return doc.Content[0], nil
}
