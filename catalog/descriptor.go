// SPDX-License-Identifier: MIT
// Package: discrete/catalog
//
// descriptor.go — the descriptor grammar.
//
//	descriptor = name [ "(" descriptor { "," descriptor } ")" ]
//	name       = letter { letter | digit | "-" }
//
// Blanks are allowed between tokens.

package catalog

import (
	"fmt"
	"strings"
)

// Descriptor is a parsed space descriptor.
type Descriptor struct {
	Name string
	Args []Descriptor
}

// String returns the canonical form, e.g. "product(pair, power-set)".
func (d Descriptor) String() string {
	if len(d.Args) == 0 {
		return d.Name
	}
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteByte('(')
	for i, a := range d.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// ParseDescriptor parses src. It checks syntax only; names are resolved by
// Build.
func ParseDescriptor(src string) (Descriptor, error) {
	p := parser{src: src}
	d, err := p.descriptor()
	if err != nil {
		return Descriptor{}, err
	}
	p.blank()
	if p.pos != len(p.src) {
		return Descriptor{}, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return d, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("ParseDescriptor: offset %d: %s: %w", p.pos, fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *parser) blank() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next non-blank byte, or 0 at the end.
func (p *parser) peek() byte {
	p.blank()
	if p.pos == len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) descriptor() (Descriptor, error) {
	name, err := p.name()
	if err != nil {
		return Descriptor{}, err
	}
	d := Descriptor{Name: name}
	if p.peek() != '(' {
		return d, nil
	}
	p.pos++
	for {
		arg, err := p.descriptor()
		if err != nil {
			return Descriptor{}, err
		}
		d.Args = append(d.Args, arg)

		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return d, nil
		case 0:
			return Descriptor{}, p.errorf("missing )")
		default:
			return Descriptor{}, p.errorf("expected , or ) but found %q", p.src[p.pos])
		}
	}
}

func (p *parser) name() (string, error) {
	p.blank()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		letter := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
		if !letter && (p.pos == start || !(c >= '0' && c <= '9' || c == '-')) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		if p.pos == len(p.src) {
			return "", p.errorf("missing space name")
		}
		return "", p.errorf("expected a space name but found %q", p.src[p.pos])
	}
	return strings.ToLower(p.src[start:p.pos]), nil
}
