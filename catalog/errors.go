// SPDX-License-Identifier: MIT
// Package: discrete/catalog
//
// errors.go — sentinel errors for the catalog package.
// Callers branch with errors.Is; context is attached with %w.

package catalog

import "errors"

var (
	// ErrUnknownSpace is returned when a descriptor names no known space.
	ErrUnknownSpace = errors.New("catalog: unknown space")

	// ErrSyntax is returned for malformed descriptors.
	ErrSyntax = errors.New("catalog: descriptor syntax error")

	// ErrNoInner is returned when a space is given the wrong number of
	// inner spaces.
	ErrNoInner = errors.New("catalog: wrong number of inner spaces")

	// ErrBadValue is returned when a dimension or position value does not
	// have the shape the space expects.
	ErrBadValue = errors.New("catalog: malformed value")

	// ErrNeedRand is returned by Sample when no random source was supplied.
	ErrNeedRand = errors.New("catalog: rng is required")
)
