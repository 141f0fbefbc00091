// SPDX-License-Identifier: MIT
// Package space_test contains shared test helpers.
//
// Purpose:
//   • Check the bijection laws on any space with one call.
//   • Keep dimensions small so exhaustive walks stay fast.

package space_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

type (
	U = natural.Uint
	B = natural.Big
)

// big is shorthand for natural.NewBig.
func big(v uint64) B { return natural.NewBig(v) }

// checkBijection walks every index of s under dim and verifies:
//   - ToIndex inverts ToPos,
//   - every decoded position passes CheckPosition,
//   - decoded positions are pairwise distinct,
//   - Zero has index 0 when the space is not empty,
//   - ToPos into a reused buffer agrees with ToPos into a fresh one.
//
// It returns the decoded positions in index order, rendered with %v.
func checkBijection[D, P any, N natural.Natural[N]](t *testing.T, s space.Space[D, P, N], dim D) []string {
	t.Helper()

	count := s.Count(dim)
	require.NoError(t, space.CheckDimension(s, dim))

	seen := make(map[string]bool)
	var out []string
	reused := s.Zero(dim)
	for i, pos := range space.All(s, dim) {
		got := s.ToIndex(dim, pos)
		require.True(t, natural.Equal(got, i), "ToIndex(ToPos(%v)) = %v, pos %v", i, got, pos)
		require.NoError(t, space.CheckPosition(s, dim, pos), "index %v", i)

		key := fmt.Sprint(pos)
		require.False(t, seen[key], "position %s decoded twice", key)
		seen[key] = true
		out = append(out, key)

		s.ToPos(dim, i, &reused)
		require.Equal(t, key, fmt.Sprint(reused), "reused buffer at index %v", i)
	}
	require.Equal(t, count.Uint64(), uint64(len(out)), "Count disagrees with enumeration")

	if !count.IsZero() {
		require.True(t, s.ToIndex(dim, s.Zero(dim)).IsZero(), "Zero is not index 0")
	}
	return out
}

// positions returns the decoded positions of s under dim, rendered with %v.
func positions[D, P any, N natural.Natural[N]](s space.Space[D, P, N], dim D) []string {
	var out []string
	for _, pos := range space.All(s, dim) {
		out = append(out, fmt.Sprint(pos))
	}
	return out
}

// sprint renders v with %v.
func sprint(v any) string { return fmt.Sprint(v) }
