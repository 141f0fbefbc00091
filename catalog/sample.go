// SPDX-License-Identifier: MIT
// Package: discrete/catalog
//
// sample.go — uniform index sampling with functional options.
//
// Contract:
//   • Options panic on meaningless input (nil RNG); Sample itself returns
//     errors.
//   • Determinism is explicit: pass WithSeed or WithRand.

package catalog

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

type sampleConfig struct {
	rng *rand.Rand
}

// SampleOption configures Sample.
type SampleOption func(*sampleConfig)

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) SampleOption {
	if r == nil {
		panic("catalog: WithRand(nil)")
	}
	return func(c *sampleConfig) { c.rng = r }
}

// WithSeed draws from a new source seeded with seed.
func WithSeed(seed int64) SampleOption {
	return func(c *sampleConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Sample returns k indices drawn uniformly and independently from
// [0, s.Count(dim)). Any space over natural.Big works, typed or built by
// Parse.
func Sample[D, P any](s space.Space[D, P, natural.Big], dim D, k int, opts ...SampleOption) ([]natural.Big, error) {
	var cfg sampleConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNeedRand)
	}
	if k < 0 {
		return nil, fmt.Errorf("Sample: k = %d: %w", k, ErrBadValue)
	}
	if k == 0 {
		return []natural.Big{}, nil
	}

	count := s.Count(dim)
	if count.IsZero() {
		return nil, fmt.Errorf("Sample: empty space: %w", space.ErrIndexOutOfRange)
	}
	n := count.Int()
	out := make([]natural.Big, k)
	for i := range out {
		out[i] = natural.BigOf(new(big.Int).Rand(cfg.rng, n))
	}
	return out, nil
}
