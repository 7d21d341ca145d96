// SPDX-License-Identifier: MIT
// Package: shape-studio/randutil
//
// normal.go — bounded normal draws via rejection sampling.
//
// Canonical model:
//   - Draw from N(Mu, Sigma) and reject samples outside [Min, Max].
//   - Give up after MaxAttempts draws; either fall back to a uniform draw
//     over [Min, Max] (FallbackUniform) or surface ErrSamplingExhausted.
//
// Determinism:
//   - The sampler owns its distuv source; a fixed seed reproduces the whole
//     rejection sequence, accepted and rejected draws alike.

package randutil

import (
	"errors"
	"fmt"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultMaxAttempts caps the rejection loop (matches the application default).
const DefaultMaxAttempts = 1000

// ErrSamplingExhausted indicates that no in-range sample was produced within
// the attempt cap and uniform fallback was disabled.
// Usage: if errors.Is(err, ErrSamplingExhausted) { /* widen range or enable fallback */ }.
var ErrSamplingExhausted = errors.New("randutil: rejection sampling exhausted")

// ErrBadInterval indicates Min > Max or a non-positive Sigma.
var ErrBadInterval = errors.New("randutil: invalid sampling interval")

// NormalSampler draws from a normal distribution truncated to [Min, Max] by
// rejection. The zero value is not usable; construct with NewNormalSampler.
type NormalSampler struct {
	dist            distuv.Normal
	uniform         *xrand.Rand
	min, max        float64
	maxAttempts     int
	fallbackUniform bool
}

// NewNormalSampler builds a sampler for N(mu, sigma) truncated to [min, max].
// maxAttempts ≤ 0 resolves to DefaultMaxAttempts. The seed feeds a dedicated
// x/exp/rand source (the native distuv source type), independent of any
// math/rand stream the caller holds.
//
// Errors:
//   - ErrBadInterval when min > max or sigma ≤ 0.
//
// Complexity: O(1).
func NewNormalSampler(mu, sigma, min, max float64, maxAttempts int, fallbackUniform bool, seed uint64) (*NormalSampler, error) {
	if min > max {
		return nil, fmt.Errorf("NewNormalSampler: min=%g > max=%g: %w", min, max, ErrBadInterval)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("NewNormalSampler: sigma=%g: %w", sigma, ErrBadInterval)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	src := xrand.NewSource(seed)
	return &NormalSampler{
		dist:            distuv.Normal{Mu: mu, Sigma: sigma, Src: src},
		uniform:         xrand.New(src),
		min:             min,
		max:             max,
		maxAttempts:     maxAttempts,
		fallbackUniform: fallbackUniform,
	}, nil
}

// Sample returns one truncated-normal draw.
//
// Errors:
//   - ErrSamplingExhausted after maxAttempts rejections without fallback.
//
// Complexity: O(maxAttempts) worst case.
func (s *NormalSampler) Sample() (float64, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		v := s.dist.Rand()
		if v >= s.min && v <= s.max {
			return v, nil
		}
	}
	if s.fallbackUniform {
		return s.min + s.uniform.Float64()*(s.max-s.min), nil
	}
	return 0, fmt.Errorf("Sample: no in-range draw after %d attempts: %w", s.maxAttempts, ErrSamplingExhausted)
}
