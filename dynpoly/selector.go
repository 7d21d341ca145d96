// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// selector.go — length-weighted random edge selection.
//
// Canonical model:
//   - Compute every edge length from the current boundary (never cached
//     across iterations; lengths are derived state).
//   - Restrict to edges ≥ MinSegmentLength when any qualify; otherwise
//     fall back to the full edge set instead of erroring.
//   - Select with probability proportional to length, spreading mutation
//     pressure across the boundary over many iterations.
//   - Degenerate all-zero-length case falls back to a uniform index.
//
// Determinism:
//   - One rng.Float64 draw in the weighted path, one rng.Intn in the
//     uniform fallback; eligibility is derived without randomness.

package dynpoly

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// edgeLengths returns the length of every edge i: boundary[i]→boundary[(i+1)%n].
// Complexity: O(n).
func edgeLengths(boundary []r2.Vec) []float64 {
	n := len(boundary)
	lengths := make([]float64, n)
	for i := 0; i < n; i++ {
		lengths[i] = r2.Norm(r2.Sub(boundary[(i+1)%n], boundary[i]))
	}
	return lengths
}

// selectSegment picks an edge index from boundary, weighted by edge length,
// honoring the minimum-length filter with its documented fallbacks.
// Complexity: O(n).
func selectSegment(rng *rand.Rand, boundary []r2.Vec, minLength float64) int {
	lengths := edgeLengths(boundary)

	// Restrict to qualifying edges when any exist.
	eligible := make([]int, 0, len(lengths))
	for i, l := range lengths {
		if l >= minLength {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		// Fallback 1: no edge qualifies — use all edges.
		for i := range lengths {
			eligible = append(eligible, i)
		}
	}

	total := 0.0
	for _, i := range eligible {
		total += lengths[i]
	}
	if total == 0 {
		// Fallback 2: all candidate edges are zero-length — uniform choice.
		return eligible[rng.Intn(len(eligible))]
	}

	// Walk the cumulative distribution.
	r := rng.Float64() * total
	acc := 0.0
	for _, i := range eligible {
		acc += lengths[i]
		if r < acc {
			return i
		}
	}
	// Floating-point tail: r landed on the accumulated total.
	return eligible[len(eligible)-1]
}
