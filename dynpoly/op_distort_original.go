// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// op_distort_original.go — the distort_original operation: move one
// initial-construction vertex along its centroid ray.
//
// Canonical model:
//   - Ignores the selected edge; picks a uniformly random point from the
//     distortable set (fails when the set is empty).
//   - Moves it toward/away from the centroid per bias by a random 10–30%
//     of its centroid distance, scaled by ProjectionMax.
//   - Identity replacement (old→new) in both the boundary and the
//     distortable set keeps the two structures in sync.
//
// Draw order (fixed for determinism): set index, distance fraction, bias
// coin (random bias only).

package dynpoly

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
	"github.com/bigchuck/shape-studio/randutil"
)

// Distortion distance domain: a fraction of the point's centroid distance.
const (
	distortFracMin = 0.10
	distortFracMax = 0.30
)

// opDistortOriginal moves one distortable point along its centroid ray.
//
// Errors (attempt-level): errNoDistortable, errDegenerate, errOutOfBounds.
// Complexity: O(n) for the identity replacement scans.
func opDistortOriginal(g *generator, _ int) (candidate, error) {
	if len(g.distort) == 0 {
		return candidate{}, fmt.Errorf("distort_original: %w", errNoDistortable)
	}

	old := g.distort[g.rng.Intn(len(g.distort))]

	radial := r2.Sub(old, g.centroid)
	centroidDist := r2.Norm(radial)
	if centroidDist == 0 {
		return candidate{}, fmt.Errorf("distort_original: point on centroid: %w", errDegenerate)
	}

	distance := randutil.UniformRange(g.rng, distortFracMin, distortFracMax) *
		centroidDist * g.opts.ProjectionMax

	// Unit centroid ray; bias decides toward (inward) or away (outward).
	dir := r2.Scale(1/centroidDist, radial)
	switch g.opts.DirectionBias {
	case geom2d.BiasInward:
		dir = r2.Scale(-1, dir)
	case geom2d.BiasOutward:
		// Already pointing away from the centroid.
	default: // BiasRandom
		if g.rng.Float64() < 0.5 {
			dir = r2.Scale(-1, dir)
		}
	}

	newPt := geom2d.Round(r2.Add(old, r2.Scale(distance, dir)))
	if !geom2d.InBounds(newPt, g.opts.Bounds) {
		return candidate{}, fmt.Errorf("distort_original: %w", errOutOfBounds)
	}

	boundary, ok := replaceValue(g.boundary, old, newPt)
	if !ok {
		// Sync invariant violated (should be unreachable); fail the attempt
		// rather than mutate live state.
		return candidate{}, fmt.Errorf("distort_original: point not on boundary: %w", errNoDistortable)
	}
	distort, _ := replaceValue(g.distort, old, newPt)

	return candidate{boundary: boundary, distort: distort}, nil
}
