// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// op_sawtooth.go — the sawtooth operation: a triangular protrusion on the
// selected edge.
//
// Canonical model:
//   - Random base span inside the margins (independent width and position).
//   - Peak above the span center, displaced perpendicular by a height drawn
//     from [0, ProjectionMax × max(baseWidth, 0.1×len)].
//   - Inserts three points: left base, peak, right base.
//
// Draw order (fixed for determinism): span width, span center, bias coin
// (random bias only), peak height.

package dynpoly

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
	"github.com/bigchuck/shape-studio/randutil"
)

// opSawtooth inserts a triangular protrusion on the selected edge.
//
// Errors (attempt-level): errDegenerate, errOutOfBounds.
// Complexity: O(n) for the candidate rebuild.
func opSawtooth(g *generator, edge int) (candidate, error) {
	a, b, length, err := g.edgeEndpoints(edge)
	if err != nil {
		return candidate{}, err
	}

	leftT, rightT, width, err := g.breakSpan(length)
	if err != nil {
		return candidate{}, err
	}

	perp, err := geom2d.PerpDirection(a, b, g.centroid, g.opts.DirectionBias, g.rng)
	if err != nil {
		return candidate{}, fmt.Errorf("sawtooth: %w", errDegenerate)
	}

	height := randutil.UniformRange(g.rng, 0, g.projectionCap(width, length))

	leftBase := geom2d.Round(pointAt(a, b, leftT))
	rightBase := geom2d.Round(pointAt(a, b, rightT))
	center := pointAt(a, b, (leftT+rightT)/2)
	peak := geom2d.Round(r2.Add(center, r2.Scale(height, perp)))

	// Base points lie on the edge and stay in bounds; the peak is the only
	// point that can escape. Check all three anyway: rounding is cheap and
	// the invariant is absolute.
	for _, p := range []r2.Vec{leftBase, peak, rightBase} {
		if !geom2d.InBounds(p, g.opts.Bounds) {
			return candidate{}, fmt.Errorf("sawtooth: %w", errOutOfBounds)
		}
	}

	return candidate{
		boundary: insertAfter(g.boundary, edge, leftBase, peak, rightBase),
		distort:  g.distort,
	}, nil
}
