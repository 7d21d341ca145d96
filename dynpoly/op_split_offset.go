// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// op_split_offset.go — the split_offset operation: break the selected edge
// at one random point and project it perpendicular to the edge.
//
// Canonical model:
//   - Break position t ∈ [margin, 1−margin] along the edge.
//   - Perpendicular direction from the edge vector, flipped per bias.
//   - Displacement ∈ [0, ProjectionMax × max(BreakWidthMax×len, 0.1×len)].
//   - Inserts exactly one (rounded, bounds-checked) point.
//
// Draw order (fixed for determinism): break position, bias coin (random
// bias only), displacement.

package dynpoly

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
	"github.com/bigchuck/shape-studio/randutil"
)

// opSplitOffset inserts one offset break point on the selected edge.
//
// Errors (attempt-level): errDegenerate, errOutOfBounds.
// Complexity: O(n) for the candidate rebuild.
func opSplitOffset(g *generator, edge int) (candidate, error) {
	a, b, length, err := g.edgeEndpoints(edge)
	if err != nil {
		return candidate{}, err
	}

	t := randutil.UniformRange(g.rng, g.opts.BreakMargin, 1-g.opts.BreakMargin)
	breakPt := pointAt(a, b, t)

	perp, err := geom2d.PerpDirection(a, b, g.centroid, g.opts.DirectionBias, g.rng)
	if err != nil {
		return candidate{}, fmt.Errorf("split_offset: %w", errDegenerate)
	}

	cap := g.projectionCap(g.opts.BreakWidthMax*length, length)
	dist := randutil.UniformRange(g.rng, 0, cap)

	newPt := geom2d.Round(r2.Add(breakPt, r2.Scale(dist, perp)))
	if !geom2d.InBounds(newPt, g.opts.Bounds) {
		// Short-circuit before the O(n²) self-intersection test.
		return candidate{}, fmt.Errorf("split_offset: %w", errOutOfBounds)
	}

	return candidate{
		boundary: insertAfter(g.boundary, edge, newPt),
		distort:  g.distort,
	}, nil
}
