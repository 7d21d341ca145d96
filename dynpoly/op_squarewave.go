// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// op_squarewave.go — the squarewave operation: a rectangular tab or notch
// on the selected edge.
//
// Canonical model:
//   - Random base span inside the margins, like sawtooth.
//   - Four inserted points: base-left, top-left, top-right, base-right.
//   - Default: both top points share one perpendicular direction and one
//     displacement (symmetric tab).
//   - SquarewaveIndependent: each top point draws its own displacement and
//     flips against the shared bias direction with probability
//     SquarewaveOppositeProb — enabling asymmetric notches, not only
//     symmetric tabs.
//
// Draw order (fixed for determinism): span width, span center, bias coin
// (random bias only), first displacement; then, independent mode only:
// second displacement, left flip coin, right flip coin.

package dynpoly

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
	"github.com/bigchuck/shape-studio/randutil"
)

// opSquarewave inserts a rectangular tab/notch on the selected edge.
//
// Errors (attempt-level): errDegenerate, errOutOfBounds.
// Complexity: O(n) for the candidate rebuild.
func opSquarewave(g *generator, edge int) (candidate, error) {
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
		return candidate{}, fmt.Errorf("squarewave: %w", errDegenerate)
	}

	cap := g.projectionCap(width, length)
	distLeft := randutil.UniformRange(g.rng, 0, cap)

	distRight := distLeft
	perpLeft, perpRight := perp, perp
	if g.opts.SquarewaveIndependent {
		distRight = randutil.UniformRange(g.rng, 0, cap)
		if g.rng.Float64() < g.opts.SquarewaveOppositeProb {
			perpLeft = r2.Scale(-1, perpLeft)
		}
		if g.rng.Float64() < g.opts.SquarewaveOppositeProb {
			perpRight = r2.Scale(-1, perpRight)
		}
	}

	baseLeft := geom2d.Round(pointAt(a, b, leftT))
	baseRight := geom2d.Round(pointAt(a, b, rightT))
	topLeft := geom2d.Round(r2.Add(baseLeft, r2.Scale(distLeft, perpLeft)))
	topRight := geom2d.Round(r2.Add(baseRight, r2.Scale(distRight, perpRight)))

	for _, p := range []r2.Vec{baseLeft, topLeft, topRight, baseRight} {
		if !geom2d.InBounds(p, g.opts.Bounds) {
			return candidate{}, fmt.Errorf("squarewave: %w", errOutOfBounds)
		}
	}

	return candidate{
		boundary: insertAfter(g.boundary, edge, baseLeft, topLeft, topRight, baseRight),
		distort:  g.distort,
	}, nil
}
