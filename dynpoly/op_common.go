// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// op_common.go — shared helpers of the operation library: edge resolution,
// break spans, projection caps and copy-on-write boundary rebuilding.

package dynpoly

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/randutil"
)

// minBreakFrac is the 10%-of-edge-length floor under every projection cap:
// even with a tiny BreakWidthMax, displacements stay visible.
const minBreakFrac = 0.1

// edgeEndpoints resolves the selected edge into its endpoints and length.
//
// Errors:
//   - errDegenerate when the endpoints coincide after rounding.
func (g *generator) edgeEndpoints(edge int) (a, b r2.Vec, length float64, err error) {
	n := len(g.boundary)
	a = g.boundary[edge%n]
	b = g.boundary[(edge+1)%n]
	length = r2.Norm(r2.Sub(b, a))
	if length == 0 {
		return a, b, 0, fmt.Errorf("edge %d: %w", edge, errDegenerate)
	}
	return a, b, length, nil
}

// pointAt returns a + t·(b−a).
func pointAt(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// projectionCap returns the maximum perpendicular displacement for a feature
// with the given base width on an edge of the given length:
// ProjectionMax × max(baseWidth, 10% of edge length).
func (g *generator) projectionCap(baseWidth, length float64) float64 {
	return g.opts.ProjectionMax * math.Max(baseWidth, minBreakFrac*length)
}

// breakSpan draws a random base span on an edge of the given length,
// honoring the endpoint margin. Returns the left/right positions as edge
// fractions and the span width in pixels.
//
// Draw order (fixed for determinism): width fraction, then center position.
//
// Errors:
//   - errDegenerate when the margin leaves no room for a span
//     (BreakMargin == 0.5, or BreakWidthMax == 0 squeezing the span shut).
func (g *generator) breakSpan(length float64) (leftT, rightT, width float64, err error) {
	usable := 1 - 2*g.opts.BreakMargin
	maxWidthFrac := math.Min(g.opts.BreakWidthMax, usable)
	if maxWidthFrac <= 0 {
		return 0, 0, 0, fmt.Errorf("break span: margin %g leaves no room: %w",
			g.opts.BreakMargin, errDegenerate)
	}

	widthFrac := randutil.UniformRange(g.rng, 0, maxWidthFrac)
	centerT := randutil.UniformRange(g.rng,
		g.opts.BreakMargin+widthFrac/2,
		1-g.opts.BreakMargin-widthFrac/2)

	return centerT - widthFrac/2, centerT + widthFrac/2, widthFrac * length, nil
}

// insertAfter rebuilds the boundary with pts spliced in after index at.
// Pure copy-on-write: the live boundary is never touched.
// Complexity: O(n + len(pts)).
func insertAfter(boundary []r2.Vec, at int, pts ...r2.Vec) []r2.Vec {
	out := make([]r2.Vec, 0, len(boundary)+len(pts))
	out = append(out, boundary[:at+1]...)
	out = append(out, pts...)
	out = append(out, boundary[at+1:]...)
	return out
}

// removeAt rebuilds the boundary without index at.
// Complexity: O(n).
func removeAt(boundary []r2.Vec, at int) []r2.Vec {
	out := make([]r2.Vec, 0, len(boundary)-1)
	out = append(out, boundary[:at]...)
	out = append(out, boundary[at+1:]...)
	return out
}

// removeValue rebuilds pts without the first element equal to v; returns the
// input slice unchanged when v is absent.
// Complexity: O(n).
func removeValue(pts []r2.Vec, v r2.Vec) []r2.Vec {
	for i, p := range pts {
		if p == v {
			return removeAt(pts, i)
		}
	}
	return pts
}

// replaceValue rebuilds pts with the first element equal to old replaced by
// new; the boolean reports whether a replacement happened.
// Complexity: O(n).
func replaceValue(pts []r2.Vec, old, new r2.Vec) ([]r2.Vec, bool) {
	for i, p := range pts {
		if p == old {
			out := make([]r2.Vec, len(pts))
			copy(out, pts)
			out[i] = new
			return out, true
		}
	}
	return pts, false
}
