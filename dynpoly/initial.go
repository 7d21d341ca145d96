// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// initial.go — initial construction: random vertex generation and the
// angle-sort connector.
//
// Canonical model:
//   - Resolve the vertex count (fixed value or uniform inclusive draw).
//   - Sample that many points uniformly inside the bounds rectangle,
//     rounding each immediately.
//   - Order them by polar angle around their centroid. The result may be
//     non-convex but is simple for points in general position; rounding can
//     still produce duplicates or collinear touches, so construction
//     resamples until the seed boundary passes the same self-intersection
//     validator every later mutation must pass.
//   - ConvexHull is aliased to AngleSort (documented approximation).
//
// Determinism:
//   - Draw order is fixed: count first, then X,Y per point in index order.
//   - Ties in polar angle break by distance from the centroid, then by
//     original sample index (stable sort), so equal-angle layouts are
//     reproducible.

package dynpoly

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
	"github.com/bigchuck/shape-studio/randutil"
)

// maxConstructAttempts caps initial-boundary resampling. Uniform points in a
// non-degenerate rectangle virtually never exhaust this; the cap exists so a
// pathological bounds/count combination fails loudly instead of spinning.
const maxConstructAttempts = 100

// buildInitial samples and connects the starting boundary, returning the
// ordered vertex list. The caller copies it into the distortable set.
//
// Errors:
//   - ErrConstructFailed after maxConstructAttempts self-intersecting samples.
//
// Complexity: O(attempts × n²) worst case (validation dominates the sort).
func buildInitial(rng *rand.Rand, opts Options) ([]r2.Vec, error) {
	for attempt := 0; attempt < maxConstructAttempts; attempt++ {
		count := randutil.IntInRange(rng, opts.Vertices.Min, opts.Vertices.Max)

		pts := make([]r2.Vec, count)
		for i := range pts {
			pts[i] = geom2d.Round(r2.Vec{
				X: randutil.UniformRange(rng, opts.Bounds.Min.X, opts.Bounds.Max.X),
				Y: randutil.UniformRange(rng, opts.Bounds.Min.Y, opts.Bounds.Max.Y),
			})
		}

		var ordered []r2.Vec
		switch opts.Connect {
		case ConvexHull:
			ordered = connectConvexHull(pts)
		default:
			ordered = connectAngleSort(pts)
		}

		// The seed boundary obeys the same invariant as every mutation.
		if !geom2d.SelfIntersects(ordered) {
			return ordered, nil
		}
	}
	return nil, fmt.Errorf("buildInitial: no simple boundary in %d attempts: %w",
		maxConstructAttempts, ErrConstructFailed)
}

// connectAngleSort orders pts by polar angle around their centroid.
// Complexity: O(n log n).
func connectAngleSort(pts []r2.Vec) []r2.Vec {
	c := geom2d.Centroid(pts)
	ordered := make([]r2.Vec, len(pts))
	copy(ordered, pts)
	sort.SliceStable(ordered, func(i, j int) bool {
		di := r2.Sub(ordered[i], c)
		dj := r2.Sub(ordered[j], c)
		ai := math.Atan2(di.Y, di.X)
		aj := math.Atan2(dj.Y, dj.X)
		if ai != aj {
			return ai < aj
		}
		// Equal angles: nearer point first, stable order as the final tie-break.
		return r2.Norm2(di) < r2.Norm2(dj)
	})
	return ordered
}

// connectConvexHull is currently an alias of connectAngleSort. A true hull
// connector would drop interior points; the approximation keeps them, which
// downstream operations tolerate.
func connectConvexHull(pts []r2.Vec) []r2.Vec {
	return connectAngleSort(pts)
}
