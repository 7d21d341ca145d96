// SPDX-License-Identifier: MIT
// Package: shape-studio/geom2d
//
// point.go — pixel rounding, centroid/midpoint helpers and the
// centroid-biased perpendicular direction used by projecting operations.
//
// Contract:
//   - Round is applied immediately after every mutation so that all
//     downstream predicates (intersection, bounds) see identical inputs
//     across runs — the reproducibility anchor of the whole engine.
//   - PerpDirection never flips silently: the bias decides the sign of the
//     dot product between the perpendicular and the centroid-relative
//     midpoint vector, and BiasRandom consumes exactly one coin flip.
//
// Determinism:
//   - Same inputs + same RNG state ⇒ identical outputs.

package geom2d

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bias selects which side of an edge a perpendicular projection points to,
// relative to the polygon centroid.
type Bias int

const (
	// BiasRandom flips a fair coin per call (requires an RNG).
	BiasRandom Bias = iota
	// BiasInward forces the perpendicular toward the centroid.
	BiasInward
	// BiasOutward forces the perpendicular away from the centroid.
	BiasOutward
)

// String renders the bias the way scripts spell it ("random"/"inward"/"outward").
func (b Bias) String() string {
	switch b {
	case BiasInward:
		return "inward"
	case BiasOutward:
		return "outward"
	default:
		return "random"
	}
}

// halfProb is the threshold of a fair coin flip for BiasRandom.
const halfProb = 0.5

// Round snaps both coordinates to the nearest integer pixel.
// Complexity: O(1).
func Round(p r2.Vec) r2.Vec {
	return r2.Vec{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Centroid returns the arithmetic mean of pts (the vertex centroid, not the
// area centroid — matching the shape model). Returns the zero vector for an
// empty slice; callers guarantee ≥3 points on live boundaries.
// Complexity: O(n).
func Centroid(pts []r2.Vec) r2.Vec {
	if len(pts) == 0 {
		return r2.Vec{}
	}
	var sum r2.Vec
	for _, p := range pts {
		sum = r2.Add(sum, p)
	}
	return r2.Scale(1/float64(len(pts)), sum)
}

// Midpoint returns the midpoint of segment a—b.
// Complexity: O(1).
func Midpoint(a, b r2.Vec) r2.Vec {
	return r2.Scale(halfProb, r2.Add(a, b))
}

// InBounds reports whether p lies inside box, boundary inclusive.
// Complexity: O(1).
func InBounds(p r2.Vec, box r2.Box) bool {
	return p.X >= box.Min.X && p.X <= box.Max.X &&
		p.Y >= box.Min.Y && p.Y <= box.Max.Y
}

// AllInBounds reports whether every point of pts lies inside box (inclusive).
// Complexity: O(n).
func AllInBounds(pts []r2.Vec, box r2.Box) bool {
	for _, p := range pts {
		if !InBounds(p, box) {
			return false
		}
	}
	return true
}

// PerpDirection computes the unit perpendicular of edge a→b, oriented
// according to bias relative to centroid:
//
//   - BiasInward:  dot(perp, midpoint−centroid) ≤ 0 (points toward centroid)
//   - BiasOutward: dot(perp, midpoint−centroid) ≥ 0 (points away)
//   - BiasRandom:  one fair coin flip decides the sign (rng required)
//
// Errors:
//   - ErrZeroEdge when a and b coincide (no perpendicular exists).
//   - ErrNeedRandSource when bias is BiasRandom and rng is nil.
//
// Complexity: O(1).
func PerpDirection(a, b, centroid r2.Vec, bias Bias, rng *rand.Rand) (r2.Vec, error) {
	edge := r2.Sub(b, a)
	if r2.Norm(edge) == 0 {
		return r2.Vec{}, fmt.Errorf("PerpDirection: %w", ErrZeroEdge)
	}

	// Left-hand perpendicular of the edge vector, normalized.
	perp := r2.Unit(r2.Vec{X: -edge.Y, Y: edge.X})

	// Vector from the centroid to the edge midpoint; its dot product with
	// perp tells which side of the boundary the perpendicular points to.
	radial := r2.Sub(Midpoint(a, b), centroid)

	switch bias {
	case BiasInward:
		if r2.Dot(perp, radial) > 0 {
			perp = r2.Scale(-1, perp)
		}
	case BiasOutward:
		if r2.Dot(perp, radial) < 0 {
			perp = r2.Scale(-1, perp)
		}
	default: // BiasRandom
		if rng == nil {
			return r2.Vec{}, fmt.Errorf("PerpDirection: %w", ErrNeedRandSource)
		}
		if rng.Float64() < halfProb {
			perp = r2.Scale(-1, perp)
		}
	}

	return perp, nil
}
