// SPDX-License-Identifier: MIT
// Package: shape-studio/geom2d
//
// intersect.go — orientation (CCW) predicate, segment intersection and the
// polygon self-intersection validator.
//
// Canonical model:
//   - Orientation via the sign of the 2D cross product (exact for the
//     integer-rounded coordinates this engine produces).
//   - Segment intersection by the classic four-orientation test, including
//     the collinear on-segment special cases.
//   - Self-intersection by testing every pair of non-adjacent edges;
//     edges sharing a vertex (including the wrap-around pair) are skipped
//     since they always "touch" at the shared endpoint.
//
// Complexity:
//   - Orientation / SegmentsIntersect: O(1).
//   - SelfIntersects: O(n²) pairs, O(1) extra space.

package geom2d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Orientation classifiers returned by Orient.
const (
	// OrientCollinear — a, b, c lie on one line.
	OrientCollinear = 0
	// OrientCW — the triple turns clockwise.
	OrientCW = -1
	// OrientCCW — the triple turns counter-clockwise.
	OrientCCW = 1
)

// Orient returns the turn direction of the ordered triple (a, b, c):
// OrientCCW, OrientCW or OrientCollinear.
// Complexity: O(1).
func Orient(a, b, c r2.Vec) int {
	cross := r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
	switch {
	case cross > 0:
		return OrientCCW
	case cross < 0:
		return OrientCW
	default:
		return OrientCollinear
	}
}

// onSegment reports whether collinear point p lies on segment a—b
// (bounding-box containment; callers must have established collinearity).
func onSegment(a, b, p r2.Vec) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// SegmentsIntersect reports whether closed segments p1—q1 and p2—q2 share
// at least one point. Collinear overlaps and endpoint touches count as
// intersections; adjacency exclusions are the caller's concern.
// Complexity: O(1).
func SegmentsIntersect(p1, q1, p2, q2 r2.Vec) bool {
	o1 := Orient(p1, q1, p2)
	o2 := Orient(p1, q1, q2)
	o3 := Orient(p2, q2, p1)
	o4 := Orient(p2, q2, q1)

	// General position: the endpoints of each segment straddle the other.
	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases: an endpoint of one segment lies on the other.
	if o1 == OrientCollinear && onSegment(p1, q1, p2) {
		return true
	}
	if o2 == OrientCollinear && onSegment(p1, q1, q2) {
		return true
	}
	if o3 == OrientCollinear && onSegment(p2, q2, p1) {
		return true
	}
	if o4 == OrientCollinear && onSegment(p2, q2, q1) {
		return true
	}

	return false
}

// SelfIntersects reports whether the implicitly closed boundary poly has any
// pair of non-adjacent edges that intersect. Boundaries with fewer than four
// vertices cannot self-intersect (all edge pairs are adjacent).
//
// Edge i runs poly[i] → poly[(i+1)%n]. For every pair i<j the test skips
// j == i+1 and the wrap-around pair (i == 0, j == n−1), since those share a
// vertex by construction.
//
// Complexity: O(n²) time, O(1) space.
func SelfIntersects(poly []r2.Vec) bool {
	n := len(poly)
	if n < 4 {
		return false
	}

	for i := 0; i < n; i++ {
		a1 := poly[i]
		a2 := poly[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges: consecutive pair and the wrap-around pair.
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1 := poly[j]
			b2 := poly[(j+1)%n]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}

	return false
}
