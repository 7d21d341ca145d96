// SPDX-License-Identifier: MIT
// Package: shape-studio/geom2d
//
// Package geom2d provides the plane-geometry primitives shared by the
// procedural polygon engine and the shape model.
//
// 🚀 What is geom2d?
//
//	A small, deterministic toolbox over gonum's r2.Vec:
//	  • Pixel rounding: snap coordinates to integer-pixel resolution
//	  • Centroid & midpoint of point sets and edges
//	  • Centroid-biased perpendicular directions (inward/outward/random)
//	  • Orientation (CCW) tests and segment-intersection predicates
//	  • Polygon self-intersection validation (pairwise non-adjacent edges)
//	  • Inclusive bounds checks against an axis-aligned r2.Box
//
// ✨ Design:
//   - Pure functions, no globals, no hidden RNG: randomness (for the
//     random bias) is passed in explicitly as *rand.Rand.
//   - All predicates assume integer-rounded inputs (see Round); with
//     whole-number coordinates the cross products are exact and no
//     epsilon tuning is needed.
//   - Sentinel errors only; branch with errors.Is. No panics at runtime.
//
// Performance:
//   - All helpers are O(1) except Centroid (O(n)) and SelfIntersects (O(n²)).
package geom2d
