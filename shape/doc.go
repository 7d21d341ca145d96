// SPDX-License-Identifier: MIT
// Package: shape-studio/shape
//
// Package shape defines the drawable entity model produced by the
// procedural engine and consumed by the canvas and persistence layers.
//
// ✨ Key components:
//   - Shape:   the common interface (name, centroid, affine transforms)
//   - Line:    a single segment
//   - Polygon: an ordered, implicitly closed vertex list
//   - Group:   a named collection transformed as one unit
//   - Attrs:   free-form metadata (style, provenance, statistics blocks)
//
// Design:
//   - Geometry is plain data on gonum r2.Vec; shapes never draw or
//     serialize themselves — downstream packages consume them as data.
//   - Clone produces deep, alias-free copies; the engine relies on this
//     for snapshot independence.
//   - Transforms mutate in place (the shape is the caller's working copy);
//     rotation is in degrees, about the shape centroid.
package shape
