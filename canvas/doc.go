// SPDX-License-Identifier: MIT
// Package: shape-studio/canvas
//
// Package canvas rasterizes generated shapes onto an RGBA image.
//
// Design:
//   - One Canvas owns one image and one reusable vector.Rasterizer; paths
//     are replayed into the rasterizer per draw call, anti-aliased with the
//     non-zero winding rule.
//   - Strokes are rendered as filled quads per segment (half-width offsets
//     along the segment normal); joins are butt joins, good enough for the
//     polygon outlines this package serves.
//   - Coordinates are image pixels, origin top-left, y growing downward.
//
// Canonical model:
//   - Fill/stroke calls take model points ([]r2.Vec) directly; Render
//     consumes a shape.Polygon with its style attribute block (outline
//     color name + width) as written by the generators.
//
// AI-Hints:
//   - Call FillBackground before any shapes; the zero image is transparent.
//   - EncodePNG writes the current state; the canvas stays usable after.
package canvas
