// SPDX-License-Identifier: MIT
// Package: shape-studio/geom2d
//
// errors.go — sentinel errors for the geom2d package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.

package geom2d

import "errors"

// ErrZeroEdge indicates that a direction was requested for a degenerate
// (zero-length) edge, for which no perpendicular exists.
// Typical origin: PerpDirection on an edge whose endpoints coincide after
// rounding. Usage: if errors.Is(err, ErrZeroEdge) { /* retry with another edge */ }.
var ErrZeroEdge = errors.New("geom2d: zero-length edge")

// ErrNeedRandSource indicates that BiasRandom was requested without a
// non-nil *rand.Rand. Deterministic biases (inward/outward) never need one.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("geom2d: rng is required")
