// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// errors.go — sentinel errors for the evolution engine.
//
// Error policy (explicit and strict):
//   • Parameter sentinels surface from Options.Validate, aggregated with
//     errors.Join so every violation is reported at once, not just the first.
//   • Attempt-level sentinels (out of bounds, self-intersection, degenerate
//     geometry) are internal: the driver counts and retries them, they never
//     escape Generate.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.

package dynpoly

import "errors"

// ErrBadVertexCount indicates a vertex count or range below the polygon
// minimum of 3, or an inverted range (max < min).
// Usage: if errors.Is(err, ErrBadVertexCount) { /* fix Vertices */ }.
var ErrBadVertexCount = errors.New("dynpoly: invalid vertex count")

// ErrBadBounds indicates a degenerate bounds rectangle (x1≥x2 or y1≥y2).
var ErrBadBounds = errors.New("dynpoly: invalid bounds rectangle")

// ErrBadIterations indicates a negative iteration count.
var ErrBadIterations = errors.New("dynpoly: invalid iteration count")

// ErrBadOperations indicates an unusable weighted operation list: empty,
// containing an unknown operation, carrying a negative weight, or summing
// to zero total weight.
var ErrBadOperations = errors.New("dynpoly: invalid operation list")

// ErrBadFraction indicates a fractional parameter outside its domain
// (BreakMargin ∉ [0,0.5], BreakWidthMax ∉ [0,1], SquarewaveOppositeProb ∉ [0,1]).
var ErrBadFraction = errors.New("dynpoly: fraction out of range")

// ErrBadProjection indicates a non-positive projection multiplier.
var ErrBadProjection = errors.New("dynpoly: invalid projection multiplier")

// ErrBadSegmentLength indicates a negative minimum segment length.
var ErrBadSegmentLength = errors.New("dynpoly: invalid minimum segment length")

// ErrBadRetryLimit indicates a retry limit below 1.
var ErrBadRetryLimit = errors.New("dynpoly: invalid retry limit")

// ErrBadVerbosity indicates a verbosity level outside 0–3.
var ErrBadVerbosity = errors.New("dynpoly: invalid verbosity level")

// ErrBadSnapshotInterval indicates a snapshot interval below 1.
var ErrBadSnapshotInterval = errors.New("dynpoly: invalid snapshot interval")

// ErrConstructFailed indicates that initial construction exhausted its
// resampling attempts without producing a simple boundary. Practically
// unreachable for non-degenerate bounds; surfaces misuse loudly.
// Usage: if errors.Is(err, ErrConstructFailed) { /* widen bounds or count */ }.
var ErrConstructFailed = errors.New("dynpoly: initial construction failed")

// ErrTooFewPoints indicates that remove_point was attempted on a triangle;
// a boundary never shrinks below 3 vertices. Attempt-level: the driver
// retries/abandons, callers only ever see it in debug telemetry reasons.
var ErrTooFewPoints = errors.New("dynpoly: boundary at minimum size")

// Internal attempt-failure sentinels. Never returned by Generate; they feed
// the failure counters and (at Verbose≥3) the debug log reasons.
var (
	// errOutOfBounds — a generated point left the bounds rectangle.
	errOutOfBounds = errors.New("dynpoly: point out of bounds")
	// errSelfIntersect — the candidate boundary crossed itself.
	errSelfIntersect = errors.New("dynpoly: candidate self-intersects")
	// errNoDistortable — distort_original with an empty distortable set.
	errNoDistortable = errors.New("dynpoly: no distortable points")
	// errDegenerate — zero-length edge or zero centroid distance.
	errDegenerate = errors.New("dynpoly: degenerate geometry")
)
