// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// validate.go — aggregated validation of the Options record.
//
// Contract:
//   - Every violation is collected and reported; the caller sees the whole
//     list in one error (errors.Join), not just the first problem.
//   - Each violation wraps its sentinel, so errors.Is keeps working on the
//     joined error.
//   - Deterministic, side-effect free; runs before any randomness is drawn.

package dynpoly

import (
	"errors"
	"fmt"
)

// Bounds of the validated fractional domains (no magic literals inline).
const (
	minVertices    = 3
	marginMax      = 0.5
	fractionMin    = 0.0
	fractionMax    = 1.0
	verbosityMin   = 0
	verbosityMax   = 3
	minRetryLimit  = 1
	minSnapshotInt = 1
)

// Validate checks the whole Options record and returns one aggregated error
// listing every violation, or nil when the record is usable.
// Complexity: O(len(Operations)).
func (o Options) Validate() error {
	var violations []error

	// Vertex count/range: minimum 3, non-inverted.
	if o.Vertices.Min < minVertices {
		violations = append(violations, fmt.Errorf(
			"vertices: min=%d must be ≥ %d: %w", o.Vertices.Min, minVertices, ErrBadVertexCount))
	}
	if o.Vertices.Max < o.Vertices.Min {
		violations = append(violations, fmt.Errorf(
			"vertices: max=%d < min=%d: %w", o.Vertices.Max, o.Vertices.Min, ErrBadVertexCount))
	}

	// Bounds rectangle: x1<x2 and y1<y2.
	if o.Bounds.Min.X >= o.Bounds.Max.X || o.Bounds.Min.Y >= o.Bounds.Max.Y {
		violations = append(violations, fmt.Errorf(
			"bounds: (%g,%g,%g,%g) is degenerate: %w",
			o.Bounds.Min.X, o.Bounds.Min.Y, o.Bounds.Max.X, o.Bounds.Max.Y, ErrBadBounds))
	}

	// Iteration count: ≥0 (0 means "initial polygon only").
	if o.Iterations < 0 {
		violations = append(violations, fmt.Errorf(
			"iterations: %d must be ≥ 0: %w", o.Iterations, ErrBadIterations))
	}

	// Weighted operation list: non-empty, known kinds, non-negative weights,
	// positive total.
	if len(o.Operations) == 0 {
		violations = append(violations, fmt.Errorf(
			"operations: list is empty: %w", ErrBadOperations))
	}
	total := 0.0
	for i, op := range o.Operations {
		if !op.Kind.valid() {
			violations = append(violations, fmt.Errorf(
				"operations[%d]: unknown kind %d: %w", i, int(op.Kind), ErrBadOperations))
			continue
		}
		if op.Weight < 0 {
			violations = append(violations, fmt.Errorf(
				"operations[%d] (%s): weight %g is negative: %w", i, op.Kind, op.Weight, ErrBadOperations))
			continue
		}
		total += op.Weight
	}
	if len(o.Operations) > 0 && total == 0 {
		violations = append(violations, fmt.Errorf(
			"operations: total weight is zero: %w", ErrBadOperations))
	}

	// Fractional domains.
	if o.BreakMargin < fractionMin || o.BreakMargin > marginMax {
		violations = append(violations, fmt.Errorf(
			"break margin: %g not in [%g,%g]: %w", o.BreakMargin, fractionMin, marginMax, ErrBadFraction))
	}
	if o.BreakWidthMax < fractionMin || o.BreakWidthMax > fractionMax {
		violations = append(violations, fmt.Errorf(
			"break width max: %g not in [%g,%g]: %w", o.BreakWidthMax, fractionMin, fractionMax, ErrBadFraction))
	}
	if o.SquarewaveOppositeProb < fractionMin || o.SquarewaveOppositeProb > fractionMax {
		violations = append(violations, fmt.Errorf(
			"squarewave opposite probability: %g not in [%g,%g]: %w",
			o.SquarewaveOppositeProb, fractionMin, fractionMax, ErrBadFraction))
	}

	// Projection multiplier must be strictly positive.
	if o.ProjectionMax <= 0 {
		violations = append(violations, fmt.Errorf(
			"projection max: %g must be > 0: %w", o.ProjectionMax, ErrBadProjection))
	}

	// Minimum segment length: non-negative (0 disables filtering).
	if o.MinSegmentLength < 0 {
		violations = append(violations, fmt.Errorf(
			"min segment length: %g must be ≥ 0: %w", o.MinSegmentLength, ErrBadSegmentLength))
	}

	// Retry limit, verbosity, snapshot interval.
	if o.MaxRetries < minRetryLimit {
		violations = append(violations, fmt.Errorf(
			"max retries: %d must be ≥ %d: %w", o.MaxRetries, minRetryLimit, ErrBadRetryLimit))
	}
	if o.Verbose < verbosityMin || o.Verbose > verbosityMax {
		violations = append(violations, fmt.Errorf(
			"verbosity: %d not in [%d,%d]: %w", o.Verbose, verbosityMin, verbosityMax, ErrBadVerbosity))
	}
	if o.SnapshotInterval < minSnapshotInt {
		violations = append(violations, fmt.Errorf(
			"snapshot interval: %d must be ≥ %d: %w", o.SnapshotInterval, minSnapshotInt, ErrBadSnapshotInterval))
	}

	if len(violations) == 0 {
		return nil
	}
	return errors.Join(violations...)
}
