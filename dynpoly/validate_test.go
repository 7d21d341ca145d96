// SPDX-License-Identifier: MIT
// Package dynpoly_test verifies aggregated Options validation: every
// violation is reported, each wrapping its sentinel.
package dynpoly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/dynpoly"
)

// validOptions returns a record that passes validation, for per-field breaking.
func validOptions() dynpoly.Options {
	opts := dynpoly.DefaultOptions()
	opts.Bounds = r2.Box{Min: r2.Vec{X: 0, Y: 0}, Max: r2.Vec{X: 100, Y: 100}}
	return opts
}

// TestValidate_Defaults checks that defaults plus bounds validate cleanly.
func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validOptions().Validate())
	assert.Error(t, dynpoly.DefaultOptions().Validate(), "missing bounds must fail")
}

// TestValidate_SingleViolations breaks one field at a time and checks the
// matching sentinel.
func TestValidate_SingleViolations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		mut   func(*dynpoly.Options)
		wantE error
	}{
		{"vertices below 3", func(o *dynpoly.Options) { o.Vertices = dynpoly.FixedVertices(2) }, dynpoly.ErrBadVertexCount},
		{"inverted range", func(o *dynpoly.Options) { o.Vertices = dynpoly.VertexRange(8, 5) }, dynpoly.ErrBadVertexCount},
		{"degenerate bounds", func(o *dynpoly.Options) { o.Bounds.Max = o.Bounds.Min }, dynpoly.ErrBadBounds},
		{"negative iterations", func(o *dynpoly.Options) { o.Iterations = -1 }, dynpoly.ErrBadIterations},
		{"empty operations", func(o *dynpoly.Options) { o.Operations = nil }, dynpoly.ErrBadOperations},
		{"unknown operation", func(o *dynpoly.Options) {
			o.Operations = []dynpoly.WeightedOp{{Kind: dynpoly.OpKind(99), Weight: 1}}
		}, dynpoly.ErrBadOperations},
		{"negative weight", func(o *dynpoly.Options) {
			o.Operations = []dynpoly.WeightedOp{{Kind: dynpoly.OpSplitOffset, Weight: -1}}
		}, dynpoly.ErrBadOperations},
		{"zero total weight", func(o *dynpoly.Options) {
			o.Operations = []dynpoly.WeightedOp{
				{Kind: dynpoly.OpSplitOffset, Weight: 0},
				{Kind: dynpoly.OpSawtooth, Weight: 0},
			}
		}, dynpoly.ErrBadOperations},
		{"margin above half", func(o *dynpoly.Options) { o.BreakMargin = 0.6 }, dynpoly.ErrBadFraction},
		{"break width above one", func(o *dynpoly.Options) { o.BreakWidthMax = 1.5 }, dynpoly.ErrBadFraction},
		{"opposite prob below zero", func(o *dynpoly.Options) { o.SquarewaveOppositeProb = -0.1 }, dynpoly.ErrBadFraction},
		{"zero projection", func(o *dynpoly.Options) { o.ProjectionMax = 0 }, dynpoly.ErrBadProjection},
		{"negative min segment", func(o *dynpoly.Options) { o.MinSegmentLength = -1 }, dynpoly.ErrBadSegmentLength},
		{"zero retries", func(o *dynpoly.Options) { o.MaxRetries = 0 }, dynpoly.ErrBadRetryLimit},
		{"verbosity out of range", func(o *dynpoly.Options) { o.Verbose = 4 }, dynpoly.ErrBadVerbosity},
		{"zero snapshot interval", func(o *dynpoly.Options) { o.SnapshotInterval = 0 }, dynpoly.ErrBadSnapshotInterval},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			opts := validOptions()
			tc.mut(&opts)
			err := opts.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantE)
		})
	}
}

// TestValidate_Aggregation breaks several fields at once and checks that all
// their sentinels surface from the single joined error.
func TestValidate_Aggregation(t *testing.T) {
	t.Parallel()

	opts := validOptions()
	opts.Vertices = dynpoly.FixedVertices(1)
	opts.ProjectionMax = -2
	opts.MaxRetries = 0
	opts.Verbose = 9

	err := opts.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, dynpoly.ErrBadVertexCount)
	assert.ErrorIs(t, err, dynpoly.ErrBadProjection)
	assert.ErrorIs(t, err, dynpoly.ErrBadRetryLimit)
	assert.ErrorIs(t, err, dynpoly.ErrBadVerbosity)
}

// TestParseHelpers round-trips the script-facing names.
func TestParseHelpers(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"split_offset", "sawtooth", "squarewave", "remove_point", "distort_original"} {
		k, err := dynpoly.ParseOpKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}
	_, err := dynpoly.ParseOpKind("voronoi")
	assert.ErrorIs(t, err, dynpoly.ErrBadOperations)

	m, err := dynpoly.ParseConnectMethod("convex_hull")
	require.NoError(t, err)
	assert.Equal(t, dynpoly.ConvexHull, m)
	_, err = dynpoly.ParseConnectMethod("spiral")
	assert.Error(t, err)

	b, err := dynpoly.ParseBias("inward")
	require.NoError(t, err)
	assert.Equal(t, "inward", b.String())
	_, err = dynpoly.ParseBias("sideways")
	assert.Error(t, err)
}
