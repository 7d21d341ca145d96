// SPDX-License-Identifier: MIT
// Package params_test verifies resolution: precedence (explicit > preset >
// default), error aggregation and the dynpoly.Options bridge.
package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigchuck/shape-studio/dynpoly"
	"github.com/bigchuck/shape-studio/params"
)

func TestResolve_ExplicitOverPresetOverDefault(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	vals, err := spec.Resolve(map[string]string{
		"PRESET":     "simple", // iterations 5, one operation
		"BOUNDS":     "0,0,768,768",
		"ITERATIONS": "3", // explicit beats preset
	})
	require.NoError(t, err)

	assert.Equal(t, 3, vals["iterations"], "explicit wins over preset")
	assert.Equal(t, params.IntRange{Min: 5, Max: 8}, vals["vertices"], "preset fills required parameter")
	assert.Equal(t, []params.WeightedItem{{Name: "split_offset", Weight: 1}}, vals["operations"])
	assert.Equal(t, 0.15, vals["break_margin"], "untouched parameters keep spec defaults")
}

func TestResolve_CaseInsensitiveKeys(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	vals, err := spec.Resolve(map[string]string{
		"Vertices":    "6",
		"bounds":      "10,10,500,500",
		"Max_Retries": "7",
	})
	require.NoError(t, err)
	assert.Equal(t, params.IntRange{Min: 6, Max: 6}, vals["vertices"])
	assert.Equal(t, 7, vals["max_retries"])
}

// TestResolve_AggregatesViolations throws four distinct problems at Resolve
// and expects every sentinel back from the single joined error.
func TestResolve_AggregatesViolations(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	vals, err := spec.Resolve(map[string]string{
		"PRESET":     "baroque",  // unknown preset
		"VERTICES":   "lots",     // bad value
		"WOBBLE":     "0.5",      // unknown key
		"ITERATIONS": "3",
		// bounds missing and required
	})
	require.Error(t, err)
	assert.Nil(t, vals)
	assert.ErrorIs(t, err, params.ErrUnknownPreset)
	assert.ErrorIs(t, err, params.ErrBadValue)
	assert.ErrorIs(t, err, params.ErrUnknownParam)
	assert.ErrorIs(t, err, params.ErrMissingParam)
}

func TestResolve_MissingRequired(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	_, err := spec.Resolve(map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, params.ErrMissingParam)
}

func TestOptionsFromResolved_Bridge(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	vals, err := spec.Resolve(map[string]string{
		"VERTICES":       "5,9",
		"BOUNDS":         "100,100,600,600",
		"OPERATIONS":     "squarewave:2,remove_point",
		"DIRECTION_BIAS": "outward",
		"CONNECT":        "convex_hull",
		"SEED":           "77",
	})
	require.NoError(t, err)

	opts, err := params.OptionsFromResolved(vals)
	require.NoError(t, err)

	assert.Equal(t, dynpoly.VertexRange(5, 9), opts.Vertices)
	assert.Equal(t, 100.0, opts.Bounds.Min.X)
	assert.Equal(t, 600.0, opts.Bounds.Max.Y)
	assert.Equal(t, []dynpoly.WeightedOp{
		{Kind: dynpoly.OpSquarewave, Weight: 2},
		{Kind: dynpoly.OpRemovePoint, Weight: 1},
	}, opts.Operations)
	assert.Equal(t, dynpoly.ConvexHull, opts.Connect)
	assert.Equal(t, int64(77), opts.Seed)

	require.NoError(t, opts.Validate(), "bridged record passes engine validation")
}

func TestOptionsFromResolved_UnknownOperation(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	vals, err := spec.Resolve(map[string]string{
		"VERTICES":   "5",
		"BOUNDS":     "0,0,100,100",
		"OPERATIONS": "voronoi",
	})
	require.NoError(t, err, "names are validated at the bridge, not the grammar")

	_, err = params.OptionsFromResolved(vals)
	assert.ErrorIs(t, err, params.ErrBadValue)
	assert.ErrorIs(t, err, dynpoly.ErrBadOperations)
}

// TestResolve_ZeroWeightsReachEngine routes an all-zero weight list through
// the full stack: the grammar accepts it, the engine's aggregated validation
// rejects it before any mutation.
func TestResolve_ZeroWeightsReachEngine(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	vals, err := spec.Resolve(map[string]string{
		"VERTICES":   "5",
		"BOUNDS":     "0,0,200,200",
		"OPERATIONS": "split_offset:0,sawtooth:0",
	})
	require.NoError(t, err)

	opts, err := params.OptionsFromResolved(vals)
	require.NoError(t, err)

	res, err := dynpoly.Generate("zeroed", opts)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dynpoly.ErrBadOperations)
}

func TestDynamicPolygonSpec_PresetsResolve(t *testing.T) {
	t.Parallel()

	spec := params.DynamicPolygonSpec()
	for name := range spec.Presets {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			vals, err := spec.Resolve(map[string]string{
				"PRESET": name,
				"BOUNDS": "0,0,768,768",
			})
			require.NoError(t, err)

			opts, err := params.OptionsFromResolved(vals)
			require.NoError(t, err)
			assert.NoError(t, opts.Validate(), "preset %s yields a valid record", name)
		})
	}
}
