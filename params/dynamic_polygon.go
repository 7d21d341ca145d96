// SPDX-License-Identifier: MIT
// Package: shape-studio/params
//
// dynamic_polygon.go — the parameter spec, presets and Options bridge of the
// dynamic_polygon generator.
//
// Canonical model:
//   - Spec defaults mirror dynpoly.DefaultOptions; a resolved map overlays a
//     default record, it never replaces it, so new engine knobs pick up
//     engine defaults without touching the spec.
//   - Presets supply typed values and are overridable per key by explicit
//     parameters.

package params

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/dynpoly"
)

// DynamicPolygonSpec builds the parameter registry of the dynamic_polygon
// generator, presets included. The returned Spec is freshly allocated; the
// caller may extend it.
func DynamicPolygonSpec() *Spec {
	return &Spec{
		Method: "dynamic_polygon",
		Params: map[string]Param{
			"vertices": {
				Kind:        KindIntOrRange,
				Required:    true,
				Description: "initial vertex count (n) or inclusive range (min,max)",
			},
			"bounds": {
				Kind:        KindBounds,
				Required:    true,
				Description: "bounding box as x1,y1,x2,y2",
			},
			"iterations": {
				Kind:        KindInt,
				Default:     10,
				Description: "number of evolution iterations",
			},
			"connect": {
				Kind:        KindChoice,
				Choices:     []string{"angle_sort", "convex_hull"},
				Default:     "angle_sort",
				Description: "initial vertex connection method",
			},
			"operations": {
				Kind: KindWeightedList,
				Default: []WeightedItem{
					{Name: "split_offset", Weight: 1},
					{Name: "sawtooth", Weight: 1},
				},
				Description: "weighted operation list: name or name:weight",
			},
			"break_margin": {
				Kind:        KindFloat,
				Default:     0.15,
				Description: "minimum fractional distance of break points from edge endpoints (0.0-0.5)",
			},
			"break_width": {
				Kind:        KindFloat,
				Default:     0.5,
				Description: "maximum protrusion base width as a fraction of edge length (0.0-1.0)",
			},
			"projection_max": {
				Kind:        KindFloat,
				Default:     2.0,
				Description: "perpendicular displacement scale (>0)",
			},
			"min_segment": {
				Kind:        KindFloat,
				Default:     10.0,
				Description: "minimum edge length eligible for selection, pixels",
			},
			"squarewave_independent": {
				Kind:        KindBool,
				Default:     false,
				Description: "give the two squarewave top points independent directions",
			},
			"opposite_prob": {
				Kind:        KindFloat,
				Default:     0.2,
				Description: "per-point probability of flipping against the shared bias (0.0-1.0)",
			},
			"max_retries": {
				Kind:        KindInt,
				Default:     15,
				Description: "attempts per iteration before abandoning it",
			},
			"direction_bias": {
				Kind:        KindChoice,
				Choices:     []string{"inward", "outward", "random"},
				Default:     "random",
				Description: "preferred perpendicular projection direction",
			},
			"verbose": {
				Kind:        KindInt,
				Default:     0,
				Description: "debug log depth 0-3",
			},
			"save_iterations": {
				Kind:        KindBool,
				Default:     false,
				Description: "keep per-iteration snapshots",
			},
			"snapshot_interval": {
				Kind:        KindInt,
				Default:     1,
				Description: "snapshot every k-th iteration",
			},
			"seed": {
				Kind:        KindInt,
				Default:     0,
				Description: "random seed; 0 selects the fixed default stream",
			},
		},
		Presets: map[string]map[string]any{
			"simple": {
				"vertices":   IntRange{Min: 5, Max: 8},
				"iterations": 5,
				"operations": []WeightedItem{
					{Name: "split_offset", Weight: 1},
				},
			},
			"complex": {
				"vertices":   IntRange{Min: 8, Max: 12},
				"iterations": 20,
				"operations": []WeightedItem{
					{Name: "split_offset", Weight: 1},
					{Name: "sawtooth", Weight: 1},
					{Name: "squarewave", Weight: 1},
				},
			},
			"organic": {
				"vertices":   IntRange{Min: 6, Max: 10},
				"iterations": 15,
				"operations": []WeightedItem{
					{Name: "sawtooth", Weight: 1},
					{Name: "distort_original", Weight: 0.5},
				},
				"direction_bias": "inward",
			},
		},
	}
}

// OptionsFromResolved overlays a resolved dynamic_polygon parameter map onto
// dynpoly.DefaultOptions. It converts names (operations, connect, bias) into
// their engine enums; range and numeric validation stays with
// dynpoly.Options.Validate.
//
// Errors: ErrBadValue (wrapped) for operation names the engine does not
// declare. Type assertions do not fail on maps produced by
// DynamicPolygonSpec().Resolve.
func OptionsFromResolved(vals map[string]any) (dynpoly.Options, error) {
	opts := dynpoly.DefaultOptions()

	if v, ok := vals["vertices"].(IntRange); ok {
		opts.Vertices = dynpoly.VertexRange(v.Min, v.Max)
	}
	if b, ok := vals["bounds"].(Bounds); ok {
		opts.Bounds = r2.Box{
			Min: r2.Vec{X: b.X1, Y: b.Y1},
			Max: r2.Vec{X: b.X2, Y: b.Y2},
		}
	}
	if n, ok := vals["iterations"].(int); ok {
		opts.Iterations = n
	}
	if s, ok := vals["connect"].(string); ok {
		m, err := dynpoly.ParseConnectMethod(s)
		if err != nil {
			return dynpoly.Options{}, fmt.Errorf("connect: %w: %w", err, ErrBadValue)
		}
		opts.Connect = m
	}
	if items, ok := vals["operations"].([]WeightedItem); ok {
		ops := make([]dynpoly.WeightedOp, 0, len(items))
		for _, it := range items {
			kind, err := dynpoly.ParseOpKind(it.Name)
			if err != nil {
				return dynpoly.Options{}, fmt.Errorf("operations: %w: %w", err, ErrBadValue)
			}
			ops = append(ops, dynpoly.WeightedOp{Kind: kind, Weight: it.Weight})
		}
		opts.Operations = ops
	}
	if f, ok := vals["break_margin"].(float64); ok {
		opts.BreakMargin = f
	}
	if f, ok := vals["break_width"].(float64); ok {
		opts.BreakWidthMax = f
	}
	if f, ok := vals["projection_max"].(float64); ok {
		opts.ProjectionMax = f
	}
	if f, ok := vals["min_segment"].(float64); ok {
		opts.MinSegmentLength = f
	}
	if b, ok := vals["squarewave_independent"].(bool); ok {
		opts.SquarewaveIndependent = b
	}
	if f, ok := vals["opposite_prob"].(float64); ok {
		opts.SquarewaveOppositeProb = f
	}
	if n, ok := vals["max_retries"].(int); ok {
		opts.MaxRetries = n
	}
	if s, ok := vals["direction_bias"].(string); ok {
		bias, err := dynpoly.ParseBias(s)
		if err != nil {
			return dynpoly.Options{}, fmt.Errorf("direction_bias: %w: %w", err, ErrBadValue)
		}
		opts.DirectionBias = bias
	}
	if n, ok := vals["verbose"].(int); ok {
		opts.Verbose = n
	}
	if b, ok := vals["save_iterations"].(bool); ok {
		opts.SaveIterations = b
	}
	if n, ok := vals["snapshot_interval"].(int); ok {
		opts.SnapshotInterval = n
	}
	if n, ok := vals["seed"].(int); ok {
		opts.Seed = int64(n)
	}

	return opts, nil
}
