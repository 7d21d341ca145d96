// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// telemetry.go — structured debug log, snapshots and provenance metadata.
//
// Contract:
//   - Verbosity gates how much is captured, never what is computed:
//     0 silent, 1 exhaustions, 2 + accepted mutations, 3 + every failed
//     attempt.
//   - Snapshots are independent, self-contained copies; no aliasing with
//     the live boundary (shape.Polygon copy semantics + fresh attrs).
//   - Metadata embeds the resolved parameter record and the statistics
//     block so a caller can reconstruct exactly how the shape was produced.

package dynpoly

import (
	"fmt"

	"github.com/bigchuck/shape-studio/shape"
)

// Verbosity thresholds per record class.
const (
	verboseExhausted = 1
	verboseAccepted  = 2
	verboseAttempts  = 3
)

// Default style attributes of generated polygons (outline drawing).
const (
	defaultOutlineColor = "black"
	defaultOutlineWidth = 2
)

// logAttempt records one failed attempt (Verbose ≥ 3).
func (g *generator) logAttempt(iter int, op OpKind, edge, attempt int, reason string) {
	if g.opts.Verbose < verboseAttempts {
		return
	}
	g.debug = append(g.debug, DebugEntry{
		Iteration:    iter,
		Op:           op,
		Edge:         edge,
		Attempt:      attempt,
		Reason:       reason,
		BoundarySize: len(g.boundary),
	})
}

// logAccept records an accepted mutation (Verbose ≥ 2).
func (g *generator) logAccept(iter int, op OpKind, edge, attempt int) {
	if g.opts.Verbose < verboseAccepted {
		return
	}
	g.debug = append(g.debug, DebugEntry{
		Iteration:    iter,
		Op:           op,
		Edge:         edge,
		Attempt:      attempt,
		Accepted:     true,
		BoundarySize: len(g.boundary),
	})
}

// logExhausted records an iteration whose every retry failed (Verbose ≥ 1).
func (g *generator) logExhausted(iter int, op OpKind, edge int) {
	if g.opts.Verbose < verboseExhausted {
		return
	}
	g.debug = append(g.debug, DebugEntry{
		Iteration:    iter,
		Op:           op,
		Edge:         edge,
		Attempt:      g.opts.MaxRetries,
		Reason:       "retries exhausted",
		BoundarySize: len(g.boundary),
	})
}

// snapshot freezes the current boundary as an independent polygon named
// "<name>_iter_<k>" (or "<name>_final"), with the iteration recorded in its
// attributes for the playback view.
// Complexity: O(n).
func (g *generator) snapshot(iter int, final bool) {
	name := fmt.Sprintf("%s_iter_%d", g.name, iter)
	if final {
		name = g.name + "_final"
	}
	snap := shape.NewPolygon(name, g.boundary)
	snap.Attrs["style"] = defaultStyle()
	snap.Attrs["snapshot"] = map[string]any{
		"iteration": iter,
		"final":     final,
	}
	g.snaps = append(g.snaps, snap)
}

// defaultStyle is the style block downstream renderers expect.
func defaultStyle() map[string]any {
	return map[string]any{
		"outline": defaultOutlineColor,
		"width":   defaultOutlineWidth,
	}
}

// buildMetadata assembles the provenance block of the final polygon:
// the resolved parameter record plus the statistics of the run.
func buildMetadata(opts Options, stats Stats) shape.Attrs {
	ops := make([]map[string]any, 0, len(opts.Operations))
	for _, op := range opts.Operations {
		ops = append(ops, map[string]any{"name": op.Kind.String(), "weight": op.Weight})
	}
	return shape.Attrs{
		"style": defaultStyle(),
		"procedure": map[string]any{
			"method": "dynamic_polygon",
			"parameters": map[string]any{
				"vertices":   [2]int{opts.Vertices.Min, opts.Vertices.Max},
				"bounds":     [4]float64{opts.Bounds.Min.X, opts.Bounds.Min.Y, opts.Bounds.Max.X, opts.Bounds.Max.Y},
				"iterations": opts.Iterations,
				"connect":    opts.Connect.String(),
				"operations": ops,
				"bias":       opts.DirectionBias.String(),
				"seed":       opts.Seed,
			},
			"successful_modifications": stats.Accepted,
			"exhausted_iterations":     stats.Exhausted,
			"statistics":               stats.PerOpByName(),
		},
	}
}
