// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// Package dynpoly implements the procedural polygon evolution engine:
// it constructs a random closed polygon and iteratively mutates its
// boundary through geometric operations, guaranteeing validity (no
// self-intersecting boundary, all points in bounds) at every step.
//
// 🚀 How it works:
//
//	initial construction → evolution loop → final polygon (+ snapshots)
//
//	Per iteration the driver runs a small state machine:
//	  SELECT    — pick an edge, weighted by length (spreads mutation
//	              pressure across the boundary)
//	  CHOOSE-OP — pick an operation from the weighted operation list
//	  ATTEMPT   — run the operation up to MaxRetries times on a
//	              copy-on-write candidate; the first candidate that stays
//	              in bounds and free of self-intersections is accepted
//	  ACCEPT / ABANDON — swap in the candidate, or keep the boundary
//	              unchanged and move on (silent partial failure)
//
// ✨ Operation library (closed enum, one handler per variant):
//   - split_offset     — one perpendicular break point on the edge
//   - sawtooth         — triangular protrusion (3 inserted points)
//   - squarewave       — rectangular tab/notch (4 inserted points,
//     optionally asymmetric top directions)
//   - remove_point     — delete a vertex, merging its edges
//   - distort_original — nudge an initial-construction vertex along its
//     centroid ray
//
// Guarantees:
//   - Validity: every accepted boundary (and every snapshot) has ≥3
//     points, no two non-adjacent edges intersect, and every point lies
//     inside the bounds rectangle, integer-rounded.
//   - Determinism: fixed Options.Seed ⇒ identical point sequences,
//     statistics and snapshots across runs.
//   - No hidden state: the operation registry and all parameters are
//     constructed per call; the engine keeps nothing between calls.
//   - Telemetry: statistics, a structured debug log (Verbose 0–3) and
//     optional per-iteration snapshots reconstruct exactly how the final
//     shape was produced.
//
// ⚙️ Usage:
//
//	opts := dynpoly.DefaultOptions()
//	opts.Vertices = dynpoly.FixedVertices(6)
//	opts.Bounds = r2.Box{Min: r2.Vec{X: 0, Y: 0}, Max: r2.Vec{X: 600, Y: 600}}
//	opts.Seed = 42
//
//	res, err := dynpoly.Generate("blob", opts)
//	if err != nil {
//	  // aggregated parameter error: every violation is listed
//	}
//	_ = res.Polygon // final shape.Polygon with provenance metadata
//
// Concurrency:
//   - One call is single-threaded and owns all of its state; parallel
//     callers are safe as long as each call gets its own seed.
package dynpoly
