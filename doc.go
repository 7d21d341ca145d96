// Package shapestudio is a toolkit for procedural 2D shape generation —
// from geometric primitives to evolved organic polygons, rendered to
// images.
//
// 🚀 What is shape-studio?
//
//	A deterministic, script-friendly generation library that brings together:
//		• Core primitives: polygons, lines, groups with transform + metadata support
//		• Procedural evolution: random polygons iteratively mutated by a weighted
//		  operation library (split, sawtooth, squarewave, removal, distortion)
//		• Validity guarantees: every published boundary is simple and in bounds
//		• Parameter system: stringly script parameters → typed, validated records
//		• Rendering: anti-aliased rasterization of shapes and grids to PNG
//
// ✨ Why choose shape-studio?
//
//   - Reproducible – one seed drives the whole run, snapshots and telemetry included
//   - Rock-solid guarantees – aggregated up-front validation, sentinel errors, errors.Is
//   - Observable – structured per-iteration debug log and provenance metadata
//   - Extensible – closed operation enum with a compile-time-checked handler registry
//
// Under the hood, everything is organized under seven subpackages:
//
//	geom2d/   — orientation tests, self-intersection, bounds, perpendiculars
//	shape/    — Polygon, Line, Group primitives + Attrs metadata
//	randutil/ — seeded RNG streams, ranges, truncated-normal sampling
//	dynpoly/  — the dynamic-polygon evolution engine
//	params/   — script parameter specs, presets, converters
//	canvas/   — RGBA rasterization and PNG encoding
//	config/   — application defaults with JSON overlay
//
// Quick ASCII example:
//
//	    ┌────────┐        ┌──╥─────┐
//	    │        │   ⇒    │  ║     ╲
//	    │        │        │  ╙──╖   ╲
//	    └────────┘        └─────╨────┘
//
//	start from a random simple polygon, then repeatedly pick an edge,
//	apply a weighted operation, and keep the result only when it stays
//	simple and in bounds.
//
// Minimal use:
//
//	opts := dynpoly.DefaultOptions()
//	opts.Bounds = r2.Box{Min: r2.Vec{X: 0, Y: 0}, Max: r2.Vec{X: 768, Y: 768}}
//	res, err := dynpoly.Generate("blob", opts)
//
// See each subpackage's doc.go for its contract and examples/ for complete
// scenarios.
package shapestudio
