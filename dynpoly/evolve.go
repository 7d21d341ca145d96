// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// evolve.go — the evolution driver: the per-iteration state machine and the
// single public entry point, Generate.
//
// State machine per iteration:
//
//	SELECT → CHOOSE-OP → ATTEMPT(1..MaxRetries) → {ACCEPT | ABANDON}
//
// On ACCEPT: boundary, distortable set and centroid are replaced by the
// candidate, counters update, telemetry records the mutation. On ABANDON
// (all retries failed): the boundary is unchanged, the exhaustion counter
// increments and the loop continues — individual iterations may fail
// silently without aborting the call. Persistent exhaustion stays purely
// observational through the statistics block; there is no escalation path
// to a call-level error.
//
// Determinism:
//   - One *rand.Rand drives everything (construction, selection, operation
//     internals) in a fixed, documented draw order; a fixed Options.Seed
//     reproduces the full run, telemetry included.
//
// Complexity:
//   - Worst case O(Iterations × MaxRetries × n²) for the self-intersection
//     validation, with n the final boundary size. The bounded retry loop is
//     the engine's substitute for a timeout.

package dynpoly

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
	"github.com/bigchuck/shape-studio/randutil"
	"github.com/bigchuck/shape-studio/shape"
)

// generator is the per-call working state. It lives for exactly one
// Generate call; nothing is retained across calls.
type generator struct {
	name     string
	opts     Options
	rng      *rand.Rand
	registry [numOpKinds]opHandler

	boundary []r2.Vec
	distort  []r2.Vec
	centroid r2.Vec

	stats Stats
	debug []DebugEntry
	snaps []*shape.Polygon
}

// Generate constructs a random polygon and evolves it per opts, returning
// the final polygon with provenance metadata, plus snapshots and telemetry.
//
// Errors:
//   - One aggregated parameter error (all violations) before any mutation;
//     branch with errors.Is against the ErrBad* sentinels.
//   - ErrConstructFailed when no simple initial boundary could be sampled
//     (practically unreachable for non-degenerate bounds).
//
// Complexity: see package banner; a call is single-threaded and owns all
// its state.
func Generate(name string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	g := &generator{
		name:     name,
		opts:     opts,
		rng:      randutil.FromSeed(opts.Seed),
		registry: newOpRegistry(),
	}
	g.stats.Iterations = opts.Iterations

	// Initial construction seeds both the boundary and an independent copy
	// forming the distortable set.
	boundary, err := buildInitial(g.rng, opts)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	g.boundary = boundary
	g.distort = append([]r2.Vec(nil), g.boundary...)
	g.centroid = geom2d.Centroid(g.boundary)

	if opts.SaveIterations {
		g.snapshot(0, false)
	}

	for iter := 1; iter <= opts.Iterations; iter++ {
		g.runIteration(iter)
		if opts.SaveIterations && iter%opts.SnapshotInterval == 0 {
			g.snapshot(iter, false)
		}
	}

	if opts.SaveIterations {
		g.snapshot(opts.Iterations, true)
	}

	poly := shape.NewPolygon(name, g.boundary)
	poly.Attrs = buildMetadata(opts, g.stats)

	return &Result{
		Polygon:   poly,
		Snapshots: g.snaps,
		Stats:     g.stats,
		Debug:     g.debug,
	}, nil
}

// runIteration executes one SELECT → CHOOSE-OP → ATTEMPT cycle.
func (g *generator) runIteration(iter int) {
	edge := selectSegment(g.rng, g.boundary, g.opts.MinSegmentLength)
	kind := chooseOperation(g.rng, g.opts.Operations)
	handler := g.registry[kind]

	for attempt := 1; attempt <= g.opts.MaxRetries; attempt++ {
		cand, err := handler(g, edge)
		if err == nil && geom2d.SelfIntersects(cand.boundary) {
			err = errSelfIntersect
		}
		if err != nil {
			g.stats.PerOp[kind].FailedAttempts++
			g.logAttempt(iter, kind, edge, attempt, err.Error())
			continue
		}

		// ACCEPT: swap in the candidate wholesale; a rejected candidate was
		// simply dropped, so no partial mutation ever needs undoing.
		g.boundary = cand.boundary
		g.distort = cand.distort
		g.centroid = geom2d.Centroid(g.boundary)
		g.stats.PerOp[kind].Successes++
		g.stats.Accepted++
		g.logAccept(iter, kind, edge, attempt)
		return
	}

	// ABANDON: boundary unchanged, loop continues.
	g.stats.Exhausted++
	g.logExhausted(iter, kind, edge)
}
