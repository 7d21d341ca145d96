// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// types.go — the closed operation enum, connection methods, the per-call
// Options record, statistics and telemetry types.
//
// Design:
//   - OpKind is a closed enum with one handler per variant (registry.go);
//     adding an operation without extending the registry fails at compile
//     time via the fixed-size handler array.
//   - Options is an immutable value record per call: created once by the
//     caller, consumed read-only by the driver.

package dynpoly

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
	"github.com/bigchuck/shape-studio/shape"
)

// OpKind enumerates the boundary-mutation operations.
type OpKind int

const (
	// OpSplitOffset inserts one perpendicular break point on the edge.
	OpSplitOffset OpKind = iota
	// OpSawtooth inserts a triangular protrusion (3 points).
	OpSawtooth
	// OpSquarewave inserts a rectangular tab/notch (4 points).
	OpSquarewave
	// OpRemovePoint deletes a boundary vertex, merging adjacent edges.
	OpRemovePoint
	// OpDistortOriginal moves an initial-construction vertex along its
	// centroid ray.
	OpDistortOriginal

	// numOpKinds bounds the enum; keep it last.
	numOpKinds
)

// opNames spells operations the way scripts and presets do.
var opNames = [numOpKinds]string{
	OpSplitOffset:     "split_offset",
	OpSawtooth:        "sawtooth",
	OpSquarewave:      "squarewave",
	OpRemovePoint:     "remove_point",
	OpDistortOriginal: "distort_original",
}

// String renders the canonical script name of the operation.
func (k OpKind) String() string {
	if k < 0 || k >= numOpKinds {
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
	return opNames[k]
}

// valid reports whether k is a declared operation.
func (k OpKind) valid() bool { return k >= 0 && k < numOpKinds }

// ParseOpKind resolves a script name ("split_offset", ...) to its OpKind.
//
// Errors:
//   - ErrBadOperations (wrapped with the offending name) for unknown names.
//
// Complexity: O(numOpKinds).
func ParseOpKind(name string) (OpKind, error) {
	for k, n := range opNames {
		if n == name {
			return OpKind(k), nil
		}
	}
	return 0, fmt.Errorf("ParseOpKind: unknown operation %q: %w", name, ErrBadOperations)
}

// WeightedOp pairs an operation with its non-negative selection weight.
type WeightedOp struct {
	Kind   OpKind
	Weight float64
}

// ConnectMethod selects how initial vertices are joined into a boundary.
type ConnectMethod int

const (
	// AngleSort orders vertices by polar angle around their centroid
	// (default; may yield non-convex but simple boundaries).
	AngleSort ConnectMethod = iota
	// ConvexHull is currently aliased to AngleSort — a known approximation
	// kept until a true hull connector lands.
	ConvexHull
)

// String renders the canonical script name of the connection method.
func (c ConnectMethod) String() string {
	if c == ConvexHull {
		return "convex_hull"
	}
	return "angle_sort"
}

// ParseConnectMethod resolves "angle_sort" / "convex_hull".
func ParseConnectMethod(name string) (ConnectMethod, error) {
	switch name {
	case "angle_sort":
		return AngleSort, nil
	case "convex_hull":
		return ConvexHull, nil
	default:
		return 0, fmt.Errorf("ParseConnectMethod: unknown method %q", name)
	}
}

// ParseBias resolves "inward" / "outward" / "random" to a geom2d.Bias.
func ParseBias(name string) (geom2d.Bias, error) {
	switch name {
	case "inward":
		return geom2d.BiasInward, nil
	case "outward":
		return geom2d.BiasOutward, nil
	case "random":
		return geom2d.BiasRandom, nil
	default:
		return 0, fmt.Errorf("ParseBias: unknown bias %q", name)
	}
}

// IntRange is an inclusive integer interval; Min==Max expresses a fixed value.
type IntRange struct {
	Min, Max int
}

// FixedVertices is the IntRange for an exact vertex count.
func FixedVertices(n int) IntRange { return IntRange{Min: n, Max: n} }

// VertexRange is the IntRange for a uniform inclusive draw.
func VertexRange(min, max int) IntRange { return IntRange{Min: min, Max: max} }

// Options is the immutable per-call parameter record of the engine.
// Construct with DefaultOptions and override; Generate validates the whole
// record up front and reports every violation in one aggregated error.
type Options struct {
	// Vertices is the initial vertex count (fixed or inclusive range, ≥3).
	Vertices IntRange
	// Bounds constrains every generated point, boundary inclusive.
	Bounds r2.Box
	// Iterations is the number of evolution steps (≥0).
	Iterations int
	// Connect chooses the initial vertex connector.
	Connect ConnectMethod
	// Operations is the weighted operation list; total weight must be >0.
	Operations []WeightedOp
	// BreakMargin is the minimum fractional distance from an edge's
	// endpoints before a break point may be placed (0.0–0.5).
	BreakMargin float64
	// BreakWidthMax caps protrusion base width as a fraction of edge
	// length (0.0–1.0).
	BreakWidthMax float64
	// ProjectionMax scales the maximum perpendicular displacement (>0).
	ProjectionMax float64
	// MinSegmentLength excludes shorter edges from selection (pixels, ≥0);
	// when no edge qualifies the selector falls back to all edges.
	MinSegmentLength float64
	// SquarewaveIndependent lets the two squarewave top points use
	// independent projection directions and distances.
	SquarewaveIndependent bool
	// SquarewaveOppositeProb is the per-top-point probability of flipping
	// against the shared bias when SquarewaveIndependent is set (0.0–1.0).
	SquarewaveOppositeProb float64
	// MaxRetries bounds attempts per iteration (≥1).
	MaxRetries int
	// DirectionBias steers perpendicular projections (inward/outward/random).
	DirectionBias geom2d.Bias
	// Verbose selects debug-log depth: 0 silent, 1 exhaustions,
	// 2 + accepted mutations, 3 + every failed attempt.
	Verbose int
	// SaveIterations enables per-iteration snapshots.
	SaveIterations bool
	// SnapshotInterval emits a snapshot every k-th iteration (≥1).
	SnapshotInterval int
	// Seed drives all randomness; 0 means the fixed default stream.
	Seed int64
}

// Defaults mirror the application configuration (procedural.* sections).
const (
	defaultIterations       = 10
	defaultBreakMargin      = 0.15
	defaultBreakWidthMax    = 0.5
	defaultProjectionMax    = 2.0
	defaultMinSegmentLength = 10
	defaultOppositeProb     = 0.2
	defaultMaxRetries       = 15
	defaultSnapshotInterval = 1
	defaultVertexMin        = 5
	defaultVertexMax        = 8
)

// DefaultOptions returns the deterministic engine defaults. Bounds is left
// zero on purpose: it is the one parameter without a sensible default and
// Validate rejects the record until the caller supplies it.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Vertices:   VertexRange(defaultVertexMin, defaultVertexMax),
		Iterations: defaultIterations,
		Connect:    AngleSort,
		Operations: []WeightedOp{
			{Kind: OpSplitOffset, Weight: 1},
			{Kind: OpSawtooth, Weight: 1},
		},
		BreakMargin:            defaultBreakMargin,
		BreakWidthMax:          defaultBreakWidthMax,
		ProjectionMax:          defaultProjectionMax,
		MinSegmentLength:       defaultMinSegmentLength,
		SquarewaveOppositeProb: defaultOppositeProb,
		MaxRetries:             defaultMaxRetries,
		DirectionBias:          geom2d.BiasRandom,
		SnapshotInterval:       defaultSnapshotInterval,
	}
}

// OpCount tallies outcomes for one operation.
type OpCount struct {
	// Successes counts accepted mutations.
	Successes int
	// FailedAttempts counts rejected candidates (bounds, intersection,
	// degenerate geometry), across all retries.
	FailedAttempts int
}

// Stats is the provenance statistics block of one call.
type Stats struct {
	// PerOp indexes counters by OpKind.
	PerOp [numOpKinds]OpCount
	// Iterations is the requested iteration count.
	Iterations int
	// Accepted is the total number of accepted mutations (≤ Iterations).
	Accepted int
	// Exhausted counts iterations whose every retry failed.
	Exhausted int
}

// Op returns the counters of one operation.
func (s *Stats) Op(k OpKind) OpCount {
	if !k.valid() {
		return OpCount{}
	}
	return s.PerOp[k]
}

// PerOpByName renders the counters keyed by script name, for metadata blocks.
// Complexity: O(numOpKinds).
func (s *Stats) PerOpByName() map[string]OpCount {
	out := make(map[string]OpCount, numOpKinds)
	for k := OpKind(0); k < numOpKinds; k++ {
		out[k.String()] = s.PerOp[k]
	}
	return out
}

// DebugEntry is one structured record of the per-iteration debug log.
type DebugEntry struct {
	// Iteration is 1-based; 0 marks construction-time records.
	Iteration int
	// Op is the operation chosen for the iteration.
	Op OpKind
	// Edge is the selected edge index at choice time.
	Edge int
	// Attempt is the 1-based attempt number the entry describes.
	Attempt int
	// Accepted reports whether this attempt's candidate was accepted.
	Accepted bool
	// Reason describes a rejection (empty on acceptance).
	Reason string
	// BoundarySize is the boundary length after the attempt resolved.
	BoundarySize int
}

// Result is the outbound product of one Generate call.
type Result struct {
	// Polygon is the final shape with provenance metadata attached.
	Polygon *shape.Polygon
	// Snapshots holds the ordered, independent iteration copies
	// (iteration 0, every k-th, final); nil unless SaveIterations.
	Snapshots []*shape.Polygon
	// Stats is the statistics block (also embedded in Polygon metadata).
	Stats Stats
	// Debug is the structured debug log; depth follows Options.Verbose.
	Debug []DebugEntry
}
