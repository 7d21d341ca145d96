// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// registry.go — the explicit operation registry and weighted operation choice.
//
// Design:
//   - The registry is a fixed-size array indexed by OpKind and constructed
//     per call: no package-level mutable state, independently testable, and
//     the compiler keeps the enum and the handler set the same size.
//   - Handlers are pure w.r.t. the generator state: they read the live
//     boundary and return a copy-on-write candidate; a failed attempt is
//     discarded by dropping the candidate, never by undoing a mutation.

package dynpoly

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// candidate is the copy-on-write result of one operation attempt. Slices may
// alias the live state only when the handler left them untouched.
type candidate struct {
	boundary []r2.Vec
	distort  []r2.Vec
}

// opHandler maps (live state, selected edge) to a candidate, or an
// attempt-failure error (out of bounds / degenerate geometry / too few points).
type opHandler func(g *generator, edge int) (candidate, error)

// newOpRegistry binds every OpKind to its handler. The array length is tied
// to the enum: adding an OpKind without a handler leaves a nil slot that the
// exhaustiveness test catches.
func newOpRegistry() [numOpKinds]opHandler {
	return [numOpKinds]opHandler{
		OpSplitOffset:     opSplitOffset,
		OpSawtooth:        opSawtooth,
		OpSquarewave:      opSquarewave,
		OpRemovePoint:     opRemovePoint,
		OpDistortOriginal: opDistortOriginal,
	}
}

// chooseOperation picks an OpKind with probability proportional to its
// weight. Validation has already established a positive total; zero-weight
// entries are never chosen.
// Complexity: O(len(ops)).
func chooseOperation(rng *rand.Rand, ops []WeightedOp) OpKind {
	total := 0.0
	for _, op := range ops {
		total += op.Weight
	}

	r := rng.Float64() * total
	acc := 0.0
	for _, op := range ops {
		acc += op.Weight
		if op.Weight > 0 && r < acc {
			return op.Kind
		}
	}
	// Floating-point tail: return the last positively weighted entry.
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Weight > 0 {
			return ops[i].Kind
		}
	}
	return ops[len(ops)-1].Kind
}
