// SPDX-License-Identifier: MIT
// Package: shape-studio/dynpoly
//
// op_remove_point.go — the remove_point operation: delete one boundary
// vertex, merging its two edges.
//
// Canonical model:
//   - Removes the far endpoint of the selected edge (deterministic given
//     the edge choice; no extra randomness).
//   - Refuses on a triangle: the boundary never shrinks below 3 vertices.
//   - The removed point also drops out of the distortable set when present,
//     keeping the two structures in sync.
//   - Removal can still produce a self-intersection on concave boundaries;
//     the driver's validator rejects those candidates.

package dynpoly

import "fmt"

// opRemovePoint deletes the far endpoint of the selected edge.
//
// Errors (attempt-level): ErrTooFewPoints.
// Complexity: O(n) for the candidate rebuild.
func opRemovePoint(g *generator, edge int) (candidate, error) {
	n := len(g.boundary)
	if n <= minVertices {
		return candidate{}, fmt.Errorf("remove_point: %d vertices: %w", n, ErrTooFewPoints)
	}

	victim := (edge + 1) % n
	removed := g.boundary[victim]

	return candidate{
		boundary: removeAt(g.boundary, victim),
		distort:  removeValue(g.distort, removed),
	}, nil
}
