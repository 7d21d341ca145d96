// SPDX-License-Identifier: MIT
// Package: shape-studio/shape
//
// shape.go — the Shape interface, shared transform helpers and Attrs.

package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Shape is the common contract of every drawable entity.
// Transforms mutate the receiver; rotation is in degrees about the centroid.
type Shape interface {
	// Name returns the entity name (unique within a project).
	Name() string
	// Centroid returns the vertex centroid of the entity.
	Centroid() r2.Vec
	// Move translates by (dx, dy).
	Move(dx, dy float64)
	// Rotate rotates by deg degrees counter-clockwise about the centroid.
	Rotate(deg float64)
	// Scale scales uniformly by factor about the centroid.
	Scale(factor float64)
	// Resize scales by separate X/Y factors about the centroid.
	Resize(xFactor, yFactor float64)
}

// Attrs carries free-form metadata: style attributes, generation provenance,
// statistics blocks. Values are plain data; nothing in this module inspects
// them beyond the keys it wrote itself.
type Attrs map[string]any

// Clone returns a shallow copy of the attribute map. Nested provenance blocks
// are written once and treated as immutable afterwards, so sharing them
// between a snapshot and its source is safe.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// rotatePoint rotates p about center by deg degrees counter-clockwise.
// Complexity: O(1).
func rotatePoint(p, center r2.Vec, deg float64) r2.Vec {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	d := r2.Sub(p, center)
	return r2.Add(center, r2.Vec{
		X: d.X*cos - d.Y*sin,
		Y: d.X*sin + d.Y*cos,
	})
}

// resizePoint scales p about center with independent X/Y factors.
// Complexity: O(1).
func resizePoint(p, center r2.Vec, fx, fy float64) r2.Vec {
	d := r2.Sub(p, center)
	return r2.Add(center, r2.Vec{X: d.X * fx, Y: d.Y * fy})
}
