// SPDX-License-Identifier: MIT
// Package: shape-studio/shape
//
// polygon.go — the Polygon entity: an ordered, implicitly closed vertex list
// plus metadata. This is the output type of the procedural engine.

package shape

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
)

// Polygon is an ordered, cyclic vertex list; the closing edge from the last
// vertex back to the first is implicit.
type Polygon struct {
	// ShapeName is the entity name (or snapshot name for iteration copies).
	ShapeName string
	// Points is the boundary in order. Engine output is always
	// integer-rounded and free of non-adjacent edge intersections.
	Points []r2.Vec
	// Attrs holds style and provenance metadata.
	Attrs Attrs
}

// NewPolygon constructs a polygon over its own copy of pts, so later
// mutations of the caller's slice cannot alias into the shape.
// Complexity: O(n).
func NewPolygon(name string, pts []r2.Vec) *Polygon {
	cp := make([]r2.Vec, len(pts))
	copy(cp, pts)
	return &Polygon{ShapeName: name, Points: cp, Attrs: Attrs{}}
}

// Name returns the entity name.
func (p *Polygon) Name() string { return p.ShapeName }

// Centroid returns the vertex centroid.
// Complexity: O(n).
func (p *Polygon) Centroid() r2.Vec { return geom2d.Centroid(p.Points) }

// Bounds returns the axis-aligned bounding box of the boundary.
// Complexity: O(n).
func (p *Polygon) Bounds() r2.Box {
	if len(p.Points) == 0 {
		return r2.Box{}
	}
	box := r2.Box{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		if pt.X < box.Min.X {
			box.Min.X = pt.X
		}
		if pt.Y < box.Min.Y {
			box.Min.Y = pt.Y
		}
		if pt.X > box.Max.X {
			box.Max.X = pt.X
		}
		if pt.Y > box.Max.Y {
			box.Max.Y = pt.Y
		}
	}
	return box
}

// Move translates every vertex by (dx, dy).
// Complexity: O(n).
func (p *Polygon) Move(dx, dy float64) {
	for i := range p.Points {
		p.Points[i] = r2.Add(p.Points[i], r2.Vec{X: dx, Y: dy})
	}
}

// Rotate rotates the boundary about its centroid by deg degrees CCW.
// Complexity: O(n).
func (p *Polygon) Rotate(deg float64) {
	c := p.Centroid()
	for i := range p.Points {
		p.Points[i] = rotatePoint(p.Points[i], c, deg)
	}
}

// Scale scales the boundary uniformly about its centroid.
// Complexity: O(n).
func (p *Polygon) Scale(factor float64) {
	p.Resize(factor, factor)
}

// Resize scales the boundary about its centroid with independent X/Y factors.
// Complexity: O(n).
func (p *Polygon) Resize(xFactor, yFactor float64) {
	c := p.Centroid()
	for i := range p.Points {
		p.Points[i] = resizePoint(p.Points[i], c, xFactor, yFactor)
	}
}

// Clone returns a deep, alias-free copy under the given name.
// Snapshot independence depends on this: the engine hands out clones so a
// later boundary mutation can never reach into an emitted snapshot.
// Complexity: O(n).
func (p *Polygon) Clone(name string) *Polygon {
	cp := NewPolygon(name, p.Points)
	cp.Attrs = p.Attrs.Clone()
	return cp
}
