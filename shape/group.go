// SPDX-License-Identifier: MIT
// Package: shape-studio/shape
//
// group.go — a named collection of shapes transformed as one unit.
// The engine's snapshot return mode hands a Group to the playback UI.

package shape

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
)

// Group is a named, ordered collection of member shapes. Transforms apply to
// every member individually (about each member's own centroid for rotation
// and scaling, matching the application's group semantics).
type Group struct {
	ShapeName string
	Members   []Shape
	Attrs     Attrs
}

// NewGroup constructs a group over the given members (slice is adopted).
func NewGroup(name string, members ...Shape) *Group {
	return &Group{ShapeName: name, Members: members, Attrs: Attrs{}}
}

// Name returns the group name.
func (g *Group) Name() string { return g.ShapeName }

// Centroid returns the mean of the member centroids.
// Complexity: O(len(Members)).
func (g *Group) Centroid() r2.Vec {
	if len(g.Members) == 0 {
		return r2.Vec{}
	}
	pts := make([]r2.Vec, 0, len(g.Members))
	for _, m := range g.Members {
		pts = append(pts, m.Centroid())
	}
	return geom2d.Centroid(pts)
}

// Move translates every member by (dx, dy).
func (g *Group) Move(dx, dy float64) {
	for _, m := range g.Members {
		m.Move(dx, dy)
	}
}

// Rotate rotates every member by deg degrees CCW.
func (g *Group) Rotate(deg float64) {
	for _, m := range g.Members {
		m.Rotate(deg)
	}
}

// Scale scales every member uniformly.
func (g *Group) Scale(factor float64) {
	for _, m := range g.Members {
		m.Scale(factor)
	}
}

// Resize scales every member with independent X/Y factors.
func (g *Group) Resize(xFactor, yFactor float64) {
	for _, m := range g.Members {
		m.Resize(xFactor, yFactor)
	}
}
