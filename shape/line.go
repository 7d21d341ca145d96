// SPDX-License-Identifier: MIT
// Package: shape-studio/shape
//
// line.go — the Line entity: a single named segment.

package shape

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/geom2d"
)

// Line is a single segment from Start to End.
type Line struct {
	ShapeName  string
	Start, End r2.Vec
	Attrs      Attrs
}

// NewLine constructs a named line segment.
func NewLine(name string, start, end r2.Vec) *Line {
	return &Line{ShapeName: name, Start: start, End: end, Attrs: Attrs{}}
}

// Name returns the entity name.
func (l *Line) Name() string { return l.ShapeName }

// Centroid returns the segment midpoint.
func (l *Line) Centroid() r2.Vec { return geom2d.Midpoint(l.Start, l.End) }

// Move translates both endpoints by (dx, dy).
func (l *Line) Move(dx, dy float64) {
	d := r2.Vec{X: dx, Y: dy}
	l.Start = r2.Add(l.Start, d)
	l.End = r2.Add(l.End, d)
}

// Rotate rotates the segment about its midpoint by deg degrees CCW.
func (l *Line) Rotate(deg float64) {
	c := l.Centroid()
	l.Start = rotatePoint(l.Start, c, deg)
	l.End = rotatePoint(l.End, c, deg)
}

// Scale scales the segment uniformly about its midpoint.
func (l *Line) Scale(factor float64) { l.Resize(factor, factor) }

// Resize scales the segment about its midpoint with independent X/Y factors.
func (l *Line) Resize(xFactor, yFactor float64) {
	c := l.Centroid()
	l.Start = resizePoint(l.Start, c, xFactor, yFactor)
	l.End = resizePoint(l.End, c, xFactor, yFactor)
}
