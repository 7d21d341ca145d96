// SPDX-License-Identifier: MIT
// Package shape_test verifies the entity model: construction, transforms and
// clone independence.
package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bigchuck/shape-studio/shape"
)

func unitSquare() *shape.Polygon {
	return shape.NewPolygon("sq", []r2.Vec{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
}

// TestNewPolygon_CopiesInput ensures the constructor does not alias the
// caller's slice.
func TestNewPolygon_CopiesInput(t *testing.T) {
	t.Parallel()

	pts := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	p := shape.NewPolygon("tri", pts)
	pts[0] = r2.Vec{X: 99, Y: 99}

	assert.Equal(t, r2.Vec{X: 0, Y: 0}, p.Points[0], "polygon owns its points")
}

// TestPolygon_MoveAndCentroid checks translation and the vertex centroid.
func TestPolygon_MoveAndCentroid(t *testing.T) {
	t.Parallel()

	p := unitSquare()
	assert.Equal(t, r2.Vec{X: 5, Y: 5}, p.Centroid())

	p.Move(3, -2)
	assert.Equal(t, r2.Vec{X: 8, Y: 3}, p.Centroid())
	assert.Equal(t, r2.Vec{X: 3, Y: -2}, p.Points[0])
}

// TestPolygon_RotatePreservesCentroid rotates 90° and checks the centroid is
// a fixed point while vertices permute.
func TestPolygon_RotatePreservesCentroid(t *testing.T) {
	t.Parallel()

	p := unitSquare()
	p.Rotate(90)

	c := p.Centroid()
	assert.InDelta(t, 5, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)

	// (0,0) rotated 90° CCW about (5,5) lands on (10,0).
	assert.InDelta(t, 10, p.Points[0].X, 1e-9)
	assert.InDelta(t, 0, p.Points[0].Y, 1e-9)
}

// TestPolygon_ScaleResize checks uniform and anisotropic scaling about the centroid.
func TestPolygon_ScaleResize(t *testing.T) {
	t.Parallel()

	p := unitSquare()
	p.Scale(2)
	b := p.Bounds()
	assert.Equal(t, r2.Vec{X: -5, Y: -5}, b.Min)
	assert.Equal(t, r2.Vec{X: 15, Y: 15}, b.Max)

	q := unitSquare()
	q.Resize(1, 0.5)
	qb := q.Bounds()
	assert.Equal(t, 0.0, qb.Min.X)
	assert.Equal(t, 2.5, qb.Min.Y)
	assert.Equal(t, 7.5, qb.Max.Y)
}

// TestPolygon_CloneIndependence mutates the original after cloning and checks
// the clone is untouched (snapshot contract).
func TestPolygon_CloneIndependence(t *testing.T) {
	t.Parallel()

	p := unitSquare()
	p.Attrs["style"] = "outline"

	c := p.Clone("sq_iter_0")
	require.Equal(t, "sq_iter_0", c.Name())
	require.Equal(t, p.Points, c.Points)

	p.Points[0] = r2.Vec{X: -100, Y: -100}
	p.Attrs["style"] = "filled"

	assert.Equal(t, r2.Vec{X: 0, Y: 0}, c.Points[0], "clone points are independent")
	assert.Equal(t, "outline", c.Attrs["style"], "clone attrs are independent")
}

// TestLineAndGroup covers the remaining Shape implementations.
func TestLineAndGroup(t *testing.T) {
	t.Parallel()

	l := shape.NewLine("l", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 0})
	assert.Equal(t, r2.Vec{X: 5, Y: 0}, l.Centroid())

	l.Rotate(90)
	assert.InDelta(t, 5, l.Start.X, 1e-9)
	assert.InDelta(t, -5, l.Start.Y, 1e-9)

	g := shape.NewGroup("g", unitSquare(), shape.NewLine("m", r2.Vec{}, r2.Vec{X: 2, Y: 0}))
	g.Move(1, 1)
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, g.Members[0].(*shape.Polygon).Points[0])
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, g.Members[1].(*shape.Line).Start)
}
