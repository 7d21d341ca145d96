// SPDX-License-Identifier: MIT
// Package: shape-studio/canvas
//
// canvas.go — the Canvas type: construction, background, grid, polygon fill
// and stroke, PNG encoding.

package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrBadSize marks non-positive canvas dimensions.
	ErrBadSize = errors.New("canvas: width and height must be positive")

	// ErrBadPolygon marks a fill/stroke request with fewer than 3 points.
	ErrBadPolygon = errors.New("canvas: polygon needs at least 3 points")
)

// minStrokeWidth keeps hairlines visible after anti-aliasing.
const minStrokeWidth = 0.5

// Canvas is an RGBA drawing surface with a reusable rasterizer.
// Not safe for concurrent use; one goroutine owns one canvas.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
	w   int
	h   int
}

// New allocates a transparent canvas of w×h pixels.
//
// Errors: ErrBadSize for non-positive dimensions.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrBadSize)
	}
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
		w:   w,
		h:   h,
	}, nil
}

// Image exposes the backing image; mutations by the caller are visible to
// subsequent draws.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the pixel dimensions.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// FillBackground floods the whole canvas with col.
func (c *Canvas) FillBackground(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawGrid overlays vertical and horizontal hairlines every spacing pixels,
// skipping the x=0 / y=0 edges. No-op for non-positive spacing.
func (c *Canvas) DrawGrid(spacing float64, col color.Color) {
	if spacing <= 0 {
		return
	}
	for x := spacing; x < float64(c.w); x += spacing {
		c.DrawLine(r2.Vec{X: x, Y: 0}, r2.Vec{X: x, Y: float64(c.h)}, 1, col)
	}
	for y := spacing; y < float64(c.h); y += spacing {
		c.DrawLine(r2.Vec{X: 0, Y: y}, r2.Vec{X: float64(c.w), Y: y}, 1, col)
	}
}

// FillPolygon paints the closed polygon interior with col, non-zero winding.
//
// Errors: ErrBadPolygon below 3 points.
func (c *Canvas) FillPolygon(pts []r2.Vec, col color.Color) error {
	if len(pts) < 3 {
		return fmt.Errorf("%d points: %w", len(pts), ErrBadPolygon)
	}
	c.ras.Reset(c.w, c.h)
	c.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.ras.LineTo(float32(p.X), float32(p.Y))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	return nil
}

// StrokePolygon outlines the closed polygon with the given stroke width.
//
// Errors: ErrBadPolygon below 3 points.
func (c *Canvas) StrokePolygon(pts []r2.Vec, width float64, col color.Color) error {
	if len(pts) < 3 {
		return fmt.Errorf("%d points: %w", len(pts), ErrBadPolygon)
	}
	for i := range pts {
		c.DrawLine(pts[i], pts[(i+1)%len(pts)], width, col)
	}
	return nil
}

// DrawLine renders one segment as a filled quad of the given width.
// Zero-length segments and non-positive widths degrade gracefully (hairline
// width, dot-sized quad).
func (c *Canvas) DrawLine(a, b r2.Vec, width float64, col color.Color) {
	if width <= 0 {
		width = 1
	}
	half := math.Max(width/2, minStrokeWidth)

	d := r2.Sub(b, a)
	if r2.Norm(d) == 0 {
		d = r2.Vec{X: 1, Y: 0}
	}
	// Unit normal of the segment; offsets give the quad corners.
	n := r2.Scale(half, r2.Unit(r2.Vec{X: -d.Y, Y: d.X}))

	c.ras.Reset(c.w, c.h)
	c.ras.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	c.ras.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	c.ras.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	c.ras.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// EncodePNG writes the current canvas state as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}
