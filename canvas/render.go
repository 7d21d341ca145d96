// SPDX-License-Identifier: MIT
// Package: shape-studio/canvas
//
// render.go — drawing a shape.Polygon from its style attribute block.
//
// Style block contract (written by the generators):
//
//	attrs["style"] = map[string]any{
//	    "fill":    "<color name>",  // optional; absent means outline only
//	    "outline": "<color name>",  // optional; absent means no outline
//	    "width":   <int|float64>,   // outline width, defaults to 2
//	}
//
// Unknown color names fall back to black rather than erroring: a misspelled
// color should still produce a visible shape on the output image.

package canvas

import (
	"image/color"
	"strings"

	"github.com/bigchuck/shape-studio/shape"
)

// defaultOutlineWidth applies when the style block omits "width".
const defaultOutlineWidth = 2.0

// namedColors is the palette the script language exposes.
var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {220, 50, 47, 255},
	"green":   {35, 140, 60, 255},
	"blue":    {38, 90, 200, 255},
	"yellow":  {240, 200, 40, 255},
	"orange":  {235, 135, 30, 255},
	"purple":  {110, 60, 160, 255},
	"gray":    {128, 128, 128, 255},
	"magenta": {200, 50, 160, 255},
	"cyan":    {40, 170, 190, 255},
}

// NamedColor resolves a palette name (case-insensitive). The second return
// reports whether the name is known; unknown names yield black.
func NamedColor(name string) (color.RGBA, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return namedColors["black"], false
	}
	return c, true
}

// Render draws the polygon per its style attribute block: fill first when a
// fill color is present, then the outline.
//
// Errors: ErrBadPolygon below 3 points.
func (c *Canvas) Render(p *shape.Polygon) error {
	fillName, outlineName, width := styleOf(p.Attrs)

	if fillName != "" {
		col, _ := NamedColor(fillName)
		if err := c.FillPolygon(p.Points, col); err != nil {
			return err
		}
	}
	if outlineName != "" {
		col, _ := NamedColor(outlineName)
		if err := c.StrokePolygon(p.Points, width, col); err != nil {
			return err
		}
	}
	return nil
}

// styleOf extracts the style block, tolerating missing keys and both int and
// float widths (JSON round-trips turn ints into float64).
func styleOf(attrs shape.Attrs) (fill, outline string, width float64) {
	width = defaultOutlineWidth
	style, ok := attrs["style"].(map[string]any)
	if !ok {
		return "", "black", width
	}
	fill, _ = style["fill"].(string)
	outline, _ = style["outline"].(string)
	switch w := style["width"].(type) {
	case int:
		width = float64(w)
	case float64:
		width = w
	}
	return fill, outline, width
}
