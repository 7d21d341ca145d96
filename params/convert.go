// SPDX-License-Identifier: MIT
// Package: shape-studio/params
//
// convert.go — the value grammar: one converter per Kind, raw script string
// in, typed Go value out.
//
// Contract:
//   - Converters trim whitespace around every comma-separated element.
//   - Range kinds accept a single value ("5" ⇒ [5,5]) or exactly two
//     ("5,8"); anything else is ErrBadValue.
//   - Weighted-list items are "name" (weight 1) or "name:weight".
//   - Every failure wraps ErrBadValue with the offending raw text.

package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the value grammar of script parameters.
type Kind int

const (
	// KindInt is a single integer.
	KindInt Kind = iota
	// KindFloat is a single float.
	KindFloat
	// KindIntOrRange is "n" or "min,max", resolved to an inclusive IntRange.
	KindIntOrRange
	// KindFloatOrRange is "x" or "min,max", resolved to a FloatRange.
	KindFloatOrRange
	// KindBounds is "x1,y1,x2,y2", resolved to a Bounds.
	KindBounds
	// KindPoint is "x,y", resolved to a Point.
	KindPoint
	// KindString passes the raw text through.
	KindString
	// KindBool accepts TRUE/1/YES/ON (any case) as true, everything else false.
	KindBool
	// KindList is a comma-separated list of strings.
	KindList
	// KindWeightedList is a comma-separated list of "name" or "name:weight".
	KindWeightedList
	// KindChoice is a string restricted to the spec's Choices set.
	KindChoice
)

// IntRange is an inclusive integer interval; a single value has Min==Max.
type IntRange struct {
	Min, Max int
}

// FloatRange is an inclusive float interval; a single value has Min==Max.
type FloatRange struct {
	Min, Max float64
}

// Bounds is an axis-aligned box as script coordinates (x1,y1,x2,y2).
type Bounds struct {
	X1, Y1, X2, Y2 float64
}

// Point is a 2D script coordinate.
type Point struct {
	X, Y float64
}

// WeightedItem is one entry of a weighted list.
type WeightedItem struct {
	Name   string
	Weight float64
}

// convert dispatches raw to the converter for kind. choices is consulted for
// KindChoice only.
//
// Errors: ErrBadValue (wrapped, with the raw text) on any parse failure;
// ErrBadSpec for an undeclared kind.
func convert(kind Kind, raw string, choices []string) (any, error) {
	switch kind {
	case KindInt:
		return convertInt(raw)
	case KindFloat:
		return convertFloat(raw)
	case KindIntOrRange:
		return convertIntOrRange(raw)
	case KindFloatOrRange:
		return convertFloatOrRange(raw)
	case KindBounds:
		return convertBounds(raw)
	case KindPoint:
		return convertPoint(raw)
	case KindString:
		return raw, nil
	case KindBool:
		return convertBool(raw), nil
	case KindList:
		return splitTrim(raw), nil
	case KindWeightedList:
		return convertWeightedList(raw)
	case KindChoice:
		return convertChoice(raw, choices)
	default:
		return nil, fmt.Errorf("kind %d: %w", kind, ErrBadSpec)
	}
}

func convertInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", raw, ErrBadValue)
	}
	return n, nil
}

func convertFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", raw, ErrBadValue)
	}
	return f, nil
}

func convertIntOrRange(raw string) (IntRange, error) {
	parts := splitTrim(raw)
	switch len(parts) {
	case 1:
		n, err := convertInt(parts[0])
		if err != nil {
			return IntRange{}, err
		}
		return IntRange{Min: n, Max: n}, nil
	case 2:
		lo, err := convertInt(parts[0])
		if err != nil {
			return IntRange{}, err
		}
		hi, err := convertInt(parts[1])
		if err != nil {
			return IntRange{}, err
		}
		return IntRange{Min: lo, Max: hi}, nil
	default:
		return IntRange{}, fmt.Errorf("range needs 1 or 2 values, got %d in %q: %w", len(parts), raw, ErrBadValue)
	}
}

func convertFloatOrRange(raw string) (FloatRange, error) {
	parts := splitTrim(raw)
	switch len(parts) {
	case 1:
		f, err := convertFloat(parts[0])
		if err != nil {
			return FloatRange{}, err
		}
		return FloatRange{Min: f, Max: f}, nil
	case 2:
		lo, err := convertFloat(parts[0])
		if err != nil {
			return FloatRange{}, err
		}
		hi, err := convertFloat(parts[1])
		if err != nil {
			return FloatRange{}, err
		}
		return FloatRange{Min: lo, Max: hi}, nil
	default:
		return FloatRange{}, fmt.Errorf("range needs 1 or 2 values, got %d in %q: %w", len(parts), raw, ErrBadValue)
	}
}

func convertBounds(raw string) (Bounds, error) {
	parts := splitTrim(raw)
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("bounds need 4 values (x1,y1,x2,y2), got %d in %q: %w", len(parts), raw, ErrBadValue)
	}
	var vals [4]float64
	for i, p := range parts {
		f, err := convertFloat(p)
		if err != nil {
			return Bounds{}, err
		}
		vals[i] = f
	}
	return Bounds{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, nil
}

func convertPoint(raw string) (Point, error) {
	parts := splitTrim(raw)
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("point needs 2 values (x,y), got %d in %q: %w", len(parts), raw, ErrBadValue)
	}
	x, err := convertFloat(parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := convertFloat(parts[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// convertBool treats TRUE/1/YES/ON (any case) as true; every other spelling,
// including typos, is false. This matches the script language's behavior.
func convertBool(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TRUE", "1", "YES", "ON":
		return true
	default:
		return false
	}
}

// defaultItemWeight applies when a weighted-list item omits ":weight".
const defaultItemWeight = 1.0

func convertWeightedList(raw string) ([]WeightedItem, error) {
	parts := splitTrim(raw)
	items := make([]WeightedItem, 0, len(parts))
	for _, p := range parts {
		name, weightRaw, hasWeight := strings.Cut(p, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty item in weighted list %q: %w", raw, ErrBadValue)
		}
		weight := defaultItemWeight
		if hasWeight {
			w, err := convertFloat(weightRaw)
			if err != nil {
				return nil, fmt.Errorf("weight of %q: %w", name, err)
			}
			if w < 0 {
				return nil, fmt.Errorf("negative weight %g for %q: %w", w, name, ErrBadValue)
			}
			weight = w
		}
		items = append(items, WeightedItem{Name: name, Weight: weight})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("empty weighted list: %w", ErrBadValue)
	}
	return items, nil
}

func convertChoice(raw string, choices []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range choices {
		if v == c {
			return v, nil
		}
	}
	return "", fmt.Errorf("%q is not one of %v: %w", raw, choices, ErrBadValue)
}

// splitTrim splits on commas and trims each element. Never returns nil.
func splitTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
