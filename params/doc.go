// SPDX-License-Identifier: MIT
// Package: shape-studio/params
//
// Package params converts stringly-typed script parameters into the typed
// records the generators consume.
//
// What this package provides:
//   - Converters for the script-facing value grammar: int, float, inclusive
//     ranges ("5" or "5,8"), bounds ("x1,y1,x2,y2"), points, booleans
//     ("TRUE"/"1"/"YES"/"ON"), plain lists, weighted lists ("name" or
//     "name:weight") and closed choice sets.
//   - Spec — a per-method registry of typed parameter specs (kind, required,
//     default, choices, description) plus named presets.
//   - Resolve — raw strings in, typed map out; every violation (bad value,
//     missing required key, unknown key, unknown preset) is collected and
//     reported in ONE aggregated error so script authors fix everything in a
//     single pass.
//
// Canonical model:
//   - Keys are case-insensitive in scripts; the canonical spelling is
//     lowercase with underscores ("min_segment", "direction_bias").
//   - A preset supplies typed defaults; explicit parameters always win over
//     the preset, the preset wins over spec defaults.
//
// Determinism:
//   - Resolve walks parameters in sorted key order, so aggregated error text
//     is stable across runs.
//
// AI-Hints:
//   - Branch on the sentinel errors (ErrBadValue, ErrMissingParam,
//     ErrUnknownParam, ErrUnknownPreset) with errors.Is; the aggregated
//     error wraps every individual violation.
//   - DynamicPolygonSpec + OptionsFromResolved bridge a resolved map into a
//     dynpoly.Options record.
package params
