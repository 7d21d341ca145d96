// SPDX-License-Identifier: MIT
// Package: shape-studio/params
//
// errors.go — sentinel errors of parameter resolution. Resolve aggregates
// every violation into one error wrapping these; branch with errors.Is.

package params

import "errors"

var (
	// ErrBadValue marks a raw string that failed its converter.
	ErrBadValue = errors.New("params: invalid parameter value")

	// ErrMissingParam marks a required parameter with no explicit value and
	// no preset value.
	ErrMissingParam = errors.New("params: missing required parameter")

	// ErrUnknownParam marks a raw key the spec does not declare.
	ErrUnknownParam = errors.New("params: unknown parameter")

	// ErrUnknownPreset marks a preset name the spec does not declare.
	ErrUnknownPreset = errors.New("params: unknown preset")

	// ErrBadSpec marks a malformed spec (unknown kind, choice without
	// choices). Programmer error, not script error.
	ErrBadSpec = errors.New("params: malformed parameter spec")
)
