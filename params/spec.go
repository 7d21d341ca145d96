// SPDX-License-Identifier: MIT
// Package: shape-studio/params
//
// spec.go — the typed parameter registry and the aggregating resolver.
//
// Resolution order per parameter (first hit wins):
//  1. explicit raw value (converted through the parameter's Kind)
//  2. preset value (already typed)
//  3. spec default (required parameters have none; their absence is an error)
//
// Every violation across the whole raw map is collected; the caller gets one
// error joining all of them, or nil.

package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// presetKey is the reserved raw key selecting a preset; it is consumed by
// Resolve and never reaches the spec.
const presetKey = "preset"

// Param is the typed spec of one parameter.
type Param struct {
	// Kind selects the converter.
	Kind Kind
	// Required rejects resolution when neither raw nor preset supplies a value.
	Required bool
	// Default applies when the parameter is optional and absent. Must already
	// be the converter's output type.
	Default any
	// Choices is the closed value set for KindChoice.
	Choices []string
	// Description documents the parameter for script tooling.
	Description string
}

// Spec is the full parameter registry of one generator method, with its
// named presets. Preset values are typed (converter output types), not raw
// strings.
type Spec struct {
	// Method is the script-facing generator name.
	Method string
	// Params maps canonical lowercase names to their specs.
	Params map[string]Param
	// Presets maps preset names to typed value maps.
	Presets map[string]map[string]any
}

// Resolve converts raw script parameters into a typed map per the spec.
// Raw keys are case-insensitive; "preset" selects a typed default layer.
//
// Errors: one aggregated error joining every violation — ErrBadValue,
// ErrMissingParam, ErrUnknownParam and ErrUnknownPreset are all branchable
// with errors.Is. On error the returned map is nil.
//
// Complexity: O(P log P + R) with P spec parameters and R raw keys.
func (s *Spec) Resolve(raw map[string]string) (map[string]any, error) {
	var errs []error

	// Canonicalize raw keys; scripts shout (VERTICES=...), specs whisper.
	lowered := make(map[string]string, len(raw))
	for k, v := range raw {
		lowered[strings.ToLower(k)] = v
	}

	presetVals := map[string]any{}
	if name, ok := lowered[presetKey]; ok {
		delete(lowered, presetKey)
		vals, ok := s.Presets[strings.ToLower(name)]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: preset %q: %w", s.Method, name, ErrUnknownPreset))
		} else {
			presetVals = vals
		}
	}

	// Sorted walk keeps aggregated error text stable.
	names := make([]string, 0, len(s.Params))
	for name := range s.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	resolved := make(map[string]any, len(names))
	for _, name := range names {
		p := s.Params[name]
		if rawVal, ok := lowered[name]; ok {
			v, err := convert(p.Kind, rawVal, p.Choices)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: parameter %s: %w", s.Method, name, err))
				continue
			}
			resolved[name] = v
			continue
		}
		if v, ok := presetVals[name]; ok {
			resolved[name] = v
			continue
		}
		if p.Required {
			errs = append(errs, fmt.Errorf("%s: parameter %s: %w", s.Method, name, ErrMissingParam))
			continue
		}
		if p.Default != nil {
			resolved[name] = p.Default
		}
	}

	// Unknown keys are hard errors: silent typos produce silently-default
	// shapes, which is worse than failing the script line.
	unknown := make([]string, 0)
	for k := range lowered {
		if _, ok := s.Params[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		errs = append(errs, fmt.Errorf("%s: parameter %q: %w", s.Method, k, ErrUnknownParam))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return resolved, nil
}
