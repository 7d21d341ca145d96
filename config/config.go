// SPDX-License-Identifier: MIT
// Package: shape-studio/config
//
// config.go — the typed configuration tree, defaults and the JSON overlay.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAlreadyLoaded marks a second Load on the same Config.
	ErrAlreadyLoaded = errors.New("config: already loaded")

	// ErrBadFile marks an unreadable or syntactically invalid config file.
	ErrBadFile = errors.New("config: unreadable config file")
)

// Canvas holds display-surface settings.
type Canvas struct {
	Width               int    `json:"width"`
	Height              int    `json:"height"`
	Origin              string `json:"origin"`
	GridSpacing         int    `json:"grid_spacing"`
	DefaultBoundsMargin int    `json:"default_bounds_margin"`
}

// Paths holds filesystem locations, relative to the working directory unless
// absolute.
type Paths struct {
	Output        string `json:"output"`
	Scripts       string `json:"scripts"`
	Shapes        string `json:"shapes"`
	Projects      string `json:"projects"`
	Templates     string `json:"templates"`
	GlobalLibrary string `json:"global_library"`
}

// ProceduralDefaults holds the core algorithm defaults.
type ProceduralDefaults struct {
	Iterations    int    `json:"iterations"`
	MaxRetries    int    `json:"max_retries"`
	Connect       string `json:"connect"`
	DirectionBias string `json:"direction_bias"`
}

// Operations holds boundary-modification parameters.
type Operations struct {
	BreakMargin      float64 `json:"break_margin"`
	BreakWidthMax    float64 `json:"break_width_max"`
	ProjectionMax    float64 `json:"projection_max"`
	MinSegmentLength float64 `json:"min_segment_length"`
}

// Squarewave holds the squarewave-specific knobs.
type Squarewave struct {
	IndependentDirections bool    `json:"independent_directions"`
	OppositeDirectionProb float64 `json:"opposite_direction_prob"`
}

// Debug holds procedural debug and snapshot defaults.
type Debug struct {
	VerboseDefault          int  `json:"verbose_default"`
	SaveIterationsDefault   bool `json:"save_iterations_default"`
	SnapshotIntervalDefault int  `json:"snapshot_interval_default"`
}

// Procedural groups the procedural-generation sections.
type Procedural struct {
	Defaults   ProceduralDefaults `json:"defaults"`
	Operations Operations         `json:"operations"`
	Squarewave Squarewave         `json:"squarewave"`
	Debug      Debug              `json:"debug"`
}

// NormalDistribution holds rejection-sampling settings.
type NormalDistribution struct {
	MaxSamplingAttempts int  `json:"max_sampling_attempts"`
	FallbackToUniform   bool `json:"fallback_to_uniform"`
	WarnOnFailures      bool `json:"warn_on_failures"`
}

// Randomization groups the randomness settings. Seed 0 means
// non-reproducible (a fresh seed per run); any other value is reproducible.
type Randomization struct {
	NormalDistribution  NormalDistribution `json:"normal_distribution"`
	DefaultDistribution string             `json:"default_distribution"`
	Seed                int64              `json:"seed"`
}

// Animation holds the preview-playback settings.
type Animation struct {
	DefaultFPS  int    `json:"default_fps"`
	FPSRange    [2]int `json:"fps_range"`
	PreviewSize int    `json:"preview_size"`
	DefaultLoop bool   `json:"default_loop"`
}

// Config is the full configuration tree. Zero value is NOT usable; start
// from Defaults or Load.
type Config struct {
	Canvas        Canvas        `json:"canvas"`
	Paths         Paths         `json:"paths"`
	Procedural    Procedural    `json:"procedural"`
	Randomization Randomization `json:"randomization"`
	Animation     Animation     `json:"animation"`

	loaded bool
}

// Defaults returns the built-in configuration tree.
func Defaults() Config {
	return Config{
		Canvas: Canvas{
			Width:               768,
			Height:              768,
			Origin:              "top-left",
			GridSpacing:         64,
			DefaultBoundsMargin: 100,
		},
		Paths: Paths{
			Output:        "output",
			Scripts:       "scripts",
			Shapes:        "shapes",
			Projects:      "projects",
			Templates:     "templates",
			GlobalLibrary: "~/.shapestudio/shapes",
		},
		Procedural: Procedural{
			Defaults: ProceduralDefaults{
				Iterations:    10,
				MaxRetries:    15,
				Connect:       "angle_sort",
				DirectionBias: "random",
			},
			Operations: Operations{
				BreakMargin:      0.15,
				BreakWidthMax:    0.5,
				ProjectionMax:    2.0,
				MinSegmentLength: 10,
			},
			Squarewave: Squarewave{
				IndependentDirections: false,
				OppositeDirectionProb: 0.2,
			},
			Debug: Debug{
				VerboseDefault:          0,
				SaveIterationsDefault:   false,
				SnapshotIntervalDefault: 1,
			},
		},
		Randomization: Randomization{
			NormalDistribution: NormalDistribution{
				MaxSamplingAttempts: 1000,
				FallbackToUniform:   false,
				WarnOnFailures:      true,
			},
			DefaultDistribution: "uniform",
			Seed:                0,
		},
		Animation: Animation{
			DefaultFPS:  2,
			FPSRange:    [2]int{1, 10},
			PreviewSize: 512,
			DefaultLoop: false,
		},
	}
}

// Load overlays the JSON file at path onto the defaults and freezes the
// receiver. Keys absent from the file keep their default values.
//
// Errors:
//   - ErrAlreadyLoaded on a second call.
//   - ErrBadFile (wrapped) for read or JSON syntax failures.
func (c *Config) Load(path string) error {
	if c.loaded {
		return ErrAlreadyLoaded
	}

	*c = Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrBadFile)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, ErrBadFile)
	}

	c.loaded = true
	return nil
}

// Loaded reports whether Load completed on this Config.
func (c *Config) Loaded() bool { return c.loaded }
