// SPDX-License-Identifier: MIT
// Package config_test checks the default tree, the JSON overlay merge and
// the load-once contract.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigchuck/shape-studio/config"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	c := config.Defaults()
	assert.Equal(t, 768, c.Canvas.Width)
	assert.Equal(t, 0.15, c.Procedural.Operations.BreakMargin)
	assert.Equal(t, 15, c.Procedural.Defaults.MaxRetries)
	assert.Equal(t, 1000, c.Randomization.NormalDistribution.MaxSamplingAttempts)
	assert.False(t, c.Randomization.NormalDistribution.FallbackToUniform)
	assert.Equal(t, [2]int{1, 10}, c.Animation.FPSRange)
	assert.False(t, c.Loaded())
}

func TestLoad_OverlayKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"canvas": {"width": 1024},
		"procedural": {"operations": {"break_margin": 0.25}}
	}`), 0o644))

	var c config.Config
	require.NoError(t, c.Load(path))
	assert.True(t, c.Loaded())

	assert.Equal(t, 1024, c.Canvas.Width, "overridden")
	assert.Equal(t, 768, c.Canvas.Height, "sibling keeps default")
	assert.Equal(t, 0.25, c.Procedural.Operations.BreakMargin, "nested override")
	assert.Equal(t, 0.5, c.Procedural.Operations.BreakWidthMax, "nested sibling keeps default")
}

func TestLoad_Once(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var c config.Config
	require.NoError(t, c.Load(path))
	assert.ErrorIs(t, c.Load(path), config.ErrAlreadyLoaded)
}

func TestLoad_BadFile(t *testing.T) {
	t.Parallel()

	var c config.Config
	assert.ErrorIs(t, c.Load(filepath.Join(t.TempDir(), "missing.json")), config.ErrBadFile)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"canvas":`), 0o644))
	var c2 config.Config
	assert.ErrorIs(t, c2.Load(path), config.ErrBadFile)
}
