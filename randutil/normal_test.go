// SPDX-License-Identifier: MIT
// Package randutil_test verifies the truncated-normal rejection sampler.
package randutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigchuck/shape-studio/randutil"
)

// TestNormalSampler_InRange draws many samples and checks truncation.
func TestNormalSampler_InRange(t *testing.T) {
	t.Parallel()

	s, err := randutil.NewNormalSampler(0.5, 0.2, 0.0, 1.0, 0, false, 99)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		v, err := s.Sample()
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

// TestNormalSampler_Deterministic pins the full rejection sequence to a seed.
func TestNormalSampler_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := randutil.NewNormalSampler(0, 1, -1, 1, 0, false, 5)
	require.NoError(t, err)
	b, err := randutil.NewNormalSampler(0, 1, -1, 1, 0, false, 5)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		va, errA := a.Sample()
		vb, errB := b.Sample()
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, va, vb, "sample %d diverged", i)
	}
}

// TestNormalSampler_Exhaustion forces an unreachable interval and checks the
// sentinel vs. the uniform fallback.
func TestNormalSampler_Exhaustion(t *testing.T) {
	t.Parallel()

	// Mean 0, sigma 0.001: the interval [100,101] is unreachable in 10 draws.
	strict, err := randutil.NewNormalSampler(0, 0.001, 100, 101, 10, false, 1)
	require.NoError(t, err)
	_, err = strict.Sample()
	assert.ErrorIs(t, err, randutil.ErrSamplingExhausted)

	relaxed, err := randutil.NewNormalSampler(0, 0.001, 100, 101, 10, true, 1)
	require.NoError(t, err)
	v, err := relaxed.Sample()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 100.0)
	assert.LessOrEqual(t, v, 101.0)
}

// TestNewNormalSampler_BadInterval rejects inverted ranges and bad sigma.
func TestNewNormalSampler_BadInterval(t *testing.T) {
	t.Parallel()

	_, err := randutil.NewNormalSampler(0, 1, 5, 4, 0, false, 1)
	assert.ErrorIs(t, err, randutil.ErrBadInterval)

	_, err = randutil.NewNormalSampler(0, 0, 0, 1, 0, false, 1)
	assert.ErrorIs(t, err, randutil.ErrBadInterval)
}
