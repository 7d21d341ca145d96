// SPDX-License-Identifier: MIT
// Tests of the script value grammar, one table per converter family.
package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Scalars(t *testing.T) {
	t.Parallel()

	v, err := convert(KindInt, " 42 ", nil)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = convert(KindFloat, "0.35", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.35, v)

	_, err = convert(KindInt, "five", nil)
	assert.ErrorIs(t, err, ErrBadValue)
	_, err = convert(KindFloat, "0..5", nil)
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestConvert_Ranges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want IntRange
		ok   bool
	}{
		{"5", IntRange{5, 5}, true},
		{"5, 8", IntRange{5, 8}, true},
		{"5,8,11", IntRange{}, false},
		{"a,b", IntRange{}, false},
	}
	for _, tc := range cases {
		v, err := convert(KindIntOrRange, tc.raw, nil)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrBadValue, "raw %q", tc.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, v)
	}

	v, err := convert(KindFloatOrRange, "0.2 , 0.8", nil)
	require.NoError(t, err)
	assert.Equal(t, FloatRange{0.2, 0.8}, v)
}

func TestConvert_BoundsAndPoint(t *testing.T) {
	t.Parallel()

	v, err := convert(KindBounds, "100,100,600,600", nil)
	require.NoError(t, err)
	assert.Equal(t, Bounds{100, 100, 600, 600}, v)

	_, err = convert(KindBounds, "100,100,600", nil)
	assert.ErrorIs(t, err, ErrBadValue)

	p, err := convert(KindPoint, "12.5, -3", nil)
	require.NoError(t, err)
	assert.Equal(t, Point{12.5, -3}, p)

	_, err = convert(KindPoint, "1,2,3", nil)
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestConvert_Bool(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"TRUE", "true", "1", "YES", "yes", "ON"} {
		v, err := convert(KindBool, raw, nil)
		require.NoError(t, err)
		assert.Equal(t, true, v, "raw %q", raw)
	}
	for _, raw := range []string{"FALSE", "0", "NO", "off", "banana"} {
		v, err := convert(KindBool, raw, nil)
		require.NoError(t, err)
		assert.Equal(t, false, v, "raw %q", raw)
	}
}

func TestConvert_Lists(t *testing.T) {
	t.Parallel()

	v, err := convert(KindList, "split_offset, sawtooth ,squarewave", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"split_offset", "sawtooth", "squarewave"}, v)

	w, err := convert(KindWeightedList, "split_offset:2, sawtooth, squarewave:0.5", nil)
	require.NoError(t, err)
	assert.Equal(t, []WeightedItem{
		{Name: "split_offset", Weight: 2},
		{Name: "sawtooth", Weight: 1},
		{Name: "squarewave", Weight: 0.5},
	}, w)

	_, err = convert(KindWeightedList, "sawtooth:-1", nil)
	assert.ErrorIs(t, err, ErrBadValue, "negative weight rejected")
	_, err = convert(KindWeightedList, "sawtooth:heavy", nil)
	assert.ErrorIs(t, err, ErrBadValue)
	_, err = convert(KindWeightedList, " , ", nil)
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestConvert_Choice(t *testing.T) {
	t.Parallel()

	choices := []string{"inward", "outward", "random"}
	v, err := convert(KindChoice, " Inward ", choices)
	require.NoError(t, err)
	assert.Equal(t, "inward", v, "choices are case-insensitive")

	_, err = convert(KindChoice, "sideways", choices)
	assert.ErrorIs(t, err, ErrBadValue)
}
