/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitScaler(t *testing.T) {
	s, err := NewUnitScaler(2048)
	require.NoError(t, err)

	assert.Equal(t, 0.48828125, s.Factor())
	assert.Equal(t, 927.734375, s.Scale(1900))
	assert.Equal(t, -97.65625, s.Scale(-200))

	s, err = NewUnitScaler(1000)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Factor())

	s, err = NewUnitScaler(16)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0/16*3, s.Scale(3), 1e-9)
}

func TestUnitScalerInvalid(t *testing.T) {
	for _, upem := range []float64{0, -2048, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewUnitScaler(upem)
		assert.ErrorIs(t, err, ErrInputValidation, "unitsPerEm %v", upem)
	}
}

func TestScaleMetrics(t *testing.T) {
	s, err := NewUnitScaler(2048)
	require.NoError(t, err)

	m := newFakeMetrics()
	capHeight, xHeight := 700.1953125, 500.0
	expected := ScaledMetrics{
		Factor:    0.48828125,
		BBox:      BBox{MinX: -97.65625, MinY: -244.140625, MaxX: 976.5625, MaxY: 927.734375},
		Ascent:    927.734375,
		Descent:   -244.140625,
		CapHeight: &capHeight,
		XHeight:   &xHeight,
	}
	if diff := cmp.Diff(expected, s.ScaleMetrics(m)); diff != "" {
		t.Errorf("ScaleMetrics mismatch (-want +got):\n%s", diff)
	}

	m.hasCapHeight, m.hasXHeight = false, false
	sm := s.ScaleMetrics(m)
	assert.Nil(t, sm.CapHeight)
	assert.Nil(t, sm.XHeight)
}
