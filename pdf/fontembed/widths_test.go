/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBuildWidthTable(t *testing.T) {
	m := newFakeMetrics()
	s, err := NewUnitScaler(m.UnitsPerEm())
	require.NoError(t, err)

	widths := BuildWidthTable(m, s)
	require.Len(t, widths, 256)

	for code, w := range widths {
		switch code {
		case 'A':
			assert.Equal(t, 666.9921875, w)
		case 'B':
			assert.Equal(t, 500.0, w)
		default:
			assert.Equal(t, 0.0, w, "code %d", code)
		}
	}
}

func TestBuildWidthTableEmpty(t *testing.T) {
	m := newFakeMetrics()
	m.widths = nil
	s, err := NewUnitScaler(m.UnitsPerEm())
	require.NoError(t, err)

	assert.Equal(t, WidthTable{}, BuildWidthTable(m, s))
	assert.Equal(t, 256, BuildWidthTable(m, s).ToPdfObject().Len())
}

func TestBuildWidthTableGoRegular(t *testing.T) {
	m, err := LoadMetrics(goregular.TTF)
	require.NoError(t, err)
	s, err := NewUnitScaler(m.UnitsPerEm())
	require.NoError(t, err)

	widths := BuildWidthTable(m, s)
	for code := range widths {
		w, ok := m.AdvanceWidth(rune(code))
		if !m.HasCodepoint(rune(code)) {
			assert.False(t, ok)
			assert.Equal(t, 0.0, widths[code], "code %d", code)
			continue
		}
		assert.InDelta(t, w*1000/m.UnitsPerEm(), widths[code], 1e-9, "code %d", code)
	}
	assert.Greater(t, widths['M'], widths['i'])

	vals, err := widths.ToPdfObject().ToFloat64Array()
	require.NoError(t, err)
	assert.Equal(t, widths[:], vals)
}
