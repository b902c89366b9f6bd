/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfntmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/simplefont/pdf/internal/truetype"
)

// The sfnt based reader must agree with the truetype parser on glyf flavoured fonts.
func TestAgreesWithTrueType(t *testing.T) {
	for _, data := range [][]byte{goregular.TTF, goitalic.TTF} {
		f, err := Parse(data)
		require.NoError(t, err)
		tt, err := truetype.Parse(data)
		require.NoError(t, err)

		assert.Equal(t, tt.UnitsPerEm(), f.UnitsPerEm())
		assert.Equal(t, tt.NumGlyphs(), f.NumGlyphs())
		assert.Equal(t, tt.ItalicAngle(), f.ItalicAngle())
		assert.Equal(t, tt.IsFixedPitch(), f.IsFixedPitch())
		assert.Equal(t, tt.PostScriptName(), f.PostScriptName())

		x0, y0, x1, y1 := f.BBox()
		tx0, ty0, tx1, ty1 := tt.BBox()
		assert.Equal(t, []float64{tx0, ty0, tx1, ty1}, []float64{x0, y0, x1, y1})

		for r := rune(0); r < 256; r++ {
			assert.Equal(t, tt.HasRune(r), f.HasRune(r), "rune %q", r)
			w, ok := f.AdvanceWidth(r)
			tw, tok := tt.AdvanceWidth(r)
			assert.Equal(t, tok, ok, "rune %q", r)
			assert.Equal(t, tw, w, "rune %q", r)
		}
	}
}

func TestMetrics(t *testing.T) {
	f, err := Parse(goregular.TTF)
	require.NoError(t, err)

	assert.Greater(t, f.Ascent(), 0.0)
	assert.Less(t, f.Descent(), 0.0)
	assert.Equal(t, 0.0, f.ItalicAngle())
	assert.False(t, f.IsItalic())

	if capHeight, ok := f.CapHeight(); ok {
		assert.Greater(t, capHeight, 0.0)
		assert.Less(t, capHeight, f.UnitsPerEm())
	}

	_, ok := f.AdvanceWidth(0x10FFFF)
	assert.False(t, ok)

	it, err := Parse(goitalic.TTF)
	require.NoError(t, err)
	assert.True(t, it.IsItalic())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(nil)
	assert.Error(t, err)

	_, err = Parse([]byte("OTTO this is not a font"))
	assert.Error(t, err)

	_, err = Parse(goregular.TTF[:100])
	assert.Error(t, err)
}
