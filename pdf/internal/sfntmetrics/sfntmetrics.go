/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package sfntmetrics reads the font-wide and per-glyph metrics of OpenType fonts using
// golang.org/x/image/font/sfnt. It handles CFF flavoured fonts ('OTTO') which the truetype
// package does not.
//
// Values are returned in font design units. This is done by requesting metrics at a ppem equal
// to the unitsPerEm: the 26.6 fixed point values returned by sfnt then hold the unscaled units.
package sfntmetrics

import (
	"errors"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/unidoc/simplefont/common"
)

// Font is an immutable snapshot of the metrics of an sfnt font.
// The underlying sfnt.Font is only read, with a fresh buffer per call, so a Font is safe for
// concurrent use.
type Font struct {
	sf   *sfnt.Font
	upem float64
	ppem fixed.Int26_6

	ascent, descent        float64
	capHeight, xHeight     float64
	xMin, yMin, xMax, yMax float64
	italicAngle            float64
	fixedPitch             bool
	psName                 string
}

// Parse parses the OpenType font in `data`.
// A font with unitsPerEm of 0 is returned without metrics so that callers can reject it.
func Parse(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	f := &Font{
		sf:   sf,
		upem: float64(sf.UnitsPerEm()),
		ppem: fixed.Int26_6(sf.UnitsPerEm()),
	}
	if f.ppem == 0 {
		common.Log.Debug("ERROR: unitsPerEm is 0")
		return f, nil
	}

	bounds, err := sf.Bounds(nil, f.ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	// sfnt uses a y axis pointing down.
	f.xMin, f.xMax = float64(bounds.Min.X), float64(bounds.Max.X)
	f.yMin, f.yMax = float64(-bounds.Max.Y), float64(-bounds.Min.Y)

	m, err := sf.Metrics(nil, f.ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	f.ascent = float64(m.Ascent)
	f.descent = -float64(m.Descent)
	f.capHeight = float64(m.CapHeight)
	f.xHeight = float64(m.XHeight)

	if post := sf.PostTable(); post != nil {
		f.italicAngle = post.ItalicAngle
		f.fixedPitch = post.IsFixedPitch
	}

	f.psName, err = sf.Name(nil, sfnt.NameIDPostScript)
	if errors.Is(err, sfnt.ErrNotFound) {
		common.Log.Debug("no PostScript name")
	} else if err != nil {
		return nil, err
	}

	common.Log.Trace("sfnt: unitsPerEm %v glyphs %d name %q", f.upem, sf.NumGlyphs(), f.psName)
	return f, nil
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() float64 { return f.upem }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.sf.NumGlyphs() }

func (f *Font) Ascent() float64 { return f.ascent }

// Descent returns the descent, negative for descenders below the baseline.
func (f *Font) Descent() float64 { return f.descent }

func (f *Font) ItalicAngle() float64 { return f.italicAngle }

// BBox returns the font bounding box as xMin, yMin, xMax, yMax.
func (f *Font) BBox() (float64, float64, float64, float64) {
	return f.xMin, f.yMin, f.xMax, f.yMax
}

// CapHeight returns the cap height. The flag is false if the font does not provide one.
func (f *Font) CapHeight() (float64, bool) {
	return f.capHeight, f.capHeight > 0
}

// XHeight returns the x-height. The flag is false if the font does not provide one.
func (f *Font) XHeight() (float64, bool) {
	return f.xHeight, f.xHeight > 0
}

func (f *Font) glyphIndex(r rune) sfnt.GlyphIndex {
	gid, err := f.sf.GlyphIndex(nil, r)
	if err != nil {
		common.Log.Debug("glyph index of %q: %v", r, err)
		return 0
	}
	if int(gid) >= f.sf.NumGlyphs() {
		return 0
	}
	return gid
}

// HasRune returns true if `r` maps to a glyph other than .notdef.
func (f *Font) HasRune(r rune) bool {
	return f.glyphIndex(r) != 0
}

// AdvanceWidth returns the advance width of the glyph mapped to `r`. The flag is false if `r`
// is not mapped.
func (f *Font) AdvanceWidth(r rune) (float64, bool) {
	gid := f.glyphIndex(r)
	if gid == 0 || f.ppem == 0 {
		return 0, false
	}
	adv, err := f.sf.GlyphAdvance(nil, gid, f.ppem, font.HintingNone)
	if err != nil {
		common.Log.Debug("ERROR: advance of glyph %d: %v", gid, err)
		return 0, false
	}
	return float64(adv), true
}

func (f *Font) PostScriptName() string { return f.psName }

func (f *Font) IsFixedPitch() bool { return f.fixedPitch }

// IsItalic returns true if the italic angle is not zero.
func (f *Font) IsItalic() bool { return f.italicAngle != 0 }
