/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"encoding/binary"
	"errors"

	"github.com/unidoc/simplefont/common"
	"github.com/unidoc/simplefont/pdf/internal/sfntmetrics"
	"github.com/unidoc/simplefont/pdf/internal/truetype"
)

// BBox is a font bounding box in font units, or in glyph space once scaled.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// FontMetrics is the read-only view of a parsed font used for embedding.
// All linear values are in font design units.
type FontMetrics interface {
	UnitsPerEm() float64
	Ascent() float64
	Descent() float64
	// ItalicAngle is in degrees counter-clockwise from the vertical.
	ItalicAngle() float64
	BBox() BBox
	CapHeight() (float64, bool)
	XHeight() (float64, bool)
	// HasCodepoint reports whether `r` is in the character set of the font.
	HasCodepoint(r rune) bool
	AdvanceWidth(r rune) (float64, bool)
}

// StyleHints is implemented by metrics that know the style of the font. Used by SuggestFlags.
type StyleHints interface {
	IsFixedPitch() bool
	IsItalic() bool
}

// Named is implemented by metrics that carry the PostScript name of the font.
type Named interface {
	PostScriptName() string
}

// sfnt version tags.
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionApple    = 0x74727565 // 'true'
	sfntVersionCFF      = 0x4F54544F // 'OTTO'
	sfntCollection      = 0x74746366 // 'ttcf'
)

var errUnknownFormat = errors.New("unknown font format")

// LoadMetrics parses the font program in `data` with the parser matching its sfnt version.
// Errors are of kind ErrFontParse.
func LoadMetrics(data []byte) (FontMetrics, error) {
	if len(data) < 4 {
		return nil, wrapError(ErrFontParse, errUnknownFormat)
	}

	version := binary.BigEndian.Uint32(data)
	switch version {
	case sfntVersionTrueType, sfntVersionApple:
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, wrapError(ErrFontParse, err)
		}
		common.Log.Debug("TrueType font %q: %d glyphs", f.PostScriptName(), f.NumGlyphs())
		return trueTypeMetrics{f}, nil
	case sfntVersionCFF:
		f, err := sfntmetrics.Parse(data)
		if err != nil {
			return nil, wrapError(ErrFontParse, err)
		}
		common.Log.Debug("OpenType CFF font %q: %d glyphs", f.PostScriptName(), f.NumGlyphs())
		return sfntMetrics{f}, nil
	case sfntCollection:
		common.Log.Debug("ERROR: font collections are not supported")
	default:
		common.Log.Debug("ERROR: unknown sfnt version 0x%08X", version)
	}
	return nil, wrapError(ErrFontParse, errUnknownFormat)
}

// trueTypeMetrics adapts the TrueType parser. Validate, IsSymbolic and the name and style
// accessors are promoted from truetype.Font.
type trueTypeMetrics struct {
	*truetype.Font
}

func (m trueTypeMetrics) BBox() BBox {
	minX, minY, maxX, maxY := m.Font.BBox()
	return BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (m trueTypeMetrics) HasCodepoint(r rune) bool {
	return m.HasRune(r)
}

// sfntMetrics adapts the x/image/font/sfnt based reader.
type sfntMetrics struct {
	*sfntmetrics.Font
}

func (m sfntMetrics) BBox() BBox {
	minX, minY, maxX, maxY := m.Font.BBox()
	return BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (m sfntMetrics) HasCodepoint(r rune) bool {
	return m.HasRune(r)
}
