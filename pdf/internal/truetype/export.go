/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"io"
	"sort"
)

// Font wraps font for outside access. All metrics are in font design units.
type Font struct {
	br *byteReader
	*font
}

// Parse parses the truetype font from `data` and returns a new Font.
func Parse(data []byte) (*Font, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader parses the truetype font from `rs` and returns a new Font.
func ParseReader(rs io.ReadSeeker) (*Font, error) {
	r := newByteReader(rs)

	fnt, err := parseFont(r)
	if err != nil {
		return nil, err
	}

	return &Font{
		br:   r,
		font: fnt,
	}, nil
}

// Validate checks the file and table checksums of `f`.
func (f *Font) Validate() error {
	return f.validate(f.br)
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() float64 {
	return float64(f.head.unitsPerEm)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return int(f.maxp.numGlyphs)
}

// Ascent returns the typographic ascent from the hhea table.
func (f *Font) Ascent() float64 {
	return float64(f.hhea.ascender)
}

// Descent returns the typographic descent from the hhea table (usually negative).
func (f *Font) Descent() float64 {
	return float64(f.hhea.descender)
}

// ItalicAngle returns the italic angle in degrees, 0 if the font has no post table.
func (f *Font) ItalicAngle() float64 {
	if f.post == nil {
		return 0
	}
	return f.post.italicAngle.Float64()
}

// BBox returns the bounding box of all glyphs as xMin, yMin, xMax, yMax.
func (f *Font) BBox() (float64, float64, float64, float64) {
	h := f.head
	return float64(h.xMin), float64(h.yMin), float64(h.xMax), float64(h.yMax)
}

// CapHeight returns the cap height from the OS/2 table. The flag is false when the OS/2 table
// is missing, older than version 2 or the value is not set.
func (f *Font) CapHeight() (float64, bool) {
	if f.os2 == nil || f.os2.version < 2 || f.os2.sCapHeight == 0 {
		return 0, false
	}
	return float64(f.os2.sCapHeight), true
}

// XHeight returns the x-height from the OS/2 table. The flag is false when the OS/2 table
// is missing, older than version 2 or the value is not set.
func (f *Font) XHeight() (float64, bool) {
	if f.os2 == nil || f.os2.version < 2 || f.os2.sxHeight == 0 {
		return 0, false
	}
	return float64(f.os2.sxHeight), true
}

// GlyphIndex returns the glyph mapped to `r` by the character map, 0 (.notdef) if none.
func (f *Font) GlyphIndex(r rune) GlyphIndex {
	return f.cmap.lookup(r)
}

// HasRune returns true if the character map maps `r` to a glyph other than .notdef.
func (f *Font) HasRune(r rune) bool {
	return f.GlyphIndex(r) != 0
}

// Runes returns the runes covered by the character map in increasing order.
func (f *Font) Runes() []rune {
	runes := make([]rune, 0, len(f.cmap.runes))
	for r := range f.cmap.runes {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// GlyphAdvance returns the advance width of glyph `gid` in font units.
func (f *Font) GlyphAdvance(gid GlyphIndex) float64 {
	return float64(f.hmtx.advanceWidth(gid))
}

// AdvanceWidth returns the advance width of the glyph mapped to `r`. The flag is false if `r`
// is not in the character map.
func (f *Font) AdvanceWidth(r rune) (float64, bool) {
	gid := f.GlyphIndex(r)
	if gid == 0 {
		return 0, false
	}
	return f.GlyphAdvance(gid), true
}

// PostScriptName returns the PostScript name of the font from the name table, if any.
func (f *Font) PostScriptName() string {
	return f.GetNameByID(nameIDPostScriptName)
}

// FamilyName returns the font family name from the name table, if any.
func (f *Font) FamilyName() string {
	return f.GetNameByID(nameIDFamily)
}

// IsFixedPitch returns true if the post table marks the font as monospaced.
func (f *Font) IsFixedPitch() bool {
	return f.post != nil && f.post.isFixedPitch != 0
}

// IsItalic returns true if the head macStyle or OS/2 fsSelection italic bits are set or the
// italic angle is non-zero.
func (f *Font) IsItalic() bool {
	if f.head.macStyle&0x02 != 0 {
		return true
	}
	if f.os2 != nil && f.os2.fsSelection&0x01 != 0 {
		return true
	}
	return f.ItalicAngle() != 0
}

// IsBold returns true if the head macStyle bold bit is set.
func (f *Font) IsBold() bool {
	return f.head.macStyle&0x01 != 0
}

// IsSymbolic returns true if the character map in use is the Windows symbol encoding.
func (f *Font) IsSymbolic() bool {
	return f.cmap.symbolic
}
