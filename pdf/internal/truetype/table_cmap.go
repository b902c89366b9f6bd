/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/unidoc/simplefont/common"
)

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// This table defines the mapping of character codes to the glyph index values used
// in the font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version         uint16
	numTables       uint16
	encodingRecords []encodingRecord // len == numTables

	// Processed data: the selected subtable as rune -> GID. Runes mapped to .notdef are left out.
	selected *encodingRecord
	format   uint16
	symbolic bool
	runes    map[rune]GlyphIndex
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

/*
Regardless of the encoding scheme, character codes that do not correspond to any glyph in the font should be
mapped to glyph index 0. The glyph at this location must be a special glyph representing a missing character,
commonly known as .notdef.
*/

// Subtable preference, most complete unicode coverage first.
var cmapPreference = []struct {
	platformID uint16
	encodingID uint16
}{
	{3, 10}, // windows, unicode full repertoire
	{0, 6},  // unicode full repertoire
	{0, 4},  // unicode 2.0+ full repertoire
	{3, 1},  // windows, unicode BMP
	{0, 3},  // unicode 2.0+ BMP
	{0, 2},
	{0, 1},
	{0, 0},
	{3, 0}, // windows, symbol
	{1, 0}, // macintosh, roman
}

// maxCmapRunes bounds the number of runes loaded from a single subtable.
const maxCmapRunes = 0x110000

func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("cmap table absent")
		return nil, errRequiredField
	}

	t := &cmapTable{}
	err = r.read(&t.version, &t.numTables)
	if err != nil {
		return nil, err
	}

	for i := 0; i < int(t.numTables); i++ {
		var rec encodingRecord
		err = r.read(&rec.platformID, &rec.encodingID, &rec.offset)
		if err != nil {
			return nil, err
		}
		if int64(rec.offset) >= int64(tr.length) {
			common.Log.Debug("cmap subtable %d/%d outside table", rec.platformID, rec.encodingID)
			continue
		}
		t.encodingRecords = append(t.encodingRecords, rec)
	}

	for _, pref := range cmapPreference {
		for i := range t.encodingRecords {
			rec := &t.encodingRecords[i]
			if rec.platformID != pref.platformID || rec.encodingID != pref.encodingID {
				continue
			}

			err = r.Seek(int64(tr.offset) + int64(rec.offset))
			if err != nil {
				return nil, err
			}
			runes, format, err := f.parseCmapSubtable(r, rec)
			if err == errUnsupportedFormat {
				common.Log.Debug("cmap %d/%d: unsupported subtable format %d", rec.platformID, rec.encodingID, format)
				continue
			}
			if err != nil {
				return nil, err
			}

			t.selected = rec
			t.format = format
			t.symbolic = rec.platformID == 3 && rec.encodingID == 0
			t.runes = runes
			common.Log.Debug("cmap: using %d/%d format %d (%d runes)", rec.platformID, rec.encodingID, format, len(runes))
			return t, nil
		}
	}

	common.Log.Debug("ERROR: no usable cmap subtable")
	return nil, errRequiredField
}

// parseCmapSubtable parses the subtable at the current position of `r`.
func (f *font) parseCmapSubtable(r *byteReader, rec *encodingRecord) (map[rune]GlyphIndex, uint16, error) {
	var format uint16
	err := r.read(&format)
	if err != nil {
		return nil, 0, err
	}

	codes := map[uint32]GlyphIndex{}
	switch format {
	case 0:
		err = f.parseCmapFormat0(r, codes)
	case 4:
		err = f.parseCmapFormat4(r, codes)
	case 6:
		err = f.parseCmapFormat6(r, codes)
	case 12:
		err = f.parseCmapFormat12(r, codes)
	default:
		return nil, format, errUnsupportedFormat
	}
	if err != nil {
		return nil, format, err
	}

	runes := make(map[rune]GlyphIndex, len(codes))
	for code, gid := range codes {
		if gid == 0 || int(gid) >= int(f.maxp.numGlyphs) {
			continue
		}
		switch {
		case rec.platformID == 1 && rec.encodingID == 0:
			if code > 0xFF {
				continue
			}
			runes[charmap.Macintosh.DecodeByte(byte(code))] = gid
		case rec.platformID == 3 && rec.encodingID == 0:
			// Symbol fonts place their codes in the private use area U+F000..U+F0FF.
			runes[rune(code)] = gid
			if code >= 0xF000 && code <= 0xF0FF {
				if _, has := runes[rune(code-0xF000)]; !has {
					runes[rune(code-0xF000)] = gid
				}
			}
		default:
			runes[rune(code)] = gid
		}
	}
	return runes, format, nil
}

func (f *font) parseCmapFormat0(r *byteReader, codes map[uint32]GlyphIndex) error {
	var length, language uint16
	err := r.read(&length, &language)
	if err != nil {
		return err
	}

	var glyphIDs []uint8
	err = r.readSlice(&glyphIDs, 256)
	if err != nil {
		return err
	}
	for code, gid := range glyphIDs {
		codes[uint32(code)] = GlyphIndex(gid)
	}
	return nil
}

func (f *font) parseCmapFormat4(r *byteReader, codes map[uint32]GlyphIndex) error {
	var length, language, segCountX2, searchRange, entrySelector, rangeShift uint16
	err := r.read(&length, &language, &segCountX2, &searchRange, &entrySelector, &rangeShift)
	if err != nil {
		return err
	}
	if segCountX2%2 != 0 {
		common.Log.Debug("ERROR: odd segCountX2 (%d)", segCountX2)
		return errRangeCheck
	}
	segCount := int(segCountX2 / 2)

	var endCode, startCode, idRangeOffset []uint16
	var idDelta []int16
	err = r.readSlice(&endCode, segCount)
	if err != nil {
		return err
	}
	err = r.Skip(2) // reservedPad
	if err != nil {
		return err
	}
	err = r.readSlice(&startCode, segCount)
	if err != nil {
		return err
	}
	err = r.readSlice(&idDelta, segCount)
	if err != nil {
		return err
	}
	err = r.readSlice(&idRangeOffset, segCount)
	if err != nil {
		return err
	}

	headerLen := 16 + 8*segCount
	numGlyphIDs := (int(length) - headerLen) / 2
	if numGlyphIDs < 0 {
		numGlyphIDs = 0
	}
	var glyphIDArray []uint16
	err = r.readSlice(&glyphIDArray, numGlyphIDs)
	if err != nil {
		return err
	}

	for i := 0; i < segCount; i++ {
		start, end := uint32(startCode[i]), uint32(endCode[i])
		if start > end {
			common.Log.Debug("cmap format 4: skipping inverted segment %d (%d > %d)", i, start, end)
			continue
		}
		for c := start; c <= end && c != 0xFFFF; c++ {
			var gid uint16
			if idRangeOffset[i] == 0 {
				gid = uint16(int(c) + int(idDelta[i]))
			} else {
				idx := int(idRangeOffset[i])/2 + int(c-start) - (segCount - i)
				if idx < 0 || idx >= len(glyphIDArray) {
					continue
				}
				gid = glyphIDArray[idx]
				if gid != 0 {
					gid = uint16(int(gid) + int(idDelta[i]))
				}
			}
			codes[c] = GlyphIndex(gid)
		}
	}
	return nil
}

func (f *font) parseCmapFormat6(r *byteReader, codes map[uint32]GlyphIndex) error {
	var length, language, firstCode, entryCount uint16
	err := r.read(&length, &language, &firstCode, &entryCount)
	if err != nil {
		return err
	}

	var glyphIDs []uint16
	err = r.readSlice(&glyphIDs, int(entryCount))
	if err != nil {
		return err
	}
	for i, gid := range glyphIDs {
		codes[uint32(firstCode)+uint32(i)] = GlyphIndex(gid)
	}
	return nil
}

func (f *font) parseCmapFormat12(r *byteReader, codes map[uint32]GlyphIndex) error {
	var reserved uint16
	var length, language, numGroups uint32
	err := r.read(&reserved, &length, &language, &numGroups)
	if err != nil {
		return err
	}

	for i := 0; i < int(numGroups); i++ {
		var startCharCode, endCharCode, startGlyphID uint32
		err = r.read(&startCharCode, &endCharCode, &startGlyphID)
		if err != nil {
			return err
		}
		if startCharCode > endCharCode || endCharCode >= maxCmapRunes {
			common.Log.Debug("cmap format 12: invalid group %d (%d-%d)", i, startCharCode, endCharCode)
			return errRangeCheck
		}
		if len(codes)+int(endCharCode-startCharCode) >= maxCmapRunes {
			return errRangeCheck
		}
		for c := startCharCode; c <= endCharCode; c++ {
			gid := startGlyphID + (c - startCharCode)
			if gid > 0xFFFF {
				break
			}
			codes[c] = GlyphIndex(gid)
		}
	}
	return nil
}

// lookup returns the glyph index for `r`, 0 (.notdef) if not mapped.
func (t *cmapTable) lookup(r rune) GlyphIndex {
	if t == nil {
		return 0
	}
	return t.runes[r]
}
