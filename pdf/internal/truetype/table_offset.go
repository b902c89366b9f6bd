/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/simplefont/common"

// offsetTable is the sfnt header at the start of the font file.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, err
	}

	switch ot.sfntVersion {
	case sfntVersionTrueType, sfntVersionApple:
	default:
		common.Log.Debug("ERROR: unexpected sfnt version 0x%08X", ot.sfntVersion)
		return nil, errNotTrueType
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	return ot, nil
}

func (f *font) writeOffsetTable(w *byteWriter) error {
	if f.ot == nil {
		return errRequiredField
	}
	return w.write(f.ot.sfntVersion, f.ot.numTables, f.ot.searchRange, f.ot.entrySelector, f.ot.rangeShift)
}
