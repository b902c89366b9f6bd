/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/simplefont/common"

// os2Table represents the OS/2 metrics table. Cap height and x-height, used in font descriptors,
// are only present from version 2 onwards.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
type os2Table struct {
	// Version 0+
	version             uint16
	xAvgCharWidth       int16
	usWeightClass       uint16
	usWidthClass        uint16
	fsType              uint16
	ySubscriptXSize     int16
	ySubscriptYSize     int16
	ySubscriptXOffset   int16
	ySubscriptYOffset   int16
	ySuperscriptXSize   int16
	ySuperscriptYSize   int16
	ySuperscriptXOffset int16
	ySuperscriptYOffset int16
	yStrikeoutSize      int16
	yStrikeoutPosition  int16
	sFamilyClass        int16
	panose10            []uint8 // panose10 len = 10
	ulUnicodeRange      [4]uint32
	achVendID           tag
	fsSelection         uint16
	usFirstCharIndex    uint16
	usLastCharIndex     uint16
	sTypoAscender       int16
	sTypoDescender      int16
	sTypoLineGap        int16
	usWinAscent         uint16
	usWinDescent        uint16

	// Version 1+
	ulCodePageRange [2]uint32

	// Version 2+
	sxHeight      int16
	sCapHeight    int16
	usDefaultChar uint16
	usBreakChar   uint16
	usMaxContext  uint16
}

func (f *font) parseOS2Table(r *byteReader) (*os2Table, error) {
	_, has, err := f.seekToTable(r, "OS/2")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("OS/2 table not present")
		return nil, nil
	}

	t := &os2Table{}
	err = r.read(&t.version, &t.xAvgCharWidth, &t.usWeightClass, &t.usWidthClass, &t.fsType)
	if err != nil {
		return nil, err
	}
	if t.version > 5 {
		common.Log.Debug("OS/2 table version %d unknown, reading as version 5", t.version)
	}

	err = r.read(&t.ySubscriptXSize, &t.ySubscriptYSize, &t.ySubscriptXOffset, &t.ySubscriptYOffset,
		&t.ySuperscriptXSize, &t.ySuperscriptYSize, &t.ySuperscriptXOffset, &t.ySuperscriptYOffset,
		&t.yStrikeoutSize, &t.yStrikeoutPosition, &t.sFamilyClass)
	if err != nil {
		return nil, err
	}

	err = r.readSlice(&t.panose10, 10)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.ulUnicodeRange[0], &t.ulUnicodeRange[1], &t.ulUnicodeRange[2], &t.ulUnicodeRange[3],
		&t.achVendID, &t.fsSelection, &t.usFirstCharIndex, &t.usLastCharIndex)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.sTypoAscender, &t.sTypoDescender, &t.sTypoLineGap, &t.usWinAscent, &t.usWinDescent)
	if err != nil {
		return nil, err
	}
	if t.version < 1 {
		return t, nil
	}

	err = r.read(&t.ulCodePageRange[0], &t.ulCodePageRange[1])
	if err != nil {
		return nil, err
	}
	if t.version < 2 {
		return t, nil
	}

	// The optical point sizes of version 5 are not needed.
	err = r.read(&t.sxHeight, &t.sCapHeight, &t.usDefaultChar, &t.usBreakChar, &t.usMaxContext)
	if err != nil {
		return nil, err
	}
	common.Log.Trace("OS/2 v%d: xHeight %d capHeight %d", t.version, t.sxHeight, t.sCapHeight)

	return t, nil
}
