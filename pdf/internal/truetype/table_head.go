/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"errors"

	"github.com/unidoc/simplefont/common"
)

const headMagicNumber = 0x5F0F3CF5

var errHeadMagic = errors.New("magic number mismatch")

// Font header.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type headTable struct {
	majorVersion       uint16
	minorVersion       uint16
	fontRevision       fixed
	checksumAdjustment uint32
	magicNumber        uint32
	flags              uint16
	unitsPerEm         uint16
	created            longdatetime
	modified           longdatetime
	xMin               int16
	yMin               int16
	xMax               int16
	yMax               int16
	macStyle           uint16
	lowestRecPPEM      uint16
	fontDirectionHint  int16
	indexToLocFormat   int16
	glyphDataFormat    int16
}

// parse the font's *head* table from `r` in the context of `f`.
func (f *font) parseHead(r *byteReader) (*headTable, error) {
	tr, has, err := f.seekToTable(r, "head")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	if tr.length < 54 {
		common.Log.Debug("ERROR: head table too short (%d)", tr.length)
		return nil, errRangeCheck
	}

	t := &headTable{}
	err = r.read(&t.majorVersion, &t.minorVersion, &t.fontRevision)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.checksumAdjustment, &t.magicNumber)
	if err != nil {
		return nil, err
	}
	if t.magicNumber != headMagicNumber {
		common.Log.Debug("ERROR: head magic 0x%08X", t.magicNumber)
		return nil, errHeadMagic
	}

	err = r.read(&t.flags, &t.unitsPerEm, &t.created, &t.modified)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.xMin, &t.yMin, &t.xMax, &t.yMax)
	if err != nil {
		return nil, err
	}
	common.Log.Trace("head: unitsPerEm %d bbox [%d %d %d %d]", t.unitsPerEm, t.xMin, t.yMin, t.xMax, t.yMax)

	return t, r.read(&t.macStyle, &t.lowestRecPPEM, &t.fontDirectionHint, &t.indexToLocFormat, &t.glyphDataFormat)
}

func (f *font) writeHead(w *byteWriter) error {
	if f.head == nil {
		return errRequiredField
	}
	t := f.head
	err := w.write(t.majorVersion, t.minorVersion, t.fontRevision, t.checksumAdjustment, t.magicNumber)
	if err != nil {
		return err
	}

	err = w.write(t.flags, t.unitsPerEm, t.created, t.modified, t.xMin, t.yMin, t.xMax, t.yMax)
	if err != nil {
		return err
	}

	return w.write(t.macStyle, t.lowestRecPPEM, t.fontDirectionHint, t.indexToLocFormat, t.glyphDataFormat)
}
