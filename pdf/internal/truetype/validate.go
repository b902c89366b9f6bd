/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"errors"
	"io"

	"github.com/unidoc/simplefont/common"
)

// checksumMagic is the value the whole font checksum, including the head checksumAdjustment, adds up to.
const checksumMagic = 0xB1B0AFBA

var (
	errFileChecksum  = errors.New("file checksum mismatch")
	errTableChecksum = errors.New("table checksum mismatch")
)

// validate font data model `f` in `r`. Checks if required tables are present and whether
// table checksums are correct.
func (f *font) validate(r *byteReader) error {
	if f.trec == nil {
		common.Log.Debug("Table records missing")
		return errRequiredField
	}
	if f.ot == nil {
		common.Log.Debug("Offsets table missing")
		return errRequiredField
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return errRequiredField
	}

	err := r.Seek(0)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(r.reader)
	if err != nil {
		return err
	}

	headRec, ok := f.trec.trMap["head"]
	if !ok || headRec.length < 12 {
		common.Log.Debug("head not set")
		return errRequiredField
	}
	hoff := int64(headRec.offset)

	// The checksumAdjustment is excluded (counted as 0) from both checksums.
	zeroed := make([]byte, len(data))
	copy(zeroed, data)
	zeroed[hoff+8], zeroed[hoff+9], zeroed[hoff+10], zeroed[hoff+11] = 0, 0, 0, 0

	common.Log.Debug("Validating entire font")
	adjustment := checksumMagic - tableChecksum(zeroed)
	if f.head.checksumAdjustment != adjustment {
		common.Log.Debug("checksumAdjustment 0x%08X != 0x%08X", f.head.checksumAdjustment, adjustment)
		return errFileChecksum
	}

	common.Log.Debug("Validating font tables")
	for _, tr := range f.trec.list {
		start := int64(tr.offset)
		end := start + int64(tr.length)
		if end > int64(len(zeroed)) {
			common.Log.Debug("Range check error (%s)", tr.tableTag)
			return errRangeCheck
		}

		checksum := tableChecksum(zeroed[start:end])
		if tr.checksum != checksum {
			common.Log.Debug("Invalid checksum for %s (%d != %d)", tr.tableTag, checksum, tr.checksum)
			return errTableChecksum
		}
	}

	return nil
}
