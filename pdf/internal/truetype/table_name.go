/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/unidoc/simplefont/common"
	"github.com/unidoc/simplefont/pdf/internal/strutils"
)

// Name IDs used by this package.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
const (
	nameIDFamily         = 1
	nameIDPostScriptName = 6
)

// nameTable represents the Naming table (name).
// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names, style names, and so on.
type nameTable struct {
	format       uint16
	count        uint16
	stringOffset offset16
	nameRecords  []*nameRecord // len = count.
}

// Each string in the string storage is referenced by a name record.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
	data       []byte // actual string data.
}

// GetNameByID returns the entry with `nameID` from the name table, preferring the Windows
// platform records. An empty string is returned if nothing is found.
func (f *font) GetNameByID(nameID int) string {
	if f == nil || f.name == nil {
		common.Log.Debug("ERROR: Font or name not set")
		return ""
	}

	var fallback string
	for _, nr := range f.name.nameRecords {
		if int(nr.nameID) != nameID {
			continue
		}
		decoded := nr.Decoded()
		if nr.platformID == 3 && decoded != "" {
			return decoded
		}
		if fallback == "" {
			fallback = decoded
		}
	}
	return fallback
}

// makePrintable replaces unprintable runes with quotes runes, returning printable string.
func makePrintable(str string) string {
	var buf bytes.Buffer
	for _, r := range str {
		if unicode.IsPrint(r) || r == '\n' {
			buf.WriteRune(r)
		} else {
			buf.WriteString(strconv.QuoteRune(r))
		}
	}
	return buf.String()
}

// Decoded attempts to decode the underlying data and convert to a string.
func (nr nameRecord) Decoded() string {
	switch nr.platformID {
	case 0: // unicode, always UTF-16BE.
		return makePrintable(strutils.UTF16ToString(nr.data))
	case 1: // macintosh
		if nr.encodingID != 0 {
			break
		}
		var decoded strings.Builder
		for _, val := range nr.data {
			decoded.WriteRune(charmap.Macintosh.DecodeByte(val))
		}
		return makePrintable(decoded.String())

	case 3: // windows
		// When building a Unicode font for Windows, the platform ID should be 3 and the encoding ID should be 1,
		// and the referenced string data must be encoded in UTF-16BE. When building a symbol font for Windows,
		// the platform ID should be 3 and the encoding ID should be 0, and the referenced string data must be
		// encoded in UTF-16BE. (https://docs.microsoft.com/en-us/typography/opentype/spec/name).
		if nr.encodingID == 0 || nr.encodingID == 1 || nr.encodingID == 10 {
			return makePrintable(strutils.UTF16ToString(nr.data))
		}
	}

	return makePrintable(string(nr.data))
}

func (f *font) parseNameTable(r *byteReader) (*nameTable, error) {
	tr, has, err := f.seekToTable(r, "name")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	t := &nameTable{}
	err = r.read(&t.format, &t.count, &t.stringOffset)
	if err != nil {
		return nil, err
	}
	if t.format > 1 {
		common.Log.Debug("ERROR: format > 1 (%d)", t.format)
		return nil, errRangeCheck
	}

	for i := 0; i < int(t.count); i++ {
		var nr nameRecord
		err = r.read(&nr.platformID, &nr.encodingID, &nr.languageID, &nr.nameID, &nr.length, &nr.offset)
		if err != nil {
			return nil, err
		}
		t.nameRecords = append(t.nameRecords, &nr)
	}

	// Get the actual string data. Records pointing outside the table are dropped, the names are
	// informational only.
	valid := t.nameRecords[:0]
	for _, nr := range t.nameRecords {
		if int(t.stringOffset)+int(nr.offset)+int(nr.length) > int(tr.length) {
			common.Log.Debug("name string offset outside table (id %d)", nr.nameID)
			continue
		}

		err = r.Seek(int64(t.stringOffset) + int64(tr.offset) + int64(nr.offset))
		if err != nil {
			return nil, err
		}

		err = r.readBytes(&nr.data, int(nr.length))
		if err != nil {
			return nil, err
		}
		valid = append(valid, nr)
	}
	t.nameRecords = valid

	common.Log.Debug("Name records: %d", len(t.nameRecords))
	for _, nr := range t.nameRecords {
		common.Log.Trace("%d %d %d - '%s' (%d)", nr.platformID, nr.encodingID, nr.nameID, nr.Decoded(), len(nr.data))
	}

	return t, nil
}
