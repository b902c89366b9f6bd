/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/simplefont/common"

// Tables needed for a PDF simple font descriptor and width array.
// The outline tables (glyf, loca, fpgm, cvt, prep) are embedded as part of the font program and
// are not interpreted here.
//
// For simple fonts the cmap table is required as it maps the character codes to glyphs
// (PDF32000_2008 9.6.6.4 "Encodings for TrueType Fonts").

// font is a data model for truetype fonts with basic access methods.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	hmtx *hmtxTable
	cmap *cmapTable
	name *nameTable
	os2  *os2Table
	post *postTable
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return nil, errRequiredField
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}

	f.hmtx, err = f.parseHmtx(r)
	if err != nil {
		return nil, err
	}

	f.cmap, err = f.parseCmap(r)
	if err != nil {
		return nil, err
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, err
	}

	f.os2, err = f.parseOS2Table(r)
	if err != nil {
		return nil, err
	}

	f.post, err = f.parsePost(r)
	if err != nil {
		return nil, err
	}

	common.Log.Trace("Parsed font with %d tables", f.numTables())
	return f, nil
}
