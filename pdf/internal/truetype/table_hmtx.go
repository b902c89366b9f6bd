/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/simplefont/common"

// hmtxTable represents the Horizontal Metrics table (hmtx).
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
type hmtxTable struct {
	hMetrics         []longHorMetric // length is numberOfHMetrics from hhea table.
	leftSideBearings []int16         // length is numGlyphs - numberOfHmetrics from maxp and hhea tables.
}

type longHorMetric struct {
	advanceWidth uint16
	lsb          int16
}

func (f *font) parseHmtx(r *byteReader) (*hmtxTable, error) {
	if f.maxp == nil || f.hhea == nil {
		common.Log.Debug("maxp or hhea table missing")
		return nil, errRequiredField
	}

	_, has, err := f.seekToTable(r, "hmtx")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("hmtx table absent")
		return nil, errRequiredField
	}

	numberOfHMetrics := int(f.hhea.numberOfHMetrics)
	if numberOfHMetrics == 0 {
		common.Log.Debug("ERROR: numberOfHMetrics is 0")
		return nil, errRangeCheck
	}

	t := &hmtxTable{}
	for i := 0; i < numberOfHMetrics; i++ {
		var lhm longHorMetric
		err := r.read(&lhm.advanceWidth, &lhm.lsb)
		if err != nil {
			return nil, err
		}

		t.hMetrics = append(t.hMetrics, lhm)
	}

	lsbLen := int(f.maxp.numGlyphs) - numberOfHMetrics
	if lsbLen < 0 {
		// Some fonts have more metrics than glyphs; the surplus is ignored.
		common.Log.Debug("numberOfHMetrics (%d) > numGlyphs (%d)", numberOfHMetrics, f.maxp.numGlyphs)
		return t, nil
	}

	err = r.readSlice(&t.leftSideBearings, lsbLen)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// advanceWidth returns the advance width of glyph `gid` in font units.
// Glyphs past the last long metric share its advance width.
func (t *hmtxTable) advanceWidth(gid GlyphIndex) uint16 {
	if len(t.hMetrics) == 0 {
		return 0
	}
	if int(gid) < len(t.hMetrics) {
		return t.hMetrics[gid].advanceWidth
	}
	return t.hMetrics[len(t.hMetrics)-1].advanceWidth
}
