/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"github.com/unidoc/simplefont/pdf/core"
)

// Simple font code range.
const (
	FirstChar = 0
	LastChar  = 255
)

// WidthTable holds the glyph space advance widths of the codes FirstChar..LastChar.
type WidthTable [LastChar - FirstChar + 1]float64

// BuildWidthTable returns the widths of codes 0..255, taking code c as the rune U+00c.
// Codes outside the character set of `m` get width 0.
func BuildWidthTable(m FontMetrics, s UnitScaler) WidthTable {
	var widths WidthTable
	for code := FirstChar; code <= LastChar; code++ {
		r := rune(code)
		if !m.HasCodepoint(r) {
			continue
		}
		w, ok := m.AdvanceWidth(r)
		if !ok {
			continue
		}
		widths[code-FirstChar] = s.Scale(w)
	}
	return widths
}

// ToPdfObject returns the widths as a PDF array.
func (w WidthTable) ToPdfObject() *core.PdfObjectArray {
	return core.MakeArrayFromFloats(w[:])
}
