/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"github.com/unidoc/simplefont/pdf/core"
)

// Descriptor holds the entries of a font descriptor dictionary, in glyph space units.
// See section 9.8 of PDF 32000-1:2008.
type Descriptor struct {
	FontName    string
	Flags       FlagWord
	FontBBox    BBox
	ItalicAngle float64
	Ascent      float64
	Descent     float64
	CapHeight   float64
	XHeight     float64
	StemV       float64 // always 0, the stem width is not derived from the outlines.

	// FontFile is the embedded font program, written as /FontFile3.
	FontFile *core.PdfObjectStream
}

// BuildDescriptor returns the descriptor of the font `m` named `name`.
// A missing cap height falls back to the ascent, a missing x-height to 0.
func BuildDescriptor(name string, options FlagOptions, m FontMetrics, s UnitScaler, fontFile *core.PdfObjectStream) Descriptor {
	sm := s.ScaleMetrics(m)

	d := Descriptor{
		FontName:    name,
		Flags:       options.Encode(),
		FontBBox:    sm.BBox,
		ItalicAngle: m.ItalicAngle(),
		Ascent:      sm.Ascent,
		Descent:     sm.Descent,
		CapHeight:   sm.Ascent,
		FontFile:    fontFile,
	}
	if sm.CapHeight != nil {
		d.CapHeight = *sm.CapHeight
	}
	if sm.XHeight != nil {
		d.XHeight = *sm.XHeight
	}
	return d
}

// ToPdfObject returns the /FontDescriptor dictionary. The font file entry is omitted when
// FontFile is nil.
func (d Descriptor) ToPdfObject() *core.PdfObjectDictionary {
	dict := core.MakeDict()
	dict.Set("Type", core.MakeName("FontDescriptor"))
	dict.Set("FontName", core.MakeName(d.FontName))
	dict.Set("Flags", core.MakeInteger(int64(d.Flags)))
	dict.Set("FontBBox", core.MakeArrayFromFloats([]float64{
		d.FontBBox.MinX, d.FontBBox.MinY, d.FontBBox.MaxX, d.FontBBox.MaxY,
	}))
	dict.Set("ItalicAngle", core.MakeFloat(d.ItalicAngle))
	dict.Set("Ascent", core.MakeFloat(d.Ascent))
	dict.Set("Descent", core.MakeFloat(d.Descent))
	dict.Set("CapHeight", core.MakeFloat(d.CapHeight))
	dict.Set("XHeight", core.MakeFloat(d.XHeight))
	dict.Set("StemV", core.MakeFloat(d.StemV))
	if d.FontFile != nil {
		dict.Set("FontFile3", d.FontFile)
	}
	return dict
}
