/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"math"
)

// glyphSpaceUnits is the size of the em square in PDF glyph space.
const glyphSpaceUnits = 1000.0

// UnitScaler converts font design units to the 1000 unit em square of PDF glyph space.
type UnitScaler struct {
	factor float64
}

// NewUnitScaler returns a scaler for a font with `unitsPerEm` design units per em.
// A unitsPerEm that is not a positive finite number is an ErrInputValidation error.
func NewUnitScaler(unitsPerEm float64) (UnitScaler, error) {
	if !(unitsPerEm > 0) || math.IsInf(unitsPerEm, 1) {
		return UnitScaler{}, validationError("unitsPerEm must be positive, got %v", unitsPerEm)
	}
	return UnitScaler{factor: glyphSpaceUnits / unitsPerEm}, nil
}

// Factor returns the scale factor, 1000/unitsPerEm.
func (s UnitScaler) Factor() float64 {
	return s.factor
}

// Scale converts `v` from font units to glyph space units.
func (s UnitScaler) Scale(v float64) float64 {
	return v * s.factor
}

// ScaledMetrics holds the linear font-wide metrics in glyph space units.
// CapHeight and XHeight are nil if the font does not provide them.
type ScaledMetrics struct {
	Factor    float64
	BBox      BBox
	Ascent    float64
	Descent   float64
	CapHeight *float64
	XHeight   *float64
}

// ScaleMetrics scales the font-wide metrics of `m`.
func (s UnitScaler) ScaleMetrics(m FontMetrics) ScaledMetrics {
	bbox := m.BBox()
	sm := ScaledMetrics{
		Factor: s.factor,
		BBox: BBox{
			MinX: s.Scale(bbox.MinX),
			MinY: s.Scale(bbox.MinY),
			MaxX: s.Scale(bbox.MaxX),
			MaxY: s.Scale(bbox.MaxY),
		},
		Ascent:  s.Scale(m.Ascent()),
		Descent: s.Scale(m.Descent()),
	}
	if capHeight, ok := m.CapHeight(); ok {
		v := s.Scale(capHeight)
		sm.CapHeight = &v
	}
	if xHeight, ok := m.XHeight(); ok {
		v := s.Scale(xHeight)
		sm.XHeight = &v
	}
	return sm
}
