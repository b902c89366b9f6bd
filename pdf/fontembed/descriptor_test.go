/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidoc/simplefont/pdf/core"
)

func TestBuildDescriptor(t *testing.T) {
	m := newFakeMetrics()
	m.italicAngle = -11.5
	s, err := NewUnitScaler(m.UnitsPerEm())
	require.NoError(t, err)

	d := BuildDescriptor("Test-Italic", FlagOptions{Italic: true, Symbolic: true}, m, s, nil)
	expected := Descriptor{
		FontName:    "Test-Italic",
		Flags:       68,
		FontBBox:    BBox{MinX: -97.65625, MinY: -244.140625, MaxX: 976.5625, MaxY: 927.734375},
		ItalicAngle: -11.5,
		Ascent:      927.734375,
		Descent:     -244.140625,
		CapHeight:   700.1953125,
		XHeight:     500,
	}
	if diff := cmp.Diff(expected, d, cmpopts.IgnoreFields(Descriptor{}, "FontFile")); diff != "" {
		t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDescriptorFallbacks(t *testing.T) {
	m := newFakeMetrics()
	m.hasCapHeight, m.hasXHeight = false, false
	s, err := NewUnitScaler(m.UnitsPerEm())
	require.NoError(t, err)

	d := BuildDescriptor("Test", FlagOptions{}, m, s, nil)
	assert.Equal(t, s.Scale(m.Ascent()), d.CapHeight)
	assert.Equal(t, 927.734375, d.CapHeight)
	assert.Equal(t, 0.0, d.XHeight)
	assert.Equal(t, 0.0, d.StemV)
	assert.Equal(t, FlagWord(0), d.Flags)
}

func TestDescriptorToPdfObject(t *testing.T) {
	m := newFakeMetrics()
	s, err := NewUnitScaler(m.UnitsPerEm())
	require.NoError(t, err)
	fontFile, err := core.MakeStream([]byte("font"), nil)
	require.NoError(t, err)

	dict := BuildDescriptor("Test Font", FlagOptions{Nonsymbolic: true}, m, s, fontFile).ToPdfObject()

	var keys []string
	for _, k := range dict.Keys() {
		keys = append(keys, string(k))
	}
	assert.Equal(t, []string{"Type", "FontName", "Flags", "FontBBox", "ItalicAngle", "Ascent",
		"Descent", "CapHeight", "XHeight", "StemV", "FontFile3"}, keys)

	name, ok := core.GetName(dict.Get("FontName"))
	require.True(t, ok)
	assert.Equal(t, "/Test#20Font", name.WriteString())

	flags, ok := core.GetIntVal(dict.Get("Flags"))
	require.True(t, ok)
	assert.Equal(t, 32, flags)

	bbox, ok := core.GetArray(dict.Get("FontBBox"))
	require.True(t, ok)
	assert.Equal(t, "[-97.65625 -244.140625 976.5625 927.734375]", bbox.WriteString())

	for key, expected := range map[string]float64{
		"ItalicAngle": 0, "Ascent": 927.734375, "Descent": -244.140625,
		"CapHeight": 700.1953125, "XHeight": 500, "StemV": 0,
	} {
		val, err := core.GetNumberAsFloat(dict.Get(core.PdfObjectName(key)))
		require.NoError(t, err, key)
		assert.Equal(t, expected, val, key)
	}

	stream, ok := core.GetStream(dict.Get("FontFile3"))
	require.True(t, ok)
	assert.Same(t, fontFile, stream)

	assert.Nil(t, Descriptor{FontName: "X"}.ToPdfObject().Get("FontFile3"))
}
