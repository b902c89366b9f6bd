/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"bytes"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidoc/simplefont/pdf/core"
	"github.com/unidoc/simplefont/pdf/internal/strutils"
)

// cffTestFont describes a minimal CFF flavoured OpenType font with the glyphs .notdef, 'A' and
// 'B'. The charstrings are bare endchar operators, only the metrics tables carry data.
type cffTestFont struct {
	unitsPerEm             uint16
	xMin, yMin, xMax, yMax int16
	ascender, descender    int16
	capHeight, xHeight     int16
	italicAngle            int32 // 16.16 fixed.
	advances               [3]uint16
	psName                 string
}

func defaultCFFTestFont() cffTestFont {
	return cffTestFont{
		unitsPerEm:  1000,
		xMin:        -50,
		yMin:        -250,
		xMax:        1100,
		yMax:        900,
		ascender:    800,
		descender:   -200,
		capHeight:   700,
		xHeight:     500,
		italicAngle: -10 << 16,
		advances:    [3]uint16{500, 1366, 1024},
		psName:      "TestCFF-Italic",
	}
}

func packFields(t *testing.T, fields ...interface{}) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, f := range fields {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, f))
	}
	return buf.Bytes()
}

// bytes serializes `tf` as an 'OTTO' sfnt file. Table checksums are left 0.
func (tf cffTestFont) bytes(t *testing.T) []byte {
	t.Helper()

	// Top DICT: CharStrings INDEX at offset 30 (28 int16 operand, operator 17) and an empty
	// Private DICT (size 0, offset 0, operator 18).
	topDict := []byte{28, 0, 30, 17, 28, 0, 0, 28, 0, 0, 18}
	cff := packFields(t,
		[]byte{1, 0, 4, 1}, // header
		uint16(1), uint8(1), []byte{1, 2}, []byte("T"), // Name INDEX
		uint16(1), uint8(1), []byte{1, byte(1 + len(topDict))}, topDict, // Top DICT INDEX
		uint16(0), // String INDEX
		uint16(0), // Global Subrs INDEX
		uint16(3), uint8(1), []byte{1, 2, 3, 4}, []byte{14, 14, 14}, // CharStrings INDEX
	)

	head := packFields(t,
		uint16(1), uint16(0), uint32(0x00010000), uint32(0), uint32(0x5F0F3CF5),
		uint16(0), tf.unitsPerEm, int64(0), int64(0),
		tf.xMin, tf.yMin, tf.xMax, tf.yMax,
		uint16(0), uint16(8), int16(2), int16(0), int16(0),
	)

	hhea := packFields(t,
		uint16(1), uint16(0), tf.ascender, tf.descender, int16(0),
		tf.advances[1], int16(0), int16(0), int16(0),
		int16(1), int16(0), int16(0),
		[4]int16{}, int16(0), uint16(len(tf.advances)),
	)

	var hmtx []byte
	for _, adv := range tf.advances {
		hmtx = append(hmtx, packFields(t, adv, int16(0))...)
	}

	// Version 0.5 maxp, as used by CFF fonts.
	maxp := packFields(t, uint32(0x00005000), uint16(len(tf.advances)))

	os2 := make([]byte, 96)
	binary.BigEndian.PutUint16(os2[0:], 2)
	binary.BigEndian.PutUint16(os2[86:], uint16(tf.xHeight))
	binary.BigEndian.PutUint16(os2[88:], uint16(tf.capHeight))

	post := packFields(t, uint32(0x00030000), tf.italicAngle, int16(-100), int16(50), uint32(0), [4]uint32{})

	// Windows Unicode BMP format 4 subtable: one segment 'A'..'B' -> glyphs 1..2 and the
	// terminating 0xFFFF segment.
	cmap := packFields(t,
		uint16(0), uint16(1), uint16(3), uint16(1), uint32(12),
		uint16(4), uint16(32), uint16(0), uint16(4), uint16(4), uint16(1), uint16(0),
		[]uint16{'B', 0xFFFF}, uint16(0), []uint16{'A', 0xFFFF},
		[]int16{1 - 'A', 1}, []uint16{0, 0},
	)

	psName := strutils.StringToUTF16(tf.psName)
	name := packFields(t,
		uint16(0), uint16(1), uint16(6+12),
		uint16(3), uint16(1), uint16(0x409), uint16(6), uint16(len(psName)), uint16(0),
		psName,
	)

	tables := map[string][]byte{
		"CFF ": cff, "OS/2": os2, "cmap": cmap, "head": head, "hhea": hhea,
		"hmtx": hmtx, "maxp": maxp, "name": name, "post": post,
	}
	var tags []string
	for tg := range tables {
		tags = append(tags, tg)
	}
	sort.Strings(tags)

	var records, body bytes.Buffer
	offset := 12 + 16*len(tags)
	for _, tg := range tags {
		data := tables[tg]
		records.Write(packFields(t, []byte(tg), uint32(0), uint32(offset), uint32(len(data))))
		body.Write(data)
		for body.Len()%4 != 0 {
			body.WriteByte(0)
		}
		offset = 12 + 16*len(tags) + body.Len()
	}

	out := packFields(t, uint32(sfntVersionCFF), uint16(len(tags)), uint16(0), uint16(0), uint16(0))
	out = append(out, records.Bytes()...)
	return append(out, body.Bytes()...)
}

func TestLoadMetricsCFF(t *testing.T) {
	tf := defaultCFFTestFont()
	m, err := LoadMetrics(tf.bytes(t))
	require.NoError(t, err)
	_, ok := m.(sfntMetrics)
	require.True(t, ok, "%T", m)

	assert.Equal(t, 1000.0, m.UnitsPerEm())
	// The y axis of the bounding box and the sign of the descent are in PDF orientation.
	assert.Equal(t, BBox{MinX: -50, MinY: -250, MaxX: 1100, MaxY: 900}, m.BBox())
	assert.Equal(t, 800.0, m.Ascent())
	assert.Equal(t, -200.0, m.Descent())
	assert.Equal(t, -10.0, m.ItalicAngle())

	capHeight, ok := m.CapHeight()
	assert.True(t, ok)
	assert.Equal(t, 700.0, capHeight)
	xHeight, ok := m.XHeight()
	assert.True(t, ok)
	assert.Equal(t, 500.0, xHeight)

	assert.True(t, m.HasCodepoint('A'))
	assert.True(t, m.HasCodepoint('B'))
	assert.False(t, m.HasCodepoint('C'))
	w, ok := m.AdvanceWidth('A')
	assert.True(t, ok)
	assert.Equal(t, 1366.0, w)
	_, ok = m.AdvanceWidth('C')
	assert.False(t, ok)

	named, ok := m.(Named)
	require.True(t, ok)
	assert.Equal(t, "TestCFF-Italic", named.PostScriptName())

	assert.Equal(t, FlagOptions{Italic: true, Nonsymbolic: true}, SuggestFlags(m))
	_, ok = m.(interface{ Validate() error })
	assert.False(t, ok)
}

func TestLoadMetricsCFFNoHeights(t *testing.T) {
	tf := defaultCFFTestFont()
	tf.capHeight, tf.xHeight = 0, 0

	m, err := LoadMetrics(tf.bytes(t))
	require.NoError(t, err)
	_, ok := m.CapHeight()
	assert.False(t, ok)
	_, ok = m.XHeight()
	assert.False(t, ok)
}

func TestEmbedCFF(t *testing.T) {
	data := defaultCFFTestFont().bytes(t)
	e, err := NewEmbedder("TestCFF-Italic", data, FlagOptions{Italic: true, Nonsymbolic: true})
	require.NoError(t, err)

	ef, err := e.Build()
	require.NoError(t, err)
	d := ef.Descriptor
	assert.Equal(t, BBox{MinX: -50, MinY: -250, MaxX: 1100, MaxY: 900}, d.FontBBox)
	assert.Equal(t, 800.0, d.Ascent)
	assert.Equal(t, -200.0, d.Descent)
	assert.Equal(t, 700.0, d.CapHeight)
	assert.Equal(t, 500.0, d.XHeight)
	assert.Equal(t, -10.0, d.ItalicAngle)
	assert.Equal(t, 1366.0, ef.Widths['A'])
	assert.Equal(t, 1024.0, ef.Widths['B'])
	assert.Equal(t, 0.0, ef.Widths['C'])

	decoded, err := core.NewFlateEncoder().DecodeStream(ef.FontFile)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}
