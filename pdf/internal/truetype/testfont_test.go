/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unidoc/simplefont/pdf/internal/strutils"
)

// testFont describes a minimal synthetic TrueType font. Only the tables read by the parser
// are written; there are no outlines.
type testFont struct {
	unitsPerEm             uint16
	xMin, yMin, xMax, yMax int16
	ascender, descender    int16
	macStyle               uint16
	advances               []uint16 // one per glyph, glyph 0 is .notdef.

	cmapFormat     uint16 // 4 or 12.
	cmapPlatformID uint16
	cmapEncodingID uint16
	cmap           map[uint32]uint16 // code -> gid.

	os2Version         uint16 // ignored if noOS2.
	noOS2              bool
	capHeight, xHeight int16

	italicAngle fixed
	fixedPitch  bool
	psName      string
}

func defaultTestFont() testFont {
	return testFont{
		unitsPerEm:     2048,
		xMin:           -200,
		yMin:           -500,
		xMax:           2000,
		yMax:           1900,
		ascender:       1900,
		descender:      -500,
		advances:       []uint16{1000, 500, 1200, 1100},
		cmapFormat:     4,
		cmapPlatformID: 3,
		cmapEncodingID: 1,
		cmap:           map[uint32]uint16{'A': 2, 'B': 3, ' ': 1},
		os2Version:     2,
		capHeight:      1400,
		xHeight:        1000,
		psName:         "TestFont-Regular",
	}
}

// bytes serializes `tf` as an sfnt file with valid checksums.
func (tf testFont) bytes(t *testing.T) []byte {
	t.Helper()

	f := &font{
		head: &headTable{
			majorVersion: 1,
			fontRevision: 0x00010000,
			magicNumber:  headMagicNumber,
			unitsPerEm:   tf.unitsPerEm,
			xMin:         tf.xMin,
			yMin:         tf.yMin,
			xMax:         tf.xMax,
			yMax:         tf.yMax,
			macStyle:     tf.macStyle,
		},
		hhea: &hheaTable{
			majorVersion:     1,
			ascender:         fword(tf.ascender),
			descender:        fword(tf.descender),
			numberOfHMetrics: uint16(len(tf.advances)),
		},
		maxp: &maxpTable{
			version:   0x00010000,
			numGlyphs: uint16(len(tf.advances)),
		},
		post: &postTable{
			version:     0x00030000,
			italicAngle: tf.italicAngle,
		},
	}
	if tf.fixedPitch {
		f.post.isFixedPitch = 1
	}

	tables := map[string][]byte{
		"head": writeTable(t, f.writeHead),
		"hhea": writeTable(t, f.writeHhea),
		"maxp": writeTable(t, f.writeMaxp),
		"post": writeTable(t, f.writePost),
		"hmtx": tf.hmtxBytes(t),
		"cmap": tf.cmapBytes(t),
		"name": tf.nameBytes(t),
	}
	if !tf.noOS2 {
		tables["OS/2"] = tf.os2Bytes(t)
	}

	var tags []string
	for name := range tables {
		tags = append(tags, name)
	}
	sort.Strings(tags)

	f.ot = &offsetTable{
		sfntVersion: sfntVersionTrueType,
		numTables:   uint16(len(tags)),
	}
	f.trec = &tableRecords{trMap: map[string]tableRecord{}}

	var body bytes.Buffer
	headOffset := 0
	for _, tg := range tags {
		offset := 12 + 16*len(tags) + body.Len()
		if tg == "head" {
			headOffset = offset
		}

		tw := newByteWriter(&body)
		require.NoError(t, tw.writeSlice(tables[tg]))
		f.trec.list = append(f.trec.list, tableRecord{
			tableTag: makeTag(tg),
			checksum: tw.checksum(),
			offset:   offset32(offset),
			length:   uint32(tw.bufferedLen()),
		})
		require.NoError(t, tw.padding())
		require.NoError(t, tw.flush())
	}

	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, f.writeOffsetTable(bw))
	require.NoError(t, f.writeTableRecords(bw))
	require.NoError(t, bw.flush())
	buf.Write(body.Bytes())

	data := buf.Bytes()
	binary.BigEndian.PutUint32(data[headOffset+8:], checksumMagic-tableChecksum(data))
	return data
}

func writeTable(t *testing.T, fn func(w *byteWriter) error) []byte {
	t.Helper()
	bw := newByteWriter(nil)
	require.NoError(t, fn(bw))
	return append([]byte(nil), bw.buffer.Bytes()...)
}

func (tf testFont) hmtxBytes(t *testing.T) []byte {
	bw := newByteWriter(nil)
	for _, adv := range tf.advances {
		require.NoError(t, bw.write(adv, int16(0)))
	}
	return bw.buffer.Bytes()
}

func (tf testFont) cmapBytes(t *testing.T) []byte {
	var codes []uint32
	for c := range tf.cmap {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	bw := newByteWriter(nil)
	require.NoError(t, bw.write(uint16(0), uint16(1), tf.cmapPlatformID, tf.cmapEncodingID, uint32(12)))

	switch tf.cmapFormat {
	case 4:
		segCount := len(codes) + 1
		require.NoError(t, bw.write(uint16(4), uint16(16+8*segCount), uint16(0)))
		require.NoError(t, bw.write(uint16(2*segCount), uint16(0), uint16(0), uint16(0)))
		for _, c := range codes {
			require.NoError(t, bw.write(uint16(c)))
		}
		require.NoError(t, bw.write(uint16(0xFFFF), uint16(0)))
		for _, c := range codes {
			require.NoError(t, bw.write(uint16(c)))
		}
		require.NoError(t, bw.write(uint16(0xFFFF)))
		for _, c := range codes {
			delta := int(tf.cmap[c]) - int(c)
			require.NoError(t, bw.write(int16(uint16(delta))))
		}
		require.NoError(t, bw.write(int16(1)))
		for i := 0; i < segCount; i++ {
			require.NoError(t, bw.write(uint16(0)))
		}
	case 12:
		require.NoError(t, bw.write(uint16(12), uint16(0), uint32(16+12*len(codes)), uint32(0), uint32(len(codes))))
		for _, c := range codes {
			require.NoError(t, bw.write(c, c, uint32(tf.cmap[c])))
		}
	default:
		t.Fatalf("unsupported test cmap format %d", tf.cmapFormat)
	}
	return bw.buffer.Bytes()
}

func (tf testFont) os2Bytes(t *testing.T) []byte {
	bw := newByteWriter(nil)
	require.NoError(t, bw.write(tf.os2Version, int16(500), uint16(400), uint16(5), uint16(0)))
	for i := 0; i < 11; i++ {
		require.NoError(t, bw.write(int16(0)))
	}
	require.NoError(t, bw.writeSlice(make([]uint8, 10)))
	require.NoError(t, bw.write(uint32(1), uint32(0), uint32(0), uint32(0), makeTag("TEST")))
	require.NoError(t, bw.write(uint16(0x40), uint16(0x20), uint16(0xFFFF)))
	require.NoError(t, bw.write(tf.ascender, tf.descender, int16(0), uint16(tf.ascender), uint16(-tf.descender)))
	if tf.os2Version >= 1 {
		require.NoError(t, bw.write(uint32(1), uint32(0)))
	}
	if tf.os2Version >= 2 {
		require.NoError(t, bw.write(tf.xHeight, tf.capHeight, uint16(0), uint16(' '), uint16(1)))
	}
	return bw.buffer.Bytes()
}

func (tf testFont) nameBytes(t *testing.T) []byte {
	str := strutils.StringToUTF16(tf.psName)

	bw := newByteWriter(nil)
	require.NoError(t, bw.write(uint16(0), uint16(1), offset16(6+12)))
	require.NoError(t, bw.write(uint16(3), uint16(1), uint16(0x409), uint16(nameIDPostScriptName), uint16(len(str)), offset16(0)))
	require.NoError(t, bw.writeSlice(str))
	return bw.buffer.Bytes()
}
