/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/unidoc/simplefont/common"
)

// byteWriter encapsulates io.Writer and provides methods to write binary data as fit for truetype fonts.
// Writes are buffered until flushed. Provides methods to calculate checksum of the current buffer.
type byteWriter struct {
	w      io.Writer
	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	b := w.buffer.Bytes()
	_, err := w.w.Write(b)
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// checksum returns the checksum of the current buffer.
func (w *byteWriter) checksum() uint32 {
	return tableChecksum(w.buffer.Bytes())
}

// tableChecksum sums `data` as big endian uint32 values, zero padding the last one.
func tableChecksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// padding writes zero bytes until the buffer length is a multiple of 4.
func (w *byteWriter) padding() error {
	for w.buffer.Len()%4 != 0 {
		if err := w.write(uint8(0)); err != nil {
			return err
		}
	}
	return nil
}

func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		return w.writeValue(t)
	default:
		common.Log.Debug("ERROR: Write type check error: %T (slice)", t)
		return errTypeCheck
	}
}

// write writes a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		var err error
		switch t := f.(type) {
		case uint8, uint16, int16, fword, ufword, offset16, uint32, fixed, offset32, tag, longdatetime:
			err = w.writeValue(t)
		default:
			common.Log.Debug("ERROR: Write type check error: %T", t)
			return errTypeCheck
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *byteWriter) writeValue(val interface{}) error {
	return binary.Write(&w.buffer, binary.BigEndian, val)
}
