/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/unidoc/simplefont/common"
)

// StreamEncoder represents the interface for all PDF stream encoders.
type StreamEncoder interface {
	GetFilterName() string
	MakeStreamDict() *PdfObjectDictionary

	EncodeBytes(data []byte) ([]byte, error)
	DecodeBytes(encoded []byte) ([]byte, error)
	DecodeStream(streamObj *PdfObjectStream) ([]byte, error)
}

// FlateEncoder represents Flate encoding.
type FlateEncoder struct {
	// Level is the zlib compression level. Zero selects zlib.DefaultCompression.
	Level int
}

// NewFlateEncoder makes a new flate encoder with default parameters.
func NewFlateEncoder() *FlateEncoder {
	return &FlateEncoder{Level: zlib.DefaultCompression}
}

// GetFilterName returns the name of the encoding filter.
func (enc *FlateEncoder) GetFilterName() string {
	return StreamEncodingFilterNameFlate
}

// MakeStreamDict makes a new instance of an encoding dictionary for a stream object.
func (enc *FlateEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	return dict
}

// DecodeBytes decodes a slice of Flate encoded bytes and returns the result.
func (enc *FlateEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	common.Log.Trace("FlateDecode bytes")

	bufReader := bytes.NewReader(encoded)
	r, err := zlib.NewReader(bufReader)
	if err != nil {
		common.Log.Debug("Decoding error %v\n", err)
		common.Log.Debug("Stream (%d) % x", len(encoded), encoded)
		return nil, err
	}
	defer r.Close()

	var outBuf bytes.Buffer
	_, err = io.Copy(&outBuf, r)
	if err != nil {
		return nil, err
	}

	return outBuf.Bytes(), nil
}

// DecodeStream decodes a FlateEncoded stream object and give back decoded bytes.
func (enc *FlateEncoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	common.Log.Trace("FlateDecode stream")
	return enc.DecodeBytes(streamObj.Stream)
}

// EncodeBytes encodes a bytes array and return the encoded value based on the encoder parameters.
func (enc *FlateEncoder) EncodeBytes(data []byte) ([]byte, error) {
	level := enc.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}

	var b bytes.Buffer
	w, err := zlib.NewWriterLevel(&b, level)
	if err != nil {
		return nil, err
	}
	_, err = w.Write(data)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// RawEncoder implements Raw encoder/decoder (no encoding, pass through)
type RawEncoder struct{}

// NewRawEncoder returns a new instace of RawEncoder.
func NewRawEncoder() *RawEncoder {
	return &RawEncoder{}
}

// GetFilterName returns the name of the encoding filter.
func (enc *RawEncoder) GetFilterName() string {
	return "Raw"
}

// MakeStreamDict makes a new instance of an encoding dictionary for a stream object.
func (enc *RawEncoder) MakeStreamDict() *PdfObjectDictionary {
	return MakeDict()
}

// DecodeBytes returns the raw bytes of `encoded`.
func (enc *RawEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	return encoded, nil
}

// DecodeStream returns the raw stream data.
func (enc *RawEncoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	return streamObj.Stream, nil
}

// EncodeBytes returns `data` unchanged.
func (enc *RawEncoder) EncodeBytes(data []byte) ([]byte, error) {
	return data, nil
}
