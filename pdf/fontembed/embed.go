/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"unicode/utf8"

	"github.com/unidoc/simplefont/common"
	"github.com/unidoc/simplefont/pdf/core"
)

// ContainerSubtype is the /Subtype of every embedded font program stream. Plain TrueType data is
// declared as OpenType too, which readers accept for unmodified fonts.
const ContainerSubtype = "OpenType"

// FontSubtype is the /Subtype of the font dictionary.
const FontSubtype = "TrueType"

// Registrar registers objects with a document and returns stable references to them.
// core.ObjectStore implements Registrar.
type Registrar interface {
	Register(obj core.PdfObject) (*core.PdfObjectReference, error)
}

// Embedder embeds one font program as a simple font with the codes 0..255.
// The metrics are read once in the constructor; Build and Embed only read them and may be
// called repeatedly. An Embedder is not safe for concurrent use.
type Embedder struct {
	name    string
	data    []byte
	options FlagOptions
	metrics FontMetrics
	scaler  UnitScaler
	encoder core.StreamEncoder
}

// NewEmbedder parses `data` and returns an Embedder for the font named `name`.
func NewEmbedder(name string, data []byte, options FlagOptions) (*Embedder, error) {
	if err := validateInput(name, data); err != nil {
		return nil, err
	}

	m, err := LoadMetrics(data)
	if err != nil {
		return nil, err
	}
	return NewEmbedderWithMetrics(name, data, options, m)
}

// NewEmbedderWithMetrics returns an Embedder for `data` using the metrics `m` instead of parsing
// the data.
func NewEmbedderWithMetrics(name string, data []byte, options FlagOptions, m FontMetrics) (*Embedder, error) {
	if err := validateInput(name, data); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, validationError("metrics not set")
	}

	scaler, err := NewUnitScaler(m.UnitsPerEm())
	if err != nil {
		return nil, err
	}

	return &Embedder{
		name:    name,
		data:    append([]byte(nil), data...),
		options: options,
		metrics: m,
		scaler:  scaler,
		encoder: core.NewFlateEncoder(),
	}, nil
}

func validateInput(name string, data []byte) error {
	if name == "" {
		return validationError("font name is empty")
	}
	if !utf8.ValidString(name) {
		return validationError("font name is not valid UTF-8")
	}
	if len(data) == 0 {
		return validationError("font data is empty")
	}
	return nil
}

// Name returns the BaseFont name.
func (e *Embedder) Name() string {
	return e.name
}

// Metrics returns the font metrics.
func (e *Embedder) Metrics() FontMetrics {
	return e.metrics
}

// Scaler returns the font unit scaler.
func (e *Embedder) Scaler() UnitScaler {
	return e.scaler
}

// Flags returns the encoded flag options.
func (e *Embedder) Flags() FlagWord {
	return e.options.Encode()
}

// Widths returns the width table.
func (e *Embedder) Widths() WidthTable {
	return BuildWidthTable(e.metrics, e.scaler)
}

// Descriptor returns the font descriptor referencing `fontFile`.
func (e *Embedder) Descriptor(fontFile *core.PdfObjectStream) Descriptor {
	return BuildDescriptor(e.name, e.options, e.metrics, e.scaler, fontFile)
}

// EmbeddedFont is the object graph of an embedded font. The objects are unnumbered until the
// font is registered.
type EmbeddedFont struct {
	Descriptor Descriptor
	Widths     WidthTable
	Length1    int // uncompressed length of the font program.

	FontFile       *core.PdfObjectStream
	FontDescriptor *core.PdfIndirectObject
	WidthsArray    *core.PdfIndirectObject
	Font           *core.PdfIndirectObject
}

// Build creates a new object graph for the font without registering it.
func (e *Embedder) Build() (*EmbeddedFont, error) {
	fontFile, err := e.makeFontFile()
	if err != nil {
		return nil, err
	}

	ef := &EmbeddedFont{
		Descriptor: e.Descriptor(fontFile),
		Widths:     e.Widths(),
		Length1:    len(e.data),
		FontFile:   fontFile,
	}
	ef.FontDescriptor = core.MakeIndirectObject(ef.Descriptor.ToPdfObject())
	ef.WidthsArray = core.MakeIndirectObject(ef.Widths.ToPdfObject())

	dict := core.MakeDict()
	dict.Set("Type", core.MakeName("Font"))
	dict.Set("Subtype", core.MakeName(FontSubtype))
	dict.Set("BaseFont", core.MakeName(e.name))
	dict.Set("FirstChar", core.MakeInteger(FirstChar))
	dict.Set("LastChar", core.MakeInteger(LastChar))
	dict.Set("Widths", ef.WidthsArray)
	dict.Set("FontDescriptor", ef.FontDescriptor)
	ef.Font = core.MakeIndirectObject(dict)

	common.Log.Debug("Built font %q: flags %s, %d -> %d bytes", e.name, ef.Descriptor.Flags,
		ef.Length1, len(fontFile.Stream))
	return ef, nil
}

// makeFontFile compresses the font program into a new stream.
func (e *Embedder) makeFontFile() (*core.PdfObjectStream, error) {
	stream, err := core.MakeStream(e.data, e.encoder)
	if err != nil {
		common.Log.Debug("ERROR: compressing font program: %v", err)
		return nil, wrapError(ErrCompression, err)
	}
	stream.Set("Length1", core.MakeInteger(int64(len(e.data))))
	stream.Set("Subtype", core.MakeName(ContainerSubtype))
	return stream, nil
}

// Embed builds a new object graph for the font and registers it with `store`, returning the
// reference of the font dictionary. Nothing is registered if an error occurs.
func (e *Embedder) Embed(store Registrar) (*core.PdfObjectReference, error) {
	if store == nil {
		return nil, validationError("store not set")
	}

	ef, err := e.Build()
	if err != nil {
		return nil, err
	}

	ref, err := store.Register(ef.Font)
	if err != nil {
		common.Log.Debug("ERROR: registering font %q: %v", e.name, err)
		return nil, wrapError(ErrRegistration, err)
	}
	common.Log.Info("Embedded font %q as object %d", e.name, ref.ObjectNumber)
	return ref, nil
}
