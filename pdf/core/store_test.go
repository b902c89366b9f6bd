/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDirectObject(t *testing.T) {
	s := NewObjectStore()

	ref, err := s.Register(MakeArrayFromIntegers([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), ref.ObjectNumber)
	assert.Equal(t, int64(0), ref.GenerationNumber)

	obj, ok := s.Lookup(*ref)
	require.True(t, ok)
	ind, ok := GetIndirect(obj)
	require.True(t, ok)
	arr, ok := GetArray(ind)
	require.True(t, ok)
	assert.Equal(t, 3, arr.Len())
}

// Nested indirect objects are numbered depth-first, parent first.
func TestRegisterGraph(t *testing.T) {
	stream, err := MakeStream([]byte("payload"), NewRawEncoder())
	require.NoError(t, err)

	child := MakeDict()
	child.Set("Stream", stream)
	childInd := MakeIndirectObject(child)

	top := MakeDict()
	top.Set("Child", childInd)
	top.Set("Again", childInd)
	topInd := MakeIndirectObject(top)

	s := NewObjectStore()
	ref, err := s.Register(topInd)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, int64(1), ref.ObjectNumber)
	assert.Equal(t, int64(2), childInd.ObjectNumber)
	assert.Equal(t, int64(3), stream.ObjectNumber)
	assert.Equal(t, "<</Child 2 0 R/Again 2 0 R>>", top.WriteString())

	// Registering again does not duplicate anything.
	ref2, err := s.Register(topInd)
	require.NoError(t, err)
	assert.Equal(t, *ref, *ref2)
	assert.Equal(t, 3, s.Len())
}

func TestRegisterIsAtomic(t *testing.T) {
	other := NewObjectStore()
	foreign := MakeIndirectObject(MakeInteger(5))
	_, err := other.Register(foreign)
	require.NoError(t, err)

	fresh := MakeIndirectObject(MakeName("Fresh"))
	dict := MakeDict()
	dict.Set("Fresh", fresh)
	dict.Set("Foreign", foreign)

	s := NewObjectStore()
	_, err = s.Register(dict)
	assert.Equal(t, ErrForeignObject, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int64(0), fresh.ObjectNumber)
}

func TestRegisterNil(t *testing.T) {
	s := NewObjectStore()

	_, err := s.Register(nil)
	assert.Equal(t, ErrNilObject, err)

	var ind *PdfIndirectObject
	_, err = s.Register(ind)
	assert.Equal(t, ErrNilObject, err)

	dict := MakeDict()
	dict.Set("Bad", ind)
	_, err = s.Register(dict)
	assert.Equal(t, ErrNilObject, err)
	assert.Equal(t, 0, s.Len())
}

func TestLookupOutOfRange(t *testing.T) {
	s := NewObjectStore()
	_, ok := s.Lookup(PdfObjectReference{ObjectNumber: 1})
	assert.False(t, ok)
	_, ok = s.Lookup(PdfObjectReference{})
	assert.False(t, ok)
}

func TestStoreWrite(t *testing.T) {
	stream, err := MakeStream([]byte("abc"), nil)
	require.NoError(t, err)

	dict := MakeDict()
	dict.Set("Type", MakeName("Test"))
	dict.Set("Data", stream)
	dict.Set("Scale", MakeFloat(0.5))

	s := NewObjectStore()
	_, err = s.Register(dict)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))

	expected := strings.Join([]string{
		"1 0 obj",
		"<</Type /Test/Data 2 0 R/Scale 0.5>>",
		"endobj",
		"2 0 obj",
		"<</Length 3>>",
		"stream",
		"abc",
		"endstream",
		"endobj",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}
