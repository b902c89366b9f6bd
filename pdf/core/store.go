/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/unidoc/simplefont/common"
)

// ObjectStore keeps the indirect objects of a document and hands out stable references for them.
// Object numbers start at 1 and the generation number is always 0.
// An ObjectStore is not safe for concurrent use.
type ObjectStore struct {
	objects []PdfObject // *PdfIndirectObject or *PdfObjectStream, index = object number - 1.
	owned   map[PdfObject]struct{}
}

// NewObjectStore returns an empty ObjectStore.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{
		owned: map[PdfObject]struct{}{},
	}
}

// Register adds `obj` to the store and returns a reference to it. Direct objects are wrapped in a
// new indirect object first. Unregistered indirect objects and streams reachable from `obj` are
// numbered as well, in depth-first order with `obj` first. Either the whole graph is registered
// or, on error, nothing is.
func (s *ObjectStore) Register(obj PdfObject) (*PdfObjectReference, error) {
	if isNilObject(obj) {
		return nil, ErrNilObject
	}

	top := obj
	switch obj.(type) {
	case *PdfIndirectObject, *PdfObjectStream:
	default:
		top = MakeIndirectObject(obj)
	}

	var pending []PdfObject
	seen := map[PdfObject]struct{}{}
	if err := s.collect(top, &pending, seen); err != nil {
		return nil, err
	}

	for _, o := range pending {
		ref := referenceOf(o)
		ref.ObjectNumber = int64(len(s.objects) + 1)
		ref.GenerationNumber = 0
		s.objects = append(s.objects, o)
		s.owned[o] = struct{}{}
		common.Log.Trace("Registered object %d: %T", ref.ObjectNumber, o)
	}

	ref := *referenceOf(top)
	return &ref, nil
}

// collect walks `obj` and appends every indirect object or stream not yet owned by `s` to `pending`.
func (s *ObjectStore) collect(obj PdfObject, pending *[]PdfObject, seen map[PdfObject]struct{}) error {
	switch t := obj.(type) {
	case *PdfIndirectObject:
		if t == nil {
			return ErrNilObject
		}
		if err := s.visit(t, &t.PdfObjectReference, pending, seen); err != nil || !s.first(t, seen) {
			return err
		}
		if t.PdfObject == nil {
			return nil
		}
		return s.collect(t.PdfObject, pending, seen)
	case *PdfObjectStream:
		if t == nil {
			return ErrNilObject
		}
		if err := s.visit(t, &t.PdfObjectReference, pending, seen); err != nil || !s.first(t, seen) {
			return err
		}
		if t.PdfObjectDictionary == nil {
			return nil
		}
		return s.collect(t.PdfObjectDictionary, pending, seen)
	case *PdfObjectDictionary:
		if t == nil {
			return nil
		}
		for _, key := range t.Keys() {
			val := t.Get(key)
			if val == nil {
				continue
			}
			if err := s.collect(val, pending, seen); err != nil {
				return err
			}
		}
	case *PdfObjectArray:
		for _, val := range t.Elements() {
			if val == nil {
				continue
			}
			if err := s.collect(val, pending, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// visit checks ownership of the indirect object `obj` and queues it for numbering if needed.
func (s *ObjectStore) visit(obj PdfObject, ref *PdfObjectReference, pending *[]PdfObject, seen map[PdfObject]struct{}) error {
	if _, done := seen[obj]; done {
		return nil
	}
	if _, own := s.owned[obj]; own {
		return nil
	}
	if ref.ObjectNumber != 0 {
		common.Log.Debug("ERROR: object already numbered %d", ref.ObjectNumber)
		return ErrForeignObject
	}
	*pending = append(*pending, obj)
	return nil
}

// first marks `obj` as seen and reports whether this was the first visit.
func (s *ObjectStore) first(obj PdfObject, seen map[PdfObject]struct{}) bool {
	if _, done := seen[obj]; done {
		return false
	}
	seen[obj] = struct{}{}
	return true
}

// Lookup returns the object registered under `ref`.
func (s *ObjectStore) Lookup(ref PdfObjectReference) (PdfObject, bool) {
	if ref.ObjectNumber < 1 || ref.ObjectNumber > int64(len(s.objects)) || ref.GenerationNumber != 0 {
		return nil, false
	}
	return s.objects[ref.ObjectNumber-1], true
}

// Len returns the number of registered objects.
func (s *ObjectStore) Len() int {
	return len(s.objects)
}

// Objects returns the registered objects in object number order.
func (s *ObjectStore) Objects() []PdfObject {
	objs := make([]PdfObject, len(s.objects))
	copy(objs, s.objects)
	return objs
}

// Write writes all registered objects to `w` as "N 0 obj ... endobj" blocks.
func (s *ObjectStore) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, obj := range s.objects {
		if err := writeObject(bw, obj); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeObject(w *bufio.Writer, obj PdfObject) error {
	switch t := obj.(type) {
	case *PdfIndirectObject:
		body := "null"
		if t.PdfObject != nil {
			body = t.PdfObject.WriteString()
		}
		_, err := fmt.Fprintf(w, "%d %d obj\n%s\nendobj\n", t.ObjectNumber, t.GenerationNumber, body)
		return err
	case *PdfObjectStream:
		if _, err := w.WriteString(strconv.FormatInt(t.ObjectNumber, 10) + " 0 obj\n"); err != nil {
			return err
		}
		if _, err := w.WriteString(t.PdfObjectDictionary.WriteString()); err != nil {
			return err
		}
		if _, err := w.WriteString("\nstream\n"); err != nil {
			return err
		}
		if _, err := w.Write(t.Stream); err != nil {
			return err
		}
		_, err := w.WriteString("\nendstream\nendobj\n")
		return err
	}
	return ErrTypeError
}

func referenceOf(obj PdfObject) *PdfObjectReference {
	switch t := obj.(type) {
	case *PdfIndirectObject:
		return &t.PdfObjectReference
	case *PdfObjectStream:
		return &t.PdfObjectReference
	}
	return nil
}

func isNilObject(obj PdfObject) bool {
	if obj == nil {
		return true
	}
	switch t := obj.(type) {
	case *PdfIndirectObject:
		return t == nil
	case *PdfObjectStream:
		return t == nil
	case *PdfObjectDictionary:
		return t == nil
	case *PdfObjectArray:
		return t == nil
	}
	return false
}
