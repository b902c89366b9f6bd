/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "errors"

// Common errors that may occur on PDF parsing/writing.
var (
	// ErrTypeError typically occurs when an object is of an unexpected type.
	ErrTypeError = errors.New("type check error")

	// ErrRangeError typically occurs when an input parameter is out of range or has invalid value.
	ErrRangeError = errors.New("range check error")

	// ErrNotANumber is returned when a number was expected.
	ErrNotANumber = errors.New("not a number")

	// ErrNilObject is returned when a nil object is registered.
	ErrNilObject = errors.New("nil object")

	// ErrForeignObject is returned when an object already numbered by another store is registered.
	ErrForeignObject = errors.New("object belongs to another store")
)

// TraceMaxDepth specifies the maximum recursion depth allowed.
const TraceMaxDepth = 20

const (
	// StreamEncodingFilterNameFlate is the name of the Flate filter.
	StreamEncodingFilterNameFlate = "FlateDecode"
)
