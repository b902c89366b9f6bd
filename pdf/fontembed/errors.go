/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontembed

import (
	"errors"
	"fmt"
)

// Error kinds returned by the package. Errors wrap one of these together with the underlying
// cause, test with errors.Is.
var (
	// ErrInputValidation is returned for invalid arguments, before any font data is parsed.
	ErrInputValidation = errors.New("input validation error")
	// ErrFontParse is returned when the font data cannot be interpreted.
	ErrFontParse = errors.New("font parse error")
	// ErrCompression is returned when the font program cannot be compressed.
	ErrCompression = errors.New("compression error")
	// ErrRegistration is returned when the document store rejects the font objects.
	ErrRegistration = errors.New("registration error")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInputValidation, fmt.Sprintf(format, args...))
}

func wrapError(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
