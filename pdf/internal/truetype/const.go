/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "errors"

var (
	errTypeCheck         = errors.New("type check error")
	errRangeCheck        = errors.New("range check error")
	errRequiredField     = errors.New("required field missing")
	errUnsupportedFormat = errors.New("unsupported format")
	errNotTrueType       = errors.New("not a truetype font")
)

// sfnt versions accepted by the parser.
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionApple    = 0x74727565 // 'true'
)
