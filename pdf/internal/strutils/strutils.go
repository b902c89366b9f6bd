/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package strutils contains string conversion helpers shared by the font parsers.
package strutils

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/unidoc/simplefont/common"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// UTF16ToString decodes the UTF-16BE encoded byte slice `b` to a unicode go string.
// Invalid sequences are replaced by U+FFFD.
func UTF16ToString(b []byte) string {
	if len(b)%2 == 1 {
		common.Log.Debug("UTF-16 data of odd length (%d), dropping last byte", len(b))
		b = b[:len(b)-1]
	}
	decoded, err := utf16BE.NewDecoder().Bytes(b)
	if err != nil {
		common.Log.Debug("ERROR: UTF-16 decoding: %v", err)
		return ""
	}
	return string(decoded)
}

// StringToUTF16 encodes `s` as UTF-16BE without byte order mark.
func StringToUTF16(s string) []byte {
	encoded, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		common.Log.Debug("ERROR: UTF-16 encoding: %v", err)
		return nil
	}
	return encoded
}
