/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

// IsWhiteSpace checks if byte represents a white space character.
func IsWhiteSpace(ch byte) bool {
	// Table 1 white-space characters (7.2.2 Character Set)
	// spaces, tabs, carriage returns, line feeds, form feeds, null
	return (ch == 0x00) || (ch == 0x09) || (ch == 0x0A) || (ch == 0x0C) || (ch == 0x0D) || (ch == 0x20)
}

// IsPrintable checks if a character is printable.
// Regular characters that are outside the range EXCLAMATION MARK(21h)
// (!) to TILDE (7Eh) (~) should be written using the hexadecimal notation.
func IsPrintable(c byte) bool {
	if c < 0x21 || c > 0x7E {
		return false
	}
	return true
}

// IsDelimiter checks if a character represents a delimiter.
func IsDelimiter(c byte) bool {
	if c == '(' || c == ')' {
		return true
	}
	if c == '<' || c == '>' {
		return true
	}
	if c == '[' || c == ']' {
		return true
	}
	if c == '{' || c == '}' {
		return true
	}
	if c == '/' {
		return true
	}
	if c == '%' {
		return true
	}

	return false
}
