// Copyright 2024 The gojson Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package json

// This file implements the character classification rules of RFC 8259.
// They are deliberately not the unicode package's notions: JSON's idea of
// whitespace is exactly four characters, and its control range is exactly
// U+0000 through U+001F.

import "fmt"

// isWhitespace reports whether r is insignificant whitespace per
// RFC 8259 section 2: space, horizontal tab, line feed, carriage return.
// Vertical tab and form feed are not whitespace.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// isControl reports whether r falls in the control range of RFC 8259
// section 7 (U+0000..U+001F inclusive).  Control characters are illegal
// unescaped inside strings.
func isControl(r rune) bool {
	return r >= 0x0000 && r <= 0x001f
}

// isEscapable reports whether r may directly follow a backslash inside a
// string per RFC 8259 section 7.
func isEscapable(r rune) bool {
	switch r {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

// isHexDigit reports whether r is an ASCII hexadecimal digit.
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// escapeChar returns the JSON escape sequence for r: the short forms of
// RFC 8259 section 7 where one exists, otherwise \uXXXX with four
// uppercase hex digits.
func escapeChar(r rune) string {
	switch r {
	case '"':
		return `\"`
	case '\\':
		return `\\`
	case '/':
		return `\/`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	return fmt.Sprintf(`\u%04X`, r)
}

// displayChar returns r the way error messages show it: control
// characters are escaped, everything else appears verbatim.
func displayChar(r rune) string {
	if isControl(r) {
		return escapeChar(r)
	}
	return string(r)
}
