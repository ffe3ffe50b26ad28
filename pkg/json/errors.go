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

import "fmt"

// An errCode identifies the kind of a parse or lex failure.
type errCode int

const (
	// lexical errors
	errUnexpectedCharacter errCode = iota
	errControlCharacterInString
	errUnterminatedString
	errInvalidEscape
	errInvalidUnicodeEscape

	// number scanner errors
	errExpectedMinusOrDigit
	errExpectedDigitFollowingMinus
	errExpectedDigitAfterDot
	errExpectedDigitAfterE
	errExpectedSignOrDigitAfterE
	errUnexpectedLeadingZero

	// structural errors
	errExpectedOpenBrace
	errExpectedEntryOrClose
	errExpectedCommaOrClose
	errExpectedKey
	errExpectedColon
	errExpectedValue
	errTokenAfterEnd
)

// An Error is a parse or lex failure.  It carries the primary byte range
// of the failure, the source it occurred in, and every context token the
// diagnostic builder needs, so it can be rendered (or copied and
// rendered later) without consulting anything but the error itself.
//
// Parsing stops at the first error; there is no recovery and no
// multi-error reporting.
type Error struct {
	code errCode

	// Range is the primary span.  It is non-empty except when the
	// failure is at end of input, in which case it is len..len.
	Range Range

	// Source is the text and name of the document the error occurred in.
	Source Source

	found   *token // the token found instead, nil at end of input
	open    *token // the { or [ whose composite was being parsed
	context *token // the earlier token that caused the expectation
	char    rune   // the offending character for lexical errors

	pairSpan  Range // the preceding key/value pair (expected comma or close)
	initial   Range // the leading zero
	extra     Range // the zero run plus the first non-zero digit after it, if any (unexpected leading zero)
	openQuote Range // the opening quote (unterminated string)
	body      Range // the unterminated string body
}

var _ error = (*Error)(nil)

// Error returns the one-line message for e.
func (e *Error) Error() string {
	switch e.code {
	case errUnexpectedCharacter:
		return fmt.Sprintf("unexpected character '%s'", displayChar(e.char))
	case errControlCharacterInString:
		return fmt.Sprintf("unexpected control character '%s' in string", displayChar(e.char))
	case errUnterminatedString:
		return "expected closing quote"
	case errInvalidEscape:
		return fmt.Sprintf("invalid escape character '%s'", displayChar(e.char))
	case errInvalidUnicodeEscape:
		return "invalid unicode escape, expected four hex digits"
	case errExpectedMinusOrDigit:
		return "expected minus or digit"
	case errExpectedDigitFollowingMinus:
		return "expected digit after minus sign"
	case errExpectedDigitAfterDot:
		return "expected digit after decimal point"
	case errExpectedDigitAfterE:
		return "expected digit in exponent"
	case errExpectedSignOrDigitAfterE:
		return "expected sign or digit in exponent"
	case errUnexpectedLeadingZero:
		return "unexpected leading zero"
	case errExpectedOpenBrace:
		return fmt.Sprintf("expected '%c'", e.char)
	case errExpectedEntryOrClose:
		if e.open.Code() == code('[') {
			return "expected value or closing bracket"
		}
		return "expected key or closing brace"
	case errExpectedCommaOrClose:
		return "expected comma or closing brace"
	case errExpectedKey:
		return "expected key after comma"
	case errExpectedColon:
		return "expected colon after key"
	case errExpectedValue:
		return "expected value"
	case errTokenAfterEnd:
		return fmt.Sprintf("unexpected %s after end of document", e.found)
	}
	return "invalid json"
}
