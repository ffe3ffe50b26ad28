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

// The string scanner.  Escape sequences are validated but never decoded:
// the emitted token carries the raw text between the quotes, so a
// formatter can copy it back out verbatim.

// stringState is a state of the string scanner.
type stringState int

const (
	strBody    stringState = iota // inside the string, expecting a character, escape, or closing quote
	strEscape                     // just read a backslash
	strUEscape                    // inside \uXXXX, collecting hex digits
)

// scanString consumes a complete "…" lexeme.  The opening quote must be
// the next character.  The token's text is the inner text exclusive of
// both quotes; its range covers both quotes.
func scanString(l *lexer, src Source) (*token, *Error) {
	open, _ := l.nextChar()
	state := strBody
	hex := 0 // hex digits collected in the current \u escape

	for {
		c, ok := l.nextChar()
		if !ok {
			return nil, &Error{
				code:      errUnterminatedString,
				Range:     l.eof(),
				Source:    src,
				openQuote: open.rng,
				body:      Range{Start: open.rng.End, End: len(l.input)},
			}
		}

		switch state {
		case strBody:
			switch {
			case c.r == '"':
				return &token{
					code: tString,
					text: l.input[open.rng.End:c.rng.Start],
					rng:  Range{Start: open.rng.Start, End: c.rng.End},
				}, nil
			case c.r == '\\':
				state = strEscape
			case isControl(c.r):
				return nil, &Error{
					code:   errControlCharacterInString,
					Range:  c.rng,
					Source: src,
					char:   c.r,
				}
			}

		case strEscape:
			switch {
			case isEscapable(c.r):
				state = strBody
			case c.r == 'u':
				state = strUEscape
				hex = 0
			default:
				return nil, &Error{
					code:   errInvalidEscape,
					Range:  c.rng,
					Source: src,
					char:   c.r,
				}
			}

		case strUEscape:
			if !isHexDigit(c.r) {
				return nil, &Error{
					code:   errInvalidUnicodeEscape,
					Range:  c.rng,
					Source: src,
					char:   c.r,
				}
			}
			hex++
			if hex == 4 {
				state = strBody
			}
		}
	}
}
