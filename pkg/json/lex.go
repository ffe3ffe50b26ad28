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

// This file implements the lexical tokenization of JSON.  The token
// stream returns a series of tokens with one of the following codes:
//
//    tString      // a string (the token text is the raw inner text)
//    tNumber      // a number (the token text is the exact source slice)
//    tNull        // the keyword null
//    tBoolean     // the keyword true or false
//    '{'  '}'  '['  ']'  ':'  ','
//
// Every token records the half-open byte range of its full lexeme,
// including the quotes of a string and the sign, fraction, and exponent
// of a number.  The slice of the source at that range re-lexes to the
// same token.

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// A Range is a half-open [Start, End) interval of byte offsets into the
// source text.  All spans carried by tokens, errors, and diagnostics are
// byte ranges.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no bytes.  An empty range is
// legal in a patch (a pure insertion) and in the primary span of an
// end-of-input error.
func (r Range) Empty() bool { return r.Start >= r.End }

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// at returns an empty range anchored at offset n.
func at(n int) Range { return Range{Start: n, End: n} }

// A char is a single decoded character together with the byte range it
// occupies in the source (one byte for ASCII, up to four for multi-byte
// code points).
type char struct {
	r   rune
	rng Range
}

// A lexer decodes characters out of the source text one at a time.
type lexer struct {
	input string
	pos   int // byte offset of the next character
}

// nextChar returns the next character and advances past it.  The second
// return value is false at end of input.
func (l *lexer) nextChar() (char, bool) {
	if l.pos >= len(l.input) {
		return char{}, false
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	c := char{r: r, rng: Range{Start: l.pos, End: l.pos + w}}
	l.pos += w
	return c, true
}

// peekChar returns the next character without consuming it.
func (l *lexer) peekChar() (char, bool) {
	save := l.pos
	c, ok := l.nextChar()
	l.pos = save
	return c, ok
}

// eof returns the empty range at the end of the input.
func (l *lexer) eof() Range { return at(len(l.input)) }

// A code identifies the kind of a token.  Single character tokens
// (punctuation) are represented by their unicode code points.
type code int

const (
	tEOF     = code(-1 - iota) // reached end of input
	tString                    // a string; text is the raw inner text
	tNumber                    // a number; text is the exact source slice
	tNull                      // the keyword null
	tBoolean                   // the keyword true or false
)

// A token is one lexical unit read from the input together with the byte
// range of its full lexeme.
type token struct {
	code code
	text string
	rng  Range
}

// Code returns the code of t.  If t is nil, tEOF is returned.
func (t *token) Code() code {
	if t == nil {
		return tEOF
	}
	return t.code
}

// Bool returns the value of a tBoolean token.
func (t *token) Bool() bool { return t.text == "true" }

// isValueStart reports whether t can begin a JSON value: an opening
// brace or bracket, a string, a number, or a keyword literal.
func (t *token) isValueStart() bool {
	switch t.Code() {
	case code('{'), code('['), tString, tNumber, tNull, tBoolean:
		return true
	}
	return false
}

// isScalar reports whether t is a complete value on its own.
func (t *token) isScalar() bool {
	switch t.Code() {
	case tString, tNumber, tNull, tBoolean:
		return true
	}
	return false
}

// String returns t the way diagnostics refer to it: strings are quoted,
// numbers and keywords appear as written, punctuation is quoted in
// single quotes.  A nil token reads as end of input.
func (t *token) String() string {
	switch t.Code() {
	case tEOF:
		return "end of input"
	case tString:
		return strconv.Quote(t.text)
	case tNumber, tNull, tBoolean:
		return t.text
	}
	return fmt.Sprintf("'%c'", rune(t.code))
}

// A Source is the text a document was read from together with the name
// diagnostics should call it ("stdin" or a file path).
type Source struct {
	Text string
	Name string
}

// A tokens is a peekable stream of tokens over a source.  Lexical errors
// are sticky: once scanning fails, both peek and next keep returning the
// same error.
type tokens struct {
	lex lexer
	src Source

	peeked   *token // token returned by the pending peek, nil at EOF
	havePeek bool
	err      *Error
}

func newTokens(src Source) *tokens {
	return &tokens{lex: lexer{input: src.Text}, src: src}
}

// peek returns the next token without consuming it.  A nil token with a
// nil error means end of input.
func (ts *tokens) peek() (*token, *Error) {
	if ts.err != nil {
		return nil, ts.err
	}
	if !ts.havePeek {
		ts.peeked, ts.err = ts.scan()
		if ts.err != nil {
			return nil, ts.err
		}
		ts.havePeek = true
	}
	return ts.peeked, nil
}

// next returns the next token and consumes it.
func (ts *tokens) next() (*token, *Error) {
	t, err := ts.peek()
	if err != nil {
		return nil, err
	}
	ts.havePeek = false
	ts.peeked = nil
	return t, nil
}

// eofRange returns the empty range at the end of the source.
func (ts *tokens) eofRange() Range { return ts.lex.eof() }

// scan reads the next token from the input, skipping insignificant
// whitespace.  It returns nil at end of input.
func (ts *tokens) scan() (*token, *Error) {
	l := &ts.lex
	for {
		c, ok := l.peekChar()
		if !ok {
			return nil, nil
		}
		if !isWhitespace(c.r) {
			break
		}
		l.nextChar()
	}

	c, _ := l.peekChar()
	switch c.r {
	case '{', '}', '[', ']', ':', ',':
		l.nextChar()
		return &token{code: code(c.r), text: string(c.r), rng: c.rng}, nil
	case '"':
		return scanString(l, ts.src)
	case 'n', 't', 'f':
		return ts.scanKeyword(c)
	}
	if c.r == '-' || isDigit(c.r) {
		return scanNumber(l, ts.src)
	}
	l.nextChar()
	return nil, &Error{
		code:   errUnexpectedCharacter,
		Range:  c.rng,
		Source: ts.src,
		char:   c.r,
	}
}

// scanKeyword matches the keyword beginning with first (null, true, or
// false) exactly and case-sensitively.  On mismatch the error points at
// the first character.
func (ts *tokens) scanKeyword(first char) (*token, *Error) {
	var want string
	var c code
	switch first.r {
	case 'n':
		want, c = "null", tNull
	case 't':
		want, c = "true", tBoolean
	case 'f':
		want, c = "false", tBoolean
	}

	l := &ts.lex
	for i := 0; i < len(want); i++ {
		ch, ok := l.nextChar()
		if !ok || ch.r != rune(want[i]) {
			return nil, &Error{
				code:   errUnexpectedCharacter,
				Range:  first.rng,
				Source: ts.src,
				char:   first.r,
			}
		}
	}
	return &token{
		code: c,
		text: want,
		rng:  Range{Start: first.rng.Start, End: first.rng.Start + len(want)},
	}, nil
}
