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

// The structural parser.  The object and array machines in object.go and
// array.go drive a visitor, so validation and AST construction share one
// engine: Validate runs it with a no-op visitor, Parse with the AST
// visitor in ast.go.

// A visitor receives structural events as the parser walks a document.
// Events arrive in document order; open and close events are balanced,
// and a key event always precedes the value emitted for it.
type visitor interface {
	objectOpen(open *token)
	objectKey(key *token)
	objectClose(rng Range)
	arrayOpen(open *token)
	arrayClose(rng Range)
	scalar(tok *token)
}

// parseValue parses a single value and emits its events to v, returning
// the byte range the value covers.  With failOnTrailing set it is the
// top-level dispatcher: exactly one value, any trailing token is an
// error.  Nested values recurse through here with failOnTrailing false.
func parseValue(ts *tokens, failOnTrailing bool, v visitor) (Range, *Error) {
	t, err := ts.peek()
	if err != nil {
		return Range{}, err
	}

	var rng Range
	switch {
	case t == nil:
		return Range{}, &Error{
			code:   errExpectedValue,
			Range:  ts.eofRange(),
			Source: ts.src,
		}
	case t.Code() == code('{'):
		if rng, err = parseObject(ts, v); err != nil {
			return Range{}, err
		}
	case t.Code() == code('['):
		if rng, err = parseArray(ts, v); err != nil {
			return Range{}, err
		}
	case t.isScalar():
		ts.next()
		v.scalar(t)
		rng = t.rng
	default:
		return Range{}, &Error{
			code:   errExpectedValue,
			Range:  t.rng,
			Source: ts.src,
			found:  t,
		}
	}

	if failOnTrailing {
		t, err := ts.peek()
		if err != nil {
			return Range{}, err
		}
		if t != nil {
			return Range{}, &Error{
				code:   errTokenAfterEnd,
				Range:  t.rng,
				Source: ts.src,
				found:  t,
			}
		}
	}
	return rng, nil
}

// expectedValue builds the error for a position where a value-starting
// token was required.  prior is the token that caused the expectation (a
// colon, a comma, or an opening bracket); found is nil at end of input.
func (ts *tokens) expectedValue(prior, found *token) *Error {
	rng := ts.eofRange()
	if found != nil {
		rng = found.rng
	}
	return &Error{
		code:    errExpectedValue,
		Range:   rng,
		Source:  ts.src,
		found:   found,
		context: prior,
	}
}

// expectedEntryOrClose builds the error for a fresh composite whose next
// token is neither an entry nor the matching closer.
func (ts *tokens) expectedEntryOrClose(open, found *token) *Error {
	rng := ts.eofRange()
	if found != nil {
		rng = found.rng
	}
	return &Error{
		code:   errExpectedEntryOrClose,
		Range:  rng,
		Source: ts.src,
		found:  found,
		open:   open,
	}
}
