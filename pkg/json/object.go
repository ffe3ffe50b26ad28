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

// objectState is a state of the object machine.  Each state's context
// lives in the locals of parseObject: the opening brace, the last comma,
// the current key and colon, and the span of the last completed
// key/value pair, all captured so errors can point back at the token
// that caused the expectation.
type objectState int

const (
	objOpen     objectState = iota // expecting {
	objKeyOrEnd                    // expecting the first key, a comma, or }
	objKey                         // after a comma, expecting a key
	objColon                       // after a key, expecting :
	objValue                       // after a colon, expecting a value
	objEnd                         // terminal
)

// parseObject runs the object machine, emitting events to v.  It
// returns the byte range from the opening brace through the closing
// brace.
func parseObject(ts *tokens, v visitor) (Range, *Error) {
	var (
		state              = objOpen
		open, comma, colon *token
		key                *token
		lastPair           *Range // nil until the first pair completes
		result             Range
	)

	for state != objEnd {
		switch state {
		case objOpen:
			t, err := ts.next()
			if err != nil {
				return Range{}, err
			}
			if t.Code() != code('{') {
				rng := ts.eofRange()
				if t != nil {
					rng = t.rng
				}
				return Range{}, &Error{
					code:   errExpectedOpenBrace,
					Range:  rng,
					Source: ts.src,
					found:  t,
					char:   '{',
				}
			}
			v.objectOpen(t)
			open = t
			state = objKeyOrEnd

		case objKeyOrEnd:
			t, err := ts.next()
			if err != nil {
				return Range{}, err
			}
			switch {
			case t.Code() == code('}'):
				result = Range{Start: open.rng.Start, End: t.rng.End}
				v.objectClose(result)
				state = objEnd
			case lastPair == nil && t.Code() == tString:
				v.objectKey(t)
				key = t
				state = objColon
			case lastPair != nil && t.Code() == code(','):
				comma = t
				state = objKey
			case lastPair != nil:
				rng := ts.eofRange()
				if t != nil {
					rng = t.rng
				}
				return Range{}, &Error{
					code:     errExpectedCommaOrClose,
					Range:    rng,
					Source:   ts.src,
					found:    t,
					open:     open,
					pairSpan: *lastPair,
				}
			default:
				return Range{}, ts.expectedEntryOrClose(open, t)
			}

		case objKey:
			t, err := ts.next()
			if err != nil {
				return Range{}, err
			}
			if t.Code() != tString {
				rng := ts.eofRange()
				if t != nil {
					rng = t.rng
				}
				return Range{}, &Error{
					code:    errExpectedKey,
					Range:   rng,
					Source:  ts.src,
					found:   t,
					context: comma,
				}
			}
			v.objectKey(t)
			key = t
			state = objColon

		case objColon:
			t, err := ts.next()
			if err != nil {
				return Range{}, err
			}
			if t.Code() != code(':') {
				rng := ts.eofRange()
				if t != nil {
					rng = t.rng
				}
				return Range{}, &Error{
					code:    errExpectedColon,
					Range:   rng,
					Source:  ts.src,
					found:   t,
					context: key,
				}
			}
			colon = t
			state = objValue

		case objValue:
			t, err := ts.peek()
			if err != nil {
				return Range{}, err
			}
			if !t.isValueStart() {
				return Range{}, ts.expectedValue(colon, t)
			}
			vr, err := parseValue(ts, false, v)
			if err != nil {
				return Range{}, err
			}
			lastPair = &Range{Start: colon.rng.Start, End: vr.End}
			state = objKeyOrEnd
		}
	}
	return result, nil
}
