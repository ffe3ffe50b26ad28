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

// arrayState is a state of the array machine.  Symmetrical to the
// object machine, without keys: the captured context is the opening
// bracket and the token (bracket or comma) that made the next value
// expected.
type arrayState int

const (
	arrOpen       arrayState = iota // expecting [
	arrValueOrEnd                   // expecting the first value or ]
	arrValue                        // expecting a value
	arrCommaOrEnd                   // expecting , or ]
	arrEnd                          // terminal
)

// parseArray runs the array machine, emitting events to v.  It returns
// the byte range from the opening bracket through the closing bracket.
func parseArray(ts *tokens, v visitor) (Range, *Error) {
	var (
		state  = arrOpen
		open   *token
		expect *token // the [ or , that requires the next value
		result Range
	)

	for state != arrEnd {
		switch state {
		case arrOpen:
			t, err := ts.next()
			if err != nil {
				return Range{}, err
			}
			if t.Code() != code('[') {
				rng := ts.eofRange()
				if t != nil {
					rng = t.rng
				}
				return Range{}, &Error{
					code:   errExpectedOpenBrace,
					Range:  rng,
					Source: ts.src,
					found:  t,
					char:   '[',
				}
			}
			v.arrayOpen(t)
			open = t
			expect = t
			state = arrValueOrEnd

		case arrValueOrEnd:
			t, err := ts.peek()
			if err != nil {
				return Range{}, err
			}
			switch {
			case t.Code() == code(']'):
				ts.next()
				result = Range{Start: open.rng.Start, End: t.rng.End}
				v.arrayClose(result)
				state = arrEnd
			case t.isValueStart():
				state = arrValue
			default:
				return Range{}, ts.expectedEntryOrClose(open, t)
			}

		case arrValue:
			t, err := ts.peek()
			if err != nil {
				return Range{}, err
			}
			if !t.isValueStart() {
				return Range{}, ts.expectedValue(expect, t)
			}
			if _, err := parseValue(ts, false, v); err != nil {
				return Range{}, err
			}
			state = arrCommaOrEnd

		case arrCommaOrEnd:
			t, err := ts.peek()
			if err != nil {
				return Range{}, err
			}
			switch {
			case t.Code() == code(']'):
				ts.next()
				result = Range{Start: open.rng.Start, End: t.rng.End}
				v.arrayClose(result)
				state = arrEnd
			case t.Code() == code(','):
				ts.next()
				expect = t
				state = arrValue
			default:
				return Range{}, ts.expectedEntryOrClose(open, t)
			}
		}
	}
	return result, nil
}
