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

import "testing"

// TestScanString checks that escape sequences are validated but left
// undecoded in the token's inner text.
func TestScanString(t *testing.T) {
	for _, tt := range []struct {
		line  int
		in    string
		inner string
	}{
		{line(), `""`, ""},
		{line(), `"hi"`, "hi"},
		{line(), `"a b"`, "a b"},
		{line(), `"\""`, `\"`},
		{line(), `"\\"`, `\\`},
		{line(), `"\/"`, `\/`},
		{line(), `"\b\f\n\r\t"`, `\b\f\n\r\t`},
		{line(), `"\u0041"`, `\u0041`},
		{line(), `"\uBEEF"`, `\uBEEF`},
		{line(), `"\ubeef"`, `\ubeef`},
		{line(), `"\u00415"`, `\u00415`}, // only four digits belong to the escape
		{line(), `"\u0041\u0042"`, `\u0041\u0042`},
		{line(), `"{},:[]"`, `{},:[]`}, // punctuation is inert inside strings
		{line(), `"snow☃man"`, "snow☃man"},
	} {
		toks, err := lexAll(tt.in)
		if err != nil {
			t.Errorf("%d: %q: unexpected error: %v", tt.line, tt.in, err)
			continue
		}
		if len(toks) != 1 || toks[0].code != tString {
			t.Errorf("%d: %q: expected a single string token, got %v", tt.line, tt.in, toks)
			continue
		}
		if toks[0].text != tt.inner {
			t.Errorf("%d: %q: got inner text %q, want %q", tt.line, tt.in, toks[0].text, tt.inner)
		}
		if (toks[0].rng != Range{Start: 0, End: len(tt.in)}) {
			t.Errorf("%d: %q: got range %v", tt.line, tt.in, toks[0].rng)
		}
	}
}

func TestScanStringErrors(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		code errCode
		rng  Range
	}{
		{line(), `"hi`, errUnterminatedString, Range{3, 3}},
		{line(), `"`, errUnterminatedString, Range{1, 1}},
		{line(), `"a\"`, errUnterminatedString, Range{4, 4}},
		{line(), `"a\`, errUnterminatedString, Range{3, 3}},
		{line(), `"a\u12`, errUnterminatedString, Range{6, 6}},
		{line(), `"a\x"`, errInvalidEscape, Range{3, 4}},
		{line(), `"a\ "`, errInvalidEscape, Range{3, 4}},
		{line(), `"a\U0041"`, errInvalidEscape, Range{3, 4}},
		{line(), `"a\u12g4"`, errInvalidUnicodeEscape, Range{6, 7}},
		{line(), `"a\u12"`, errInvalidUnicodeEscape, Range{6, 7}},
		{line(), "\"a\x01b\"", errControlCharacterInString, Range{2, 3}},
		{line(), "\"a\tb\"", errControlCharacterInString, Range{2, 3}},
		{line(), "\"a\nb\"", errControlCharacterInString, Range{2, 3}},
	} {
		_, err := lexAll(tt.in)
		if err == nil {
			t.Errorf("%d: %q: expected an error", tt.line, tt.in)
			continue
		}
		if err.code != tt.code {
			t.Errorf("%d: %q: got error code %d, want %d", tt.line, tt.in, err.code, tt.code)
		}
		if err.Range != tt.rng {
			t.Errorf("%d: %q: got range %v, want %v", tt.line, tt.in, err.Range, tt.rng)
		}
	}
}

// TestScanStringUnterminatedContext checks the context ranges an
// unterminated string error carries for later rendering.
func TestScanStringUnterminatedContext(t *testing.T) {
	_, err := lexAll(`  "hi`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.code != errUnterminatedString {
		t.Fatalf("got error code %d, want %d", err.code, errUnterminatedString)
	}
	if (err.openQuote != Range{Start: 2, End: 3}) {
		t.Errorf("got open quote range %v, want 2..3", err.openQuote)
	}
	if (err.body != Range{Start: 3, End: 5}) {
		t.Errorf("got body range %v, want 3..5", err.body)
	}
}
