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

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustFail parses in and returns the error.
func mustFail(t *testing.T, in string) *Error {
	t.Helper()
	_, err := Parse(in, "stdin")
	if err == nil {
		t.Fatalf("%q: expected a parse error", in)
	}
	return err
}

func TestDiagnosticContexts(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want []Annotation
	}{
		{line(), `{"hi", `, []Annotation{
			{Message: `expected due to "hi"`, Range: Range{1, 5}},
		}},
		{line(), `  {"hi"    `, []Annotation{
			{Message: `expected due to "hi"`, Range: Range{3, 7}},
		}},
		{line(), `{"hi":`, []Annotation{
			{Message: "expected due to ':'", Range: Range{5, 6}},
		}},
		{line(), `{"hi": null null`, []Annotation{
			{Message: "expected due to the preceding key/value pair", Range: Range{5, 11}},
			{Message: "object opened here by '{'", Range: Range{0, 1}},
		}},
		{line(), `{"hi": null     `, []Annotation{
			{Message: "expected due to the preceding key/value pair", Range: Range{5, 11}},
			{Message: "object opened here by '{'", Range: Range{0, 1}},
		}},
		{line(), `-012`, []Annotation{
			{Message: "the leading zero", Range: Range{1, 2}},
		}},
		// No context: nothing earlier caused the expectation.
		{line(), `}`, nil},
		{line(), `"`, nil},
		{line(), `{"hi": null, }`, nil},
		{line(), `{}{`, nil},
	} {
		d := mustFail(t, tt.in).Diagnostic()
		if diff := cmp.Diff(tt.want, d.Context); diff != "" {
			t.Errorf("%d: %q: context mismatch (-want +got):\n%s", tt.line, tt.in, diff)
		}
	}
}

func TestDiagnosticPatches(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want []Patch
	}{
		{line(), `{"hi", `, []Patch{
			{Message: "insert the missing colon", Range: Range{5, 5}, Replacement: ": "},
		}},
		{line(), `  {"hi"    `, []Patch{
			{Message: "insert the missing colon", Range: Range{7, 7}, Replacement: ": "},
		}},
		{line(), `{"hi": null, }`, []Patch{
			{Message: "consider removing the trailing comma", Range: Range{11, 12}},
		}},
		{line(), `{"hi": null, `, []Patch{
			{Message: "consider removing the trailing comma", Range: Range{11, 12}},
		}},
		{line(), `{"hi": null`, []Patch{
			{Message: "insert the missing curly brace", Range: Range{11, 11}, Replacement: "}"},
		}},
		{line(), `{{`, []Patch{
			{Message: "insert the missing curly brace", Range: Range{2, 2}, Replacement: "}"},
		}},
		{line(), `{`, []Patch{
			{Message: "insert the missing curly brace", Range: Range{1, 1}, Replacement: "}"},
		}},
		{line(), `[`, []Patch{
			{Message: "insert the missing square brace", Range: Range{1, 1}, Replacement: "]"},
		}},
		{line(), `{"hi":`, []Patch{
			{Message: "insert a placeholder value", Range: Range{6, 6}, Replacement: ` "rust is a must"`},
		}},
		{line(), `{"hi": "bye" "ferris": null`, []Patch{
			{Message: `is "ferris" a key? consider adding a comma`, Range: Range{12, 12}, Replacement: ","},
		}},
		{line(), `-012`, []Patch{
			{Message: "consider removing the leading zero", Range: Range{1, 2}},
		}},
		{line(), `-000`, []Patch{
			{Message: "consider replacing the zeros with a single 0", Range: Range{1, 4}, Replacement: "0"},
		}},
		// No patch: the found token after the pair is not a key.
		{line(), `{"hi": null null`, nil},
		{line(), `"`, nil},
		{line(), `}`, nil},
	} {
		d := mustFail(t, tt.in).Diagnostic()
		if diff := cmp.Diff(tt.want, d.Patches); diff != "" {
			t.Errorf("%d: %q: patch mismatch (-want +got):\n%s", tt.line, tt.in, diff)
		}
	}
}

// TestDiagnosticScenarios walks the end-to-end failure scenarios.
func TestDiagnosticScenarios(t *testing.T) {
	// {"hi",  — the comma where the colon belongs.
	d := mustFail(t, `{"hi",`).Diagnostic()
	if d.Message != "expected colon after key" {
		t.Errorf("got message %q", d.Message)
	}
	if (d.Primary != Range{5, 6}) {
		t.Errorf("got primary %v, want 5..6", d.Primary)
	}

	// {"hi": null, } — trailing comma.
	d = mustFail(t, `{"hi": null, }`).Diagnostic()
	if d.Message != "expected key after comma" {
		t.Errorf("got message %q", d.Message)
	}
	if (d.Primary != Range{13, 14}) {
		t.Errorf("got primary %v, want 13..14", d.Primary)
	}

	// {"hi": null null — two context spans, no patch.
	d = mustFail(t, `{"hi": null null`).Diagnostic()
	if d.Message != "expected comma or closing brace" {
		t.Errorf("got message %q", d.Message)
	}
	if len(d.Context) != 2 || len(d.Patches) != 0 {
		t.Errorf("got %d contexts and %d patches, want 2 and 0", len(d.Context), len(d.Patches))
	}

	// -012 — leading zero.
	err := mustFail(t, `-012`)
	if (err.Range != Range{0, 4}) || (err.initial != Range{1, 2}) || (err.extra != Range{1, 3}) {
		t.Errorf("got primary %v initial %v extra %v", err.Range, err.initial, err.extra)
	}
}

// TestDiagnosticSpanValidity checks that every range a diagnostic
// carries stays within the source bounds.
func TestDiagnosticSpanValidity(t *testing.T) {
	inputs := []string{
		``, `}`, `{`, `[`, `{{`, `{"hi"`, `{"hi",`, `{"hi":`, `{"hi":}`,
		`{"hi": null`, `{"hi": null null`, `{"hi": null, }`, `[1,`, `[1 2]`,
		`-012`, `-000`, `"hi`, `"a\x"`, "\"a\tb\"", `@`, `tru`, `1.`, `1e+`,
		`{"hi": "bye" "ferris": null`, `null null`,
	}
	valid := func(r Range, n int) bool {
		return 0 <= r.Start && r.Start <= r.End && r.End <= n
	}
	for _, in := range inputs {
		_, err := Parse(in, "stdin")
		if err == nil {
			t.Errorf("%q: expected a parse error", in)
			continue
		}
		d := err.Diagnostic()
		if !valid(d.Primary, len(in)) {
			t.Errorf("%q: primary %v out of bounds", in, d.Primary)
		}
		for _, c := range d.Context {
			if !valid(c.Range, len(in)) {
				t.Errorf("%q: context %v out of bounds", in, c.Range)
			}
		}
		for _, p := range d.Patches {
			if !valid(p.Range, len(in)) {
				t.Errorf("%q: patch %v out of bounds", in, p.Range)
			}
		}
		// Only end-of-input failures may have an empty primary span.
		if d.Primary.Empty() && d.Primary.Start != len(in) {
			t.Errorf("%q: empty primary %v not at end of input", in, d.Primary)
		}
	}
}

// TestPatchEffectiveness applies suggested patches and checks the
// repaired source parses.
func TestPatchEffectiveness(t *testing.T) {
	for _, in := range []string{
		`{"hi": null, }`,
		`{"hi": null,   }`,
		`{"a": 1, "b": 2, }`,
	} {
		d := mustFail(t, in).Diagnostic()
		if len(d.Patches) != 1 {
			t.Fatalf("%q: got %d patches, want 1", in, len(d.Patches))
		}
		fixed := d.Patches[0].Apply(in)
		if _, err := Parse(fixed, "stdin"); err != nil {
			t.Errorf("%q: patched source %q still fails: %v", in, fixed, err)
		}
		if !strings.Contains(d.Patches[0].Message, "trailing comma") {
			t.Errorf("%q: got patch message %q", in, d.Patches[0].Message)
		}
	}

	// The missing-closer and missing-colon patches repair too.
	for _, in := range []string{`{`, `[`, `{"hi": null`} {
		d := mustFail(t, in).Diagnostic()
		if len(d.Patches) != 1 {
			t.Fatalf("%q: got %d patches, want 1", in, len(d.Patches))
		}
		fixed := d.Patches[0].Apply(in)
		if _, err := Parse(fixed, "stdin"); err != nil {
			t.Errorf("%q: patched source %q still fails: %v", in, fixed, err)
		}
	}
}
