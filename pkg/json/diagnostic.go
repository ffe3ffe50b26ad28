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

// placeholderValue is the replacement suggested where a value is
// missing after a colon or comma.
const placeholderValue = ` "rust is a must"`

// An Annotation is a labelled context span of a diagnostic, pointing at
// an earlier token that caused the expectation that failed.
type Annotation struct {
	Message string
	Range   Range
}

// A Patch is a suggested source edit that would repair the input: the
// bytes at Range are replaced by Replacement.  An empty range is a pure
// insertion.
type Patch struct {
	Message     string
	Range       Range
	Replacement string
}

// A Diagnostic is a rendered-ready description of an Error: a one-line
// message, the primary span to underline, context annotations, and
// suggested patches.
type Diagnostic struct {
	Message string
	Primary Range
	Context []Annotation
	Patches []Patch
	Source  Source
}

// Apply returns the source text with the patch applied.
func (p Patch) Apply(text string) string {
	return text[:p.Range.Start] + p.Replacement + text[p.Range.End:]
}

// Diagnostic converts e into its diagnostic.  The conversion is pure
// and deterministic: it depends only on the error.
func (e *Error) Diagnostic() Diagnostic {
	d := Diagnostic{
		Message: e.Error(),
		Primary: e.Range,
		Source:  e.Source,
	}
	end := len(e.Source.Text)

	switch e.code {
	case errExpectedKey:
		d.Patches = []Patch{{
			Message: "consider removing the trailing comma",
			Range:   e.context.rng,
		}}

	case errExpectedColon:
		d.Context = []Annotation{{
			Message: fmt.Sprintf("expected due to %s", e.context),
			Range:   e.context.rng,
		}}
		d.Patches = []Patch{{
			Message:     "insert the missing colon",
			Range:       at(e.context.rng.End),
			Replacement: ": ",
		}}

	case errExpectedEntryOrClose:
		closer, kind := "}", "curly"
		if e.open.Code() == code('[') {
			closer, kind = "]", "square"
		}
		d.Patches = []Patch{{
			Message:     fmt.Sprintf("insert the missing %s brace", kind),
			Range:       at(end),
			Replacement: closer,
		}}

	case errExpectedCommaOrClose:
		d.Context = []Annotation{{
			Message: "expected due to the preceding key/value pair",
			Range:   e.pairSpan,
		}, {
			Message: fmt.Sprintf("object opened here by %s", e.open),
			Range:   e.open.rng,
		}}
		switch {
		case e.found.Code() == tString:
			d.Patches = []Patch{{
				Message:     fmt.Sprintf("is %s a key? consider adding a comma", e.found),
				Range:       at(e.pairSpan.End),
				Replacement: ",",
			}}
		case e.found == nil:
			d.Patches = []Patch{{
				Message:     "insert the missing curly brace",
				Range:       at(end),
				Replacement: "}",
			}}
		}

	case errExpectedValue:
		if e.context != nil {
			d.Context = []Annotation{{
				Message: fmt.Sprintf("expected due to %s", e.context),
				Range:   e.context.rng,
			}}
			d.Patches = []Patch{{
				Message:     "insert a placeholder value",
				Range:       at(e.context.rng.End),
				Replacement: placeholderValue,
			}}
		}

	case errUnexpectedLeadingZero:
		d.Context = []Annotation{{
			Message: "the leading zero",
			Range:   e.initial,
		}}
		d.Patches = []Patch{leadingZeroPatch(e)}
	}
	return d
}

// leadingZeroPatch suggests the edit that makes the number conform to
// RFC 8259.  When a non-zero digit follows the zeros, deleting the
// zeros is enough; an all-zero run collapses to a single 0.
func leadingZeroPatch(e *Error) Patch {
	text := e.Source.Text
	zerosEnd := e.extra.End
	if zerosEnd > e.extra.Start && text[zerosEnd-1] != '0' {
		// extra ends at the first non-zero digit; the zeros stop one
		// character earlier.
		zerosEnd--
	}
	if e.extra.End > zerosEnd {
		return Patch{
			Message: "consider removing the leading zero",
			Range:   Range{Start: e.initial.Start, End: zerosEnd},
		}
	}
	return Patch{
		Message:     "consider replacing the zeros with a single 0",
		Range:       Range{Start: e.initial.Start, End: e.extra.End},
		Replacement: "0",
	}
}
