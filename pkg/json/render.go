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

// Rendering of diagnostics as plain text: a header with the source
// location, a source window with a line-number gutter, caret underlines
// for the primary span, dash underlines with labels for context
// annotations, and one help section per patch showing the line with the
// replacement applied.  Color is a concern of the caller, not of this
// package.

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/openjson/gojson/pkg/indent"
)

// Format renders d as human-readable multi-line text.
func (d Diagnostic) Format() string {
	var b strings.Builder
	text := d.Source.Text

	line, col := position(text, d.Primary.Start)
	fmt.Fprintf(&b, "error: %s\n", d.Message)
	fmt.Fprintf(&b, " --> %s:%d:%d\n", d.Source.Name, line, col)

	gutter := gutterWidth(text, d)
	blank := strings.Repeat(" ", gutter)

	if text != "" {
		fmt.Fprintf(&b, "%s |\n", blank)
		lastLine := -1
		spans := append([]Annotation{{Range: d.Primary}}, d.Context...)
		for i, s := range spans {
			if num, _ := position(text, s.Range.Start); num != lastLine {
				writeSourceLine(&b, text, gutter, s.Range.Start)
				lastLine = num
			}
			marker := byte('-')
			if i == 0 {
				marker = '^'
			}
			writeUnderline(&b, text, gutter, s.Range, marker, s.Message)
		}
	}

	for _, p := range d.Patches {
		fmt.Fprintf(&b, "help: %s\n", p.Message)
		patched := p.Apply(text)
		snippet := &strings.Builder{}
		writeSourceLine(snippet, patched, gutter, p.Range.Start)
		b.WriteString(indent.String("  ", snippet.String()))
	}
	return b.String()
}

// position returns the 1-based line and column of the byte offset.
// Columns count characters, not bytes.
func position(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	line = 1 + strings.Count(text[:offset], "\n")
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	return line, 1 + utf8.RuneCountInString(text[start:offset])
}

// lineAt returns the text of the line containing the byte offset,
// without its terminator, and the offset of its first byte.
func lineAt(text string, offset int) (string, int) {
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[start:], '\n')
	if end < 0 {
		return strings.TrimSuffix(text[start:], "\r"), start
	}
	return strings.TrimSuffix(text[start:start+end], "\r"), start
}

// gutterWidth returns the width of the line-number gutter: wide enough
// for the largest line number the diagnostic refers to.
func gutterWidth(text string, d Diagnostic) int {
	max, _ := position(text, d.Primary.Start)
	for _, c := range d.Context {
		if n, _ := position(text, c.Range.Start); n > max {
			max = n
		}
	}
	return len(fmt.Sprintf("%d", max))
}

// writeUnderline writes an underline row for rng beneath its source
// line.  A span reaching past the end of its line is clamped; an empty
// span (end of input) underlines one column past the text.
func writeUnderline(b *strings.Builder, text string, gutter int, rng Range, marker byte, label string) {
	lineText, lineStart := lineAt(text, rng.Start)

	start := rng.Start
	if start > len(text) {
		start = len(text)
	}
	startCol := utf8.RuneCountInString(text[lineStart:start])
	width := runeSpan(text, rng, lineStart, len(lineText))
	fmt.Fprintf(b, "%s | %s%s", strings.Repeat(" ", gutter), strings.Repeat(" ", startCol),
		strings.Repeat(string(marker), width))
	if label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
	b.WriteString("\n")
}

// runeSpan returns the number of columns rng covers on its line, at
// least 1.
func runeSpan(text string, rng Range, lineStart, lineLen int) int {
	end := rng.End
	if max := lineStart + lineLen; end > max {
		end = max
	}
	if end <= rng.Start {
		return 1
	}
	return utf8.RuneCountInString(text[rng.Start:end])
}

// writeSourceLine writes the gutter-prefixed line of text containing
// the byte offset.
func writeSourceLine(b *strings.Builder, text string, gutter int, offset int) {
	lineText, _ := lineAt(text, offset)
	num, _ := position(text, offset)
	fmt.Fprintf(b, "%*d | %s\n", gutter, num, lineText)
}
