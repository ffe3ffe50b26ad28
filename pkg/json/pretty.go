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

// The expanded printer.  Non-empty objects always get one entry per
// line.  Arrays are laid out compactly when their one-line rendering
// fits in what is left of the preferred line width, and expanded
// otherwise; the fit test runs bottom-up with early exit, and a
// non-empty object anywhere inside an array disqualifies it (the object
// would force a newline anyway).

import "strings"

// FormatOptions control the expanded printer.
type FormatOptions struct {
	// KeyValDelim separates a colon from its value.
	KeyValDelim string
	// Indent is the indentation unit, repeated once per nesting level.
	Indent string
	// LineEnding terminates each line: "\n" or "\r\n".
	LineEnding string
	// PreferredWidth is the line width the printer aims for.  It is
	// not a hard maximum: a scalar too long for any budget still
	// prints on one line.
	PreferredWidth int
}

// PrettyOptions returns the default options: one space after the colon,
// two-space indentation, line feeds, and a preferred width of 80.
func PrettyOptions() FormatOptions {
	return FormatOptions{
		KeyValDelim:    " ",
		Indent:         "  ",
		LineEnding:     "\n",
		PreferredWidth: 80,
	}
}

// Pretty renders v in expanded form under opts.
func Pretty(v *Value, opts FormatOptions) string {
	f := &formatBuf{opts: opts}
	f.value(v, 0)
	return f.b.String()
}

// A formatBuf accumulates output while tracking the current column (the
// byte offset since the last line terminator) so the array layout
// decision can see how much of the line is left.
type formatBuf struct {
	opts      FormatOptions
	b         strings.Builder
	lineStart int
}

func (f *formatBuf) writeString(s string) { f.b.WriteString(s) }
func (f *formatBuf) writeByte(c byte)     { f.b.WriteByte(c) }

func (f *formatBuf) quoted(s string) {
	f.writeByte('"')
	f.writeString(s)
	f.writeByte('"')
}

func (f *formatBuf) eol() {
	f.b.WriteString(f.opts.LineEnding)
	f.lineStart = f.b.Len()
}

func (f *formatBuf) indent(depth int) {
	for i := 0; i < depth; i++ {
		f.b.WriteString(f.opts.Indent)
	}
}

// column returns the byte offset since the last line terminator.
func (f *formatBuf) column() int { return f.b.Len() - f.lineStart }

// available returns the remaining line budget at the current column.
func (f *formatBuf) available() int {
	if n := f.opts.PreferredWidth - f.column(); n > 0 {
		return n
	}
	return 0
}

func (f *formatBuf) value(v *Value, depth int) {
	switch v.Kind {
	case KindNull:
		f.writeString("null")
	case KindBoolean:
		if v.Bool {
			f.writeString("true")
		} else {
			f.writeString("false")
		}
	case KindString:
		f.quoted(v.Str)
	case KindNumber:
		f.writeString(v.Str)
	case KindObject:
		f.object(v, depth)
	case KindArray:
		f.array(v, depth)
	}
}

func (f *formatBuf) object(v *Value, depth int) {
	if len(v.Entries) == 0 {
		f.writeString("{}")
		return
	}
	f.writeByte('{')
	f.eol()
	for i, e := range v.Entries {
		if i > 0 {
			f.writeByte(',')
			f.eol()
		}
		f.indent(depth + 1)
		f.quoted(e.Key)
		f.writeByte(':')
		f.writeString(f.opts.KeyValDelim)
		f.value(e.Value, depth+1)
	}
	f.eol()
	f.indent(depth)
	f.writeByte('}')
}

func (f *formatBuf) array(v *Value, depth int) {
	if len(v.Items) == 0 {
		f.writeString("[]")
		return
	}
	if compactWidth(v, f.available()) < 0 {
		f.expandedArray(v, depth)
		return
	}
	f.compactArray(v)
}

// compactArray prints the array on one line with a single space after
// each comma, recursing compactly into nested arrays.
func (f *formatBuf) compactArray(v *Value) {
	f.writeByte('[')
	for i, item := range v.Items {
		if i > 0 {
			f.writeString(", ")
		}
		if item.Kind == KindArray && len(item.Items) > 0 {
			f.compactArray(item)
			continue
		}
		f.value(item, 0)
	}
	f.writeByte(']')
}

func (f *formatBuf) expandedArray(v *Value, depth int) {
	f.writeByte('[')
	f.eol()
	for i, item := range v.Items {
		if i > 0 {
			f.writeByte(',')
			f.eol()
		}
		f.indent(depth + 1)
		f.value(item, depth+1)
	}
	f.eol()
	f.indent(depth)
	f.writeByte(']')
}

// compactWidth returns the one-line width of v, or -1 when v cannot be
// printed on one line within limit.  Widths are computed bottom-up with
// early exit: a non-empty object never fits, an array costs its
// brackets plus its children plus two bytes per ", " separator.
func compactWidth(v *Value, limit int) int {
	if limit < 0 {
		return -1
	}
	var n int
	switch v.Kind {
	case KindNull:
		n = len("null")
	case KindBoolean:
		if v.Bool {
			n = len("true")
		} else {
			n = len("false")
		}
	case KindString:
		n = len(v.Str) + 2
	case KindNumber:
		n = len(v.Str)
	case KindObject:
		if len(v.Entries) > 0 {
			return -1
		}
		n = 2
	case KindArray:
		n = 2 + 2*(len(v.Items)-1)
		if len(v.Items) == 0 {
			n = 2
		}
		for _, item := range v.Items {
			w := compactWidth(item, limit-n)
			if w < 0 {
				return -1
			}
			n += w
			if n > limit {
				return -1
			}
		}
	}
	if n > limit {
		return -1
	}
	return n
}
