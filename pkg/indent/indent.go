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

// Package indent indents lines of text with a prefix.
package indent

import (
	"bytes"
	"io"
	"strings"
)

// String returns s with each line prefixed by prefix.
func String(prefix, s string) string {
	if prefix == "" || s == "" {
		return s
	}
	var b strings.Builder
	for len(s) > 0 {
		b.WriteString(prefix)
		x := strings.Index(s, "\n")
		if x < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:x+1])
		s = s[x+1:]
	}
	return b.String()
}

// Bytes returns b with each line prefixed by prefix.
func Bytes(prefix, b []byte) []byte {
	if len(prefix) == 0 || len(b) == 0 {
		return b
	}
	var buf bytes.Buffer
	for len(b) > 0 {
		buf.Write(prefix)
		x := bytes.IndexByte(b, '\n')
		if x < 0 {
			buf.Write(b)
			break
		}
		buf.Write(b[:x+1])
		b = b[x+1:]
	}
	return buf.Bytes()
}

// NewWriter returns a writer that prefixes each line written to it with
// prefix before passing it on to w.  Each Write issues a single write
// to w and reports the number of bytes of the original data written,
// not counting prefixes.
func NewWriter(w io.Writer, prefix string) io.Writer {
	if prefix == "" {
		return w
	}
	return &writer{
		w:      w,
		prefix: []byte(prefix),
		bol:    true,
	}
}

type writer struct {
	w      io.Writer
	prefix []byte
	bol    bool // at the beginning of a line
}

func (w *writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	// Transform the data up front so the underlying writer sees one
	// write.  isData marks which transformed bytes came from buf so a
	// short write can be reported in terms of the original data.
	out := make([]byte, 0, len(buf)+len(w.prefix))
	isData := make([]bool, 0, cap(out))
	for _, c := range buf {
		if w.bol {
			out = append(out, w.prefix...)
			for range w.prefix {
				isData = append(isData, false)
			}
			w.bol = false
		}
		out = append(out, c)
		isData = append(isData, true)
		if c == '\n' {
			w.bol = true
		}
	}

	n, err := w.w.Write(out)
	if n > len(out) {
		n = len(out)
	}
	var written int
	for _, d := range isData[:n] {
		if d {
			written++
		}
	}
	return written, err
}
