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

import "strings"

// Compact renders v with no insignificant whitespace.  String inner
// text and number source slices are copied back out verbatim, so
// parsing the result yields a value equal to v.
func Compact(v *Value) string {
	var b strings.Builder
	compactValue(&b, v)
	return b.String()
}

func compactValue(b *strings.Builder, v *Value) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBoolean:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindString:
		quoted(b, v.Str)
	case KindNumber:
		b.WriteString(v.Str)
	case KindObject:
		b.WriteByte('{')
		for i, e := range v.Entries {
			if i > 0 {
				b.WriteByte(',')
			}
			quoted(b, e.Key)
			b.WriteByte(':')
			compactValue(b, e.Value)
		}
		b.WriteByte('}')
	case KindArray:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			compactValue(b, item)
		}
		b.WriteByte(']')
	}
}

func quoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
}
