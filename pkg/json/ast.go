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

// A Kind identifies what a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindString
	KindNumber
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// A Value is a parsed JSON value.
//
// Strings hold the raw inner text between the quotes, with escape
// sequences left exactly as written.  Numbers hold the exact source
// substring; no numeric conversion is ever performed.  Objects preserve
// their entries in insertion order and keep duplicate keys.
type Value struct {
	Kind Kind

	Str     string   // KindString: inner text; KindNumber: source slice
	Bool    bool     // KindBoolean
	Items   []*Value // KindArray
	Entries []Entry  // KindObject
}

// An Entry is one key/value pair of an object.  The key is the raw
// inner text of the key string.
type Entry struct {
	Key   string
	Value *Value
}

// Get returns the value of the first entry with the given key, or nil.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != KindObject {
		return nil
	}
	for _, e := range v.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Equal reports whether v and o represent the same document.  Arrays
// compare elementwise.  Objects compare by length and by key: for every
// key of v, the first occurrence in v must equal the first occurrence
// in o.  Later occurrences of a duplicate key do not take part in the
// comparison; see DESIGN.md.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.Bool == o.Bool
	case KindString, KindNumber:
		return v.Str == o.Str
	case KindArray:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i, item := range v.Items {
			if !item.Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Entries) != len(o.Entries) {
			return false
		}
		for _, e := range v.Entries {
			if !v.Get(e.Key).Equal(o.Get(e.Key)) {
				return false
			}
		}
		return true
	}
	return false
}

// Parse parses text as a single JSON document and returns its AST.  The
// name is what diagnostics call the source, e.g. "stdin" or a file
// path.  Exactly one top-level value is accepted; trailing tokens are
// an error.
func Parse(text, name string) (*Value, *Error) {
	ast := &astVisitor{}
	src := Source{Text: text, Name: name}
	if _, err := parseValue(newTokens(src), true, ast); err != nil {
		return nil, err
	}
	return ast.result, nil
}

// Validate checks that text is a single valid JSON document without
// building an AST.
func Validate(text, name string) *Error {
	src := Source{Text: text, Name: name}
	_, err := parseValue(newTokens(src), true, noopVisitor{})
	return err
}

// noopVisitor discards all events.  It is the engine behind Validate.
type noopVisitor struct{}

func (noopVisitor) objectOpen(*token) {}
func (noopVisitor) objectKey(*token)  {}
func (noopVisitor) objectClose(Range) {}
func (noopVisitor) arrayOpen(*token)  {}
func (noopVisitor) arrayClose(Range)  {}
func (noopVisitor) scalar(*token)     {}

// astVisitor builds a Value tree from parser events.  It keeps a stack
// of partially built composites and a single result slot for the root.
type astVisitor struct {
	stack  []*astFrame
	result *Value
}

// An astFrame is a composite under construction.  Object frames hold
// the pending key between the key event and the value emitted for it.
type astFrame struct {
	value  *Value
	key    string
	hasKey bool
}

// emit places a completed value into the innermost frame, or into the
// result slot when the stack is empty.
func (a *astVisitor) emit(v *Value) {
	if len(a.stack) == 0 {
		a.result = v
		return
	}
	top := a.stack[len(a.stack)-1]
	switch top.value.Kind {
	case KindArray:
		top.value.Items = append(top.value.Items, v)
	case KindObject:
		if !top.hasKey {
			panic("json: value emitted into an object frame without a key")
		}
		top.value.Entries = append(top.value.Entries, Entry{Key: top.key, Value: v})
		top.key = ""
		top.hasKey = false
	}
}

// pop removes the innermost frame and emits its composite to the parent.
func (a *astVisitor) pop() {
	top := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	a.emit(top.value)
}

func (a *astVisitor) objectOpen(*token) {
	a.stack = append(a.stack, &astFrame{value: &Value{Kind: KindObject}})
}

func (a *astVisitor) objectKey(key *token) {
	top := a.stack[len(a.stack)-1]
	if top.value.Kind != KindObject {
		// The parser only emits key events inside objects.
		panic("json: key event outside an object frame")
	}
	top.key = key.text
	top.hasKey = true
}

func (a *astVisitor) objectClose(Range) { a.pop() }

func (a *astVisitor) arrayOpen(*token) {
	a.stack = append(a.stack, &astFrame{value: &Value{Kind: KindArray}})
}

func (a *astVisitor) arrayClose(Range) { a.pop() }

func (a *astVisitor) scalar(tok *token) {
	switch tok.Code() {
	case tNull:
		a.emit(&Value{Kind: KindNull})
	case tBoolean:
		a.emit(&Value{Kind: KindBoolean, Bool: tok.Bool()})
	case tString:
		a.emit(&Value{Kind: KindString, Str: tok.text})
	case tNumber:
		a.emit(&Value{Kind: KindNumber, Str: tok.text})
	}
}
