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

// Package json validates and formats JSON documents (see RFC 8259) with
// source-anchored diagnostics.
//
// Parse returns the document's AST; Validate checks syntax without
// building one.  Both stop at the first error and return an *Error that
// records the primary byte range of the failure along with the earlier
// tokens that caused the expectation, so its Diagnostic method can
// point back at them:
//
//	v, err := json.Parse(text, "stdin")
//	if err != nil {
//		io.WriteString(os.Stderr, err.Diagnostic().Format())
//		os.Exit(1)
//	}
//	os.Stdout.WriteString(json.Pretty(v, json.PrettyOptions()))
//
// Numbers are never converted: a parsed number holds the exact source
// substring and formatting emits it back verbatim.  String escapes are
// validated but not decoded.  Objects keep their entries in insertion
// order, duplicate keys included.
package json
