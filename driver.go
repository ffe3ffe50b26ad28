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

package main

import (
	"unicode/utf8"

	"github.com/openjson/gojson/pkg/json"
)

// A style selects between the expanded and the uglified rendering.
type style struct {
	uglify bool
	width  int
}

// format parses stdin as one JSON document and renders it.
func format(stdin []byte, s style) result {
	text, res, ok := decode(stdin)
	if !ok {
		return res
	}
	v, err := json.Parse(text, "stdin")
	if err != nil {
		return result{stderr: err.Diagnostic().Format(), status: 1}
	}
	if s.uglify {
		return result{stdout: json.Compact(v) + "\n"}
	}
	opts := json.PrettyOptions()
	opts.PreferredWidth = s.width
	return result{stdout: json.Pretty(v, opts) + "\n"}
}

// check validates stdin as one JSON document.  Success produces no
// output at all.
func check(stdin []byte) result {
	if len(stdin) == 0 {
		return result{stderr: emptyStdinMessage, status: 1}
	}
	text, res, ok := decode(stdin)
	if !ok {
		return res
	}
	if err := json.Validate(text, "stdin"); err != nil {
		return result{stderr: err.Diagnostic().Format(), status: 1}
	}
	return result{}
}

// decode rejects input that is not valid UTF-8 before any parsing.
func decode(stdin []byte) (string, result, bool) {
	if !utf8.Valid(stdin) {
		d := json.Diagnostic{
			Message: "invalid encoding",
			Source:  json.Source{Name: "stdin"},
		}
		return "", result{stderr: d.Format(), status: 1}, false
	}
	return string(stdin), result{}, true
}

const emptyStdinMessage = `error: expected non empty input from stdin
help: pipe data to stdin like so
  echo '{"rust": "is a must"}' | gojson check
`
