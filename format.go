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
	"fmt"

	"github.com/pborman/getopt"
)

func init() {
	register(&command{
		name:    "format",
		help:    "make your json look really good",
		example: `echo '{"rust": "is a must"}' | gojson format`,
		run:     runFormat,
	})
}

func runFormat(args []string, stdin []byte) result {
	s := getopt.New()
	var uglify bool
	width := 80
	s.BoolVarLong(&uglify, "uglify", 'u',
		"remove all insignificant whitespace instead of pretty printing")
	s.IntVarLong(&width, "preferred-width", 0,
		"preferred maximum line width (not a hard maximum)", "N")

	if err := s.Getopt(append([]string{"format"}, args...), nil); err != nil {
		return result{stderr: fmt.Sprintln(err), status: 1}
	}
	if rest := s.Args(); len(rest) > 0 {
		return result{
			stderr: fmt.Sprintf("format: unexpected argument %q\n", rest[0]),
			status: 1,
		}
	}

	var widthSeen bool
	s.Visit(func(o getopt.Option) {
		if o.Name() == "--preferred-width" {
			widthSeen = true
		}
	})
	if uglify && widthSeen {
		return result{
			stderr: "format: --uglify and --preferred-width are mutually exclusive\n",
			status: 1,
		}
	}

	return format(stdin, style{uglify: uglify, width: width})
}
