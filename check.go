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

import "fmt"

func init() {
	register(&command{
		name:    "check",
		help:    "validate json syntax",
		example: `echo '{"rust": "is a must"}' | gojson check`,
		run:     runCheck,
	})
}

func runCheck(args []string, stdin []byte) result {
	if len(args) > 0 {
		return result{
			stderr: fmt.Sprintf("check: unexpected argument %q\n", args[0]),
			status: 1,
		}
	}
	return check(stdin)
}
