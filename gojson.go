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

// Program gojson validates and formats JSON read from standard input.
//
// Usage: gojson [--trace TRACEFILE] COMMAND [OPTIONS]
//
// The format command writes a formatted rendering of the input to
// standard output, or a diagnostic to standard error.  The check
// command writes nothing on success and a diagnostic on failure.  The
// exit status is 0 on success and non-zero on failure.
//
// Use "gojson --help" for the list of commands and their options.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/trace"
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/openjson/gojson/pkg/indent"
	"github.com/pborman/getopt"
)

// Each subcommand registers itself with register.  The run function
// receives the command's own arguments and the full standard input.
type command struct {
	name    string
	help    string
	example string
	run     func(args []string, stdin []byte) result
}

// A result is everything a command run produces.  main is the only
// place that touches the process's real streams and exit status.
type result struct {
	stdout string
	stderr string
	status int
}

var commands = map[string]*command{}

func register(c *command) {
	commands[c.name] = c
}

// commandNames returns the registered command names, sorted.
func commandNames() []string {
	names := make([]string, 0, len(commands))
	for k := range commands {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func usage(w io.Writer) {
	getopt.PrintUsage(w)
	fmt.Fprintf(w, `
gojson is a tool for formatting and validating json inputs.

Commands:
`)
	for _, name := range commandNames() {
		c := commands[name]
		fmt.Fprintf(w, "    %s - %s\n", c.name, c.help)
		if c.example != "" {
			fmt.Fprintln(indent.NewWriter(w, "        "), c.example)
		}
		fmt.Fprintln(w)
	}
}

var stop = os.Exit

func main() {
	var help bool
	var traceP string
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.StringVarLong(&traceP, "trace", 0, "write trace into to TRACEFILE", "TRACEFILE")
	getopt.SetParameters("COMMAND [OPTIONS]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if traceP != "" {
		fp, err := os.Create(traceP)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		trace.Start(fp)
		stop = func(c int) { trace.Stop(); os.Exit(c) }
		defer func() { trace.Stop() }()
	}

	if help {
		usage(os.Stderr)
		stop(0)
	}

	args := getopt.Args()
	if len(args) == 0 {
		usage(os.Stderr)
		stop(1)
	}

	c := commands[args[0]]
	if c == nil {
		fmt.Fprintf(os.Stderr, "%s: unknown command.  Choices are %s\n",
			args[0], strings.Join(commandNames(), ", "))
		stop(1)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Annotate(err, "reading stdin"))
		stop(1)
	}

	res := c.run(args[1:], data)
	if res.stdout != "" {
		os.Stdout.WriteString(res.stdout)
	}
	if res.stderr != "" {
		os.Stderr.WriteString(res.stderr)
	}
	stop(res.status)
}
