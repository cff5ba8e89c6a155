// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"rustl/internal/errors"
	"rustl/internal/parser"
)

const PROMPT = ">> "

// Start reads lines from in, parses each one as a complete program and
// prints either the resulting tree or a formatted diagnostic.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		program, err := parser.ParseSource("repl", line)
		if err != nil {
			printError(out, line, err)
			continue
		}

		fmt.Fprintf(out, "AST:\n%s\n", program.String())
	}
}

func printError(out io.Writer, line string, err error) {
	parseErr, ok := err.(*parser.ParseError)
	if !ok {
		fmt.Fprintln(out, err)
		return
	}

	reporter := errors.NewReporter("repl", line)
	fmt.Fprint(out, reporter.Format(errors.FromParseError(parseErr)))
}
