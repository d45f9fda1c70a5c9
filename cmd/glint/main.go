// Command glint is the script driver and REPL front end for the Glint
// language core (token/lexer/ast/parser/resolver/object/interp). It is
// the external collaborator the core spec names but does not itself
// specify: argument handling, diagnostic formatting on a terminal, and
// process exit codes all live here, not in the core packages.
package main

import (
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"

	"github.com/glint-lang/glint/interp"
	"github.com/glint-lang/glint/repl"
)

const usage = `usage: glint [script]

With no arguments, glint starts an interactive REPL.
With one argument, glint runs the given script file.
`

func main() {
	opts, optind, err := getopt.Getopts(os.Args[1:], "h")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
	for _, o := range opts {
		if o.Option == 'h' {
			fmt.Print(usage)
			os.Exit(0)
		}
	}

	args := os.Args[1+optind:]
	clock := clockwork.NewRealClock()
	clockFn := interp.ClockFn(func() float64 {
		return float64(clock.Now().UnixNano()) / 1e9
	})

	switch {
	case len(args) == 0:
		runREPL(clockFn)
	case len(args) == 1:
		os.Exit(runFile(args[0], clockFn))
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(64)
	}
}

// runFile parses and executes an entire file as one program, returning
// the process exit code: 66 if the file cannot be read, 65 for a
// static error, 70 for an uncaught runtime error, 0 otherwise.
func runFile(path string, clock interp.ClockFn) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glint: %v\n", err)
		return 66
	}

	session := repl.NewSession(os.Stdout, newErrorWriter(os.Stderr), clock)
	session.Run(string(source))

	switch {
	case session.Reporter.HadError:
		return 65
	case session.Reporter.HadRuntime:
		return 70
	default:
		return 0
	}
}

// runREPL launches the bubbletea-driven interactive front end when
// stdout is a real terminal, and falls back to the plain line-reader
// loop otherwise (piped input, e.g. in scripts or CI).
func runREPL(clock interp.ClockFn) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		repl.Start(os.Stdin, os.Stdout, clock)
		return
	}
	runTUI(clock)
}
