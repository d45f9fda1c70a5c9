// Package repl drives one Glint source chunk through the full
// lex -> parse -> resolve -> evaluate pipeline, and provides a plain
// line-at-a-time loop over an io.Reader/io.Writer pair. It is the
// reference implementation of the error-reporter collaborator the core
// packages only describe as an interface: Reporter here is what
// actually renders `[line N] Error: message` to a writer and tracks the
// sticky hadError/hadRuntimeError flags a driver consults for exit
// codes.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/glint-lang/glint/interp"
	"github.com/glint-lang/glint/lexer"
	"github.com/glint-lang/glint/object"
	"github.com/glint-lang/glint/parser"
	"github.com/glint-lang/glint/resolver"
	"github.com/glint-lang/glint/token"
)

// Reporter renders static diagnostics to Out and remembers whether any
// were seen, so a driver can decide whether to run the program at all
// and which exit code to use afterward.
type Reporter struct {
	Out        io.Writer
	HadError   bool
	HadRuntime bool
}

// Report implements lexer.Reporter: a line/location/message triple
// with no associated token (used for scan errors).
func (r *Reporter) Report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// ReportToken implements parser.Reporter and resolver.Reporter.
func (r *Reporter) ReportToken(tok token.Token, message string) {
	if tok.Type == token.EOF {
		r.Report(tok.Line, " at end", message)
		return
	}
	r.Report(tok.Line, " at '"+tok.Lexeme+"'", message)
}

// ReportRuntime prints a RuntimeError and sets HadRuntime.
func (r *Reporter) ReportRuntime(err *object.RuntimeError) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", err.Message, err.Token.Line)
	r.HadRuntime = true
}

// Reset clears the sticky error flags. A REPL calls this between
// lines so one bad line doesn't poison the exit status of the rest of
// the session; a script driver running a single file does not need to.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntime = false
}

// Session is one persistent interpreter plus its reporter. Globals
// (and therefore variable bindings) survive across calls to Run, which
// is what lets a REPL build up state line by line even after a line
// raises a runtime error.
type Session struct {
	Interpreter *interp.Interpreter
	Reporter    *Reporter
}

// NewSession creates a Session writing `print` output to stdout and
// diagnostics to stderr, with clock bound to the supplied clock
// source.
func NewSession(stdout, stderr io.Writer, clock interp.ClockFn) *Session {
	return &Session{
		Interpreter: interp.New(stdout, clock),
		Reporter:    &Reporter{Out: stderr},
	}
}

// Run lexes, parses, resolves, and (if static-clean) evaluates one
// chunk of source. It reports errors through the Session's Reporter
// and never panics back to the caller.
func (s *Session) Run(source string) {
	lex := lexer.New(source, s.Reporter)
	tokens := lex.ScanTokens()

	p := parser.New(tokens, s.Reporter)
	statements := p.Parse()
	if s.Reporter.HadError {
		return
	}

	res := resolver.New(s.Reporter)
	locals := res.Resolve(statements)
	if s.Reporter.HadError {
		return
	}

	s.Interpreter.SetLocals(locals)
	if err := s.Interpreter.Interpret(statements); err != nil {
		if rtErr, ok := err.(*object.RuntimeError); ok {
			s.Reporter.ReportRuntime(rtErr)
		}
	}
}

// Start runs a classic read-print loop over in/out: one line of source
// per iteration, with the session (and therefore variable bindings)
// kept alive for the duration. It returns when in reaches EOF.
func Start(in io.Reader, out io.Writer, clock interp.ClockFn) {
	scanner := bufio.NewScanner(in)
	session := NewSession(out, out, clock)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		session.Reporter.Reset()
		session.Run(scanner.Text())
	}
}
