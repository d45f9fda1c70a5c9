package main

import (
	"bytes"
	"io"

	"github.com/fatih/color"
)

// errorWriter writes every line it is given in red through fatih/color,
// without looking at the line's content; fatih/color itself drops the
// color codes when it has decided color output is off. `print` output
// never takes this path - only os.Stderr does.
type errorWriter struct {
	out io.Writer
	red *color.Color
}

func newErrorWriter(out io.Writer) *errorWriter {
	return &errorWriter{out: out, red: color.New(color.FgRed)}
}

func (w *errorWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if _, err := w.red.Fprint(w.out, string(line)); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
