// Package host defines the I/O boundary between the evaluator and its
// embedder (CLI, HTTP handler, test harness). Spec §6 calls this the "Host
// I/O interface": the evaluator never touches os.Stdin/os.Stdout directly,
// so the same evaluator instance runs unchanged under a CLI, a web
// handler, or a test that feeds scripted input.
package host

import (
	"bufio"
	"io"

	"golang.org/x/text/unicode/norm"
)

// Host is what the evaluator calls for program I/O.
type Host interface {
	// Output appends one line (no trailing newline) to the captured output.
	Output(line string)
	// GetInput reads the next input line, Unicode-normalized (NFC) so that
	// visually identical input compares equal under Brewin' `==`.
	GetInput() string
}

// Buffered is a Host that records Output lines in memory and reads GetInput
// from a bufio.Scanner — the shape used by both the CLI (stdin/stdout) and
// the embedding API in pkg/brewin (a supplied stdin string, a returned
// output slice).
type Buffered struct {
	lines   []string
	scanner *bufio.Scanner
}

// NewBuffered returns a Host reading input lines from r and recording
// output in memory; call Lines to retrieve everything printed so far.
func NewBuffered(r io.Reader) *Buffered {
	return &Buffered{scanner: bufio.NewScanner(r)}
}

func (b *Buffered) Output(line string) {
	b.lines = append(b.lines, line)
}

func (b *Buffered) GetInput() string {
	if !b.scanner.Scan() {
		return ""
	}
	return norm.NFC.String(b.scanner.Text())
}

// Lines returns every line captured by Output so far, in order.
func (b *Buffered) Lines() []string {
	return b.lines
}
