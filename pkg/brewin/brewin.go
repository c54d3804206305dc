// Package brewin is the embedding surface for running an already-parsed
// Brewin' program and getting back the same {"stdout": ...} envelope
// interpreterv4.py's Flask server (original_source/server.py) returned.
//
// Lexing and parsing are out of the evaluator's scope (spec §1): an
// embedder supplies a *ast.Program it built itself, the way server.py's
// caller supplied already-tokenized source to the reference interpreter.
// Execute's job is everything downstream of that: wiring stdin, running
// the evaluator, and mapping the result (or error) onto the wire shape.
package brewin

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/brewin-lang/brewin/ast"
	interperrors "github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/interp"
	"github.com/brewin-lang/brewin/internal/host"
)

// Execute runs program against a JSON request shaped like server.py's
// envelope, `{"stdin": "...", "version": 4}`, and returns a JSON response
// shaped like its reply, `{"stdout": "..."}`.
//
// On success, stdout is every line the program printed, newline-joined. On
// failure, stdout is one of the literal tokens "RuntimeError" or a
// colon-prefixed error-kind message (e.g. "NameError: ..."), matching
// interpreterv4.py's convention of folding the error into the same field
// rather than using a distinct HTTP status. SyntaxError and Timeout are
// never produced here: this package never parses source and never enforces
// a deadline, both of which are the embedder's responsibility (spec §1).
func Execute(program *ast.Program, requestJSON []byte) ([]byte, error) {
	stdin := gjson.GetBytes(requestJSON, "stdin").String()
	version := gjson.GetBytes(requestJSON, "version").Int()

	cfg := interp.Config{DialectVersion: int(version)}
	h := host.NewBuffered(strings.NewReader(stdin))
	evaluator := interp.New(h, cfg)

	if err := evaluator.Run(program); err != nil {
		return buildResponse(errorToken(err))
	}
	return buildResponse(strings.Join(h.Lines(), "\n"))
}

func errorToken(err error) string {
	if ierr, ok := err.(*interperrors.Error); ok {
		return string(ierr.Category) + ": " + ierr.Message
	}
	return "RuntimeError"
}

func buildResponse(stdout string) ([]byte, error) {
	out, err := sjson.SetBytes([]byte("{}"), "stdout", stdout)
	if err != nil {
		return nil, err
	}
	return out, nil
}
