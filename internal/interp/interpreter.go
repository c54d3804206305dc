// Package interp is the Brewin' tree-walking evaluator: value model,
// environment, operator tables, expression/statement evaluation, and call
// machinery. It consumes an *ast.Program and a host.Host and exposes a
// single Run operation, per spec §1.
package interp

import (
	"fmt"
	"io"
	"sort"

	"github.com/kr/pretty"
	"github.com/maruel/natural"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/internal/host"
	"github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/value"
)

// DefaultMaxRecursionDepth bounds do_func_call nesting so a runaway
// recursive Brewin' program fails with a Go error instead of exhausting
// the host goroutine's stack.
const DefaultMaxRecursionDepth = 1 << 16

// Config controls ambient evaluator behavior: tracing, the call-depth cap,
// and which dialect's surface is accepted. Tracing never changes what a
// program computes; the depth cap and the dialect version decide whether a
// program runs or stops with an error.
type Config struct {
	// Trace, when set, writes a line for each statement run and each
	// assignment to the TraceWriter, plus a kr/pretty dump of the callee's
	// bindings on every function entry, mirroring interpreterv4.py's
	// print_if_trace.
	Trace bool
	// TraceWriter receives trace output; ignored (nil-safe) if unset and
	// Trace is false.
	TraceWriter io.Writer
	// MaxRecursionDepth caps nested do_func_call invocations.
	MaxRecursionDepth int
	// DialectVersion selects which Brewin' dialect (1..4) gates which
	// surface is available; see gateDialect.
	DialectVersion int
}

// Interpreter holds the state one Run call threads through: the binding
// stack, the resolved host, and the active Config. A fresh Interpreter is
// cheap to construct per run, so no process-global mutable state survives
// between runs (spec §5).
type Interpreter struct {
	env       *Environment
	host      host.Host
	config    Config
	callDepth int
}

// New returns an Interpreter ready to Run a program against host h.
func New(h host.Host, cfg Config) *Interpreter {
	if cfg.MaxRecursionDepth <= 0 {
		cfg.MaxRecursionDepth = DefaultMaxRecursionDepth
	}
	if cfg.DialectVersion <= 0 {
		cfg.DialectVersion = 4
	}
	return &Interpreter{env: NewEnvironment(), host: h, config: cfg}
}

// Run installs every top-level function from program, then runs main()'s
// body. It is the evaluator's one public entry point (spec §1).
func (i *Interpreter) Run(program *ast.Program) error {
	mainDecl, err := i.install(program)
	if err != nil {
		return err
	}
	if mainDecl == nil {
		return &errors.Error{Category: errors.NameError, Message: "no main() function was found"}
	}
	_, _, err = i.runStatements(mainDecl.Statements)
	return err
}

// install binds every top-level function at the outermost scope,
// collapsing same-named definitions into an OverloadedFunc keyed by arity
// (spec §4.5). Returns the main() declaration, or nil if none was defined.
func (i *Interpreter) install(program *ast.Program) (*ast.FuncDecl, error) {
	var mainDecl *ast.FuncDecl
	for _, fn := range program.Functions {
		if err := i.gateDialect(fn); err != nil {
			return nil, err
		}
		if existing, ok := i.env.Get(fn.Name); ok {
			if i.config.DialectVersion < 2 {
				return nil, i.dialectError("a second function sharing a name")
			}
			switch t := existing.(type) {
			case value.OverloadedFunc:
				t.ByArity[len(fn.Args)] = fn
			case value.Func:
				firstDecl, _ := t.Closure.Definition.(*ast.FuncDecl)
				overloaded := value.OverloadedFunc{ByArity: map[int]*ast.FuncDecl{
					len(firstDecl.Args): firstDecl,
					len(fn.Args):        fn,
				}}
				i.env.Assign(fn.Name, overloaded)
			}
		} else {
			i.env.PushBinding(fn.Name, value.Func{Closure: &value.Closure{Definition: fn, FreeVars: map[string]value.Value{}}})
		}
		if fn.Name == "main" {
			mainDecl = fn
		}
	}
	return mainDecl, nil
}

// gateDialect rejects a function declaration's own V1-only-illegal surface
// (refarg parameters) when DialectVersion is 1 — see SPEC_FULL.md's
// "Interpreter version gating". The other three V1-gated surfaces (a second
// same-named function, lambdas, object literals) are gated at their own
// point of use: install (above), evaluateLambda, and the ObjectLiteral case
// in expressions.go.
func (i *Interpreter) gateDialect(fn *ast.FuncDecl) error {
	if i.config.DialectVersion >= 2 {
		return nil
	}
	for _, a := range fn.Args {
		if a.Scheme == ast.ByRef {
			return i.dialectError("refarg parameters")
		}
	}
	return nil
}

// dialectError reports use of a surface SPEC_FULL.md's version-gating
// section restricts to dialect version >= 2.
func (i *Interpreter) dialectError(surface string) error {
	return &errors.Error{Category: errors.TypeError, Message: surface + " require dialect version >= 2"}
}

func (i *Interpreter) trace(format string, args ...any) {
	if !i.config.Trace || i.config.TraceWriter == nil {
		return
	}
	fmt.Fprintf(i.config.TraceWriter, format+"\n", args...)
}

// traceEnvironment renders the innermost frame's bindings in natural sort
// order (so var2 follows var1, not "var10" before "var2") via kr/pretty,
// used when Config.Trace is set.
func (i *Interpreter) traceEnvironment() string {
	names := i.env.FrameNames()
	sort.Sort(natural.StringSlice(names))
	type binding struct {
		Name  string
		Value value.Value
	}
	dump := make([]binding, 0, len(names))
	for _, n := range names {
		if v, ok := i.env.Get(n); ok {
			dump = append(dump, binding{Name: n, Value: v})
		}
	}
	return fmt.Sprintf("%# v", pretty.Formatter(dump))
}
