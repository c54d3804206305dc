package interp

import (
	"github.com/dolthub/swiss"

	"github.com/brewin-lang/brewin/internal/value"
)

// Environment implements the binding model of spec §3/§4.3: one stack of
// values per name, plus a stack of per-frame name-sets that records which
// stacks to pop when a frame (function body, if/while branch) exits.
//
// Keeping one stack per name rather than a linked list of per-frame maps is
// what makes by-reference parameters simple: a refarg binding just shares
// its caller's top-of-stack entry, and assign() mutates that entry in
// place, so every alias of the same binding cell observes the write (see
// Environment.Assign).
//
// The top-level name→stack dictionary is backed by a swiss-table hash map
// rather than Go's built-in map, since it is the single hottest lookup path
// in the evaluator (every variable read and every call's parameter bind
// touches it).
type Environment struct {
	variables *swiss.Map[string, []value.Value]
	scopes    []map[string]struct{}
}

// NewEnvironment returns an environment with a single, empty outermost
// scope frame — the frame top-level function bindings are installed into.
func NewEnvironment() *Environment {
	return &Environment{
		variables: swiss.NewMap[string, []value.Value](64),
		scopes:    []map[string]struct{}{{}},
	}
}

// IsDefined reports whether name's binding stack is non-empty.
func (e *Environment) IsDefined(name string) bool {
	stack, ok := e.variables.Get(name)
	return ok && len(stack) > 0
}

// Get returns the currently visible (top-of-stack) value for name, chasing
// through any refarg alias to the binding cell it ultimately names.
func (e *Environment) Get(name string) (value.Value, bool) {
	stack, ok := e.variables.Get(name)
	if !ok || len(stack) == 0 {
		return nil, false
	}
	if alias, isAlias := stack[len(stack)-1].(refCell); isAlias {
		return e.Get(alias.target)
	}
	return stack[len(stack)-1], true
}

// refCell is an internal sentinel pushed onto a refarg parameter's own
// binding stack: it redirects Get/Assign to the caller's binding cell
// instead of holding a value itself, which is what makes a refarg write
// visible to every alias of the same underlying variable (spec §4.5/§8
// scenario 2). It is never observable as a Brewin' value.
type refCell struct{ target string }

func (refCell) Type() string   { return "__refcell" }
func (refCell) String() string { return "__refcell" }

// PushRefBinding aliases name to target: every Get/Assign of name is
// forwarded to target until the frame that pushed the alias is popped.
func (e *Environment) PushRefBinding(name, target string) {
	stack, _ := e.variables.Get(name)
	e.variables.Put(name, append(stack, refCell{target: target}))
	e.currentScope()[name] = struct{}{}
}

// PushBinding appends a new top-of-stack entry for name and records name in
// the current (innermost) scope frame, so the entry is popped when that
// frame exits. Used for declaring a name for the first time in a frame:
// first assignment to a bare name, parameter binding, closure free-variable
// activation.
func (e *Environment) PushBinding(name string, v value.Value) {
	stack, _ := e.variables.Get(name)
	e.variables.Put(name, append(stack, v))
	e.currentScope()[name] = struct{}{}
}

// Assign overwrites the top-of-stack entry for name if it is already
// defined (mutating the binding cell in place, so refarg aliases observe
// the write), or otherwise behaves like PushBinding. This is spec §4.3's
// assign().
func (e *Environment) Assign(name string, v value.Value) {
	stack, ok := e.variables.Get(name)
	if !ok || len(stack) == 0 {
		e.PushBinding(name, v)
		return
	}
	if alias, isAlias := stack[len(stack)-1].(refCell); isAlias {
		e.Assign(alias.target, v)
		return
	}
	stack[len(stack)-1] = v
	e.variables.Put(name, stack)
}

// PushFrame opens a new scope frame (entering a function/method body, an
// if/else branch, or a while loop body).
func (e *Environment) PushFrame() {
	e.scopes = append(e.scopes, map[string]struct{}{})
}

// PopFrame pops one entry off the stack of every name bound in the
// innermost frame, then discards that frame. This restores visibility of
// any outer binding the frame's names shadowed.
func (e *Environment) PopFrame() {
	frame := e.scopes[len(e.scopes)-1]
	for name := range frame {
		stack, ok := e.variables.Get(name)
		if !ok || len(stack) == 0 {
			continue
		}
		stack = stack[:len(stack)-1]
		e.variables.Put(name, stack)
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// FrameNames returns the names bound directly in the innermost frame, used
// by trace-mode to dump "what did this call/branch introduce".
func (e *Environment) FrameNames() []string {
	frame := e.currentScope()
	names := make([]string, 0, len(frame))
	for name := range frame {
		names = append(names, name)
	}
	return names
}

func (e *Environment) currentScope() map[string]struct{} {
	return e.scopes[len(e.scopes)-1]
}

// Snapshot returns a deep-copied map of every currently-bound name to its
// top-of-stack value. This backs lambda free-variable capture (spec §4.5):
// the snapshot shares no mutable storage with the live environment, so
// later mutation of an outer variable never leaks into a lambda that
// already captured it.
func (e *Environment) Snapshot() map[string]value.Value {
	snapshot := make(map[string]value.Value)
	e.variables.Iter(func(name string, stack []value.Value) (stop bool) {
		if v, ok := e.Get(name); ok {
			snapshot[name] = value.Deep(v)
		}
		return false
	})
	return snapshot
}
