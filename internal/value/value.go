// Package value implements the Brewin' runtime value model: the tagged
// union of §3 of the spec, plus the deep-copy/shallow-copy rules that give
// by-value parameters, assignment, and lambda capture their distinct
// aliasing behavior.
package value

import (
	"strconv"

	"github.com/brewin-lang/brewin/ast"
)

// Value is any runtime value a Brewin' expression can produce.
type Value interface {
	// Type names the tag, e.g. "int", "bool", "string", "nil", "func",
	// "overloaded_func", "object". Used by the error catalog and by
	// operator-table lookups.
	Type() string
	// String renders the value the way print() would, except for types
	// print() never receives unwrapped (func, overloaded_func, object).
	String() string
}

// Nil is the unit value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Int is a signed integer.
type Int struct{ Value int64 }

func (v Int) Type() string   { return "int" }
func (v Int) String() string { return strconv.FormatInt(v.Value, 10) }

// Bool is a boolean.
type Bool struct{ Value bool }

func (v Bool) Type() string { return "bool" }
func (v Bool) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// String is a UTF-8 string.
type String struct{ Value string }

func (v String) Type() string   { return "string" }
func (v String) String() string { return v.Value }

// Closure pairs an immutable func/lambda definition with the free variables
// captured at creation time (empty for top-level functions, a deep-copy
// snapshot for lambdas — see Interpreter.evaluateLambda).
type Closure struct {
	Definition ast.Callable
	FreeVars   map[string]Value
}

// Func wraps a Closure as a first-class callable value.
type Func struct{ Closure *Closure }

func (v Func) Type() string   { return "func" }
func (v Func) String() string { return "func" }

// OverloadedFunc arises only when multiple top-level functions share a
// name; it dispatches by argument count and is never assignable as a
// first-class value (see spec §4.5/§8 scenario 4).
type OverloadedFunc struct {
	// ByArity maps parameter count to the matching top-level definition.
	ByArity map[int]*ast.FuncDecl
}

func (v OverloadedFunc) Type() string   { return "overloaded_func" }
func (v OverloadedFunc) String() string { return "overloaded_func" }

// Object is a mutable, member-keyed record with reference identity:
// assigning an Object value shares the same *Object, so `b = a; a.x = 3`
// is visible through b. Equality on Object compares pointer identity.
type Object struct {
	Members map[string]Value
}

// NewObject returns a fresh, empty object, as evaluating `@` does.
func NewObject() *Object { return &Object{Members: make(map[string]Value)} }

func (v *Object) Type() string   { return "object" }
func (v *Object) String() string { return "object" }

// Shallow returns a copy that shares any underlying mutable storage (the
// Object pointer, the Closure pointer) with v. This is what plain
// assignment (`x = v`) and member assignment use: it preserves object
// identity while still producing a distinct binding-cell slot.
func Shallow(v Value) Value {
	return v
}

// Deep returns a value with no mutable storage shared with v: Objects get a
// freshly allocated member map (itself deep-copied), and Closures get a
// freshly allocated FreeVars map. Cycles in an Object graph are preserved,
// not duplicated forever, via memo. This backs by-value parameter passing,
// return-value copying, and lambda free-variable snapshotting.
func Deep(v Value) Value {
	return deepCopy(v, make(map[*Object]*Object))
}

func deepCopy(v Value, memo map[*Object]*Object) Value {
	switch t := v.(type) {
	case Nil, Int, Bool, String, OverloadedFunc:
		return v
	case Func:
		if t.Closure == nil {
			return t
		}
		freeVars := make(map[string]Value, len(t.Closure.FreeVars))
		for name, fv := range t.Closure.FreeVars {
			freeVars[name] = deepCopy(fv, memo)
		}
		return Func{Closure: &Closure{Definition: t.Closure.Definition, FreeVars: freeVars}}
	case *Object:
		if existing, ok := memo[t]; ok {
			return existing
		}
		copyObj := NewObject()
		memo[t] = copyObj
		for name, member := range t.Members {
			copyObj.Members[name] = deepCopy(member, memo)
		}
		return copyObj
	default:
		return v
	}
}

// Truthy coerces an Int to Bool (0 is false, anything else true) and
// otherwise requires a Bool, per spec §4.1's int->bool coercion rule used
// by if/while conditions and the logical operators.
func Truthy(v Value) (bool, bool) {
	switch t := v.(type) {
	case Bool:
		return t.Value, true
	case Int:
		return t.Value != 0, true
	default:
		return false, false
	}
}

// Equal implements spec §4.2's equality semantics: objects compare by
// identity, everything else (after any coercion the caller already applied)
// compares structurally. Differing types are unequal.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Int:
		return av.Value == b.(Int).Value
	case Bool:
		return av.Value == b.(Bool).Value
	case String:
		return av.Value == b.(String).Value
	case *Object:
		return av == b.(*Object)
	case Func:
		return av.Closure == b.(Func).Closure
	default:
		return false
	}
}
