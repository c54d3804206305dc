package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewin-lang/brewin/ast"
)

func TestShallowSharesObjectIdentity(t *testing.T) {
	obj := NewObject()
	obj.Members["x"] = Int{Value: 1}

	copied := Shallow(obj)

	require.IsType(t, &Object{}, copied)
	assert.Same(t, obj, copied.(*Object))
}

func TestDeepBreaksObjectIdentity(t *testing.T) {
	obj := NewObject()
	obj.Members["x"] = Int{Value: 1}

	copied := Deep(obj).(*Object)

	assert.NotSame(t, obj, copied)
	assert.Equal(t, Int{Value: 1}, copied.Members["x"])

	obj.Members["x"] = Int{Value: 2}
	assert.Equal(t, Int{Value: 1}, copied.Members["x"], "mutating the original must not leak into the deep copy")
}

func TestDeepPreservesCyclesWithinOneCopy(t *testing.T) {
	a := NewObject()
	a.Members["self"] = a

	copied := Deep(a).(*Object)

	assert.Same(t, copied, copied.Members["self"], "a cyclic reference must point at the SAME copy, not recurse forever")
}

func TestDeepCopiesClosureFreeVarsOnly(t *testing.T) {
	lambda := &ast.LambdaExpr{}
	fn := Func{Closure: &Closure{
		Definition: lambda,
		FreeVars:   map[string]Value{"n": Int{Value: 5}},
	}}

	copied := Deep(fn).(Func)

	assert.Same(t, lambda, copied.Closure.Definition, "Definition is immutable and must be shared, not copied")
	copied.Closure.FreeVars["n"] = Int{Value: 99}
	assert.Equal(t, Int{Value: 5}, fn.Closure.FreeVars["n"], "FreeVars maps must not be shared")
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name   string
		in     Value
		want   bool
		wantOK bool
	}{
		{"true bool", Bool{Value: true}, true, true},
		{"false bool", Bool{Value: false}, false, true},
		{"nonzero int coerces true", Int{Value: 7}, true, true},
		{"zero int coerces false", Int{Value: 0}, false, true},
		{"string does not coerce", String{Value: "x"}, false, false},
		{"nil does not coerce", Nil{}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Truthy(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestEqualObjectIsIdentity(t *testing.T) {
	a := NewObject()
	b := NewObject()

	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b), "two distinct, structurally-identical objects are not equal")
}

func TestEqualRejectsMixedTypes(t *testing.T) {
	assert.False(t, Equal(Int{Value: 1}, Bool{Value: true}))
	assert.False(t, Equal(String{Value: "1"}, Int{Value: 1}))
}

func TestEqualFuncIsClosureIdentity(t *testing.T) {
	fn := Func{Closure: &Closure{Definition: &ast.LambdaExpr{}, FreeVars: map[string]Value{}}}
	other := Func{Closure: &Closure{Definition: &ast.LambdaExpr{}, FreeVars: map[string]Value{}}}

	assert.True(t, Equal(fn, fn), "two references to the same closure must be equal")
	assert.False(t, Equal(fn, other), "distinct closures with identical shape are not equal")
}
