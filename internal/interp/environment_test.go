package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewin-lang/brewin/internal/value"
)

func TestEnvironmentAssignVsPushBinding(t *testing.T) {
	env := NewEnvironment()

	env.PushBinding("x", value.Int{Value: 1})
	env.Assign("x", value.Int{Value: 2})

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{Value: 2}, v)
}

func TestEnvironmentFramePopRestoresShadowedBinding(t *testing.T) {
	env := NewEnvironment()
	env.PushBinding("x", value.Int{Value: 1})

	env.PushFrame()
	env.PushBinding("x", value.Int{Value: 2})
	v, _ := env.Get("x")
	assert.Equal(t, value.Int{Value: 2}, v)
	env.PopFrame()

	v, _ = env.Get("x")
	assert.Equal(t, value.Int{Value: 1}, v, "popping the inner frame must restore the outer binding")
}

func TestRefBindingAliasesCallerCell(t *testing.T) {
	env := NewEnvironment()
	env.PushBinding("counter", value.Int{Value: 0})

	env.PushFrame()
	env.PushRefBinding("n", "counter")
	env.Assign("n", value.Int{Value: 42})
	env.PopFrame()

	v, ok := env.Get("counter")
	assert.True(t, ok)
	assert.Equal(t, value.Int{Value: 42}, v, "assigning through a refarg alias must mutate the caller's cell")
}

func TestIsDefined(t *testing.T) {
	env := NewEnvironment()
	assert.False(t, env.IsDefined("missing"))

	env.PushBinding("present", value.Nil{})
	assert.True(t, env.IsDefined("present"))
}
