package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/value"
)

func TestIntArithmetic(t *testing.T) {
	v, err := evalOperator("+", []value.Value{value.Int{Value: 2}, value.Int{Value: 3}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Value: 5}, v)
}

func TestStringConcatenation(t *testing.T) {
	v, err := evalOperator("+", []value.Value{value.String{Value: "foo"}, value.String{Value: "bar"}})
	require.NoError(t, err)
	assert.Equal(t, value.String{Value: "foobar"}, v)
}

func TestIntDivisionTruncatesTowardZero(t *testing.T) {
	v, err := evalOperator("/", []value.Value{value.Int{Value: -7}, value.Int{Value: 2}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Value: -3}, v)
}

func TestDivisionByZero(t *testing.T) {
	_, err := evalOperator("/", []value.Value{value.Int{Value: 1}, value.Int{Value: 0}})
	require.Error(t, err)
	ierr, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, errors.Arithmetic, ierr.Category)
}

func TestBoolIntCoercionInComparison(t *testing.T) {
	v, err := evalOperator("==", []value.Value{value.Bool{Value: true}, value.Int{Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: true}, v)
}

func TestIncompatibleOperandsIsTypeError(t *testing.T) {
	_, err := evalOperator("+", []value.Value{value.String{Value: "x"}, value.Int{Value: 1}})
	require.Error(t, err)
	ierr, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, errors.TypeError, ierr.Category)
}

func TestLogicalAndIntCoercion(t *testing.T) {
	v, err := evalOperator("&&", []value.Value{value.Int{Value: 0}, value.Bool{Value: true}})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: false}, v)
}

func TestUnaryNeg(t *testing.T) {
	v, err := evalOperator("neg", []value.Value{value.Int{Value: 5}})
	require.NoError(t, err)
	assert.Equal(t, value.Int{Value: -5}, v)
}

func TestObjectEqualityIsIdentityNotStructural(t *testing.T) {
	a := value.NewObject()
	b := value.NewObject()
	v, err := evalOperator("==", []value.Value{a, b})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: false}, v)

	v, err = evalOperator("==", []value.Value{a, a})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: true}, v)
}
