package interp

import (
	"github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/value"
)

// coercion names a single allowed one-side conversion, e.g. {from: "int",
// to: "bool"}.
type coercion struct{ from, to string }

// pattern is one acceptable operand-type row for an operator: either an
// exact type per position (or the wildcard "any"), plus the one coercion
// permitted when the exact type doesn't match.
type pattern struct {
	types    []string
	coercion *coercion
}

// operatorTable mirrors spec §4.2 exactly: dispatch picks the first
// matching pattern in list order, matching a position either on exact type
// (or "any") or via the row's single permitted coercion.
var operatorTable = map[string][]pattern{
	"+": {
		{types: []string{"int", "int"}, coercion: &coercion{"bool", "int"}},
		{types: []string{"string", "string"}},
	},
	"-": {{types: []string{"int", "int"}, coercion: &coercion{"bool", "int"}}},
	"*": {{types: []string{"int", "int"}, coercion: &coercion{"bool", "int"}}},
	"/": {{types: []string{"int", "int"}, coercion: &coercion{"bool", "int"}}},
	"==": {
		{types: []string{"int", "int"}},
		{types: []string{"bool", "bool"}, coercion: &coercion{"int", "bool"}},
		{types: []string{"any", "any"}},
	},
	"!=": {{types: []string{"any", "any"}}},
	"<":  {{types: []string{"int", "int"}}},
	"<=": {{types: []string{"int", "int"}}},
	">":  {{types: []string{"int", "int"}}},
	">=": {{types: []string{"int", "int"}}},
	"&&": {{types: []string{"bool", "bool"}, coercion: &coercion{"int", "bool"}}},
	"||": {{types: []string{"bool", "bool"}, coercion: &coercion{"int", "bool"}}},
	"neg": {{types: []string{"int"}}},
	"!":   {{types: []string{"bool"}, coercion: &coercion{"int", "bool"}}},
}

func coerceValue(v value.Value, from, to string) value.Value {
	switch {
	case from == "int" && to == "bool":
		return value.Bool{Value: v.(value.Int).Value != 0}
	case from == "bool" && to == "int":
		iv := int64(0)
		if v.(value.Bool).Value {
			iv = 1
		}
		return value.Int{Value: iv}
	default:
		return v
	}
}

// checkAndCoerce finds the first pattern row matching operands' types,
// applying that row's coercion where needed, and returns the (possibly
// coerced) operands ready for evalOperator.
func checkAndCoerce(operands []value.Value, op string) ([]value.Value, bool) {
	for _, p := range operatorTable[op] {
		coerced := make([]value.Value, 0, len(operands))
		matched := true
		for idx, operand := range operands {
			expected := p.types[idx]
			if expected == "any" || operand.Type() == expected {
				coerced = append(coerced, operand)
				continue
			}
			if p.coercion != nil && p.coercion.from == operand.Type() && p.coercion.to == expected {
				coerced = append(coerced, coerceValue(operand, p.coercion.from, p.coercion.to))
				continue
			}
			matched = false
			break
		}
		if matched {
			return coerced, true
		}
	}
	return nil, false
}

var binaryOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"&&": true, "||": true,
}

// evalOperator applies op to already-evaluated operands (one for neg/!, two
// otherwise), coercing per operatorTable and then computing the result per
// spec §4.2. Division truncates toward zero, matching Go's native int64
// division; division by zero is an Arithmetic error.
func evalOperator(op string, operands []value.Value) (value.Value, error) {
	typeNames := make([]string, len(operands))
	for i, o := range operands {
		typeNames[i] = o.Type()
	}
	coerced, ok := checkAndCoerce(operands, op)
	if !ok {
		return nil, errors.IncompatibleOperands(op, typeNames)
	}

	if !binaryOperators[op] {
		op1 := coerced[0]
		switch op {
		case "neg":
			return value.Int{Value: -op1.(value.Int).Value}, nil
		case "!":
			return value.Bool{Value: !op1.(value.Bool).Value}, nil
		}
	}

	op1, op2 := coerced[0], coerced[1]
	switch op {
	case "+":
		if op1.Type() == "string" {
			return value.String{Value: op1.(value.String).Value + op2.(value.String).Value}, nil
		}
		return value.Int{Value: op1.(value.Int).Value + op2.(value.Int).Value}, nil
	case "-":
		return value.Int{Value: op1.(value.Int).Value - op2.(value.Int).Value}, nil
	case "*":
		return value.Int{Value: op1.(value.Int).Value * op2.(value.Int).Value}, nil
	case "/":
		denom := op2.(value.Int).Value
		if denom == 0 {
			return nil, errors.DivByZero()
		}
		return value.Int{Value: op1.(value.Int).Value / denom}, nil
	case "==":
		return value.Bool{Value: value.Equal(op1, op2)}, nil
	case "!=":
		return value.Bool{Value: !value.Equal(op1, op2)}, nil
	case "<":
		return value.Bool{Value: op1.(value.Int).Value < op2.(value.Int).Value}, nil
	case "<=":
		return value.Bool{Value: op1.(value.Int).Value <= op2.(value.Int).Value}, nil
	case ">":
		return value.Bool{Value: op1.(value.Int).Value > op2.(value.Int).Value}, nil
	case ">=":
		return value.Bool{Value: op1.(value.Int).Value >= op2.(value.Int).Value}, nil
	case "&&":
		return value.Bool{Value: op1.(value.Bool).Value && op2.(value.Bool).Value}, nil
	case "||":
		return value.Bool{Value: op1.(value.Bool).Value || op2.(value.Bool).Value}, nil
	}
	panic("unreachable: unknown operator " + op)
}
