package interp

import (
	"strings"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/value"
)

// evaluateExpression recursively evaluates an expression node into a Value.
func (i *Interpreter) evaluateExpression(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return value.Int{Value: e.Value}, nil
	case *ast.StringLiteral:
		return value.String{Value: e.Value}, nil
	case *ast.BoolLiteral:
		return value.Bool{Value: e.Value}, nil
	case *ast.NilLiteral:
		return value.Nil{}, nil
	case *ast.ObjectLiteral:
		if i.config.DialectVersion < 2 {
			return nil, i.dialectError("object literals")
		}
		return value.NewObject(), nil
	case *ast.VarExpr:
		return i.getVariableValue(e.Name)
	case *ast.CallExpr:
		return i.doFuncCall(e)
	case *ast.LambdaExpr:
		return i.evaluateLambda(e)
	case *ast.BinaryExpr:
		return i.evaluateOperation(e.Op, e.Op1, e.Op2)
	case *ast.UnaryExpr:
		return i.evaluateOperation(e.Op, e.Op1, nil)
	default:
		return nil, &errors.Error{Category: errors.TypeError, Message: "unknown expression kind"}
	}
}

func (i *Interpreter) evaluateOperation(op string, op1Node, op2Node ast.Expression) (value.Value, error) {
	op1, err := i.evaluateExpression(op1Node)
	if err != nil {
		return nil, err
	}
	operands := []value.Value{op1}
	if op2Node != nil {
		op2, err := i.evaluateExpression(op2Node)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op2)
	}
	return evalOperator(op, operands)
}

// getVariableValue resolves a possibly-dotted `var` expression: a bare
// name, or a one-level `obj.member` member read.
func (i *Interpreter) getVariableValue(name string) (value.Value, error) {
	parts := strings.SplitN(name, ".", 2)
	if len(parts) == 2 {
		return i.getMemberValue(parts[0], parts[1])
	}
	v, ok := i.env.Get(parts[0])
	if !ok {
		return nil, errors.Undefined(parts[0])
	}
	if _, isOverloaded := v.(value.OverloadedFunc); isOverloaded {
		return nil, errors.OverloadedAsValue(parts[0])
	}
	return v, nil
}

func (i *Interpreter) getMemberValue(varName, memberName string) (value.Value, error) {
	if !i.env.IsDefined(varName) {
		return nil, errors.Undefined(varName)
	}
	current, _ := i.env.Get(varName)
	obj, ok := current.(*value.Object)
	if !ok {
		return nil, errors.MemberReadOnNonObject(memberName, current.Type())
	}
	member, ok := obj.Members[memberName]
	if !ok {
		return nil, errors.MissingMember(memberName)
	}
	return member, nil
}

// evaluateLambda produces a Func value whose FreeVars are a deep-copy
// snapshot of every currently-bound name's top-of-stack value (spec §4.5
// "Lambda evaluation"). Because the snapshot is a deep copy, later
// mutation of an outer variable is invisible to the lambda and vice versa
// (spec §8 scenario 3).
func (i *Interpreter) evaluateLambda(lambda *ast.LambdaExpr) (value.Value, error) {
	if i.config.DialectVersion < 2 {
		return nil, i.dialectError("lambdas")
	}
	freeVars := i.env.Snapshot()
	return value.Func{Closure: &value.Closure{Definition: lambda, FreeVars: freeVars}}, nil
}
