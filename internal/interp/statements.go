package interp

import (
	"strings"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/value"
)

// runStatements executes statement_list in order, propagating the first
// return value produced by a `return`, or by an if/while whose own body
// returned. didReturn distinguishes "returned nil" from "fell off the end".
func (i *Interpreter) runStatements(statements []ast.Statement) (value.Value, bool, error) {
	for _, stmt := range statements {
		v, didReturn, err := i.runStatement(stmt)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return v, true, nil
		}
	}
	return nil, false, nil
}

func (i *Interpreter) runStatement(stmt ast.Statement) (value.Value, bool, error) {
	i.trace("run %s", stmt.String())
	switch s := stmt.(type) {
	case *ast.AssignStatement:
		return nil, false, i.doAssignment(s)
	case *ast.CallStatement:
		_, err := i.doFuncCall(s.Call)
		return nil, false, err
	case *ast.MethodCallStatement:
		_, err := i.doMethodCall(s)
		return nil, false, err
	case *ast.IfStatement:
		return i.doIfStatement(s)
	case *ast.WhileStatement:
		return i.doWhileStatement(s)
	case *ast.ReturnStatement:
		if s.Expression == nil {
			return value.Nil{}, true, nil
		}
		v, err := i.evaluateExpression(s.Expression)
		if err != nil {
			return nil, false, err
		}
		return value.Deep(v), true, nil
	default:
		return nil, false, &errors.Error{Category: errors.TypeError, Message: "unknown statement kind"}
	}
}

// doAssignment handles spec §4.4's one- or two-component assignment
// target: a bare name, or a one-level `obj.member` path.
func (i *Interpreter) doAssignment(s *ast.AssignStatement) error {
	target := strings.SplitN(s.Name, ".", 2)
	v, err := i.evaluateExpression(s.Expression)
	if err != nil {
		return err
	}
	i.trace("assign %s = %s", s.Name, v.String())
	if len(target) == 1 {
		i.env.Assign(target[0], value.Shallow(v))
		return nil
	}
	return i.doMemberAssignment(target[0], target[1], v)
}

func (i *Interpreter) doMemberAssignment(varName, memberName string, v value.Value) error {
	if !i.env.IsDefined(varName) {
		return errors.MemberOnUndefined(varName, memberName)
	}
	current, _ := i.env.Get(varName)
	obj, ok := current.(*value.Object)
	if !ok {
		return errors.MemberOnNonObject(varName, current.Type())
	}
	obj.Members[memberName] = value.Shallow(v)
	return nil
}

func (i *Interpreter) doIfStatement(s *ast.IfStatement) (value.Value, bool, error) {
	cond, err := i.evalCondition(s.Condition)
	if err != nil {
		return nil, false, err
	}
	statements := s.ElseStatements
	if cond {
		statements = s.Statements
	}
	if statements == nil {
		return nil, false, nil
	}
	i.env.PushFrame()
	v, didReturn, err := i.runStatements(statements)
	i.env.PopFrame()
	return v, didReturn, err
}

// doWhileStatement pushes a single scope frame for the whole loop, not one
// per iteration: bindings a loop body introduces persist across iterations
// of that same loop frame, per spec §4.4.
func (i *Interpreter) doWhileStatement(s *ast.WhileStatement) (value.Value, bool, error) {
	i.env.PushFrame()
	defer i.env.PopFrame()

	for {
		cond, err := i.evalCondition(s.Condition)
		if err != nil {
			return nil, false, err
		}
		if !cond {
			return nil, false, nil
		}
		v, didReturn, err := i.runStatements(s.Statements)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return v, true, nil
		}
	}
}

// evalCondition evaluates an if/while condition, applying the int->bool
// coercion and rejecting any other non-bool type (spec §4.1).
func (i *Interpreter) evalCondition(expr ast.Expression) (bool, error) {
	v, err := i.evaluateExpression(expr)
	if err != nil {
		return false, err
	}
	b, ok := value.Truthy(v)
	if !ok {
		return false, errors.NonBoolCondition(v.Type())
	}
	return b, nil
}
