package interp

import (
	"strings"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/value"
)

// doFuncCall resolves a call by bare name per spec §4.5's resolution
// order: an environment binding first, then a builtin, else NameError.
func (i *Interpreter) doFuncCall(call *ast.CallExpr) (value.Value, error) {
	if v, ok := i.env.Get(call.Name); ok {
		return i.runFunction(v, call.Args, nil, call.Name)
	}
	if v, ok, err := i.callBuiltin(call.Name, call.Args); ok {
		return v, err
	}
	return nil, errors.UndefinedFunction(call.Name, len(call.Args))
}

// doMethodCall resolves `objref.name(args)`, binding `this` to objref's
// current object value.
func (i *Interpreter) doMethodCall(mcall *ast.MethodCallStatement) (value.Value, error) {
	methodVal, err := i.getMemberValue(mcall.ObjRef, mcall.Name)
	if err != nil {
		return nil, err
	}
	receiver, _ := i.env.Get(mcall.ObjRef)
	return i.runFunction(methodVal, mcall.Args, receiver, mcall.ObjRef+"."+mcall.Name)
}

// runFunction implements spec §4.5's call machinery: overload resolution
// by arity, argument evaluation, by-value/by-reference parameter binding,
// closure free-variable activation, optional `this` binding, and frame
// teardown on return.
func (i *Interpreter) runFunction(callee value.Value, argNodes []ast.Expression, methodThis value.Value, debugName string) (value.Value, error) {
	var callable ast.Callable
	freeVars := map[string]value.Value{}

	switch t := callee.(type) {
	case value.OverloadedFunc:
		found, ok := t.ByArity[len(argNodes)]
		if !ok {
			return nil, errors.OverloadMismatch(debugName, len(argNodes))
		}
		callable = found
	case value.Func:
		if t.Closure == nil {
			return nil, errors.NotCallable(debugName, callee.Type())
		}
		callable = t.Closure.Definition
		freeVars = t.Closure.FreeVars
	default:
		return nil, errors.NotCallable(debugName, callee.Type())
	}

	i.callDepth++
	defer func() { i.callDepth-- }()
	if i.callDepth > i.config.MaxRecursionDepth {
		return nil, &errors.Error{Category: errors.TypeError, Message: "maximum call depth exceeded"}
	}

	params := callable.Params()
	if len(params) != len(argNodes) {
		return nil, errors.WrongArity(debugName, len(params), len(argNodes))
	}

	argValues := make([]value.Value, len(argNodes))
	for idx, node := range argNodes {
		v, err := i.evaluateExpression(node)
		if err != nil {
			return nil, err
		}
		argValues[idx] = v
	}

	argNameSet := make(map[string]struct{}, len(params))

	i.env.PushFrame()
	for idx, p := range params {
		if p.Scheme == ast.ByRef {
			varNode, ok := argNodes[idx].(*ast.VarExpr)
			if !ok || strings.Contains(varNode.Name, ".") {
				i.env.PopFrame()
				return nil, &errors.Error{Category: errors.TypeError, Message: "refarg argument must be a plain variable name"}
			}
			i.env.PushRefBinding(p.Name, varNode.Name)
		} else {
			i.env.PushBinding(p.Name, value.Deep(argValues[idx]))
		}
		argNameSet[p.Name] = struct{}{}
	}

	for name, fv := range freeVars {
		if _, shadowed := argNameSet[name]; shadowed {
			continue
		}
		i.env.PushBinding(name, fv)
	}
	if methodThis != nil {
		i.env.PushBinding("this", methodThis)
	}

	i.trace("enter %s: %s", debugName, i.traceEnvironment())
	v, didReturn, err := i.runStatements(callable.Body())
	i.env.PopFrame()
	if err != nil {
		return nil, err
	}
	if !didReturn {
		return value.Nil{}, nil
	}
	return v, nil
}
