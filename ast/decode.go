package ast

import (
	"encoding/json"
	"fmt"
)

// DecodeProgram parses a JSON-encoded program into an *ast.Program.
//
// The evaluator has no lexer/parser of its own (spec §1 treats those as
// external collaborators), so the CLI and the embedding API both need some
// concrete, already-parsed representation to hand the evaluator. JSON, with
// a "kind" discriminator per node the way spec.md's own kind-tag AST
// description reads, is that representation: a front end (or a test) can
// produce it without this module needing to know anything about Brewin'
// concrete syntax.
func DecodeProgram(data []byte) (*Program, error) {
	var raw struct {
		Functions []json.RawMessage `json:"functions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	program := &Program{Functions: make([]*FuncDecl, 0, len(raw.Functions))}
	for _, fnData := range raw.Functions {
		fn, err := decodeFuncDecl(fnData)
		if err != nil {
			return nil, err
		}
		program.Functions = append(program.Functions, fn)
	}
	return program, nil
}

func decodeFuncDecl(data json.RawMessage) (*FuncDecl, error) {
	var raw struct {
		Name       string            `json:"name"`
		Args       []json.RawMessage `json:"args"`
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	args, err := decodeArgs(raw.Args)
	if err != nil {
		return nil, err
	}
	statements, err := decodeStatements(raw.Statements)
	if err != nil {
		return nil, err
	}
	return &FuncDecl{Name: raw.Name, Args: args, Statements: statements}, nil
}

func decodeArgs(data []json.RawMessage) ([]*ArgDecl, error) {
	args := make([]*ArgDecl, 0, len(data))
	for _, d := range data {
		var raw struct {
			Name   string `json:"name"`
			Scheme string `json:"scheme"`
		}
		if err := json.Unmarshal(d, &raw); err != nil {
			return nil, err
		}
		scheme := ByVal
		if raw.Scheme == "refarg" {
			scheme = ByRef
		}
		args = append(args, &ArgDecl{Name: raw.Name, Scheme: scheme})
	}
	return args, nil
}

func decodeStatements(data []json.RawMessage) ([]Statement, error) {
	statements := make([]Statement, 0, len(data))
	for _, d := range data {
		s, err := decodeStatement(d)
		if err != nil {
			return nil, err
		}
		statements = append(statements, s)
	}
	return statements, nil
}

func decodeStatement(data json.RawMessage) (Statement, error) {
	var kindOnly struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &kindOnly); err != nil {
		return nil, err
	}
	switch kindOnly.Kind {
	case "assign":
		var raw struct {
			Name string          `json:"name"`
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		expr, err := decodeExpression(raw.Expr)
		if err != nil {
			return nil, err
		}
		return &AssignStatement{Name: raw.Name, Expression: expr}, nil
	case "call":
		var raw struct {
			Call json.RawMessage `json:"call"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		callExpr, err := decodeExpression(raw.Call)
		if err != nil {
			return nil, err
		}
		call, ok := callExpr.(*CallExpr)
		if !ok {
			return nil, fmt.Errorf("ast: \"call\" statement's call field is not a call expression")
		}
		return &CallStatement{Call: call}, nil
	case "methodcall":
		var raw struct {
			ObjRef string            `json:"objref"`
			Name   string            `json:"name"`
			Args   []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		args, err := decodeExpressions(raw.Args)
		if err != nil {
			return nil, err
		}
		return &MethodCallStatement{ObjRef: raw.ObjRef, Name: raw.Name, Args: args}, nil
	case "if":
		var raw struct {
			Condition  json.RawMessage   `json:"condition"`
			Statements []json.RawMessage `json:"statements"`
			Else       []json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeExpression(raw.Condition)
		if err != nil {
			return nil, err
		}
		statements, err := decodeStatements(raw.Statements)
		if err != nil {
			return nil, err
		}
		var elseStatements []Statement
		if raw.Else != nil {
			elseStatements, err = decodeStatements(raw.Else)
			if err != nil {
				return nil, err
			}
		}
		return &IfStatement{Condition: cond, Statements: statements, ElseStatements: elseStatements}, nil
	case "while":
		var raw struct {
			Condition  json.RawMessage   `json:"condition"`
			Statements []json.RawMessage `json:"statements"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		cond, err := decodeExpression(raw.Condition)
		if err != nil {
			return nil, err
		}
		statements, err := decodeStatements(raw.Statements)
		if err != nil {
			return nil, err
		}
		return &WhileStatement{Condition: cond, Statements: statements}, nil
	case "return":
		var raw struct {
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if len(raw.Expr) == 0 {
			return &ReturnStatement{}, nil
		}
		expr, err := decodeExpression(raw.Expr)
		if err != nil {
			return nil, err
		}
		return &ReturnStatement{Expression: expr}, nil
	default:
		return nil, fmt.Errorf("ast: unknown statement kind %q", kindOnly.Kind)
	}
}

func decodeExpressions(data []json.RawMessage) ([]Expression, error) {
	exprs := make([]Expression, 0, len(data))
	for _, d := range data {
		e, err := decodeExpression(d)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func decodeExpression(data json.RawMessage) (Expression, error) {
	var kindOnly struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &kindOnly); err != nil {
		return nil, err
	}
	switch kindOnly.Kind {
	case "int":
		var raw struct {
			Value int64 `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return &IntLiteral{Value: raw.Value}, nil
	case "string":
		var raw struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return &StringLiteral{Value: raw.Value}, nil
	case "bool":
		var raw struct {
			Value bool `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return &BoolLiteral{Value: raw.Value}, nil
	case "nil":
		return &NilLiteral{}, nil
	case "object":
		return &ObjectLiteral{}, nil
	case "var":
		var raw struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return &VarExpr{Name: raw.Name}, nil
	case "call":
		var raw struct {
			Name string            `json:"name"`
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		args, err := decodeExpressions(raw.Args)
		if err != nil {
			return nil, err
		}
		return &CallExpr{Name: raw.Name, Args: args}, nil
	case "lambda":
		var raw struct {
			Args       []json.RawMessage `json:"args"`
			Statements []json.RawMessage `json:"statements"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		args, err := decodeArgs(raw.Args)
		if err != nil {
			return nil, err
		}
		statements, err := decodeStatements(raw.Statements)
		if err != nil {
			return nil, err
		}
		return &LambdaExpr{Args: args, Statements: statements}, nil
	case "binary":
		var raw struct {
			Op   string          `json:"op"`
			Op1  json.RawMessage `json:"op1"`
			Op2  json.RawMessage `json:"op2"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		op1, err := decodeExpression(raw.Op1)
		if err != nil {
			return nil, err
		}
		op2, err := decodeExpression(raw.Op2)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: raw.Op, Op1: op1, Op2: op2}, nil
	case "unary":
		var raw struct {
			Op  string          `json:"op"`
			Op1 json.RawMessage `json:"op1"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		op1, err := decodeExpression(raw.Op1)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: raw.Op, Op1: op1}, nil
	default:
		return nil, fmt.Errorf("ast: unknown expression kind %q", kindOnly.Kind)
	}
}
