// Package ast defines the node types the evaluator consumes.
//
// These are hand-built trees, not the output of a bundled parser: per the
// evaluator's scope, lexing and parsing are external collaborators. Tests in
// this module construct Program/FuncDecl/statement/expression values
// directly, the way go-dws's own evaluator tests build *ast.Program values
// without invoking its parser.
package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// Node is the base interface for every AST node the evaluator visits.
type Node interface {
	// String returns a debug representation, used by trace-mode dumps.
	String() string
}

// Expression is any node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that is executed for effect and may propagate a return.
type Statement interface {
	Node
	statementNode()
}

// Callable is implemented by both FuncDecl and LambdaExpr: anything that can
// back a Closure.
type Callable interface {
	Node
	Params() []*ArgDecl
	Body() []Statement
}

// ArgScheme is a formal parameter's passing scheme.
type ArgScheme int

const (
	// ByVal parameters are deep-copied into the callee's frame.
	ByVal ArgScheme = iota
	// ByRef parameters share the caller's binding cell.
	ByRef
)

func (s ArgScheme) String() string {
	if s == ByRef {
		return "refarg"
	}
	return "byval"
}

// ArgDecl is one formal parameter of a func/lambda.
type ArgDecl struct {
	Name   string
	Scheme ArgScheme
}

func (a *ArgDecl) String() string { return a.Scheme.String() + " " + a.Name }

// Program is the root node: the set of top-level function definitions.
type Program struct {
	Functions []*FuncDecl
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, f := range p.Functions {
		out.WriteString(f.String())
		out.WriteString("\n")
	}
	return out.String()
}

// FuncDecl is a top-level `func name(args) { statements }` definition.
// Multiple FuncDecls sharing a Name collapse into one OverloadedFunc value
// at program install time (see Interpreter.install in package interp).
type FuncDecl struct {
	Name       string
	Args       []*ArgDecl
	Statements []Statement
}

func (f *FuncDecl) Params() []*ArgDecl  { return f.Args }
func (f *FuncDecl) Body() []Statement   { return f.Statements }
func (f *FuncDecl) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return "func " + f.Name + "(" + strings.Join(parts, ", ") + ")"
}

// LambdaExpr is an anonymous `lambda(args) { statements }` expression. It
// evaluates to a Func value whose free variables are a deep-copy snapshot of
// every currently-bound name at the point of evaluation.
type LambdaExpr struct {
	Args       []*ArgDecl
	Statements []Statement
}

func (l *LambdaExpr) Params() []*ArgDecl { return l.Args }
func (l *LambdaExpr) Body() []Statement  { return l.Statements }
func (l *LambdaExpr) expressionNode()    {}
func (l *LambdaExpr) String() string {
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = a.String()
	}
	return "lambda(" + strings.Join(parts, ", ") + ")"
}

// ---- Statements ----

// AssignStatement is `name = expression` or `obj.member = expression`.
type AssignStatement struct {
	Name       string // dotted: "x" or "obj.member"
	Expression Expression
}

func (s *AssignStatement) statementNode() {}
func (s *AssignStatement) String() string { return s.Name + " = " + s.Expression.String() }

// CallStatement is a function call used as a statement; its result is discarded.
type CallStatement struct {
	Call *CallExpr
}

func (s *CallStatement) statementNode() {}
func (s *CallStatement) String() string { return s.Call.String() }

// MethodCallStatement is `objref.name(args)` used as a statement.
type MethodCallStatement struct {
	ObjRef string
	Name   string
	Args   []Expression
}

func (s *MethodCallStatement) statementNode() {}
func (s *MethodCallStatement) String() string {
	return s.ObjRef + "." + s.Name + "(...)"
}

// IfStatement is `if (condition) { statements } [else { elseStatements }]`.
type IfStatement struct {
	Condition      Expression
	Statements     []Statement
	ElseStatements []Statement // nil if there is no else branch
}

func (s *IfStatement) statementNode() {}
func (s *IfStatement) String() string { return "if (" + s.Condition.String() + ") {...}" }

// WhileStatement is `while (condition) { statements }`.
type WhileStatement struct {
	Condition  Expression
	Statements []Statement
}

func (s *WhileStatement) statementNode() {}
func (s *WhileStatement) String() string { return "while (" + s.Condition.String() + ") {...}" }

// ReturnStatement is `return [expression];`. Expression is nil for a bare return.
type ReturnStatement struct {
	Expression Expression
}

func (s *ReturnStatement) statementNode() {}
func (s *ReturnStatement) String() string {
	if s.Expression == nil {
		return "return"
	}
	return "return " + s.Expression.String()
}

// ---- Expressions ----

// IntLiteral is an integer literal.
type IntLiteral struct{ Value int64 }

func (e *IntLiteral) expressionNode() {}
func (e *IntLiteral) String() string  { return strconv.FormatInt(e.Value, 10) }

// StringLiteral is a string literal.
type StringLiteral struct{ Value string }

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) String() string  { return "\"" + e.Value + "\"" }

// BoolLiteral is a boolean literal.
type BoolLiteral struct{ Value bool }

func (e *BoolLiteral) expressionNode() {}
func (e *BoolLiteral) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// NilLiteral is the `nil` literal.
type NilLiteral struct{}

func (e *NilLiteral) expressionNode() {}
func (e *NilLiteral) String() string  { return "nil" }

// ObjectLiteral is `@`, which creates a fresh, empty Object.
type ObjectLiteral struct{}

func (e *ObjectLiteral) expressionNode() {}
func (e *ObjectLiteral) String() string  { return "@" }

// VarExpr is a variable or member reference: `name` or `obj.member`.
type VarExpr struct{ Name string }

func (e *VarExpr) expressionNode() {}
func (e *VarExpr) String() string  { return e.Name }

// CallExpr is a function call used as an expression.
type CallExpr struct {
	Name string
	Args []Expression
}

func (e *CallExpr) expressionNode() {}
func (e *CallExpr) String() string  { return e.Name + "(...)" }

// BinaryExpr is a two-operand operator application.
type BinaryExpr struct {
	Op   string // "+", "-", "*", "/", "==", "!=", "<", "<=", ">", ">=", "&&", "||"
	Op1  Expression
	Op2  Expression
}

func (e *BinaryExpr) expressionNode() {}
func (e *BinaryExpr) String() string {
	return "(" + e.Op1.String() + " " + e.Op + " " + e.Op2.String() + ")"
}

// UnaryExpr is a one-operand operator application ("neg" or "!").
type UnaryExpr struct {
	Op  string
	Op1 Expression
}

func (e *UnaryExpr) expressionNode() {}
func (e *UnaryExpr) String() string  { return e.Op + e.Op1.String() }
