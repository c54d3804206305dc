package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/internal/host"
)

// runProgram builds an Interpreter over a buffered host fed by stdin, runs
// program, and returns every printed line joined by "\n" plus any error.
func runProgram(t *testing.T, program *ast.Program, stdin string) (string, error) {
	t.Helper()
	h := host.NewBuffered(strings.NewReader(stdin))
	evaluator := New(h, Config{})
	err := evaluator.Run(program)
	return strings.Join(h.Lines(), "\n"), err
}

func call(name string, args ...ast.Expression) *ast.CallExpr {
	return &ast.CallExpr{Name: name, Args: args}
}

func varExpr(name string) *ast.VarExpr { return &ast.VarExpr{Name: name} }

func intLit(v int64) *ast.IntLiteral { return &ast.IntLiteral{Value: v} }

// Scenario 1: recursive factorial via a byval parameter and an overload-free
// top-level function calling itself.
func TestScenarioRecursiveFactorial(t *testing.T) {
	factorial := &ast.FuncDecl{
		Name: "factorial",
		Args: []*ast.ArgDecl{{Name: "n", Scheme: ast.ByVal}},
		Statements: []ast.Statement{
			&ast.IfStatement{
				Condition: &ast.BinaryExpr{Op: "<=", Op1: varExpr("n"), Op2: intLit(1)},
				Statements: []ast.Statement{
					&ast.ReturnStatement{Expression: intLit(1)},
				},
			},
			&ast.ReturnStatement{Expression: &ast.BinaryExpr{
				Op:  "*",
				Op1: varExpr("n"),
				Op2: call("factorial", &ast.BinaryExpr{Op: "-", Op1: varExpr("n"), Op2: intLit(1)}),
			}},
		},
	}
	main := &ast.FuncDecl{
		Name: "main",
		Statements: []ast.Statement{
			&ast.CallStatement{Call: call("print", call("factorial", intLit(5)))},
		},
	}
	program := &ast.Program{Functions: []*ast.FuncDecl{factorial, main}}

	out, err := runProgram(t, program, "")
	require.NoError(t, err)
	require.Equal(t, "120", out)
}

// Scenario 2: a refarg parameter makes the callee's assignment visible to
// the caller's variable after the call returns.
func TestScenarioByReferenceIncrement(t *testing.T) {
	increment := &ast.FuncDecl{
		Name: "increment",
		Args: []*ast.ArgDecl{{Name: "n", Scheme: ast.ByRef}},
		Statements: []ast.Statement{
			&ast.AssignStatement{Name: "n", Expression: &ast.BinaryExpr{Op: "+", Op1: varExpr("n"), Op2: intLit(1)}},
		},
	}
	main := &ast.FuncDecl{
		Name: "main",
		Statements: []ast.Statement{
			&ast.AssignStatement{Name: "counter", Expression: intLit(10)},
			&ast.CallStatement{Call: call("increment", varExpr("counter"))},
			&ast.CallStatement{Call: call("print", varExpr("counter"))},
		},
	}
	program := &ast.Program{Functions: []*ast.FuncDecl{increment, main}}

	out, err := runProgram(t, program, "")
	require.NoError(t, err)
	require.Equal(t, "11", out, "the refarg parameter must mutate counter through increment's call")
}

// Scenario 3: a lambda captures free variables by deep-copy snapshot at the
// point it's created; later mutation of the outer variable is invisible to
// the already-created closure.
func TestScenarioClosureSnapshot(t *testing.T) {
	main := &ast.FuncDecl{
		Name: "main",
		Statements: []ast.Statement{
			&ast.AssignStatement{Name: "n", Expression: intLit(1)},
			&ast.AssignStatement{Name: "snapshot", Expression: &ast.LambdaExpr{
				Statements: []ast.Statement{&ast.ReturnStatement{Expression: varExpr("n")}},
			}},
			&ast.AssignStatement{Name: "n", Expression: intLit(99)},
			&ast.CallStatement{Call: call("print", call("snapshot"))},
		},
	}
	program := &ast.Program{Functions: []*ast.FuncDecl{main}}

	out, err := runProgram(t, program, "")
	require.NoError(t, err)
	require.Equal(t, "1", out, "the lambda must return the value of n captured before the later reassignment")
}

// Scenario 4: two top-level functions sharing a name collapse into one
// OverloadedFunc dispatching by argument count.
func TestScenarioOverloadByArity(t *testing.T) {
	greetOne := &ast.FuncDecl{
		Name: "greet",
		Args: []*ast.ArgDecl{{Name: "name", Scheme: ast.ByVal}},
		Statements: []ast.Statement{
			&ast.ReturnStatement{Expression: &ast.BinaryExpr{Op: "+", Op1: &ast.StringLiteral{Value: "hi "}, Op2: varExpr("name")}},
		},
	}
	greetTwo := &ast.FuncDecl{
		Name: "greet",
		Args: []*ast.ArgDecl{{Name: "a", Scheme: ast.ByVal}, {Name: "b", Scheme: ast.ByVal}},
		Statements: []ast.Statement{
			&ast.ReturnStatement{Expression: &ast.BinaryExpr{Op: "+", Op1: varExpr("a"), Op2: varExpr("b")}},
		},
	}
	main := &ast.FuncDecl{
		Name: "main",
		Statements: []ast.Statement{
			&ast.CallStatement{Call: call("print", call("greet", &ast.StringLiteral{Value: "Ada"}))},
			&ast.CallStatement{Call: call("print", call("greet", &ast.StringLiteral{Value: "foo"}, &ast.StringLiteral{Value: "bar"}))},
		},
	}
	program := &ast.Program{Functions: []*ast.FuncDecl{greetOne, greetTwo, main}}

	out, err := runProgram(t, program, "")
	require.NoError(t, err)
	require.Equal(t, "hi Ada\nfoobar", out, "greet must dispatch by arity to the matching overload")
}

// Scenario 5: plain assignment shares object identity; a byval parameter
// receives a deep copy, so mutation through the parameter is invisible to
// the caller's object.
func TestScenarioObjectIdentity(t *testing.T) {
	mutate := &ast.FuncDecl{
		Name: "mutate",
		Args: []*ast.ArgDecl{{Name: "o", Scheme: ast.ByVal}},
		Statements: []ast.Statement{
			&ast.AssignStatement{Name: "o.x", Expression: intLit(999)},
		},
	}
	main := &ast.FuncDecl{
		Name: "main",
		Statements: []ast.Statement{
			&ast.AssignStatement{Name: "a", Expression: &ast.ObjectLiteral{}},
			&ast.AssignStatement{Name: "a.x", Expression: intLit(1)},
			&ast.AssignStatement{Name: "b", Expression: varExpr("a")},
			&ast.AssignStatement{Name: "b.x", Expression: intLit(2)},
			&ast.CallStatement{Call: call("print", varExpr("a.x"))},
			&ast.CallStatement{Call: call("print", &ast.BinaryExpr{Op: "==", Op1: varExpr("a"), Op2: varExpr("b")})},
			&ast.CallStatement{Call: call("mutate", varExpr("a"))},
			&ast.CallStatement{Call: call("print", varExpr("a.x"))},
		},
	}
	program := &ast.Program{Functions: []*ast.FuncDecl{mutate, main}}

	out, err := runProgram(t, program, "")
	require.NoError(t, err)
	require.Equal(t, "2\ntrue\n2", out, "b.x=2 mutates a through shared identity; mutate's byval copy must not")
}

// Scenario 6: an int while-condition coerces to bool, and a return inside
// an if propagates out through the enclosing while loop.
func TestScenarioIntBoolCoercionInControlFlow(t *testing.T) {
	main := &ast.FuncDecl{
		Name: "main",
		Statements: []ast.Statement{
			&ast.AssignStatement{Name: "i", Expression: intLit(0)},
			&ast.WhileStatement{
				Condition: intLit(3),
				Statements: []ast.Statement{
					&ast.CallStatement{Call: call("print", varExpr("i"))},
					&ast.AssignStatement{Name: "i", Expression: &ast.BinaryExpr{Op: "+", Op1: varExpr("i"), Op2: intLit(1)}},
					&ast.IfStatement{
						Condition: &ast.BinaryExpr{Op: ">=", Op1: varExpr("i"), Op2: intLit(3)},
						Statements: []ast.Statement{
							&ast.ReturnStatement{},
						},
					},
				},
			},
		},
	}
	program := &ast.Program{Functions: []*ast.FuncDecl{main}}

	out, err := runProgram(t, program, "")
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2", out, "a return inside the if must propagate out through the while loop")
}
