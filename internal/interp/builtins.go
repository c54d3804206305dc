package interp

import (
	"strconv"
	"strings"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/internal/interp/errors"
	"github.com/brewin-lang/brewin/internal/value"
)

// callBuiltin dispatches the three names the evaluator itself provides
// (print, inputi, inputs), grounded on interpreterv4.py's run_print /
// run_inputi / run_inputs. The bool result reports whether name names a
// builtin at all, so callers can fall through to a NameError otherwise.
func (i *Interpreter) callBuiltin(name string, argNodes []ast.Expression) (value.Value, bool, error) {
	switch name {
	case "print":
		v, err := i.runPrint(argNodes)
		return v, true, err
	case "inputi":
		v, err := i.runInputi(argNodes)
		return v, true, err
	case "inputs":
		v, err := i.runInputs(argNodes)
		return v, true, err
	default:
		return nil, false, nil
	}
}

// runPrint concatenates the printed form of every argument (no separator)
// and writes it as one output line. print() itself always returns nil.
func (i *Interpreter) runPrint(argNodes []ast.Expression) (value.Value, error) {
	var sb strings.Builder
	for _, node := range argNodes {
		v, err := i.evaluateExpression(node)
		if err != nil {
			return nil, err
		}
		sb.WriteString(v.String())
	}
	i.host.Output(sb.String())
	return value.Nil{}, nil
}

// runInputi optionally prints a prompt, reads one input line, and parses it
// as a base-10 integer. At most one argument (the prompt) is accepted.
func (i *Interpreter) runInputi(argNodes []ast.Expression) (value.Value, error) {
	if err := i.printPrompt(argNodes, "inputi"); err != nil {
		return nil, err
	}
	line := i.host.GetInput()
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return nil, &errors.Error{Category: errors.TypeError, Message: "inputi() did not receive an integer"}
	}
	return value.Int{Value: n}, nil
}

// runInputs optionally prints a prompt and returns one input line, as the
// host supplies it, as a String without parsing it.
func (i *Interpreter) runInputs(argNodes []ast.Expression) (value.Value, error) {
	if err := i.printPrompt(argNodes, "inputs"); err != nil {
		return nil, err
	}
	return value.String{Value: i.host.GetInput()}, nil
}

func (i *Interpreter) printPrompt(argNodes []ast.Expression, builtinName string) error {
	if len(argNodes) > 1 {
		return errors.WrongArity(builtinName, 1, len(argNodes))
	}
	if len(argNodes) == 1 {
		v, err := i.evaluateExpression(argNodes[0])
		if err != nil {
			return err
		}
		i.host.Output(v.String())
	}
	return nil
}
