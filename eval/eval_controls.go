/*
File    : shark/eval/eval_controls.go

Function-call evaluation, grounded on the teacher's evalCallExpression
(_examples/akashmaji946-go-mix/eval/eval_controls.go): evaluate the
callee, evaluate arguments left-to-right, then dispatch on whether the
callee is a user Function or a native Builtin.
*/
package eval

import (
	"github.com/danieldeazevedo/shark/environment"
	"github.com/danieldeazevedo/shark/evalerr"
	"github.com/danieldeazevedo/shark/parser"
	"github.com/danieldeazevedo/shark/value"
)

func evalCallExpr(e *parser.CallExpr, env *environment.Environment) (value.Value, error) {
	callee, err := EvalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := EvalExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.Function:
		return CallFunction(fn, args, e.Line)
	case *value.Builtin:
		v, err := fn.Fn(args)
		if err != nil {
			if ee, ok := err.(*evalerr.Error); ok && ee.Line == 0 {
				ee.Line = e.Line
			}
			return nil, err
		}
		return v, nil
	default:
		return nil, evalerr.New(evalerr.TypeError, e.Line, "%s is not callable", callee.Kind())
	}
}

// CallFunction invokes a user-defined function: arity must match
// exactly, a fresh frame is created as a child of the function's
// captured closure (NOT of the caller's frame — this is what makes the
// capture lexical rather than dynamic), parameters are bound, and the
// body is evaluated. A ReturnSignal reaching the top of the body is
// unwrapped into its carried value; falling off the end yields Unit
// (spec.md §4.4).
func CallFunction(fn *value.Function, args []value.Value, callLine int) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, evalerr.New(evalerr.ArityError, callLine,
			"function %s expects %d argument(s), got %d", fnName(fn), len(fn.Params), len(args))
	}

	closureEnv, ok := fn.Closure.(*environment.Environment)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, callLine, "function %s has no valid closure", fnName(fn))
	}
	callEnv := environment.NewChild(closureEnv)
	for i, param := range fn.Params {
		callEnv.Bind(param.Name, args[i])
	}

	result, err := EvalBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if ret, ok := result.(*ReturnSignal); ok {
		return ret.Value, nil
	}
	return value.Unit{}, nil
}

func fnName(fn *value.Function) string {
	if fn.Name == "" {
		return "<anonymous>"
	}
	return fn.Name
}
