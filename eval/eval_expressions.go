/*
File    : shark/eval/eval_expressions.go

Expression evaluation.
*/
package eval

import (
	"unicode/utf8"

	"github.com/danieldeazevedo/shark/environment"
	"github.com/danieldeazevedo/shark/evalerr"
	"github.com/danieldeazevedo/shark/parser"
	"github.com/danieldeazevedo/shark/value"
)

// EvalExpr evaluates one expression against env.
func EvalExpr(expr parser.Expr, env *environment.Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.NumberLit:
		if e.IsFloat {
			return value.Float(e.FloatVal), nil
		}
		return value.Int(e.IntVal), nil
	case *parser.StringLit:
		return value.Str(e.Value), nil
	case *parser.BoolLit:
		return value.Bool(e.Value), nil
	case *parser.Ident:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, evalerr.New(evalerr.NameError, e.Line, "undefined name %q", e.Name)
		}
		return v, nil
	case *parser.ArrayLit:
		return evalArrayLit(e, env)
	case *parser.RangeExpr:
		return evalRangeExpr(e, env)
	case *parser.BinaryExpr:
		return evalBinaryExpr(e, env)
	case *parser.UnaryExpr:
		return evalUnaryExpr(e, env)
	case *parser.CallExpr:
		return evalCallExpr(e, env)
	case *parser.IndexExpr:
		return evalIndexExpr(e, env)
	case *parser.FunctionLit:
		return &value.Function{Params: e.Params, Body: e.Body, Closure: env}, nil
	default:
		return nil, evalerr.New(evalerr.TypeError, expr.Pos(), "unknown expression node %T", expr)
	}
}

func evalArrayLit(e *parser.ArrayLit, env *environment.Environment) (value.Value, error) {
	elems := make([]value.Value, len(e.Elements))
	for i, elemExpr := range e.Elements {
		v, err := EvalExpr(elemExpr, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &value.Array{Elements: elems}, nil
}

// evalRangeExpr handles a bare `lo..hi` used outside a for-loop clause
// (e.g. `var r = 1..5;`): it materializes eagerly into the same Array
// the `range` builtin would build. See SPEC_FULL.md §9.
func evalRangeExpr(e *parser.RangeExpr, env *environment.Environment) (value.Value, error) {
	loVal, err := EvalExpr(e.Lo, env)
	if err != nil {
		return nil, err
	}
	hiVal, err := EvalExpr(e.Hi, env)
	if err != nil {
		return nil, err
	}
	lo, ok := loVal.(value.Int)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, e.Line, "range bounds must be Int, got %s", loVal.Kind())
	}
	hi, ok := hiVal.(value.Int)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, e.Line, "range bounds must be Int, got %s", hiVal.Kind())
	}
	return value.MakeRange(int64(lo), int64(hi)), nil
}

func evalBinaryExpr(e *parser.BinaryExpr, env *environment.Environment) (value.Value, error) {
	// `and`/`or` short-circuit: the right operand must not be evaluated
	// when the left already determines the result (spec.md §4.3).
	switch e.Op {
	case "and":
		left, err := EvalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(left) {
			return left, nil
		}
		return EvalExpr(e.Right, env)
	case "or":
		left, err := EvalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(left) {
			return left, nil
		}
		return EvalExpr(e.Right, env)
	}

	left, err := EvalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := EvalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "+":
		return value.Add(left, right, e.Line)
	case "-":
		return value.Sub(left, right, e.Line)
	case "*":
		return value.Mul(left, right, e.Line)
	case "/":
		return value.Div(left, right, e.Line)
	case "%":
		return value.Mod(left, right, e.Line)
	case "**":
		return value.Pow(left, right, e.Line)
	case "<", ">", "<=", ">=":
		return value.Relational(e.Op, left, right, e.Line)
	case "==":
		return value.Bool(value.Equals(left, right)), nil
	case "!=":
		return value.Bool(!value.Equals(left, right)), nil
	default:
		return nil, evalerr.New(evalerr.TypeError, e.Line, "unknown operator %q", e.Op)
	}
}

func evalUnaryExpr(e *parser.UnaryExpr, env *environment.Environment) (value.Value, error) {
	operand, err := EvalExpr(e.Operand, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "-":
		return value.Neg(operand, e.Line)
	case "not":
		return value.Not(operand), nil
	default:
		return nil, evalerr.New(evalerr.TypeError, e.Line, "unknown unary operator %q", e.Op)
	}
}

// evalIndexExpr implements the §3 DOMAIN supplement: `seq[idx]` on an
// Array or Str. Out-of-range and negative indices both fail IndexError
// — negative wraparound indexing is not part of the language's grammar.
func evalIndexExpr(e *parser.IndexExpr, env *environment.Environment) (value.Value, error) {
	seq, err := EvalExpr(e.Seq, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := EvalExpr(e.Index, env)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, e.Line, "index must be Int, got %s", idxVal.Kind())
	}

	switch s := seq.(type) {
	case *value.Array:
		if idx < 0 || int(idx) >= len(s.Elements) {
			return nil, evalerr.New(evalerr.IndexError, e.Line, "index %d out of range for array of length %d", idx, len(s.Elements))
		}
		return s.Elements[idx], nil
	case value.Str:
		runes := []rune(string(s))
		if idx < 0 || int(idx) >= len(runes) {
			return nil, evalerr.New(evalerr.IndexError, e.Line, "index %d out of range for string of length %d", idx, utf8.RuneCountInString(string(s)))
		}
		return value.Str(string(runes[idx])), nil
	default:
		return nil, evalerr.New(evalerr.TypeError, e.Line, "cannot index %s", seq.Kind())
	}
}
