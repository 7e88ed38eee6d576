/*
File    : shark/eval/eval_statements.go

Statement evaluation. On success most cases return value.Unit{}, per
spec.md §4.4 ("Statements produce Unit"); ExprStmt returns its
expression's actual value so the session layer can surface it as the
REPL's display form for the last statement of a line. A ReturnStmt
returns a *ReturnSignal, and if/while/for return that signal unchanged
when one comes out of their body.
*/
package eval

import (
	"github.com/danieldeazevedo/shark/environment"
	"github.com/danieldeazevedo/shark/evalerr"
	"github.com/danieldeazevedo/shark/parser"
	"github.com/danieldeazevedo/shark/value"
)

// EvalStmt evaluates one statement against env.
func EvalStmt(stmt parser.Stmt, env *environment.Environment) (value.Value, error) {
	switch s := stmt.(type) {
	case *parser.VarDecl:
		return evalVarDecl(s, env)
	case *parser.Assign:
		return evalAssign(s, env)
	case *parser.IfStmt:
		return evalIf(s, env)
	case *parser.WhileStmt:
		return evalWhile(s, env)
	case *parser.ForStmt:
		return evalFor(s, env)
	case *parser.ReturnStmt:
		return evalReturn(s, env)
	case *parser.FunctionDecl:
		return evalFunctionDecl(s, env)
	case *parser.ExprStmt:
		return EvalExpr(s.Expr, env)
	default:
		return nil, evalerr.New(evalerr.TypeError, stmt.Pos(), "unknown statement node %T", stmt)
	}
}

// var x = expr; always creates a new binding in the innermost frame,
// shadowing any outer binding of the same name (spec.md §3.4).
func evalVarDecl(s *parser.VarDecl, env *environment.Environment) (value.Value, error) {
	v, err := EvalExpr(s.Init, env)
	if err != nil {
		return nil, err
	}
	env.Bind(s.Name, v)
	return value.Unit{}, nil
}

// x = expr; updates the binding in the nearest frame that already
// contains x; a name nothing owns yet fails NameError (spec.md §3.4).
func evalAssign(s *parser.Assign, env *environment.Environment) (value.Value, error) {
	v, err := EvalExpr(s.Value, env)
	if err != nil {
		return nil, err
	}
	if !env.Assign(s.Name, v) {
		return nil, evalerr.New(evalerr.NameError, s.Line, "assignment to undefined name %q", s.Name)
	}
	return value.Unit{}, nil
}

func evalIf(s *parser.IfStmt, env *environment.Environment) (value.Value, error) {
	cond, err := EvalExpr(s.Cond, env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return EvalBlock(s.Then, environment.NewChild(env))
	}
	if s.OtherwiseIf != nil {
		return evalIf(s.OtherwiseIf, env)
	}
	if s.Otherwise != nil {
		return EvalBlock(s.Otherwise, environment.NewChild(env))
	}
	return value.Unit{}, nil
}

func evalWhile(s *parser.WhileStmt, env *environment.Environment) (value.Value, error) {
	for {
		cond, err := EvalExpr(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(cond) {
			return value.Unit{}, nil
		}
		result, err := EvalBlock(s.Body, environment.NewChild(env))
		if err != nil {
			return nil, err
		}
		if _, ok := result.(*ReturnSignal); ok {
			return result, nil
		}
	}
}

// evalFor accepts either an Array or a range as its iterable (spec.md
// §4.4). When the iterable expression is syntactically a RangeExpr,
// the bounds are iterated directly without ever materializing an
// intermediate Array, per SPEC_FULL.md §9's laziness resolution.
func evalFor(s *parser.ForStmt, env *environment.Environment) (value.Value, error) {
	if rangeExpr, ok := s.Iterable.(*parser.RangeExpr); ok {
		return evalForRange(s, rangeExpr, env)
	}

	iterable, err := EvalExpr(s.Iterable, env)
	if err != nil {
		return nil, err
	}
	arr, ok := iterable.(*value.Array)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, s.Line,
			"for loop requires an array or range, got %s", iterable.Kind())
	}
	for _, elem := range arr.Elements {
		bodyEnv := environment.NewChild(env)
		bodyEnv.Bind(s.VarName, elem)
		result, err := EvalBlock(s.Body, bodyEnv)
		if err != nil {
			return nil, err
		}
		if _, ok := result.(*ReturnSignal); ok {
			return result, nil
		}
	}
	return value.Unit{}, nil
}

func evalForRange(s *parser.ForStmt, r *parser.RangeExpr, env *environment.Environment) (value.Value, error) {
	loVal, err := EvalExpr(r.Lo, env)
	if err != nil {
		return nil, err
	}
	hiVal, err := EvalExpr(r.Hi, env)
	if err != nil {
		return nil, err
	}
	lo, ok := loVal.(value.Int)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, r.Line, "range bounds must be Int, got %s", loVal.Kind())
	}
	hi, ok := hiVal.(value.Int)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, r.Line, "range bounds must be Int, got %s", hiVal.Kind())
	}
	for i := int64(lo); i < int64(hi); i++ {
		bodyEnv := environment.NewChild(env)
		bodyEnv.Bind(s.VarName, value.Int(i))
		result, err := EvalBlock(s.Body, bodyEnv)
		if err != nil {
			return nil, err
		}
		if _, ok := result.(*ReturnSignal); ok {
			return result, nil
		}
	}
	return value.Unit{}, nil
}

func evalReturn(s *parser.ReturnStmt, env *environment.Environment) (value.Value, error) {
	if s.Value == nil {
		return &ReturnSignal{Value: value.Unit{}}, nil
	}
	v, err := EvalExpr(s.Value, env)
	if err != nil {
		return nil, err
	}
	return &ReturnSignal{Value: v}, nil
}

// evalFunctionDecl captures env BY REFERENCE, not a snapshot — the
// resolved reading of spec.md §4.4 (see SPEC_FULL.md §4.4): this is
// what lets mutually recursive and self-recursive top-level functions
// see their own (and each other's) bindings, exactly as the teacher's
// RegisterFunction does ("Reference the current scope directly, not a
// copy").
func evalFunctionDecl(s *parser.FunctionDecl, env *environment.Environment) (value.Value, error) {
	fn := &value.Function{
		Name:    s.Name,
		Params:  s.Params,
		Body:    s.Body,
		Closure: env,
	}
	env.Bind(s.Name, fn)
	return value.Unit{}, nil
}
