/*
File    : shark/eval/evaluator.go

Package eval implements Shark's tree-walking evaluator (spec.md §4.4).
Grounded on the teacher's eval.Evaluator
(_examples/akashmaji946-go-mix/eval/evaluator.go): a tree-walker that
dispatches on AST node type, threads an environment pointer, and
propagates a wrapped return value back through ordinary evaluation
rather than through a Go exception. Unlike the teacher, Shark's global
frame needs no separate Builtins/Types maps — built-ins are just
*value.Builtin bindings in the global environment (package builtin
populates them), so Eval only ever needs the environment chain.
*/
package eval

import (
	"github.com/danieldeazevedo/shark/environment"
	"github.com/danieldeazevedo/shark/parser"
	"github.com/danieldeazevedo/shark/value"
)

// ReturnSignal is the non-local-return control-flow value described in
// spec.md §9: "a dedicated control-flow signal threaded back through
// the evaluator — not an exception type shared with user errors."
// EvalStmt/EvalBlock propagate it unchanged through loops and
// conditionals; CallFunction is the only place that catches it.
type ReturnSignal struct {
	Value value.Value
}

func (r *ReturnSignal) Display() string { return r.Value.Display() }
func (r *ReturnSignal) Kind() string    { return "Return" }

// EvalProgram evaluates every top-level statement of prog in order
// against env, stopping at the first error. Used by evaluate_source.
func EvalProgram(prog *parser.Program, env *environment.Environment) error {
	for _, stmt := range prog.Statements {
		if _, err := EvalStmt(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// EvalBlock evaluates a `{ ... }` body's statements in sequence,
// short-circuiting and propagating a *ReturnSignal the moment one
// appears (a `return` inside a nested if/while/for must still unwind
// all the way to the enclosing function call).
func EvalBlock(stmts []parser.Stmt, env *environment.Environment) (value.Value, error) {
	for _, stmt := range stmts {
		result, err := EvalStmt(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, ok := result.(*ReturnSignal); ok {
			return result, nil
		}
	}
	return value.Unit{}, nil
}
