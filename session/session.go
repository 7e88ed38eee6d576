/*
File    : shark/session/session.go

Package session implements spec.md §6's two external entry points —
evaluate_source and evaluate_line — as a Session facade over the
parser, eval, builtin, and environment packages. Grounded on the
teacher's eval.Evaluator plus repl.Repl's executeWithRecovery
(_examples/akashmaji946-go-mix/eval/evaluator.go,
_examples/akashmaji946-go-mix/repl/repl.go): a long-lived evaluator
wrapping a persistent global frame, with each REPL line recovering from
a failed statement before moving to the next.
*/
package session

import (
	"io"

	"github.com/danieldeazevedo/shark/builtin"
	"github.com/danieldeazevedo/shark/environment"
	"github.com/danieldeazevedo/shark/eval"
	"github.com/danieldeazevedo/shark/parser"
)

// Session is a persistent interpreter: one global environment shared
// across every statement evaluated against it, per spec.md §5's
// single-threaded, synchronous model.
type Session struct {
	global *environment.Environment
}

// New builds a fresh Session with the built-in library bound into its
// global frame; out is where `print` writes.
func New(out io.Writer) *Session {
	return &Session{global: builtin.NewGlobalEnv(out)}
}

// EvaluateSource drives a fresh Session to completion over an entire
// source text (spec.md §1's `evaluate_source(text) → ()`): parse once,
// abort immediately on the first lex/parse error, then evaluate every
// top-level statement in order, stopping at the first runtime error.
func EvaluateSource(text string, out io.Writer) error {
	return New(out).EvaluateSource(text)
}

// EvaluateSource runs text against this session's global frame. Unlike
// EvaluateLine, a runtime error here is not rolled back — source-file
// execution has no "next line" to recover for.
func (s *Session) EvaluateSource(text string) error {
	prog, err := parser.Parse(text)
	if err != nil {
		return err
	}
	return eval.EvalProgram(prog, s.global)
}

// EvaluateLine implements spec.md §1's `evaluate_line(session, text) →
// Option<display_string>`: text may contain one or more top-level
// statements. Each is evaluated in turn against the session's
// persistent global frame; if one fails, the global frame's bindings
// are rolled back to their state before that statement ran (spec.md
// §5's REPL isolation requirement), and the error is returned. On
// success, the display form of the final statement is returned only if
// that statement was a bare expression — every other statement kind
// evaluates to Unit, which displays as "" and is suppressed (ok=false)
// so the REPL doesn't print a blank line after `var x = 1;`.
func (s *Session) EvaluateLine(text string) (display string, ok bool, err error) {
	prog, err := parser.Parse(text)
	if err != nil {
		return "", false, err
	}

	var lastWasExpr bool
	var lastValue string
	for _, stmt := range prog.Statements {
		_, isExpr := stmt.(*parser.ExprStmt)
		snapshot := s.global.Snapshot()

		v, evalErr := eval.EvalStmt(stmt, s.global)
		if evalErr != nil {
			s.global.Restore(snapshot)
			return "", false, evalErr
		}

		lastWasExpr = isExpr
		if isExpr {
			lastValue = v.Display()
		}
	}

	if !lastWasExpr {
		return "", false, nil
	}
	return lastValue, true, nil
}
