/*
File    : shark/builtin/builtin.go

Package builtin registers Shark's native function library into a
global environment frame (spec.md §4.5), grounded on the teacher's
arity-check-then-dispatch style (_examples/akashmaji946-go-mix/std/
math.go): each function validates its own argument count and kinds
first, returning an *evalerr.Error on mismatch, before doing any real
work. Unlike the teacher's std package (which groups builtins into
importable sub-packages with an init-time registry), Shark has no
import system — every built-in is simply bound once, by name, into the
session's root *environment.Environment, with the three Greek aliases
(Σ, μ, σ) bound alongside their ASCII counterparts per spec.md §3.1.
*/
package builtin

import (
	"fmt"
	"io"

	"github.com/danieldeazevedo/shark/environment"
	"github.com/danieldeazevedo/shark/value"
)

// NewGlobalEnv builds a fresh root environment with every built-in
// bound. out is where `print` writes its output — injectable so tests
// and the REPL can each supply their own sink.
func NewGlobalEnv(out io.Writer) *environment.Environment {
	env := environment.New()

	reg := func(name string, fn func([]value.Value) (value.Value, error)) {
		env.Bind(name, &value.Builtin{Name: name, Fn: fn})
	}

	reg("print", makePrint(out))
	reg("len", builtinLen)
	reg("range", builtinRange)

	reg("sum", builtinSum)
	reg("Σ", builtinSum)
	reg("mean", builtinMean)
	reg("μ", builtinMean)
	reg("median", builtinMedian)
	reg("mode", builtinMode)
	reg("stdev", builtinStdev)
	reg("σ", builtinStdev)
	reg("variance", builtinVariance)

	reg("min", builtinMin)
	reg("max", builtinMax)

	reg("sqrt", builtinSqrt)
	reg("abs", builtinAbs)
	reg("floor", builtinFloor)
	reg("ceil", builtinCeil)
	reg("round", builtinRound)
	reg("pow", builtinPow)

	return env
}

func makePrint(out io.Writer) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, a.Display())
		}
		fmt.Fprintln(out)
		return value.Unit{}, nil
	}
}
