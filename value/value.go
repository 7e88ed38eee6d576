/*
File    : shark/value/value.go

Package value implements Shark's runtime value model (spec.md §3.3):
Int, Float, Bool, Str, Array, Unit, Function, Builtin. Grounded on the
teacher's objects.GoMixObject sum type (_examples/akashmaji946-go-mix/
objects/objects.go), generalized from GoMix's richer variant set (Map,
Set, List, Tuple, Struct — none of which Shark's spec names) down to
exactly the eight variants spec.md §3.3 requires.

Env is declared here, not imported from the environment package,
specifically to avoid an import cycle: Function needs to hold a
captured environment, and environment.Environment needs to hold Values.
Declaring the minimal interface at the point of use (here) and having
*environment.Environment satisfy it is the standard way to break that
cycle in Go.
*/
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danieldeazevedo/shark/parser"
)

// Value is the closed sum type of every runtime value in Shark.
type Value interface {
	// Display renders the value the way `print` and the REPL show it,
	// per spec.md §4.5's display table.
	Display() string
	// Kind names the variant for error messages ("Int", "Array", ...).
	Kind() string
}

type Int int64

func (i Int) Display() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Kind() string    { return "Int" }

type Float float64

func (f Float) Display() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
func (f Float) Kind() string { return "Float" }

type Bool bool

func (b Bool) Display() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Kind() string { return "Bool" }

type Str string

func (s Str) Display() string { return string(s) }
func (s Str) Kind() string    { return "Str" }

// Array is value-typed per spec.md §3.3: assignment copies the *Array
// pointer (a reference to the same elements), but no operation
// mutates an Array in place — every arithmetic/broadcast operation
// returns a freshly allocated Array.
type Array struct {
	Elements []Value
}

func (a *Array) Display() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *Array) Kind() string { return "Array" }

// Unit is the result of statements and of functions that fall off the
// end of their body without an explicit `return`.
type Unit struct{}

func (Unit) Display() string { return "" }
func (Unit) Kind() string    { return "Unit" }

// Env is the minimal surface Function needs from an environment frame
// chain to call itself later. *environment.Environment implements it.
type Env interface {
	Lookup(name string) (Value, bool)
	Bind(name string, v Value)
}

// Function is a user-defined function value: its declaration AST plus
// the environment pointer captured at definition time. Per spec.md
// §4.4 (and SPEC_FULL.md §4.4's resolved-ambiguity note), Closure is a
// pointer to the live defining frame, not a snapshot — this is what
// lets mutually recursive top-level functions see each other.
type Function struct {
	Name    string
	Params  []parser.Param
	Body    []parser.Stmt
	Closure Env
}

func (f *Function) Display() string { return "<function>" }
func (f *Function) Kind() string    { return "Function" }

// Builtin is a native function registered in the global frame. Each
// one validates its own arity and argument kinds and returns an
// *evalerr.Error on mismatch — mirroring the teacher's
// std/math.go arity-check-then-dispatch style. The error type is
// `error` here (not *evalerr.Error directly) so this package does not
// need to import evalerr; callers type-assert as needed.
type Builtin struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (b *Builtin) Display() string { return fmt.Sprintf("<builtin:%s>", b.Name) }
func (b *Builtin) Kind() string    { return "Builtin" }

// MakeRange builds the Array that both the `range` builtin and a bare
// `lo..hi` expression (evaluated outside a for-loop clause) produce:
// half-open, integers lo, lo+1, ..., hi-1, empty if lo >= hi.
func MakeRange(lo, hi int64) *Array {
	if hi <= lo {
		return &Array{}
	}
	elems := make([]Value, 0, hi-lo)
	for i := lo; i < hi; i++ {
		elems = append(elems, Int(i))
	}
	return &Array{Elements: elems}
}

// Truthy implements spec.md §4.3's Python-style truthiness: 0, 0.0, "",
// an empty array, and false are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Int:
		return x != 0
	case Float:
		return x != 0
	case Bool:
		return bool(x)
	case Str:
		return x != ""
	case *Array:
		return len(x.Elements) > 0
	default:
		return true
	}
}
