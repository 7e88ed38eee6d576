/*
File    : shark/value/arithmetic.go

Binary/unary/comparison operator semantics and broadcasting, per
spec.md §4.3. Scalar operators are plain dispatch on the payload types;
broadcasting (`one array, one scalar` / `both arrays`) is implemented
once, generically, and reused by every arithmetic operator — following
spec.md §9's advice to "extract a small dispatch table rather than
deeply nested conditionals," adapted here as one reusable combinator
instead of a table, since Go has no pattern-matching sum types to
tabulate over directly.
*/
package value

import (
	"math"

	"github.com/danieldeazevedo/shark/evalerr"
)

// asNumeric extracts v as an exact int64 (Int only) and as a float64.
// ok is false if v is not Int or Float.
func asNumeric(v Value) (i int64, f float64, isInt bool, ok bool) {
	switch x := v.(type) {
	case Int:
		return int64(x), float64(x), true, true
	case Float:
		return 0, float64(x), false, true
	default:
		return 0, 0, false, false
	}
}

// scalarOp is the shape every arithmetic scalar operator implements;
// broadcastBinary lifts one of these to operate over Arrays.
type scalarOp func(a, b Value, line int) (Value, error)

// broadcastBinary implements spec.md §4.3's three arithmetic cases:
// both scalar, one array + one scalar, both arrays (shape-checked).
func broadcastBinary(a, b Value, line int, op scalarOp) (Value, error) {
	arrA, aIsArr := a.(*Array)
	arrB, bIsArr := b.(*Array)

	switch {
	case aIsArr && bIsArr:
		if len(arrA.Elements) != len(arrB.Elements) {
			return nil, evalerr.New(evalerr.ShapeMismatch, line,
				"mismatched array lengths %d and %d", len(arrA.Elements), len(arrB.Elements))
		}
		out := make([]Value, len(arrA.Elements))
		for i := range arrA.Elements {
			v, err := op(arrA.Elements[i], arrB.Elements[i], line)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &Array{Elements: out}, nil

	case aIsArr:
		out := make([]Value, len(arrA.Elements))
		for i, e := range arrA.Elements {
			v, err := op(e, b, line)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &Array{Elements: out}, nil

	case bIsArr:
		out := make([]Value, len(arrB.Elements))
		for i, e := range arrB.Elements {
			v, err := op(a, e, line)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &Array{Elements: out}, nil

	default:
		return op(a, b, line)
	}
}

func typeErr(line int, verb string, a, b Value) error {
	return evalerr.New(evalerr.TypeError, line, "cannot %s %s and %s", verb, a.Kind(), b.Kind())
}

func addScalar(a, b Value, line int) (Value, error) {
	if as, ok := a.(Str); ok {
		if bs, ok := b.(Str); ok {
			return as + bs, nil
		}
		return nil, typeErr(line, "add", a, b)
	}
	ia, fa, aIsInt, aOk := asNumeric(a)
	ib, fb, bIsInt, bOk := asNumeric(b)
	if !aOk || !bOk {
		return nil, typeErr(line, "add", a, b)
	}
	if aIsInt && bIsInt {
		return Int(ia + ib), nil
	}
	return Float(fa + fb), nil
}

func subScalar(a, b Value, line int) (Value, error) {
	ia, fa, aIsInt, aOk := asNumeric(a)
	ib, fb, bIsInt, bOk := asNumeric(b)
	if !aOk || !bOk {
		return nil, typeErr(line, "subtract", a, b)
	}
	if aIsInt && bIsInt {
		return Int(ia - ib), nil
	}
	return Float(fa - fb), nil
}

func mulScalar(a, b Value, line int) (Value, error) {
	ia, fa, aIsInt, aOk := asNumeric(a)
	ib, fb, bIsInt, bOk := asNumeric(b)
	if !aOk || !bOk {
		return nil, typeErr(line, "multiply", a, b)
	}
	if aIsInt && bIsInt {
		return Int(ia * ib), nil
	}
	return Float(fa * fb), nil
}

func divScalar(a, b Value, line int) (Value, error) {
	_, fa, _, aOk := asNumeric(a)
	_, fb, _, bOk := asNumeric(b)
	if !aOk || !bOk {
		return nil, typeErr(line, "divide", a, b)
	}
	if fb == 0 {
		return nil, evalerr.New(evalerr.DivisionByZero, line, "division by zero")
	}
	return Float(fa / fb), nil
}

func modScalar(a, b Value, line int) (Value, error) {
	ia, fa, aIsInt, aOk := asNumeric(a)
	ib, fb, bIsInt, bOk := asNumeric(b)
	if !aOk || !bOk {
		return nil, typeErr(line, "take the remainder of", a, b)
	}
	if aIsInt && bIsInt {
		if ib == 0 {
			return nil, evalerr.New(evalerr.DivisionByZero, line, "division by zero")
		}
		return Int(ia % ib), nil
	}
	if fb == 0 {
		return nil, evalerr.New(evalerr.DivisionByZero, line, "division by zero")
	}
	return Float(math.Mod(fa, fb)), nil
}

// powScalar implements spec.md §4.3's exponent rules: Int base with a
// non-negative Int exponent stays Int (0**0 == 1); any other
// combination — negative exponent, either operand Float — promotes to
// Float.
func powScalar(a, b Value, line int) (Value, error) {
	ia, fa, aIsInt, aOk := asNumeric(a)
	ib, fb, bIsInt, bOk := asNumeric(b)
	if !aOk || !bOk {
		return nil, typeErr(line, "exponentiate", a, b)
	}
	if aIsInt && bIsInt && ib >= 0 {
		result := int64(1)
		for i := int64(0); i < ib; i++ {
			result *= ia
		}
		return Int(result), nil
	}
	return Float(math.Pow(fa, fb)), nil
}

// Add, Sub, Mul, Div, Mod, Pow are the broadcasting entry points used
// by the evaluator for `+ - * / % **`.
func Add(a, b Value, line int) (Value, error) { return broadcastBinary(a, b, line, addScalar) }
func Sub(a, b Value, line int) (Value, error) { return broadcastBinary(a, b, line, subScalar) }
func Mul(a, b Value, line int) (Value, error) { return broadcastBinary(a, b, line, mulScalar) }
func Div(a, b Value, line int) (Value, error) { return broadcastBinary(a, b, line, divScalar) }
func Mod(a, b Value, line int) (Value, error) { return broadcastBinary(a, b, line, modScalar) }
func Pow(a, b Value, line int) (Value, error) { return broadcastBinary(a, b, line, powScalar) }

// Neg implements unary minus.
func Neg(a Value, line int) (Value, error) {
	switch x := a.(type) {
	case Int:
		return -x, nil
	case Float:
		return -x, nil
	case *Array:
		out := make([]Value, len(x.Elements))
		for i, e := range x.Elements {
			v, err := Neg(e, line)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &Array{Elements: out}, nil
	default:
		return nil, evalerr.New(evalerr.TypeError, line, "cannot negate %s", a.Kind())
	}
}

// Not implements logical `not`, returning a Bool by truthiness.
func Not(a Value) Value {
	return Bool(!Truthy(a))
}

// Relational implements `< > <= >=`. Spec.md §4.3: not defined on
// arrays (fails TypeError); numeric ordering for numbers, lexicographic
// for strings.
func Relational(op string, a, b Value, line int) (Value, error) {
	if _, ok := a.(*Array); ok {
		return nil, typeErr(line, "compare", a, b)
	}
	if _, ok := b.(*Array); ok {
		return nil, typeErr(line, "compare", a, b)
	}

	if as, aIsStr := a.(Str); aIsStr {
		bs, bIsStr := b.(Str)
		if !bIsStr {
			return nil, typeErr(line, "compare", a, b)
		}
		return Bool(compareOp(op, string(as) < string(bs), string(as) == string(bs))), nil
	}

	_, fa, _, aOk := asNumeric(a)
	_, fb, _, bOk := asNumeric(b)
	if !aOk || !bOk {
		return nil, typeErr(line, "compare", a, b)
	}
	return Bool(compareOp(op, fa < fb, fa == fb)), nil
}

func compareOp(op string, less, equal bool) bool {
	switch op {
	case "<":
		return less
	case ">":
		return !less && !equal
	case "<=":
		return less || equal
	case ">=":
		return !less
	default:
		return false
	}
}

// Equals implements `==`/`!=` element-by-element equality, including
// the array case from spec.md §4.3 ("`==` and `!=` on arrays return
// scalar bool by element-wise equality"). Int and Float compare
// numerically across kinds, consistent with their arithmetic promotion.
func Equals(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			return x == y
		}
		if y, ok := b.(Float); ok {
			return Float(x) == y
		}
		return false
	case Float:
		if y, ok := b.(Float); ok {
			return x == y
		}
		if y, ok := b.(Int); ok {
			return x == Float(y)
		}
		return false
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Unit:
		_, ok := b.(Unit)
		return ok
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equals(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	case *Builtin:
		y, ok := b.(*Builtin)
		return ok && x == y
	default:
		return false
	}
}
