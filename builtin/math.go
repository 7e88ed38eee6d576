package builtin

import (
	"math"

	"github.com/danieldeazevedo/shark/evalerr"
	"github.com/danieldeazevedo/shark/value"
)

// builtinSqrt returns the square root as a Float; spec.md §4.5 gives no
// Int special case here (unlike floor/ceil/round) since a square root
// is not generally a whole number.
func builtinSqrt(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, wrongArity("sqrt", "1", len(args))
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, notNumber("sqrt", args[0])
	}
	if f < 0 {
		return nil, evalerr.New(evalerr.TypeError, 0, "cannot compute square root of a negative number")
	}
	return value.Float(math.Sqrt(f)), nil
}

// builtinAbs preserves Int/Float per spec.md's numeric-promotion rules
// (abs doesn't change magnitude's type, only its sign).
func builtinAbs(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, wrongArity("abs", "1", len(args))
	}
	switch n := args[0].(type) {
	case value.Int:
		if n < 0 {
			return -n, nil
		}
		return n, nil
	case value.Float:
		return value.Float(math.Abs(float64(n))), nil
	default:
		return nil, notNumber("abs", args[0])
	}
}

// builtinFloor/builtinCeil/builtinRound return Int: spec.md §4.5 calls
// these out as "Int returns Int", and since their result is always a
// whole number there is no reason to promote a Float input to a Float
// result.
func builtinFloor(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, wrongArity("floor", "1", len(args))
	}
	if n, ok := args[0].(value.Int); ok {
		return n, nil
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, notNumber("floor", args[0])
	}
	return value.Int(int64(math.Floor(f))), nil
}

func builtinCeil(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, wrongArity("ceil", "1", len(args))
	}
	if n, ok := args[0].(value.Int); ok {
		return n, nil
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, notNumber("ceil", args[0])
	}
	return value.Int(int64(math.Ceil(f))), nil
}

func builtinRound(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, wrongArity("round", "1", len(args))
	}
	if n, ok := args[0].(value.Int); ok {
		return n, nil
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, notNumber("round", args[0])
	}
	return value.Int(int64(math.Round(f))), nil
}

// builtinPow is identical to the `**` operator (spec.md §4.5), reusing
// value.Pow so Int-base/non-negative-Int-exponent promotion rules stay
// in exactly one place.
func builtinPow(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, wrongArity("pow", "2", len(args))
	}
	return value.Pow(args[0], args[1], 0)
}
