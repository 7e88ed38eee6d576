package builtin

import (
	"unicode/utf8"

	"github.com/danieldeazevedo/shark/evalerr"
	"github.com/danieldeazevedo/shark/value"
)

// asFloat extracts a number's float64 value, reporting whether v was
// numeric at all.
func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n), true
	case value.Float:
		return float64(n), true
	default:
		return 0, false
	}
}

func wrongArity(fn string, want string, got int) error {
	return evalerr.New(evalerr.ArityError, 0, "%s expects %s argument(s), got %d", fn, want, got)
}

func notNumber(fn string, v value.Value) error {
	return evalerr.New(evalerr.TypeError, 0, "argument to `%s` must be a number, got %s", fn, v.Kind())
}

func builtinLen(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, wrongArity("len", "1", len(args))
	}
	switch v := args[0].(type) {
	case *value.Array:
		return value.Int(len(v.Elements)), nil
	case value.Str:
		return value.Int(utf8.RuneCountInString(string(v))), nil
	default:
		return nil, evalerr.New(evalerr.TypeError, 0, "argument to `len` must be an array or string, got %s", v.Kind())
	}
}

func builtinRange(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, wrongArity("range", "2", len(args))
	}
	lo, ok := args[0].(value.Int)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, 0, "arguments to `range` must be Int, got %s", args[0].Kind())
	}
	hi, ok := args[1].(value.Int)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, 0, "arguments to `range` must be Int, got %s", args[1].Kind())
	}
	return value.MakeRange(int64(lo), int64(hi)), nil
}
