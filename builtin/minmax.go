package builtin

import (
	"github.com/danieldeazevedo/shark/evalerr"
	"github.com/danieldeazevedo/shark/value"
)

// minMaxOperands implements spec.md §4.5's `(array) or (…scalars)`
// overload: a single Array argument is unpacked, two-or-more scalar
// arguments are taken as-is.
func minMaxOperands(fn string, args []value.Value) ([]value.Value, error) {
	if len(args) == 1 {
		if arr, ok := args[0].(*value.Array); ok {
			if len(arr.Elements) == 0 {
				return nil, evalerr.New(evalerr.EmptyReduction, 0, "%s of an empty array is undefined", fn)
			}
			return arr.Elements, nil
		}
	}
	if len(args) < 1 {
		return nil, wrongArity(fn, "at least 1", len(args))
	}
	return args, nil
}

func builtinMin(args []value.Value) (value.Value, error) {
	operands, err := minMaxOperands("min", args)
	if err != nil {
		return nil, err
	}
	best := operands[0]
	for _, v := range operands[1:] {
		lt, err := value.Relational("<", v, best, 0)
		if err != nil {
			return nil, err
		}
		if bool(lt.(value.Bool)) {
			best = v
		}
	}
	return best, nil
}

func builtinMax(args []value.Value) (value.Value, error) {
	operands, err := minMaxOperands("max", args)
	if err != nil {
		return nil, err
	}
	best := operands[0]
	for _, v := range operands[1:] {
		gt, err := value.Relational(">", v, best, 0)
		if err != nil {
			return nil, err
		}
		if bool(gt.(value.Bool)) {
			best = v
		}
	}
	return best, nil
}
