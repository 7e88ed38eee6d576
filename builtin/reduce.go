/*
File    : shark/builtin/reduce.go

Statistical reductions (spec.md §4.5), grounded in spirit on the
teacher's std/math.go arity-check-then-dispatch style but with no
teacher equivalent to adapt from directly — GoMix has no statistics
library, so these are built fresh in the teacher's idiom using only the
value package's numeric-promotion rules.
*/
package builtin

import (
	"math"
	"sort"

	"github.com/danieldeazevedo/shark/evalerr"
	"github.com/danieldeazevedo/shark/value"
)

func arrayArg(fn string, args []value.Value) (*value.Array, error) {
	if len(args) != 1 {
		return nil, wrongArity(fn, "1", len(args))
	}
	arr, ok := args[0].(*value.Array)
	if !ok {
		return nil, evalerr.New(evalerr.TypeError, 0, "argument to `%s` must be an array, got %s", fn, args[0].Kind())
	}
	return arr, nil
}

func floatsOf(fn string, arr *value.Array) ([]float64, error) {
	out := make([]float64, len(arr.Elements))
	for i, e := range arr.Elements {
		f, ok := asFloat(e)
		if !ok {
			return nil, evalerr.New(evalerr.TypeError, 0, "elements of `%s`'s argument must be numbers, got %s", fn, e.Kind())
		}
		out[i] = f
	}
	return out, nil
}

// builtinSum: result is Int iff every element is Int, else Float;
// empty array sums to Int 0.
func builtinSum(args []value.Value) (value.Value, error) {
	arr, err := arrayArg("sum", args)
	if err != nil {
		return nil, err
	}
	allInt := true
	var isum int64
	var fsum float64
	for _, e := range arr.Elements {
		switch n := e.(type) {
		case value.Int:
			isum += int64(n)
			fsum += float64(n)
		case value.Float:
			allInt = false
			fsum += float64(n)
		default:
			return nil, evalerr.New(evalerr.TypeError, 0, "elements of `sum`'s argument must be numbers, got %s", e.Kind())
		}
	}
	if allInt {
		return value.Int(isum), nil
	}
	return value.Float(fsum), nil
}

func builtinMean(args []value.Value) (value.Value, error) {
	arr, err := arrayArg("mean", args)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, evalerr.New(evalerr.EmptyReduction, 0, "mean of an empty array is undefined")
	}
	fs, err := floatsOf("mean", arr)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, f := range fs {
		total += f
	}
	return value.Float(total / float64(len(fs))), nil
}

func builtinMedian(args []value.Value) (value.Value, error) {
	arr, err := arrayArg("median", args)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, evalerr.New(evalerr.EmptyReduction, 0, "median of an empty array is undefined")
	}
	fs, err := floatsOf("median", arr)
	if err != nil {
		return nil, err
	}
	sorted := append([]float64(nil), fs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return value.Float(sorted[n/2]), nil
	}
	return value.Float((sorted[n/2-1] + sorted[n/2]) / 2), nil
}

// builtinMode returns the most frequent element; ties (including an
// all-unique array) resolve to the first element encountered, per
// spec.md §9's resolution of the unstated ambiguity.
func builtinMode(args []value.Value) (value.Value, error) {
	arr, err := arrayArg("mode", args)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, evalerr.New(evalerr.EmptyReduction, 0, "mode of an empty array is undefined")
	}

	type count struct {
		v value.Value
		n int
	}
	var counts []count
	for _, e := range arr.Elements {
		found := false
		for i := range counts {
			if value.Equals(counts[i].v, e) {
				counts[i].n++
				found = true
				break
			}
		}
		if !found {
			counts = append(counts, count{v: e, n: 1})
		}
	}

	best := counts[0]
	for _, c := range counts[1:] {
		if c.n > best.n {
			best = c
		}
	}
	return best.v, nil
}

func builtinVariance(args []value.Value) (value.Value, error) {
	arr, err := arrayArg("variance", args)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) < 2 {
		return nil, evalerr.New(evalerr.EmptyReduction, 0, "variance requires at least 2 elements")
	}
	fs, err := floatsOf("variance", arr)
	if err != nil {
		return nil, err
	}
	return value.Float(sampleVariance(fs)), nil
}

func builtinStdev(args []value.Value) (value.Value, error) {
	arr, err := arrayArg("stdev", args)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) < 2 {
		return nil, evalerr.New(evalerr.EmptyReduction, 0, "stdev requires at least 2 elements")
	}
	fs, err := floatsOf("stdev", arr)
	if err != nil {
		return nil, err
	}
	return value.Float(math.Sqrt(sampleVariance(fs))), nil
}

// sampleVariance uses the n-1 divisor per spec.md's glossary definition
// of sample standard deviation.
func sampleVariance(fs []float64) float64 {
	var mean float64
	for _, f := range fs {
		mean += f
	}
	mean /= float64(len(fs))

	var sumSq float64
	for _, f := range fs {
		d := f - mean
		sumSq += d * d
	}
	return sumSq / float64(len(fs)-1)
}
