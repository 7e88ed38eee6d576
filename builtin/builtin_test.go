package builtin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieldeazevedo/shark/value"
)

func arr(vs ...value.Value) *value.Array { return &value.Array{Elements: vs} }

func lookupBuiltin(t *testing.T, out *strings.Builder, name string) *value.Builtin {
	t.Helper()
	env := NewGlobalEnv(out)
	v, ok := env.Lookup(name)
	require.True(t, ok, "builtin %q not registered", name)
	b, ok := v.(*value.Builtin)
	require.True(t, ok, "%q is not a builtin", name)
	return b
}

func TestPrint_JoinsWithSpaceAndNewline(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "print")
	_, err := b.Fn([]value.Value{value.Int(1), value.Str("x"), value.Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, "1 x true\n", out.String())
}

func TestLen_ArrayAndString(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "len")
	v, err := b.Fn([]value.Value{arr(value.Int(1), value.Int(2), value.Int(3))})
	require.NoError(t, err)
	assert.Equal(t, value.Int(3), v)

	v, err = b.Fn([]value.Value{value.Str("héllo")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v)
}

func TestRange_HalfOpen(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "range")
	v, err := b.Fn([]value.Value{value.Int(1), value.Int(5)})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3, 4]", v.Display())

	v, err = b.Fn([]value.Value{value.Int(5), value.Int(5)})
	require.NoError(t, err)
	assert.Equal(t, "[]", v.Display())
}

func TestSum_IntStaysIntFloatPromotes(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "sum")
	v, err := b.Fn([]value.Value{arr(value.Int(1), value.Int(2), value.Int(3))})
	require.NoError(t, err)
	assert.Equal(t, value.Int(6), v)

	v, err = b.Fn([]value.Value{arr(value.Int(1), value.Float(2.5))})
	require.NoError(t, err)
	assert.Equal(t, value.Float(3.5), v)

	v, err = b.Fn([]value.Value{arr()})
	require.NoError(t, err)
	assert.Equal(t, value.Int(0), v)
}

func TestMeanAndStdev_Greek(t *testing.T) {
	var out strings.Builder
	env := NewGlobalEnv(&out)
	meanV, _ := env.Lookup("μ")
	stdevV, _ := env.Lookup("σ")
	mean := meanV.(*value.Builtin)
	stdev := stdevV.(*value.Builtin)

	d := arr(value.Int(10), value.Int(20), value.Int(30), value.Int(40), value.Int(100))
	m, err := mean.Fn([]value.Value{d})
	require.NoError(t, err)
	assert.Equal(t, value.Float(40.0), m)

	s, err := stdev.Fn([]value.Value{d})
	require.NoError(t, err)
	sv := float64(s.(value.Float))
	assert.InDelta(t, 35.0, sv, 0.5)
}

func TestMean_EmptyFails(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "mean")
	_, err := b.Fn([]value.Value{arr()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EmptyReduction")
}

func TestMedian_OddAndEven(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "median")
	v, err := b.Fn([]value.Value{arr(value.Int(3), value.Int(1), value.Int(2))})
	require.NoError(t, err)
	assert.Equal(t, value.Float(2), v)

	v, err = b.Fn([]value.Value{arr(value.Int(1), value.Int(2), value.Int(3), value.Int(4))})
	require.NoError(t, err)
	assert.Equal(t, value.Float(2.5), v)
}

func TestMode_TiesResolveToFirst(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "mode")
	v, err := b.Fn([]value.Value{arr(value.Int(5), value.Int(7), value.Int(9))})
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v)

	v, err = b.Fn([]value.Value{arr(value.Int(1), value.Int(2), value.Int(2), value.Int(1))})
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), v)
}

func TestVarianceEqualsStdevSquared(t *testing.T) {
	var out strings.Builder
	variance := lookupBuiltin(t, &out, "variance")
	stdev := lookupBuiltin(t, &out, "stdev")
	data := arr(value.Int(2), value.Int(4), value.Int(4), value.Int(4), value.Int(5), value.Int(5), value.Int(7), value.Int(9))

	v, err := variance.Fn([]value.Value{data})
	require.NoError(t, err)
	s, err := stdev.Fn([]value.Value{data})
	require.NoError(t, err)

	vv := float64(v.(value.Float))
	sv := float64(s.(value.Float))
	assert.InDelta(t, vv, sv*sv, 1e-9*vv)
}

func TestStdev_TooShortFails(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "stdev")
	_, err := b.Fn([]value.Value{arr(value.Int(1))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EmptyReduction")
}

func TestMinMax_ArrayForm(t *testing.T) {
	var out strings.Builder
	min := lookupBuiltin(t, &out, "min")
	max := lookupBuiltin(t, &out, "max")
	data := arr(value.Int(5), value.Int(1), value.Int(9), value.Int(3))

	v, err := min.Fn([]value.Value{data})
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), v)

	v, err = max.Fn([]value.Value{data})
	require.NoError(t, err)
	assert.Equal(t, value.Int(9), v)
}

func TestMinMax_ScalarForm(t *testing.T) {
	var out strings.Builder
	min := lookupBuiltin(t, &out, "min")
	v, err := min.Fn([]value.Value{value.Int(10), value.Int(3), value.Int(7)})
	require.NoError(t, err)
	assert.Equal(t, value.Int(3), v)
}

func TestMinMax_LexicographicStrings(t *testing.T) {
	var out strings.Builder
	max := lookupBuiltin(t, &out, "max")
	v, err := max.Fn([]value.Value{value.Str("apple"), value.Str("banana")})
	require.NoError(t, err)
	assert.Equal(t, value.Str("banana"), v)
}

func TestFloorCeilRound_IntPassthrough(t *testing.T) {
	var out strings.Builder
	floor := lookupBuiltin(t, &out, "floor")
	v, err := floor.Fn([]value.Value{value.Int(7)})
	require.NoError(t, err)
	assert.Equal(t, value.Int(7), v)
}

func TestFloorCeilRound_Float(t *testing.T) {
	var out strings.Builder
	floor := lookupBuiltin(t, &out, "floor")
	ceil := lookupBuiltin(t, &out, "ceil")
	round := lookupBuiltin(t, &out, "round")

	v, _ := floor.Fn([]value.Value{value.Float(3.9)})
	assert.Equal(t, value.Int(3), v)

	v, _ = ceil.Fn([]value.Value{value.Float(3.1)})
	assert.Equal(t, value.Int(4), v)

	v, _ = round.Fn([]value.Value{value.Float(3.5)})
	assert.Equal(t, value.Int(4), v)
}

func TestAbs_PreservesKind(t *testing.T) {
	var out strings.Builder
	abs := lookupBuiltin(t, &out, "abs")
	v, _ := abs.Fn([]value.Value{value.Int(-5)})
	assert.Equal(t, value.Int(5), v)
	v, _ = abs.Fn([]value.Value{value.Float(-2.5)})
	assert.Equal(t, value.Float(2.5), v)
}

func TestSqrt(t *testing.T) {
	var out strings.Builder
	sqrt := lookupBuiltin(t, &out, "sqrt")
	v, err := sqrt.Fn([]value.Value{value.Int(16)})
	require.NoError(t, err)
	assert.Equal(t, value.Float(4), v)

	_, err = sqrt.Fn([]value.Value{value.Int(-1)})
	require.Error(t, err)
}

func TestPow_MatchesExponentOperator(t *testing.T) {
	var out strings.Builder
	pow := lookupBuiltin(t, &out, "pow")
	v, err := pow.Fn([]value.Value{value.Int(2), value.Int(10)})
	require.NoError(t, err)
	assert.Equal(t, value.Int(1024), v)
}

func TestWrongArityFails(t *testing.T) {
	var out strings.Builder
	b := lookupBuiltin(t, &out, "sqrt")
	_, err := b.Fn([]value.Value{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ArityError")
}
