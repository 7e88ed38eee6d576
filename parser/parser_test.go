package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_VarDeclAndExprStatement(t *testing.T) {
	prog, err := Parse(`var x = 1 + 2 * 3; print(x);`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	decl, ok := prog.Statements[0].(*VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	bin, ok := decl.Init.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
	rhs, ok := bin.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Op)

	exprStmt, ok := prog.Statements[1].(*ExprStmt)
	require.True(t, ok)
	call, ok := exprStmt.Expr.(*CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 1)
}

func TestParse_ExponentRightAssociative(t *testing.T) {
	prog, err := Parse(`var x = 2 ** 3 ** 2;`)
	require.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	top := decl.Init.(*BinaryExpr)
	assert.Equal(t, "**", top.Op)
	_, leftIsNumber := top.Left.(*NumberLit)
	assert.True(t, leftIsNumber)
	inner, ok := top.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "**", inner.Op)
}

func TestParse_FunctionDeclVsCallDisambiguation(t *testing.T) {
	prog, err := Parse(`fatorial(n) => { ? n <= 1 { return 1; } return n * fatorial(n - 1); } print(fatorial(5));`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	decl, ok := prog.Statements[0].(*FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "fatorial", decl.Name)
	require.Len(t, decl.Params, 1)
	assert.Equal(t, "n", decl.Params[0].Name)

	exprStmt, ok := prog.Statements[1].(*ExprStmt)
	require.True(t, ok)
	_, isCall := exprStmt.Expr.(*CallExpr)
	assert.True(t, isCall)
}

func TestParse_SingleExpressionFunctionBody(t *testing.T) {
	prog, err := Parse(`f(x) => x + 1;`)
	require.NoError(t, err)
	decl := prog.Statements[0].(*FunctionDecl)
	require.Len(t, decl.Body, 1)
	ret, ok := decl.Body[0].(*ReturnStmt)
	require.True(t, ok)
	_, isBinary := ret.Value.(*BinaryExpr)
	assert.True(t, isBinary)
}

func TestParse_TypedParamsAndReturnType(t *testing.T) {
	prog, err := Parse(`add(a: int, b: int): int => a + b;`)
	require.NoError(t, err)
	decl := prog.Statements[0].(*FunctionDecl)
	assert.Equal(t, "int", decl.ReturnType)
	require.Len(t, decl.Params, 2)
	assert.Equal(t, "int", decl.Params[0].Type)
}

func TestParse_ConditionalChain(t *testing.T) {
	src := `? nota >= 9.0 { print("A"); } otherwise { ? nota >= 7.0 { print("B"); } otherwise { print("C"); } }`
	prog, err := Parse(src)
	require.NoError(t, err)
	top := prog.Statements[0].(*IfStmt)
	require.Nil(t, top.OtherwiseIf)
	require.Len(t, top.Otherwise, 1)
	nested, ok := top.Otherwise[0].(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, nested.Otherwise)
}

func TestParse_OtherwiseIfChain(t *testing.T) {
	src := `? a { print(1); } otherwise ? b { print(2); } otherwise { print(3); }`
	prog, err := Parse(src)
	require.NoError(t, err)
	top := prog.Statements[0].(*IfStmt)
	require.NotNil(t, top.OtherwiseIf)
	assert.Len(t, top.OtherwiseIf.Otherwise, 1)
}

func TestParse_ForOverRange(t *testing.T) {
	prog, err := Parse(`var s = 0; for i in 1..11 { s = s + i; } print(s);`)
	require.NoError(t, err)
	forStmt := prog.Statements[1].(*ForStmt)
	assert.Equal(t, "i", forStmt.VarName)
	_, isRange := forStmt.Iterable.(*RangeExpr)
	assert.True(t, isRange)
}

func TestParse_ArrayLiteralAndIndex(t *testing.T) {
	prog, err := Parse(`var v = [1, 2, 3]; print(v[0]);`)
	require.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	arr, ok := decl.Init.(*ArrayLit)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)

	exprStmt := prog.Statements[1].(*ExprStmt)
	call := exprStmt.Expr.(*CallExpr)
	idx, ok := call.Args[0].(*IndexExpr)
	require.True(t, ok)
	_, isIdent := idx.Seq.(*Ident)
	assert.True(t, isIdent)
}

func TestParse_GreekIdentifiers(t *testing.T) {
	prog, err := Parse(`var μ = mean(d); var σ = stdev(d);`)
	require.NoError(t, err)
	assert.Equal(t, "μ", prog.Statements[0].(*VarDecl).Name)
	assert.Equal(t, "σ", prog.Statements[1].(*VarDecl).Name)
}

func TestParse_AbortsOnFirstError(t *testing.T) {
	_, err := Parse(`var x = ;`)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParse_UnterminatedStringIsLexError(t *testing.T) {
	_, err := Parse(`print("unterminated);`)
	require.Error(t, err)
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
}

func TestParse_NotIsRightAssociativeUnary(t *testing.T) {
	prog, err := Parse(`var x = not not a;`)
	require.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	outer := decl.Init.(*UnaryExpr)
	assert.Equal(t, "not", outer.Op)
	inner, ok := outer.Operand.(*UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "not", inner.Op)
}
