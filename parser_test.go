package amoskeag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) Expr {
	t.Helper()
	expr, err := Parse(source)
	require.Nil(t, err, "unexpected parse error: %v", err)
	return expr
}

func TestParseLiterals(t *testing.T) {
	assert.IsType(t, &NumberLit{}, mustParse(t, "1"))
	assert.IsType(t, &StringLit{}, mustParse(t, `"hi"`))
	assert.IsType(t, &BoolLit{}, mustParse(t, "true"))
	assert.IsType(t, &NilLit{}, mustParse(t, "nil"))
	assert.IsType(t, &SymbolLit{}, mustParse(t, ":foo"))
}

func TestParsePrecedence(t *testing.T) {
	expr := mustParse(t, "1 + 2 * 3")
	bin := expr.(*Binary)
	assert.Equal(t, BinAdd, bin.Op)
	assert.IsType(t, &NumberLit{}, bin.Left)
	rhs := bin.Right.(*Binary)
	assert.Equal(t, BinMul, rhs.Op)
}

func TestParseParenOverridesPrecedence(t *testing.T) {
	expr := mustParse(t, "(1 + 2) * 3")
	bin := expr.(*Binary)
	assert.Equal(t, BinMul, bin.Op)
	assert.IsType(t, &Binary{}, bin.Left)
}

func TestParseChainedComparisonIsParseError(t *testing.T) {
	_, err := Parse("1 < 2 < 3")
	require.NotNil(t, err)
	assert.Equal(t, ParseError, err.Kind)
}

func TestParseNotIsRightRecursive(t *testing.T) {
	expr := mustParse(t, "not not true")
	outer := expr.(*Unary)
	assert.Equal(t, UnaryNot, outer.Op)
	inner := outer.Operand.(*Unary)
	assert.Equal(t, UnaryNot, inner.Op)
}

func TestParseDottedVarPath(t *testing.T) {
	expr := mustParse(t, "user.profile.age")
	v := expr.(*Var)
	assert.Equal(t, "user", v.Name)
	assert.Equal(t, []string{"profile", "age"}, v.Path)
}

func TestParseCall(t *testing.T) {
	expr := mustParse(t, `upcase("a", "b")`)
	c := expr.(*Call)
	assert.Equal(t, "upcase", c.Func)
	assert.Len(t, c.Args, 2)
}

func TestParseBareIdentIsVar(t *testing.T) {
	expr := mustParse(t, "x")
	v, ok := expr.(*Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)
	assert.Empty(t, v.Path)
}

func TestParseArrayAndDict(t *testing.T) {
	arr := mustParse(t, "[1, 2, 3]").(*ArrayLit)
	assert.Len(t, arr.Elements, 3)

	d := mustParse(t, `{a: 1, "b c": 2}`).(*DictLit)
	require.Len(t, d.Entries, 2)
	assert.Equal(t, "a", d.Entries[0].Key)
	assert.Equal(t, "b c", d.Entries[1].Key)
}

func TestParseTrailingComma(t *testing.T) {
	arr := mustParse(t, "[1, 2,]").(*ArrayLit)
	assert.Len(t, arr.Elements, 2)
}

func TestParseIfWithoutThen(t *testing.T) {
	expr := mustParse(t, "if x > 0 1 else 2 end")
	n := expr.(*If)
	assert.IsType(t, &Binary{}, n.Cond)
}

func TestParseIfWithThenKeyword(t *testing.T) {
	expr := mustParse(t, "if x > 0 then 1 else 2 end")
	assert.IsType(t, &If{}, expr)
}

func TestParseElseIfDesugarsToNestedIf(t *testing.T) {
	expr := mustParse(t, "if a 1 else if b 2 else 3 end")
	outer := expr.(*If)
	inner, ok := outer.Else.(*If)
	require.True(t, ok, "else-if should desugar into a nested If")
	assert.IsType(t, &NumberLit{}, inner.Then)
}

func TestParseLet(t *testing.T) {
	expr := mustParse(t, "let x = 1 in x + 1")
	n := expr.(*Let)
	assert.Equal(t, "x", n.Name)
	assert.IsType(t, &NumberLit{}, n.Value)
	assert.IsType(t, &Binary{}, n.Body)
}

func TestParsePipeRewritesToCall(t *testing.T) {
	expr := mustParse(t, `x | upcase`)
	c, ok := expr.(*Call)
	require.True(t, ok, "pipe into a bare function name should rewrite to a Call")
	assert.Equal(t, "upcase", c.Func)
	require.Len(t, c.Args, 1)
	assert.IsType(t, &Var{}, c.Args[0])
}

func TestParsePipeWithArgsPrependsLHS(t *testing.T) {
	expr := mustParse(t, `x | replace("a", "b")`)
	c, ok := expr.(*Call)
	require.True(t, ok)
	assert.Equal(t, "replace", c.Func)
	require.Len(t, c.Args, 3)
	assert.IsType(t, &Var{}, c.Args[0])
}

func TestParsePipeChain(t *testing.T) {
	expr := mustParse(t, `x | upcase | strip`)
	outer, ok := expr.(*Call)
	require.True(t, ok)
	assert.Equal(t, "strip", outer.Func)
	require.Len(t, outer.Args, 1)
	inner, ok := outer.Args[0].(*Call)
	require.True(t, ok)
	assert.Equal(t, "upcase", inner.Func)
}

func TestParsePipeIntoDottedVarIsError(t *testing.T) {
	_, err := Parse(`x | a.b`)
	require.NotNil(t, err)
	assert.Equal(t, ParseError, err.Kind)
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	_, err := Parse("1 2")
	require.NotNil(t, err)
	assert.Equal(t, ParseError, err.Kind)
}

func TestParseUnaryMinus(t *testing.T) {
	expr := mustParse(t, "-x")
	u := expr.(*Unary)
	assert.Equal(t, UnaryNeg, u.Op)
}

func TestParseDotOnNonVariableIsError(t *testing.T) {
	_, err := Parse(`(1 + 2).foo`)
	require.NotNil(t, err)
	assert.Equal(t, ParseError, err.Kind)
}
