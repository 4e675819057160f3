package amoskeag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndEvaluate(t *testing.T) {
	prog, err := Compile("amount * rate", []string{})
	require.NoError(t, err)

	data := Dictionary([]string{"amount", "rate"}, []Value{Number(200), Number(0.05)})
	v, evalErr := prog.Evaluate(data)
	require.NoError(t, evalErr)
	assert.Equal(t, Number(10), v)
}

func TestCompileRejectsUndefinedSymbol(t *testing.T) {
	_, err := Compile(":status", []string{"other"})
	require.Error(t, err)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, UndefinedSymbol, ce.Kind)
}

func TestCompileAcceptsAllowedSymbol(t *testing.T) {
	prog, err := Compile(":status", []string{"status"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"status"}, prog.AllowedSymbols())
}

func TestCompileRejectsOversizedSource(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxSourceBytes = 4
	_, err := Compile("1 + 1", nil, WithLimits(limits))
	require.Error(t, err)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, LexError, ce.Kind)
}

func TestCompileRejectsTooManyAllowedSymbols(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxAllowedSymbols = 1
	_, err := Compile("1", []string{"a", "b"}, WithLimits(limits))
	require.Error(t, err)
}

func TestEvaluateGo(t *testing.T) {
	prog, err := Compile("upcase(name)", []string{})
	require.NoError(t, err)

	v, evalErr := prog.EvaluateGo(map[string]any{"name": "amoskeag"})
	require.NoError(t, evalErr)
	assert.Equal(t, String("AMOSKEAG"), v)
}

func TestEvaluateJSON(t *testing.T) {
	prog, err := Compile("items | size", []string{})
	require.NoError(t, err)

	v, evalErr := prog.EvaluateJSON([]byte(`{"items": [1, 2, 3]}`))
	require.NoError(t, evalErr)
	assert.Equal(t, Number(3), v)
}

// TestScenarios exercises the worked scenarios against Compile/Evaluate
// end to end, one per case.
func TestScenarios(t *testing.T) {
	t.Run("basic arithmetic", func(t *testing.T) {
		prog, err := Compile("2 + 3 * 4", nil)
		require.NoError(t, err)
		v, evalErr := prog.Evaluate(Dictionary(nil, nil))
		require.NoError(t, evalErr)
		assert.Equal(t, Number(14), v)
	})

	t.Run("variable navigation", func(t *testing.T) {
		prog, err := Compile("user.age * 2", nil)
		require.NoError(t, err)

		v, evalErr := prog.EvaluateJSON([]byte(`{"user":{"age":25}}`))
		require.NoError(t, evalErr)
		assert.Equal(t, Number(50), v)

		_, evalErr = prog.EvaluateJSON([]byte(`{"user":{}}`))
		require.Error(t, evalErr)
		var ee *EvalError
		require.ErrorAs(t, evalErr, &ee)
		assert.Equal(t, TypeError, ee.Kind, "multiplying the Nil from a missing field must raise, not silently propagate Nil")
	})

	t.Run("business rule with symbols", func(t *testing.T) {
		source := "if user.age >= 18 :adult else :minor end"
		prog, err := Compile(source, []string{"adult", "minor"})
		require.NoError(t, err)

		v, evalErr := prog.EvaluateJSON([]byte(`{"user":{"age":25}}`))
		require.NoError(t, evalErr)
		assert.Equal(t, Symbol("adult"), v)

		v, evalErr = prog.EvaluateJSON([]byte(`{"user":{"age":15}}`))
		require.NoError(t, evalErr)
		assert.Equal(t, Symbol("minor"), v)

		_, err = Compile(source, []string{"minor"})
		require.Error(t, err)
		var ce *CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, UndefinedSymbol, ce.Kind)
		assert.Equal(t, "adult", ce.Name)
	})

	t.Run("pipe chain", func(t *testing.T) {
		v, err := evalSource(t, `"  Hello  " | strip | downcase | capitalize`, Nil())
		require.Nil(t, err)
		assert.Equal(t, String("Hello"), v)
	})

	t.Run("array aggregation", func(t *testing.T) {
		v, err := evalSource(t, "[1,2,3,4,5] | sum", Nil())
		require.Nil(t, err)
		assert.Equal(t, Number(15), v)

		v, err = evalSource(t, "[] | sum", Nil())
		require.Nil(t, err)
		assert.Equal(t, Number(0), v)

		v, err = evalSource(t, "[] | avg", Nil())
		require.Nil(t, err)
		assert.True(t, v.IsNil())
	})

	t.Run("let binding shadow", func(t *testing.T) {
		v, err := evalSource(t, "let x = 1 in let x = x + 1 in x", Nil())
		require.Nil(t, err)
		assert.Equal(t, Number(2), v)
	})

	t.Run("division by zero", func(t *testing.T) {
		prog, err := Compile("10 / x", nil)
		require.NoError(t, err)
		_, evalErr := prog.EvaluateJSON([]byte(`{"x":0}`))
		require.Error(t, evalErr)
		var ee *EvalError
		require.ErrorAs(t, evalErr, &ee)
		assert.Equal(t, DivisionByZero, ee.Kind)
	})

	t.Run("financial pmt", func(t *testing.T) {
		v, err := evalSource(t, "pmt(0.045 / 12, 360, 250000) | round(2)", Nil())
		require.Nil(t, err)
		assert.InDelta(t, -1266.71, v.AsNumber(), 0.01)
	})

	t.Run("equality is type-strict", func(t *testing.T) {
		v, err := evalSource(t, `1 == "1"`, Nil())
		require.Nil(t, err)
		assert.Equal(t, Boolean(false), v)
	})

	t.Run("duplicate dict key at compile", func(t *testing.T) {
		_, err := Compile(`{"a":1, "a":2}`, nil)
		require.Error(t, err)
		var ce *CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, DuplicateKey, ce.Kind)
		assert.Equal(t, "a", ce.Name)
	})
}

func TestProgramIsReusableAcrossEvaluations(t *testing.T) {
	prog, err := Compile("x + 1", []string{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, evalErr := prog.Evaluate(Dictionary([]string{"x"}, []Value{Number(float64(i))}))
		require.NoError(t, evalErr)
		assert.Equal(t, Number(float64(i+1)), v)
	}
}
