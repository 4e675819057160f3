package amoskeag

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalValueScalarsAndComposites(t *testing.T) {
	v, err := UnmarshalValue([]byte(`{"a": 1, "b": [true, null, "x"]}`), DefaultLimits())
	require.Nil(t, err)
	require.Equal(t, KindDictionary, v.Kind())
	assert.Equal(t, []string{"a", "b"}, v.Keys(), "object key order is preserved")

	b, _ := v.Get("b")
	want := Array([]Value{Boolean(true), Nil(), String("x")})
	if diff := cmp.Diff(want.String(), b.String()); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalValueSymbolTag(t *testing.T) {
	v, err := UnmarshalValue([]byte(`{"__symbol__": "active"}`), DefaultLimits())
	require.Nil(t, err)
	assert.Equal(t, KindSymbol, v.Kind())
	assert.Equal(t, "active", v.AsSymbolName())
}

func TestUnmarshalValueRejectsInvalidJSON(t *testing.T) {
	_, err := UnmarshalValue([]byte(`{not json`), DefaultLimits())
	require.NotNil(t, err)
	assert.Equal(t, InputError, err.Kind)
}

func TestUnmarshalValueEnforcesNestingDepth(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxNestingDepth = 2
	nested := strings.Repeat(`{"a":`, 5) + "1" + strings.Repeat("}", 5)
	_, err := UnmarshalValue([]byte(nested), limits)
	require.NotNil(t, err)
	assert.Equal(t, InputError, err.Kind)
}

func TestUnmarshalValueEnforcesArrayLimit(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxArrayElements = 2
	_, err := UnmarshalValue([]byte(`[1, 2, 3]`), limits)
	require.NotNil(t, err)
	assert.Equal(t, InputError, err.Kind)
}

func TestMarshalValueRoundTrip(t *testing.T) {
	v := Dictionary([]string{"name", "tags", "active"}, []Value{
		String("a\"b"), Array([]Value{Number(1), Symbol("x")}), Boolean(true),
	})
	encoded, err := MarshalValue(v)
	require.NoError(t, err)

	decoded, decodeErr := UnmarshalValue(encoded, DefaultLimits())
	require.Nil(t, decodeErr)
	assert.True(t, v.Equal(decoded), "round trip through MarshalValue/UnmarshalValue should preserve the value")
}

func TestMarshalValueDottedKeyEscaping(t *testing.T) {
	v := Dictionary([]string{"a.b"}, []Value{Number(1)})
	encoded, err := MarshalValue(v)
	require.NoError(t, err)

	decoded, decodeErr := UnmarshalValue(encoded, DefaultLimits())
	require.Nil(t, decodeErr)
	assert.Equal(t, []string{"a.b"}, decoded.Keys())
}

func TestFromGo(t *testing.T) {
	data := map[string]any{
		"count": float64(3),
		"flag":  true,
		"items": []any{"x", nil},
		"tag":   map[string]any{"__symbol__": "done"},
	}
	v, err := FromGo(data, DefaultLimits())
	require.Nil(t, err)
	assert.Equal(t, KindDictionary, v.Kind())
	tag, _ := v.Get("tag")
	assert.Equal(t, KindSymbol, tag.Kind())
	assert.Equal(t, "done", tag.AsSymbolName())
}

func TestFromGoRejectsNonFiniteNumber(t *testing.T) {
	_, err := FromGo(map[string]any{"x": 1.0 / zero()}, DefaultLimits())
	require.NotNil(t, err)
	assert.Equal(t, InputError, err.Kind)
}

func zero() float64 { return 0 }
