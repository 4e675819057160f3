package amoskeag

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Host JSON marshalling contract (§6.3): the wire format is JSON
// everywhere, extended with the `{"__symbol__": "<name>"}` tagging
// convention for Symbol values. UnmarshalValue is the boundary where
// §5's resource bounds and finite-number check are enforced, since a
// Program's AST itself cannot smuggle in oversized or non-finite data;
// only host input can.

// UnmarshalValue decodes JSON bytes into a Value, enforcing limits as
// it walks the document: nesting depth, dictionary key count, array
// element count, and finiteness of every number. It is read with
// gjson rather than encoding/json so the walk never needs reflection
// or an intermediate map[string]interface{} tree.
func UnmarshalValue(data []byte, limits Limits) (Value, *EvalError) {
	if !gjson.ValidBytes(data) {
		return Value{}, newInputError("invalid JSON input")
	}
	return fromGJSON(gjson.ParseBytes(data), limits, 0)
}

func fromGJSON(r gjson.Result, limits Limits, depth int) (Value, *EvalError) {
	if depth > limits.MaxNestingDepth {
		return Value{}, newInputError("data nesting depth exceeds limit of %d", limits.MaxNestingDepth)
	}
	switch r.Type {
	case gjson.Null:
		return Nil(), nil
	case gjson.True:
		return Boolean(true), nil
	case gjson.False:
		return Boolean(false), nil
	case gjson.Number:
		f := r.Num
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, newInputError("non-finite number in input")
		}
		return Number(f), nil
	case gjson.String:
		return String(r.Str), nil
	case gjson.JSON:
		if r.IsArray() {
			return arrayFromGJSON(r, limits, depth)
		}
		return objectFromGJSON(r, limits, depth)
	default:
		return Value{}, newInputError("unsupported JSON value")
	}
}

func arrayFromGJSON(r gjson.Result, limits Limits, depth int) (Value, *EvalError) {
	var elems []Value
	var outerErr *EvalError
	count := 0
	r.ForEach(func(_, val gjson.Result) bool {
		if count >= limits.MaxArrayElements {
			outerErr = newInputError("array exceeds %d elements", limits.MaxArrayElements)
			return false
		}
		v, err := fromGJSON(val, limits, depth+1)
		if err != nil {
			outerErr = err
			return false
		}
		elems = append(elems, v)
		count++
		return true
	})
	if outerErr != nil {
		return Value{}, outerErr
	}
	return Array(elems), nil
}

func objectFromGJSON(r gjson.Result, limits Limits, depth int) (Value, *EvalError) {
	if name, ok := symbolTag(r); ok {
		return Symbol(name), nil
	}
	var keys []string
	var vals []Value
	var outerErr *EvalError
	count := 0
	r.ForEach(func(key, val gjson.Result) bool {
		if count >= limits.MaxDictKeys {
			outerErr = newInputError("dictionary exceeds %d keys", limits.MaxDictKeys)
			return false
		}
		v, err := fromGJSON(val, limits, depth+1)
		if err != nil {
			outerErr = err
			return false
		}
		keys = append(keys, key.Str)
		vals = append(vals, v)
		count++
		return true
	})
	if outerErr != nil {
		return Value{}, outerErr
	}
	return Dictionary(keys, vals), nil
}

// symbolTag reports whether r is a JSON object of the exact shape
// {"__symbol__": "<name>"}.
func symbolTag(r gjson.Result) (string, bool) {
	m := r.Map()
	if len(m) != 1 {
		return "", false
	}
	v, ok := m["__symbol__"]
	if !ok || v.Type != gjson.String {
		return "", false
	}
	return v.Str, true
}

// MarshalValue encodes a Value to JSON, applying the Symbol tagging
// convention on the way out. Composite values are assembled with
// sjson's raw-set API rather than built from a reflected Go struct or
// map, consistent with UnmarshalValue's reflection-free read side.
func MarshalValue(v Value) ([]byte, error) {
	switch v.Kind() {
	case KindNil:
		return []byte("null"), nil
	case KindBoolean:
		if v.AsBoolean() {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindNumber:
		return []byte(strconv.FormatFloat(v.AsNumber(), 'g', -1, 64)), nil
	case KindString:
		return []byte(jsonQuote(v.AsString())), nil
	case KindSymbol:
		return sjson.SetBytes([]byte("{}"), "__symbol__", v.AsSymbolName())
	case KindArray:
		buf := []byte("[]")
		for _, e := range v.AsArray() {
			raw, err := MarshalValue(e)
			if err != nil {
				return nil, err
			}
			buf, err = sjson.SetRawBytes(buf, "-1", raw)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case KindDictionary:
		buf := []byte("{}")
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			raw, err := MarshalValue(val)
			if err != nil {
				return nil, err
			}
			var err2 error
			buf, err2 = sjson.SetRawBytes(buf, sjsonEscapePath(k), raw)
			if err2 != nil {
				return nil, err2
			}
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("amoskeag: cannot marshal value of kind %s", v.TypeName())
	}
}

// sjsonEscapePath escapes sjson's path metacharacters in a literal
// dictionary key so a key containing '.', '*', '?', or '\\' is treated
// as one path segment rather than nested structure.
func sjsonEscapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// jsonQuote renders s as a double-quoted JSON string literal.
func jsonQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// FromGo converts native Go values (as produced by encoding/json's
// default unmarshal-into-interface{}, or assembled by hand) into a
// Value, applying the same limits and symbol-tagging convention as
// UnmarshalValue. Supported Go types: nil, bool, float64, int, string,
// []any, map[string]any.
func FromGo(data any, limits Limits) (Value, *EvalError) {
	return fromGo(data, limits, 0)
}

func fromGo(data any, limits Limits, depth int) (Value, *EvalError) {
	if depth > limits.MaxNestingDepth {
		return Value{}, newInputError("data nesting depth exceeds limit of %d", limits.MaxNestingDepth)
	}
	switch d := data.(type) {
	case nil:
		return Nil(), nil
	case bool:
		return Boolean(d), nil
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Value{}, newInputError("non-finite number in input")
		}
		return Number(d), nil
	case int:
		return Number(float64(d)), nil
	case string:
		return String(d), nil
	case []any:
		if len(d) > limits.MaxArrayElements {
			return Value{}, newInputError("array exceeds %d elements", limits.MaxArrayElements)
		}
		elems := make([]Value, len(d))
		for i, e := range d {
			v, err := fromGo(e, limits, depth+1)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Array(elems), nil
	case map[string]any:
		if name, ok := d["__symbol__"]; ok && len(d) == 1 {
			if s, isStr := name.(string); isStr {
				return Symbol(s), nil
			}
		}
		if len(d) > limits.MaxDictKeys {
			return Value{}, newInputError("dictionary exceeds %d keys", limits.MaxDictKeys)
		}
		keys := make([]string, 0, len(d))
		vals := make([]Value, 0, len(d))
		for k, e := range d {
			v, err := fromGo(e, limits, depth+1)
			if err != nil {
				return Value{}, err
			}
			keys = append(keys, k)
			vals = append(vals, v)
		}
		return Dictionary(keys, vals), nil
	default:
		return Value{}, newInputError("unsupported Go value of type %T", data)
	}
}
