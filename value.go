package amoskeag

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ValueKind identifies which of the seven variants a Value holds.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindNumber
	KindString
	KindBoolean
	KindArray
	KindDictionary
	KindSymbol
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindDictionary:
		return "dictionary"
	case KindSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Value is the seven-variant runtime value domain (§3.1). The zero
// Value is Nil. Arrays and Dictionaries are never mutated in place once
// constructed; every producer builds a fresh backing slice/map.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
	arr  []Value
	dict map[string]Value
	// keys preserves dictionary insertion order for Keys()/Values() and
	// for marshalling; dict itself is the lookup index.
	keys []string
}

func Nil() Value                 { return Value{kind: KindNil} }
func Number(f float64) Value     { return Value{kind: KindNumber, num: normalizeZero(f)} }
func String(s string) Value      { return Value{kind: KindString, str: s} }
func Boolean(b bool) Value       { return Value{kind: KindBoolean, b: b} }
func Symbol(name string) Value   { return Value{kind: KindSymbol, str: name} }

// Array builds an Array Value over a copy of elems, so the caller's
// slice can be reused or mutated afterwards without affecting the
// Value.
func Array(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

// Dictionary builds a Dictionary Value from keys in the given order and
// their corresponding values. Panics if len(keys) != len(vals); callers
// within this package always satisfy that by construction.
func Dictionary(keys []string, vals []Value) Value {
	if len(keys) != len(vals) {
		panic("amoskeag: Dictionary keys/vals length mismatch")
	}
	d := make(map[string]Value, len(keys))
	ks := make([]string, 0, len(keys))
	for i, k := range keys {
		if _, exists := d[k]; !exists {
			ks = append(ks, k)
		}
		d[k] = vals[i]
	}
	return Value{kind: KindDictionary, dict: d, keys: ks}
}

func normalizeZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNil() bool     { return v.kind == KindNil }

// AsNumber, AsString, AsBoolean, AsSymbolName return the underlying
// payload; callers must check Kind() first, since these do not
// themselves validate.
func (v Value) AsNumber() float64     { return v.num }
func (v Value) AsString() string      { return v.str }
func (v Value) AsBoolean() bool       { return v.b }
func (v Value) AsSymbolName() string  { return v.str }

// AsArray returns the element slice; callers must not mutate it.
func (v Value) AsArray() []Value { return v.arr }

// Keys returns the dictionary's keys in insertion order.
func (v Value) Keys() []string { return v.keys }

// Get looks up key in a Dictionary Value, returning (value, true) if
// present.
func (v Value) Get(key string) (Value, bool) {
	val, ok := v.dict[key]
	return val, ok
}

// Len returns the element/key/rune count for Array, Dictionary, or
// String values; for any other kind it returns 0.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindDictionary:
		return len(v.keys)
	case KindString:
		return len([]rune(v.str))
	default:
		return 0
	}
}

// Truthy implements §3.1: nil and false are falsy, everything else —
// including 0, "", and empty collections — is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBoolean:
		return v.b
	default:
		return true
	}
}

// Equal implements §3.1's strict structural equality: cross-type
// comparisons are always false, no implicit coercion.
func (a Value) Equal(b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindBoolean:
		return a.b == b.b
	case KindSymbol:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !a.arr[i].Equal(b.arr[i]) {
				return false
			}
		}
		return true
	case KindDictionary:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for k, av := range a.dict {
			bv, ok := b.dict[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less implements the ordering defined in §3.1: Number×Number and
// String×String only. ok is false for any other pairing, signalling
// the caller (the evaluator) to raise a TypeError.
func Less(a, b Value) (result, ok bool) {
	if a.kind != b.kind {
		return false, false
	}
	switch a.kind {
	case KindNumber:
		return a.num < b.num, true
	case KindString:
		return a.str < b.str, true
	default:
		return false, false
	}
}

// TypeName returns the lowercase type name used in diagnostics.
func (v Value) TypeName() string { return v.kind.String() }

func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindNumber:
		return formatNumber(v.num)
	case KindString:
		return v.str
	case KindBoolean:
		if v.b {
			return "true"
		}
		return "false"
	case KindSymbol:
		return ":" + v.str
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.debugString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindDictionary:
		keys := append([]string(nil), v.keys...)
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %s", k, v.dict[k].debugString())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<unknown>"
	}
}

// debugString renders strings with quotes when nested inside an array
// or dictionary, so [1, "a"] doesn't print as [1, a].
func (v Value) debugString() string {
	if v.kind == KindString {
		return fmt.Sprintf("%q", v.str)
	}
	return v.String()
}

// formatNumber prints a float64 the way amoskeag literals are written:
// integral values with no trailing ".0", everything else via the
// shortest round-tripping decimal representation.
func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprintf("%v", f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%.0f", f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
