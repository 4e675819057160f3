package amoskeag

import "strings"

// String built-ins (§4.5). Grounded on the teacher's swatcl/functions.go
// string-command family (upper/lower/length/...), generalized to
// amoskeag's Value domain and fixed arities.
func init() {
	register("upcase", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "upcase", sp)
		if err != nil {
			return Value{}, err
		}
		return String(strings.ToUpper(s)), nil
	})
	register("downcase", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "downcase", sp)
		if err != nil {
			return Value{}, err
		}
		return String(strings.ToLower(s)), nil
	})
	register("capitalize", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "capitalize", sp)
		if err != nil {
			return Value{}, err
		}
		if s == "" {
			return String(s), nil
		}
		r := []rune(strings.ToLower(s))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		return String(string(r)), nil
	})
	register("strip", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "strip", sp)
		if err != nil {
			return Value{}, err
		}
		return String(strings.TrimSpace(s)), nil
	})
	register("lstrip", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "lstrip", sp)
		if err != nil {
			return Value{}, err
		}
		return String(strings.TrimLeft(s, " \t\n\r")), nil
	})
	register("rstrip", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "rstrip", sp)
		if err != nil {
			return Value{}, err
		}
		return String(strings.TrimRight(s, " \t\n\r")), nil
	})
	register("split", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "split", sp)
		if err != nil {
			return Value{}, err
		}
		sep, err := wantString(a[1], "split", sp)
		if err != nil {
			return Value{}, err
		}
		var parts []string
		if sep == "" {
			for _, r := range s {
				parts = append(parts, string(r))
			}
		} else {
			parts = strings.Split(s, sep)
		}
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = String(p)
		}
		return Array(out), nil
	})
	register("join", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		arr, err := wantArray(a[0], "join", sp)
		if err != nil {
			return Value{}, err
		}
		sep, err := wantString(a[1], "join", sp)
		if err != nil {
			return Value{}, err
		}
		parts := make([]string, len(arr))
		for i, e := range arr {
			s, err := wantString(e, "join", sp)
			if err != nil {
				return Value{}, err
			}
			parts[i] = s
		}
		return String(strings.Join(parts, sep)), nil
	})
	register("replace", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "replace", sp)
		if err != nil {
			return Value{}, err
		}
		find, err := wantString(a[1], "replace", sp)
		if err != nil {
			return Value{}, err
		}
		rep, err := wantString(a[2], "replace", sp)
		if err != nil {
			return Value{}, err
		}
		return String(strings.ReplaceAll(s, find, rep)), nil
	})
	register("truncate", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "truncate", sp)
		if err != nil {
			return Value{}, err
		}
		n, err := wantInt(a[1], "truncate", sp)
		if err != nil {
			return Value{}, err
		}
		if n < 0 {
			return Value{}, newArgumentError("truncate", "length must be non-negative, got %d", n)
		}
		r := []rune(s)
		if len(r) <= n {
			return String(s), nil
		}
		return String(string(r[:n]) + "..."), nil
	})
	register("prepend", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "prepend", sp)
		if err != nil {
			return Value{}, err
		}
		p, err := wantString(a[1], "prepend", sp)
		if err != nil {
			return Value{}, err
		}
		return String(p + s), nil
	})
	register("append", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		s, err := wantString(a[0], "append", sp)
		if err != nil {
			return Value{}, err
		}
		q, err := wantString(a[1], "append", sp)
		if err != nil {
			return Value{}, err
		}
		return String(s + q), nil
	})
}
