package amoskeag

import (
	"sort"
	"strings"
)

func init() {
	register("size", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		switch a[0].Kind() {
		case KindString, KindArray, KindDictionary:
			return Number(float64(a[0].Len())), nil
		default:
			return Value{}, newTypeError("size", sp, a[0].TypeName())
		}
	})
	register("first", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		arr, err := wantArray(a[0], "first", sp)
		if err != nil {
			return Value{}, err
		}
		if len(arr) == 0 {
			return Nil(), nil
		}
		return arr[0], nil
	})
	register("last", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		arr, err := wantArray(a[0], "last", sp)
		if err != nil {
			return Value{}, err
		}
		if len(arr) == 0 {
			return Nil(), nil
		}
		return arr[len(arr)-1], nil
	})
	register("at", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		arr, err := wantArray(a[0], "at", sp)
		if err != nil {
			return Value{}, err
		}
		i, err := wantInt(a[1], "at", sp)
		if err != nil {
			return Value{}, err
		}
		if i < 0 || i >= len(arr) {
			return Nil(), nil
		}
		return arr[i], nil
	})
	register("contains", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		switch a[0].Kind() {
		case KindArray:
			for _, e := range a[0].AsArray() {
				if e.Equal(a[1]) {
					return Boolean(true), nil
				}
			}
			return Boolean(false), nil
		case KindString:
			s, err := wantString(a[1], "contains", sp)
			if err != nil {
				return Value{}, err
			}
			return Boolean(strings.Contains(a[0].AsString(), s)), nil
		case KindDictionary:
			k, err := wantString(a[1], "contains", sp)
			if err != nil {
				return Value{}, err
			}
			_, ok := a[0].Get(k)
			return Boolean(ok), nil
		default:
			return Value{}, newTypeError("contains", sp, a[0].TypeName())
		}
	})
	register("sort", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		arr, err := wantArray(a[0], "sort", sp)
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, len(arr))
		copy(out, arr)
		var sortErr *EvalError
		sort.SliceStable(out, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			less, ok := Less(out[i], out[j])
			if !ok {
				sortErr = newTypeError("sort", sp, out[i].TypeName(), out[j].TypeName())
				return false
			}
			return less
		})
		if sortErr != nil {
			return Value{}, sortErr
		}
		return Array(out), nil
	})
	register("reverse", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		arr, err := wantArray(a[0], "reverse", sp)
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, len(arr))
		for i, e := range arr {
			out[len(arr)-1-i] = e
		}
		return Array(out), nil
	})
	register("sum", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		nums, err := numericArray(a[0], "sum", sp)
		if err != nil {
			return Value{}, err
		}
		total := 0.0
		for _, n := range nums {
			total += n
		}
		return Number(total), nil
	})
	register("avg", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		nums, err := numericArray(a[0], "avg", sp)
		if err != nil {
			return Value{}, err
		}
		if len(nums) == 0 {
			return Nil(), nil
		}
		total := 0.0
		for _, n := range nums {
			total += n
		}
		return Number(total / float64(len(nums))), nil
	})
	register("keys", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		if a[0].Kind() != KindDictionary {
			return Value{}, newTypeError("keys", sp, a[0].TypeName())
		}
		out := make([]Value, len(a[0].Keys()))
		for i, k := range a[0].Keys() {
			out[i] = String(k)
		}
		return Array(out), nil
	})
	register("values", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		if a[0].Kind() != KindDictionary {
			return Value{}, newTypeError("values", sp, a[0].TypeName())
		}
		out := make([]Value, len(a[0].Keys()))
		for i, k := range a[0].Keys() {
			v, _ := a[0].Get(k)
			out[i] = v
		}
		return Array(out), nil
	})

	// max/min accept either two numbers (pairwise form) or a single
	// numeric array (aggregate form).
	register("max", []int{1, 2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return minMax("max", a, sp, false)
	})
	register("min", []int{1, 2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return minMax("min", a, sp, true)
	})
}

func minMax(op string, a []Value, sp Span, wantMin bool) (Value, *EvalError) {
	if len(a) == 2 {
		x, err := wantNumber(a[0], op, sp)
		if err != nil {
			return Value{}, err
		}
		y, err := wantNumber(a[1], op, sp)
		if err != nil {
			return Value{}, err
		}
		if (wantMin && x < y) || (!wantMin && x > y) {
			return Number(x), nil
		}
		return Number(y), nil
	}
	nums, err := numericArray(a[0], op, sp)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 0 {
		return Nil(), nil
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if (wantMin && n < best) || (!wantMin && n > best) {
			best = n
		}
	}
	return Number(best), nil
}

func numericArray(v Value, op string, sp Span) ([]float64, *EvalError) {
	arr, err := wantArray(v, op, sp)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(arr))
	for i, e := range arr {
		n, err := wantNumber(e, op, sp)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
