package amoskeag

func init() {
	register("if_then_else", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		if a[0].Truthy() {
			return a[1], nil
		}
		return a[2], nil
	})
	register("choose", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		idx, err := wantInt(a[0], "choose", sp)
		if err != nil {
			return Value{}, err
		}
		arr, err := wantArray(a[1], "choose", sp)
		if err != nil {
			return Value{}, err
		}
		if idx < 1 || idx > len(arr) {
			return Value{}, newTypeError("choose", sp, "out-of-range index")
		}
		return arr[idx-1], nil
	})
	registerVariadic("coalesce", 1, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		for _, v := range a {
			if !v.IsNil() {
				return v, nil
			}
		}
		return Nil(), nil
	})
	register("default", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		if a[0].IsNil() {
			return a[1], nil
		}
		return a[0], nil
	})
	register("is_number", []int{1}, typePredicate(KindNumber))
	register("is_string", []int{1}, typePredicate(KindString))
	register("is_boolean", []int{1}, typePredicate(KindBoolean))
	register("is_nil", []int{1}, typePredicate(KindNil))
	register("is_array", []int{1}, typePredicate(KindArray))
	register("is_dictionary", []int{1}, typePredicate(KindDictionary))
	register("is_symbol", []int{1}, typePredicate(KindSymbol))
}

func typePredicate(k ValueKind) builtinFn {
	return func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return Boolean(a[0].Kind() == k), nil
	}
}
