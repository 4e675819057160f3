package amoskeag

// Shared argument-coercion helpers used by every stdlib*.go file. Each
// returns a TypeError naming the offending built-in and the actual
// kinds seen, per §7's TypeError(op, actual_types).

func wantString(v Value, op string, span Span) (string, *EvalError) {
	if v.Kind() != KindString {
		return "", newTypeError(op, span, v.TypeName())
	}
	return v.AsString(), nil
}

func wantNumber(v Value, op string, span Span) (float64, *EvalError) {
	if v.Kind() != KindNumber {
		return 0, newTypeError(op, span, v.TypeName())
	}
	return v.AsNumber(), nil
}

func wantArray(v Value, op string, span Span) ([]Value, *EvalError) {
	if v.Kind() != KindArray {
		return nil, newTypeError(op, span, v.TypeName())
	}
	return v.AsArray(), nil
}

func wantInt(v Value, op string, span Span) (int, *EvalError) {
	f, err := wantNumber(v, op, span)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, newArgumentError(op, "expected an integer, got %v", f)
	}
	return int(f), nil
}
