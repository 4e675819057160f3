package amoskeag

import "math"

// Numeric built-ins (§4.5). min/max are registered in
// stdlib_collection.go since they accept either two numbers or a single
// numeric array under the same name.
func init() {
	register("abs", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		n, err := wantNumber(a[0], "abs", sp)
		if err != nil {
			return Value{}, err
		}
		return Number(math.Abs(n)), nil
	})
	register("ceil", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		n, err := wantNumber(a[0], "ceil", sp)
		if err != nil {
			return Value{}, err
		}
		return Number(math.Ceil(n)), nil
	})
	register("floor", []int{1}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		n, err := wantNumber(a[0], "floor", sp)
		if err != nil {
			return Value{}, err
		}
		return Number(math.Floor(n)), nil
	})
	register("round", []int{1, 2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		n, err := wantNumber(a[0], "round", sp)
		if err != nil {
			return Value{}, err
		}
		digits := 0
		if len(a) == 2 {
			digits, err = wantInt(a[1], "round", sp)
			if err != nil {
				return Value{}, err
			}
		}
		scale := math.Pow(10, float64(digits))
		return Number(math.Round(n*scale) / scale), nil
	})
	register("clamp", []int{3}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		x, err := wantNumber(a[0], "clamp", sp)
		if err != nil {
			return Value{}, err
		}
		lo, err := wantNumber(a[1], "clamp", sp)
		if err != nil {
			return Value{}, err
		}
		hi, err := wantNumber(a[2], "clamp", sp)
		if err != nil {
			return Value{}, err
		}
		return Number(math.Min(math.Max(x, lo), hi)), nil
	})
	register("plus", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return numericBinaryOp("plus", a, sp, func(x, y float64) (float64, *EvalError) { return x + y, nil })
	})
	register("minus", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return numericBinaryOp("minus", a, sp, func(x, y float64) (float64, *EvalError) { return x - y, nil })
	})
	register("times", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return numericBinaryOp("times", a, sp, func(x, y float64) (float64, *EvalError) { return x * y, nil })
	})
	register("divided_by", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return numericBinaryOp("divided_by", a, sp, func(x, y float64) (float64, *EvalError) {
			if y == 0 {
				return 0, newDivisionByZero("divided_by", sp)
			}
			return x / y, nil
		})
	})
	register("modulo", []int{2}, func(a []Value, sp Span, env *Environment) (Value, *EvalError) {
		return numericBinaryOp("modulo", a, sp, func(x, y float64) (float64, *EvalError) {
			if y == 0 {
				return 0, newDivisionByZero("modulo", sp)
			}
			return math.Mod(x, y), nil
		})
	})
}

func numericBinaryOp(op string, a []Value, sp Span, f func(x, y float64) (float64, *EvalError)) (Value, *EvalError) {
	x, err := wantNumber(a[0], op, sp)
	if err != nil {
		return Value{}, err
	}
	y, err := wantNumber(a[1], op, sp)
	if err != nil {
		return Value{}, err
	}
	r, err := f(x, y)
	if err != nil {
		return Value{}, err
	}
	return Number(r), nil
}
