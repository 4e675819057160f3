package amoskeag

import "math"

// Eval walks expr once against env and produces a Value or the first
// EvalError encountered (§4.4). It never recovers partway: the first
// error aborts the whole evaluation. Evaluation order is strict,
// left-to-right, depth-first throughout.
func Eval(expr Expr, env *Environment) (Value, *EvalError) {
	switch e := expr.(type) {
	case *NumberLit:
		return Number(e.Value), nil
	case *StringLit:
		return String(e.Value), nil
	case *BoolLit:
		return Boolean(e.Value), nil
	case *NilLit:
		return Nil(), nil
	case *SymbolLit:
		return Symbol(e.Name), nil

	case *ArrayLit:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := Eval(el, env)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Array(elems), nil

	case *DictLit:
		keys := make([]string, len(e.Entries))
		vals := make([]Value, len(e.Entries))
		for i, entry := range e.Entries {
			v, err := Eval(entry.Value, env)
			if err != nil {
				return Value{}, err
			}
			keys[i] = entry.Key
			vals[i] = v
		}
		return Dictionary(keys, vals), nil

	case *Var:
		return env.Resolve(e.Name, e.Path), nil

	case *Unary:
		return evalUnary(e, env)

	case *Binary:
		return evalBinary(e, env)

	case *If:
		cond, err := Eval(e.Cond, env)
		if err != nil {
			return Value{}, err
		}
		if cond.Truthy() {
			return Eval(e.Then, env)
		}
		return Eval(e.Else, env)

	case *Let:
		v, err := Eval(e.Value, env)
		if err != nil {
			return Value{}, err
		}
		return Eval(e.Body, env.Bind(e.Name, v))

	case *Call:
		args := make([]Value, len(e.Args))
		for i, a := range e.Args {
			v, err := Eval(a, env)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return callBuiltin(e.Func, args, e.Span(), env)

	default:
		return Value{}, newInternalError("eval: unhandled expression node %T", expr)
	}
}

func evalUnary(e *Unary, env *Environment) (Value, *EvalError) {
	v, err := Eval(e.Operand, env)
	if err != nil {
		return Value{}, err
	}
	switch e.Op {
	case UnaryNeg:
		if v.Kind() != KindNumber {
			return Value{}, newTypeError("-", e.Span(), v.TypeName())
		}
		return Number(-v.AsNumber()), nil
	case UnaryNot:
		return Boolean(!v.Truthy()), nil
	default:
		return Value{}, newInternalError("eval: unknown unary operator %d", e.Op)
	}
}

func evalBinary(e *Binary, env *Environment) (Value, *EvalError) {
	// and/or short-circuit: the right operand is only evaluated when
	// needed, and the deciding operand's own value (not a Boolean) is
	// what's returned.
	if e.Op == BinAnd || e.Op == BinOr {
		left, err := Eval(e.Left, env)
		if err != nil {
			return Value{}, err
		}
		if e.Op == BinAnd {
			if !left.Truthy() {
				return left, nil
			}
		} else if left.Truthy() {
			return left, nil
		}
		return Eval(e.Right, env)
	}

	left, err := Eval(e.Left, env)
	if err != nil {
		return Value{}, err
	}
	right, err := Eval(e.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch e.Op {
	case BinEq:
		return Boolean(left.Equal(right)), nil
	case BinNe:
		return Boolean(!left.Equal(right)), nil
	case BinLt, BinGt, BinLe, BinGe:
		return evalCompare(e.Op, left, right, e.Span())
	case BinAdd:
		return evalAdd(left, right, e.Span())
	case BinSub, BinMul, BinDiv, BinMod:
		return evalArith(e.Op, left, right, e.Span())
	default:
		return Value{}, newInternalError("eval: unknown binary operator %d", e.Op)
	}
}

func evalCompare(op BinaryOp, left, right Value, span Span) (Value, *EvalError) {
	less, ok := Less(left, right)
	if !ok {
		return Value{}, newTypeError(compareOpName(op), span, left.TypeName(), right.TypeName())
	}
	switch op {
	case BinLt:
		return Boolean(less), nil
	case BinLe:
		return Boolean(less || left.Equal(right)), nil
	case BinGt:
		greater, _ := Less(right, left)
		return Boolean(greater), nil
	case BinGe:
		greater, _ := Less(right, left)
		return Boolean(greater || left.Equal(right)), nil
	default:
		return Value{}, newInternalError("eval: unknown compare operator %d", op)
	}
}

func compareOpName(op BinaryOp) string {
	switch op {
	case BinLt:
		return "<"
	case BinGt:
		return ">"
	case BinLe:
		return "<="
	case BinGe:
		return ">="
	default:
		return "?"
	}
}

// evalAdd implements `+`'s three overloads: Number+Number,
// String+String concatenation, Array+Array concatenation.
func evalAdd(left, right Value, span Span) (Value, *EvalError) {
	if left.Kind() != right.Kind() {
		return Value{}, newTypeError("+", span, left.TypeName(), right.TypeName())
	}
	switch left.Kind() {
	case KindNumber:
		return Number(left.AsNumber() + right.AsNumber()), nil
	case KindString:
		return String(left.AsString() + right.AsString()), nil
	case KindArray:
		return Array(append(append([]Value{}, left.AsArray()...), right.AsArray()...)), nil
	default:
		return Value{}, newTypeError("+", span, left.TypeName(), right.TypeName())
	}
}

func evalArith(op BinaryOp, left, right Value, span Span) (Value, *EvalError) {
	opName := arithOpName(op)
	if left.Kind() != KindNumber || right.Kind() != KindNumber {
		return Value{}, newTypeError(opName, span, left.TypeName(), right.TypeName())
	}
	x, y := left.AsNumber(), right.AsNumber()
	switch op {
	case BinSub:
		return Number(x - y), nil
	case BinMul:
		return Number(x * y), nil
	case BinDiv:
		if y == 0 {
			return Value{}, newDivisionByZero("/", span)
		}
		return Number(x / y), nil
	case BinMod:
		if y == 0 {
			return Value{}, newDivisionByZero("%", span)
		}
		return Number(math.Mod(x, y)), nil
	default:
		return Value{}, newInternalError("eval: unknown arithmetic operator %d", op)
	}
}

func arithOpName(op BinaryOp) string {
	switch op {
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinMod:
		return "%"
	default:
		return "?"
	}
}

