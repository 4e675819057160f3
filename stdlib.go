package amoskeag

// builtinFn implements one standard-library function. args has already
// been evaluated left-to-right by the evaluator; span is the call
// expression's source span, for error reporting. env is the calling
// environment, needed only by date_now to read the host-supplied
// metadata.execution_time slot; every other built-in ignores it.
type builtinFn func(args []Value, span Span, env *Environment) (Value, *EvalError)

// builtin describes one entry of the dispatch table (§4.5, §9): a
// name, its accepted arities, and its implementation. Arity is fixed
// per the spec ("no variadics except where explicitly noted"); the one
// noted exception is coalesce, which accepts one or more arguments.
type builtin struct {
	name     string
	arities  []int // exact accepted argument counts, when not variadic
	variadic bool
	minArity int // minimum argument count, when variadic
	fn       builtinFn
}

// builtins is the single compile-time name -> builtin table the
// validator and evaluator both consult, generalized from the teacher's
// functionTable map in swatcl/functions.go (name -> arity/handler) from
// a Tcl-command table to amoskeag's built-in registry.
var builtins = map[string]*builtin{}

func register(name string, arities []int, fn builtinFn) {
	if _, exists := builtins[name]; exists {
		panic("amoskeag: duplicate builtin registration for " + name)
	}
	builtins[name] = &builtin{name: name, arities: arities, fn: fn}
}

func registerVariadic(name string, minArity int, fn builtinFn) {
	if _, exists := builtins[name]; exists {
		panic("amoskeag: duplicate builtin registration for " + name)
	}
	builtins[name] = &builtin{name: name, variadic: true, minArity: minArity, fn: fn}
}

// acceptsArity reports whether n arguments is valid for b.
func (b *builtin) acceptsArity(n int) bool {
	if b.variadic {
		return n >= b.minArity
	}
	for _, a := range b.arities {
		if a == n {
			return true
		}
	}
	return false
}

// lookupBuiltin resolves a call's function name; ok is false when the
// name is not a registered built-in.
func lookupBuiltin(name string) (*builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

// callBuiltin invokes a call's resolved built-in. The validator has
// already checked the name and arity exist at compile time, so the
// only possible failure here is a runtime EvalError raised by the
// implementation itself (wrong argument type, out-of-range index, ...).
func callBuiltin(name string, args []Value, span Span, env *Environment) (Value, *EvalError) {
	b, ok := lookupBuiltin(name)
	if !ok {
		return Value{}, newInternalError("call to unresolved builtin %q reached the evaluator", name)
	}
	return b.fn(args, span, env)
}
