package amoskeag

// validate walks the AST once, checking everything the spec's
// validator stage can determine statically (§4.3): every SymbolLit
// names an allowed symbol, every Call resolves to a known built-in at
// a matching arity, and every DictLit has no duplicate key. It returns
// the first violation found; there is no partial result or recovery.
// Let-binding shadowing is explicitly permitted and never raises.
func validate(expr Expr, allowed map[string]struct{}) *CompileError {
	switch e := expr.(type) {
	case *NumberLit, *StringLit, *BoolLit, *NilLit:
		return nil

	case *SymbolLit:
		if _, ok := allowed[e.Name]; !ok {
			return newUndefinedSymbol(e.Name, e.Span())
		}
		return nil

	case *ArrayLit:
		for _, el := range e.Elements {
			if err := validate(el, allowed); err != nil {
				return err
			}
		}
		return nil

	case *DictLit:
		seen := make(map[string]struct{}, len(e.Entries))
		for _, entry := range e.Entries {
			if _, dup := seen[entry.Key]; dup {
				return newDuplicateKey(entry.Key, e.Span())
			}
			seen[entry.Key] = struct{}{}
			if err := validate(entry.Value, allowed); err != nil {
				return err
			}
		}
		return nil

	case *Var:
		return nil

	case *Unary:
		return validate(e.Operand, allowed)

	case *Binary:
		if err := validate(e.Left, allowed); err != nil {
			return err
		}
		return validate(e.Right, allowed)

	case *If:
		if err := validate(e.Cond, allowed); err != nil {
			return err
		}
		if err := validate(e.Then, allowed); err != nil {
			return err
		}
		return validate(e.Else, allowed)

	case *Let:
		if err := validate(e.Value, allowed); err != nil {
			return err
		}
		return validate(e.Body, allowed)

	case *Call:
		b, ok := lookupBuiltin(e.Func)
		if !ok {
			return newUndefinedFunction(e.Func, e.Span())
		}
		if !b.acceptsArity(len(e.Args)) {
			return newArityMismatch(e.Func, expectedArity(b), len(e.Args), e.Span())
		}
		for _, a := range e.Args {
			if err := validate(a, allowed); err != nil {
				return err
			}
		}
		return nil

	default:
		return newInternalErrorAsCompile(e)
	}
}

// expectedArity reports a representative arity for an ArityMismatch
// message: the sole fixed arity when there is one, or the variadic
// minimum, or the first of an overload set.
func expectedArity(b *builtin) int {
	if b.variadic {
		return b.minArity
	}
	if len(b.arities) > 0 {
		return b.arities[0]
	}
	return 0
}

// newInternalErrorAsCompile handles the never-reached default case: an
// Expr variant the validator doesn't know about would be a programming
// error, not a user-facing one, but validate must still return a
// *CompileError to satisfy its signature.
func newInternalErrorAsCompile(e Expr) *CompileError {
	return &CompileError{Kind: ParseError, Span: e.Span(), Message: "internal: unvalidated expression node"}
}
