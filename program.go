package amoskeag

// Program is an immutable compiled artifact: a validated AST plus the
// allowed-symbol set it was checked against (§3.3), and the Limits that
// EvaluateGo and EvaluateJSON apply to host data. It holds no other
// compile-time state, and none of it changes after Compile, so it is safe to
// Evaluate concurrently from any number of goroutines without
// synchronization — every call builds its own fresh Environment.
type Program struct {
	ast     Expr
	allowed map[string]struct{}
	limits  Limits
}

// CompileOption configures a Compile call.
type CompileOption func(*compileConfig)

type compileConfig struct {
	limits Limits
}

// WithLimits overrides DefaultLimits() for this Compile call.
func WithLimits(l Limits) CompileOption {
	return func(c *compileConfig) { c.limits = l }
}

// Compile lexes, parses, and validates source against allowedSymbols
// (§6.1). A nil allowedSymbols is equivalent to the empty set: any
// symbol literal in source is then rejected. Compilation aborts on the
// first error; there is no partial Program.
func Compile(source string, allowedSymbols []string, opts ...CompileOption) (*Program, error) {
	cfg := compileConfig{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(source) > cfg.limits.MaxSourceBytes {
		return nil, newLexError(Span{}, "source exceeds %d bytes", cfg.limits.MaxSourceBytes)
	}
	if len(allowedSymbols) > cfg.limits.MaxAllowedSymbols {
		return nil, newLexError(Span{}, "allowed-symbol set exceeds %d entries", cfg.limits.MaxAllowedSymbols)
	}

	allowed := make(map[string]struct{}, len(allowedSymbols))
	for _, s := range allowedSymbols {
		allowed[s] = struct{}{}
	}

	ast, lexOrParseErr := Parse(source)
	if lexOrParseErr != nil {
		return nil, lexOrParseErr
	}
	if err := validate(ast, allowed); err != nil {
		return nil, err
	}
	return &Program{ast: ast, allowed: allowed, limits: cfg.limits}, nil
}

// Evaluate runs p against data, a Dictionary-shaped Value built by the
// host (typically via FromGo or UnmarshalValue). (§6.2)
func (p *Program) Evaluate(data Value) (Value, error) {
	env := NewEnvironment(data)
	v, err := Eval(p.ast, env)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// EvaluateGo is a convenience wrapper that converts native Go data
// (nil/bool/float64/int/string/[]any/map[string]any) via FromGo, honoring
// p's compile-time resource limits, before evaluating.
func (p *Program) EvaluateGo(data map[string]any) (Value, error) {
	v, err := FromGo(map[string]any(data), p.limits)
	if err != nil {
		return Value{}, err
	}
	return p.Evaluate(v)
}

// EvaluateJSON is a convenience wrapper that decodes JSON bytes via
// UnmarshalValue, honoring p's compile-time resource limits, before
// evaluating (§6.3).
func (p *Program) EvaluateJSON(data []byte) (Value, error) {
	v, err := UnmarshalValue(data, p.limits)
	if err != nil {
		return Value{}, err
	}
	return p.Evaluate(v)
}

// AllowedSymbols returns the symbol names p was compiled against.
func (p *Program) AllowedSymbols() []string {
	out := make([]string, 0, len(p.allowed))
	for s := range p.allowed {
		out = append(out, s)
	}
	return out
}
