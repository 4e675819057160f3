package amoskeag

import (
	"fmt"

	"github.com/pkg/errors"
)

// Span is a byte-offset range into the original source text, carried by
// every AST node and most tokens for diagnostics.
type Span struct {
	Start int
	End   int
}

// CompileErrorKind enumerates the categories of error that can abort
// compilation, per the error taxonomy.
type CompileErrorKind int

const (
	_ CompileErrorKind = iota
	LexError
	ParseError
	UndefinedSymbol
	UndefinedFunction
	ArityMismatch
	DuplicateKey
)

func (k CompileErrorKind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	case UndefinedSymbol:
		return "UndefinedSymbol"
	case UndefinedFunction:
		return "UndefinedFunction"
	case ArityMismatch:
		return "ArityMismatch"
	case DuplicateKey:
		return "DuplicateKey"
	default:
		return "UnknownCompileError"
	}
}

// CompileError is returned by Compile when source cannot be turned into
// a Program. Compilation aborts on the first error; there is no
// recovery or partial result.
type CompileError struct {
	Kind CompileErrorKind
	Span Span
	// Name is the symbol or function name at fault, when applicable.
	Name string
	// Expected and Got describe a ParseError's mismatch.
	Expected string
	Got      string
	// ExpectedArity and GotArity describe an ArityMismatch.
	ExpectedArity int
	GotArity      int
	Message       string
}

func (e *CompileError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (at %d:%d)", e.Kind, e.Message, e.Span.Start, e.Span.End)
	}
	return fmt.Sprintf("%s (at %d:%d)", e.Kind, e.Span.Start, e.Span.End)
}

func newLexError(span Span, format string, args ...any) *CompileError {
	return &CompileError{Kind: LexError, Span: span, Message: fmt.Sprintf(format, args...)}
}

func newParseError(span Span, expected, got string) *CompileError {
	return &CompileError{
		Kind:     ParseError,
		Span:     span,
		Expected: expected,
		Got:      got,
		Message:  fmt.Sprintf("expected %s, got %s", expected, got),
	}
}

func newUndefinedSymbol(name string, span Span) *CompileError {
	return &CompileError{Kind: UndefinedSymbol, Span: span, Name: name,
		Message: fmt.Sprintf("symbol :%s is not in the allowed-symbol set", name)}
}

func newUndefinedFunction(name string, span Span) *CompileError {
	return &CompileError{Kind: UndefinedFunction, Span: span, Name: name,
		Message: fmt.Sprintf("unknown function %q", name)}
}

func newArityMismatch(name string, expected, got int, span Span) *CompileError {
	return &CompileError{Kind: ArityMismatch, Span: span, Name: name,
		ExpectedArity: expected, GotArity: got,
		Message: fmt.Sprintf("%s expects %d argument(s), got %d", name, expected, got)}
}

func newDuplicateKey(name string, span Span) *CompileError {
	return &CompileError{Kind: DuplicateKey, Span: span, Name: name,
		Message: fmt.Sprintf("duplicate key %q in dictionary literal", name)}
}

// EvalErrorKind enumerates the categories of error that can abort
// evaluation.
type EvalErrorKind int

const (
	_ EvalErrorKind = iota
	TypeError
	DivisionByZero
	IndexOutOfRange
	ArgumentError
	InputError
	// InternalError marks an invariant the validator should already have
	// excluded. It should never surface for well-typed, in-bounds input.
	InternalError
)

func (k EvalErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case DivisionByZero:
		return "DivisionByZero"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case ArgumentError:
		return "ArgumentError"
	case InputError:
		return "InputError"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownEvalError"
	}
}

// EvalError is returned by Evaluate when a well-formed Program cannot be
// reduced to a Value for the given data. Evaluation aborts immediately;
// there is no partial result.
type EvalError struct {
	Kind    EvalErrorKind
	Span    Span
	Op      string
	Types   []string
	Message string
	cause   error
}

func (e *EvalError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Kind.String()
}

// Unwrap exposes the wrapped stack-traced cause of an InternalError, if
// any, to errors.Is/As.
func (e *EvalError) Unwrap() error {
	return e.cause
}

func newTypeError(op string, span Span, types ...string) *EvalError {
	return &EvalError{
		Kind:  TypeError,
		Span:  span,
		Op:    op,
		Types: types,
		Message: fmt.Sprintf("operator %q not applicable to %s", op, joinTypes(types)),
	}
}

func newDivisionByZero(op string, span Span) *EvalError {
	return &EvalError{Kind: DivisionByZero, Span: span, Op: op,
		Message: fmt.Sprintf("%s by zero", op)}
}

func newIndexOutOfRange(name string, span Span) *EvalError {
	return &EvalError{Kind: IndexOutOfRange, Span: span, Op: name,
		Message: fmt.Sprintf("%s: index out of range", name)}
}

func newArgumentError(name, format string, args ...any) *EvalError {
	return &EvalError{Kind: ArgumentError, Op: name,
		Message: fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, args...))}
}

func newInputError(format string, args ...any) *EvalError {
	return &EvalError{Kind: InputError, Message: fmt.Sprintf(format, args...)}
}

// newInternalError wraps an unexpected state with a stack trace via
// pkg/errors, so a host that chooses to log it can see where the
// invariant broke down. It never participates in normal, well-typed
// control flow.
func newInternalError(format string, args ...any) *EvalError {
	cause := errors.WithStack(fmt.Errorf(format, args...))
	return &EvalError{Kind: InternalError, Message: cause.Error(), cause: cause}
}

func joinTypes(types []string) string {
	switch len(types) {
	case 0:
		return "operand"
	case 1:
		return types[0]
	default:
		s := types[0]
		for _, t := range types[1:] {
			s += ", " + t
		}
		return s
	}
}
