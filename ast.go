package amoskeag

// Expr is the sum type of every AST node amoskeag can parse. Each
// concrete type below owns its children directly (no shared ownership:
// the AST is built once by the parser and never mutated afterwards, so
// there is never a need for copy-on-write or reference counting here).
type Expr interface {
	Span() Span
}

type exprBase struct {
	span Span
}

func (e exprBase) Span() Span { return e.span }

// NumberLit is a numeric literal.
type NumberLit struct {
	exprBase
	Value float64
}

// StringLit is a string literal, already unescaped.
type StringLit struct {
	exprBase
	Value string
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	exprBase
	Value bool
}

// NilLit is the literal `nil`.
type NilLit struct {
	exprBase
}

// SymbolLit is a `:name` or `:"quoted name"` literal.
type SymbolLit struct {
	exprBase
	Name string
}

// ArrayLit is an `[e, e, ...]` literal.
type ArrayLit struct {
	exprBase
	Elements []Expr
}

// DictEntry is one `key: value` pair of a DictLit, in source order.
type DictEntry struct {
	Key   string
	Value Expr
}

// DictLit is a `{key: value, ...}` literal.
type DictLit struct {
	exprBase
	Entries []DictEntry
}

// Var is a possibly-dotted variable reference, e.g. `user.age`. Name is
// the root identifier; Path is the (possibly empty) chain of `.field`
// segments walked with safe navigation.
type Var struct {
	exprBase
	Name string
	Path []string
}

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota
	UnaryNot
)

// Unary is a prefix operator applied to one operand.
type Unary struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

// BinaryOp identifies an infix operator.
type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNe
	BinLt
	BinGt
	BinLe
	BinGe
	BinAnd
	BinOr
)

// Binary is an infix operator applied to two operands.
type Binary struct {
	exprBase
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// If is a `if cond then else ... end` expression (always taken as a
// chain of cond/then pairs terminated by a mandatory else, per §4.2 the
// flattened `else if` form desugars into nested Ifs by the parser).
type If struct {
	exprBase
	Cond Expr
	Then Expr
	Else Expr
}

// Let is a `let name = value in body` binding.
type Let struct {
	exprBase
	Name  string
	Value Expr
	Body  Expr
}

// Call is an invocation of a named built-in with positional arguments.
type Call struct {
	exprBase
	Func string
	Args []Expr
}

// Pipe is a `lhs | rhs` data-flow operator. The parser never builds a
// Pipe node: parsePipe rewrites every pipe directly into a Call (§3.2),
// so neither the validator nor the evaluator ever sees one.
type Pipe struct {
	exprBase
	Left  Expr
	Right Expr
}
