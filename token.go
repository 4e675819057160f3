package amoskeag

import "fmt"

// tokenKind identifies the lexical category of a token.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenError

	tokenNumber
	tokenString
	tokenTrue
	tokenFalse
	tokenNil
	tokenIdent
	tokenSymbol

	tokenLParen
	tokenRParen
	tokenLBracket
	tokenRBracket
	tokenLBrace
	tokenRBrace
	tokenComma
	tokenDot
	tokenColon

	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenEq
	tokenNe
	tokenLt
	tokenGt
	tokenLe
	tokenGe
	tokenPipe

	tokenAnd
	tokenOr
	tokenNot
	tokenIf
	tokenElse
	tokenEnd
	tokenLet
	tokenIn
	tokenThen // accepted as a no-op compatibility keyword, see §9
)

var keywords = map[string]tokenKind{
	"true":  tokenTrue,
	"false": tokenFalse,
	"nil":   tokenNil,
	"and":   tokenAnd,
	"or":    tokenOr,
	"not":   tokenNot,
	"if":    tokenIf,
	"else":  tokenElse,
	"end":   tokenEnd,
	"let":   tokenLet,
	"in":    tokenIn,
	"then":  tokenThen,
}

// token is one lexeme, its kind, and its source span.
type token struct {
	kind tokenKind
	text string
	span Span
}

func (t token) String() string {
	if t.kind == tokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%q", t.text)
}

func (k tokenKind) describe() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenNumber:
		return "number"
	case tokenString:
		return "string"
	case tokenIdent:
		return "identifier"
	case tokenSymbol:
		return "symbol"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	case tokenLBrace:
		return "'{'"
	case tokenRBrace:
		return "'}'"
	case tokenComma:
		return "','"
	case tokenDot:
		return "'.'"
	case tokenColon:
		return "':'"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}
