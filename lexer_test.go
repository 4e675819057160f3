package amoskeag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token) []tokenKind {
	ks := make([]tokenKind, len(toks))
	for i, t := range toks {
		ks[i] = t.kind
	}
	return ks
}

func TestLexNumbers(t *testing.T) {
	toks, err := lex("1 2.5 3e10 4.5e-2")
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tokenNumber, tokenNumber, tokenNumber, tokenNumber, tokenEOF}, kinds(toks))
}

func TestLexMalformedNumber(t *testing.T) {
	_, err := lex("1.2.3")
	require.NotNil(t, err)
	assert.Equal(t, LexError, err.Kind)
}

func TestLexString(t *testing.T) {
	toks, err := lex(`"hello\nworld"`)
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, tokenString, toks[0].kind)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := lex(`"abc`)
	require.NotNil(t, err)
	assert.Equal(t, LexError, err.Kind)
}

func TestLexSymbolLiteral(t *testing.T) {
	toks, err := lex(`:foo`)
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, tokenSymbol, toks[0].kind)
	assert.Equal(t, ":foo", toks[0].text)
}

func TestLexQuotedSymbolLiteral(t *testing.T) {
	toks, err := lex(`:"has space"`)
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, tokenSymbol, toks[0].kind)
}

func TestLexColonAsDictSeparator(t *testing.T) {
	toks, err := lex(`{a: 1}`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tokenLBrace, tokenIdent, tokenColon, tokenNumber, tokenRBrace, tokenEOF}, kinds(toks))
}

func TestLexColonAsDictSeparatorNoSpace(t *testing.T) {
	toks, err := lex(`{"a":1}`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tokenLBrace, tokenString, tokenColon, tokenNumber, tokenRBrace, tokenEOF}, kinds(toks))
}

func TestLexColonAsSymbolAfterComma(t *testing.T) {
	toks, err := lex(`[1, :foo]`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tokenLBracket, tokenNumber, tokenComma, tokenSymbol, tokenRBracket, tokenEOF}, kinds(toks))
}

func TestLexColonAsSymbolAfterParen(t *testing.T) {
	toks, err := lex(`f(:sym)`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tokenIdent, tokenLParen, tokenSymbol, tokenRParen, tokenEOF}, kinds(toks))
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks, err := lex(`true false nil and or not if else end let in foo`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{
		tokenTrue, tokenFalse, tokenNil, tokenAnd, tokenOr, tokenNot,
		tokenIf, tokenElse, tokenEnd, tokenLet, tokenIn, tokenIdent, tokenEOF,
	}, kinds(toks))
}

func TestLexOperators(t *testing.T) {
	toks, err := lex(`== != <= >= < > + - * / % |`)
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{
		tokenEq, tokenNe, tokenLe, tokenGe, tokenLt, tokenGt,
		tokenPlus, tokenMinus, tokenStar, tokenSlash, tokenPercent, tokenPipe, tokenEOF,
	}, kinds(toks))
}

func TestLexComment(t *testing.T) {
	toks, err := lex("1 # trailing comment\n+ 2")
	require.Nil(t, err)
	assert.Equal(t, []tokenKind{tokenNumber, tokenPlus, tokenNumber, tokenEOF}, kinds(toks))
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := lex("1 $ 2")
	require.NotNil(t, err)
	assert.Equal(t, LexError, err.Kind)
}

func TestUnescape(t *testing.T) {
	s, err := unescape(`a\nb\tc\\d\"e`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tc\\d\"e", s)

	_, err = unescape(`bad\q`)
	assert.Error(t, err)

	_, err = unescape(`trailing\`)
	assert.Error(t, err)
}
