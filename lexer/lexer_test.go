package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cxljs/lox/token"
)

func typesOf(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, err := New(`(){},.-+;*`).ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.EOF,
	}, typesOf(tokens))
}

func TestScanTokens_OneOrTwoCharOperators(t *testing.T) {
	tokens, err := New(`! != = == < <= > >=`).ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.EOF,
	}, typesOf(tokens))
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, err := New("1 // a comment\n2").ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, typesOf(tokens))
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_String(t *testing.T) {
	tokens, err := New(`"hello\nworld"`).ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, `hello\nworld`, tokens[0].Literal)
}

func TestScanTokens_StringSpanningLines(t *testing.T) {
	tokens, err := New("\"a\nb\"\nx").ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, 3, tokens[1].Line) // x is on line 3
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	tokens, err := New(`"unterminated`).ScanTokens()
	assert.Error(t, err)
	assert.Equal(t, []token.Type{token.EOF}, typesOf(tokens))
	assert.Contains(t, err.Error(), "[line 1] Error: Unterminated string.")
}

func TestScanTokens_Numbers(t *testing.T) {
	tokens, err := New(`123 45.67`).ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	tokens, err := New(`and class var foo_bar`).ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.AND, token.CLASS, token.VAR, token.IDENTIFIER, token.EOF}, typesOf(tokens))
}

func TestScanTokens_UnexpectedCharacterContinues(t *testing.T) {
	tokens, err := New("1 @ 2").ScanTokens()
	assert.Error(t, err)
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, typesOf(tokens))
	assert.Contains(t, err.Error(), "Unexpected character.")
}

func TestScanTokens_EmptySource(t *testing.T) {
	tokens, err := New("").ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.EOF}, typesOf(tokens))
}

func TestScanTokens_LineMonotonic(t *testing.T) {
	tokens, err := New("1\n2\n3").ScanTokens()
	assert.NoError(t, err)
	prev := 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Line, prev)
		prev = tok.Line
	}
}
