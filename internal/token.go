package internal

import (
	"fmt"

	"rill/internal/tokens"
)

// Token is a lexeme tagged with its type and the line it ends on
type Token struct {
	token   tokens.TokenType
	lexeme  string
	literal interface{}
	line    int
}

// Type returns the token type
func (t *Token) Type() tokens.TokenType {
	return t.token
}

// Lexeme returns the source text of the token
func (t *Token) Lexeme() string {
	return t.lexeme
}

// Line returns the source line of the token
func (t *Token) Line() int {
	return t.line
}

// String renders the token as "TYPE lexeme literal"
func (t *Token) String() string {
	switch t.token {
	case tokens.STRING:
		return fmt.Sprintf("%s %s %s", t.token, t.lexeme, t.literal)
	case tokens.NUMBER:
		return fmt.Sprintf("%s %s %s", t.token, t.lexeme, normalizeNumber(t.literal.(float64)))
	}
	return fmt.Sprintf("%s %s null", t.token, t.lexeme)
}

// RenderTokens renders every token on its own line
func RenderTokens(toks []Token) []string {
	out := make([]string, len(toks))
	for i := range toks {
		out[i] = toks[i].String()
	}
	return out
}
