package internal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"rill/internal/tokens"
)

type lexer struct {
	source  string
	start   int
	current int
	line    int

	tokens []Token

	state *state
}

func (l *lexer) scan() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.start = l.current
	l.emit(tokens.EOF, nil)
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tokens.LEFT_PAREN, nil)
	case ')':
		l.emit(tokens.RIGHT_PAREN, nil)
	case '{':
		l.emit(tokens.LEFT_BRACE, nil)
	case '}':
		l.emit(tokens.RIGHT_BRACE, nil)
	case ',':
		l.emit(tokens.COMMA, nil)
	case '.':
		l.emit(tokens.DOT, nil)
	case '-':
		l.emit(tokens.MINUS, nil)
	case '+':
		l.emit(tokens.PLUS, nil)
	case ';':
		l.emit(tokens.SEMICOLON, nil)
	case '*':
		l.emit(tokens.STAR, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tokens.SLASH, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tokens.BANG_EQUAL, nil)
		} else {
			l.emit(tokens.BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tokens.EQUAL_EQUAL, nil)
		} else {
			l.emit(tokens.EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tokens.LESS_EQUAL, nil)
		} else {
			l.emit(tokens.LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tokens.GREATER_EQUAL, nil)
		} else {
			l.emit(tokens.GREATER, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(UnexpectedToken, l.line, fmt.Sprintf("Unexpected character: %c", c))
		}
	}
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(UnexpectedEndOfFile, l.line, "Unterminated string.")
		return
	}

	// Consume ending "
	l.advance()

	l.emit(tokens.STRING, l.source[l.start+1:l.current-1])
}

func (l *lexer) number() {
	seenDot := false
	for {
		if c := l.peek(); isDigit(c) {
			l.advance()
		} else if c == '.' && !seenDot {
			seenDot = true
			l.advance()
		} else {
			break
		}
	}

	lexeme := l.source[l.start:l.current]

	// A trailing dot is kept as a zero fraction and also emitted on its own
	if strings.HasSuffix(lexeme, ".") {
		lexeme += "0"
		literal, _ := strconv.ParseFloat(lexeme, 64)
		l.tokens = append(l.tokens, Token{
			token:   tokens.NUMBER,
			lexeme:  lexeme,
			literal: literal,
			line:    l.line,
		})
		l.start = l.current - 1
		l.emit(tokens.DOT, nil)
		return
	}

	literal, _ := strconv.ParseFloat(lexeme, 64)
	l.emit(tokens.NUMBER, literal)
}

func (l *lexer) identifier() {
	for c := l.peek(); isAlpha(c) || unicode.IsDigit(c); c = l.peek() {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := tokens.Keywords[identifier]
	if !ok {
		tokenType = tokens.IDENTIFIER
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return c
}

func (l *lexer) match(c rune) bool {
	if l.peek() != c {
		return false
	}
	l.current++
	return true
}

// peek returns the next character without consuming it, 0 at the end
func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return c
}

func (l *lexer) emit(token tokens.TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		token:   token,
		lexeme:  l.source[l.start:l.current],
		literal: literal,
		line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
