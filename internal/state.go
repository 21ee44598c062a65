package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorKind names the category of a diagnostic
type ErrorKind string

// Lexer and parser errors
const (
	UnmatchedParens     ErrorKind = "UnmatchedParens"
	UnexpectedToken     ErrorKind = "UnexpectedToken"
	InvalidExpression   ErrorKind = "InvalidExpression"
	UnexpectedEndOfFile ErrorKind = "UnexpectedEndOfFile"
	FunctionError       ErrorKind = "FunctionError"
)

// Runtime errors
const (
	InvalidBinaryOperation  ErrorKind = "InvalidBinaryOperation"
	InvalidUnaryOperation   ErrorKind = "InvalidUnaryOperation"
	InvalidOperandType      ErrorKind = "InvalidOperandType"
	UndefinedVariable       ErrorKind = "UndefinedVariable"
	InvalidLiteral          ErrorKind = "InvalidLiteral"
	InvalidLogicalOperation ErrorKind = "InvalidLogicalOperation"
	InvalidFunctionCall     ErrorKind = "InvalidFunctionCall"
	UnsupportedOperation    ErrorKind = "UnsupportedOperation"
)

type parseError struct {
	kind ErrorKind
	line int
	msg  string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("[line %d] %s: %s", e.line, e.kind, e.msg)
}

// runtimeError aborts the current top-level statement sequence
type runtimeError struct {
	kind  ErrorKind
	token *Token
	msg   string
}

func newRuntimeError(kind ErrorKind, token *Token, format string, a ...interface{}) *runtimeError {
	return &runtimeError{
		kind:  kind,
		token: token,
		msg:   fmt.Sprintf(format, a...),
	}
}

func (e *runtimeError) Error() string {
	return fmt.Sprintf("[line %d] %s: %s", e.line(), e.kind, e.msg)
}

func (e *runtimeError) line() int {
	if e.token == nil {
		return 0
	}
	return e.token.line
}

// Kind returns the error category
func (e *runtimeError) Kind() ErrorKind {
	return e.kind
}

// state collects the diagnostics of one pipeline stage and reports each
// one as soon as it is recorded
type state struct {
	errors []*parseError
	logger logrus.FieldLogger
}

func newState(logger logrus.FieldLogger) *state {
	return &state{
		errors: make([]*parseError, 0),
		logger: logger,
	}
}

func (s *state) setError(kind ErrorKind, line int, msg string) *parseError {
	err := &parseError{kind: kind, line: line, msg: msg}
	s.errors = append(s.errors, err)
	reportDiagnostic(s.logger, kind, line, msg)
	return err
}

// Valid returns true if no error was recorded
func (s *state) Valid() bool {
	return len(s.errors) == 0
}

func (s *state) errorCount() int {
	return len(s.errors)
}
