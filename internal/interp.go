package internal

import (
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
}

// Status is the outcome of running a whole source
type Status int

// Run outcomes
const (
	StatusOK Status = iota
	StatusInvalid
	StatusRuntimeError
)

// Tokenize scans source and returns its tokens, always ending with EOF,
// along with the number of lexical errors reported to diag
func Tokenize(source string, diag logrus.FieldLogger) ([]Token, int) {
	start := time.Now()
	state := newState(diag)
	lexer := &lexer{
		source: source,
		line:   1,
		state:  state,
	}
	toks := lexer.scan()
	diag.WithFields(logrus.Fields{
		"stage":   "lex",
		"tokens":  len(toks),
		"errors":  state.errorCount(),
		"elapsed": time.Since(start),
	}).Debug("scanned source")
	return toks, state.errorCount()
}

// Parse builds the statements of a program. Statements that failed to parse
// are reported to diag and left out of the result.
func Parse(toks []Token, diag logrus.FieldLogger) ([]Stmt, int) {
	start := time.Now()
	state := newState(diag)
	parser := &parser{
		tokens: toks,
		state:  state,
	}
	stmts := parser.parse()
	diag.WithFields(logrus.Fields{
		"stage":      "parse",
		"statements": len(stmts),
		"errors":     state.errorCount(),
		"elapsed":    time.Since(start),
	}).Debug("parsed program")
	return stmts, state.errorCount()
}

// ParseExpression parses tokens holding exactly one expression. The
// expression is nil when the error count is not zero.
func ParseExpression(toks []Token, diag logrus.FieldLogger) (Expr, int) {
	state := newState(diag)
	parser := &parser{
		tokens: toks,
		state:  state,
	}
	expr := parser.parseExpression()
	diag.WithFields(logrus.Fields{
		"stage":  "parse",
		"errors": state.errorCount(),
	}).Debug("parsed expression")
	return expr, state.errorCount()
}

// Interpreter keeps the global scope alive between calls
type Interpreter struct {
	exec *exec
	diag logrus.FieldLogger
}

// NewInterpreter creates an interpreter whose print statements write to printer
func NewInterpreter(printer IPrinter, diag logrus.FieldLogger) *Interpreter {
	return &Interpreter{
		exec: newExec(printer),
		diag: diag,
	}
}

// Interpret runs stmts until the end or the first runtime error, which is
// reported to diag and returned
func (i *Interpreter) Interpret(stmts []Stmt) error {
	start := time.Now()
	err := i.exec.interpret(stmts)
	if err != nil {
		reportRuntimeError(i.diag, err)
	}
	i.diag.WithFields(logrus.Fields{
		"stage":   "exec",
		"elapsed": time.Since(start),
	}).Debug("interpreted program")
	return err
}

// Evaluate computes the value of a single expression
func (i *Interpreter) Evaluate(expr Expr) (Object, error) {
	value, err := i.exec.evaluate(expr)
	if err != nil {
		reportRuntimeError(i.diag, err)
		return nil, err
	}
	return value, nil
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter, diag logrus.FieldLogger) Status {
	toks, lexErrors := Tokenize(source, diag)
	stmts, parseErrors := Parse(toks, diag)
	if lexErrors+parseErrors > 0 {
		return StatusInvalid
	}
	if err := NewInterpreter(p, diag).Interpret(stmts); err != nil {
		return StatusRuntimeError
	}
	return StatusOK
}
