package internal

import (
	"fmt"

	"rill/internal/tokens"
)

// parser stores parser data
type parser struct {
	tokens  []Token
	current int

	state *state
}

const maxFunctionParams = 255

func (p *parser) parse() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.isAtEnd() {
		st, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, st)
	}
	return stmts
}

// parseExpression parses a source made of a single expression
func (p *parser) parseExpression() Expr {
	expr, err := p.expression()
	if err != nil {
		return nil
	}
	if !p.isAtEnd() {
		tk := p.peek()
		p.error(UnexpectedToken, tk.line, fmt.Sprintf("Expect end of expression at '%s'.", tk.lexeme))
		return nil
	}
	return expr
}

func (p *parser) declaration() (Stmt, error) {
	if p.match(tokens.CLASS) {
		return p.class()
	}
	if p.match(tokens.FN) {
		return p.fn()
	}
	if p.match(tokens.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) class() (Stmt, error) {
	name, err := p.consume(tokens.IDENTIFIER, UnexpectedToken, "Expect class name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokens.LEFT_BRACE, UnexpectedToken, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*fnStmt
	for !p.check(tokens.RIGHT_BRACE) && !p.isAtEnd() {
		method, err := p.fn()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if _, err := p.consume(tokens.RIGHT_BRACE, UnexpectedToken, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &classStmt{
		name:    name,
		methods: methods,
	}, nil
}

func (p *parser) fn() (*fnStmt, error) {
	name, err := p.consume(tokens.IDENTIFIER, UnexpectedToken, "Expect function name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(tokens.LEFT_PAREN, UnexpectedToken, "Expect '(' after function name."); err != nil {
		return nil, err
	}

	var params []*Token
	if !p.check(tokens.RIGHT_PAREN) {
		for {
			if len(params) >= maxFunctionParams {
				return nil, p.error(FunctionError, p.peek().line, "Can't have more than 255 parameters.")
			}
			param, err := p.consume(tokens.IDENTIFIER, UnexpectedToken, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(tokens.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(tokens.RIGHT_PAREN, UnexpectedToken, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(tokens.LEFT_BRACE, UnexpectedToken, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &fnStmt{
		name:   name,
		params: params,
		body:   body,
	}, nil
}

func (p *parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(tokens.IDENTIFIER, UnexpectedToken, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(tokens.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(tokens.SEMICOLON, UnexpectedToken, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return &varStmt{
		name:        name,
		initializer: initializer,
	}, nil
}

func (p *parser) statement() (Stmt, error) {
	if p.match(tokens.PRINT) {
		return p.printStmt()
	}
	if p.match(tokens.IF) {
		return p.ifStmt()
	}
	if p.match(tokens.FOR) {
		return p.forLoop()
	}
	if p.match(tokens.WHILE) {
		return p.while()
	}
	if p.match(tokens.RETURN) {
		return p.ret()
	}
	if p.match(tokens.LEFT_BRACE) {
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &blockStmt{stmts: stmts}, nil
	}
	return p.expressionStmt()
}

func (p *parser) printStmt() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(tokens.LEFT_PAREN, UnexpectedToken, "Expect '(' after 'print'."); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokens.RIGHT_PAREN, UnexpectedToken, "Expect ')' after value."); err != nil {
		return nil, err
	}
	if _, err := p.consume(tokens.SEMICOLON, UnexpectedToken, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}, nil
}

// condition parses "( expression )" after if and while
func (p *parser) condition(keyword *Token) (Expr, error) {
	if _, err := p.consume(tokens.LEFT_PAREN, UnexpectedToken, fmt.Sprintf("Expect '(' after '%s'.", keyword.lexeme)); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokens.RIGHT_PAREN, UnexpectedToken, fmt.Sprintf("Expect ')' after %s condition.", keyword.lexeme)); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *parser) ifStmt() (Stmt, error) {
	st := &ifStmt{
		keyword: p.previous(),
	}

	var err error
	if st.condition, err = p.condition(st.keyword); err != nil {
		return nil, err
	}

	if st.thenBranch, err = p.statement(); err != nil {
		return nil, err
	}

	if p.match(tokens.ELSE) {
		if st.elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return st, nil
}

func (p *parser) while() (Stmt, error) {
	keyword := p.previous()
	cond, err := p.condition(keyword)
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}, nil
}

// forLoop desugars into an optional initializer block around a while loop
func (p *parser) forLoop() (Stmt, error) {
	keyword := p.previous()

	if _, err := p.consume(tokens.LEFT_PAREN, UnexpectedToken, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	if p.match(tokens.SEMICOLON) {
		initializer = nil
	} else if p.match(tokens.VAR) {
		initializer, err = p.varDeclaration()
	} else {
		initializer, err = p.expressionStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !p.check(tokens.SEMICOLON) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(tokens.SEMICOLON, UnexpectedToken, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var inc Expr
	if !p.check(tokens.RIGHT_PAREN) {
		if inc, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(tokens.RIGHT_PAREN, UnexpectedToken, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if inc != nil {
		body = &blockStmt{stmts: []Stmt{body, &exprStmt{expression: inc}}}
	}
	if cond == nil {
		cond = &literalExpr{value: &Token{token: tokens.TRUE, lexeme: "true", line: keyword.line}}
	}
	body = &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
	if initializer != nil {
		body = &blockStmt{stmts: []Stmt{initializer, body}}
	}
	return body, nil
}

func (p *parser) ret() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	if !p.check(tokens.SEMICOLON) {
		var err error
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(tokens.SEMICOLON, UnexpectedToken, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}, nil
}

func (p *parser) block() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for !p.check(tokens.RIGHT_BRACE) && !p.isAtEnd() {
		st, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	if _, err := p.consume(tokens.RIGHT_BRACE, UnexpectedToken, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) expressionStmt() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokens.SEMICOLON, UnexpectedToken, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &exprStmt{expression: expr}, nil
}

func (p *parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(tokens.EQUAL) {
		equal := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}, nil
		}

		return nil, p.error(UnexpectedToken, equal.line, "Invalid assignment target.")
	}
	return expr, nil
}

func (p *parser) or() (Expr, error) {
	return p.logical(p.and, tokens.OR)
}

func (p *parser) and() (Expr, error) {
	return p.logical(p.equality, tokens.AND)
}

func (p *parser) logical(operand func() (Expr, error), op tokens.TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(op) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) equality() (Expr, error) {
	return p.binary(p.comparison, tokens.EQUAL_EQUAL, tokens.BANG_EQUAL)
}

func (p *parser) comparison() (Expr, error) {
	return p.binary(p.addition, tokens.GREATER, tokens.GREATER_EQUAL, tokens.LESS, tokens.LESS_EQUAL)
}

func (p *parser) addition() (Expr, error) {
	return p.binary(p.multiplication, tokens.PLUS, tokens.MINUS)
}

func (p *parser) multiplication() (Expr, error) {
	return p.binary(p.unary, tokens.SLASH, tokens.STAR)
}

// binary parses a left-associative chain of operand (op operand)*
func (p *parser) binary(operand func() (Expr, error), ops ...tokens.TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	if p.match(tokens.BANG, tokens.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{
			operator: operator,
			right:    right,
		}, nil
	}
	return p.call()
}

func (p *parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(tokens.LEFT_PAREN) {
		if expr, err = p.finishCall(expr); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *parser) finishCall(callee Expr) (Expr, error) {
	arguments := make([]Expr, 0)
	if !p.check(tokens.RIGHT_PAREN) {
		for {
			if len(arguments) >= maxFunctionParams {
				return nil, p.error(FunctionError, p.peek().line, "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(tokens.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(tokens.RIGHT_PAREN, UnmatchedParens, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}, nil
}

func (p *parser) primary() (Expr, error) {
	if p.match(tokens.NUMBER, tokens.STRING, tokens.TRUE, tokens.FALSE, tokens.NULL) {
		return &literalExpr{value: p.previous()}, nil
	}
	if p.match(tokens.IDENTIFIER) {
		return &variableExpr{name: p.previous()}, nil
	}
	if p.match(tokens.LEFT_PAREN) {
		paren := p.previous()
		if p.match(tokens.RIGHT_PAREN) {
			return nil, p.error(InvalidExpression, paren.line, "Expected expression inside parentheses")
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokens.RIGHT_PAREN, UnmatchedParens, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &groupingExpr{expression: expr}, nil
	}

	tk := p.peek()
	if tk.token == tokens.EOF {
		return nil, p.error(UnexpectedEndOfFile, tk.line, "Expect expression, found end of file.")
	}
	return nil, p.error(UnexpectedToken, tk.line, fmt.Sprintf("Expect expression at '%s'.", tk.lexeme))
}

func (p *parser) error(kind ErrorKind, line int, msg string) error {
	return p.state.setError(kind, line, msg)
}

func (p *parser) consume(tk tokens.TokenType, kind ErrorKind, msg string) (*Token, error) {
	if p.check(tk) {
		return p.advance(), nil
	}

	line := p.peek().line
	if p.current > 0 {
		line = p.previous().line
	}
	return nil, p.error(kind, line, msg)
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(types ...tokens.TokenType) bool {
	for _, tk := range types {
		if p.check(tk) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokens.TokenType) bool {
	return p.peek().token == tk
}

func (p *parser) peek() *Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *Token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tokens.EOF
}

// synchronize discards tokens until just after a ';' or just before a
// token that starts a statement
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tokens.SEMICOLON {
			return
		}
		if p.peek().token.StartsStatement() {
			return
		}
		p.advance()
	}
}
