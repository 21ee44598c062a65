package internal

import (
	"github.com/pkg/errors"

	"rill/internal/tokens"
)

type exec struct {
	globals *env
	env     *env

	printer IPrinter
}

func newExec(printer IPrinter) *exec {
	globals := newEnv(nil)
	defineGlobals(globals)
	return &exec{
		globals: globals,
		env:     globals,
		printer: printer,
	}
}

// interpret runs stmts in order and stops at the first runtime error.
// A return outside of any function ends the program without error.
func (e *exec) interpret(stmts []Stmt) error {
	for _, s := range stmts {
		if _, err := acceptStmt[Object](s, e); err != nil {
			var ret *returnSignal
			if errors.As(err, &ret) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (e *exec) evaluate(expr Expr) (Object, error) {
	return acceptExpr[Object](expr, e)
}

func (e *exec) visitExprStmt(stmt *exprStmt) (Object, error) {
	_, err := e.evaluate(stmt.expression)
	return nil, err
}

func (e *exec) visitPrintStmt(stmt *printStmt) (Object, error) {
	value, err := e.evaluate(stmt.expression)
	if err != nil {
		return nil, err
	}
	_, err = e.printer.Println(value.String())
	return nil, errors.Wrap(err, "print")
}

func (e *exec) visitVarStmt(stmt *varStmt) (Object, error) {
	var value Object = null
	if stmt.initializer != nil {
		var err error
		if value, err = e.evaluate(stmt.initializer); err != nil {
			return nil, err
		}
	}
	e.env.define(stmt.name.lexeme, value)
	return nil, nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) (Object, error) {
	return nil, e.executeBlock(stmt.stmts, newEnv(e.env))
}

// executeBlock runs stmts inside env and restores the previous scope on
// every exit path
func (e *exec) executeBlock(stmts []Stmt, env *env) error {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if _, err := acceptStmt[Object](s, e); err != nil {
			return err
		}
	}
	return nil
}

func (e *exec) visitIfStmt(stmt *ifStmt) (Object, error) {
	cond, err := e.evaluate(stmt.condition)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return acceptStmt[Object](stmt.thenBranch, e)
	} else if stmt.elseBranch != nil {
		return acceptStmt[Object](stmt.elseBranch, e)
	}
	return nil, nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) (Object, error) {
	for {
		cond, err := e.evaluate(stmt.condition)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		if _, err := acceptStmt[Object](stmt.body, e); err != nil {
			return nil, err
		}
	}
}

func (e *exec) visitReturnStmt(stmt *returnStmt) (Object, error) {
	var value Object = null
	if stmt.value != nil {
		var err error
		if value, err = e.evaluate(stmt.value); err != nil {
			return nil, err
		}
	}
	return nil, &returnSignal{value: value}
}

func (e *exec) visitFnStmt(stmt *fnStmt) (Object, error) {
	e.env.define(stmt.name.lexeme, &function{
		declaration: stmt,
		closure:     e.env,
	})
	return nil, nil
}

func (e *exec) visitClassStmt(stmt *classStmt) (Object, error) {
	return nil, newRuntimeError(UnsupportedOperation, stmt.name, "Classes are not supported at run time.")
}

func (e *exec) visitAssignExpr(expr *assignExpr) (Object, error) {
	value, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if err := e.env.assign(expr.name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (Object, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	op := expr.operator
	switch op.token {
	case tokens.EQUAL_EQUAL:
		return rillBool(objectsEqual(left, right)), nil
	case tokens.BANG_EQUAL:
		return rillBool(!objectsEqual(left, right)), nil
	case tokens.PLUS:
		ls, lok := left.(rillString)
		rs, rok := right.(rillString)
		if lok && rok {
			return ls + rs, nil
		}
	}

	apply, ok := numberOperations[op.token]
	if !ok {
		return nil, newRuntimeError(InvalidBinaryOperation, op, "Invalid binary operator %s", op.lexeme)
	}

	x, xok := left.(rillNumber)
	y, yok := right.(rillNumber)
	if !xok || !yok {
		if op.token == tokens.PLUS {
			return nil, newRuntimeError(InvalidOperandType, op, "Binary operator + can only be applied to numbers or strings")
		}
		return nil, newRuntimeError(InvalidOperandType, op, "Binary operator %s can only be applied to numbers", op.lexeme)
	}

	return apply(float64(x), float64(y)), nil
}

func (e *exec) visitCallExpr(expr *callExpr) (Object, error) {
	callee, err := e.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]Object, 0, len(expr.arguments))
	for _, arg := range expr.arguments {
		value, err := e.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	fn, ok := callee.(callable)
	if !ok {
		return nil, newRuntimeError(InvalidFunctionCall, expr.paren, "Can only call functions, got %s.", callee)
	}

	if fn.arity() != len(arguments) {
		return nil, newRuntimeError(
			InvalidFunctionCall,
			expr.paren,
			"Expected %d arguments but got %d.",
			fn.arity(),
			len(arguments),
		)
	}

	return fn.call(e, arguments)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (Object, error) {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (Object, error) {
	tk := expr.value
	switch tk.token {
	case tokens.NUMBER:
		if n, ok := tk.literal.(float64); ok {
			return rillNumber(n), nil
		}
	case tokens.STRING:
		if s, ok := tk.literal.(string); ok {
			return rillString(s), nil
		}
	case tokens.TRUE:
		return rillBool(true), nil
	case tokens.FALSE:
		return rillBool(false), nil
	case tokens.NULL:
		return null, nil
	}
	return nil, newRuntimeError(InvalidLiteral, tk, "Invalid literal %s", tk.lexeme)
}

// visitLogicalExpr short-circuits and always yields a bool
func (e *exec) visitLogicalExpr(expr *logicalExpr) (Object, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}

	switch expr.operator.token {
	case tokens.OR:
		if truthy(left) {
			return rillBool(true), nil
		}
	case tokens.AND:
		if !truthy(left) {
			return rillBool(false), nil
		}
	default:
		return nil, newRuntimeError(InvalidLogicalOperation, expr.operator, "Invalid logical operator %s", expr.operator.lexeme)
	}

	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	return rillBool(truthy(right)), nil
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) (Object, error) {
	value, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.token {
	case tokens.MINUS:
		n, ok := value.(rillNumber)
		if !ok {
			return nil, newRuntimeError(InvalidOperandType, expr.operator, "Unary operator - can only be applied to numbers")
		}
		return -n, nil
	case tokens.BANG:
		return rillBool(!truthy(value)), nil
	}
	return nil, newRuntimeError(InvalidUnaryOperation, expr.operator, "Invalid unary operator %s", expr.operator.lexeme)
}

func (e *exec) visitVariableExpr(expr *variableExpr) (Object, error) {
	return e.env.get(expr.name)
}
