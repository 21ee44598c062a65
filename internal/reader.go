package internal

import (
	"fmt"
	"strings"

	"rill/internal/tokens"
)

// PrintTree renders every statement as an s-expression, one per line
func PrintTree(stmts []Stmt) string {
	out := ""
	for _, st := range stmts {
		out += PrintStmt(st) + "\n"
	}
	return out
}

// PrintExpr renders a single expression as an s-expression
func PrintExpr(expr Expr) string {
	out, _ := acceptExpr[string](expr, stringVisitor{})
	return out
}

// PrintStmt renders a single statement as an s-expression
func PrintStmt(st Stmt) string {
	out, _ := acceptStmt[string](st, stringVisitor{})
	return out
}

// stringVisitor never fails, its error results are always nil
type stringVisitor struct{}

func (v stringVisitor) parenthesize(name string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + name + ")"
	}
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}

func (v stringVisitor) stmts(stmts []Stmt) []string {
	out := make([]string, 0, len(stmts))
	for _, st := range stmts {
		out = append(out, PrintStmt(st))
	}
	return out
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) (string, error) {
	return PrintExpr(stmt.expression), nil
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) (string, error) {
	return v.parenthesize("print", PrintExpr(stmt.expression)), nil
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) (string, error) {
	if stmt.initializer == nil {
		return v.parenthesize("var", stmt.name.lexeme), nil
	}
	return v.parenthesize("var", stmt.name.lexeme, PrintExpr(stmt.initializer)), nil
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) (string, error) {
	return v.parenthesize("block", v.stmts(stmt.stmts)...), nil
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) (string, error) {
	parts := []string{PrintExpr(stmt.condition), PrintStmt(stmt.thenBranch)}
	if stmt.elseBranch != nil {
		parts = append(parts, PrintStmt(stmt.elseBranch))
	}
	return v.parenthesize("if", parts...), nil
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) (string, error) {
	return v.parenthesize("while", PrintExpr(stmt.condition), PrintStmt(stmt.body)), nil
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) (string, error) {
	if stmt.value == nil {
		return v.parenthesize("return"), nil
	}
	return v.parenthesize("return", PrintExpr(stmt.value)), nil
}

func (v stringVisitor) visitFnStmt(stmt *fnStmt) (string, error) {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.lexeme
	}
	parts := append([]string{stmt.name.lexeme, "(" + strings.Join(params, " ") + ")"}, v.stmts(stmt.body)...)
	return v.parenthesize("fn", parts...), nil
}

func (v stringVisitor) visitClassStmt(stmt *classStmt) (string, error) {
	parts := []string{stmt.name.lexeme}
	for _, method := range stmt.methods {
		parts = append(parts, PrintStmt(method))
	}
	return v.parenthesize("class", parts...), nil
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) (string, error) {
	return v.parenthesize("=", expr.name.lexeme, PrintExpr(expr.value)), nil
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) (string, error) {
	return v.parenthesize(expr.operator.lexeme, PrintExpr(expr.left), PrintExpr(expr.right)), nil
}

func (v stringVisitor) visitCallExpr(expr *callExpr) (string, error) {
	parts := []string{PrintExpr(expr.callee)}
	for _, arg := range expr.arguments {
		parts = append(parts, PrintExpr(arg))
	}
	return v.parenthesize("call", parts...), nil
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) (string, error) {
	return v.parenthesize("group", PrintExpr(expr.expression)), nil
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) (string, error) {
	tk := expr.value
	switch tk.token {
	case tokens.NUMBER:
		if n, ok := tk.literal.(float64); ok {
			return normalizeNumber(n), nil
		}
	case tokens.STRING:
		return fmt.Sprint(tk.literal), nil
	}
	return tk.lexeme, nil
}

func (v stringVisitor) visitLogicalExpr(expr *logicalExpr) (string, error) {
	return v.parenthesize(expr.operator.lexeme, PrintExpr(expr.left), PrintExpr(expr.right)), nil
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) (string, error) {
	return v.parenthesize(expr.operator.lexeme, PrintExpr(expr.right)), nil
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) (string, error) {
	return expr.name.lexeme, nil
}
