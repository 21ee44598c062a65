package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go && go run . Stmt > ../../internal/stmt.go"

var definitions = map[string][]string{
	"Stmt": {
		"Block: stmts []Stmt",
		"Expr: expression Expr",
		"Print: keyword *Token, expression Expr",
		"Var: name *Token, initializer Expr",
		"If: keyword *Token, condition Expr, thenBranch Stmt, elseBranch Stmt",
		"While: keyword *Token, condition Expr, body Stmt",
		"Return: keyword *Token, value Expr",
		"Fn: name *Token, params []*Token, body []Stmt",
		"Class: name *Token, methods []*fnStmt",
	},
	"Expr": {
		"Assign: name *Token, value Expr",
		"Binary: left Expr, operator *Token, right Expr",
		"Call: callee Expr, paren *Token, arguments []Expr",
		"Grouping: expression Expr",
		"Literal: value *Token",
		"Logical: left Expr, operator *Token, right Expr",
		"Unary: operator *Token, right Expr",
		"Variable: name *Token",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(64)
	}
	types, ok := definitions[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown base type %s\n", os.Args[1])
		os.Exit(64)
	}
	out, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func generateAst(baseName string, types []string) string {
	lower := strings.ToLower(baseName)

	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"
	out += "import \"fmt\"\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is implemented by every %s node\n", baseName, lower)
	out += "type " + baseName + " interface {\n"
	out += "\t" + lower + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor[T any] interface {\n", lower)
	for _, t := range types {
		name, _ := split(t)
		structType := structName(baseName, name)
		out += "\tvisit" + name + baseName + "(" + lower + " *" + structType + ") (T, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start dispatch
	out += fmt.Sprintf("func accept%s[T any](%s %s, visitor %sVisitor[T]) (T, error) {\n", baseName, lower, baseName, lower)
	out += fmt.Sprintf("\tswitch n := %s.(type) {\n", lower)
	for _, t := range types {
		name, _ := split(t)
		out += "\tcase *" + structName(baseName, name) + ":\n"
		out += "\t\treturn visitor.visit" + name + baseName + "(n)\n"
	}
	out += "\t}\n"
	out += fmt.Sprintf("\tpanic(fmt.Sprintf(\"unknown %s node %%T\", %s))\n", lower, lower)
	out += "}\n\n"
	// End dispatch

	// Start structs
	for _, t := range types {
		name, fields := split(t)
		out += generateType(baseName, name, fields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := structName(baseName, name)
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Method Definition

	return out
}

func split(t string) (string, string) {
	typeDef := strings.SplitN(t, ":", 2)
	return strings.TrimSpace(typeDef[0]), strings.TrimSpace(typeDef[1])
}

func structName(baseName, name string) string {
	return strings.ToLower(string(name[0])) + name[1:] + baseName
}
