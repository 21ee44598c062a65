package internal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus/hooks/test"
)

func parseSource(source string) ([]Stmt, int, *test.Hook) {
	logger, hook := test.NewNullLogger()
	toks, lexErrors := Tokenize(source, logger)
	stmts, parseErrors := Parse(toks, logger)
	return stmts, lexErrors + parseErrors, hook
}

func checkTree(t *testing.T, source string, expected ...string) {
	stmts, errCount, hook := parseSource(source)
	if errCount != 0 {
		for _, entry := range hook.AllEntries() {
			t.Log(entry.Message)
		}
		t.Errorf("Unexpected errors parsing %q: %d", source, errCount)
		return
	}
	found := strings.Split(strings.TrimSuffix(PrintTree(stmts), "\n"), "\n")
	if diff := pretty.Diff(expected, found); len(diff) > 0 {
		t.Errorf("Tree of %q differs:\n%s", source, pretty.Sprint(diff))
	}
}

func checkParseError(t *testing.T, source string, kind ErrorKind, errorMsg string, errCount int) {
	_, count, hook := parseSource(source)
	if count != errCount {
		t.Errorf("Expected %d errors parsing %q, got %d", errCount, source, count)
		return
	}
	entry := hook.AllEntries()[0]
	if entry.Data[kindField] != string(kind) || entry.Message != errorMsg {
		t.Errorf("Parsing %q\nExpected:\n\t%s: %s\nFound:\n\t%v: %s", source, kind, errorMsg, entry.Data[kindField], entry.Message)
	}
}

func TestParseExpressions(t *testing.T) {
	checkTree(t, "print(1 + 2 * 3);", "(print (+ 1.0 (* 2.0 3.0)))")
	checkTree(t, "(1);", "(group 1.0)")
	checkTree(t, "-!x;", "(- (! x))")
	checkTree(t, "1 - 2 - 3;", "(- (- 1.0 2.0) 3.0)")
	checkTree(t, "a = b = 1;", "(= a (= b 1.0))")
	checkTree(t, "a or b and c;", "(or a (and b c))")
	checkTree(t, "1 < 2 == true;", "(== (< 1.0 2.0) true)")
	checkTree(t, "f(1, 2)(3);", "(call (call f 1.0 2.0) 3.0)")
	checkTree(t, "f();", "(call f)")
	checkTree(t, `"hi" + null;`, "(+ hi null)")
	checkTree(t, "1.5 / 0.25;", "(/ 1.5 0.25)")
}

func TestParseStatements(t *testing.T) {
	checkTree(t, `var a = "hi";
var b;`, "(var a hi)", "(var b)")
	checkTree(t, "{ var a = 1; print(a); }", "(block (var a 1.0) (print a))")
	checkTree(t, "{}", "(block)")
	checkTree(t, "if (a) print(1); else print(2);", "(if a (print 1.0) (print 2.0))")
	checkTree(t, "if (a) if (b) c; else d;", "(if a (if b c d))")
	checkTree(t, "while (a) {}", "(while a (block))")
	checkTree(t, "fn add(a, b) { return a + b; }", "(fn add (a b) (return (+ a b)))")
	checkTree(t, "fn f() { return; }", "(fn f () (return))")
	checkTree(t, "class A { m() {} n(x) { return x; } }", "(class A (fn m ()) (fn n (x) (return x)))")
}

func TestParseForDesugar(t *testing.T) {
	checkTree(t, "for (var i = 0; i < 3; i = i + 1) print(i);",
		"(block (var i 0.0) (while (< i 3.0) (block (print i) (= i (+ i 1.0)))))")
	checkTree(t, "for (i = 0; i < 3;) {}",
		"(block (= i 0.0) (while (< i 3.0) (block)))")
	checkTree(t, "for (;;) {}", "(while true (block))")
}

func TestParseErrors(t *testing.T) {
	checkParseError(t, "(", UnexpectedEndOfFile, "Expect expression, found end of file.", 1)
	checkParseError(t, "();", InvalidExpression, "Expected expression inside parentheses", 1)
	checkParseError(t, "(1;", UnmatchedParens, "Expect ')' after expression.", 1)
	checkParseError(t, "f(1;", UnmatchedParens, "Expect ')' after arguments.", 1)
	checkParseError(t, "1 = 2;", UnexpectedToken, "Invalid assignment target.", 1)
	checkParseError(t, "print 1;", UnexpectedToken, "Expect '(' after 'print'.", 1)
	checkParseError(t, "print(1)", UnexpectedToken, "Expect ';' after value.", 1)
	checkParseError(t, "1 +;", UnexpectedToken, "Expect expression at ';'.", 1)
	checkParseError(t, "{ var a = 1;", UnexpectedToken, "Expect '}' after block.", 1)
	checkParseError(t, "class A m() {}", UnexpectedToken, "Expect '{' before class body.", 1)
}

func TestParseRecovers(t *testing.T) {
	stmts, errCount, hook := parseSource("var 1 = 2;\nprint(3);\nprint(4")
	if errCount != 2 {
		t.Errorf("Expected 2 errors, got %d", errCount)
	}
	if len(stmts) != 1 || PrintStmt(stmts[0]) != "(print 3.0)" {
		t.Errorf("Expected only the valid statement to survive, got %s", PrintTree(stmts))
	}
	entries := hook.AllEntries()
	if len(entries) == 2 && (entries[0].Data[lineField] != 1 || entries[1].Data[lineField] != 3) {
		t.Errorf("Errors reported on wrong lines: %v, %v", entries[0].Data, entries[1].Data)
	}
}

func TestParseFunctionLimits(t *testing.T) {
	args := func(n int, prefix string) string {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = fmt.Sprintf("%s%d", prefix, i)
		}
		return strings.Join(parts, ", ")
	}

	if _, errCount, _ := parseSource("f(" + args(255, "") + ");"); errCount != 0 {
		t.Errorf("255 arguments should be accepted, got %d errors", errCount)
	}
	checkParseError(t, "f("+args(256, "")+");", FunctionError, "Can't have more than 255 arguments.", 1)

	if _, errCount, _ := parseSource("fn f(" + args(255, "p") + ") {}"); errCount != 0 {
		t.Errorf("255 parameters should be accepted, got %d errors", errCount)
	}
	checkParseError(t, "fn f("+args(256, "p")+") {}", FunctionError, "Can't have more than 255 parameters.", 1)
}

func TestParseExpression(t *testing.T) {
	logger, hook := test.NewNullLogger()

	toks, _ := Tokenize("1 + 2", logger)
	expr, errCount := ParseExpression(toks, logger)
	if errCount != 0 || PrintExpr(expr) != "(+ 1.0 2.0)" {
		t.Errorf("Unexpected result %d errors, %v", errCount, expr)
	}

	toks, _ = Tokenize("1 2", logger)
	expr, errCount = ParseExpression(toks, logger)
	if errCount != 1 || expr != nil {
		t.Errorf("Trailing tokens should be an error, got %d errors", errCount)
	}
	if entry := hook.LastEntry(); entry.Data[kindField] != string(UnexpectedToken) {
		t.Errorf("Expected UnexpectedToken, got %v", entry.Data[kindField])
	}

	toks, _ = Tokenize("(", logger)
	if _, errCount = ParseExpression(toks, logger); errCount != 1 {
		t.Errorf("Expected 1 error, got %d", errCount)
	}
}
