package internal

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

func runSource(source string) (*testPrinter, *test.Hook, Status) {
	logger, hook := test.NewNullLogger()
	tp := &testPrinter{}
	status := RunSourceWithPrinter(source, tp, logger)
	return tp, hook, status
}

func checkExpression(t *testing.T, exp string, result ...string) {
	source := "print(" + exp + ");"
	tp, hook, _ := runSource(source)
	any := false
	for _, r := range result {
		if tp.Equals(r) {
			any = true
			break
		}
	}
	if !any {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s (diagnostics: %d)",
			exp,
			result,
			tp.printed,
			len(hook.AllEntries()),
		)
	}
}

func checkErrorMsg(t *testing.T, source string, kind ErrorKind, errorMsg string, line int) {
	_, hook, status := runSource(source)
	if status != StatusRuntimeError {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected a runtime error, got status %d", source, status)
		return
	}
	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected one diagnostic, found %d", source, len(entries))
		return
	}
	entry := entries[0]
	if entry.Level != logrus.ErrorLevel ||
		entry.Data[kindField] != string(kind) ||
		entry.Data[lineField] != line ||
		entry.Message != errorMsg {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n[line %d] %s: %s\n----\nFound:\n----\n[line %v] %v: %s\n----",
			source,
			line,
			kind,
			errorMsg,
			entry.Data[lineField],
			entry.Data[kindField],
			entry.Message,
		)
	}
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	source := code + "\nprint(" + resultVar + ");"
	tp, _, _ := runSource(source)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %s instead of %s",
			code,
			resultVar,
			result,
			tp.printed,
		)
	}
}

func checkOutput(t *testing.T, source string, output string) {
	tp, hook, status := runSource(source)
	if status != StatusOK {
		for _, entry := range hook.AllEntries() {
			t.Log(entry.Message)
		}
		t.Errorf("Error on: \n%s\n\tunexpected status %d", source, status)
		return
	}
	if !tp.Equals(output) {
		t.Errorf("Error on: \n%s\n\toutput should be\n%s\ninstead of\n%s", source, output, tp.printed)
	}
}

func TestExpressions(t *testing.T) {

	// Arithmethic
	{
		// Number
		checkExpression(t, "1", "1")
		checkExpression(t, "1.5", "1.5")
		checkExpression(t, "3.0", "3")

		// Negative
		checkExpression(t, "-1", "-1")
		checkExpression(t, "--3", "3")
		checkExpression(t, "-(-3)", "3")

		// Precedence
		checkExpression(t, "1 + 2 * 3", "7")
		checkExpression(t, "(1 + 2) * 3", "9")
		checkExpression(t, "10 - 4 - 3", "3")
		checkExpression(t, "12 / 2 / 3", "2")

		// Add numbers
		checkExpression(t, "1 + 2 + 3", "6")
		checkExpression(t, "1.5 + 1", "2.5")

		// Subtract numbers
		checkExpression(t, "8 - 2", "6")

		// Multiply numbers
		checkExpression(t, "1 * 2 * 3", "6")

		// Divide numbers
		checkExpression(t, "12 / 2", "6")
		checkExpression(t, "10 / 4", "2.5")
		checkExpression(t, "1 / 0", "inf")
		checkExpression(t, "-1 / 0", "-inf")
		checkExpression(t, "0 / 0", "NaN")
	}

	// Strings
	{
		checkExpression(t, `"hello"`, "hello")
		checkExpression(t, `"a" + "b"`, "ab")
		checkExpression(t, `""`, "")
	}

	// Logical
	{
		// 'true' literal
		checkExpression(t, "true", "true")

		// 'false' literal
		checkExpression(t, "false", "false")

		// 'null' literal
		checkExpression(t, "null", "null")

		// not
		checkExpression(t, "!false", "true")
		checkExpression(t, "!true", "false")
		checkExpression(t, "!null", "true")
		checkExpression(t, `!""`, "false")
		checkExpression(t, "!0", "false")
		checkExpression(t, "!!1", "true")

		// and
		checkExpression(t, "true and true", "true")
		checkExpression(t, "false and true", "false")
		checkExpression(t, "1 and 2", "true")
		checkExpression(t, "null and 1", "false")

		// or
		checkExpression(t, "false or true", "true")
		checkExpression(t, "false or false", "false")
		checkExpression(t, "null or 1", "true")
		checkExpression(t, `"" or false`, "true")

		// and binds tighter than or
		checkExpression(t, "true or false and false", "true")
	}

	// Comparison
	{
		checkExpression(t, "1 < 2", "true")
		checkExpression(t, "2 <= 2", "true")
		checkExpression(t, "1 > 2", "false")
		checkExpression(t, "2 >= 3", "false")
		checkExpression(t, "1 + 1 == 2", "true")
	}

	// Equality
	{
		checkExpression(t, `1 == "1"`, "false")
		checkExpression(t, "null == null", "true")
		checkExpression(t, "null == false", "false")
		checkExpression(t, "true != false", "true")
		checkExpression(t, `"a" == "a"`, "true")
		checkExpression(t, "0 / 0 == 0 / 0", "false")
		checkExpression(t, "clock == clock", "true")
	}
}

func TestShortCircuit(t *testing.T) {
	checkOutput(t, `
fn loud(x) {
	print(x);
	return x;
}
print(false and loud(1));
print(true or loud(2));
print(true and loud(3));
`, "false\ntrue\n3\ntrue")
}

func TestEvaluationOrder(t *testing.T) {
	checkOutput(t, `
fn f(x) {
	print(x);
	return x;
}
print(f(1) + f(2));
print(f("a") + f("b"));
`, "1\n2\n3\na\nb\nab")
}

func TestRuntimeErrors(t *testing.T) {
	checkErrorMsg(t, `print(-"a");`, InvalidOperandType, "Unary operator - can only be applied to numbers", 1)
	checkErrorMsg(t, `print(1 - "a");`, InvalidOperandType, "Binary operator - can only be applied to numbers", 1)
	checkErrorMsg(t, `print(1 + true);`, InvalidOperandType, "Binary operator + can only be applied to numbers or strings", 1)
	checkErrorMsg(t, `print("1" < 2);`, InvalidOperandType, "Binary operator < can only be applied to numbers", 1)
	checkErrorMsg(t, `print(null * 2);`, InvalidOperandType, "Binary operator * can only be applied to numbers", 1)

	checkErrorMsg(t, "print(x);", UndefinedVariable, "Undefined variable 'x'.", 1)
	checkErrorMsg(t, "x = 1;", UndefinedVariable, "Undefined variable 'x'.", 1)
	checkErrorMsg(t, "{\n\tvar a = 1;\n}\nprint(a);", UndefinedVariable, "Undefined variable 'a'.", 4)

	checkErrorMsg(t, "var a = 1;\na();", InvalidFunctionCall, "Can only call functions, got 1.", 2)
	checkErrorMsg(t, `"f"();`, InvalidFunctionCall, "Can only call functions, got f.", 1)
	checkErrorMsg(t, "fn f(a) {}\nf();", InvalidFunctionCall, "Expected 1 arguments but got 0.", 2)
	checkErrorMsg(t, "clock(1);", InvalidFunctionCall, "Expected 0 arguments but got 1.", 1)

	checkErrorMsg(t, "class A {\n}", UnsupportedOperation, "Classes are not supported at run time.", 1)

	// Errors inside a call are reported once
	checkErrorMsg(t, "fn f() {\n\treturn -true;\n}\nf();", InvalidOperandType, "Unary operator - can only be applied to numbers", 2)
}

func TestRuntimeErrorStopsProgram(t *testing.T) {
	tp, hook, status := runSource("print(1);\nprint(-\"a\");\nprint(2);")
	if status != StatusRuntimeError {
		t.Errorf("Expected runtime error status, got %d", status)
	}
	if !tp.Equals("1") {
		t.Errorf("Statements after a runtime error must not run, printed %q", tp.printed)
	}
	if len(hook.AllEntries()) != 1 {
		t.Errorf("Expected exactly one diagnostic, found %d", len(hook.AllEntries()))
	}
}

func TestInvalidSourceDoesNotRun(t *testing.T) {
	tp, hook, status := runSource("print(1);\nprint(;")
	if status != StatusInvalid {
		t.Errorf("Expected invalid status, got %d", status)
	}
	if tp.printed != "" {
		t.Errorf("Nothing should run after a parse error, printed %q", tp.printed)
	}
	if len(hook.AllEntries()) != 1 {
		t.Errorf("Expected exactly one diagnostic, found %d", len(hook.AllEntries()))
	}
}

func TestGlobals(t *testing.T) {
	checkExpression(t, "type(clock())", "number")
	checkExpression(t, "clock() > 0", "true")
	checkExpression(t, "type(clock)", "function")
	checkExpression(t, "type(1)", "number")
	checkExpression(t, `type("1")`, "string")
	checkExpression(t, "type(true)", "bool")
	checkExpression(t, "type(null)", "null")
	checkExpression(t, "clock", "<native fn>")
	checkStatements(t, "fn f() {}", "f", "<fn f>")
	checkStatements(t, "fn f() {}", "type(f)", "function")
}

func TestStatements(t *testing.T) {
	// Variables
	checkStatements(t, "var a;", "a", "null")
	checkStatements(t, "var a = 1;", "a", "1")
	checkStatements(t, "var a = 1;\nvar a = 2;", "a", "2")
	checkStatements(t, "var a = 1;\na = a + 1;", "a", "2")
	checkStatements(t, "var a;\nvar b;\na = b = 3;", "a + b", "6")

	// Blocks and shadowing
	checkOutput(t, "var a = 1;\n{\n\tvar a = 2;\n\tprint(a);\n}\nprint(a);", "2\n1")
	checkOutput(t, "var a = 1;\n{\n\ta = 2;\n}\nprint(a);", "2")
	checkOutput(t, "var a = 1;\n{\n\tvar a = a + 1;\n\tprint(a);\n}", "2")

	// If
	checkStatements(t, "var a = 0;\nif (true) a = 1; else a = 2;", "a", "1")
	checkStatements(t, "var a = 0;\nif (null) a = 1; else a = 2;", "a", "2")
	checkStatements(t, "var a = 0;\nif (0) a = 1;", "a", "1")
	checkStatements(t, "var a = 0;\nif (false) if (true) a = 1; else a = 2;", "a", "0")

	// While
	checkStatements(t, "var i = 0;\nvar sum = 0;\nwhile (i < 5) {\n\tsum = sum + i;\n\ti = i + 1;\n}", "sum", "10")

	// For
	checkOutput(t, "for (var i = 0; i < 3; i = i + 1) print(i);", "0\n1\n2")
	checkStatements(t, "var i = 10;\nfor (var i = 0; i < 3; i = i + 1) {}", "i", "10")
	checkStatements(t, "var i = 0;\nfor (; i < 3;) i = i + 1;", "i", "3")
	checkStatements(t, "var i;\nfor (i = 0; i < 4; i = i + 2) {}", "i", "4")

	// Functions
	checkStatements(t, "fn add(a, b) {\n\treturn a + b;\n}", "add(2, 3)", "5")
	checkStatements(t, "fn f() {}", "f()", "null")
	checkStatements(t, "fn f() {\n\treturn;\n}", "f()", "null")
	checkStatements(t, `
fn fib(n) {
	if (n < 2) return n;
	return fib(n - 1) + fib(n - 2);
}`, "fib(10)", "55")
	checkStatements(t, `
fn find() {
	for (var i = 0; ; i = i + 1) {
		if (i == 7) return i;
	}
}`, "find()", "7")

	// Closures
	checkOutput(t, `
fn makeCounter() {
	var i = 0;
	fn count() {
		i = i + 1;
		return i;
	}
	return count;
}
var c = makeCounter();
print(c());
print(c());
`, "1\n2")
	checkOutput(t, `
fn makeCounter() {
	var i = 0;
	fn count() {
		i = i + 1;
		return i;
	}
	return count;
}
var a = makeCounter();
var b = makeCounter();
a();
print(a());
print(b());
`, "2\n1")

	// Functions are values
	checkStatements(t, "fn f() {}\nvar g = f;", "g == f", "true")
	checkStatements(t, "fn f() {}\nfn g() {}", "f == g", "false")

	// Return at top level ends the program
	checkOutput(t, "print(1);\nreturn;\nprint(2);", "1")
}
