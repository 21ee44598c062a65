package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"rill/internal"
)

const usage = "Usage: rill [flags] <tokenize|parse|evaluate|run> <file>\n       rill [flags] repl"

// Exit codes
const (
	exitOK      = 0
	exitUsage   = 64
	exitData    = 65
	exitNoInput = 66
	exitRuntime = 70
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	diag := internal.NewLogger(stderr, cfg.logLevel, cfg.colored)

	if cfg.command == "repl" {
		return repl(stdin, stdPrinter{}, diag)
	}

	source, err := readSource(cfg.path)
	if err != nil {
		diag.Error(err)
		return exitNoInput
	}
	diag.WithFields(logrus.Fields{"command": cfg.command, "file": cfg.path}).Debug("starting")

	switch cfg.command {
	case "tokenize":
		return tokenize(source, stdPrinter{}, diag)
	case "parse":
		return parse(source, stdPrinter{}, diag)
	case "evaluate":
		return evaluate(source, internal.NewInterpreter(stdPrinter{}, diag), stdPrinter{}, diag)
	}
	return runSource(source, stdPrinter{}, diag)
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}

func tokenize(source string, p internal.IPrinter, diag logrus.FieldLogger) int {
	toks, errCount := internal.Tokenize(source, diag)
	for _, line := range internal.RenderTokens(toks) {
		p.Println(line)
	}
	if errCount > 0 {
		return exitData
	}
	return exitOK
}

func parse(source string, p internal.IPrinter, diag logrus.FieldLogger) int {
	toks, lexErrors := internal.Tokenize(source, diag)
	stmts, parseErrors := internal.Parse(toks, diag)
	if lexErrors+parseErrors > 0 {
		return exitData
	}
	for _, st := range stmts {
		p.Println(internal.PrintStmt(st))
	}
	return exitOK
}

func evaluate(source string, interp *internal.Interpreter, p internal.IPrinter, diag logrus.FieldLogger) int {
	toks, lexErrors := internal.Tokenize(source, diag)
	if lexErrors > 0 {
		return exitData
	}
	expr, parseErrors := internal.ParseExpression(toks, diag)
	if parseErrors > 0 {
		return exitData
	}
	value, err := interp.Evaluate(expr)
	if err != nil {
		return exitRuntime
	}
	p.Println(value.String())
	return exitOK
}

func runSource(source string, p internal.IPrinter, diag logrus.FieldLogger) int {
	switch internal.RunSourceWithPrinter(source, p, diag) {
	case internal.StatusInvalid:
		return exitData
	case internal.StatusRuntimeError:
		return exitRuntime
	}
	return exitOK
}

// repl keeps one interpreter for the whole session. Lines ending in ';' or
// '}' run as programs, anything else is evaluated and its value printed.
func repl(stdin io.Reader, p internal.IPrinter, diag logrus.FieldLogger) int {
	interp := internal.NewInterpreter(p, diag)
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, ";") || strings.HasSuffix(line, "}") {
			toks, lexErrors := internal.Tokenize(line, diag)
			stmts, parseErrors := internal.Parse(toks, diag)
			if lexErrors+parseErrors == 0 {
				interp.Interpret(stmts)
			}
			continue
		}
		evaluate(line, interp, p, diag)
	}
	if err := scanner.Err(); err != nil {
		diag.Error(errors.Wrap(err, "reading input"))
		return exitNoInput
	}
	return exitOK
}
