package internal

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	kindField = "kind"
	lineField = "line"
)

// NewLogger creates the logger every diagnostic and trace is written to
func NewLogger(out io.Writer, level logrus.Level, colored bool) *logrus.Logger {
	c := color.New()
	if colored {
		c.Enable()
	} else {
		c.Disable()
	}
	logger := logrus.New()
	logger.Out = out
	logger.Level = level
	logger.Formatter = &diagnosticFormatter{color: c}
	return logger
}

// diagnosticFormatter prints diagnostics as "[line N] Kind: message" and
// anything else as "LEVEL message key=value ..."
type diagnosticFormatter struct {
	color *color.Color
}

func (f *diagnosticFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	if kind, ok := entry.Data[kindField]; ok {
		fmt.Fprintf(b, "[line %v] %s: %s\n", entry.Data[lineField], f.color.Red(kind), entry.Message)
		return b.Bytes(), nil
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString(f.color.Grey(strings.ToUpper(entry.Level.String())))
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func reportDiagnostic(logger logrus.FieldLogger, kind ErrorKind, line int, msg string) {
	logger.WithFields(logrus.Fields{
		kindField: string(kind),
		lineField: line,
	}).Error(msg)
}

func reportRuntimeError(logger logrus.FieldLogger, err error) {
	var runErr *runtimeError
	if errors.As(err, &runErr) {
		reportDiagnostic(logger, runErr.kind, runErr.line(), runErr.msg)
		return
	}
	logger.Error(err)
}
