package main

import (
	"flag"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	logLevelEnv = "RILL_LOG_LEVEL"
	noColorEnv  = "NO_COLOR"
)

type config struct {
	logLevel logrus.Level
	colored  bool

	command string
	path    string
}

// parseConfig reads flags from args, falling back to the environment
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("rill", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fs.Output().Write([]byte(usage + "\n"))
		fs.PrintDefaults()
	}

	level := fs.String("log-level", envOr(logLevelEnv, "warning"), "diagnostics log level (debug, info, warning, error)")
	noColor := fs.Bool("no-color", false, "disable coloured diagnostics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid -log-level %q", *level)
	}

	cfg := &config{
		logLevel: lvl,
		colored:  !*noColor && os.Getenv(noColorEnv) == "" && isatty.IsTerminal(os.Stderr.Fd()),
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, errors.New("missing command")
	}
	cfg.command = rest[0]
	switch cfg.command {
	case "repl":
		if len(rest) != 1 {
			return nil, errors.New("repl takes no arguments")
		}
	case "tokenize", "parse", "evaluate", "run":
		if len(rest) != 2 {
			return nil, errors.Errorf("%s expects exactly one file", cfg.command)
		}
		cfg.path = rest[1]
	default:
		return nil, errors.Errorf("unknown command %q", cfg.command)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
