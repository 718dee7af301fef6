// SPDX-License-Identifier: MIT

package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/frontier"
)

// AllVariants is the -variant value that runs every variant and compares
// their answers.
const AllVariants = "all"

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
type Config struct {
	GraphPath string // graph file; empty selects the generated dense graph
	Complete  int    // node count of the generated dense graph
	From, To  string // node labels; empty means first and last node

	Variants []dijkstra.Variant
	Frontier frontier.Kind
	Repeat   int
	Verify   bool

	LogLevel  zerolog.Level
	LogFormat string // "json" or "console"
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help requested), or an ExitError with code 2.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("spbench", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
spbench - run and compare shortest-path variants on one query.

Usage:
  spbench [options]

Without -graph a complete graph of -complete nodes is generated with
weight (i+j) % 10 + 1 on every arc i→j.

Options:
`)
		fs.PrintDefaults()
	}

	graphFlag := fs.String("graph", "", "Graph file (.json, .yaml, .yml, .hcl or text edge list).")
	completeFlag := fs.Int("complete", 1000, "Node count of the generated dense graph when -graph is empty.")
	fromFlag := fs.String("from", "", "Source node label (default: first node).")
	toFlag := fs.String("to", "", "Target node label (default: last node).")
	variantFlag := fs.String("variant", AllVariants, "sequential, bidirectional, parallel, parallel-bidirectional or all.")
	workersFlag := fs.Int("workers", 0, "Workers per direction for parallel variants; 0 uses GOMAXPROCS.")
	frontierFlag := fs.String("frontier", "heap", "Frontier structure: heap or tree.")
	repeatFlag := fs.Int("repeat", 1, "Runs per variant; the fastest is reported.")
	verifyFlag := fs.Bool("verify", false, "Check every returned path against the graph.")
	logLevelFlag := fs.String("log-level", "warn", "Log level: debug, info, warn or error.")
	logFormatFlag := fs.String("log-format", "console", "Log format: console or json.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	cfg := &Config{
		GraphPath: *graphFlag,
		Complete:  *completeFlag,
		From:      *fromFlag,
		To:        *toFlag,
		Repeat:    *repeatFlag,
		Verify:    *verifyFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
	}

	if cfg.GraphPath == "" && cfg.Complete < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid complete: must be at least 1"}
	}
	if cfg.Repeat < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid repeat: must be at least 1"}
	}
	if *workersFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be non-negative"}
	}

	if strings.EqualFold(*variantFlag, AllVariants) {
		cfg.Variants = dijkstra.Variants(*workersFlag)
	} else {
		v, err := dijkstra.ParseVariant(*variantFlag, *workersFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Variants = []dijkstra.Variant{v}
	}

	kind, err := frontier.ParseKind(*frontierFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.Frontier = kind

	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'console' or 'json'"}
	}
	switch strings.ToLower(*logLevelFlag) {
	case "debug":
		cfg.LogLevel = zerolog.DebugLevel
	case "info":
		cfg.LogLevel = zerolog.InfoLevel
	case "warn":
		cfg.LogLevel = zerolog.WarnLevel
	case "error":
		cfg.LogLevel = zerolog.ErrorLevel
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}

// NewLogger builds the process logger described by cfg.
func NewLogger(w io.Writer, cfg *Config) zerolog.Logger {
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(cfg.LogLevel).With().Timestamp().Logger()
}
