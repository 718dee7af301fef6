// SPDX-License-Identifier: MIT

// Command spbench runs shortest-path variants on one query and compares
// their answers and timings.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/shortpath/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads or generates the graph and benchmarks the selected
// variants. Results go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(logW, cfg)
	q, err := loadQuery(cfg)
	if err != nil {
		return err
	}
	logger.Info().
		Int("nodes", q.doc.Graph.Order()).
		Int("arcs", q.doc.Graph.Size()).
		Str("from", q.doc.Labels.Name(q.from)).
		Str("to", q.doc.Labels.Name(q.to)).
		Msg("graph ready")

	return benchmark(ctx, outW, logger, cfg, q)
}
