// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/generate"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/cli"
)

// denseModulus is the weight modulus of the generated dense graph.
const denseModulus = 10

// pathPreview is the number of labels printed at each end of a long path.
const pathPreview = 4

// query is a loaded graph with resolved endpoints.
type query struct {
	doc      *graphio.Document
	from, to graph.Node
}

func loadQuery(cfg *cli.Config) (*query, error) {
	var doc *graphio.Document
	if cfg.GraphPath != "" {
		d, err := graphio.Load(cfg.GraphPath)
		if err != nil {
			return nil, err
		}
		doc = d
	} else {
		g, err := generate.Build(
			[]generate.Option{generate.WithWeightFn(generate.ModuloWeight(denseModulus))},
			generate.Complete(cfg.Complete),
		)
		if err != nil {
			return nil, err
		}
		doc = &graphio.Document{Labels: graphio.IndexLabels(cfg.Complete), Graph: g}
	}
	if doc.Graph.Order() == 0 {
		return nil, &cli.ExitError{Code: 2, Message: "graph has no nodes"}
	}

	q := &query{doc: doc, from: 0, to: graph.Node(doc.Graph.Order() - 1)}
	var err error
	if cfg.From != "" {
		if q.from, err = doc.Labels.Node(cfg.From); err != nil {
			return nil, &cli.ExitError{Code: 2, Message: err.Error()}
		}
	}
	if cfg.To != "" {
		if q.to, err = doc.Labels.Node(cfg.To); err != nil {
			return nil, &cli.ExitError{Code: 2, Message: err.Error()}
		}
	}

	return q, nil
}

// outcome is the fastest of cfg.Repeat runs of one variant.
type outcome struct {
	variant dijkstra.Variant
	res     *dijkstra.Result
	best    time.Duration
}

// benchmark runs every configured variant and prints one line each. With
// more than one variant, any disagreement on status or distance fails.
func benchmark(ctx context.Context, w io.Writer, logger zerolog.Logger, cfg *cli.Config, q *query) error {
	opts := []dijkstra.Option{
		dijkstra.WithFrontier(cfg.Frontier),
		dijkstra.WithLogger(logger),
	}

	outcomes := make([]outcome, 0, len(cfg.Variants))
	for _, v := range cfg.Variants {
		out := outcome{variant: v}
		for i := 0; i < cfg.Repeat; i++ {
			res, err := dijkstra.ShortestPathContext(ctx, q.doc.Graph, q.from, q.to, v, opts...)
			if err != nil && !errors.Is(err, dijkstra.ErrNotReachable) {
				return fmt.Errorf("%s: %w", v, err)
			}
			if cfg.Verify && res.Status == dijkstra.StatusFound {
				if err := res.Verify(q.doc.Graph); err != nil {
					return fmt.Errorf("%s: %w", v, err)
				}
			}
			if out.res == nil || res.Stats.Elapsed < out.best {
				out.res, out.best = res, res.Stats.Elapsed
			}
		}
		fmt.Fprintln(w, formatOutcome(out, q.doc.Labels))
		outcomes = append(outcomes, out)
	}

	return agree(outcomes)
}

func formatOutcome(o outcome, labels *graphio.Labels) string {
	if o.res.Status != dijkstra.StatusFound {
		return fmt.Sprintf("%-26s %-13s time=%s", o.variant, o.res.Status, o.best)
	}

	return fmt.Sprintf("%-26s %-13s distance=%d hops=%d time=%s path=%s",
		o.variant, o.res.Status, o.res.TotalWeight, o.res.Len()-1, o.best, formatPath(labels.Names(o.res.Nodes)))
}

// formatPath joins labels, eliding the middle of long paths.
func formatPath(names []string) string {
	if len(names) > 2*pathPreview+1 {
		head := strings.Join(names[:pathPreview], ",")
		tail := strings.Join(names[len(names)-pathPreview:], ",")
		return fmt.Sprintf("%s,…(%d),%s", head, len(names)-2*pathPreview, tail)
	}

	return strings.Join(names, ",")
}

// agree fails when the outcomes differ in status or distance.
func agree(outcomes []outcome) error {
	if len(outcomes) < 2 {
		return nil
	}
	ref := outcomes[0]
	for _, o := range outcomes[1:] {
		if o.res.Status != ref.res.Status || o.res.TotalWeight != ref.res.TotalWeight {
			return &cli.ExitError{
				Code: 1,
				Message: fmt.Sprintf("variants disagree: %s %s/%d, %s %s/%d",
					ref.variant, ref.res.Status, ref.res.TotalWeight,
					o.variant, o.res.Status, o.res.TotalWeight),
			}
		}
	}

	return nil
}
