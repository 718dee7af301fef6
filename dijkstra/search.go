// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/shortpath/graph"
)

// ShortestPath computes a shortest path from source to target in g using the
// given variant. It is ShortestPathContext with context.Background().
//
// Returns:
//
//   - (*Result, nil) with Status Found when a path exists.
//   - (*Result, ErrNotReachable) with Status NotReachable when none exists.
//   - (nil, err) for invalid input (ErrNilGraph, ErrUnknownNode,
//     ErrBadWorkerCount, ErrUnknownVariant) or an aborted parallel search
//     (ErrWorkerFailure).
//
// Complexity: O((V + E) log V) time, O(V + E) space for every variant; the
// parallel variants add O(workers) per finalization for the safety check.
func ShortestPath(g *graph.Graph, source, target graph.Node, variant Variant, opts ...Option) (*Result, error) {
	return ShortestPathContext(context.Background(), g, source, target, variant, opts...)
}

// ShortestPathContext is ShortestPath with cancellation. Cancelling ctx stops
// the search at the next point where workers check for termination and the
// context error is returned.
func ShortestPathContext(ctx context.Context, g *graph.Graph, source, target graph.Node, variant Variant, opts ...Option) (*Result, error) {
	return NewSearch(g, source, target, variant, opts...).Run(ctx)
}

// Search is a single shortest-path query. All mutable state (distance,
// predecessor and finalized tables, frontiers, worker pools) is created by
// Run and owned by this value, so concurrent and repeated searches over the
// same graph never interfere.
type Search struct {
	g       *graph.Graph
	source  graph.Node
	target  graph.Node
	variant Variant
	opts    Options

	// tree is non-nil for a one-to-all search; target is then NoNode.
	tree *Tree

	status atomic.Int32
}

// NewSearch prepares a search. Nothing is validated until Run.
func NewSearch(g *graph.Graph, source, target graph.Node, variant Variant, opts ...Option) *Search {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{
		g:       g,
		source:  source,
		target:  target,
		variant: variant,
		opts:    cfg,
	}
}

// Status returns the current lifecycle state. Safe to call from any
// goroutine while Run is in progress.
func (s *Search) Status() Status {
	return Status(s.status.Load())
}

// Run executes the search. It may be called once; later calls return
// ErrAlreadyStarted. See ShortestPath for the result contract.
func (s *Search) Run(ctx context.Context) (*Result, error) {
	if !s.status.CompareAndSwap(int32(StatusNotStarted), int32(StatusRunning)) {
		return nil, ErrAlreadyStarted
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Validate inputs before any allocation.
	workers, err := s.validate()
	if err != nil {
		s.setStatus(StatusFailed)
		return nil, err
	}

	log := s.opts.Logger.With().
		Str("variant", s.variant.String()).
		Int("source", int(s.source)).
		Int("target", int(s.target)).
		Logger()
	log.Debug().Int("workers", workers).Str("frontier", s.opts.Frontier.String()).Msg("search started")

	start := time.Now()
	res := &Result{
		Variant: s.variant,
		Stats:   Stats{Meeting: graph.NoNode, Workers: workers},
	}

	// 2) Trivial query: no frontier work, zero relaxations.
	var status Status
	if s.source == s.target {
		res.Path = Path{Nodes: []graph.Node{s.source}}
		status = StatusFound
	} else {
		status, err = s.dispatch(ctx, res, workers)
	}
	res.Stats.Elapsed = time.Since(start)

	// 3) Publish the terminal state.
	s.setStatus(status)
	res.Status = status
	switch status {
	case StatusFound:
		if s.tree != nil {
			s.tree.Stats = res.Stats
			log.Debug().
				Int("finalized", res.Stats.Finalized).
				Dur("elapsed", res.Stats.Elapsed).
				Msg("search explored every reachable node")

			return res, nil
		}
		log.Debug().
			Int64("distance", res.TotalWeight).
			Int("hops", res.Len()-1).
			Int("relaxations", res.Stats.Relaxations).
			Dur("elapsed", res.Stats.Elapsed).
			Msg("search found path")

		return res, nil
	case StatusNotReachable:
		log.Debug().
			Int("finalized", res.Stats.Finalized).
			Dur("elapsed", res.Stats.Elapsed).
			Msg("search exhausted without path")

		return res, ErrNotReachable
	default:
		log.Error().Err(err).Dur("elapsed", res.Stats.Elapsed).Msg("search failed")

		return nil, err
	}
}

// validate checks the graph, endpoints and variant and resolves the worker
// count.
func (s *Search) validate() (int, error) {
	if s.g == nil {
		return 0, ErrNilGraph
	}
	if !s.g.HasNode(s.source) {
		return 0, fmt.Errorf("%w: source %d (graph has %d nodes)", ErrUnknownNode, s.source, s.g.Order())
	}
	if s.tree == nil && !s.g.HasNode(s.target) {
		return 0, fmt.Errorf("%w: target %d (graph has %d nodes)", ErrUnknownNode, s.target, s.g.Order())
	}

	if s.tree != nil && (s.variant.Strategy == StrategyBidirectional || s.variant.Strategy == StrategyParallelBidirectional) {
		return 0, fmt.Errorf("%w: %s", ErrTargetRequired, s.variant)
	}

	switch s.variant.Strategy {
	case StrategySequential, StrategyBidirectional:
		return 0, nil
	case StrategyParallel, StrategyParallelBidirectional:
		if s.variant.Workers < 0 {
			return 0, fmt.Errorf("%w: %d", ErrBadWorkerCount, s.variant.Workers)
		}
		if s.variant.Workers == 0 {
			return runtime.GOMAXPROCS(0), nil
		}

		return s.variant.Workers, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariant, s.variant.Strategy)
	}
}

func (s *Search) dispatch(ctx context.Context, res *Result, workers int) (Status, error) {
	var (
		status Status
		err    error
	)
	switch s.variant.Strategy {
	case StrategySequential:
		status, err = s.runSequential(ctx, res)
	case StrategyBidirectional:
		status, err = s.runBidirectional(ctx, res)
	case StrategyParallel:
		status, err = s.runParallel(ctx, res, workers)
	default:
		status, err = s.runParallelBidirectional(ctx, res, workers)
	}
	if err != nil && err == ctx.Err() {
		err = fmt.Errorf("dijkstra: search canceled: %w", err)
	}

	return status, err
}

func (s *Search) setStatus(st Status) {
	s.status.Store(int32(st))
}

// drain moves a running parallel search into Draining once its pools have
// been told to stop.
func (s *Search) drain() {
	s.status.CompareAndSwap(int32(StatusRunning), int32(StatusDraining))
}
