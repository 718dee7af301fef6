// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/graph"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates that the source or the target is not a node
	// of the graph. It is detected before any search work starts.
	ErrUnknownNode = errors.New("dijkstra: node not found in graph")

	// ErrNotReachable indicates that the frontier(s) emptied without finding
	// a path. It is a normal negative result, not a failure: Run returns a
	// Result with Status NotReachable together with this error.
	ErrNotReachable = errors.New("dijkstra: target not reachable from source")

	// ErrWorkerFailure indicates that a worker of a parallel search failed.
	// The whole search is aborted and every worker cause is joined into the
	// returned error.
	ErrWorkerFailure = errors.New("dijkstra: worker failure")

	// ErrBadWorkerCount indicates a negative worker count.
	ErrBadWorkerCount = errors.New("dijkstra: worker count must be non-negative")

	// ErrUnknownVariant indicates an unrecognized Strategy or variant name.
	ErrUnknownVariant = errors.New("dijkstra: unknown variant")

	// ErrAlreadyStarted indicates that Run was called twice on one Search.
	ErrAlreadyStarted = errors.New("dijkstra: search already started")

	// ErrDistanceOverflow indicates that a tentative distance reached the
	// int64 range limit before the target was found. The target may still be
	// reachable, so the search fails instead of reporting NotReachable.
	ErrDistanceOverflow = errors.New("dijkstra: distance exceeds int64 range")

	// ErrTargetRequired indicates that a bidirectional variant was asked for
	// a shortest-path tree, which it cannot build without a target.
	ErrTargetRequired = errors.New("dijkstra: variant requires a target")

	// ErrInvalidPath indicates that a Path does not match its graph: two
	// consecutive nodes are not joined by an arc or the weights do not add
	// up to TotalWeight.
	ErrInvalidPath = errors.New("dijkstra: invalid path")
)

// Strategy names one of the four search algorithms.
type Strategy uint8

const (
	// StrategySequential is classic single-direction Dijkstra.
	StrategySequential Strategy = iota
	// StrategyBidirectional alternates a forward and a backward search.
	StrategyBidirectional
	// StrategyParallel runs a worker pool over one shared frontier.
	StrategyParallel
	// StrategyParallelBidirectional runs one worker pool per direction.
	StrategyParallelBidirectional
)

var strategyNames = [...]string{
	StrategySequential:            "sequential",
	StrategyBidirectional:         "bidirectional",
	StrategyParallel:              "parallel",
	StrategyParallelBidirectional: "parallel-bidirectional",
}

// String returns the kebab-case name of the strategy.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// Variant is the search configuration: a strategy and, for the parallel
// strategies, the worker count per direction. Workers == 0 selects
// runtime.GOMAXPROCS(0).
type Variant struct {
	Strategy Strategy
	Workers  int
}

// Sequential selects single-threaded, single-direction Dijkstra.
func Sequential() Variant { return Variant{Strategy: StrategySequential} }

// Bidirectional selects single-threaded bidirectional Dijkstra.
func Bidirectional() Variant { return Variant{Strategy: StrategyBidirectional} }

// Parallel selects a single-direction search run by a pool of workers.
func Parallel(workers int) Variant {
	return Variant{Strategy: StrategyParallel, Workers: workers}
}

// ParallelBidirectional selects a bidirectional search with a pool of
// workers on each side.
func ParallelBidirectional(workers int) Variant {
	return Variant{Strategy: StrategyParallelBidirectional, Workers: workers}
}

// Variants returns all four variants, parallel ones with the given workers.
func Variants(workers int) []Variant {
	return []Variant{Sequential(), Bidirectional(), Parallel(workers), ParallelBidirectional(workers)}
}

// ParseVariant maps a strategy name (as printed by Strategy.String, case
// insensitive, "_" accepted for "-") to a Variant.
func ParseVariant(name string, workers int) (Variant, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for s, n := range strategyNames {
		if n == norm {
			return Variant{Strategy: Strategy(s), Workers: workers}, nil
		}
	}

	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Concurrent reports whether the variant runs a worker pool.
func (v Variant) Concurrent() bool {
	return v.Strategy == StrategyParallel || v.Strategy == StrategyParallelBidirectional
}

// String returns e.g. "bidirectional" or "parallel(4)".
func (v Variant) String() string {
	if v.Concurrent() {
		return fmt.Sprintf("%s(%d)", v.Strategy, v.Workers)
	}

	return v.Strategy.String()
}

// Status is the lifecycle state of a Search.
//
//	NotStarted → Running → {Found, NotReachable, Failed}
//
// Parallel variants pass through Draining between Running and the terminal
// state while their worker pools are joined.
type Status int32

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusDraining
	StatusFound
	StatusNotReachable
	StatusFailed
)

var statusNames = [...]string{
	StatusNotStarted:   "not-started",
	StatusRunning:      "running",
	StatusDraining:     "draining",
	StatusFound:        "found",
	StatusNotReachable: "not-reachable",
	StatusFailed:       "failed",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("status(%d)", int32(s))
}

// Terminal reports whether s is a final state.
func (s Status) Terminal() bool {
	return s == StatusFound || s == StatusNotReachable || s == StatusFailed
}

// Path is an ordered node sequence from source to target and its weight.
type Path struct {
	Nodes       []graph.Node
	TotalWeight int64
}

// Stats are counters collected during one search. For bidirectional
// variants they add up both directions.
type Stats struct {
	Finalized   int           // nodes finalized
	Relaxations int           // successful (strictly improving) relax steps
	StalePops   int           // frontier entries discarded as stale
	Meeting     graph.Node    // meeting node of bidirectional variants, else NoNode
	Workers     int           // workers per direction (0 for single-threaded variants)
	Elapsed     time.Duration // wall-clock time of Run
}

// Result is the outcome of a search.
type Result struct {
	Path
	Variant Variant
	Status  Status
	Stats   Stats
}

// Options configures a search.
//
// Frontier – priority structure used by every direction (default Heap).
// Logger   – receives lifecycle events (default zerolog.Nop()).
type Options struct {
	Frontier frontier.Kind
	Logger   zerolog.Logger

	// expandHook runs in a parallel worker before it relaxes u; a non-nil
	// error fails the worker. Set only from tests.
	expandHook func(dir graph.Direction, worker int, u graph.Node) error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the defaults: Heap frontier, no-op logger.
func DefaultOptions() Options {
	return Options{
		Frontier: frontier.Heap,
		Logger:   zerolog.Nop(),
	}
}

// WithFrontier selects the frontier implementation. Panics on an unknown kind.
func WithFrontier(kind frontier.Kind) Option {
	if kind != frontier.Heap && kind != frontier.Tree {
		panic(fmt.Sprintf("dijkstra: WithFrontier(%s)", kind))
	}

	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithLogger sets the logger that receives search lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
