// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/graph"
)

// halter decides when a parallel search stops. Every method is called with
// the side's lock held; a true result requests a stop of all pools.
type halter interface {
	// settled is called after u has been finalized at distance du.
	settled(s *side, u graph.Node, du int64) bool
	// relaxed is called after v's distance has been lowered to dv.
	relaxed(s *side, v graph.Node, dv int64) bool
	// expanded is called after a worker has finished relaxing a node.
	expanded(s *side) bool
	// exhausted is called when s has no frontier entries and no in-flight
	// worker left.
	exhausted(s *side) bool
}

// pool is the shared run state of one parallel search: the sides, the
// stop flag and the collected worker failures.
type pool struct {
	sides []*side
	halt  halter
	hook  func(dir graph.Direction, worker int, u graph.Node) error

	stop     atomic.Bool
	canceled atomic.Bool
	stopOnce sync.Once
	stopped  chan struct{}
	onStop   func()

	mu   sync.Mutex
	errs []error
}

func newPool(halt halter, hook func(graph.Direction, int, graph.Node) error, onStop func()) *pool {
	return &pool{
		halt:    halt,
		hook:    hook,
		stopped: make(chan struct{}),
		onStop:  onStop,
	}
}

// requestStop raises the stop flag once. It takes no lock, so it may be
// called while holding a side lock; waiters are woken by the watcher.
func (p *pool) requestStop() {
	p.stopOnce.Do(func() {
		p.stop.Store(true)
		close(p.stopped)
		if p.onStop != nil {
			p.onStop()
		}
	})
}

// fail records a worker failure and stops the search.
func (p *pool) fail(err error) {
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
	p.requestStop()
}

// failure returns the joined worker failures, or nil.
func (p *pool) failure() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrWorkerFailure, errors.Join(p.errs...))
}

// wakeAll broadcasts every side's condition variable. Each side lock is
// taken on its own, so a waiter that has checked the stop flag is either
// already parked or will see the flag.
func (p *pool) wakeAll() {
	for _, s := range p.sides {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	}
}

// run starts workers goroutines per side plus a watcher that turns context
// cancellation into a stop and wakes parked workers once the stop flag is
// raised. It returns after every goroutine has been joined.
func (p *pool) run(ctx context.Context, workers int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var eg errgroup.Group

	eg.Go(func() error {
		select {
		case <-p.stopped:
		case <-ctx.Done():
			if !p.stop.Load() {
				p.canceled.Store(true)
			}
			p.requestStop()
		}
		p.wakeAll()

		return nil
	})

	for _, s := range p.sides {
		for w := 0; w < workers; w++ {
			s, w := s, w
			eg.Go(func() error { return p.work(s, w) })
		}
	}

	if err := eg.Wait(); err != nil {
		return p.failure()
	}
	if err := p.failure(); err != nil {
		return err
	}
	if p.canceled.Load() {
		return ctx.Err()
	}

	return nil
}

// work is the worker loop: take the next safe node, relax it, repeat.
// A panic or hook error fails the worker and aborts the search.
func (p *pool) work(s *side, w int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s worker %d: panic: %v", s.dir, w, r)
		}
		if err != nil {
			p.fail(err)
		}
	}()

	for {
		u, du, ok := s.next(w)
		if !ok {
			return nil
		}
		arcs := s.g.Neighbors(u, s.dir)
		if p.hook != nil {
			if err := p.hook(s.dir, w, u); err != nil {
				return fmt.Errorf("%s worker %d at node %d: %w", s.dir, w, u, err)
			}
		}
		s.apply(w, u, du, arcs)
	}
}

// side is one search direction shared by a pool of workers. mu guards the
// frontier, the finalized set, the predecessor table, the in-flight
// records and the counters. dist is written only under mu but may be read
// lock-free by the opposite side of a bidirectional search.
type side struct {
	g   *graph.Graph
	dir graph.Direction
	run *pool

	mu    sync.Mutex
	cond  *sync.Cond
	front frontier.Frontier
	dist  []atomic.Int64
	prev  []graph.Node
	done  *bitset.BitSet

	// Per worker: distance of the node being relaxed and the smallest
	// distance that relaxation can produce; Infinity when idle.
	inflight []int64
	bound    []int64
	active   int

	// key is min(frontier top, in-flight distances): a lower bound on the
	// distance of any node this side may still finalize or improve from.
	// It never decreases.
	key atomic.Int64

	// overflow is set when a candidate distance did not fit below Infinity.
	overflow bool

	finalized, relaxations, stale int
}

func newSide(g *graph.Graph, dir graph.Direction, origin graph.Node, kind frontier.Kind, workers int, run *pool) *side {
	n := g.Order()
	s := &side{
		g:        g,
		dir:      dir,
		run:      run,
		front:    frontier.New(kind, n),
		dist:     make([]atomic.Int64, n),
		prev:     make([]graph.Node, n),
		done:     bitset.New(uint(n)),
		inflight: make([]int64, workers),
		bound:    make([]int64, workers),
	}
	s.cond = sync.NewCond(&s.mu)
	for v := range s.dist {
		s.dist[v].Store(graph.Infinity)
		s.prev[v] = graph.NoNode
	}
	for w := range s.inflight {
		s.inflight[w] = graph.Infinity
		s.bound[w] = graph.Infinity
	}
	s.dist[origin].Store(0)
	s.front.Push(frontier.Entry{Node: origin, Dist: 0})
	s.key.Store(0)
	run.sides = append(run.sides, s)

	return s
}

// safeBound is the largest distance that may be finalized right now: no
// in-flight relaxation can produce anything smaller.
func (s *side) safeBound() int64 {
	b := graph.Infinity
	for _, x := range s.bound {
		if x < b {
			b = x
		}
	}

	return b
}

// publishKey recomputes key from the frontier top and the in-flight set.
func (s *side) publishKey() {
	k := graph.Infinity
	if e, ok := s.front.Peek(); ok {
		k = e.Dist
	}
	for _, d := range s.inflight {
		if d < k {
			k = d
		}
	}
	s.key.Store(k)
}

// next blocks until worker w may finalize a node, finalizes it and marks w
// in flight. ok is false when the search stopped or this side is exhausted.
func (s *side) next(w int) (u graph.Node, du int64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.run.stop.Load() {
		// 1) Empty frontier: exhausted when nobody is in flight, else wait
		// for an in-flight relaxation to push more work.
		e, found := s.front.Peek()
		if !found {
			if s.active == 0 {
				s.key.Store(graph.Infinity)
				if s.run.halt.exhausted(s) {
					s.run.requestStop()
				}
				s.cond.Broadcast()

				return graph.NoNode, 0, false
			}
			s.cond.Wait()
			continue
		}

		// 2) Stale pop: finalized already, or improved since it was pushed.
		if s.done.Test(uint(e.Node)) || e.Dist > s.dist[e.Node].Load() {
			s.front.Pop()
			s.stale++
			continue
		}

		// 3) Finalization race: an in-flight worker could still lower e.
		if e.Dist > s.safeBound() {
			s.cond.Wait()
			continue
		}

		// 4) Finalize e and mark w in flight with its relaxation bound.
		s.front.Pop()
		s.done.Set(uint(e.Node))
		s.finalized++
		s.inflight[w] = e.Dist
		s.bound[w] = graph.AddWeight(e.Dist, s.g.MinWeight(e.Node, s.dir))
		s.active++
		s.publishKey()

		// 5) Let the halter decide whether this finalization ends the search.
		if s.run.halt.settled(s, e.Node, e.Dist) {
			s.run.requestStop()
			s.retire(w)

			return graph.NoNode, 0, false
		}

		return e.Node, e.Dist, true
	}

	return graph.NoNode, 0, false
}

// apply relaxes the arcs of u, finalized by worker w at distance du. The
// compare, the table update and the push happen under one lock hold.
// Candidates that overflow are dropped and flagged.
func (s *side) apply(w int, u graph.Node, du int64, arcs []graph.Arc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stop := false
	for _, a := range arcs {
		// 1) Skip finalized heads.
		v := a.To
		if s.done.Test(uint(v)) {
			continue
		}

		// 2) Candidate distance; keep only strict improvements.
		cand, ok := graph.SumWeight(du, a.Weight)
		if !ok {
			s.overflow = true
			continue
		}
		if cand >= s.dist[v].Load() {
			continue
		}

		// 3) Publish the distance before the halter reads it.
		s.dist[v].Store(cand)
		s.prev[v] = u
		s.front.Push(frontier.Entry{Node: v, Dist: cand})
		s.relaxations++
		if s.run.halt.relaxed(s, v, cand) {
			stop = true
		}
	}

	// 4) Leave flight, refresh the key and wake waiters on the new bound.
	s.retire(w)
	s.publishKey()
	if s.run.halt.expanded(s) || stop {
		s.run.requestStop()
	}
	s.cond.Broadcast()
}

// retire clears worker w's in-flight record. Called with mu held.
func (s *side) retire(w int) {
	s.inflight[w] = graph.Infinity
	s.bound[w] = graph.Infinity
	s.active--
}

// distance reads the final distance of v. Call only after the pool joined.
func (s *side) distance(v graph.Node) int64 {
	return s.dist[v].Load()
}

func (s *side) collect(st *Stats) {
	st.Finalized += s.finalized
	st.Relaxations += s.relaxations
	st.StalePops += s.stale
}

// targetHalt stops a single-direction search when the target is finalized
// or the frontier is exhausted. With target NoNode only exhaustion stops it.
type targetHalt struct {
	target graph.Node
	found  bool // written under the side lock, read after join
}

func (h *targetHalt) settled(_ *side, u graph.Node, _ int64) bool {
	if u == h.target {
		h.found = true
		return true
	}

	return false
}

func (h *targetHalt) relaxed(*side, graph.Node, int64) bool { return false }
func (h *targetHalt) expanded(*side) bool                   { return false }
func (h *targetHalt) exhausted(*side) bool                  { return true }

// runParallel runs the Dijkstra loop with a pool of workers sharing one
// frontier and one set of tables. In tree mode it runs to exhaustion.
func (s *Search) runParallel(ctx context.Context, res *Result, workers int) (Status, error) {
	halt := &targetHalt{target: s.target}
	p := newPool(halt, s.opts.expandHook, s.drain)
	fw := newSide(s.g, graph.Forward, s.source, s.opts.Frontier, workers, p)

	err := p.run(ctx, workers)
	fw.collect(&res.Stats)
	if err != nil {
		return StatusFailed, err
	}
	if !halt.found {
		return s.exhausted(fw.overflow, fw.distance, fw.prev)
	}
	res.Path = Path{
		Nodes:       forwardPath(fw.prev, s.target),
		TotalWeight: fw.distance(s.target),
	}

	return StatusFound, nil
}
