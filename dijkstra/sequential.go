// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/graph"
)

// ctxCheckMask makes the single-threaded loops poll the context once every
// 256 pops.
const ctxCheckMask = 0xff

// searcher holds the mutable state of one single-threaded search direction.
// Sequential uses one searcher, Bidirectional uses two.
type searcher struct {
	g     *graph.Graph
	dir   graph.Direction
	dist  []int64          // tentative distance, Infinity when unreached
	prev  []graph.Node     // predecessor in dir, NoNode for the origin
	done  *bitset.BitSet   // finalized nodes
	front frontier.Frontier
	stats *Stats

	// overflow is set when a candidate distance did not fit below Infinity.
	overflow bool
}

// newSearcher prepares a search in direction dir rooted at origin.
func newSearcher(g *graph.Graph, dir graph.Direction, origin graph.Node, kind frontier.Kind, stats *Stats) *searcher {
	n := g.Order()
	s := &searcher{
		g:     g,
		dir:   dir,
		dist:  make([]int64, n),
		prev:  make([]graph.Node, n),
		done:  bitset.New(uint(n)),
		front: frontier.New(kind, n),
		stats: stats,
	}
	for v := range s.dist {
		s.dist[v] = graph.Infinity
		s.prev[v] = graph.NoNode
	}
	s.dist[origin] = 0
	s.front.Push(frontier.Entry{Node: origin, Dist: 0})

	return s
}

// stale reports whether e no longer describes an unfinalized node's
// current distance.
func (s *searcher) stale(e frontier.Entry) bool {
	return s.done.Test(uint(e.Node)) || e.Dist > s.dist[e.Node]
}

// min discards stale entries at the top of the frontier and returns the
// smallest live tentative distance, or Infinity when the frontier is empty.
func (s *searcher) min() int64 {
	for {
		e, ok := s.front.Peek()
		if !ok {
			return graph.Infinity
		}
		if !s.stale(e) {
			return e.Dist
		}
		s.front.Pop()
		s.stats.StalePops++
	}
}

// settle pops the closest live entry and finalizes its node.
// ok is false when the frontier is exhausted.
func (s *searcher) settle() (graph.Node, bool) {
	for {
		e, ok := s.front.Pop()
		if !ok {
			return graph.NoNode, false
		}
		if s.stale(e) {
			s.stats.StalePops++
			continue
		}
		s.done.Set(uint(e.Node))
		s.stats.Finalized++

		return e.Node, true
	}
}

// relax improves the neighbours of the finalized node u. improved, when
// non-nil, is called for every strictly better distance after it has been
// recorded. Candidates that overflow are dropped and flagged.
func (s *searcher) relax(u graph.Node, improved func(v graph.Node, d int64)) {
	du := s.dist[u]
	for _, a := range s.g.Neighbors(u, s.dir) {
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
		if cand >= s.dist[v] {
			continue
		}

		// 3) Record and push a fresh entry; the old one goes stale.
		s.dist[v] = cand
		s.prev[v] = u
		s.front.Push(frontier.Entry{Node: v, Dist: cand})
		s.stats.Relaxations++
		if improved != nil {
			improved(v, cand)
		}
	}
}

// exhausted maps an empty frontier to its outcome: a complete tree in
// tree mode, an overflow failure when distances were dropped, otherwise
// NotReachable.
func (s *Search) exhausted(overflow bool, dist func(graph.Node) int64, prev []graph.Node) (Status, error) {
	if overflow {
		return StatusFailed, fmt.Errorf("%w: from source %d", ErrDistanceOverflow, s.source)
	}
	if s.tree != nil {
		s.tree.fill(dist, prev)
		return StatusFound, nil
	}

	return StatusNotReachable, nil
}

// runSequential is classic Dijkstra with lazy decrease-key. It stops as soon
// as the target is finalized; in tree mode it runs until the frontier is
// exhausted.
func (s *Search) runSequential(ctx context.Context, res *Result) (Status, error) {
	fw := newSearcher(s.g, graph.Forward, s.source, s.opts.Frontier, &res.Stats)

	for pops := 0; ; pops++ {
		// 1) Poll cancellation every 256 pops.
		if pops&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return StatusFailed, err
			}
		}

		// 2) Finalize the closest live node.
		u, ok := fw.settle()
		if !ok {
			return s.exhausted(fw.overflow, func(v graph.Node) int64 { return fw.dist[v] }, fw.prev)
		}

		// 3) Stop at the target, otherwise relax its arcs.
		if u == s.target {
			res.Path = Path{Nodes: forwardPath(fw.prev, u), TotalWeight: fw.dist[u]}

			return StatusFound, nil
		}
		fw.relax(u, nil)
	}
}
