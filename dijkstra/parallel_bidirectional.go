// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/shortpath/graph"
)

// coordinator is the meeting record shared by both worker pools. Lock order
// is side.mu then coordinator.mu; the coordinator never takes a side lock.
type coordinator struct {
	fw, bw *side

	mu      sync.Mutex
	m       meeting
	drained *side // first side found empty
}

func newCoordinator() *coordinator {
	return &coordinator{m: newMeeting()}
}

// opposite returns the other side of s.
func (c *coordinator) opposite(s *side) *side {
	if s == c.fw {
		return c.bw
	}

	return c.fw
}

// offer records v at distance d on side s. The opposite distance is
// read lock-free: s stored its own distance before this load, and the
// opposite side does the same, so at least one of the two offers for a
// meeting node sees both values.
func (c *coordinator) offer(s *side, v graph.Node, d int64) bool {
	od := c.opposite(s).dist[v].Load()

	c.mu.Lock()
	defer c.mu.Unlock()
	if s == c.fw {
		c.m.offer(v, d, od)
	} else {
		c.m.offer(v, od, d)
	}

	return c.doneLocked()
}

// check reports whether the search can stop.
func (c *coordinator) check() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.doneLocked()
}

// doneLocked applies keyF + keyB >= best. Keys only grow, so a stale read
// of the opposite key delays the stop but never makes it premature.
func (c *coordinator) doneLocked() bool {
	if c.m.node == graph.NoNode {
		return false
	}

	return graph.AddWeight(c.fw.key.Load(), c.bw.key.Load()) >= c.m.best
}

func (c *coordinator) result() meeting {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.m
}

// The coordinator is the halter of a parallel bidirectional search.

func (c *coordinator) settled(s *side, u graph.Node, du int64) bool {
	return c.offer(s, u, du)
}

func (c *coordinator) relaxed(s *side, v graph.Node, dv int64) bool {
	return c.offer(s, v, dv)
}

func (c *coordinator) expanded(*side) bool { return c.check() }

// exhausted stops the search: every node reachable from this side's origin
// is finalized and was offered, the opposite origin included.
func (c *coordinator) exhausted(s *side) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drained == nil {
		c.drained = s
	}

	return true
}

// runParallelBidirectional runs a forward pool from the source and a
// backward pool from the target, workers goroutines each, coordinated
// through the shared meeting record.
func (s *Search) runParallelBidirectional(ctx context.Context, res *Result, workers int) (Status, error) {
	c := newCoordinator()
	p := newPool(c, s.opts.expandHook, s.drain)
	c.fw = newSide(s.g, graph.Forward, s.source, s.opts.Frontier, workers, p)
	c.bw = newSide(s.g, graph.Backward, s.target, s.opts.Frontier, workers, p)

	err := p.run(ctx, workers)
	c.fw.collect(&res.Stats)
	c.bw.collect(&res.Stats)
	if err != nil {
		return StatusFailed, err
	}

	m := c.result()
	res.Stats.Meeting = m.node
	if m.node == graph.NoNode {
		// Only an empty side stops a search without a meeting. Its
		// distances are exact unless it dropped a candidate.
		if c.drained != nil && !c.drained.overflow {
			return StatusNotReachable, nil
		}

		return StatusFailed, fmt.Errorf("%w: between %d and %d", ErrDistanceOverflow, s.source, s.target)
	}
	res.Path = Path{
		Nodes:       joinPath(c.fw.prev, c.bw.prev, m.node),
		TotalWeight: graph.AddWeight(c.fw.distance(m.node), c.bw.distance(m.node)),
	}

	return StatusFound, nil
}
