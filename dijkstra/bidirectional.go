// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// meeting is the best (total, node) pair found so far by a bidirectional
// search. best only decreases; on equal totals the lower node id wins so
// repeated runs pick the same meeting point.
type meeting struct {
	best int64
	node graph.Node
}

func newMeeting() meeting {
	return meeting{best: graph.Infinity, node: graph.NoNode}
}

// offer records node v reached at distance df forward and db backward.
func (m *meeting) offer(v graph.Node, df, db int64) {
	total, ok := graph.SumWeight(df, db)
	if !ok {
		// unreached on one side, or past the int64 range
		return
	}
	if total < m.best || (total == m.best && v < m.node) {
		m.best = total
		m.node = v
	}
}

// runBidirectional alternates one finalization forward from the source and
// one backward from the target. Every finalized node and every improved
// distance is offered to the meeting record. The search stops once
// minF + minB >= best: no unfinalized node on either side can lead to a
// shorter path.
func (s *Search) runBidirectional(ctx context.Context, res *Result) (Status, error) {
	fw := newSearcher(s.g, graph.Forward, s.source, s.opts.Frontier, &res.Stats)
	bw := newSearcher(s.g, graph.Backward, s.target, s.opts.Frontier, &res.Stats)
	m := newMeeting()
	improved := [2]func(graph.Node, int64){
		func(v graph.Node, d int64) { m.offer(v, d, bw.dist[v]) },
		func(v graph.Node, d int64) { m.offer(v, fw.dist[v], d) },
	}
	sides := [2]*searcher{fw, bw}
	var drained *searcher

	for turn := 0; ; turn++ {
		// 1) Poll cancellation every 256 turns.
		if turn&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return StatusFailed, err
			}
		}

		// 2) Stop on an empty side, or once no unfinalized node on either
		// side can beat the best meeting.
		minF, minB := fw.min(), bw.min()
		if minF == graph.Infinity {
			drained = fw
			break
		}
		if minB == graph.Infinity {
			drained = bw
			break
		}
		if graph.AddWeight(minF, minB) >= m.best {
			break
		}

		// 3) One finalization on the side whose turn it is.
		side := sides[turn&1]
		u, ok := side.settle()
		if !ok {
			drained = side
			break
		}

		// 4) Offer the finalized node, then relax; improvements offer themselves.
		m.offer(u, fw.dist[u], bw.dist[u])
		side.relax(u, improved[turn&1])
	}

	res.Stats.Meeting = m.node
	if m.node == graph.NoNode {
		// An empty side proves the target unreachable unless it dropped a
		// candidate. Without one, minF + minB ran past the int64 range.
		if drained != nil && !drained.overflow {
			return StatusNotReachable, nil
		}

		return StatusFailed, fmt.Errorf("%w: between %d and %d", ErrDistanceOverflow, s.source, s.target)
	}
	res.Path = Path{
		Nodes:       joinPath(fw.prev, bw.prev, m.node),
		TotalWeight: m.best,
	}

	return StatusFound, nil
}
