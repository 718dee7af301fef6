// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/shortpath/graph"

// WithExpandHook installs fn in every parallel worker, called before the
// worker relaxes u.
func WithExpandHook(fn func(dir graph.Direction, worker int, u graph.Node) error) Option {
	return func(o *Options) {
		o.expandHook = fn
	}
}
