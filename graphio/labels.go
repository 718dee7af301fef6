// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/shortpath/graph"
)

// Labels is a bijection between node names and dense node ids.
type Labels struct {
	names []string
	index map[string]graph.Node
}

// NewLabels assigns ids 0..len(names)-1 in order. Repeated names keep
// their first id.
func NewLabels(names ...string) *Labels {
	l := &Labels{index: make(map[string]graph.Node, len(names))}
	for _, name := range names {
		l.intern(name)
	}

	return l
}

// IndexLabels names nodes "0".."n-1".
func IndexLabels(n int) *Labels {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}

	return NewLabels(names...)
}

// intern returns the id of name, assigning the next one if it is new.
func (l *Labels) intern(name string) graph.Node {
	if n, ok := l.index[name]; ok {
		return n
	}
	n := graph.Node(len(l.names))
	l.names = append(l.names, name)
	l.index[name] = n

	return n
}

// Len returns the number of named nodes.
func (l *Labels) Len() int { return len(l.names) }

// Node returns the id of name.
func (l *Labels) Node(name string) (graph.Node, error) {
	n, ok := l.index[name]
	if !ok {
		return graph.NoNode, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}

	return n, nil
}

// Name returns the name of n, or its decimal id when n is not labelled.
func (l *Labels) Name(n graph.Node) string {
	if n >= 0 && int(n) < len(l.names) {
		return l.names[n]
	}

	return strconv.Itoa(int(n))
}

// Names maps a node sequence to names.
func (l *Labels) Names(nodes []graph.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = l.Name(n)
	}

	return out
}
