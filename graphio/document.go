// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/shortpath/graph"
)

// Document is a decoded graph with its node names.
type Document struct {
	Labels *Labels
	Graph  *graph.Graph
}

// rawEdge and rawDocument are the format-neutral shape every decoder
// produces. Tags serve both JSON and YAML.
type rawEdge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

type rawDocument struct {
	Undirected bool      `json:"undirected" yaml:"undirected"`
	Nodes      []string  `json:"nodes" yaml:"nodes"`
	Edges      []rawEdge `json:"edges" yaml:"edges"`
}

// build interns names and assembles the graph.
func (raw *rawDocument) build() (*Document, error) {
	labels := NewLabels(raw.Nodes...)
	edges := make([]graph.Edge, 0, len(raw.Edges))
	for i, e := range raw.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge #%d has an empty endpoint", ErrSyntax, i)
		}
		edges = append(edges, graph.Edge{
			From:   labels.intern(e.From),
			To:     labels.intern(e.To),
			Weight: e.Weight,
		})
	}

	opts := []graph.Option{graph.WithNodeCount(labels.Len())}
	if raw.Undirected {
		opts = append(opts, graph.WithUndirected())
	}
	g, err := graph.Build(edges, opts...)
	if err != nil {
		return nil, err
	}

	return &Document{Labels: labels, Graph: g}, nil
}

// Decode reads one document in format f from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	return decode(r, f, "<input>")
}

// Load opens path and decodes it in the format given by its extension.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return decode(f, FormatOf(path), path)
}

// decode dispatches on f; name labels diagnostics.
func decode(r io.Reader, f Format, name string) (*Document, error) {
	var (
		raw *rawDocument
		err error
	)
	switch f {
	case Text:
		raw, err = decodeText(r)
	case JSON:
		raw, err = decodeJSON(r)
	case YAML:
		raw, err = decodeYAML(r)
	case HCL:
		raw, err = decodeHCL(r, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err == nil {
		var doc *Document
		if doc, err = raw.build(); err == nil {
			return doc, nil
		}
	}

	return nil, fmt.Errorf("graphio: %s %s: %w", f, name, err)
}
