// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

func decodeJSON(r io.Reader) (*rawDocument, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return &raw, nil
}

func decodeYAML(r io.Reader) (*rawDocument, error) {
	var raw rawDocument
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&raw); err != nil {
		if err == io.EOF {
			return &raw, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return &raw, nil
}

// hclDocument is the HCL shape: top-level attributes plus edge blocks.
type hclDocument struct {
	Undirected bool      `hcl:"undirected,optional"`
	Nodes      []string  `hcl:"nodes,optional"`
	Edges      []hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From   string `hcl:"from"`
	To     string `hcl:"to"`
	Weight int64  `hcl:"weight"`
}

func decodeHCL(r io.Reader, filename string) (*rawDocument, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}
	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, diags)
	}

	raw := &rawDocument{Undirected: doc.Undirected, Nodes: doc.Nodes}
	for _, e := range doc.Edges {
		raw.Edges = append(raw.Edges, rawEdge(e))
	}

	return raw, nil
}
