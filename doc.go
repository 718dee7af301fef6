// SPDX-License-Identifier: MIT

// Package shortpath answers single-source, single-target shortest-path
// queries on static graphs with non-negative integer weights, with four
// interchangeable search variants that must agree on every answer.
//
// Under the hood, everything is organized under these subpackages:
//
//	graph/       immutable CSR Graph Store with forward and reversed arcs
//	frontier/    priority structures: binary heap and B-tree
//	dijkstra/    Sequential, Bidirectional, Parallel(n), ParallelBidirectional(n)
//	generate/    deterministic fixtures: path, cycle, star, grid, complete, random
//	graphio/     graphs with named nodes from text, JSON, YAML and HCL files
//	cmd/spbench  command line runner comparing the variants on one query
//
// Quick example:
//
//	g, _ := graph.Build([]graph.Edge{
//	    {From: 0, To: 1, Weight: 1},
//	    {From: 1, To: 2, Weight: 2},
//	    {From: 0, To: 2, Weight: 4},
//	})
//	res, _ := dijkstra.ShortestPath(g, 0, 2, dijkstra.ParallelBidirectional(4))
//	fmt.Println(res.Nodes, res.TotalWeight) // [0 1 2] 3
//
//	go install github.com/katalvlaran/shortpath/cmd/spbench@latest
package shortpath
