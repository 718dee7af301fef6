// SPDX-License-Identifier: MIT

// Package graphio reads graphs with named nodes from files.
//
// Four formats describe the same document: a list of weighted edges between
// named nodes, an optional list of node names (to fix their order or to add
// isolated nodes) and an undirected flag.
//
// Text (any extension not listed below):
//
//	# comment
//	undirected
//	node D
//	A B 1
//	B C 2
//	A C 4
//
// JSON (.json):
//
//	{"undirected": false, "nodes": ["A"], "edges": [{"from": "A", "to": "B", "weight": 1}]}
//
// YAML (.yaml, .yml):
//
//	nodes: [A]
//	edges:
//	  - {from: A, to: B, weight: 1}
//
// HCL (.hcl):
//
//	undirected = false
//	nodes      = ["A"]
//	edge {
//	  from   = "A"
//	  to     = "B"
//	  weight = 1
//	}
//
// Node ids follow first appearance: declared nodes first, then edge
// endpoints in order. Labels maps between names and ids.
package graphio
