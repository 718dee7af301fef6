// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// decodeText reads the line format: "from to weight" edges, "node NAME"
// and "undirected" directives, '#' comments and blank lines.
func decodeText(r io.Reader) (*rawDocument, error) {
	raw := &rawDocument{}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)

		switch {
		case len(fields) == 0:
		case fields[0] == "undirected" && len(fields) == 1:
			raw.Undirected = true
		case fields[0] == "node" && len(fields) == 2:
			raw.Nodes = append(raw.Nodes, fields[1])
		case len(fields) == 3:
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q", ErrSyntax, line, fields[2])
			}
			raw.Edges = append(raw.Edges, rawEdge{From: fields[0], To: fields[1], Weight: w})
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, line, strings.TrimSpace(text))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return raw, nil
}
