// SPDX-License-Identifier: MIT

package graphio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphio"
)

// requireTriangle checks the shared fixture: D declared first, then A, B, C
// in order of appearance.
func requireTriangle(t *testing.T, doc *graphio.Document) {
	t.Helper()
	require.Equal(t, 4, doc.Graph.Order())
	require.Equal(t, 3, doc.Graph.Size())
	require.Equal(t, 4, doc.Labels.Len())

	d, err := doc.Labels.Node("D")
	require.NoError(t, err)
	require.Equal(t, graph.Node(0), d)
	require.Empty(t, doc.Graph.Neighbors(d, graph.Forward))

	a, _ := doc.Labels.Node("A")
	c, _ := doc.Labels.Node("C")
	w, ok := doc.Graph.Weight(a, c)
	require.True(t, ok)
	require.Equal(t, int64(4), w)
	require.Equal(t, []string{"A", "B", "C"}, doc.Labels.Names([]graph.Node{1, 2, 3}))
}

func TestLoad_AllFormats(t *testing.T) {
	for _, name := range []string{"triangle.txt", "triangle.json", "triangle.yaml", "triangle.hcl"} {
		t.Run(name, func(t *testing.T) {
			doc, err := graphio.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			requireTriangle(t, doc)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := graphio.Load(filepath.Join("testdata", "absent.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	require.Equal(t, graphio.JSON, graphio.FormatOf("g.JSON"))
	require.Equal(t, graphio.YAML, graphio.FormatOf("dir/g.yml"))
	require.Equal(t, graphio.YAML, graphio.FormatOf("g.yaml"))
	require.Equal(t, graphio.HCL, graphio.FormatOf("g.hcl"))
	require.Equal(t, graphio.Text, graphio.FormatOf("g.edges"))
	require.Equal(t, "hcl", graphio.HCL.String())
}

func TestDecode_TextUndirected(t *testing.T) {
	doc, err := graphio.Decode(strings.NewReader("undirected\nx y 3 # trailing comment\n\n"), graphio.Text)
	require.NoError(t, err)
	y, _ := doc.Labels.Node("y")
	x, _ := doc.Labels.Node("x")
	w, ok := doc.Graph.Weight(y, x)
	require.True(t, ok)
	require.Equal(t, int64(3), w)
}

func TestDecode_HCLUndirected(t *testing.T) {
	src := `
undirected = true
edge {
  from   = "p"
  to     = "q"
  weight = 2
}
`
	doc, err := graphio.Decode(strings.NewReader(src), graphio.HCL)
	require.NoError(t, err)
	require.Equal(t, 2, doc.Graph.Size())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format graphio.Format
		src    string
		want   error
	}{
		{"text bad weight", graphio.Text, "a b x\n", graphio.ErrSyntax},
		{"text bad arity", graphio.Text, "a b\n", graphio.ErrSyntax},
		{"text negative weight", graphio.Text, "a b -1\n", graph.ErrInvalidEdgeWeight},
		{"json malformed", graphio.JSON, `{"edges": [`, graphio.ErrSyntax},
		{"json unknown field", graphio.JSON, `{"vertices": []}`, graphio.ErrSyntax},
		{"json empty endpoint", graphio.JSON, `{"edges": [{"from": "a", "weight": 1}]}`, graphio.ErrSyntax},
		{"yaml unknown field", graphio.YAML, "arcs: []\n", graphio.ErrSyntax},
		{"hcl missing weight", graphio.HCL, "edge {\n  from = \"a\"\n  to = \"b\"\n}\n", graphio.ErrSyntax},
		{"hcl malformed", graphio.HCL, "edge {", graphio.ErrSyntax},
		{"unknown format", graphio.Format(9), "", graphio.ErrUnknownFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := graphio.Decode(strings.NewReader(tc.src), tc.format)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, doc)
		})
	}
}

func TestLabels(t *testing.T) {
	l := graphio.NewLabels("a", "b", "a")
	require.Equal(t, 2, l.Len())
	_, err := l.Node("zz")
	require.ErrorIs(t, err, graphio.ErrUnknownLabel)
	require.Equal(t, "7", l.Name(7))

	idx := graphio.IndexLabels(3)
	n, err := idx.Node("2")
	require.NoError(t, err)
	require.Equal(t, graph.Node(2), n)
}
