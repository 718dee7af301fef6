// SPDX-License-Identifier: MIT

package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/frontier"
	"github.com/katalvlaran/shortpath/graph"
)

var kinds = []frontier.Kind{frontier.Heap, frontier.Tree}

func TestFrontier_Empty(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			f := frontier.New(k, 0)
			require.Equal(t, 0, f.Len())
			_, ok := f.Pop()
			require.False(t, ok)
			_, ok = f.Peek()
			require.False(t, ok)
		})
	}
}

func TestFrontier_OrderAndTieBreak(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			f := frontier.New(k, 8)
			f.Push(frontier.Entry{Node: 4, Dist: 3})
			f.Push(frontier.Entry{Node: 2, Dist: 3})
			f.Push(frontier.Entry{Node: 9, Dist: 1})
			f.Push(frontier.Entry{Node: 1, Dist: 7})
			f.Push(frontier.Entry{Node: 0, Dist: 3})

			top, ok := f.Peek()
			require.True(t, ok)
			require.Equal(t, frontier.Entry{Node: 9, Dist: 1}, top)
			require.Equal(t, 5, f.Len())

			var got []frontier.Entry
			for f.Len() > 0 {
				e, ok := f.Pop()
				require.True(t, ok)
				got = append(got, e)
			}
			require.Equal(t, []frontier.Entry{
				{Node: 9, Dist: 1},
				{Node: 0, Dist: 3},
				{Node: 2, Dist: 3},
				{Node: 4, Dist: 3},
				{Node: 1, Dist: 7},
			}, got)
		})
	}
}

func TestFrontier_DuplicatesKept(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			f := frontier.New(k, 0)
			f.Push(frontier.Entry{Node: 1, Dist: 5})
			f.Push(frontier.Entry{Node: 1, Dist: 5})
			f.Push(frontier.Entry{Node: 1, Dist: 2})
			require.Equal(t, 3, f.Len())

			e, _ := f.Pop()
			require.Equal(t, int64(2), e.Dist)
			e, _ = f.Pop()
			require.Equal(t, int64(5), e.Dist)
			e, _ = f.Pop()
			require.Equal(t, int64(5), e.Dist)
		})
	}
}

// TestFrontier_MatchesSortedOrder pushes random entries into both kinds and
// checks that they drain in the same, fully sorted order.
func TestFrontier_MatchesSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := make([]frontier.Entry, 500)
	for i := range entries {
		entries[i] = frontier.Entry{Node: graph.Node(rng.Intn(50)), Dist: int64(rng.Intn(100))}
	}

	want := append([]frontier.Entry(nil), entries...)
	sort.Slice(want, func(i, j int) bool {
		if want[i].Dist != want[j].Dist {
			return want[i].Dist < want[j].Dist
		}
		return want[i].Node < want[j].Node
	})

	for _, k := range kinds {
		f := frontier.New(k, len(entries))
		for _, e := range entries {
			f.Push(e)
		}
		got := make([]frontier.Entry, 0, len(entries))
		for {
			e, ok := f.Pop()
			if !ok {
				break
			}
			got = append(got, e)
		}
		require.Equal(t, want, got, "kind %s", k)
	}
}

func TestParseKind(t *testing.T) {
	k, err := frontier.ParseKind("Tree")
	require.NoError(t, err)
	require.Equal(t, frontier.Tree, k)

	k, err = frontier.ParseKind("heap")
	require.NoError(t, err)
	require.Equal(t, frontier.Heap, k)

	_, err = frontier.ParseKind("fibonacci")
	require.ErrorIs(t, err, frontier.ErrUnknownKind)

	require.Equal(t, "kind(7)", frontier.Kind(7).String())
}

func BenchmarkFrontier(b *testing.B) {
	for _, k := range kinds {
		b.Run(k.String(), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			f := frontier.New(k, 1024)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.Push(frontier.Entry{Node: graph.Node(i & 1023), Dist: int64(rng.Intn(1 << 20))})
				if f.Len() > 512 {
					f.Pop()
				}
			}
		})
	}
}
