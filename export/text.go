// SPDX-License-Identifier: MIT
// Package: cimnet/export
//
// text.go - edge list, adjacency list and adjacency matrix writers.

package export

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/katalvlaran/cimnet/core"
)

// Source is the read capability the exporters need.
type Source[K cmp.Ordered] interface {
	core.Graph[K]
	Edges() []core.Pair[K]
}

// successorSource is implemented by directed engines.
type successorSource[K cmp.Ordered] interface {
	Successors(id K) []K
	HasSuccessor(from, to K) bool
}

// WriteEdgeList writes one "src<delim>dst" line per edge.
// Complexity: O(V + E), plus O(E log E) when sorted.
func WriteEdgeList[K cmp.Ordered](w io.Writer, g Source[K], opts ...Option) error {
	cfg := newConfig(opts...)
	edges := g.Edges()
	if cfg.sorted {
		slices.SortFunc(edges, comparePairs[K])
	}

	bw := bufio.NewWriter(w)
	for _, e := range edges {
		fmt.Fprintf(bw, "%v%s%v\n", e.First, cfg.delimiter, e.Second)
	}

	return flush("WriteEdgeList", bw)
}

// WriteAdjacencyList writes one "node<delim>n1<delim>n2..." line per node.
// Directed networks list successors. A node whose Degree is 0 is followed by
// a lone delimiter; a directed node with only predecessors prints its key alone.
func WriteAdjacencyList[K cmp.Ordered](w io.Writer, g Source[K], opts ...Option) error {
	cfg := newConfig(opts...)
	adjacent := g.Neighbors
	if s, ok := g.(successorSource[K]); ok && g.IsDirected() {
		adjacent = s.Successors
	}

	bw := bufio.NewWriter(w)
	for _, id := range nodeOrder[K](g, cfg) {
		fmt.Fprint(bw, id)
		if g.Degree(id) == 0 {
			bw.WriteString(cfg.delimiter)
		}
		nbrs := adjacent(id)
		if cfg.sorted {
			slices.Sort(nbrs)
		}
		for _, nb := range nbrs {
			fmt.Fprint(bw, cfg.delimiter, nb)
		}
		bw.WriteString("\n")
	}

	return flush("WriteAdjacencyList", bw)
}

// WriteAdjacencyMatrix writes the 0/1 adjacency matrix over order. A nil
// order means every node in default enumeration order (ascending with
// WithSortedNodes). Keys in order that are absent from g yield all-zero rows.
// Complexity: O(|order|²).
func WriteAdjacencyMatrix[K cmp.Ordered](w io.Writer, g Source[K], order []K, opts ...Option) error {
	cfg := newConfig(opts...)
	if order == nil {
		order = nodeOrder[K](g, cfg)
	}
	linked := g.IsNeighbor
	if s, ok := g.(successorSource[K]); ok && g.IsDirected() {
		linked = s.HasSuccessor
	}

	bw := bufio.NewWriter(w)
	if cfg.headers {
		for _, id := range order {
			fmt.Fprint(bw, cfg.delimiter, id)
		}
		bw.WriteString("\n")
	}
	for _, row := range order {
		if cfg.headers {
			fmt.Fprint(bw, row, cfg.delimiter)
		}
		for j, col := range order {
			if linked(row, col) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
			if j == len(order)-1 {
				bw.WriteString("\n")
			} else {
				bw.WriteString(cfg.delimiter)
			}
		}
	}

	return flush("WriteAdjacencyMatrix", bw)
}

// SaveEdgeList writes the edge list of g to a newly created file at path.
func SaveEdgeList[K cmp.Ordered](path string, g Source[K], opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: SaveEdgeList: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: SaveEdgeList: %w", cerr)
		}
	}()

	return WriteEdgeList[K](f, g, opts...)
}

func nodeOrder[K cmp.Ordered](g core.Graph[K], cfg config) []K {
	ids := g.Nodes()
	if cfg.sorted {
		slices.Sort(ids)
	}

	return ids
}

func comparePairs[K cmp.Ordered](a, b core.Pair[K]) int {
	if c := cmp.Compare(a.First, b.First); c != 0 {
		return c
	}

	return cmp.Compare(a.Second, b.Second)
}

func flush(method string, bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: %s: %w", method, err)
	}

	return nil
}
