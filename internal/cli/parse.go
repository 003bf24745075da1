package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/graphbatch/graphbatch/pkg/graph"
)

// readAdjacencyList decodes a plain-text adjacency list from r.
//
// Each non-empty line names a source vertex followed by its successors:
//
//	0 1 2
//	1 2
//	3
//
// A line with only a source declares an isolated vertex. Vertex count is
// one past the highest id mentioned. Edges are inserted line by line,
// left to right, so edge ids follow the file order. Lines starting with
// '#' are comments.
func readAdjacencyList(r io.Reader) (*graph.Graph, error) {
	type rawEdge struct{ src, dst int64 }
	var (
		edges []rawEdge
		maxID int64 = -1
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		tok := strings.Fields(sc.Text())
		if len(tok) == 0 || strings.HasPrefix(tok[0], "#") {
			continue
		}
		src, err := strconv.ParseInt(tok[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: source %q: %w", line, tok[0], err)
		}
		if src < 0 {
			return nil, fmt.Errorf("line %d: source %d must be non-negative", line, src)
		}
		maxID = max(maxID, src)
		for _, s := range tok[1:] {
			dst, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: successor %q: %w", line, s, err)
			}
			if dst < 0 {
				return nil, fmt.Errorf("line %d: successor %d must be non-negative", line, dst)
			}
			maxID = max(maxID, dst)
			edges = append(edges, rawEdge{src: src, dst: dst})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	g := graph.NewWithCapacity(maxID+1, int64(len(edges)))
	g.AddVertices(maxID + 1)
	for _, e := range edges {
		if _, err := g.AddEdge(e.src, e.dst); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// writeAdjacencyList encodes g to w in the format readAdjacencyList
// accepts: one line per vertex with its successors in insertion order.
// Vertices without edges still get a line so the vertex count survives a
// round trip. Edge ids are renumbered in source-vertex order on re-read.
func writeAdjacencyList(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for v := int64(0); v < g.NumVertices(); v++ {
		if _, err := fmt.Fprint(bw, v); err != nil {
			return err
		}
		for _, he := range g.OutEdges(v) {
			if _, err := fmt.Fprintf(bw, " %d", he.Other); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// readGraphFile loads an adjacency-list graph from path.
func readGraphFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := readAdjacencyList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// writeGraphFile writes g to path as an adjacency list.
func writeGraphFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeAdjacencyList(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// parseSizes parses a comma-separated list of partition sizes.
func parseSizes(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", p, err)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}
