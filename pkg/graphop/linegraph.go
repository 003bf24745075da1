package graphop

import "github.com/graphbatch/graphbatch/pkg/graph"

// LineGraph builds the line graph of g: one vertex per edge of g, with an
// edge (i, j) whenever edge i = (u, v) and edge j is an outgoing edge of
// v, i.e. whenever i and j form a directed length-2 path.
//
// With backtracking false, the immediate reverse is skipped: an outgoing
// edge of v that leads straight back to u (a 2-cycle with i) produces no
// line-graph edge. Parallel edges and self-loops contribute
// combinatorially many line-graph edges, exactly as they pair up.
//
// Cost is proportional to the number of directed length-2 paths in g.
// The input is not modified.
func LineGraph(g *graph.Graph, backtracking bool) *graph.Graph {
	lg := graph.New()
	lg.AddVertices(g.NumEdges())
	for i := int64(0); i < g.NumEdges(); i++ {
		u, v, _ := g.Edge(i)
		for _, he := range g.OutEdges(v) {
			if backtracking || he.Other != u {
				lg.AddEdge(i, he.EdgeID)
			}
		}
	}
	return lg
}
