package graphop

import "github.com/graphbatch/graphbatch/pkg/graph"

// DisjointUnion combines graphs into one batched mutable graph.
//
// Vertices are concatenated in input order: the ids of graph k are the
// original ids shifted by the cumulative vertex count of graphs 0..k-1.
// Edges are re-inserted in each graph's original edge-id order, so edge
// ids are likewise assigned sequentially across graphs. Parallel edges
// and self-loops are preserved verbatim; nothing is deduplicated.
//
// The inputs are not modified and the result shares no storage with them.
func DisjointUnion(graphs []*graph.Graph) *graph.Graph {
	var numVertices, numEdges int64
	for _, g := range graphs {
		numVertices += g.NumVertices()
		numEdges += g.NumEdges()
	}

	rst := graph.NewWithCapacity(numVertices, numEdges)
	var cum int64
	for _, g := range graphs {
		rst.AddVertices(g.NumVertices())
		for i := int64(0); i < g.NumEdges(); i++ {
			src, dst, _ := g.Edge(i)
			// Shifted endpoints are always in range, so the insert cannot fail.
			rst.AddEdge(src+cum, dst+cum)
		}
		cum += g.NumVertices()
	}
	return rst
}

// DisjointUnionCSR combines immutable graphs into one batched immutable
// graph, operating on each input's incoming-edge CSR view.
//
// The output indptr concatenates each graph's indptr[1:] shifted by the
// cumulative edge count, preserving the single leading zero. Indices are
// shifted by the cumulative vertex count and edge ids by the cumulative
// edge count. The result holds only the combined incoming CSR; no
// outgoing view exists until a collaborator builds one.
//
// The inputs' buffers are not touched and the result owns fresh buffers.
func DisjointUnionCSR(graphs []*graph.Immutable) *graph.Immutable {
	var numVertices, numEdges int64
	for _, g := range graphs {
		numVertices += g.NumVertices()
		numEdges += g.NumEdges()
	}

	out := graph.NewCSR(numVertices, numEdges)
	var cumVertices, cumEdges int64
	row, pos := int64(1), int64(0)
	for _, g := range graphs {
		in := g.InCSR()
		for i := 1; i < len(in.Indptr); i++ {
			out.Indptr[row] = in.Indptr[i] + cumEdges
			row++
		}
		for i := range in.Indices {
			out.Indices[pos] = in.Indices[i] + cumVertices
			out.EdgeIDs[pos] = in.EdgeIDs[i] + cumEdges
			pos++
		}
		cumVertices += g.NumVertices()
		cumEdges += g.NumEdges()
	}
	return graph.NewImmutable(out)
}
