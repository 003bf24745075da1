package graph

import "github.com/graphbatch/graphbatch/pkg/errors"

// HalfEdge is one adjacency entry: the vertex on the other end of an edge
// together with the edge's id. In an outgoing list Other is the successor;
// in an incoming list Other is the predecessor.
type HalfEdge struct {
	Other  int64 // the opposite endpoint
	EdgeID int64 // id assigned at insertion
}

// Edge is a directed edge given by its two endpoints. The slice position
// in [Graph.Edges] is the edge id.
type Edge struct {
	Src int64
	Dst int64
}

// Graph is a mutable adjacency-list graph.
//
// It keeps three mutually consistent views of the edge set: a forward
// adjacency list per vertex, a reverse adjacency list per vertex, and a
// pair of edge-id-indexed endpoint arrays. Edge id i always maps to
// (srcs[i], dsts[i]), and that pair appears in the outgoing list of
// srcs[i] and the incoming list of dsts[i].
//
// Growth is append-only: vertices are added in blocks and never removed,
// and each inserted edge receives the next sequential edge id. The zero
// value is an empty graph ready for use; [New] exists for symmetry with
// the rest of the package.
type Graph struct {
	adj  [][]HalfEdge // adj[v] = outgoing edges of v, in insertion order
	radj [][]HalfEdge // radj[v] = incoming edges of v, in insertion order
	srcs []int64      // srcs[i] = source of edge i
	dsts []int64      // dsts[i] = destination of edge i
}

// New creates an empty mutable graph.
func New() *Graph {
	return &Graph{}
}

// NewWithCapacity creates an empty graph with storage preallocated for
// numVertices vertices and numEdges edges.
func NewWithCapacity(numVertices, numEdges int64) *Graph {
	return &Graph{
		adj:  make([][]HalfEdge, 0, numVertices),
		radj: make([][]HalfEdge, 0, numVertices),
		srcs: make([]int64, 0, numEdges),
		dsts: make([]int64, 0, numEdges),
	}
}

// AddVertices appends n isolated vertices. Their ids are the n integers
// starting at the previous NumVertices. Negative n is ignored.
func (g *Graph) AddVertices(n int64) {
	for i := int64(0); i < n; i++ {
		g.adj = append(g.adj, nil)
		g.radj = append(g.radj, nil)
	}
}

// AddEdge inserts a directed edge from u to v and returns its id.
// Edge ids are assigned sequentially in insertion order. Self-loops and
// parallel edges are allowed; nothing is deduplicated.
// Returns an ErrCodeInvalidVertex error if either endpoint is out of range.
func (g *Graph) AddEdge(u, v int64) (int64, error) {
	if !g.HasVertex(u) {
		return 0, errors.New(errors.ErrCodeInvalidVertex, "source vertex %d out of range [0, %d)", u, g.NumVertices())
	}
	if !g.HasVertex(v) {
		return 0, errors.New(errors.ErrCodeInvalidVertex, "destination vertex %d out of range [0, %d)", v, g.NumVertices())
	}
	id := int64(len(g.srcs))
	g.adj[u] = append(g.adj[u], HalfEdge{Other: v, EdgeID: id})
	g.radj[v] = append(g.radj[v], HalfEdge{Other: u, EdgeID: id})
	g.srcs = append(g.srcs, u)
	g.dsts = append(g.dsts, v)
	return id, nil
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int64 { return int64(len(g.adj)) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int64 { return int64(len(g.srcs)) }

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int64) bool {
	return v >= 0 && v < int64(len(g.adj))
}

// Edge returns the endpoints of edge i and true, or zeros and false if i
// is not a valid edge id.
func (g *Graph) Edge(i int64) (src, dst int64, ok bool) {
	if i < 0 || i >= int64(len(g.srcs)) {
		return 0, 0, false
	}
	return g.srcs[i], g.dsts[i], true
}

// Edges returns a copy of all edges in insertion (edge id) order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.srcs))
	for i := range g.srcs {
		edges[i] = Edge{Src: g.srcs[i], Dst: g.dsts[i]}
	}
	return edges
}

// OutEdges returns the outgoing adjacency list of v in insertion order.
// The returned slice is a view into the graph; callers must not modify it.
// Returns nil if v is out of range.
func (g *Graph) OutEdges(v int64) []HalfEdge {
	if !g.HasVertex(v) {
		return nil
	}
	return g.adj[v]
}

// InEdges returns the incoming adjacency list of v in insertion order.
// The returned slice is a view into the graph; callers must not modify it.
// Returns nil if v is out of range.
func (g *Graph) InEdges(v int64) []HalfEdge {
	if !g.HasVertex(v) {
		return nil
	}
	return g.radj[v]
}

// OutDegree returns the number of outgoing edges of v, or 0 if v is out
// of range.
func (g *Graph) OutDegree(v int64) int64 { return int64(len(g.OutEdges(v))) }

// InDegree returns the number of incoming edges of v, or 0 if v is out
// of range.
func (g *Graph) InDegree(v int64) int64 { return int64(len(g.InEdges(v))) }

// Validate checks that the three edge views agree: every edge id maps to
// in-range endpoints, appears in the outgoing list of its source, and
// appears in the incoming list of its destination.
// Returns an ErrCodeInvalidVertex or ErrCodeInvalidEdge error on the
// first inconsistency found.
func (g *Graph) Validate() error {
	for i := range g.srcs {
		u, v := g.srcs[i], g.dsts[i]
		if !g.HasVertex(u) || !g.HasVertex(v) {
			return errors.New(errors.ErrCodeInvalidVertex, "edge %d references endpoints (%d, %d) outside [0, %d)", i, u, v, g.NumVertices())
		}
		if !containsHalfEdge(g.adj[u], v, int64(i)) {
			return errors.New(errors.ErrCodeInvalidEdge, "edge %d (%d, %d) missing from outgoing list of %d", i, u, v, u)
		}
		if !containsHalfEdge(g.radj[v], u, int64(i)) {
			return errors.New(errors.ErrCodeInvalidEdge, "edge %d (%d, %d) missing from incoming list of %d", i, u, v, v)
		}
	}
	return nil
}

func containsHalfEdge(list []HalfEdge, other, id int64) bool {
	for _, he := range list {
		if he.Other == other && he.EdgeID == id {
			return true
		}
	}
	return false
}
