package graph

import "github.com/graphbatch/graphbatch/pkg/errors"

// CSR is a compressed-row buffer: Indptr has one entry per vertex plus a
// leading zero, and row v's entries occupy Indices[Indptr[v]:Indptr[v+1]]
// with the originating edge id in the parallel EdgeIDs slice.
//
// A CSR is shared by pointer across every [Immutable] that holds it and
// must never be written after construction. Operations that need a
// different CSR allocate a fresh one; none of them alias a slice of an
// input buffer.
type CSR struct {
	Indptr  []int64 // length NumVertices+1, non-decreasing, Indptr[0] == 0
	Indices []int64 // length Indptr[NumVertices], neighbor vertex per entry
	EdgeIDs []int64 // same length as Indices, original edge id per entry
}

// NewCSR allocates a zeroed CSR buffer for the given vertex and edge counts.
func NewCSR(numVertices, numEdges int64) *CSR {
	return &CSR{
		Indptr:  make([]int64, numVertices+1),
		Indices: make([]int64, numEdges),
		EdgeIDs: make([]int64, numEdges),
	}
}

// NumVertices returns the number of rows.
func (c *CSR) NumVertices() int64 { return int64(len(c.Indptr)) - 1 }

// NumEdges returns the number of entries.
func (c *CSR) NumEdges() int64 { return int64(len(c.Indices)) }

// Validate checks the CSR shape invariants: a leading zero, a
// non-decreasing offset array ending at the entry count, parallel
// Indices/EdgeIDs lengths, and in-range neighbor ids.
func (c *CSR) Validate() error {
	if len(c.Indptr) == 0 || c.Indptr[0] != 0 {
		return errors.New(errors.ErrCodeInvalidEdge, "indptr must start with 0")
	}
	for i := 1; i < len(c.Indptr); i++ {
		if c.Indptr[i] < c.Indptr[i-1] {
			return errors.New(errors.ErrCodeInvalidEdge, "indptr decreases at row %d", i)
		}
	}
	if c.Indptr[len(c.Indptr)-1] != int64(len(c.Indices)) {
		return errors.New(errors.ErrCodeInvalidEdge, "indptr ends at %d, have %d entries", c.Indptr[len(c.Indptr)-1], len(c.Indices))
	}
	if len(c.Indices) != len(c.EdgeIDs) {
		return errors.New(errors.ErrCodeInvalidEdge, "indices and edge ids differ in length: %d vs %d", len(c.Indices), len(c.EdgeIDs))
	}
	n := c.NumVertices()
	for i, v := range c.Indices {
		if v < 0 || v >= n {
			return errors.New(errors.ErrCodeInvalidVertex, "entry %d references vertex %d outside [0, %d)", i, v, n)
		}
	}
	return nil
}

// Immutable is a compressed-row graph. It holds the incoming-edge CSR
// view: row v lists the sources of v's incoming edges. Batching produces
// only this view; an outgoing view is considered absent until some
// collaborator builds one.
//
// Immutable graphs share their CSR buffer and are never mutated after
// construction, so they are safe for concurrent reads.
type Immutable struct {
	in *CSR
}

// NewImmutable wraps an incoming-edge CSR. The buffer is shared, not
// copied; the caller must not write to it afterwards.
func NewImmutable(in *CSR) *Immutable {
	return &Immutable{in: in}
}

// InCSR returns the shared incoming-edge CSR buffer.
// Callers must treat it as read-only.
func (g *Immutable) InCSR() *CSR { return g.in }

// NumVertices returns the number of vertices.
func (g *Immutable) NumVertices() int64 { return g.in.NumVertices() }

// NumEdges returns the number of edges.
func (g *Immutable) NumEdges() int64 { return g.in.NumEdges() }

// Counts is the capability shared by both graph representations that
// partition validation is written against.
type Counts interface {
	NumVertices() int64
	NumEdges() int64
}

// InCSRFromGraph builds the incoming-edge CSR view of a mutable graph.
// Row v lists the source vertex of each incoming edge of v, in the order
// the edges were inserted, with the original edge id alongside. The
// result owns freshly allocated buffers.
func InCSRFromGraph(g *Graph) *CSR {
	n := g.NumVertices()
	c := NewCSR(n, g.NumEdges())
	for v := int64(0); v < n; v++ {
		c.Indptr[v+1] = c.Indptr[v] + g.InDegree(v)
	}
	for v := int64(0); v < n; v++ {
		pos := c.Indptr[v]
		for _, he := range g.InEdges(v) {
			c.Indices[pos] = he.Other
			c.EdgeIDs[pos] = he.EdgeID
			pos++
		}
	}
	return c
}
