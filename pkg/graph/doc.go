// Package graph provides the two graph representations that the batching
// and partitioning operations in pkg/graphop work over.
//
// # Overview
//
// Graph-structured learning workloads process many small, variable-size
// graphs as a single batched structure for throughput, then split results
// back per original graph. This package supplies the storage those
// operations re-index:
//
//   - [Graph]: a mutable adjacency-list graph with append-only vertex
//     growth and append-only edge insertion. Edge ids are assigned
//     sequentially in insertion order, and an edge-id-indexed pair of
//     endpoint arrays makes iteration in id order O(1) per edge.
//   - [Immutable]: an immutable compressed-row (CSR) graph whose buffers
//     are shared across instances and never written after construction.
//
// # Basic Usage
//
// Build a mutable graph with [New], grow it with [Graph.AddVertices], and
// insert edges with [Graph.AddEdge]:
//
//	g := graph.New()
//	g.AddVertices(3)
//	g.AddEdge(0, 1) // edge id 0
//	g.AddEdge(1, 2) // edge id 1
//
// Derive the incoming CSR view with [InCSRFromGraph] when an [Immutable]
// is needed.
//
// # Identifiers
//
// Vertex ids are integers in [0, NumVertices()); edge ids are integers in
// [0, NumEdges()) assigned by insertion order. Both id spaces are dense,
// which is what lets disjoint union shift them by cumulative offsets and
// partitioning shift them back.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Immutable graphs and any
// graph that is no longer being mutated can be read from any number of
// goroutines.
package graph
