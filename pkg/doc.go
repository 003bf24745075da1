// Package pkg provides the core libraries for graphbatch.
//
// # Overview
//
// graphbatch combines many small graphs into one batched graph with
// disjoint vertex and edge id spaces, and inverts that operation to
// recover the constituent graphs. The pkg directory is organized by
// concern:
//
//   - [graph] - the two graph representations (mutable adjacency-list,
//     immutable CSR)
//   - [graphop] - stateless transformations: disjoint union, disjoint
//     partitioning, line-graph construction, id mapping and expansion
//   - [ndarray] - the typed id-array value exchanged across operation
//     boundaries
//   - [errors] - structured invalid-argument error codes
//   - [observability] - optional operation hooks
//   - [buildinfo] - build-time version information
//
// # Quick Start
//
// Batch two graphs and split them back apart:
//
//	import (
//	    "github.com/graphbatch/graphbatch/pkg/graph"
//	    "github.com/graphbatch/graphbatch/pkg/graphop"
//	    "github.com/graphbatch/graphbatch/pkg/ndarray"
//	)
//
//	g1 := graph.New()
//	g1.AddVertices(3)
//	g1.AddEdge(0, 1)
//	g1.AddEdge(1, 2)
//
//	g2 := graph.New()
//	g2.AddVertices(2)
//	g2.AddEdge(0, 1)
//
//	batched := graphop.DisjointUnion([]*graph.Graph{g1, g2})
//	parts, err := graphop.DisjointPartitionBySizes(batched, ndarray.FromInt64s([]int64{3, 2}))
//
// [graph]: github.com/graphbatch/graphbatch/pkg/graph
// [graphop]: github.com/graphbatch/graphbatch/pkg/graphop
// [ndarray]: github.com/graphbatch/graphbatch/pkg/ndarray
// [errors]: github.com/graphbatch/graphbatch/pkg/errors
// [observability]: github.com/graphbatch/graphbatch/pkg/observability
// [buildinfo]: github.com/graphbatch/graphbatch/pkg/buildinfo
package pkg
