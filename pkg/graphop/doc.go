// Package graphop provides stateless transformations over the graph
// representations in pkg/graph: disjoint union (batching), disjoint
// partitioning (un-batching), line-graph construction, parent-to-subgraph
// id mapping, and id-range expansion.
//
// # Batching and Partitioning
//
// [DisjointUnion] concatenates graphs into one batched graph whose vertex
// and edge id spaces are the inputs' ids shifted by cumulative offsets.
// [DisjointPartitionBySizes] inverts it: given the per-graph vertex
// counts, it recovers the constituent graphs exactly, including per-graph
// edge ordering. [DisjointUnionCSR] and [DisjointPartitionCSRBySizes] do
// the same over the immutable CSR representation.
//
// Partitioning requires the batched layout: vertices laid out as
// contiguous increasing blocks per partition, with each block's edges
// contiguous in edge-id space. Inputs that declare a partition whose
// vertex range is not closed under its own edges are rejected.
//
// # Purity
//
// Every function here is a synchronous, single-shot computation: inputs
// are never mutated, outputs own freshly allocated buffers that alias
// nothing in the inputs, and all validation happens before any output is
// built. Failures carry the invalid-argument codes from pkg/errors.
package graphop
