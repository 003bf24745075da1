package graphop

import (
	"github.com/graphbatch/graphbatch/pkg/errors"
	"github.com/graphbatch/graphbatch/pkg/graph"
	"github.com/graphbatch/graphbatch/pkg/ndarray"
)

// partitionOffsets validates a size vector against a graph and returns
// the cumulative vertex offsets (length len(sizes)+1, starting at 0).
// Validation is shared by both representations via graph.Counts.
func partitionOffsets(g graph.Counts, sizes ndarray.Array) ([]int64, error) {
	if err := ndarray.Validate(sizes); err != nil {
		return nil, err
	}
	data := sizes.Int64s()
	cumsum := make([]int64, len(data)+1)
	for i, s := range data {
		if s < 0 {
			return nil, errors.New(errors.ErrCodeInvalidPartition, "partition size %d at index %d must be non-negative", s, i)
		}
		cumsum[i+1] = cumsum[i] + s
	}
	if cumsum[len(data)] != g.NumVertices() {
		return nil, errors.New(errors.ErrCodeInvalidPartition,
			"sizes sum to %d, graph has %d vertices", cumsum[len(data)], g.NumVertices())
	}
	return cumsum, nil
}

// uniformSizes builds the size vector for an even split into num parts.
func uniformSizes(g graph.Counts, num int64) (ndarray.Array, error) {
	if num <= 0 || g.NumVertices()%num != 0 {
		return ndarray.Array{}, errors.New(errors.ErrCodeInvalidPartition,
			"%d partitions cannot evenly divide %d vertices", num, g.NumVertices())
	}
	return ndarray.Full(num, g.NumVertices()/num), nil
}

// DisjointPartitionByNum splits a batched mutable graph into num equal
// partitions. It fails with an ErrCodeInvalidPartition error unless num
// is positive and evenly divides the vertex count, then delegates to
// [DisjointPartitionBySizes] with a constant size vector.
func DisjointPartitionByNum(g *graph.Graph, num int64) ([]*graph.Graph, error) {
	sizes, err := uniformSizes(g, num)
	if err != nil {
		return nil, err
	}
	return DisjointPartitionBySizes(g, sizes)
}

// DisjointPartitionBySizes splits a batched mutable graph back into
// independent graphs, where sizes[i] is the vertex count of partition i.
//
// The graph must have the layout [DisjointUnion] produces: partition i
// owns the contiguous vertex block starting at the cumulative size
// offset, and that block's outgoing edges occupy a contiguous edge-id
// range. Each partition's vertex and edge ids are relabeled into its own
// 0-based space.
//
// It fails with an ErrCodeInvalidPartition error if the sizes do not sum
// to the vertex count, or if any partition's edges cross into another
// partition's vertex range. No partial result is returned on failure.
func DisjointPartitionBySizes(g *graph.Graph, sizes ndarray.Array) ([]*graph.Graph, error) {
	cumsum, err := partitionOffsets(g, sizes)
	if err != nil {
		return nil, err
	}

	// Edges of block i are the adjacency entries whose source lies in the
	// block; with the batched layout they occupy one contiguous id range.
	numParts := len(cumsum) - 1
	blockEdges := make([]int64, numParts)
	for i := 0; i < numParts; i++ {
		for v := cumsum[i]; v < cumsum[i+1]; v++ {
			blockEdges[i] += g.OutDegree(v)
		}
	}

	// Reject cross-partition edges before building any output.
	var edgeOffset int64
	for i := 0; i < numParts; i++ {
		start, end := cumsum[i], cumsum[i+1]
		for j := edgeOffset; j < edgeOffset+blockEdges[i]; j++ {
			src, dst, _ := g.Edge(j)
			if src < start || src >= end || dst < start || dst >= end {
				return nil, errors.New(errors.ErrCodeInvalidPartition,
					"edge %d (%d, %d) crosses partition %d vertex range [%d, %d)", j, src, dst, i, start, end)
			}
		}
		edgeOffset += blockEdges[i]
	}

	rst := make([]*graph.Graph, numParts)
	edgeOffset = 0
	for i := 0; i < numParts; i++ {
		size := cumsum[i+1] - cumsum[i]
		part := graph.NewWithCapacity(size, blockEdges[i])
		part.AddVertices(size)
		for j := edgeOffset; j < edgeOffset+blockEdges[i]; j++ {
			src, dst, _ := g.Edge(j)
			part.AddEdge(src-cumsum[i], dst-cumsum[i])
		}
		edgeOffset += blockEdges[i]
		rst[i] = part
	}
	return rst, nil
}

// DisjointPartitionCSRByNum splits a batched immutable graph into num
// equal partitions, with the same validation as [DisjointPartitionByNum].
func DisjointPartitionCSRByNum(g *graph.Immutable, num int64) ([]*graph.Immutable, error) {
	sizes, err := uniformSizes(g, num)
	if err != nil {
		return nil, err
	}
	return DisjointPartitionCSRBySizes(g, sizes)
}

// DisjointPartitionCSRBySizes splits a batched immutable graph back into
// independent immutable graphs over its incoming CSR view.
//
// For partition i spanning vertex range [start, end), the new indptr is
// the parent indptr window rebased to start, the new indices are the
// parent indices shifted into the partition's local 0-based vertex space,
// and the new edge ids are the parent edge ids shifted down by the edges
// consumed by prior partitions, so each partition's edge numbering
// restarts at 0.
//
// Every neighbor referenced by rows in [start, end) must itself lie in
// [start, end); a row that references a vertex outside its partition is
// rejected with an ErrCodeInvalidPartition error rather than silently
// producing out-of-range local ids. No partial result is returned.
func DisjointPartitionCSRBySizes(g *graph.Immutable, sizes ndarray.Array) ([]*graph.Immutable, error) {
	cumsum, err := partitionOffsets(g, sizes)
	if err != nil {
		return nil, err
	}
	in := g.InCSR()

	// Closure check across all partitions before building any output.
	numParts := len(cumsum) - 1
	for i := 0; i < numParts; i++ {
		start, end := cumsum[i], cumsum[i+1]
		for j := in.Indptr[start]; j < in.Indptr[end]; j++ {
			if v := in.Indices[j]; v < start || v >= end {
				return nil, errors.New(errors.ErrCodeInvalidPartition,
					"entry %d references vertex %d outside partition %d vertex range [%d, %d)", j, v, i, start, end)
			}
		}
	}

	rst := make([]*graph.Immutable, numParts)
	var cumEdges int64
	for i := 0; i < numParts; i++ {
		start, end := cumsum[i], cumsum[i+1]
		lo, hi := in.Indptr[start], in.Indptr[end]
		out := graph.NewCSR(end-start, hi-lo)
		for l := start + 1; l <= end; l++ {
			out.Indptr[l-start] = in.Indptr[l] - lo
		}
		for j := lo; j < hi; j++ {
			out.Indices[j-lo] = in.Indices[j] - start
			out.EdgeIDs[j-lo] = in.EdgeIDs[j] - cumEdges
		}
		cumEdges += hi - lo
		rst[i] = graph.NewImmutable(out)
	}
	return rst, nil
}
