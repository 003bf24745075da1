package graphop

import (
	"slices"
	"testing"

	"github.com/graphbatch/graphbatch/pkg/errors"
	"github.com/graphbatch/graphbatch/pkg/graph"
	"github.com/graphbatch/graphbatch/pkg/ndarray"
)

// equalGraphs compares vertex counts and edge lists in edge-id order.
func equalGraphs(t *testing.T, got, want *graph.Graph) bool {
	t.Helper()
	return got.NumVertices() == want.NumVertices() && slices.Equal(got.Edges(), want.Edges())
}

func TestDisjointPartitionBySizes_RoundTrip(t *testing.T) {
	originals := []*graph.Graph{
		buildGraph(t, 3, []graph.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}}),
		buildGraph(t, 2, []graph.Edge{{Src: 0, Dst: 1}}),
		buildGraph(t, 1, nil),
		buildGraph(t, 4, []graph.Edge{{Src: 3, Dst: 0}, {Src: 0, Dst: 0}, {Src: 3, Dst: 0}}),
	}
	sizes := make([]int64, len(originals))
	for i, g := range originals {
		sizes[i] = g.NumVertices()
	}

	batched := DisjointUnion(originals)
	parts, err := DisjointPartitionBySizes(batched, ndarray.FromInt64s(sizes))
	if err != nil {
		t.Fatalf("DisjointPartitionBySizes() error = %v", err)
	}

	if len(parts) != len(originals) {
		t.Fatalf("len(parts) = %d, want %d", len(parts), len(originals))
	}
	for i := range originals {
		if !equalGraphs(t, parts[i], originals[i]) {
			t.Errorf("partition %d = %d vertices %v, want %d vertices %v",
				i, parts[i].NumVertices(), parts[i].Edges(), originals[i].NumVertices(), originals[i].Edges())
		}
	}
}

func TestDisjointPartitionByNum(t *testing.T) {
	g1 := buildGraph(t, 2, []graph.Edge{{Src: 0, Dst: 1}})
	g2 := buildGraph(t, 2, []graph.Edge{{Src: 1, Dst: 0}})
	batched := DisjointUnion([]*graph.Graph{g1, g2})

	parts, err := DisjointPartitionByNum(batched, 2)
	if err != nil {
		t.Fatalf("DisjointPartitionByNum() error = %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	if !equalGraphs(t, parts[0], g1) || !equalGraphs(t, parts[1], g2) {
		t.Errorf("partitions = %v / %v, want originals", parts[0].Edges(), parts[1].Edges())
	}
}

func TestDisjointPartitionByNum_Invalid(t *testing.T) {
	g := buildGraph(t, 5, nil)

	for _, num := range []int64{0, 2, -1} {
		if _, err := DisjointPartitionByNum(g, num); !errors.Is(err, errors.ErrCodeInvalidPartition) {
			t.Errorf("DisjointPartitionByNum(g, %d) error = %v, want INVALID_PARTITION", num, err)
		}
	}
}

func TestDisjointPartitionBySizes_Invalid(t *testing.T) {
	g := buildGraph(t, 5, nil)

	tests := []struct {
		name  string
		sizes ndarray.Array
		code  errors.Code
	}{
		{"sum too small", ndarray.FromInt64s([]int64{2, 2}), errors.ErrCodeInvalidPartition},
		{"sum too large", ndarray.FromInt64s([]int64{3, 3}), errors.ErrCodeInvalidPartition},
		{"negative size", ndarray.FromInt64s([]int64{6, -1}), errors.ErrCodeInvalidPartition},
		{"bad device", ndarray.FromInt64s([]int64{5}).WithDevice(ndarray.CUDA), errors.ErrCodeInvalidArray},
		{"bad dtype", ndarray.FromInt64s([]int64{5}).WithDType(ndarray.Int32), errors.ErrCodeInvalidArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DisjointPartitionBySizes(g, tt.sizes); !errors.Is(err, tt.code) {
				t.Errorf("DisjointPartitionBySizes() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestDisjointPartitionBySizes_CrossPartitionEdge(t *testing.T) {
	// Edge (1, 2) crosses the [0, 2) / [2, 4) boundary.
	g := buildGraph(t, 4, []graph.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}})

	_, err := DisjointPartitionBySizes(g, ndarray.FromInt64s([]int64{2, 2}))
	if !errors.Is(err, errors.ErrCodeInvalidPartition) {
		t.Errorf("DisjointPartitionBySizes() error = %v, want INVALID_PARTITION", err)
	}
}

func TestDisjointPartitionBySizes_NoInputMutation(t *testing.T) {
	g1 := buildGraph(t, 2, []graph.Edge{{Src: 0, Dst: 1}})
	g2 := buildGraph(t, 2, []graph.Edge{{Src: 0, Dst: 1}})
	batched := DisjointUnion([]*graph.Graph{g1, g2})
	before := batched.Edges()

	if _, err := DisjointPartitionBySizes(batched, ndarray.FromInt64s([]int64{2, 2})); err != nil {
		t.Fatalf("DisjointPartitionBySizes() error = %v", err)
	}

	if !slices.Equal(batched.Edges(), before) {
		t.Errorf("input edges changed: %v, want %v", batched.Edges(), before)
	}
	if err := batched.Validate(); err != nil {
		t.Errorf("input Validate() = %v after partitioning, want nil", err)
	}
}

func csrEqual(t *testing.T, got, want *graph.CSR) bool {
	t.Helper()
	return slices.Equal(got.Indptr, want.Indptr) &&
		slices.Equal(got.Indices, want.Indices) &&
		slices.Equal(got.EdgeIDs, want.EdgeIDs)
}

func TestDisjointPartitionCSRBySizes_RoundTrip(t *testing.T) {
	originals := []*graph.Graph{
		buildGraph(t, 3, []graph.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}}),
		buildGraph(t, 2, []graph.Edge{{Src: 0, Dst: 1}}),
		buildGraph(t, 2, []graph.Edge{{Src: 1, Dst: 1}, {Src: 0, Dst: 1}}),
	}
	csrs := make([]*graph.Immutable, len(originals))
	sizes := make([]int64, len(originals))
	for i, g := range originals {
		csrs[i] = graph.NewImmutable(graph.InCSRFromGraph(g))
		sizes[i] = g.NumVertices()
	}

	batched := DisjointUnionCSR(csrs)
	parts, err := DisjointPartitionCSRBySizes(batched, ndarray.FromInt64s(sizes))
	if err != nil {
		t.Fatalf("DisjointPartitionCSRBySizes() error = %v", err)
	}

	if len(parts) != len(originals) {
		t.Fatalf("len(parts) = %d, want %d", len(parts), len(originals))
	}
	for i := range originals {
		if !csrEqual(t, parts[i].InCSR(), csrs[i].InCSR()) {
			t.Errorf("partition %d CSR = %+v, want %+v", i, parts[i].InCSR(), csrs[i].InCSR())
		}
	}
}

func TestDisjointPartitionCSRByNum(t *testing.T) {
	g1 := buildGraph(t, 2, []graph.Edge{{Src: 0, Dst: 1}})
	g2 := buildGraph(t, 2, []graph.Edge{{Src: 1, Dst: 0}})
	batched := DisjointUnionCSR([]*graph.Immutable{
		graph.NewImmutable(graph.InCSRFromGraph(g1)),
		graph.NewImmutable(graph.InCSRFromGraph(g2)),
	})

	parts, err := DisjointPartitionCSRByNum(batched, 2)
	if err != nil {
		t.Fatalf("DisjointPartitionCSRByNum() error = %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	if !csrEqual(t, parts[0].InCSR(), graph.InCSRFromGraph(g1)) {
		t.Errorf("partition 0 = %+v, want in-CSR of g1", parts[0].InCSR())
	}
	if !csrEqual(t, parts[1].InCSR(), graph.InCSRFromGraph(g2)) {
		t.Errorf("partition 1 = %+v, want in-CSR of g2", parts[1].InCSR())
	}

	if _, err := DisjointPartitionCSRByNum(batched, 3); !errors.Is(err, errors.ErrCodeInvalidPartition) {
		t.Errorf("DisjointPartitionCSRByNum(batched, 3) error = %v, want INVALID_PARTITION", err)
	}
}

func TestDisjointPartitionCSRBySizes_ClosureViolation(t *testing.T) {
	// Row 0 references vertex 1, which falls outside partition 0's
	// range [0, 1). Must be rejected, not silently relabeled to -1.
	g := graph.NewImmutable(&graph.CSR{
		Indptr:  []int64{0, 1, 2},
		Indices: []int64{1, 0},
		EdgeIDs: []int64{0, 1},
	})

	_, err := DisjointPartitionCSRBySizes(g, ndarray.FromInt64s([]int64{1, 1}))
	if !errors.Is(err, errors.ErrCodeInvalidPartition) {
		t.Errorf("DisjointPartitionCSRBySizes() error = %v, want INVALID_PARTITION", err)
	}
}

func TestDisjointPartitionCSRBySizes_SumMismatch(t *testing.T) {
	g := graph.NewImmutable(graph.NewCSR(4, 0))

	_, err := DisjointPartitionCSRBySizes(g, ndarray.FromInt64s([]int64{2, 3}))
	if !errors.Is(err, errors.ErrCodeInvalidPartition) {
		t.Errorf("DisjointPartitionCSRBySizes() error = %v, want INVALID_PARTITION", err)
	}
}
