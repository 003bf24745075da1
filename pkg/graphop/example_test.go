package graphop_test

import (
	"fmt"

	"github.com/graphbatch/graphbatch/pkg/graph"
	"github.com/graphbatch/graphbatch/pkg/graphop"
	"github.com/graphbatch/graphbatch/pkg/ndarray"
)

func ExampleDisjointUnion() {
	// Two small graphs: a 3-vertex path and a single 2-vertex edge.
	g1 := graph.New()
	g1.AddVertices(3)
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 2)

	g2 := graph.New()
	g2.AddVertices(2)
	g2.AddEdge(0, 1)

	batched := graphop.DisjointUnion([]*graph.Graph{g1, g2})

	fmt.Println("Vertices:", batched.NumVertices())
	fmt.Println("Edges:", batched.Edges())
	// Output:
	// Vertices: 5
	// Edges: [{0 1} {1 2} {3 4}]
}

func ExampleDisjointPartitionBySizes() {
	g1 := graph.New()
	g1.AddVertices(3)
	g1.AddEdge(0, 1)
	g1.AddEdge(1, 2)

	g2 := graph.New()
	g2.AddVertices(2)
	g2.AddEdge(0, 1)

	batched := graphop.DisjointUnion([]*graph.Graph{g1, g2})
	parts, _ := graphop.DisjointPartitionBySizes(batched, ndarray.FromInt64s([]int64{3, 2}))

	for i, p := range parts {
		fmt.Printf("partition %d: %d vertices, edges %v\n", i, p.NumVertices(), p.Edges())
	}
	// Output:
	// partition 0: 3 vertices, edges [{0 1} {1 2}]
	// partition 1: 2 vertices, edges [{0 1}]
}

func ExampleLineGraph() {
	// Directed triangle; each edge continues into exactly one other.
	g := graph.New()
	g.AddVertices(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	lg := graphop.LineGraph(g, true)

	fmt.Println("Vertices:", lg.NumVertices())
	fmt.Println("Edges:", lg.Edges())
	// Output:
	// Vertices: 3
	// Edges: [{0 1} {1 2} {2 0}]
}

func ExampleExpandIDs() {
	ids := ndarray.FromInt64s([]int64{5, 7})
	offset := ndarray.FromInt64s([]int64{0, 2, 3})

	out, _ := graphop.ExpandIDs(ids, offset)

	fmt.Println(out.Int64s())
	// Output:
	// [5 5 7]
}

func ExampleMapParentIDToSubgraphID() {
	// Local vertex p corresponds to parent vertex parentIDs[p].
	parentIDs := ndarray.FromInt64s([]int64{40, 10, 30})
	query := ndarray.FromInt64s([]int64{10, 30, 99})

	out, _ := graphop.MapParentIDToSubgraphID(parentIDs, query)

	fmt.Println(out.Int64s())
	// Output:
	// [1 2 -1]
}
