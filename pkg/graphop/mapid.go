package graphop

import (
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/graphbatch/graphbatch/pkg/ndarray"
)

// Below this many queries the goroutine overhead outweighs the work.
const parallelQueryThreshold = 1024

// MapParentIDToSubgraphID translates parent-graph vertex ids into
// subgraph-local ids. parentIDs gives, by position, the parent id of each
// local vertex: position p holding value id means local vertex p
// corresponds to parent vertex id. For each element of query, the result
// holds its position in parentIDs, or -1 if the id does not appear.
//
// Parent ids are assumed unique; duplicates make the mapping ambiguous
// and whichever position the lookup strategy finds wins. When parentIDs
// is already sorted ascending the lookup is a binary search, otherwise a
// position map is built first. Both strategies return identical results
// for unique parent ids.
//
// Each query resolves independently; large query arrays are resolved in
// parallel chunks after the lookup structure is fully built.
//
// Both arrays must satisfy the id-array contract (host, 1-D, int64);
// violations fail with an ErrCodeInvalidArray error before any work.
func MapParentIDToSubgraphID(parentIDs, query ndarray.Array) (ndarray.Array, error) {
	if err := ndarray.Validate(parentIDs); err != nil {
		return ndarray.Array{}, err
	}
	if err := ndarray.Validate(query); err != nil {
		return ndarray.Array{}, err
	}

	parents := parentIDs.Int64s()
	queries := query.Int64s()
	out := ndarray.Empty(query.Len())
	rst := out.Int64s()

	// The lookup structure is complete before any resolution starts;
	// resolve only reads from here on.
	var resolve func(id int64) int64
	if slices.IsSorted(parents) {
		resolve = func(id int64) int64 {
			pos, ok := slices.BinarySearch(parents, id)
			if !ok {
				return -1
			}
			return int64(pos)
		}
	} else {
		positions := make(map[int64]int64, len(parents))
		for i, id := range parents {
			positions[id] = int64(i)
		}
		resolve = func(id int64) int64 {
			pos, ok := positions[id]
			if !ok {
				return -1
			}
			return pos
		}
	}

	if len(queries) < parallelQueryThreshold {
		for i, id := range queries {
			rst[i] = resolve(id)
		}
		return out, nil
	}

	workers := runtime.NumCPU()
	chunk := (len(queries) + workers - 1) / workers
	var eg errgroup.Group
	for start := 0; start < len(queries); start += chunk {
		start := start
		end := min(start+chunk, len(queries))
		eg.Go(func() error {
			// Each chunk writes a disjoint slice of rst.
			for i := start; i < end; i++ {
				rst[i] = resolve(queries[i])
			}
			return nil
		})
	}
	// Resolution cannot fail; Wait only joins the workers.
	_ = eg.Wait()
	return out, nil
}
