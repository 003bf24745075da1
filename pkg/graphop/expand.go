package graphop

import (
	"github.com/graphbatch/graphbatch/pkg/errors"
	"github.com/graphbatch/graphbatch/pkg/ndarray"
)

// ExpandIDs expands ids by the run lengths encoded in offset: ids[i] is
// repeated offset[i+1]-offset[i] times and the runs are concatenated in
// order. The output length is offset's last element.
//
// offset must have exactly len(ids)+1 elements (ErrCodeLengthMismatch
// otherwise), be non-decreasing, and start at a non-negative value
// (ErrCodeInvalidArray otherwise). Both arrays must satisfy the id-array
// contract. All checks run before the output is allocated.
func ExpandIDs(ids, offset ndarray.Array) (ndarray.Array, error) {
	if err := ndarray.Validate(ids); err != nil {
		return ndarray.Array{}, err
	}
	if err := ndarray.Validate(offset); err != nil {
		return ndarray.Array{}, err
	}
	if ids.Len()+1 != offset.Len() {
		return ndarray.Array{}, errors.New(errors.ErrCodeLengthMismatch,
			"offset must have len(ids)+1 elements: len(ids)=%d, len(offset)=%d", ids.Len(), offset.Len())
	}

	off := offset.Int64s()
	if off[0] < 0 {
		return ndarray.Array{}, errors.New(errors.ErrCodeInvalidArray, "offset[0] = %d, must be non-negative", off[0])
	}
	for i := 1; i < len(off); i++ {
		if off[i] < off[i-1] {
			return ndarray.Array{}, errors.New(errors.ErrCodeInvalidArray, "offset decreases at index %d", i)
		}
	}

	data := ids.Int64s()
	out := ndarray.Empty(off[len(off)-1])
	rst := out.Int64s()
	for i, id := range data {
		for j := off[i]; j < off[i+1]; j++ {
			rst[j] = id
		}
	}
	return out, nil
}
