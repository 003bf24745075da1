// Package ndarray provides the typed id-array value that crosses every
// operation boundary in this library.
//
// An [Array] bundles a contiguous int64 buffer with an element count, a
// dtype tag, and a device tag. Graph operations exchange vertex ids, edge
// ids, partition sizes, and offsets exclusively through this type, and
// apply the [Validate] predicate before any computation: arrays must be
// host-resident, one-dimensional, and signed 64-bit integer. The tags
// exist so that the predicate is meaningful at API boundaries even though
// only one combination is accepted today.
//
// Arrays are value types around a shared buffer. The operations in
// pkg/graphop never write through an input array; results are always
// freshly allocated.
package ndarray

import "github.com/graphbatch/graphbatch/pkg/errors"

// DType identifies the element type of an array.
type DType int

const (
	// Int64 is a signed 64-bit integer element.
	Int64 DType = iota
	// Int32 is a signed 32-bit integer element. Arrays tagged Int32 are
	// rejected by Validate; the tag exists for boundary checking only.
	Int32
	// Float32 is a 32-bit floating point element. Rejected by Validate.
	Float32
)

// String returns the dtype name.
func (d DType) String() string {
	switch d {
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	}
	return "unknown"
}

// Device identifies where an array's buffer resides.
type Device int

const (
	// CPU is host memory. The only device Validate accepts.
	CPU Device = iota
	// CUDA is device memory. Rejected by Validate.
	CUDA
)

// String returns the device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	case CUDA:
		return "cuda"
	}
	return "unknown"
}

// Array is a 1-D fixed-length integer buffer tagged with dtype and device.
//
// The zero value is not usable (it fails [Validate]); construct arrays
// with [FromInt64s], [Empty], or [Full]. Arrays share their backing
// buffer when copied; use [Array.Clone] for an independent copy.
type Array struct {
	dtype  DType
	device Device
	ndim   int
	data   []int64
}

// FromInt64s wraps data in a host-resident 1-D int64 array.
// The array shares the given slice; it is not copied.
func FromInt64s(data []int64) Array {
	return Array{dtype: Int64, device: CPU, ndim: 1, data: data}
}

// Empty allocates a host-resident 1-D int64 array of n zero elements.
func Empty(n int64) Array {
	return Array{dtype: Int64, device: CPU, ndim: 1, data: make([]int64, n)}
}

// Full allocates a host-resident 1-D int64 array of n elements, all set to v.
func Full(n, v int64) Array {
	a := Empty(n)
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// Len returns the element count.
func (a Array) Len() int64 { return int64(len(a.data)) }

// Int64s returns the backing slice. Callers must not modify it when the
// array is an input to a graph operation in flight.
func (a Array) Int64s() []int64 { return a.data }

// DType returns the element type tag.
func (a Array) DType() DType { return a.dtype }

// Device returns the device tag.
func (a Array) Device() Device { return a.device }

// NDim returns the dimension count.
func (a Array) NDim() int { return a.ndim }

// Clone returns an array with an independent copy of the buffer.
func (a Array) Clone() Array {
	data := make([]int64, len(a.data))
	copy(data, a.data)
	return Array{dtype: a.dtype, device: a.device, ndim: a.ndim, data: data}
}

// WithDevice returns a copy of the array tagged with the given device.
// Useful for exercising rejection paths in tests.
func (a Array) WithDevice(d Device) Array {
	a.device = d
	return a
}

// WithDType returns a copy of the array tagged with the given dtype.
func (a Array) WithDType(d DType) Array {
	a.dtype = d
	return a
}

// WithNDim returns a copy of the array tagged with the given dimension count.
func (a Array) WithNDim(n int) Array {
	a.ndim = n
	return a
}

// Validate checks the id-array contract: host-resident, one-dimensional,
// signed 64-bit integer. It returns an ErrCodeInvalidArray error naming
// the violated property, or nil. Every operation that accepts an Array
// applies this predicate before touching the buffer.
func Validate(a Array) error {
	if a.device != CPU {
		return errors.New(errors.ErrCodeInvalidArray, "id array must be host-resident, got device %s", a.device)
	}
	if a.ndim != 1 {
		return errors.New(errors.ErrCodeInvalidArray, "id array must be one-dimensional, got %d dimensions", a.ndim)
	}
	if a.dtype != Int64 {
		return errors.New(errors.ErrCodeInvalidArray, "id array must be int64, got %s", a.dtype)
	}
	return nil
}
