package ndarray

import (
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/exp/slices"
)

// NDArray is an immutable handle to a shaped float32 array.
// The format tag selects one of three payloads: dense, CSR or row-sparse.
// Once returned by a constructor nothing about the array changes until it is
// released, so concurrent reads need no locking.
type NDArray struct {
	format   Format
	shape    Shape
	storage  storage
	manager  *Manager
	released atomic.Bool
}

// Format returns the storage format tag.
func (a *NDArray) Format() Format {
	return a.format
}

// Shape returns a copy of the array's logical shape. For sparse arrays this
// is the full dense shape.
func (a *NDArray) Shape() Shape {
	return a.shape.Clone()
}

// IsSparse reports whether the array uses a sparse layout.
func (a *NDArray) IsSparse() bool {
	return a.format.IsSparse()
}

// SparseFormat returns the array's storage format (Dense for dense arrays).
func (a *NDArray) SparseFormat() Format {
	return a.format
}

// Manager returns the manager that owns the array.
func (a *NDArray) Manager() *Manager {
	return a.manager
}

// NumElements returns the number of elements in the logical (dense) view.
func (a *NDArray) NumElements() int {
	return a.shape.NumElements()
}

// NNZ returns the number of stored values: every element for dense arrays,
// nnz for CSR, and nnzRows*cols for row-sparse arrays.
func (a *NDArray) NNZ() int {
	a.mustBeLive()
	return a.storage.stored()
}

// Values returns a copy of the stored value buffer.
func (a *NDArray) Values() []float32 {
	a.mustBeLive()
	switch s := a.storage.(type) {
	case *denseStorage:
		return cloneSlice(s.values.data)
	case *csrStorage:
		return cloneSlice(s.values.data)
	case *rowSparseStorage:
		return cloneSlice(s.values.data)
	}
	panic(fmt.Sprintf("ndarray: unknown storage %T", a.storage))
}

// Indptr returns a copy of the CSR row-pointer array, or nil for other formats.
func (a *NDArray) Indptr() []int64 {
	a.mustBeLive()
	if s, ok := a.storage.(*csrStorage); ok {
		return cloneSlice(s.indptr.data)
	}
	return nil
}

// Indices returns a copy of the index array: column indices for CSR, row
// indices for row-sparse, nil for dense arrays.
func (a *NDArray) Indices() []int64 {
	a.mustBeLive()
	switch s := a.storage.(type) {
	case *csrStorage:
		return cloneSlice(s.indices.data)
	case *rowSparseStorage:
		return cloneSlice(s.indices.data)
	}
	return nil
}

// ToFloatArray flattens the array into a new row-major dense slice of
// NumElements values. Positions a sparse array does not store are 0.
func (a *NDArray) ToFloatArray() []float32 {
	a.mustBeLive()
	switch s := a.storage.(type) {
	case *denseStorage:
		return cloneSlice(s.values.data)
	case *csrStorage:
		return flattenCSR(a.shape, s.values.data, s.indptr.data, s.indices.data)
	case *rowSparseStorage:
		return flattenRowSparse(a.shape, s.values.data, s.indices.data)
	}
	panic(fmt.Sprintf("ndarray: unknown storage %T", a.storage))
}

// Equal reports whether both arrays have the same shape and the same
// flattened contents, regardless of storage format. NaN compares equal to
// NaN and -0 to +0.
func (a *NDArray) Equal(other *NDArray) bool {
	if other == nil {
		return false
	}
	if !a.shape.Equal(other.shape) {
		return false
	}
	return slices.EqualFunc(a.denseView(), other.denseView(), sameValue)
}

// sameValue is == except that NaN equals NaN.
func sameValue(x, y float32) bool {
	return x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y)))
}

// IsUnique returns true if no other handle shares this array's storage.
func (a *NDArray) IsUnique() bool {
	a.mustBeLive()
	return a.storage.unique()
}

// Release detaches the array from its manager and drops its storage
// reference. Releasing twice is a no-op.
func (a *NDArray) Release() {
	if a.free() {
		a.manager.detach(a)
	}
}

// IsReleased reports whether the array has been released, either directly
// or by closing its manager.
func (a *NDArray) IsReleased() bool {
	return a.released.Load()
}

// String returns a human-readable description of the array.
func (a *NDArray) String() string {
	if a.IsReleased() {
		return fmt.Sprintf("NDArray(%s, %v, released)", a.format, a.shape)
	}
	if a.format == Dense {
		return fmt.Sprintf("NDArray(%s, %v)", a.format, a.shape)
	}
	return fmt.Sprintf("NDArray(%s, %v, stored=%d)", a.format, a.shape, a.storage.stored())
}

// free drops the storage reference once. It reports whether this call did it.
func (a *NDArray) free() bool {
	if a.released.Swap(true) {
		return false
	}
	a.storage.release()
	return true
}

// share returns a second handle over the same storage, owned by the same manager.
func (a *NDArray) share() (*NDArray, error) {
	a.storage.retain()
	return a.manager.adopt(a.format, a.shape, a.storage)
}

// denseView returns the row-major values, aliasing storage for dense arrays.
// Callers must not modify the result.
func (a *NDArray) denseView() []float32 {
	a.mustBeLive()
	if s, ok := a.storage.(*denseStorage); ok {
		return s.values.data
	}
	return a.ToFloatArray()
}

func (a *NDArray) mustBeLive() {
	if a.released.Load() {
		panic(fmt.Sprintf("ndarray: use of released array %v", a.shape))
	}
}

// flattenCSR expands CSR storage into a row-major buffer of rows*cols values.
// The shape was validated at construction, so its element count fits in an int.
func flattenCSR(shape Shape, values []float32, indptr, indices []int64) []float32 {
	rows := shape[0]
	stride := shape.ComputeStrides()[0]
	out := make([]float32, shape.NumElements())
	for r := 0; r < rows; r++ {
		base := r * stride
		for k := indptr[r]; k < indptr[r+1]; k++ {
			out[base+int(indices[k])] = values[k]
		}
	}
	return out
}

// flattenRowSparse expands row-sparse storage into a row-major buffer.
func flattenRowSparse(shape Shape, values []float32, indices []int64) []float32 {
	stride := shape.ComputeStrides()[0]
	out := make([]float32, shape.NumElements())
	for j, r := range indices {
		copy(out[int(r)*stride:int(r+1)*stride], values[j*stride:(j+1)*stride])
	}
	return out
}
