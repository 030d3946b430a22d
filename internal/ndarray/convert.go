package ndarray

import (
	"fmt"
	"math"
)

// ToSparse re-encodes the array in a sparse format (CSR or RowSparse).
// The result is a new array owned by the same manager; the source is not
// modified. Converting to the array's own format returns a new handle
// sharing the immutable storage.
//
// Only 2-D arrays can be made sparse. Dense and unknown targets fail with
// ErrUnsupportedFormat.
func (a *NDArray) ToSparse(format Format) (*NDArray, error) {
	a.mustBeLive()
	if !format.IsSparse() {
		return nil, fmt.Errorf("%w: cannot convert to %s (%d)", ErrUnsupportedFormat, format, int(format))
	}
	rows, cols, err := a.shape.matrixDims()
	if err != nil {
		return nil, fmt.Errorf("to %s: %w", format, err)
	}
	if a.format == format {
		return a.share()
	}

	dense := a.denseView()
	switch format {
	case CSR:
		values, indptr, indices := encodeCSR(dense, rows, cols)
		if err := a.manager.checkAlloc(len(values)); err != nil {
			return nil, err
		}
		return a.manager.adopt(CSR, a.shape, &csrStorage{
			values:  adoptBuffer(values),
			indptr:  adoptBuffer(indptr),
			indices: adoptBuffer(indices),
		})
	case RowSparse:
		values, indices := encodeRowSparse(dense, rows, cols)
		if err := a.manager.checkAlloc(len(values)); err != nil {
			return nil, err
		}
		return a.manager.adopt(RowSparse, a.shape, &rowSparseStorage{
			values:  adoptBuffer(values),
			indices: adoptBuffer(indices),
		})
	}
	panic("unreachable")
}

// ToDense returns a dense array with the same logical contents. A dense
// source yields a new handle sharing its storage.
func (a *NDArray) ToDense() (*NDArray, error) {
	a.mustBeLive()
	if a.format == Dense {
		return a.share()
	}
	values := a.ToFloatArray()
	if err := a.manager.checkAlloc(len(values)); err != nil {
		return nil, err
	}
	return a.manager.adopt(Dense, a.shape, &denseStorage{values: adoptBuffer(values)})
}

// encodeCSR scans a row-major rows x cols buffer and collects its nonzeros.
// An entry is stored unless it is +0, so -0 and NaN survive the round trip.
// indptr is the prefix sum of per-row nonzero counts; within a row entries
// are in column order.
func encodeCSR(dense []float32, rows, cols int) (values []float32, indptr, indices []int64) {
	indptr = make([]int64, rows+1)
	values = make([]float32, 0)
	indices = make([]int64, 0)
	for r := 0; r < rows; r++ {
		row := dense[r*cols : (r+1)*cols]
		for c, v := range row {
			if isZeroBits(v) {
				continue
			}
			values = append(values, v)
			indices = append(indices, int64(c))
		}
		indptr[r+1] = int64(len(values))
	}
	return values, indptr, indices
}

// encodeRowSparse keeps every row that has at least one nonzero, in
// ascending row order, copying the whole row including its zeros.
func encodeRowSparse(dense []float32, rows, cols int) (values []float32, indices []int64) {
	values = make([]float32, 0)
	indices = make([]int64, 0)
	for r := 0; r < rows; r++ {
		row := dense[r*cols : (r+1)*cols]
		if !hasNonZero(row) {
			continue
		}
		values = append(values, row...)
		indices = append(indices, int64(r))
	}
	return values, indices
}

func hasNonZero(row []float32) bool {
	for _, v := range row {
		if !isZeroBits(v) {
			return true
		}
	}
	return false
}

// isZeroBits reports whether v is +0, the value unstored positions flatten to.
func isZeroBits(v float32) bool {
	return math.Float32bits(v) == 0
}
