package ndarray

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Validators run before any storage is allocated. They are pure: they never
// retain or modify the slices they inspect, and on failure nothing has been
// materialized yet.

// validateDense checks that a buffer of n values fills shape exactly.
func validateDense(shape Shape, n int) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if want := shape.NumElements(); n != want {
		return fmt.Errorf("%w: shape %v requires %d values, got %d", ErrShapeMismatch, shape, want, n)
	}
	return nil
}

// validateCSR checks the compressed sparse row invariants:
//
//	len(indptr) == rows+1
//	indptr[0] == 0, indptr non-decreasing
//	indptr[rows] == nnz == nValues == len(indices)
//	0 <= indices[k] < cols
func validateCSR(shape Shape, nValues int, indptr, indices []int64) error {
	rows, cols, err := shape.matrixDims()
	if err != nil {
		return fmt.Errorf("csr: %w", err)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("csr: %w", err)
	}

	if len(indptr) != rows+1 {
		return fmt.Errorf("%w: csr indptr has length %d, want rows+1 = %d", ErrShapeMismatch, len(indptr), rows+1)
	}
	if indptr[0] != 0 {
		return fmt.Errorf("%w: csr indptr[0] = %d, want 0", ErrInvalidIndex, indptr[0])
	}
	if !slices.IsSorted(indptr) {
		r := firstDescent(indptr)
		return fmt.Errorf("%w: csr indptr decreases at row %d (%d -> %d)", ErrInvalidIndex, r-1, indptr[r-1], indptr[r])
	}

	nnz := indptr[rows]
	if nnz != int64(nValues) {
		return fmt.Errorf("%w: csr indptr[%d] = %d but %d values given", ErrShapeMismatch, rows, nnz, nValues)
	}
	if len(indices) != nValues {
		return fmt.Errorf("%w: csr has %d values but %d column indices", ErrShapeMismatch, nValues, len(indices))
	}

	for k, c := range indices {
		if c < 0 || c >= int64(cols) {
			return fmt.Errorf("%w: csr indices[%d] = %d out of range [0, %d)", ErrInvalidIndex, k, c, cols)
		}
	}
	return nil
}

// validateRowSparse checks the row-sparse invariants:
//
//	denseShape == (rows, cols), sparseShape == (len(indices), cols)
//	nValues == len(indices) * cols
//	indices strictly increasing, each in [0, rows)
func validateRowSparse(denseShape Shape, nValues int, sparseShape Shape, indices []int64) error {
	rows, cols, err := denseShape.matrixDims()
	if err != nil {
		return fmt.Errorf("row_sparse dense shape: %w", err)
	}
	if err := denseShape.Validate(); err != nil {
		return fmt.Errorf("row_sparse dense shape: %w", err)
	}
	nnzRows, sparseCols, err := sparseShape.matrixDims()
	if err != nil {
		return fmt.Errorf("row_sparse sparse shape: %w", err)
	}
	if err := sparseShape.Validate(); err != nil {
		return fmt.Errorf("row_sparse sparse shape: %w", err)
	}

	if sparseCols != cols {
		return fmt.Errorf("%w: row_sparse sparse shape %v has %d columns, dense shape %v has %d",
			ErrShapeMismatch, sparseShape, sparseCols, denseShape, cols)
	}
	if nnzRows != len(indices) {
		return fmt.Errorf("%w: row_sparse sparse shape %v declares %d rows, got %d row indices",
			ErrShapeMismatch, sparseShape, nnzRows, len(indices))
	}
	if want := len(indices) * cols; nValues != want {
		return fmt.Errorf("%w: row_sparse needs %d values (%d rows x %d cols), got %d",
			ErrShapeMismatch, want, len(indices), cols, nValues)
	}

	for j, r := range indices {
		if r < 0 || r >= int64(rows) {
			return fmt.Errorf("%w: row_sparse indices[%d] = %d out of range [0, %d)", ErrInvalidIndex, j, r, rows)
		}
		if j > 0 && r <= indices[j-1] {
			return fmt.Errorf("%w: row_sparse indices not strictly increasing at %d (%d after %d)",
				ErrInvalidIndex, j, r, indices[j-1])
		}
	}
	return nil
}

// firstDescent returns the first position i with s[i] < s[i-1], or 0.
func firstDescent(s []int64) int {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return i
		}
	}
	return 0
}
