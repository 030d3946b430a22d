package ndarray

// CreateCSR builds a compressed sparse row matrix of the given 2-D shape.
// Row r holds values[indptr[r]:indptr[r+1]] at the columns listed in the same
// range of indices. All three slices are copied; the caller keeps ownership
// of its buffers.
//
// Example:
//
//	// [[7 0 8 0]
//	//  [0 0 0 0]
//	//  [0 9 0 0]]
//	a, err := m.CreateCSR(ndarray.Shape{3, 4},
//	    []float32{7, 8, 9}, []int64{0, 2, 2, 3}, []int64{0, 2, 1})
func (m *Manager) CreateCSR(shape Shape, values []float32, indptr, indices []int64) (*NDArray, error) {
	if err := validateCSR(shape, len(values), indptr, indices); err != nil {
		return nil, err
	}
	if err := m.checkAlloc(len(values)); err != nil {
		return nil, err
	}

	s := &csrStorage{
		values:  copyBuffer(values),
		indptr:  copyBuffer(indptr),
		indices: copyBuffer(indices),
	}
	return m.adopt(CSR, shape, s)
}

// CreateRowSparse builds a row-sparse matrix of dense shape (rows, cols).
// values holds sparseShape = (len(indices), cols) elements row-major; row j of
// values becomes dense row indices[j]. indices must be strictly increasing.
// Rows not listed are zero.
//
// Example:
//
//	// [[1 2] [3 4] [0 0] [5 6]]
//	a, err := m.CreateRowSparse(ndarray.Shape{4, 2},
//	    []float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{3, 2}, []int64{0, 1, 3})
func (m *Manager) CreateRowSparse(denseShape Shape, values []float32, sparseShape Shape, indices []int64) (*NDArray, error) {
	if err := validateRowSparse(denseShape, len(values), sparseShape, indices); err != nil {
		return nil, err
	}
	if err := m.checkAlloc(len(values)); err != nil {
		return nil, err
	}

	s := &rowSparseStorage{
		values:  copyBuffer(values),
		indices: copyBuffer(indices),
	}
	return m.adopt(RowSparse, denseShape, s)
}
