// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides immutable dense and sparse arrays and the
// factory operations that create them.
//
// # Overview
//
// This package provides:
//   - Dense generators: Create, Zeros, Ones, Full, Arange, Eye, Linspace
//   - Sparse builders: CreateCSR, CreateRowSparse
//   - Conversion between dense and sparse layouts (ToSparse, ToDense)
//   - Lossless flattening of any array to row-major float32 (ToFloatArray)
//
// # Basic Usage
//
//	import "github.com/born-ml/ndkit/ndarray"
//
//	func main() {
//	    m := ndarray.NewManager(ndarray.DefaultConfig())
//	    defer m.Close()
//
//	    // [[7 0 8 0]
//	    //  [0 0 0 0]
//	    //  [0 9 0 0]]
//	    csr, err := m.CreateCSR(ndarray.Shape{3, 4},
//	        []float32{7, 8, 9}, []int64{0, 2, 2, 3}, []int64{0, 2, 1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    flat := csr.ToFloatArray() // [7 0 8 0 0 0 0 0 0 9 0 0]
//	}
//
// # Formats
//
// An array is stored in exactly one of three formats:
//   - Dense: product(shape) values, row-major
//   - CSR: values, row pointers (indptr) and column indices for a 2-D matrix
//   - RowSparse: the nonzero rows of a 2-D matrix plus their row ids
//
// Constructors validate every index array before allocating anything. A
// failed call returns an error matching one of ErrShapeMismatch,
// ErrInvalidIndex, ErrInvalidArgument or ErrUnsupportedFormat and produces
// no array. Input buffers are always copied.
//
// # Memory Management
//
// Arrays belong to the Manager that created them. Closing a Manager releases
// all of its arrays and sub-managers. Storage is reference-counted, so an
// array converted to its own format shares its buffers instead of copying.
//
// Arrays are immutable: concurrent reads need no locking.
package ndarray
