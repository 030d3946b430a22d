// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndkit/internal/ndarray"
)

// Type aliases for public API

// Shape represents the dimensions of an array.
// Example: Shape{3, 4} is a matrix with 3 rows and 4 columns.
type Shape = ndarray.Shape

// Format is the storage layout of an array.
type Format = ndarray.Format

// Format constants.
const (
	Dense     Format = ndarray.Dense
	CSR       Format = ndarray.CSR
	RowSparse Format = ndarray.RowSparse
)

// NDArray is an immutable dense or sparse array.
//
// Every NDArray, whatever its format, flattens to a row-major dense slice
// with ToFloatArray. Arrays are created by a Manager and released by it.
type NDArray = ndarray.NDArray

// Manager owns arrays and releases them when closed.
type Manager = ndarray.Manager

// Config controls allocation behavior of a Manager.
type Config = ndarray.Config

// EyeOption configures Manager.Eye.
type EyeOption = ndarray.EyeOption

// LinspaceOption configures Manager.Linspace.
type LinspaceOption = ndarray.LinspaceOption

// Errors returned by constructors and conversions. Match with errors.Is.
var (
	ErrShapeMismatch     = ndarray.ErrShapeMismatch
	ErrInvalidIndex      = ndarray.ErrInvalidIndex
	ErrInvalidArgument   = ndarray.ErrInvalidArgument
	ErrUnsupportedFormat = ndarray.ErrUnsupportedFormat
	ErrManagerClosed     = ndarray.ErrManagerClosed
)

// NewManager creates a root Manager.
//
// Example:
//
//	m := ndarray.NewManager(ndarray.DefaultConfig())
//	defer m.Close()
func NewManager(cfg Config) *Manager {
	return ndarray.NewManager(cfg)
}

// DefaultConfig returns the configuration of a root manager with no element cap.
func DefaultConfig() Config {
	return ndarray.DefaultConfig()
}

// ParseFormat maps "dense", "csr" or "row_sparse" to a Format.
func ParseFormat(name string) (Format, error) {
	return ndarray.ParseFormat(name)
}

// WithCols sets the number of columns of an Eye matrix.
func WithCols(cols int) EyeOption {
	return ndarray.WithCols(cols)
}

// WithOffset shifts the diagonal of an Eye matrix.
func WithOffset(offset int) EyeOption {
	return ndarray.WithOffset(offset)
}

// WithEndpoint controls whether Linspace includes its end value.
func WithEndpoint(endpoint bool) LinspaceOption {
	return ndarray.WithEndpoint(endpoint)
}
