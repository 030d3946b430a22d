package ndarray

import "errors"

// Sentinel errors returned by array constructors and conversions.
// Call sites wrap them with context; callers match with errors.Is.
var (
	// ErrShapeMismatch indicates that a buffer or index array length disagrees
	// with the declared shape or nnz.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrInvalidIndex indicates an index value outside its declared bounds, or
	// an ordering violation in indptr or row indices.
	ErrInvalidIndex = errors.New("ndarray: invalid index")

	// ErrInvalidArgument indicates a negative count, a non-positive dimension
	// where one is required, or a non-finite generator parameter.
	ErrInvalidArgument = errors.New("ndarray: invalid argument")

	// ErrUnsupportedFormat indicates an unknown or inapplicable conversion target.
	ErrUnsupportedFormat = errors.New("ndarray: unsupported format")

	// ErrManagerClosed is returned when allocating on a closed Manager.
	ErrManagerClosed = errors.New("ndarray: manager is closed")
)
