package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// Shape represents the dimensions of an array.
// A valid shape has rank >= 1 and no negative dimensions.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// Any zero dimension yields zero elements. The result is only meaningful for
// shapes that pass Validate.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// checkedNumElements is NumElements with overflow detection.
func (s Shape) checkedNumElements() (int, error) {
	for _, dim := range s {
		if dim == 0 {
			return 0, nil
		}
	}
	n := 1
	for _, dim := range s {
		if n > math.MaxInt/dim {
			return 0, fmt.Errorf("%w: shape %v has more than %d elements", ErrInvalidArgument, s, math.MaxInt)
		}
		n *= dim
	}
	return n, nil
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that the shape has at least one dimension, that every
// dimension is non-negative, and that the element count fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: shape must have rank >= 1", ErrInvalidArgument)
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidArgument, i, dim)
		}
	}
	_, err := s.checkedNumElements()
	return err
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String renders the shape as "(d0, d1, ...)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// matrixDims returns rows and cols of a rank-2 shape.
func (s Shape) matrixDims() (rows, cols int, err error) {
	if s.Rank() != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2-D shape, got %v", ErrShapeMismatch, s)
	}
	return s[0], s[1], nil
}
