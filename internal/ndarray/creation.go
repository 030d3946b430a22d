package ndarray

import (
	"fmt"
	"math"
)

// maxSequenceLength bounds the length computed by Arange so the float to int
// conversion cannot overflow.
const maxSequenceLength = math.MaxInt32

// Create returns a dense array holding a copy of data laid out row-major in shape.
//
// Example:
//
//	m := ndarray.NewManager(ndarray.DefaultConfig())
//	defer m.Close()
//	a, err := m.Create(ndarray.Shape{2, 2}, []float32{1, 0, 0, 1})
func (m *Manager) Create(shape Shape, data []float32) (*NDArray, error) {
	if err := validateDense(shape, len(data)); err != nil {
		return nil, err
	}
	if err := m.checkAlloc(len(data)); err != nil {
		return nil, err
	}
	return m.adopt(Dense, shape, &denseStorage{values: copyBuffer(data)})
}

// Zeros creates a dense array filled with zeros.
func (m *Manager) Zeros(shape Shape) (*NDArray, error) {
	return m.Full(shape, 0)
}

// Ones creates a dense array filled with ones.
//
// Example:
//
//	a, err := m.Ones(ndarray.Shape{3, 5})
func (m *Manager) Ones(shape Shape) (*NDArray, error) {
	return m.Full(shape, 1)
}

// Full creates a dense array filled with value.
func (m *Manager) Full(shape Shape, value float32) (*NDArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	if err := m.checkAlloc(n); err != nil {
		return nil, err
	}

	buf := newBuffer[float32](n)
	if !isZeroBits(value) {
		for i := range buf.data {
			buf.data[i] = value
		}
	}
	return m.adopt(Dense, shape, &denseStorage{values: buf})
}

// Arange creates a 1-D array with values start, start+step, ... while they
// stay below stop (step > 0) or above stop (step < 0). The length is
// ceil((stop-start)/step), or 0 when that is not positive.
//
// Example:
//
//	a, err := m.Arange(0, 10, 1) // [0, 1, 2, ..., 9]
func (m *Manager) Arange(start, stop, step float64) (*NDArray, error) {
	if !isFinite(start) || !isFinite(stop) || !isFinite(step) {
		return nil, fmt.Errorf("%w: arange(%v, %v, %v) has non-finite argument", ErrInvalidArgument, start, stop, step)
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: arange step must be non-zero", ErrInvalidArgument)
	}

	length := math.Ceil((stop - start) / step)
	if length > maxSequenceLength {
		return nil, fmt.Errorf("%w: arange(%v, %v, %v) would produce %.0f values",
			ErrInvalidArgument, start, stop, step, length)
	}
	n := 0
	if length > 0 {
		n = int(length)
	}
	if err := m.checkAlloc(n); err != nil {
		return nil, err
	}

	buf := newBuffer[float32](n)
	for i := range buf.data {
		buf.data[i] = float32(start + float64(i)*step)
	}
	return m.adopt(Dense, Shape{n}, &denseStorage{values: buf})
}

// ArangeN is Arange(0, n, 1).
func (m *Manager) ArangeN(n int) (*NDArray, error) {
	return m.Arange(0, float64(n), 1)
}

// Eye creates a rows x cols matrix with ones on a diagonal and zeros
// elsewhere. Element (i, i+offset) is 1 whenever it lies inside the matrix;
// an offset that moves the diagonal partly or fully outside leaves those
// positions at zero.
//
// Example:
//
//	a, err := m.Eye(3, ndarray.WithCols(4))               // 3x4, main diagonal
//	b, err := m.Eye(3, ndarray.WithOffset(-1))            // 3x3, sub-diagonal
func (m *Manager) Eye(rows int, opts ...EyeOption) (*NDArray, error) {
	o := gatherEyeOptions(rows, opts)
	if rows <= 0 || o.cols <= 0 {
		return nil, fmt.Errorf("%w: eye dimensions must be > 0, got (%d, %d)", ErrInvalidArgument, rows, o.cols)
	}
	shape := Shape{rows, o.cols}
	n, err := shape.checkedNumElements()
	if err != nil {
		return nil, fmt.Errorf("eye: %w", err)
	}
	if err := m.checkAlloc(n); err != nil {
		return nil, err
	}

	buf := newBuffer[float32](n)
	for i := 0; i < rows; i++ {
		j := i + o.offset
		if j < 0 || j >= o.cols {
			continue
		}
		buf.data[i*o.cols+j] = 1
	}
	return m.adopt(Dense, shape, &denseStorage{values: buf})
}

// Linspace creates a 1-D array of count evenly spaced values from start to
// end. With the endpoint included (the default) the spacing is
// (end-start)/(count-1) and both bounds appear exactly; without it the
// spacing is (end-start)/count and end is excluded.
//
// Example:
//
//	a, err := m.Linspace(0, 9, 10)                            // [0, 1, ..., 9]
//	b, err := m.Linspace(0, 1, 4, ndarray.WithEndpoint(false)) // [0, 0.25, 0.5, 0.75]
func (m *Manager) Linspace(start, end float64, count int, opts ...LinspaceOption) (*NDArray, error) {
	o := gatherLinspaceOptions(opts)
	if count < 0 {
		return nil, fmt.Errorf("%w: linspace count must be >= 0, got %d", ErrInvalidArgument, count)
	}
	if !isFinite(start) || !isFinite(end) {
		return nil, fmt.Errorf("%w: linspace(%v, %v) has non-finite bound", ErrInvalidArgument, start, end)
	}
	if err := m.checkAlloc(count); err != nil {
		return nil, err
	}

	buf := newBuffer[float32](count)
	switch {
	case count == 0:
	case o.endpoint && count == 1:
		buf.data[0] = float32(start)
	case o.endpoint:
		step := (end - start) / float64(count-1)
		for i := range buf.data {
			buf.data[i] = float32(start + float64(i)*step)
		}
		buf.data[count-1] = float32(end)
	default:
		step := (end - start) / float64(count)
		for i := range buf.data {
			buf.data[i] = float32(start + float64(i)*step)
		}
	}
	return m.adopt(Dense, Shape{count}, &denseStorage{values: buf})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
