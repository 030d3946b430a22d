package ndarray

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCloseReleasesArrays(t *testing.T) {
	m := NewManager(DefaultConfig())
	a, err := m.Ones(Shape{2, 2})
	require.NoError(t, err)
	b, err := a.ToSparse(CSR)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	m.Close()
	assert.True(t, m.IsClosed())
	assert.True(t, a.IsReleased())
	assert.True(t, b.IsReleased())
	assert.Equal(t, 0, m.Len())

	// Idempotent.
	m.Close()
}

func TestManagerClosedRejectsAllocation(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Close()

	_, err := m.Ones(Shape{2})
	require.ErrorIs(t, err, ErrManagerClosed)
	_, err = m.CreateCSR(Shape{1, 1}, []float32{1}, []int64{0, 1}, []int64{0})
	require.ErrorIs(t, err, ErrManagerClosed)
	_, err = m.NewSubManager()
	require.ErrorIs(t, err, ErrManagerClosed)
}

func TestManagerValidationRunsFirst(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Close()

	// Invalid input is reported as such even on a closed manager.
	_, err := m.CreateCSR(Shape{3, 4}, []float32{7, 8, 9}, []int64{1, 2, 2, 3}, []int64{0, 2, 1})
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestSubManager(t *testing.T) {
	m := NewManager(DefaultConfig())
	sub, err := m.NewSubManager()
	require.NoError(t, err)
	assert.Equal(t, "base/0", sub.Config().Name)

	outer, err := m.Eye(2)
	require.NoError(t, err)
	inner, err := sub.Eye(2)
	require.NoError(t, err)

	sub.Close()
	assert.True(t, inner.IsReleased())
	assert.False(t, outer.IsReleased())

	sub2, err := m.NewSubManager()
	require.NoError(t, err)
	assert.Equal(t, "base/1", sub2.Config().Name)
	nested, err := sub2.ArangeN(3)
	require.NoError(t, err)

	m.Close()
	assert.True(t, sub2.IsClosed())
	assert.True(t, nested.IsReleased())
	assert.True(t, outer.IsReleased())
}

func TestArrayReleaseDetaches(t *testing.T) {
	m := newTestManager(t)
	a, err := m.ArangeN(5)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	a.Release()
	a.Release()
	assert.True(t, a.IsReleased())
	assert.Equal(t, 0, m.Len())
	assert.Contains(t, a.String(), "released")

	assert.Panics(t, func() { a.ToFloatArray() })
	assert.Panics(t, func() { _, _ = a.ToSparse(CSR) })
}

func TestConversionKeepsSourceAlive(t *testing.T) {
	m := newTestManager(t)
	a, err := m.Ones(Shape{2, 3})
	require.NoError(t, err)

	d, err := a.ToDense()
	require.NoError(t, err)
	a.Release()

	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1}, d.ToFloatArray())
}

func TestManagerMaxElements(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Name = "small"
	cfg.MaxElements = 8
	m := NewManager(cfg)
	defer m.Close()

	_, err := m.Ones(Shape{2, 4})
	require.NoError(t, err)

	_, err = m.Ones(Shape{3, 3})
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "small")

	_, err = m.Linspace(0, 1, 9)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Sparse arrays are charged for stored values only.
	csr, err := m.CreateCSR(Shape{100, 100}, []float32{1}, append([]int64{0}, filledIndex(100, 1)...), []int64{5})
	require.NoError(t, err)
	_, err = csr.ToDense()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConcurrentCreationAndReads(t *testing.T) {
	m := newTestManager(t)
	shared, err := m.CreateCSR(Shape{3, 4}, []float32{7, 8, 9}, []int64{0, 2, 2, 3}, []int64{0, 2, 1})
	require.NoError(t, err)
	want := shared.ToFloatArray()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !assert.Equal(t, want, shared.ToFloatArray()) {
				return
			}
			a, err := m.Eye(4)
			if err != nil {
				errs <- err
				return
			}
			if _, err := a.ToSparse(RowSparse); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 33, m.Len())
}

func TestManagerString(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Zeros(Shape{1})
	require.NoError(t, err)
	assert.Equal(t, "Manager(base, arrays=1)", m.String())
}

// filledIndex returns n copies of v.
func filledIndex(n int, v int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
