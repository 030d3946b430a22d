package ndarray

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// element is the set of types a storage buffer can hold:
// float32 values and int64 indices in practice.
type element interface {
	constraints.Float | constraints.Integer
}

// buffer is a reference-counted contiguous slice.
// Arrays never mutate a buffer after construction, so one buffer may back
// several handles; it is freed when the last of them releases it.
type buffer[T element] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer allocates a zeroed buffer of n elements with refCount = 1.
func newBuffer[T element](n int) *buffer[T] {
	return adoptBuffer(make([]T, n))
}

// copyBuffer allocates a buffer holding a private copy of src.
// No reference to src survives the call.
func copyBuffer[T element](src []T) *buffer[T] {
	return adoptBuffer(cloneSlice(src))
}

// adoptBuffer wraps data, which the caller must not retain, with refCount = 1.
func adoptBuffer[T element](data []T) *buffer[T] {
	buf := &buffer[T]{data: data}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count.
func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the data when it reaches 0.
func (b *buffer[T]) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if exactly one handle references the buffer.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}

// len returns the number of stored elements.
func (b *buffer[T]) len() int {
	return len(b.data)
}

// cloneSlice returns a non-nil copy of src.
func cloneSlice[T element](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}
