package ndarray

import (
	"math/rand"
	"testing"
)

// Benchmarks for construction and conversion paths.

func benchmarkDense(b *testing.B, rows, cols int, density float64) *NDArray {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	data := make([]float32, rows*cols)
	for i := range data {
		if rng.Float64() < density {
			data[i] = rng.Float32()
		}
	}
	m := NewManager(DefaultConfig())
	b.Cleanup(m.Close)
	a, err := m.Create(Shape{rows, cols}, data)
	if err != nil {
		b.Fatal(err)
	}
	return a
}

func BenchmarkToSparseCSR_256x256(b *testing.B) {
	a := benchmarkDense(b, 256, 256, 0.05)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := a.ToSparse(CSR)
		if err != nil {
			b.Fatal(err)
		}
		s.Release()
	}
}

func BenchmarkToSparseRowSparse_256x256(b *testing.B) {
	a := benchmarkDense(b, 256, 256, 0.001)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := a.ToSparse(RowSparse)
		if err != nil {
			b.Fatal(err)
		}
		s.Release()
	}
}

func BenchmarkCSRToFloatArray_256x256(b *testing.B) {
	a := benchmarkDense(b, 256, 256, 0.05)
	s, err := a.ToSparse(CSR)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.ToFloatArray()
	}
}

func BenchmarkCreateCSR(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	values, indptr, indices := randomCSR(rng, 512, 512, 0.02)
	m := NewManager(DefaultConfig())
	defer m.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := m.CreateCSR(Shape{512, 512}, values, indptr, indices)
		if err != nil {
			b.Fatal(err)
		}
		a.Release()
	}
}

func BenchmarkEye_512(b *testing.B) {
	m := NewManager(DefaultConfig())
	defer m.Close()
	for i := 0; i < b.N; i++ {
		a, err := m.Eye(512)
		if err != nil {
			b.Fatal(err)
		}
		a.Release()
	}
}
