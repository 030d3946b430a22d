package ndarray

import (
	"errors"
	"math"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{10}, 10},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
		{Shape{3, 0}, 0},
		{Shape{0}, 0},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{3, 0}).Validate(); err != nil {
		t.Errorf("zero dimension should be valid, got %v", err)
	}
	if err := (Shape{}).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty shape: got %v, want ErrInvalidArgument", err)
	}
	if err := (Shape{2, -1}).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative dimension: got %v, want ErrInvalidArgument", err)
	}
}

func TestShapeValidateOverflow(t *testing.T) {
	tests := []struct {
		shape   Shape
		wantErr bool
	}{
		{Shape{1 << 32, 1 << 32}, true},
		{Shape{1 << 33, 1 << 31, 3}, true},
		{Shape{math.MaxInt, 2}, true},
		{Shape{math.MaxInt, 1}, false},
		{Shape{1 << 40, 1 << 40, 0}, false},
		{Shape{1 << 20, 1 << 20}, false},
	}
	for _, tt := range tests {
		err := tt.shape.Validate()
		if tt.wantErr && !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v.Validate() = %v, want ErrInvalidArgument", tt.shape, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%v.Validate() = %v, want nil", tt.shape, err)
		}
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("Clone should not share memory with the original")
	}
	if !s.Equal(Shape{2, 3}) || s.Equal(Shape{2, 3, 1}) {
		t.Error("Equal gave wrong result")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{3, 4}).String(); got != "(3, 4)" {
		t.Errorf("String() = %q, want %q", got, "(3, 4)")
	}
}

func TestFormatParse(t *testing.T) {
	for name, want := range map[string]Format{"csr": CSR, "CSR": CSR, "row_sparse": RowSparse, "dense": Dense, " Dense ": Dense} {
		got, err := ParseFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	for _, name := range []string{"coo", "default", "rowsparse"} {
		if _, err := ParseFormat(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ParseFormat(%q): got %v, want ErrUnsupportedFormat", name, err)
		}
	}
	if Dense.IsSparse() || !CSR.IsSparse() || !RowSparse.IsSparse() {
		t.Error("IsSparse gave wrong result")
	}
	if Format(42).String() != "unknown" {
		t.Errorf("unknown format String() = %q", Format(42).String())
	}
}
