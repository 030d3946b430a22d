// Package ndarray implements immutable dense and sparse arrays together with
// the factory operations that build them.
package ndarray

import (
	"fmt"
	"strings"
)

// Format is the storage layout of an NDArray.
type Format int

// Supported storage formats.
const (
	Dense Format = iota
	CSR
	RowSparse
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case Dense:
		return "dense"
	case CSR:
		return "csr"
	case RowSparse:
		return "row_sparse"
	default:
		return "unknown"
	}
}

// IsSparse reports whether the format is one of the sparse layouts.
func (f Format) IsSparse() bool {
	return f == CSR || f == RowSparse
}

// ParseFormat maps a format name (case-insensitive) to its Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dense":
		return Dense, nil
	case "csr":
		return CSR, nil
	case "row_sparse":
		return RowSparse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}
