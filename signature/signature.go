package signature

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDimension is the largest dimension a blade mask can address.
const MaxDimension = 64

// Signature describes the bilinear form of an algebra.
// Implementations must be immutable and safe for concurrent use.
type Signature interface {
	// MaxDimension returns the number of basis vectors.
	MaxDimension() int
	// Value returns the square of basis vector i.
	Value(i int) int
	// String returns a stable name that Parse understands.
	String() string
}

// ErrInvalidDimension indicates an unsupported number of basis vectors.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid signature dimension: %d (must be 1..%d)", e.Dimension, MaxDimension)
}

// ErrInvalidValue indicates a table entry outside {-1, 0, +1}.
type ErrInvalidValue struct {
	Index int
	Value int
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid signature value %d at index %d", e.Value, e.Index)
}

// Euclidean is a signature in which every basis vector squares to +1.
type Euclidean struct {
	dim int
}

// NewEuclidean returns a Euclidean signature with dim basis vectors.
func NewEuclidean(dim int) (Euclidean, error) {
	if dim < 1 || dim > MaxDimension {
		return Euclidean{}, &ErrInvalidDimension{Dimension: dim}
	}
	return Euclidean{dim: dim}, nil
}

// MustEuclidean is like NewEuclidean but panics on error.
func MustEuclidean(dim int) Euclidean {
	s, err := NewEuclidean(dim)
	if err != nil {
		panic(err)
	}
	return s
}

// MaxDimension returns the number of basis vectors.
func (s Euclidean) MaxDimension() int { return s.dim }

// Value returns 1 for every index.
//
// The index is not bounded here; basis construction enforces the bound.
func (Euclidean) Value(int) int { return 1 }

func (s Euclidean) String() string {
	return fmt.Sprintf("euclidean(%d)", s.dim)
}

// Table is a signature backed by an explicit list of squares.
//
// All tables share one Go type, so Multivector[Table] values built over
// different tables (e.g. Minkowski and NewTable(1, -1, -1, -1)) type-check
// together. Mixed operations silently use the receiver's table; callers must
// keep such multivectors apart or compare them with Equivalent.
type Table struct {
	values []int
	name   string
}

// NewTable returns a signature whose i-th basis vector squares to values[i].
func NewTable(values ...int) (Table, error) {
	if len(values) < 1 || len(values) > MaxDimension {
		return Table{}, &ErrInvalidDimension{Dimension: len(values)}
	}
	for i, v := range values {
		if v < -1 || v > 1 {
			return Table{}, &ErrInvalidValue{Index: i, Value: v}
		}
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return Table{
		values: append([]int(nil), values...),
		name:   "table(" + strings.Join(parts, ",") + ")",
	}, nil
}

// MaxDimension returns the number of table entries.
func (s Table) MaxDimension() int { return len(s.values) }

// Value returns the square of basis vector i.
// It panics if i is outside the table.
func (s Table) Value(i int) int {
	if i < 0 || i >= len(s.values) {
		panic(fmt.Sprintf("signature: index %d outside of %s", i, s.name))
	}
	return s.values[i]
}

func (s Table) String() string { return s.name }

// Minkowski returns the fixed four-dimensional table {1, 0, 0, 0}.
//
// Entries 1..3 are degenerate: those basis vectors square to zero.
func Minkowski() Table {
	return Table{
		values: []int{1, 0, 0, 0},
		name:   "minkowski",
	}
}

// Equivalent reports whether a and b have the same dimension and square every
// basis vector to the same value.
func Equivalent(a, b Signature) bool {
	dim := a.MaxDimension()
	if dim != b.MaxDimension() {
		return false
	}
	for i := range min(dim, MaxDimension) {
		if a.Value(i) != b.Value(i) {
			return false
		}
	}
	return true
}

// Parse returns the signature named by s, as produced by String.
func Parse(s string) (Signature, error) {
	switch {
	case s == "minkowski":
		return Minkowski(), nil
	case strings.HasPrefix(s, "euclidean(") && strings.HasSuffix(s, ")"):
		dim, err := strconv.Atoi(s[len("euclidean(") : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("parse signature %q: %w", s, err)
		}
		return NewEuclidean(dim)
	case strings.HasPrefix(s, "table(") && strings.HasSuffix(s, ")"):
		fields := strings.Split(s[len("table("):len(s)-1], ",")
		values := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("parse signature %q: %w", s, err)
			}
			values[i] = v
		}
		return NewTable(values...)
	default:
		return nil, fmt.Errorf("unknown signature %q", s)
	}
}
