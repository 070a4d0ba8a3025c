package cliffgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilData is returned when Decode is given no bytes.
	ErrNilData = errors.New("no data to decode")
)

// ErrIndexOutOfRange indicates a basis index outside the algebra.
type ErrIndexOutOfRange struct {
	Index     int
	Dimension int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("basis index %d out of range [0, %d)", e.Index, e.Dimension)
}

// ErrMaskOutOfRange indicates a blade mask that uses a basis index outside the
// algebra.
type ErrMaskOutOfRange struct {
	Mask      uint64
	Dimension int
}

func (e *ErrMaskOutOfRange) Error() string {
	return fmt.Sprintf("blade mask %#x exceeds dimension %d", e.Mask, e.Dimension)
}

// ErrSignatureMismatch indicates encoded data produced under a different
// signature.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSignatureMismatch struct {
	Expected string
	Actual   string
	cause    error
}

func (e *ErrSignatureMismatch) Error() string {
	return fmt.Sprintf("signature mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *ErrSignatureMismatch) Unwrap() error { return e.cause }

// ErrDecode indicates bytes that could not be decoded by the configured codec.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrDecode struct {
	Codec string
	cause error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode with %s: %v", e.Codec, e.cause)
}

func (e *ErrDecode) Unwrap() error { return e.cause }
