package cliffgo

import (
	"fmt"

	"github.com/hupe1980/cliffgo/codec"
	"github.com/hupe1980/cliffgo/internal/bitmask"
	"github.com/hupe1980/cliffgo/signature"
)

// Algebra binds a signature to construction and encoding options.
//
// It is a convenience layer over Create and BasisVector; multivectors it
// returns are ordinary values and interoperate with any other multivector of
// the same signature type.
type Algebra[S signature.Signature] struct {
	sig    S
	codec  codec.Codec
	logger *Logger
}

// New returns an Algebra over sig.
func New[S signature.Signature](sig S, optFns ...Option) *Algebra[S] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	c := opts.codec
	if opts.compression != codec.CompressionNone {
		c = codec.Compressed{Codec: c, Compression: opts.compression}
	}

	return &Algebra[S]{
		sig:    sig,
		codec:  c,
		logger: opts.logger.
			WithSignature(sig.String()).
			WithDimension(min(sig.MaxDimension(), bitmask.Width)).
			WithCodec(c.Name()),
	}
}

// Signature returns the algebra's signature.
func (a *Algebra[S]) Signature() S {
	return a.sig
}

// Dimension returns the number of usable basis vectors.
func (a *Algebra[S]) Dimension() int {
	return min(a.sig.MaxDimension(), bitmask.Width)
}

// Codec returns the codec used by Encode and Decode.
func (a *Algebra[S]) Codec() codec.Codec {
	return a.codec
}

// Create builds a multivector from blades. See Create.
func (a *Algebra[S]) Create(blades ...Blade) Multivector[S] {
	return Create(a.sig, blades...)
}

// Scalar returns the grade-0 multivector s. Zero yields the empty multivector.
func (a *Algebra[S]) Scalar(s float32) Multivector[S] {
	return Create(a.sig, Blade{Coefficient: s})
}

// BasisVector returns e_i. See BasisVector.
func (a *Algebra[S]) BasisVector(i int) (Multivector[S], error) {
	m, err := BasisVector(a.sig, i)
	a.logger.LogBasisVector(i, err)
	return m, err
}

// Basis returns e_0 … e_{n-1}.
func (a *Algebra[S]) Basis() []Multivector[S] {
	basis := make([]Multivector[S], a.Dimension())
	for i := range basis {
		basis[i] = MustBasisVector(a.sig, i)
	}
	return basis
}

// Pseudoscalar returns the ordered product e_0 * e_1 * … * e_{n-1}.
func (a *Algebra[S]) Pseudoscalar() Multivector[S] {
	result := a.Scalar(1)
	for _, e := range a.Basis() {
		result = result.Mul(e)
	}
	return result
}

// Encode serializes m with the configured codec.
func (a *Algebra[S]) Encode(m Multivector[S]) ([]byte, error) {
	wire := codec.Multivector{
		Signature: a.sig.String(),
		Blades:    make([]codec.Blade, len(m.blades)),
	}
	for i, b := range m.blades {
		wire.Blades[i] = codec.Blade{Coefficient: b.Coefficient, Mask: b.Mask}
	}

	data, err := a.codec.Marshal(&wire)
	a.logger.LogEncode(len(wire.Blades), len(data), err)
	if err != nil {
		return nil, fmt.Errorf("encode with %s: %w", a.codec.Name(), err)
	}
	return data, nil
}

// Decode reverses Encode.
//
// Blades are restored exactly, including order and zero coefficients.
// The recorded signature may differ in name as long as it has the same
// dimension and squares; otherwise Decode yields *ErrSignatureMismatch.
// Masks outside the algebra yield *ErrMaskOutOfRange.
func (a *Algebra[S]) Decode(data []byte) (Multivector[S], error) {
	m, err := a.decode(data)
	a.logger.LogDecode(len(data), m.Len(), err)
	return m, err
}

func (a *Algebra[S]) decode(data []byte) (Multivector[S], error) {
	if len(data) == 0 {
		return Multivector[S]{}, ErrNilData
	}

	var wire codec.Multivector
	if err := a.codec.Unmarshal(data, &wire); err != nil {
		return Multivector[S]{}, &ErrDecode{Codec: a.codec.Name(), cause: err}
	}
	recorded, err := signature.Parse(wire.Signature)
	if err != nil || !signature.Equivalent(recorded, a.sig) {
		return Multivector[S]{}, &ErrSignatureMismatch{
			Expected: a.sig.String(),
			Actual:   wire.Signature,
			cause:    err,
		}
	}

	m := Multivector[S]{sig: a.sig, blades: make([]Blade, 0, len(wire.Blades))}
	seen := make(map[uint64]struct{}, len(wire.Blades))
	for _, b := range wire.Blades {
		if _, dup := seen[b.Mask]; dup {
			return Multivector[S]{}, &ErrDecode{
				Codec: a.codec.Name(),
				cause: fmt.Errorf("duplicate blade mask %d", b.Mask),
			}
		}
		seen[b.Mask] = struct{}{}
		m.blades = append(m.blades, Blade{Coefficient: b.Coefficient, Mask: b.Mask})
	}

	if err := m.Validate(); err != nil {
		return Multivector[S]{}, err
	}
	return m, nil
}
