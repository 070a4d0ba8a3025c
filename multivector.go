package cliffgo

import (
	"math/bits"
	"strings"

	"github.com/hupe1980/cliffgo/internal/bitmask"
	"github.com/hupe1980/cliffgo/signature"
)

// Multivector is a sum of blades with unique masks in the algebra with
// signature S.
//
// Multivectors are immutable values: every operation returns a new
// Multivector and never modifies its operands. Binary operations produce a
// result in the receiver's signature.
//
// Blade order is insertion order. It is visible through Blades and String but
// carries no meaning.
type Multivector[S signature.Signature] struct {
	sig    S
	blades []Blade
}

// Create builds a multivector from blades, merging them in order.
//
// Blades with a coefficient of exactly zero are skipped. Blades sharing a mask
// are summed into the first one; a sum that cancels to zero keeps its blade.
func Create[S signature.Signature](sig S, blades ...Blade) Multivector[S] {
	m := Multivector[S]{sig: sig}
	for _, b := range blades {
		m.insert(b.Coefficient, b.Mask)
	}
	return m
}

// BasisVector returns the unit blade e_i.
//
// It returns *ErrIndexOutOfRange if i is negative, not below
// sig.MaxDimension(), or beyond the 64-bit mask width.
func BasisVector[S signature.Signature](sig S, i int) (Multivector[S], error) {
	dim := min(sig.MaxDimension(), bitmask.Width)
	mask, ok := bitmask.Bit(i)
	if !ok || i >= dim {
		return Multivector[S]{}, &ErrIndexOutOfRange{Index: i, Dimension: dim}
	}
	return Create(sig, Blade{Coefficient: 1, Mask: mask}), nil
}

// MustBasisVector is like BasisVector but panics on error.
func MustBasisVector[S signature.Signature](sig S, i int) Multivector[S] {
	m, err := BasisVector(sig, i)
	if err != nil {
		panic(err)
	}
	return m
}

// insert merges a single blade into m. Only used while m is being built.
func (m *Multivector[S]) insert(coeff float32, mask uint64) {
	if coeff == 0 {
		return
	}
	for i := range m.blades {
		if m.blades[i].Mask == mask {
			m.blades[i].Coefficient += coeff
			return
		}
	}
	m.blades = append(m.blades, Blade{Coefficient: coeff, Mask: mask})
}

func (m Multivector[S]) clone() Multivector[S] {
	return Multivector[S]{
		sig:    m.sig,
		blades: append([]Blade(nil), m.blades...),
	}
}

// Signature returns the signature the multivector lives in.
func (m Multivector[S]) Signature() S {
	return m.sig
}

// Blades returns a copy of the blades in insertion order.
func (m Multivector[S]) Blades() []Blade {
	return append([]Blade(nil), m.blades...)
}

// Len returns the number of stored blades, including blades whose
// coefficient cancelled to zero.
func (m Multivector[S]) Len() int {
	return len(m.blades)
}

// IsZero reports whether every coefficient is zero.
func (m Multivector[S]) IsZero() bool {
	for _, b := range m.blades {
		if b.Coefficient != 0 {
			return false
		}
	}
	return true
}

// Add returns m + o.
func (m Multivector[S]) Add(o Multivector[S]) Multivector[S] {
	result := m.clone()
	for _, b := range o.blades {
		result.insert(b.Coefficient, b.Mask)
	}
	return result
}

// Sub returns m - o.
func (m Multivector[S]) Sub(o Multivector[S]) Multivector[S] {
	result := m.clone()
	for _, b := range o.blades {
		result.insert(-b.Coefficient, b.Mask)
	}
	return result
}

// Scale returns m * s.
func (m Multivector[S]) Scale(s float32) Multivector[S] {
	result := Multivector[S]{sig: m.sig}
	for _, b := range m.blades {
		result.insert(s*b.Coefficient, b.Mask)
	}
	return result
}

// ScalarMul returns s * m. Scalars commute with everything, so this equals
// m.Scale(s).
func ScalarMul[S signature.Signature](s float32, m Multivector[S]) Multivector[S] {
	return m.Scale(s)
}

// Mul returns the geometric product m * o.
func (m Multivector[S]) Mul(o Multivector[S]) Multivector[S] {
	result := Multivector[S]{sig: m.sig}
	for _, a := range m.blades {
		for _, b := range o.blades {
			coeff := a.Coefficient * b.Coefficient * productSign(m.sig, a.Mask, b.Mask)
			result.insert(coeff, a.Mask^b.Mask)
		}
	}
	return result
}

// productSign returns the sign of the product of the unit blades a and b.
//
// The parity is the reordering parity of the factors, flipped once for every
// shared basis vector whose square is not +1. Degenerate (zero) squares flip
// like negative ones; the product is kept rather than annihilated.
func productSign[S signature.Signature](sig S, a, b uint64) float32 {
	parity := bitmask.ReorderParity(a, b)
	for shared := a & b; shared != 0; shared &= shared - 1 {
		if sig.Value(bits.TrailingZeros64(shared)) != 1 {
			parity ^= 1
		}
	}
	if parity == 0 {
		return 1
	}
	return -1
}

// Reverse returns the reversion of m: each blade's factor order is reversed,
// which negates grades 2 and 3 (mod 4). The metric is not consulted.
func (m Multivector[S]) Reverse() Multivector[S] {
	result := Multivector[S]{sig: m.sig}
	for _, b := range m.blades {
		coeff := b.Coefficient
		if bitmask.ReverseParity(b.Grade()) == 1 {
			coeff = -coeff
		}
		result.insert(coeff, b.Mask)
	}
	return result
}

// Commutator returns a*b - b*a.
func Commutator[S signature.Signature](a, b Multivector[S]) Multivector[S] {
	return a.Mul(b).Sub(b.Mul(a))
}

// Anticommutator returns a*b + b*a.
func Anticommutator[S signature.Signature](a, b Multivector[S]) Multivector[S] {
	return a.Mul(b).Add(b.Mul(a))
}

// Equal reports whether m and o denote the same element.
//
// Blade order is ignored, and so are blades with a zero coefficient.
// Coefficients are compared exactly.
func (m Multivector[S]) Equal(o Multivector[S]) bool {
	return containsAll(m.blades, o.blades) && containsAll(o.blades, m.blades)
}

// containsAll reports whether every non-zero blade of a appears in b with the
// same coefficient. Masks are unique within each slice.
func containsAll(a, b []Blade) bool {
	for _, x := range a {
		if x.Coefficient == 0 {
			continue
		}
		found := false
		for _, y := range b {
			if y.Mask == x.Mask {
				found = y.Coefficient == x.Coefficient
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Validate returns *ErrMaskOutOfRange if a blade uses a basis index outside
// the signature.
func (m Multivector[S]) Validate() error {
	dim := min(m.sig.MaxDimension(), bitmask.Width)
	for _, b := range m.blades {
		if bitmask.Highest(b.Mask) >= dim {
			return &ErrMaskOutOfRange{Mask: b.Mask, Dimension: dim}
		}
	}
	return nil
}

// String renders one blade per line, without a trailing newline.
func (m Multivector[S]) String() string {
	var sb strings.Builder
	for i, b := range m.blades {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}
