package cliffgo

import (
	"strconv"

	"github.com/hupe1980/cliffgo/internal/bitmask"
)

// Blade is a scaled wedge product of basis vectors.
//
// Bit i of Mask set means e_i is a factor; factors are ordered by increasing
// index. The zero mask is the scalar blade.
type Blade struct {
	Coefficient float32
	Mask        uint64
}

// Grade returns the number of basis vectors in the blade.
func (b Blade) Grade() int {
	return bitmask.Grade(b.Mask)
}

// Indices returns the basis indices of the blade in increasing order.
func (b Blade) Indices() []int {
	return bitmask.Indices(b.Mask)
}

// String renders the blade as "<coefficient> * e(<mask>)".
//
// Coefficients use six significant digits, e.g. "0.333333 * e(5)".
func (b Blade) String() string {
	return strconv.FormatFloat(float64(b.Coefficient), 'g', 6, 32) +
		" * e(" + strconv.FormatUint(b.Mask, 10) + ")"
}
