package cliffgo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliffgo/signature"
	"github.com/hupe1980/cliffgo/testutil"
)

func euclidean(t *testing.T, dim int) signature.Euclidean {
	t.Helper()
	sig, err := signature.NewEuclidean(dim)
	require.NoError(t, err)
	return sig
}

func randomMultivector[S signature.Signature](rng *testutil.RNG, sig S, n int) Multivector[S] {
	masks := make([]uint64, n)
	rng.FillMasks(masks, sig.MaxDimension())

	blades := make([]Blade, n)
	for i, mask := range masks {
		blades[i] = Blade{Coefficient: rng.IntCoefficient(3), Mask: mask}
	}
	return Create(sig, blades...)
}

func TestCreate_Merge(t *testing.T) {
	sig := euclidean(t, 3)

	tests := []struct {
		name   string
		blades []Blade
		want   []Blade
	}{
		{"Empty", nil, nil},
		{"Sum", []Blade{{1.5, 3}, {2, 3}}, []Blade{{3.5, 3}}},
		{"FirstZero", []Blade{{0, 3}, {2, 3}}, []Blade{{2, 3}}},
		{"SecondZero", []Blade{{2, 3}, {0, 3}}, []Blade{{2, 3}}},
		{"AllZero", []Blade{{0, 1}, {0, 2}}, nil},
		{"KeepsOrder", []Blade{{1, 4}, {1, 1}, {1, 4}}, []Blade{{2, 4}, {1, 1}}},
		{"Cancel", []Blade{{1, 5}, {-1, 5}}, []Blade{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Create(sig, tt.blades...)
			if diff := cmp.Diff(tt.want, got.Blades()); diff != "" {
				t.Errorf("Create() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreate_ZeroCoefficientNotRemoved(t *testing.T) {
	m := Create(euclidean(t, 3), Blade{1, 5}, Blade{-1, 5})

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, Blade{0, 5}, m.Blades()[0])
	assert.True(t, m.IsZero())
	assert.Equal(t, "0 * e(5)", m.String())

	// Distinct from a multivector that never received the blade.
	empty := Create(euclidean(t, 3), Blade{0, 5})
	assert.Equal(t, 0, empty.Len())
	assert.True(t, m.Equal(empty))
}

func TestBasisVector(t *testing.T) {
	sig := euclidean(t, 64)

	e0, err := BasisVector(sig, 0)
	require.NoError(t, err)
	assert.Equal(t, []Blade{{1, 1}}, e0.Blades())

	e63, err := BasisVector(sig, 63)
	require.NoError(t, err)
	assert.Equal(t, []Blade{{1, 1 << 63}}, e63.Blades())
}

func TestBasisVector_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		sig   signature.Signature
		index int
		dim   int
	}{
		{"Euclidean", signature.MustEuclidean(3), 3, 3},
		{"Negative", signature.MustEuclidean(3), -1, 3},
		{"MaskWidth", signature.MustEuclidean(64), 64, 64},
		{"Minkowski", signature.Minkowski(), 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BasisVector(tt.sig, tt.index)
			var oor *ErrIndexOutOfRange
			require.ErrorAs(t, err, &oor)
			assert.Equal(t, tt.index, oor.Index)
			assert.Equal(t, tt.dim, oor.Dimension)
		})
	}

	assert.Panics(t, func() { MustBasisVector(signature.MustEuclidean(2), 2) })
}

func TestMul_EuclideanScenario(t *testing.T) {
	sig := euclidean(t, 3)
	e0 := MustBasisVector(sig, 0)
	e1 := MustBasisVector(sig, 1)
	e2 := MustBasisVector(sig, 2)

	assert.Equal(t, "1 * e(3)", e0.Mul(e1).String())
	assert.Equal(t, "-1 * e(3)", e1.Mul(e0).String())
	assert.Equal(t, "1 * e(7)", e0.Mul(e1).Mul(e2).String())
	assert.Equal(t, "1 * e(0)", e0.Mul(e0).String())
}

func TestMul_MinkowskiScenario(t *testing.T) {
	sig := signature.Minkowski()
	e := make([]Multivector[signature.Table], 4)
	for i := range e {
		e[i] = MustBasisVector(sig, i)
	}

	assert.Equal(t, "1 * e(0)", e[0].Mul(e[0]).String())
	for i := 1; i < 4; i++ {
		// Degenerate entries keep the blade and flip its sign.
		assert.Equal(t, "-1 * e(0)", e[i].Mul(e[i]).String(), "e%d*e%d", i, i)
	}
	assert.Equal(t, "1 * e(15)", e[0].Mul(e[1]).Mul(e[2]).Mul(e[3]).String())
}

func TestMul_Anticommutes(t *testing.T) {
	sig := euclidean(t, 5)

	for i := range 5 {
		ei := MustBasisVector(sig, i)
		assert.True(t, ei.Mul(ei).Equal(Create(sig, Blade{1, 0})), "e%d*e%d", i, i)

		for j := range 5 {
			if i == j {
				continue
			}
			ej := MustBasisVector(sig, j)
			ij := ei.Mul(ej)
			ji := ej.Mul(ei)

			if diff := cmp.Diff(ij.Blades(), ji.Scale(-1).Blades()); diff != "" {
				t.Errorf("e%d*e%d != -(e%d*e%d):\n%s", i, j, j, i, diff)
			}
		}
	}
}

func TestMul_SelfSquareAllIndices(t *testing.T) {
	sig := euclidean(t, 64)
	for i := range 64 {
		ei := MustBasisVector(sig, i)
		assert.Equal(t, []Blade{{1, 0}}, ei.Mul(ei).Blades(), "e%d", i)
	}
}

func TestProductSign(t *testing.T) {
	sig := euclidean(t, 4)
	st, err := signature.NewTable(1, -1, -1, -1)
	require.NoError(t, err)

	tests := []struct {
		name string
		sig  signature.Signature
		a, b uint64
		want float32
	}{
		{"EuclideanBivectorSquare", sig, 0b0011, 0b0011, -1},
		{"EuclideanTrivectorSquare", sig, 0b0111, 0b0111, -1},
		{"EuclideanQuadvectorSquare", sig, 0b1111, 0b1111, 1},
		{"NegativeVectorSquare", st, 0b0010, 0b0010, -1},
		{"NegativeBivectorSquare", st, 0b0110, 0b0110, -1},
		{"MixedBivectorSquare", st, 0b0011, 0b0011, 1},
		{"ScalarLeft", sig, 0, 0b1010, 1},
		{"ScalarRight", sig, 0b1010, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productSign(tt.sig, tt.a, tt.b))
		})
	}
}

func TestMul_ZeroAndScalar(t *testing.T) {
	sig := euclidean(t, 3)
	rng := testutil.NewRNG(4711)
	a := randomMultivector(rng, sig, 6)

	assert.Equal(t, 0, a.Mul(Create(sig)).Len())
	assert.Equal(t, 0, Create(sig).Mul(a).Len())

	one := Create(sig, Blade{1, 0})
	assert.True(t, one.Mul(a).Equal(a))
	assert.True(t, a.Mul(one).Equal(a))
}

func TestMul_Associative(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("Euclidean", func(t *testing.T) {
		sig := euclidean(t, 4)
		for range 50 {
			a := randomMultivector(rng, sig, 4)
			b := randomMultivector(rng, sig, 4)
			c := randomMultivector(rng, sig, 4)
			assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
		}
	})

	t.Run("Minkowski", func(t *testing.T) {
		sig := signature.Minkowski()
		for range 50 {
			a := randomMultivector(rng, sig, 4)
			b := randomMultivector(rng, sig, 4)
			c := randomMultivector(rng, sig, 4)
			assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
		}
	})
}

func TestMul_Distributive(t *testing.T) {
	sig := euclidean(t, 4)
	rng := testutil.NewRNG(42)

	for range 50 {
		a := randomMultivector(rng, sig, 4)
		b := randomMultivector(rng, sig, 4)
		c := randomMultivector(rng, sig, 4)
		assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))))
	}
}

func TestAddSub(t *testing.T) {
	sig := euclidean(t, 3)
	a := Create(sig, Blade{1, 1}, Blade{2, 3})
	b := Create(sig, Blade{3, 3}, Blade{-1, 4})

	assert.Equal(t, []Blade{{1, 1}, {5, 3}, {-1, 4}}, a.Add(b).Blades())
	assert.Equal(t, []Blade{{1, 1}, {-1, 3}, {1, 4}}, a.Sub(b).Blades())

	// Operands are untouched.
	assert.Equal(t, []Blade{{1, 1}, {2, 3}}, a.Blades())
	assert.Equal(t, []Blade{{3, 3}, {-1, 4}}, b.Blades())
}

func TestAdd_Identity(t *testing.T) {
	sig := euclidean(t, 4)
	rng := testutil.NewRNG(7)

	for range 20 {
		a := randomMultivector(rng, sig, 5)
		if diff := cmp.Diff(a.Blades(), a.Add(Create(sig)).Blades()); diff != "" {
			t.Errorf("A + 0 != A:\n%s", diff)
		}
	}
}

func TestSub_Self(t *testing.T) {
	sig := euclidean(t, 4)
	a := randomMultivector(testutil.NewRNG(3), sig, 5)

	d := a.Sub(a)
	assert.Equal(t, a.Len(), d.Len(), "cancelled blades are kept")
	assert.True(t, d.IsZero())
}

func TestScale(t *testing.T) {
	sig := euclidean(t, 3)
	a := Create(sig, Blade{1, 1}, Blade{-2, 6})

	assert.Equal(t, []Blade{{2.5, 1}, {-5, 6}}, a.Scale(2.5).Blades())
	assert.Equal(t, a.Scale(-3).Blades(), ScalarMul(-3, a).Blades())
	assert.Equal(t, 0, a.Scale(0).Len())
}

func TestReverse(t *testing.T) {
	sig := euclidean(t, 4)

	tests := []struct {
		name string
		in   Blade
		want Blade
	}{
		{"Grade0", Blade{2, 0}, Blade{2, 0}},
		{"Grade1", Blade{2, 0b0100}, Blade{2, 0b0100}},
		{"Grade2", Blade{2, 0b0101}, Blade{-2, 0b0101}},
		{"Grade3", Blade{2, 0b0111}, Blade{-2, 0b0111}},
		{"Grade4", Blade{2, 0b1111}, Blade{2, 0b1111}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Create(sig, tt.in).Reverse()
			assert.Equal(t, []Blade{tt.want}, got.Blades())
		})
	}
}

func TestReverse_Involution(t *testing.T) {
	sig := euclidean(t, 6)
	rng := testutil.NewRNG(11)

	for range 50 {
		a := randomMultivector(rng, sig, 8)
		assert.True(t, a.Reverse().Reverse().Equal(a))
	}
}

func TestReverse_AntiAutomorphism(t *testing.T) {
	sig := euclidean(t, 4)
	rng := testutil.NewRNG(13)

	for range 50 {
		a := randomMultivector(rng, sig, 4)
		b := randomMultivector(rng, sig, 4)
		assert.True(t, a.Mul(b).Reverse().Equal(b.Reverse().Mul(a.Reverse())))
	}
}

func TestCommutator(t *testing.T) {
	sig := euclidean(t, 3)
	e0 := MustBasisVector(sig, 0)
	e1 := MustBasisVector(sig, 1)

	assert.Equal(t, "2 * e(3)", Commutator(e0, e1).String())
	assert.Equal(t, "0 * e(3)", Anticommutator(e0, e1).String())
	assert.Equal(t, "2 * e(0)", Anticommutator(e0, e0).String())
}

func TestCommutator_Antisymmetric(t *testing.T) {
	rng := testutil.NewRNG(99)

	t.Run("Euclidean", func(t *testing.T) {
		sig := euclidean(t, 4)
		for range 50 {
			a := randomMultivector(rng, sig, 5)
			b := randomMultivector(rng, sig, 5)
			assert.True(t, Commutator(a, b).Equal(Commutator(b, a).Scale(-1)))
			assert.True(t, Anticommutator(a, b).Equal(Anticommutator(b, a)))
		}
	})

	t.Run("Minkowski", func(t *testing.T) {
		sig := signature.Minkowski()
		for range 50 {
			a := randomMultivector(rng, sig, 5)
			b := randomMultivector(rng, sig, 5)
			assert.True(t, Commutator(a, b).Equal(ScalarMul(-1, Commutator(b, a))))
		}
	})
}

func TestEqual(t *testing.T) {
	sig := euclidean(t, 3)
	a := Create(sig, Blade{1, 1}, Blade{2, 2})

	assert.True(t, a.Equal(Create(sig, Blade{2, 2}, Blade{1, 1})), "order is ignored")
	assert.True(t, a.Equal(Create(sig, Blade{1, 1}, Blade{2, 2}, Blade{1, 4}, Blade{-1, 4})))
	assert.False(t, a.Equal(Create(sig, Blade{1, 1})))
	assert.False(t, a.Equal(Create(sig, Blade{1, 1}, Blade{3, 2})))
	assert.False(t, a.Equal(Create(sig, Blade{1, 1}, Blade{2, 2}, Blade{1, 4})))
	assert.True(t, Create(sig).Equal(Create(sig)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Create(euclidean(t, 3), Blade{1, 0b111}).Validate())
	assert.NoError(t, Create(euclidean(t, 64), Blade{1, 1 << 63}).Validate())

	err := Create(euclidean(t, 3), Blade{1, 1}, Blade{1, 0b1000}).Validate()
	var mor *ErrMaskOutOfRange
	require.ErrorAs(t, err, &mor)
	assert.Equal(t, uint64(0b1000), mor.Mask)
	assert.Equal(t, 3, mor.Dimension)
}

func TestString(t *testing.T) {
	sig := euclidean(t, 3)

	assert.Equal(t, "", Create(sig).String())
	assert.Equal(t, "1 * e(3)\n-0.5 * e(6)", Create(sig, Blade{1, 3}, Blade{-0.5, 6}).String())
}

func TestBlade(t *testing.T) {
	b := Blade{Coefficient: 1.0 / 3.0, Mask: 0b101}

	assert.Equal(t, 2, b.Grade())
	assert.Equal(t, []int{0, 2}, b.Indices())
	assert.Equal(t, "0.333333 * e(5)", b.String())
	assert.Equal(t, "1.23457e+06 * e(1)", Blade{1234567, 1}.String())
	assert.Equal(t, "-2 * e(0)", Blade{-2, 0}.String())
}
