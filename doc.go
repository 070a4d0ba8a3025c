// Package cliffgo provides a Clifford (geometric) algebra engine for Go.
//
// Multivectors are sparse sums of basis blades. A blade pairs a float32
// coefficient with a 64-bit mask naming its basis vectors, so algebras have at
// most 64 dimensions. The bilinear form is supplied by a signature from the
// signature package and fixed per multivector type.
//
// # Quick Start
//
//	sig := signature.MustEuclidean(3)
//	e0 := cliffgo.MustBasisVector(sig, 0)
//	e1 := cliffgo.MustBasisVector(sig, 1)
//
//	fmt.Println(e0.Mul(e1)) // 1 * e(3)
//	fmt.Println(e1.Mul(e0)) // -1 * e(3)
//
// # Operations
//
//   - Add, Sub, Scale / ScalarMul
//   - Mul (geometric product)
//   - Reverse (reversion)
//   - Commutator, Anticommutator
//
// All operations are pure: they return new values and never modify their
// operands, so multivectors may be shared freely between goroutines.
//
// # Coefficient Folding
//
// Blades with equal masks are folded by summing coefficients. A blade whose
// coefficient is exactly zero on insertion is skipped, but a blade whose
// coefficients cancel to zero is kept. Len and Blades expose such blades;
// Equal and IsZero ignore them.
//
// # Algebra
//
// Algebra binds a signature to options such as logging and the codec used to
// serialize multivectors:
//
//	alg := cliffgo.New(signature.Minkowski(),
//	    cliffgo.WithCodec(codec.Binary{}),
//	    cliffgo.WithCompression(codec.CompressionLZ4),
//	)
//	data, _ := alg.Encode(alg.Pseudoscalar())
//	m, _ := alg.Decode(data)
package cliffgo
