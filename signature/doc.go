// Package signature provides metric signatures for Clifford algebras.
//
// A signature supplies, per basis index, the square of that basis vector under
// the algebra's bilinear form. The multivector engine consults it whenever a
// geometric product contracts a shared basis vector.
//
// # Supported Signatures
//
//   - Euclidean: every basis vector squares to +1 (up to 64 dimensions)
//   - Table: an explicit per-index table of squares in {-1, 0, +1}
//   - Minkowski: the fixed four-entry table {1, 0, 0, 0}
//
// # Usage
//
//	sig, err := signature.NewEuclidean(3)
//	sq := sig.Value(0) // 1
//
//	st := signature.Minkowski()
//	st.Value(3) // 0
package signature
