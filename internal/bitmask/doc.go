// Package bitmask provides arithmetic on 64-bit blade masks.
//
// A mask encodes the set of basis vectors participating in a blade:
// bit i set means e_i is a factor. Factors are always taken in increasing
// index order, so a mask identifies a blade up to its coefficient.
//
// Used internally for:
//   - Grade computation (population count)
//   - Reordering parity of the geometric product
//   - Iteration over participating basis indices
package bitmask
