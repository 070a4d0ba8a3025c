// Package testutil provides testing utilities for cliffgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating blade masks and
// coefficients in property-style tests.
//
// # Random Blades
//
//	rng := testutil.NewRNG(seed)
//	mask := rng.Mask(4)        // random subset of e_0..e_3
//	c := rng.IntCoefficient(3) // non-zero integer in [-3, 3]
//	rng.FillMasks(masks, 4)    // one random mask per element
//
// Integer-valued coefficients keep products exact in float32, so tests can
// compare results with == instead of a tolerance.
package testutil
