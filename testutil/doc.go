// Package testutil provides testing utilities for numlit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG that generates integer values of varied
// magnitude and renders them as base-0 literals (with radix prefixes,
// mixed letter case and legal underscores).
//
// # Random Literals
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Int64()
//	lit := rng.Literal(v)     // e.g. "-0X7_fA", "0o1_7", "1_234"
//	bad := rng.Corrupt(lit)   // same literal with one illegal byte
package testutil
