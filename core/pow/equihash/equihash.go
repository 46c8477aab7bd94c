// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equihash defines the boundary between this consensus core and
// the external Equihash solver/verifier. Per the design notes, the
// solver's inner algorithm (the Wagner's-algorithm search and the
// Blake2b-personalized state it hashes against) is a verified external
// dependency; this package only defines the Validator interface that
// receives the seed preimage (built by types.Header.WriteEquihashSeed)
// together with the n/k parameterization.
package equihash

// Validator checks a solution against a seed under the (n, k) parameters.
// A real implementation wraps a Blake2b-personalized generichash state
// (seeded with "ZcashPoW" + n + k, per the original construction) and the
// Wagner's-algorithm solution checker; this core never reimplements
// either.
type Validator interface {
	// IsValidSolution reports whether solution is a valid Equihash(n, k)
	// solution for the given seed. An error indicates the solution was
	// malformed (wrong length, non-canonical ordering) rather than a
	// hashing failure.
	IsValidSolution(n, k uint32, seed []byte, solution []byte) (bool, error)
}
