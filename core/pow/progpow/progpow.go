// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package progpow defines the boundary between this consensus core and
// the external Ethash/ProgPoW library. The epoch DAG, the ProgPoW mix
// function, and the final-hash mixing step all live in that library;
// this package only carries epoch numbers and hash/mix/nonce/target
// values across the boundary. Keccak-256, used on our side to build the
// header hash the library consumes, is wired directly to
// golang.org/x/crypto/sha3 rather than treated as part of the boundary.
package progpow

import "github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"

// EpochLength is the number of blocks per ProgPoW/Ethash epoch, carried
// here because callers computing an epoch number for logging or cache
// warm-up need it without reaching into the library.
const EpochLength = 30000

// EpochNumber returns the Ethash epoch a block at the given height
// belongs to.
func EpochNumber(height uint32) uint32 {
	return height / EpochLength
}

// Verifier is the external ProgPoW/Ethash library surface this core
// depends on. header_hash, mix and target are all big-endian 32-byte
// values in the library's native convention; callers cross the
// endianness boundary with core/types.ReverseBytes32 before and after
// calling into it.
type Verifier interface {
	// VerifyProgPow reports whether mix is a valid ProgPoW mix for
	// headerHash at the given epoch/height and nonce, against target.
	VerifyProgPow(epoch, height uint32, headerHash hash.Hash, mix [32]byte, nonce uint64, target hash.Hash) (bool, error)

	// FinalProgPowHash derives the block hash from a ProgPoW header
	// hash, its claimed mix, and nonce, in the library's native
	// big-endian byte order. It does not re-run the mix function: it
	// only performs the library's final compression step (what the
	// original calls verify_final_progpow_hash). The caller, not this
	// method, is responsible for reversing the result into the
	// system's little-endian convention.
	FinalProgPowHash(headerHash hash.Hash, mix [32]byte, nonce uint64) (hash.Hash, error)
}
