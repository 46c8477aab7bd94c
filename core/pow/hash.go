// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"bytes"
	"fmt"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/pow/progpow"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/params"
)

// HashHeader computes the block hash for a candidate header under the
// given network parameters (C2, §4.2). Which of the three eras applies
// is decided entirely by the header's own height and solution length;
// callers never need to pick a branch themselves.
//
// verifier is only consulted on the ProgPoW branch; pass nil when
// hashing a pre-fork header and it will never be dereferenced.
func HashHeader(h *types.Header, p *params.Params, verifier progpow.Verifier) (hash.Hash, error) {
	postfork := h.Height >= p.BCIHeight

	if h.Height >= p.ProgForkHeight && len(h.Solution) > 0 {
		return hashProgPow(h, verifier)
	}

	var buf bytes.Buffer
	var err error
	if postfork {
		err = h.SerializeCurrent(&buf)
	} else {
		err = h.SerializeLegacy(&buf)
	}
	if err != nil {
		return hash.ZeroHash, err
	}
	return hash.DoubleHashH(buf.Bytes()), nil
}

// hashProgPow implements the ProgPoW header-hash branch: Keccak-256 over
// the 140-byte nonce-zeroed buffer, then the library's final mixing step
// over that hash, the claimed mix (the solution's first 32 bytes), and
// the nonce's fourth lane.
func hashProgPow(h *types.Header, verifier progpow.Verifier) (hash.Hash, error) {
	if verifier == nil {
		panic("pow: HashHeader reached the ProgPoW branch with a nil verifier")
	}
	if len(h.Solution) < 32 {
		return hash.ZeroHash, fmt.Errorf("pow: progpow solution too short: %d bytes", len(h.Solution))
	}

	headerHash := h.KeccakBuffer()

	var mix [32]byte
	copy(mix[:], h.Solution[:32])
	nonce := h.NonceLane(3)

	final, err := verifier.FinalProgPowHash(headerHash, mix, nonce)
	if err != nil {
		return hash.ZeroHash, err
	}
	// The library returns its native big-endian convention; every
	// crossing of this boundary funnels through the one reversal
	// helper (§9's endianness design note).
	return hash.Hash(types.ReverseBytes32([32]byte(final))), nil
}
