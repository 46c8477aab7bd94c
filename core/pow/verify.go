// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"bytes"
	"fmt"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/pow/equihash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/pow/progpow"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/params"
)

// CheckTarget reports whether blockHash satisfies bits: the decoded
// target must be in range (non-negative, nonzero, not overflowing, and
// no looser than the era's PoW limit) and blockHash, read as an unsigned
// 256-bit integer, must not exceed it (§4.4 check_target).
func CheckTarget(blockHash hash.Hash, bits uint32, postfork bool, p *params.Params) bool {
	target, negative, overflow := types.CompactToBig(bits)
	if negative || target.Sign() == 0 || overflow {
		return false
	}
	if target.Cmp(p.PowLimit(postfork)) > 0 {
		return false
	}

	h := types.UintToArith256([32]byte(blockHash))
	return h.Cmp(target) <= 0
}

// CheckEquihash verifies a pre-ProgPoW header's solution against the
// seed built from its Equihash-input view and nonce (§4.4
// check_equihash). The solver/verifier itself is external; this
// function's job is only to build the seed: the pre-BCI header fields
// (no height) followed by the full nonce, without the solution.
func CheckEquihash(h *types.Header, p *params.Params, v equihash.Validator) (bool, error) {
	var seed bytes.Buffer
	if err := h.WriteEquihashSeed(&seed); err != nil {
		return false, err
	}

	ok, err := v.IsValidSolution(p.EquihashN, p.EquihashK, seed.Bytes(), h.Solution)
	if err != nil {
		return false, fmt.Errorf("pow: check_equihash: %w", err)
	}
	return ok, nil
}

// CheckProgPow verifies a post-fork header's ProgPoW solution: it
// recomputes the header hash, derives the epoch from height, converts
// bits to the library's big-endian target convention, and delegates the
// mix check to the external verifier (§4.4 check_progpow).
func CheckProgPow(h *types.Header, height uint32, p *params.Params, v progpow.Verifier) (bool, error) {
	if len(h.Solution) < 32 {
		return false, fmt.Errorf("pow: check_progpow: solution too short: %d bytes", len(h.Solution))
	}

	target, negative, overflow := types.CompactToBig(h.Bits)
	if negative || target.Sign() == 0 || overflow {
		return false, nil
	}
	if target.Cmp(p.PowLimitPostfork) > 0 {
		return false, nil
	}
	// Reversed into the library's big-endian convention, per §4.2/§4.4's
	// endianness boundary note.
	targetHash := hash.Hash(types.ReverseBytes32(types.ArithToUint256(target)))

	headerHash := h.KeccakBuffer()
	var mix [32]byte
	copy(mix[:], h.Solution[:32])
	nonce := h.NonceLane(3)
	epoch := progpow.EpochNumber(height)

	ok, err := v.VerifyProgPow(epoch, height, headerHash, mix, nonce, targetHash)
	if err != nil {
		return false, fmt.Errorf("pow: check_progpow: %w", err)
	}
	return ok, nil
}
