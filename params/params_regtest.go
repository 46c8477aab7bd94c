// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
)

// RegressionNetParams holds the consensus parameters for the regression
// test network. PowLimitStart and PowLimitPostfork are kept small enough
// that 2^256/PowLimitPostfork is at least PowAveragingWindow, as
// checkInvariants requires. NoRetargeting holds bits at the previous
// block's value on the legacy (pre-BCI) path only; with BCIHeight 0 every
// regtest block is post-BCI and follows the premine and windowed regimes,
// which do not read NoRetargeting.
var RegressionNetParams = newParams(&Params{
	Name: "regtest",

	SubsidyHalvingInterval:  150,
	BCIHeight:               0,
	BCIPremineWindow:        0,
	BCILastHeightWithReward: 281665,
	ProgForkHeight:          disabledForkHeight,

	PowLimitLegacy:   hexLimit("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitStart:    hexLimit("07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	PowLimitPostfork: hexLimit("07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),

	PowAveragingWindow:      30,
	PowMaxAdjustUp:          32,
	PowMaxAdjustDown:        16,
	PowTargetTimespanLegacy: 14 * 24 * 60 * 60,
	PowTargetSpacing:        10 * 60,
	AllowMinDifficulty:      true,
	NoRetargeting:           true,

	EquihashN: 48,
	EquihashK: 5,

	Genesis: &types.Header{
		Version:    4,
		Time:       1535561891,
		Bits:       0x1e00ffff,
		Height:     0,
		PrevHash:   hash.ZeroHash,
		MerkleRoot: hash.ZeroHash,
		Solution:   nil,
	},

	Deployments: map[string]*ConsensusDeployment{
		"testdummy": {StartTime: 0, Timeout: 999999999999},
	},
})
