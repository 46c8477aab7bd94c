// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
)

// TestNetParams holds the consensus parameters for the test network.
var TestNetParams = newParams(&Params{
	Name: "test",

	SubsidyHalvingInterval:  100000000,
	BCIHeight:               0,
	BCIPremineWindow:        0,
	BCILastHeightWithReward: 281665,
	ProgForkHeight:          disabledForkHeight,

	PowLimitLegacy:   hexLimit("0000ffff00000000000000000000000000000000000000000000000000000000"),
	PowLimitStart:    hexLimit("0000ffff00000000000000000000000000000000000000000000000000000000"),
	PowLimitPostfork: hexLimit("0000ffff00000000000000000000000000000000000000000000000000000000"),

	PowAveragingWindow:      30,
	PowMaxAdjustUp:          16,
	PowMaxAdjustDown:        32,
	PowTargetTimespanLegacy: 14 * 24 * 60 * 60,
	PowTargetSpacing:        10 * 60,
	AllowMinDifficulty:      false,
	NoRetargeting:           false,

	EquihashN: 80,
	EquihashK: 4,

	Genesis: &types.Header{
		Version:    4,
		Time:       1535730000,
		Bits:       0x1f00ffff,
		Height:     0,
		PrevHash:   hash.ZeroHash,
		MerkleRoot: hash.ZeroHash,
		Solution:   nil,
	},

	Deployments: map[string]*ConsensusDeployment{
		"testdummy": {StartTime: 1199145601, Timeout: 1230767999},
	},
})
