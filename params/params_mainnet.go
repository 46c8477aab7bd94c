// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"math/big"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
)

// hexLimit parses a hex-encoded 256-bit PoW limit. All three networks
// express their limits the way the original chain parameters do: as the
// hex string of the upper bound, not the exponent/mantissa compact form.
func hexLimit(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("params: invalid hex PoW limit literal " + s)
	}
	return n
}

// disabledForkHeight gates a fork that the deployed chain never activated.
// The original ProgForkHeight constant is 0 ("always active") on every
// network with an accompanying comment marking it unused; per §9's Open
// Questions guidance we preserve the branch but disable it by default,
// setting the gate arbitrarily high rather than guessing at activation
// intent. See DESIGN.md.
const disabledForkHeight = ^uint32(0)

// MainNetParams holds the consensus parameters for the main network.
var MainNetParams = newParams(&Params{
	Name: "main",

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
		Time:       1535680000,
		Bits:       0x1f00ffff,
		Height:     0,
		PrevHash:   hash.ZeroHash,
		MerkleRoot: hash.ZeroHash,
		// The full Equihash solution bytes are not reproduced here;
		// see DESIGN.md for why the genesis fixture is a structural
		// placeholder rather than a byte-exact vector.
		Solution: nil,
	},

	Deployments: map[string]*ConsensusDeployment{
		"testdummy": {StartTime: 1199145601, Timeout: 1230767999},
	},
})
