// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/params"
	"github.com/ethereum/go-ethereum/log"
)

// NextRequiredBits computes the target (in compact form) a candidate
// block extending prev must be mined under (C3, §4.3). candidateTime is
// only consulted by the legacy min-difficulty carve-out; it has no
// effect once the windowed retarget regime is reached.
//
// prev is nil exactly at the genesis block. A nil prev is safe only when
// height 0 is post-BCI, where the premine seed window returns before prev
// is read; on the legacy (pre-BCI) path a nil prev is dereferenced and
// panics.
func NextRequiredBits(prev types.BlockIndex, candidateTime int64, p *params.Params) uint32 {
	height := uint32(0)
	if prev != nil {
		height = prev.Height() + 1
	}
	postfork := height >= p.BCIHeight
	limitCompact := types.BigToCompact(p.PowLimit(postfork))

	if !postfork {
		return legacyNextBits(prev, candidateTime, p)
	}

	if height < p.BCIHeight+p.BCIPremineWindow+10 {
		log.Debug("pow: premine seed window", "height", height, "bits", limitCompact)
		return limitCompact
	}
	if height < p.BCIHeight+p.BCIPremineWindow+uint32(p.PowAveragingWindow) {
		return types.BigToCompact(p.PowLimitStart)
	}

	return windowedRetarget(prev, p, limitCompact)
}

// windowedRetarget implements the sliding-window (digishield-style)
// retarget that applies once the averaging window has filled (§4.3 fifth
// bullet).
func windowedRetarget(prev types.BlockIndex, p *params.Params, limitCompact uint32) uint32 {
	total := new(big.Int)
	first := prev
	n := int64(0)
	for first != nil && n < p.PowAveragingWindow {
		t, _, _ := types.CompactToBig(first.Bits())
		total.Add(total, t)
		first = first.Prev()
		n++
	}
	if first == nil {
		return limitCompact
	}

	avg := new(big.Int).Div(total, big.NewInt(p.PowAveragingWindow))
	actualTimespan := prev.MedianTimePast() - first.MedianTimePast()

	if actualTimespan < p.MinActualTimespan() {
		actualTimespan = p.MinActualTimespan()
	}
	if actualTimespan > p.MaxActualTimespan() {
		actualTimespan = p.MaxActualTimespan()
	}

	powLimit := p.PowLimitPostfork
	next := new(big.Int).Div(avg, big.NewInt(p.AveragingWindowTimespan()))
	next.Mul(next, big.NewInt(actualTimespan))
	if next.Cmp(powLimit) > 0 {
		next = powLimit
	}

	log.Debug("pow: windowed retarget", "actualTimespan", actualTimespan, "avg", avg)
	return types.BigToCompact(next)
}

// legacyNextBits implements the pre-BCI retarget, including the
// min-difficulty testnet carve-out and its walk-back rule (§4.3 third
// bullet, the "legacy delegate" branch).
func legacyNextBits(prev types.BlockIndex, candidateTime int64, p *params.Params) uint32 {
	limitCompact := types.BigToCompact(p.PowLimit(false))
	height := uint32(0)
	if prev != nil {
		height = prev.Height() + 1
	}

	if int64(height)%p.DifficultyAdjustmentInterval() != 0 {
		if p.AllowMinDifficulty {
			if candidateTime > prev.BlockTime()+p.PowTargetSpacing*2 {
				return limitCompact
			}
			walk := prev
			for walk.Prev() != nil &&
				int64(walk.Height())%p.DifficultyAdjustmentInterval() != 0 &&
				walk.Bits() == limitCompact {
				walk = walk.Prev()
			}
			return walk.Bits()
		}
		return prev.Bits()
	}

	if p.NoRetargeting {
		return prev.Bits()
	}

	first := prev
	for i := int64(0); i < p.DifficultyAdjustmentInterval()-1 && first.Prev() != nil; i++ {
		first = first.Prev()
	}
	return legacyRetarget(prev, first.BlockTime(), p)
}

// legacyRetarget is the multiplication-then-division retarget the
// original called BitcoinCalculateNextWorkRequired. The operation order
// (multiply by the actual timespan before dividing by the target one)
// is consensus-critical and must not be reordered for "clarity": dividing
// first changes rounding and therefore the result, unlike windowedRetarget's
// divide-then-multiply order.
func legacyRetarget(prev types.BlockIndex, firstBlockTime int64, p *params.Params) uint32 {
	if p.NoRetargeting {
		return prev.Bits()
	}

	actualTimespan := prev.BlockTime() - firstBlockTime
	if actualTimespan < p.PowTargetTimespanLegacy/4 {
		actualTimespan = p.PowTargetTimespanLegacy / 4
	}
	if actualTimespan > p.PowTargetTimespanLegacy*4 {
		actualTimespan = p.PowTargetTimespanLegacy * 4
	}

	powLimit := p.PowLimit(false)
	next, _, _ := types.CompactToBig(prev.Bits())
	next.Mul(next, big.NewInt(actualTimespan))
	next.Div(next, big.NewInt(p.PowTargetTimespanLegacy))
	if next.Cmp(powLimit) > 0 {
		next = powLimit
	}

	return types.BigToCompact(next)
}
