// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package params holds the per-network consensus constants (C1): fork
// heights, PoW limits, retarget bounds, and the genesis fixture. A network's
// record is obtained via Select; every other component takes a *Params
// handle explicitly rather than reading a hidden global.
package params

import (
	"fmt"
	"math/big"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
)

// ConsensusDeployment tracks a single regression-test override window. The
// only runtime mutation this package permits post-construction is flipping
// these two fields, used by test harnesses that need to force a deployment
// window open or closed.
type ConsensusDeployment struct {
	StartTime uint64
	Timeout   uint64
}

// Params is the immutable (outside of Deployments overrides) record of
// every consensus constant a network needs. There is exactly one of these
// per network; network selection chooses among the three package-level
// instances (Main, Test, Regtest) rather than mutating shared state.
type Params struct {
	Name string

	// SubsidyHalvingInterval is carried for completeness; the core does
	// not compute subsidies itself.
	SubsidyHalvingInterval uint32

	// BCIHeight is the height of the address-format/premine hard fork.
	BCIHeight uint32

	// BCIPremineWindow is the number of blocks immediately after
	// BCIHeight reserved for the premine bootstrap regime.
	BCIPremineWindow uint32

	// BCILastHeightWithReward is carried for completeness; not consulted
	// by PoW consensus.
	BCILastHeightWithReward uint32

	// ProgForkHeight is the height at which ProgPoW headers are
	// recognized; 0 means from genesis. Every shipped network sets it to
	// disabledForkHeight, which turns the ProgPoW branch off; see
	// DESIGN.md.
	ProgForkHeight uint32

	// BitcoinPostforkBlockHash is reserved data, not consulted by this
	// core (see DESIGN.md open question).
	BitcoinPostforkBlockHash hash.Hash

	// PowLimitLegacy, PowLimitStart and PowLimitPostfork are the three
	// era-indexed upper bounds on a valid target.
	PowLimitLegacy   *big.Int
	PowLimitStart    *big.Int
	PowLimitPostfork *big.Int

	// PowAveragingWindow is the number of blocks (N) averaged by the
	// windowed retarget.
	PowAveragingWindow int64

	// PowMaxAdjustUp and PowMaxAdjustDown are percentages bounding how
	// far the windowed retarget may move the actual timespan.
	PowMaxAdjustUp   int64
	PowMaxAdjustDown int64

	// PowTargetTimespanLegacy is the legacy retarget interval, in
	// seconds.
	PowTargetTimespanLegacy int64

	// PowTargetSpacing is the desired spacing between blocks, in
	// seconds.
	PowTargetSpacing int64

	AllowMinDifficulty bool
	NoRetargeting      bool

	EquihashN uint32
	EquihashK uint32

	// Genesis is the network's first header, used by callers to seed
	// hash_header end-to-end checks; the core does not special-case it.
	Genesis *types.Header

	// Deployments holds named regression-test windows. Callers may
	// override a named deployment's StartTime/Timeout after
	// construction (§4.1 "Runtime override"); this is the one mutation
	// permitted post-init.
	Deployments map[string]*ConsensusDeployment
}

// DifficultyAdjustmentInterval is the legacy difficulty-adjustment
// interval, in blocks.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespanLegacy / p.PowTargetSpacing
}

// AveragingWindowTimespan is the time the windowed retarget's averaging
// window is meant to span.
func (p *Params) AveragingWindowTimespan() int64 {
	return p.PowAveragingWindow * p.PowTargetSpacing
}

// MinActualTimespan is the lower clamp bound for the windowed retarget's
// actual timespan.
func (p *Params) MinActualTimespan() int64 {
	return p.AveragingWindowTimespan() * (100 - p.PowMaxAdjustUp) / 100
}

// MaxActualTimespan is the upper clamp bound for the windowed retarget's
// actual timespan.
func (p *Params) MaxActualTimespan() int64 {
	return p.AveragingWindowTimespan() * (100 + p.PowMaxAdjustDown) / 100
}

// PowLimit returns the PoW limit for the given era: post-BCI when postfork
// is true, legacy otherwise.
func (p *Params) PowLimit(postfork bool) *big.Int {
	if postfork {
		return p.PowLimitPostfork
	}
	return p.PowLimitLegacy
}

// OverrideDeployment overrides a named deployment's start/timeout window.
// It is the one mutation permitted after construction, intended for
// regression-test harnesses that need to force a window open or closed; it
// does not invalidate any of the invariants checked at construction.
func (p *Params) OverrideDeployment(name string, startTime, timeout uint64) {
	d, ok := p.Deployments[name]
	if !ok {
		d = &ConsensusDeployment{}
		p.Deployments[name] = d
	}
	d.StartTime = startTime
	d.Timeout = timeout
}

// checkInvariants asserts the construction-time invariants from §3. A
// failure here is a programmer error (a corrupted params table), not a
// validation failure of any particular header, so it panics rather than
// returning an error (§7).
func (p *Params) checkInvariants() {
	maxUint256 := types.OneLsh256
	windowQuotient := new(big.Int).Div(maxUint256, p.PowLimitPostfork)
	if windowQuotient.Cmp(big.NewInt(p.PowAveragingWindow)) < 0 {
		panic(fmt.Sprintf("params %s: maxUint256/powLimitPostfork < averagingWindow", p.Name))
	}

	lastPremine := p.BCIHeight + p.BCIPremineWindow
	if lastPremine < p.BCIHeight {
		panic(fmt.Sprintf("params %s: BCIPremineWindow overflows BCIHeight", p.Name))
	}
	if p.ProgForkHeight != 0 && lastPremine > p.ProgForkHeight {
		panic(fmt.Sprintf("params %s: fork heights are not non-decreasing", p.Name))
	}

	if p.PowTargetTimespanLegacy%p.PowTargetSpacing != 0 {
		panic(fmt.Sprintf("params %s: PowTargetTimespanLegacy is not a multiple of PowTargetSpacing", p.Name))
	}
}

func newParams(p *Params) *Params {
	p.checkInvariants()
	return p
}
