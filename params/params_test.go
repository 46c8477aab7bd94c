// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedQuantities(t *testing.T) {
	p := MainNetParams
	assert.Equal(t, int64(14*24*60*60/(10*60)), p.DifficultyAdjustmentInterval())
	assert.Equal(t, p.PowAveragingWindow*p.PowTargetSpacing, p.AveragingWindowTimespan())
	assert.True(t, p.MinActualTimespan() < p.AveragingWindowTimespan())
	assert.True(t, p.MaxActualTimespan() > p.AveragingWindowTimespan())
}

func TestPowLimitSelectsByEra(t *testing.T) {
	p := MainNetParams
	assert.Equal(t, p.PowLimitPostfork, p.PowLimit(true))
	assert.Equal(t, p.PowLimitLegacy, p.PowLimit(false))
}

func TestOverrideDeployment(t *testing.T) {
	p := TestNetParams
	p.OverrideDeployment("testdummy", 111, 222)
	d := p.Deployments["testdummy"]
	assert.Equal(t, uint64(111), d.StartTime)
	assert.Equal(t, uint64(222), d.Timeout)

	p.OverrideDeployment("brand-new", 1, 2)
	d2 := p.Deployments["brand-new"]
	assert.NotNil(t, d2)
	assert.Equal(t, uint64(1), d2.StartTime)
}

func TestSelectKnownNetworks(t *testing.T) {
	for _, name := range []string{"main", "test", "regtest"} {
		p, err := Select(name)
		assert.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}
}

func TestSelectUnknownNetwork(t *testing.T) {
	_, err := Select("nonexistent")
	assert.Error(t, err)
}

func TestMustSelectPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		MustSelect("nonexistent")
	})
}

func TestCheckInvariantsPanicsOnBadTable(t *testing.T) {
	bad := &Params{
		Name:                    "bad",
		BCIHeight:               10,
		BCIPremineWindow:        5,
		ProgForkHeight:          3, // less than BCIHeight+BCIPremineWindow: non-decreasing violated
		PowLimitPostfork:        MainNetParams.PowLimitPostfork,
		PowAveragingWindow:      30,
		PowTargetTimespanLegacy: 600,
		PowTargetSpacing:        600,
	}
	assert.Panics(t, func() {
		newParams(bad)
	})
}
