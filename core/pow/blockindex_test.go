// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import "github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"

// fakeIndex is a minimal in-memory types.BlockIndex chain used to drive
// the difficulty engine in tests without a real storage layer.
type fakeIndex struct {
	height uint32
	bits   uint32
	time   int64
	mtp    int64
	prev   *fakeIndex
}

func (f *fakeIndex) Height() uint32        { return f.height }
func (f *fakeIndex) Bits() uint32          { return f.bits }
func (f *fakeIndex) BlockTime() int64      { return f.time }
func (f *fakeIndex) MedianTimePast() int64 { return f.mtp }
func (f *fakeIndex) Prev() types.BlockIndex {
	if f.prev == nil {
		return nil
	}
	return f.prev
}

// buildChain returns a chain of n blocks (heights 0..n-1) with a fixed
// spacing and constant bits, suitable as a baseline the tests perturb.
func buildChain(n int, spacing int64, bits uint32) *fakeIndex {
	var tip *fakeIndex
	var t int64 = 1_500_000_000
	for i := 0; i < n; i++ {
		node := &fakeIndex{height: uint32(i), bits: bits, time: t, mtp: t, prev: tip}
		tip = node
		t += spacing
	}
	return tip
}
