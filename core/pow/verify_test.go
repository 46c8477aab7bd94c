// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"
	"testing"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
	"github.com/stretchr/testify/assert"
)

func TestCheckTargetAgreesWithIntegerCompare(t *testing.T) {
	limit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))
	p := testParams()
	p.PowLimitPostfork = limit
	p.PowLimitLegacy = limit

	bits := uint32(0x1d00ffff)
	target, _, _ := types.CompactToBig(bits)

	under := types.ArithToUint256(new(big.Int).Sub(target, big.NewInt(1)))
	assert.True(t, CheckTarget(hash.Hash(under), bits, true, p))

	over := types.ArithToUint256(new(big.Int).Add(target, big.NewInt(1)))
	assert.False(t, CheckTarget(hash.Hash(over), bits, true, p))
}

func TestCheckTargetRejectsNegativeAndOverflow(t *testing.T) {
	p := testParams()
	assert.False(t, CheckTarget(hash.ZeroHash, 0x01800001, true, p)) // negative
	assert.False(t, CheckTarget(hash.ZeroHash, 0xff123456, true, p)) // overflow
	assert.False(t, CheckTarget(hash.ZeroHash, 0x00000000, true, p)) // zero target
}

func TestCheckTargetRejectsLooserThanLimit(t *testing.T) {
	p := testParams()
	p.PowLimitPostfork = big.NewInt(1)
	p.PowLimitLegacy = big.NewInt(1)
	assert.False(t, CheckTarget(hash.ZeroHash, 0x1d00ffff, true, p))
}

type fakeEquihashValidator struct {
	called bool
	valid  bool
}

func (f *fakeEquihashValidator) IsValidSolution(n, k uint32, seed []byte, solution []byte) (bool, error) {
	f.called = true
	return f.valid, nil
}

func TestCheckEquihashDelegatesToValidator(t *testing.T) {
	h := &types.Header{Solution: []byte{1, 2, 3}}
	v := &fakeEquihashValidator{valid: true}
	p := testParams()
	p.EquihashN, p.EquihashK = 80, 4

	ok, err := CheckEquihash(h, p, v)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v.called)
}

type fakeProgPowVerifier struct {
	valid bool
}

func (f *fakeProgPowVerifier) VerifyProgPow(epoch, height uint32, headerHash hash.Hash, mix [32]byte, nonce uint64, target hash.Hash) (bool, error) {
	return f.valid, nil
}

func (f *fakeProgPowVerifier) FinalProgPowHash(headerHash hash.Hash, mix [32]byte, nonce uint64) (hash.Hash, error) {
	return headerHash, nil
}

func TestCheckProgPowRejectsShortSolution(t *testing.T) {
	h := &types.Header{Bits: 0x1d00ffff, Solution: []byte{1, 2, 3}}
	p := testParams()
	_, err := CheckProgPow(h, 1000, p, &fakeProgPowVerifier{valid: true})
	assert.Error(t, err)
}

func TestCheckProgPowDelegatesToVerifier(t *testing.T) {
	h := &types.Header{Bits: 0x1d00ffff, Solution: make([]byte, 32)}
	p := testParams()
	ok, err := CheckProgPow(h, 1000, p, &fakeProgPowVerifier{valid: true})
	assert.NoError(t, err)
	assert.True(t, ok)
}
