// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"testing"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
	"github.com/stretchr/testify/assert"
)

func sampleHeader() *Header {
	h := &Header{
		Version:    4,
		Time:       1535680000,
		Bits:       0x1f00ffff,
		Height:     12345,
		PrevHash:   hash.ZeroHash,
		MerkleRoot: hash.ZeroHash,
		Solution:   []byte{0x01, 0x02, 0x03},
	}
	for i := range h.Nonce {
		h.Nonce[i] = byte(i)
	}
	return h
}

func TestSerializeCurrentDeterministic(t *testing.T) {
	h := sampleHeader()
	var a, b bytes.Buffer
	assert.NoError(t, h.SerializeCurrent(&a))
	assert.NoError(t, h.SerializeCurrent(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestSerializeLegacyOmitsHeight(t *testing.T) {
	withHeight := sampleHeader()
	withoutHeight := sampleHeader()
	withoutHeight.Height = withHeight.Height + 1

	var a, b bytes.Buffer
	assert.NoError(t, withHeight.SerializeLegacy(&a))
	assert.NoError(t, withoutHeight.SerializeLegacy(&b))
	assert.Equal(t, a.Bytes(), b.Bytes(), "legacy serialization must not depend on height")
}

func TestSerializeCurrentDependsOnHeight(t *testing.T) {
	h1 := sampleHeader()
	h2 := sampleHeader()
	h2.Height++

	var a, b bytes.Buffer
	assert.NoError(t, h1.SerializeCurrent(&a))
	assert.NoError(t, h2.SerializeCurrent(&b))
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestProgPowBufferLength(t *testing.T) {
	h := sampleHeader()
	buf := h.progPowBuffer()
	assert.Equal(t, 140, len(buf))
}

func TestProgPowBufferZeroesNonce(t *testing.T) {
	h1 := sampleHeader()
	h2 := sampleHeader()
	h2.Nonce[31] = 0xff

	assert.Equal(t, h1.progPowBuffer(), h2.progPowBuffer(), "progpow buffer must be independent of the nonce")
}

func TestKeccakBufferIndependentOfNonce(t *testing.T) {
	h1 := sampleHeader()
	h2 := sampleHeader()
	h2.Nonce[0] = 0xaa

	assert.Equal(t, h1.KeccakBuffer(), h2.KeccakBuffer())
}

func TestKeccakBufferDependsOnTime(t *testing.T) {
	h1 := sampleHeader()
	h2 := sampleHeader()
	h2.Time++

	assert.NotEqual(t, h1.KeccakBuffer(), h2.KeccakBuffer())
}

func TestEquihashSeedIncludesRealNonce(t *testing.T) {
	h1 := sampleHeader()
	h2 := sampleHeader()
	h2.Nonce[0] = 0xaa

	var a, b bytes.Buffer
	assert.NoError(t, h1.WriteEquihashSeed(&a))
	assert.NoError(t, h2.WriteEquihashSeed(&b))
	assert.NotEqual(t, a.Bytes(), b.Bytes(), "unlike the progpow buffer, the equihash seed carries the real nonce")
	assert.Equal(t, equihashInputLen+32, a.Len())
}

func TestNonceLane(t *testing.T) {
	h := sampleHeader()
	for i := 0; i < 4; i++ {
		lane := h.NonceLane(i)
		assert.NotZero(t, lane)
	}
}
