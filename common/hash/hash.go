// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hash holds the 256-bit hash type shared by every consensus
// component plus the two hash constructions the core relies on: legacy
// double-SHA256 and the Keccak-256 used at the ProgPoW boundary.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// HashSize is the number of bytes in a consensus hash.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is a little-endian 256-bit value, the convention used everywhere in
// the core except at the boundary with the ProgPoW library.
type Hash [HashSize]byte

// ZeroHash is the Hash value of all zero bytes.
var ZeroHash = Hash{}

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash, matching the conventional display order for block identifiers.
func (h Hash) String() string {
	var hexBytes [HashSize * 2]byte
	hex.Encode(hexBytes[:], h.reversed())
	return string(hexBytes[:])
}

func (h Hash) reversed() []byte {
	var buf [HashSize]byte
	for i := 0; i < HashSize; i++ {
		buf[i] = h[HashSize-1-i]
	}
	return buf[:]
}

// Bytes returns the bytes of the hash in its native little-endian layout.
func (h Hash) Bytes() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// IsZero reports whether the hash is the all-zero value.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen, HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// NewHashFromStr creates a Hash from a hash string, which must be the
// hexadecimal string of a byte-reversed hash, as produced by String.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash to
// a destination.
func Decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	for i, b := range reversedHash[:HashSize/2] {
		reversedHash[i], reversedHash[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}
	*dst = reversedHash
	return nil
}

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates sha256(sha256(b)) and returns the resulting bytes
// as a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// Keccak256 computes the Keccak-256 digest of b. This is the legacy Keccak
// variant (not the later NIST SHA3-256), which is what the ProgPoW/Ethash
// family of libraries expects at the header-hash boundary.
func Keccak256(b []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	var out Hash
	h.Sum(out[:0])
	return out
}
