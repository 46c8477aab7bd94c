// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/common/hash"
)

// equihashInputLen is the length in bytes of the "Equihash input" view of a
// header: every consensus field feeding the Blake2b/Keccak state except the
// nonce and solution. It is 108 bytes because this view was never updated
// to include the later BCI nHeight field (§4.2): version(4) + prevHash(32)
// + merkleRoot(32) + a 32-byte reserved field carried over, unused, from
// the original Zcash-derived Equihash header layout + time(4) + bits(4).
const equihashInputLen = 4 + hash.HashSize + hash.HashSize + 32 + 4 + 4

// progPowBufferLen is equihashInputLen plus the 32-byte nonce field, the
// buffer Keccak-256 is run over when computing the ProgPoW header hash.
const progPowBufferLen = equihashInputLen + 32

// Header carries the consensus-relevant fields of a candidate block header.
// Block-body content (transactions, Merkle construction) lives outside this
// core; Header only models what C2/C3/C4 need to reach a verdict.
type Header struct {
	Version int32

	// PrevHash is the hash of the block this header extends.
	PrevHash hash.Hash

	// MerkleRoot is the root of the block's transaction tree. The core
	// does not construct or verify it; it is consumed opaquely.
	MerkleRoot hash.Hash

	Time   uint32
	Bits   uint32
	Height uint32

	// Nonce is 256 bits wide for Equihash-era compatibility. ProgPoW only
	// consumes lane 3 (see NonceLane).
	Nonce [32]byte

	// Solution is era-dependent: the Equihash solution pre-fork, or a
	// 32-byte ProgPoW mix hash followed by padding post-fork.
	Solution []byte
}

// NonceLane returns one of the four little-endian uint64 lanes that make up
// the 256-bit nonce field. ProgPoW uses lane 3 as its 8-byte nonce.
func (h *Header) NonceLane(i int) uint64 {
	return binary.LittleEndian.Uint64(h.Nonce[i*8 : i*8+8])
}

// equihashInput writes the 108-byte Equihash-input view of the header: all
// consensus fields except the nonce and solution, using the reserved-field
// layout documented on equihashInputLen.
func (h *Header) equihashInput(w io.Writer) error {
	var reserved [32]byte
	return writeAll(w,
		le32(uint32(h.Version)),
		h.PrevHash[:],
		h.MerkleRoot[:],
		reserved[:],
		le32(h.Time),
		le32(h.Bits),
	)
}

// serialize writes the canonical wire encoding of the header used for
// legacy/post-BCI double-SHA256 hashing (§4.2 branches 2 and 3). withHeight
// selects between the current layout (height present) and the legacy one
// (height omitted), the single flag that distinguishes the two eras.
func (h *Header) serialize(w io.Writer, withHeight bool) error {
	var reserved [32]byte
	parts := [][]byte{
		le32(uint32(h.Version)),
		h.PrevHash[:],
		h.MerkleRoot[:],
		reserved[:],
	}
	if withHeight {
		parts = append(parts, le32(h.Height))
	}
	parts = append(parts, le32(h.Time), le32(h.Bits), h.Nonce[:])
	if err := writeAll(w, parts...); err != nil {
		return err
	}
	return writeVarBytes(w, h.Solution)
}

// SerializeCurrent encodes the header in the post-BCI wire layout, the one
// used once height has become a consensus field.
func (h *Header) SerializeCurrent(w io.Writer) error {
	return h.serialize(w, true)
}

// SerializeLegacy encodes the header in the pre-BCI wire layout, which has
// no height field.
func (h *Header) SerializeLegacy(w io.Writer) error {
	return h.serialize(w, false)
}

// progPowBuffer builds the 140-byte buffer Keccak-256 is run over at the
// ProgPoW boundary: the 108-byte Equihash input followed by the full
// 32-byte nonce field, with the nonce bytes zeroed out. The header hash is
// deliberately made independent of the nonce; ProgPoW's own nonce input
// supplies the variability instead (§4.2).
func (h *Header) progPowBuffer() [progPowBufferLen]byte {
	var buf bytes.Buffer
	buf.Grow(progPowBufferLen)
	_ = h.equihashInput(&buf)
	_, _ = buf.Write(h.Nonce[:])

	var out [progPowBufferLen]byte
	copy(out[:], buf.Bytes())
	for i := equihashInputLen; i < progPowBufferLen; i++ {
		out[i] = 0
	}
	return out
}

// WriteEquihashSeed writes the 140-byte seed the Equihash validator
// hashes against: the Equihash-input view followed by the full, unzeroed
// nonce. Unlike the ProgPoW buffer, the nonce here carries its real
// value; the Equihash solution search runs over the seed as an opaque
// Blake2b preimage rather than treating the nonce as a separate mixing
// input.
func (h *Header) WriteEquihashSeed(w io.Writer) error {
	if err := h.equihashInput(w); err != nil {
		return err
	}
	_, err := w.Write(h.Nonce[:])
	return err
}

// KeccakBuffer returns the Keccak-256 hash of the header's 140-byte
// ProgPoW buffer, the header_hash the ProgPoW library verifies and
// mixes against (§4.2).
func (h *Header) KeccakBuffer() hash.Hash {
	buf := h.progPowBuffer()
	return hash.Keccak256(buf[:])
}

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func writeAll(w io.Writer, parts ...[]byte) error {
	for _, p := range parts {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

// writeVarBytes writes a Bitcoin-style CompactSize length prefix followed
// by the bytes themselves.
func writeVarBytes(w io.Writer, b []byte) error {
	if err := writeVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	_, err := w.Write(b)
	return err
}

func writeVarInt(w io.Writer, v uint64) error {
	switch {
	case v < 0xfd:
		_, err := w.Write([]byte{byte(v)})
		return err
	case v <= 0xffff:
		var b [3]byte
		b[0] = 0xfd
		binary.LittleEndian.PutUint16(b[1:], uint16(v))
		_, err := w.Write(b[:])
		return err
	case v <= 0xffffffff:
		var b [5]byte
		b[0] = 0xfe
		binary.LittleEndian.PutUint32(b[1:], uint32(v))
		_, err := w.Write(b[:])
		return err
	default:
		var b [9]byte
		b[0] = 0xff
		binary.LittleEndian.PutUint64(b[1:], v)
		_, err := w.Write(b[:])
		return err
	}
}
