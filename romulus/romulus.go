// Package romulus holds the types, sentinel errors, and small stateless
// primitives (the ρ/G output function, constant-time comparison, block
// XOR, padding) shared by the Romulus-N and Romulus-M packages built on top
// of the skinny package's SKINNY-128-384+ core.
package romulus

import (
	"errors"

	"github.com/tuneinsight/romulus/internal/xof"
)

// BlockSize is the width, in bytes, of a SKINNY-128 block and of a Romulus
// key, nonce and tag.
const BlockSize = 16

// Key is a 128-bit SKINNY-128-384+ key, used as TK3 throughout Romulus.
type Key [BlockSize]byte

// Nonce is a 128-bit public message number.
type Nonce [BlockSize]byte

// Tag is a 128-bit authentication tag.
type Tag [BlockSize]byte

// MaxLFSRBlocks is the largest number of blocks the 56-bit counter LFSR can
// address before it would wrap back toward zero.
const MaxLFSRBlocks = (1 << 56) - 1

var (
	// ErrCiphertextTooShort is returned by Open when the ciphertext is
	// shorter than a tag.
	ErrCiphertextTooShort = errors.New("romulus: ciphertext shorter than tag")

	// ErrTagMismatch is returned by Open when tag verification fails.
	ErrTagMismatch = errors.New("romulus: authentication failed")

	// ErrLengthExceeded is returned when associated data or message length
	// would overflow the 56-bit counter LFSR.
	ErrLengthExceeded = errors.New("romulus: input exceeds maximum counter length")
)

// rho is the Romulus output/feedback function applied independently to
// every byte of a state: ρ(b) = (b>>1) ^ (b&0x80) ^ (b<<7).
func rho(b byte) byte {
	return (b >> 1) ^ (b & 0x80) ^ (b << 7)
}

// G maps ρ across a full 16-byte state, producing the keystream block used
// both for message encryption/decryption and for tag derivation.
func G(dst, state *[16]byte) {
	for i := range state {
		dst[i] = rho(state[i])
	}
}

// XorBlock XORs a full 16-byte block of src into dst in place.
func XorBlock(dst *[16]byte, src []byte) {
	for i := 0; i < BlockSize; i++ {
		dst[i] ^= src[i]
	}
}

// Pad copies a partial (< 16-byte) tail into a fresh 16-byte block, zero
// padding it and writing its byte length into the last byte, matching the
// padding convention every Romulus absorption/encryption phase uses for its
// final partial block.
func Pad(tail []byte) [16]byte {
	var block [16]byte
	copy(block[:], tail)
	block[15] = byte(len(tail))
	return block
}

// ConstantTimeCompare reports whether a and b are equal using the
// accumulate-OR pattern: every byte pair is compared regardless of earlier
// mismatches, so the number of equal leading bytes does not leak through
// timing.
func ConstantTimeCompare(a, b [BlockSize]byte) bool {
	var acc byte
	for i := 0; i < BlockSize; i++ {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

// BlocksFor reports how many 16-byte blocks n bytes occupy, rounding up,
// and whether n is an exact multiple of the block size.
func BlocksFor(n int) (blocks int, exact bool) {
	if n == 0 {
		return 0, true
	}
	blocks = (n + BlockSize - 1) / BlockSize
	exact = n%BlockSize == 0
	return blocks, exact
}

// CheckLength returns ErrLengthExceeded if processing n bytes would require
// more blocks than the counter LFSR can address.
func CheckLength(n int) error {
	blocks, _ := BlocksFor(n)
	if uint64(blocks) > MaxLFSRBlocks {
		return ErrLengthExceeded
	}
	return nil
}

// DeriveKey deterministically derives a Romulus key from a secret and a
// context label, for callers who want a reproducible key schedule (e.g.
// deriving per-session keys from a shared secret) rather than managing raw
// key bytes directly. It is a convenience wrapper, not part of the Romulus
// constructions themselves.
func DeriveKey(label string, secret []byte) Key {
	var k Key
	copy(k[:], xof.Expand(label, secret, BlockSize))
	return k
}
