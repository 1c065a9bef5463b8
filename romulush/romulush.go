// Package romulush implements Romulus-H, a Hirose double-block-length
// compression function built on SKINNY-128-384+: two chaining variables (h,
// g) absorb the message 32 bytes at a time, each compression step keying
// SKINNY with the previous g and encrypting h twice (once directly, once
// with one bit flipped) to decorrelate the two outputs.
package romulush

import (
	"hash"

	"github.com/tuneinsight/romulus/skinny"
)

// Size is the length, in bytes, of a Romulus-H digest.
const Size = 32

// blockSize is the width of one compression-function message block (twice
// a SKINNY block: it supplies both TK2 and TK3).
const blockSize = 32

// Sum returns the 32-byte Romulus-H digest of data.
func Sum(data []byte) [Size]byte {
	d := new(digest)
	d.Write(data)
	var out [Size]byte
	copy(out[:], d.Sum(nil))
	return out
}

// New returns a hash.Hash computing the Romulus-H digest, for callers that
// want to stream input through io.Writer rather than hand Sum one buffer.
// This is the one streaming exception to the rest of the module's
// whole-buffer-only API: a running hash is the one construction where
// incremental input genuinely doesn't need the whole message up front.
func New() hash.Hash {
	return new(digest)
}

// digest implements hash.Hash by buffering input until a full 32-byte
// block is available, running compress, and carrying the rest forward.
type digest struct {
	h, g [16]byte
	buf  []byte
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	d.buf = append(d.buf, p...)
	for len(d.buf) >= blockSize {
		var m [blockSize]byte
		copy(m[:], d.buf[:blockSize])
		compress(&d.h, &d.g, &m)
		d.buf = d.buf[blockSize:]
	}
	return n, nil
}

// Sum finalizes a copy of the running state (padding the buffered tail and
// running one more compression step, matching Sum's own trailing block)
// and appends the digest to b, leaving d unmodified so Write may continue.
func (d *digest) Sum(b []byte) []byte {
	h, g := d.h, d.g

	var p [blockSize]byte
	n := len(d.buf)
	copy(p[:], d.buf)
	p[blockSize-1] = byte(n & 0x1f)

	h[0] ^= 2
	compress(&h, &g, &p)

	var out [Size]byte
	copy(out[:16], h[:])
	copy(out[16:], g[:])
	return append(b, out[:]...)
}

func (d *digest) Reset() {
	d.h = [16]byte{}
	d.g = [16]byte{}
	d.buf = d.buf[:0]
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return blockSize }

// compress runs one Hirose compression step in place: h' = E_g(h) ⊕ h and
// g' = E_g(h ⊕ e0) ⊕ h ⊕ e0, where e0 flips only the lowest bit of byte 0 (the
// minimal-difference constant Hirose's construction uses to decorrelate the
// two block-cipher evaluations), and the key schedule is keyed by the
// *previous* g concatenated with the message block (TK1=g, TK2=m[0:16],
// TK3=m[16:32]).
func compress(h, g *[16]byte, m *[blockSize]byte) {
	var tk skinny.Tweakey
	tk.TK1 = *g
	copy(tk.TK2[:], m[:16])
	copy(tk.TK3[:], m[16:])
	rtk := skinny.PrecomputeRTKPlus(&tk)

	hOld := *h
	gInput := hOld
	gInput[0] ^= 0x01

	var hNew, gNew [16]byte
	skinny.Encrypt(hNew[:], hOld[:], rtk)
	skinny.Encrypt(gNew[:], gInput[:], rtk)
	rtk.Zero()
	tk.Zero()

	for i := range hNew {
		hNew[i] ^= hOld[i]
	}
	for i := range gNew {
		gNew[i] ^= hOld[i]
	}
	gNew[0] ^= 0x01

	*h = hNew
	*g = gNew
}
