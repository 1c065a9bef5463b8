// Package romulusm implements Romulus-M, the misuse-resistant member of the
// Romulus family: ciphertext is a deterministic function of (key, nonce,
// associated data, message), so a repeated nonce only ever reveals whether
// two messages under it were equal, never anything about their content.
package romulusm

import (
	"github.com/tuneinsight/romulus/internal/ctutil"
	"github.com/tuneinsight/romulus/romulus"
	"github.com/tuneinsight/romulus/skinny"
)

// Seal computes the two-pass Romulus-M construction: pass 1 derives a tag
// by absorbing ad and plaintext together, pass 2 re-encrypts plaintext
// using the tag as the CTR-mode IV. The result (ciphertext || tag) is
// appended to dst.
func Seal(dst []byte, key romulus.Key, nonce romulus.Nonce, ad, plaintext []byte) []byte {
	if err := romulus.CheckLength(len(ad)); err != nil {
		panic(err)
	}
	if err := romulus.CheckLength(len(plaintext)); err != nil {
		panic(err)
	}

	tag := computeTag(key, ad, plaintext)

	out := growBuffer(dst, len(plaintext)+romulus.BlockSize)
	ct := out[len(dst) : len(dst)+len(plaintext)]
	ctrPass(key, nonce, tag, plaintext, ct, true)
	copy(out[len(dst)+len(plaintext):], tag[:])
	return out
}

// Open reverses Seal: it recovers the plaintext using the claimed tag as
// the pass-2 IV, recomputes the tag over (ad, recovered plaintext), and
// only returns the plaintext if the two tags match in constant time.
func Open(dst []byte, key romulus.Key, nonce romulus.Nonce, ad, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < romulus.BlockSize {
		return nil, romulus.ErrCiphertextTooShort
	}
	msgLen := len(ciphertext) - romulus.BlockSize
	if err := romulus.CheckLength(len(ad)); err != nil {
		return nil, err
	}
	if err := romulus.CheckLength(msgLen); err != nil {
		return nil, err
	}

	var claimedTag romulus.Tag
	copy(claimedTag[:], ciphertext[msgLen:])

	scratch := make([]byte, msgLen)
	ctrPass(key, nonce, claimedTag, ciphertext[:msgLen], scratch, false)

	recomputed := computeTag(key, ad, scratch)
	if !romulus.ConstantTimeCompare(recomputed, claimedTag) {
		ctutil.Zero(scratch)
		return nil, romulus.ErrTagMismatch
	}
	if dst == nil {
		return scratch, nil
	}
	return append(dst, scratch...), nil
}

// computeTag runs Romulus-M's pass 1: a continuous double-block absorption
// over ad immediately followed by msg (domain 0x28 while still inside ad,
// 0x2C from the first message byte onward), finished by a dedicated cipher
// call whose domain folds in the AD/message length parity. The final state
// under G is the tag.
//
// The AD and message streams are concatenated into one scratch buffer so
// the double-block loop can walk across the AD/message boundary uniformly;
// this is the one place in the module that allocates on the hot path,
// trading the stack-only discipline spec.md §5 asks of the core for
// considerably simpler, more obviously correct boundary handling.
func computeTag(key romulus.Key, ad, msg []byte) romulus.Tag {
	var tk skinny.Tweakey
	tk.TK3 = key
	tk.ResetCounter()

	var state [16]byte
	adLen, msgLen := len(ad), len(msg)
	finalDomain := finalBase ^ finalADDomain(adLen, msgLen)

	stream := make([]byte, 0, adLen+msgLen)
	stream = append(stream, ad...)
	stream = append(stream, msg...)

	if len(stream) > 0 {
		consumed := 0
		tk.SetDomain(domainPass1AD)
		for len(stream)-consumed > 32 {
			blockEnd := consumed + 32
			if blockEnd <= adLen {
				tk.SetDomain(domainPass1AD)
			} else {
				tk.SetDomain(domainPass1Msg)
			}
			romulus.XorBlock(&state, stream[consumed:consumed+16])
			var tk2 [16]byte
			copy(tk2[:], stream[consumed+16:blockEnd])
			tk.TK2 = tk2
			tk.AdvanceCounter()
			absorbBlock(&state, &tk)
			tk.AdvanceCounter()
			consumed = blockEnd
		}

		tail := stream[consumed:]
		switch {
		case len(tail) == 32:
			if consumed+32 <= adLen {
				tk.SetDomain(domainPass1AD)
			} else {
				tk.SetDomain(domainPass1Msg)
			}
			romulus.XorBlock(&state, tail[:16])
			var tk2 [16]byte
			copy(tk2[:], tail[16:32])
			tk.TK2 = tk2
			tk.AdvanceCounter()
			absorbBlock(&state, &tk)
			tk.AdvanceCounter()
		case len(tail) > 16:
			if consumed+len(tail) <= adLen {
				tk.SetDomain(domainPass1AD)
			} else {
				tk.SetDomain(domainPass1Msg)
			}
			romulus.XorBlock(&state, tail[:16])
			tk.TK2 = romulus.Pad(tail[16:])
			tk.AdvanceCounter()
			absorbBlock(&state, &tk)
			tk.AdvanceCounter()
		case len(tail) == 16:
			romulus.XorBlock(&state, tail)
		case len(tail) > 0:
			pad := romulus.Pad(tail)
			romulus.XorBlock(&state, pad[:])
		}
	}

	tk.AdvanceCounter()
	tk.SetDomain(finalDomain)
	tk.TK2 = [16]byte{}
	absorbBlock(&state, &tk)

	var tag romulus.Tag
	romulus.G((*[16]byte)(&tag), &state)
	tk.Zero()
	return tag
}

// ctrPass runs Romulus-M's pass 2: a CTR-like keystream derived from
// SKINNY-128-384+ keyed with TK2=nonce and seeded with tag as the initial
// state, XORed block by block with in to produce out. Because this pass
// only ever uses the keystream (not the cipher's feedback), the same
// routine implements both encryption and decryption.
func ctrPass(key romulus.Key, nonce romulus.Nonce, tag romulus.Tag, in, out []byte, _ bool) {
	var tk skinny.Tweakey
	tk.TK3 = key
	tk.TK2 = nonce
	tk.ResetCounter()
	tk.SetDomain(domainPass2)

	state := [16]byte(tag)
	for len(in) >= romulus.BlockSize {
		absorbBlock(&state, &tk)
		var ks [16]byte
		romulus.G(&ks, &state)
		for i := 0; i < romulus.BlockSize; i++ {
			out[i] = in[i] ^ ks[i]
		}
		tk.AdvanceCounter()
		in = in[romulus.BlockSize:]
		out = out[romulus.BlockSize:]
	}
	if len(in) > 0 {
		absorbBlock(&state, &tk)
		var ks [16]byte
		romulus.G(&ks, &state)
		for i := range in {
			out[i] = in[i] ^ ks[i]
		}
	}
	tk.Zero()
}

func absorbBlock(state *[16]byte, tk *skinny.Tweakey) {
	rtk := skinny.PrecomputeRTKPlus(tk)
	skinny.Encrypt(state[:], state[:], rtk)
	rtk.Zero()
}

func growBuffer(dst []byte, extra int) []byte {
	if cap(dst)-len(dst) >= extra {
		return dst[:len(dst)+extra]
	}
	out := make([]byte, len(dst)+extra)
	copy(out, dst)
	return out
}
