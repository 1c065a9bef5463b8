// Package romulusn implements Romulus-N, the nonce-respecting member of the
// Romulus family of authenticated encryption schemes built on
// SKINNY-128-384+.
package romulusn

import (
	"github.com/tuneinsight/romulus/internal/ctutil"
	"github.com/tuneinsight/romulus/romulus"
	"github.com/tuneinsight/romulus/skinny"
)

// Seal encrypts and authenticates plaintext under key and nonce, binding in
// associated data ad, and appends the result to dst. The nonce must never
// repeat under the same key: Romulus-N (unlike Romulus-M) offers no
// misuse resistance.
func Seal(dst []byte, key romulus.Key, nonce romulus.Nonce, ad, plaintext []byte) []byte {
	if err := romulus.CheckLength(len(ad)); err != nil {
		panic(err)
	}
	if err := romulus.CheckLength(len(plaintext)); err != nil {
		panic(err)
	}

	var tk skinny.Tweakey
	tk.TK3 = key
	tk.ResetCounter()

	var state [16]byte
	absorbAD(&state, &tk, ad, key)

	out := growBuffer(dst, len(plaintext)+romulus.BlockSize)
	ct := out[len(dst) : len(dst)+len(plaintext)]
	processMessage(&state, &tk, nonce, plaintext, ct, true)

	tag := generateTag(&state, &tk, nonce, len(ad), len(plaintext))
	copy(out[len(dst)+len(plaintext):], tag[:])

	tk.Zero()
	return out
}

// Open verifies and decrypts ciphertext under key and nonce and appends the
// plaintext to dst. It returns romulus.ErrCiphertextTooShort if ciphertext
// is shorter than a tag, or romulus.ErrTagMismatch if authentication fails;
// on failure no plaintext is appended.
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

	var tk skinny.Tweakey
	tk.TK3 = key
	tk.ResetCounter()

	var state [16]byte
	absorbAD(&state, &tk, ad, key)

	scratch := make([]byte, msgLen)
	processMessage(&state, &tk, nonce, ciphertext[:msgLen], scratch, false)

	tag := generateTag(&state, &tk, nonce, len(ad), msgLen)
	var gotTag [16]byte
	copy(gotTag[:], ciphertext[msgLen:])
	if !romulus.ConstantTimeCompare(tag, gotTag) {
		tk.Zero()
		ctutil.Zero(scratch)
		return nil, romulus.ErrTagMismatch
	}

	tk.Zero()
	if dst == nil {
		return scratch, nil
	}
	return append(dst, scratch...), nil
}

// absorbAD XORs associated data into state two blocks at a time, TK2 taking
// the second half of each double block (or the zero/padded leftover), TK3
// fixed to key for the whole call.
func absorbAD(state *[16]byte, tk *skinny.Tweakey, ad []byte, key romulus.Key) {
	if len(ad) == 0 {
		return
	}
	// Double-block absorption steps (whether looped or the trailing
	// leftover) advance the counter twice per spec.md §4.5: once to reach
	// the value this cipher call is keyed with, once more to leave the
	// counter ready for whatever absorption step follows.
	tk.SetDomain(domainADDouble)
	for len(ad) > 2*romulus.BlockSize {
		romulus.XorBlock(state, ad[:16])
		tk.TK2 = [16]byte{}
		copy(tk.TK2[:], ad[16:32])
		tk.AdvanceCounter()
		absorbBlock(state, tk)
		tk.AdvanceCounter()
		ad = ad[32:]
	}

	switch {
	case len(ad) == 2*romulus.BlockSize:
		romulus.XorBlock(state, ad[:16])
		tk.TK2 = [16]byte{}
		copy(tk.TK2[:], ad[16:32])
		tk.AdvanceCounter()
		absorbBlock(state, tk)
		tk.AdvanceCounter()
	case len(ad) > romulus.BlockSize:
		romulus.XorBlock(state, ad[:16])
		tk.TK2 = romulus.Pad(ad[16:])
		tk.AdvanceCounter()
		absorbBlock(state, tk)
		tk.AdvanceCounter()
	case len(ad) == romulus.BlockSize:
		// Single-block terminal: only one counter step, matching the
		// merge-with-next-phase convention (no block follows it here, so
		// the step just readies the counter for the message phase).
		tk.SetDomain(domainADSingleFull)
		romulus.XorBlock(state, ad)
		tk.TK2 = [16]byte{}
		tk.AdvanceCounter()
		absorbBlock(state, tk)
	default:
		tk.SetDomain(domainADSingleTerminal)
		pad := romulus.Pad(ad)
		romulus.XorBlock(state, pad[:])
		tk.TK2 = [16]byte{}
		tk.AdvanceCounter()
		absorbBlock(state, tk)
	}
}

// absorbBlock runs one SKINNY-128-384+ call over state in place, deriving
// the round tweakeys from the current tk and zeroizing them immediately
// after use.
func absorbBlock(state *[16]byte, tk *skinny.Tweakey) {
	rtk := skinny.PrecomputeRTKPlus(tk)
	skinny.Encrypt(state[:], state[:], rtk)
	rtk.Zero()
}

// processMessage runs the Romulus-N message phase: for each block, state is
// enciphered under TK2=nonce, the keystream ρ(state) is XORed with the
// input, and state is fed back with the plaintext (encrypt and decrypt
// agree on which value that is).
func processMessage(state *[16]byte, tk *skinny.Tweakey, nonce romulus.Nonce, in, out []byte, encrypt bool) {
	tk.SetDomain(domainMsgBlock)
	for len(in) > romulus.BlockSize {
		tk.TK2 = nonce
		absorbBlock(state, tk)
		var ks [16]byte
		romulus.G(&ks, state)
		var m [16]byte
		for i := 0; i < romulus.BlockSize; i++ {
			if encrypt {
				m[i] = in[i]
				out[i] = m[i] ^ ks[i]
			} else {
				m[i] = in[i] ^ ks[i]
				out[i] = m[i]
			}
		}
		romulus.XorBlock(state, m[:])
		tk.AdvanceCounter()
		in = in[16:]
		out = out[16:]
	}

	tk.SetDomain(domainMsgFinal)
	tk.TK2 = nonce
	absorbBlock(state, tk)
	if len(in) == 0 {
		return
	}
	var ks [16]byte
	romulus.G(&ks, state)
	n := len(in)
	for i := 0; i < n; i++ {
		if encrypt {
			state[i] ^= in[i]
			out[i] = in[i] ^ ks[i]
		} else {
			m := in[i] ^ ks[i]
			out[i] = m
			state[i] ^= m
		}
	}
	state[15] ^= byte(n)
}

// generateTag runs the dedicated tag-generation cipher call (one counter
// step past the last message block) and returns G of the result.
func generateTag(state *[16]byte, tk *skinny.Tweakey, nonce romulus.Nonce, adLen, msgLen int) romulus.Tag {
	tk.AdvanceCounter()
	tk.SetDomain(finalTagDomain(adLen, msgLen))
	tk.TK2 = nonce
	absorbBlock(state, tk)
	var tag romulus.Tag
	romulus.G((*[16]byte)(&tag), state)
	return tag
}

func growBuffer(dst []byte, extra int) []byte {
	if cap(dst)-len(dst) >= extra {
		return dst[:len(dst)+extra]
	}
	out := make([]byte, len(dst)+extra)
	copy(out, dst)
	return out
}
