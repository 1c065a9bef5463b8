// Package skinny implements the SKINNY-128-384+ tweakable block cipher in
// its fixsliced form: the Sbox, MixColumns and the tweakey-dependent bit
// permutations are fused into a handful of 32-bit-lane operations so that
// four rounds are evaluated per "quadruple round" without ever materializing
// an explicit ShiftRows step. This is the primitive the Romulus family of
// authenticated encryption schemes builds on.
package skinny

// EncryptBlock runs SKINNY-128-384+ once, deriving round tweakeys from tk
// and encrypting src into dst. It is a convenience wrapper around
// PrecomputeRTKPlus and Encrypt for callers that only need a single block.
// Romulus's own block loops call PrecomputeRTKPlus and Encrypt directly and
// recompute the whole schedule, including the TK2/TK3-derived part, for
// every block; that part is not cached across blocks.
func EncryptBlock(dst, src []byte, tk *Tweakey) {
	rtk := PrecomputeRTKPlus(tk)
	Encrypt(dst, src, rtk)
	rtk.Zero()
}
