package skinny

import "github.com/tuneinsight/romulus/internal/swar"

// Tweakey holds the three 128-bit tweakey lanes SKINNY-128-384+ is keyed
// with. During a Romulus call, TK1 doubles as the 56-bit counter (bytes
// 0..6) plus the domain-separation byte (byte 7); bytes 8..15 stay zero.
type Tweakey struct {
	TK1, TK2, TK3 [16]byte
}

// ResetCounter sets TK1's counter field back to its initial value (1) and
// clears the rest of TK1, per the reference Romulus initialization.
func (tk *Tweakey) ResetCounter() {
	tk.TK1 = [16]byte{}
	tk.TK1[0] = 0x01
}

// SetDomain writes the current phase's domain-separation byte into TK1[7].
func (tk *Tweakey) SetDomain(domain byte) {
	tk.TK1[7] = domain
}

// AdvanceCounter steps the 56-bit LFSR counter held in TK1[0:7] forward by
// one, using the primitive polynomial x^56 + x^7 + x^4 + x^2 + 1: the value
// is shifted left by one bit with feedback bit0 = bit55 ^ bit6 ^ bit3 ^ bit1.
func (tk *Tweakey) AdvanceCounter() {
	bit := func(n int) byte { return (tk.TK1[n/8] >> uint(n%8)) & 1 }
	feedback := bit(55) ^ bit(6) ^ bit(3) ^ bit(1)
	carry := feedback
	for i := 0; i < 7; i++ {
		next := tk.TK1[i] >> 7
		tk.TK1[i] = (tk.TK1[i] << 1) | carry
		carry = next
	}
}

// Zero overwrites all three tweakey lanes. It returns nothing, and like any
// pure-Go zeroization it does not guarantee the compiler keeps the stores.
func (tk *Tweakey) Zero() {
	for i := range tk.TK1 {
		tk.TK1[i] = 0
	}
	for i := range tk.TK2 {
		tk.TK2[i] = 0
	}
	for i := range tk.TK3 {
		tk.TK3[i] = 0
	}
}

// RoundTweakeys is the precomputed, sliced round-tweakey array consumed by
// Encrypt. It is allocated and returned by PrecomputeRTKPlus and should be zeroized
// by the caller once the block(s) it keys have been processed.
type RoundTweakeys struct {
	words [Rounds]swar.Word128
}

// Zero overwrites every precomputed round tweakey word.
func (r *RoundTweakeys) Zero() {
	for i := range r.words {
		r.words[i] = swar.Word128{}
	}
}

// PrecomputeRTKPlus derives the full round-tweakey schedule for
// SKINNY-128-384+ from tk, following the SKINNY128_384_PLUS path: LFSR2 over
// TK2 and LFSR3 over TK3 are combined first, then the byte permutation P
// (with round constants and the Sbox NOT-mask folded in) is applied to the
// whole schedule together with TK1.
func PrecomputeRTKPlus(tk *Tweakey) *RoundTweakeys {
	var rt RoundTweakeys
	rtk := rt.words[:]
	precomputeLFSRTK2(rtk, tk.TK2[:], Rounds)
	precomputeLFSRTK3(rtk, tk.TK3[:], Rounds)
	permuteRTK(rtk, tk.TK1[:], Rounds)
	return &rt
}

// lfsr2 applies LFSR2 independently to every byte lane of y.
func lfsr2(y swar.Word128) swar.Word128 {
	t0 := swar.Slli32(y, 2)
	t0 = swar.Xor(t0, y)
	t0 = swar.And(t0, set1(0x80808080))
	t0 = swar.Srli32(t0, 7)
	x := swar.Slli32(swar.And(y, set1(0x7f7f7f7f)), 1)
	return swar.Or(x, t0)
}

// lfsr3 applies LFSR3 independently to every byte lane of y.
func lfsr3(y swar.Word128) swar.Word128 {
	t0 := swar.Srli32(y, 6)
	t0 = swar.Xor(t0, y)
	t0 = swar.And(t0, set1(0x01010101))
	t0 = swar.Slli32(t0, 7)
	x := swar.And(swar.Srli32(y, 1), set1(0x7f7f7f7f))
	return swar.Or(x, t0)
}

// precomputeLFSRTK2 fills the odd-indexed (plus index 0) round-tweakey slots
// with the successive LFSR2 iterates of TK2; the LFSR only needs to be
// applied once every two rounds because the fixsliced representation packs
// two rounds' state into each word.
func precomputeLFSRTK2(rtk []swar.Word128, tk2 []byte, rounds int) {
	rtk[0] = swar.Load(tk2)
	rtk[1] = lfsr2(rtk[0])
	for i := 3; i < rounds; i += 2 {
		rtk[i] = lfsr2(rtk[i-2])
	}
}

// precomputeLFSRTK3 XORs the successive LFSR3 iterates of TK3 into the same
// slots precomputeLFSRTK2 populated.
func precomputeLFSRTK3(rtk []swar.Word128, tk3 []byte, rounds int) {
	rtk3Old := swar.Load(tk3)
	rtk[0] = swar.Xor(rtk[0], rtk3Old)
	for i := 1; i < rounds; i += 4 {
		rtk3New := lfsr3(rtk3Old)
		rtk[i] = swar.Xor(rtk[i], rtk3New)
		rtk3Old = lfsr3(rtk3New)
		rtk[i+2] = swar.Xor(rtk[i+2], rtk3Old)
	}
}

func permBits0(x swar.Word128) swar.Word128 {
	res := swar.And(x, set1(0x09090909))
	tmp := swar.And(x, set1(0x40404040))
	res = swar.Or(res, swar.Slli32(tmp, 1))
	tmp = swar.And(x, set1(0x06060606))
	res = swar.Or(res, swar.Slli32(tmp, 4))
	tmp = swar.And(x, set1(0xb0b0b0b0))
	return swar.Or(res, swar.Srli32(tmp, 3))
}

func permBits1(x swar.Word128) swar.Word128 {
	res := swar.And(x, set1(0x0c0c0c0c))
	tmp := swar.And(x, set1(0x03030303))
	res = swar.Or(swar.Slli32(res, 2), swar.Slli32(tmp, 6))
	tmp = swar.And(x, set1(0xe0e0e0e0))
	res = swar.Or(res, swar.Srli32(tmp, 5))
	tmp = swar.And(x, set1(0x10101010))
	return swar.Or(res, swar.Srli32(tmp, 1))
}

func permBits2(x swar.Word128) swar.Word128 {
	res := swar.And(x, set1(0x06060606))
	tmp := swar.And(x, set1(0x30303030))
	res = swar.Or(res, swar.Slli32(tmp, 1))
	tmp = swar.And(x, set1(0x09090909))
	res = swar.Or(res, swar.Slli32(tmp, 4))
	tmp = swar.And(x, set1(0x80808080))
	res = swar.Or(res, swar.Srli32(tmp, 7))
	tmp = swar.And(x, set1(0x40404040))
	return swar.Or(res, swar.Srli32(tmp, 3))
}

func permBits3(x swar.Word128) swar.Word128 {
	res := swar.And(x, set1(0x03030303))
	tmp := swar.And(x, set1(0x10101010))
	res = swar.Or(swar.Slli32(res, 2), swar.Slli32(tmp, 3))
	tmp = swar.And(x, set1(0x0c0c0c0c))
	res = swar.Or(res, swar.Srli32(tmp, 2))
	tmp = swar.And(x, set1(0xe0e0e0e0))
	return swar.Or(res, swar.Srli32(tmp, 1))
}

// permuteRTK applies the tweakey permutation P (and its precomputed
// powers) across the whole round-tweakey array, folding in TK1, the round
// constants, and the Sbox NOT-mask as it goes. The set of P powers used
// alternates every 8 rounds (period 16), and every round the four fixsliced
// "staggered" positions each need their own bit permutation
// (permBits0..permBits3).
func permuteRTK(rtk []swar.Word128, tk1 []byte, rounds int) {
	rtk1 := swar.Load(tk1)
	tmp0 := swar.Xor(rtk[0], rtk1)
	for i := 0; i < rounds; i += 8 {
		oddPower := i%16 < 8

		rtk[i] = swar.And(tmp0, tkMaskLo)
		rtk[i] = swar.Xor(rtk[i], rc0(i))
		rtk[i] = permBits0(rtk[i])

		rtk[i+1] = swar.Xor(rtk[i+1], rtk1)
		if oddPower {
			tmp0 = swar.ShuffleEpi8(rtk[i+1], perm2)
		} else {
			tmp0 = swar.ShuffleEpi8(rtk[i+1], perm10)
		}
		rtk[i+1] = swar.And(tmp0, tkMaskHi)
		tmp1 := swar.SrliSi128(rtk[i+1], 12)
		rtk[i+1] = swar.SlliSi128(rtk[i+1], 4)
		rtk[i+1] = swar.Or(rtk[i+1], tmp1)
		rtk[i+1] = swar.Xor(rtk[i+1], rc1(i+1))
		rtk[i+1] = permBits1(rtk[i+1])

		rtk[i+2] = swar.And(tmp0, tkMaskLo)
		rtk[i+2] = swar.SlliSi128(rtk[i+2], 8)
		rtk[i+2] = swar.Xor(rtk[i+2], rc2(i+2))
		rtk[i+2] = permBits2(rtk[i+2])

		rtk[i+3] = swar.Xor(rtk[i+3], rtk1)
		if oddPower {
			tmp0 = swar.ShuffleEpi8(rtk[i+3], perm4)
		} else {
			tmp0 = swar.ShuffleEpi8(rtk[i+3], perm12)
		}
		rtk[i+3] = swar.And(tmp0, tkMaskHi)
		rtk[i+3] = swar.SrliSi128(rtk[i+3], 4)
		rtk[i+3] = swar.Xor(rtk[i+3], rc3(i+3))
		rtk[i+3] = permBits3(rtk[i+3])

		rtk[i+4] = swar.And(tmp0, tkMaskLo)
		rtk[i+4] = swar.Xor(rtk[i+4], rc4(i+4))
		rtk[i+4] = permBits0(rtk[i+4])

		rtk[i+5] = swar.Xor(rtk[i+5], rtk1)
		if oddPower {
			tmp0 = swar.ShuffleEpi8(rtk[i+5], perm6)
		} else {
			tmp0 = swar.ShuffleEpi8(rtk[i+5], perm14)
		}
		rtk[i+5] = swar.And(tmp0, tkMaskHi)
		tmp1 = swar.SrliSi128(rtk[i+5], 12)
		rtk[i+5] = swar.SlliSi128(rtk[i+5], 4)
		rtk[i+5] = swar.Or(rtk[i+5], tmp1)
		rtk[i+5] = swar.Xor(rtk[i+5], rc5(i+5))
		rtk[i+5] = permBits1(rtk[i+5])

		rtk[i+6] = swar.And(tmp0, tkMaskLo)
		rtk[i+6] = swar.SlliSi128(rtk[i+6], 8)
		rtk[i+6] = swar.Xor(rtk[i+6], rc6(i+6))
		rtk[i+6] = permBits2(rtk[i+6])

		rtk[i+7] = swar.Xor(rtk[i+7], rtk1)
		if oddPower {
			tmp0 = swar.ShuffleEpi8(rtk[i+7], perm8)
		} else {
			tmp0 = swar.ShuffleEpi8(rtk[i+7], perm1)
		}
		rtk[i+7] = swar.And(tmp0, tkMaskHi)
		rtk[i+7] = swar.SrliSi128(rtk[i+7], 4)
		rtk[i+7] = swar.Xor(rtk[i+7], rc7(i+7))
		rtk[i+7] = permBits3(rtk[i+7])
	}
	rtk[rounds-1] = swar.Xor(rtk[rounds-1], swar.SetEpi32(0, 0xffffffff, 0xffffffff, 0))
}
