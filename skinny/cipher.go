package skinny

import "github.com/tuneinsight/romulus/internal/swar"

// Block is a single 128-bit SKINNY-128-384+ input or output block.
type Block [16]byte

func set1(v uint32) swar.Word128 { return swar.Set1Epi32(v) }

// inPermutation rearranges the state bits once, at the start of encryption,
// so the staggered inner-fixsliced Sbox representation applies cleanly.
func inPermutation(x swar.Word128) swar.Word128 {
	t0 := swar.Slli32(swar.And(x, set1(0x03030303)), 2)
	t1 := swar.And(x, set1(0x10101010))
	t0 = swar.Or(t0, swar.Slli32(t1, 3))
	t1 = swar.And(x, set1(0x0c0c0c0c))
	t0 = swar.Or(t0, swar.Srli32(t1, 2))
	t1 = swar.And(x, set1(0xe0e0e0e0))
	return swar.Or(t0, swar.Srli32(t1, 1))
}

// outPermutation is the inverse of inPermutation, applied once at the end.
func outPermutation(x swar.Word128) swar.Word128 {
	t0 := swar.Slli32(swar.And(x, set1(0x70707070)), 1)
	t1 := swar.And(x, set1(0x03030303))
	t0 = swar.Or(t0, swar.Slli32(t1, 2))
	t1 = swar.And(x, set1(0x80808080))
	t0 = swar.Or(t0, swar.Srli32(t1, 3))
	t1 = swar.And(x, set1(0x0c0c0c0c))
	return swar.Or(t0, swar.Srli32(t1, 2))
}

// sbox0..sbox3 are the four staggered views of the SKINNY Sbox that the
// fixsliced representation visits across a quadruple round.
func sbox0(x swar.Word128) swar.Word128 {
	t0 := swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x21212121))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.Srli32(swar.And(x, set1(0xfefefefe)), 1)
	t1 := swar.And(x, set1(0x01010101))
	t0 = swar.Or(t0, swar.Slli32(t1, 7))
	t0 = swar.And(t0, swar.Srli32(t0, 5))
	t0 = swar.And(t0, set1(0x06060606))
	x = swar.Xor(x, swar.Slli32(t0, 3))
	t0 = swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x12121212))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.And(x, swar.Srli32(x, 3))
	t0 = swar.And(t0, set1(0x18181818))
	x = swar.Xor(x, swar.Srli32(t0, 3))
	t0 = swar.And(x, set1(0x9f9f9f9f))
	t1 = swar.And(x, set1(0x40404040))
	t0 = swar.Or(t0, swar.Srli32(t1, 1))
	t1 = swar.And(x, set1(0x20202020))
	return swar.Or(t0, swar.Slli32(t1, 1))
}

func sbox1(x swar.Word128) swar.Word128 {
	t0 := swar.And(x, swar.Srli32(x, 3))
	t0 = swar.And(t0, set1(0x18181818))
	x = swar.Xor(x, swar.Srli32(t0, 3))
	t0 = swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x21212121))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.Srli32(swar.And(x, set1(0xfefefefe)), 1)
	t1 := swar.And(x, set1(0x01010101))
	t0 = swar.Or(t0, swar.Slli32(t1, 7))
	t0 = swar.And(t0, swar.Srli32(t0, 5))
	t0 = swar.And(t0, set1(0x06060606))
	x = swar.Xor(x, swar.Slli32(t0, 3))
	t0 = swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x12121212))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.And(x, set1(0x6f6f6f6f))
	t1 = swar.And(x, set1(0x80808080))
	t0 = swar.Or(t0, swar.Srli32(t1, 3))
	t1 = swar.And(x, set1(0x10101010))
	return swar.Or(t0, swar.Slli32(t1, 3))
}

func sbox2(x swar.Word128) swar.Word128 {
	t0 := swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x12121212))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.And(x, swar.Srli32(x, 3))
	t0 = swar.And(t0, set1(0x18181818))
	x = swar.Xor(x, swar.Srli32(t0, 3))
	t0 = swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x21212121))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.Srli32(swar.And(x, set1(0xfefefefe)), 1)
	t1 := swar.And(x, set1(0x01010101))
	t0 = swar.Or(t0, swar.Slli32(t1, 7))
	t0 = swar.And(t0, swar.Srli32(t0, 5))
	t0 = swar.And(t0, set1(0x06060606))
	x = swar.Xor(x, swar.Slli32(t0, 3))
	t0 = swar.And(x, set1(0xf9f9f9f9))
	t1 = swar.And(x, set1(0x04040404))
	t0 = swar.Or(t0, swar.Srli32(t1, 1))
	t1 = swar.And(x, set1(0x02020202))
	return swar.Or(t0, swar.Slli32(t1, 1))
}

func sbox3(x swar.Word128) swar.Word128 {
	t0 := swar.Srli32(swar.And(x, set1(0xfefefefe)), 1)
	t1 := swar.And(x, set1(0x01010101))
	t0 = swar.Or(t0, swar.Slli32(t1, 7))
	t0 = swar.And(t0, swar.Srli32(t0, 5))
	t0 = swar.And(t0, set1(0x06060606))
	x = swar.Xor(x, swar.Slli32(t0, 3))
	t0 = swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x12121212))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.And(x, swar.Srli32(x, 3))
	t0 = swar.And(t0, set1(0x18181818))
	x = swar.Xor(x, swar.Srli32(t0, 3))
	t0 = swar.And(x, swar.Srli32(x, 1))
	t0 = swar.And(t0, set1(0x21212121))
	x = swar.Xor(x, swar.Slli32(t0, 2))
	t0 = swar.And(x, set1(0xf6f6f6f6))
	t1 = swar.And(x, set1(0x08080808))
	t0 = swar.Or(t0, swar.Srli32(t1, 3))
	t1 = swar.And(x, set1(0x01010101))
	return swar.Or(t0, swar.Slli32(t1, 3))
}

// mixColumns applies the fixsliced MixColumns step; the row permutation it
// would classically need is folded into the mask tables and therefore never
// appears explicitly.
func mixColumns(x swar.Word128, m0, m1 swar.Word128) swar.Word128 {
	x = swar.Xor(x, swar.ShuffleEpi8(x, m0))
	x = swar.Xor(x, swar.ShuffleEpi8(x, m1))
	return x
}

// quadRound performs four SKINNY rounds at once: the fixsliced
// representation only needs to resynchronize its bit ordering every four
// rounds, so this is the cipher's natural iteration step.
func quadRound(x swar.Word128, rtk []swar.Word128) swar.Word128 {
	x = sbox0(x)
	x = swar.Xor(x, rtk[0])
	x = mixColumns(x, mcMask0, mcMask1)
	x = sbox1(x)
	x = swar.Xor(x, rtk[1])
	x = mixColumns(x, mcMask2, mcMask3)
	x = sbox2(x)
	x = swar.Xor(x, rtk[2])
	x = mixColumns(x, mcMask4, mcMask5)
	x = sbox3(x)
	x = swar.Xor(x, rtk[3])
	x = mixColumns(x, mcMask6, mcMask7)
	return x
}

// Encrypt runs SKINNY-128-384+ over a single block using precomputed round
// tweakeys, writing the result to dst. src and dst may be the same slice.
func Encrypt(dst, src []byte, rtk *RoundTweakeys) {
	state := swar.Load(src[:16])
	state = inPermutation(state)
	state = swar.Xor(state, set1(0xffffffff))
	for i := 0; i < Rounds; i += 4 {
		state = quadRound(state, rtk.words[i:i+4])
	}
	state = outPermutation(state)
	swar.Store(dst[:16], state)
}
