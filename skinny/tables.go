package skinny

import "github.com/tuneinsight/romulus/internal/swar"

// Rounds is the number of SKINNY-128-384+ rounds, matching
// SKINNY128_384_PLUS_ROUNDS (equal to SKINNY128_128_ROUNDS) in the reference
// fixsliced implementation.
const Rounds = 40

// mixColumns masks implement the fixsliced MixColumns step (the row
// permutation is folded in and therefore omitted at the byte level).
var (
	mcMask0 = swar.SetEpi32(0x80808080, 0x01000302, 0x0a09080b, 0x80808080)
	mcMask1 = swar.SetEpi32(0x080b0a09, 0x80808080, 0x80808080, 0x80808080)
	mcMask2 = swar.SetEpi32(0x80808080, 0x80808080, 0x0f0e0d0c, 0x05040706)
	mcMask3 = swar.SetEpi32(0x80808080, 0x05040706, 0x80808080, 0x80808080)
	mcMask4 = swar.SetEpi32(0x00030201, 0x80808080, 0x80808080, 0x09080b0a)
	mcMask5 = swar.SetEpi32(0x80808080, 0x80808080, 0x02010003, 0x80808080)
	mcMask6 = swar.SetEpi32(0x07060504, 0x0f0e0d0c, 0x80808080, 0x80808080)
	mcMask7 = swar.SetEpi32(0x80808080, 0x80808080, 0x80808080, 0x0f0e0d0c)
)

// tweakey permutation P and its precomputed powers, applied every 8 rounds to keep
// the inner-fixsliced bit ordering synchronized.
var (
	perm1  = swar.SetEpi32(0x0e0d0c0f, 0x0b0a0908, 0x07060504, 0x03020100)
	perm2  = swar.SetEpi32(0x0b0c0e0a, 0x080f090d, 0x04060203, 0x01050007)
	perm4  = swar.SetEpi32(0x080d0a0c, 0x0b0f0e09, 0x04000502, 0x03070601)
	perm6  = swar.SetEpi32(0x0a090e08, 0x0b0c0f0d, 0x01060002, 0x07050304)
	perm8  = swar.SetEpi32(0x09080f0c, 0x0a0b0e0d, 0x04010007, 0x02030605)
	perm10 = swar.SetEpi32(0x0a0f090b, 0x0d0c0e08, 0x07010302, 0x06000504)
	perm12 = swar.SetEpi32(0x0d080b0f, 0x0a0c090e, 0x07050003, 0x02040106)
	perm14 = swar.SetEpi32(0x0b0e090d, 0x0a0f0c08, 0x06010503, 0x04000207)
)

// tweakey extraction masks: each round tweakey word packs two rounds' worth
// of state, half of which is discarded via these masks.
var (
	tkMaskLo = swar.SetEpi32(0x00000000, 0x00000000, 0xffffffff, 0xffffffff)
	tkMaskHi = swar.SetEpi32(0xffffffff, 0xffffffff, 0x00000000, 0x00000000)
)

// rc holds the 56 SKINNY round constants; only the first Rounds entries are
// consumed by the 384+ schedule.
var rc = [56]uint8{
	0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3E, 0x3D, 0x3B,
	0x37, 0x2F, 0x1E, 0x3C, 0x39, 0x33, 0x27, 0x0E,
	0x1D, 0x3A, 0x35, 0x2B, 0x16, 0x2C, 0x18, 0x30,
	0x21, 0x02, 0x05, 0x0B, 0x17, 0x2E, 0x1C, 0x38,
	0x31, 0x23, 0x06, 0x0D, 0x1B, 0x36, 0x2D, 0x1A,
	0x34, 0x29, 0x12, 0x24, 0x08, 0x11, 0x22, 0x04,
	0x09, 0x13, 0x26, 0x0C, 0x19, 0x32, 0x25, 0x0A,
}

// rc0..rc7 fold round constant rc[i] and the Sbox's NOT-mask into the round
// tweakey words at the eight staggered positions a QUADRUPLE_ROUND visits.
func rc0(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32(0xffffffff, 0xfffffffd, v>>4, v&0x0f)
}

func rc1(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32((v&0xf)<<8, 0xffffffff, 0xfdffffff, v>>4)
}

func rc2(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32((v&0xf0)<<4, (v&0xf)<<24, 0xffffffff, 0xfdffffff)
}

func rc3(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32(0xfffffffd, (v&0xf0)<<20, (v&0xf)<<16, 0xffffffff)
}

func rc4(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32(0xffffffff, 0xfffdffff, (v&0xf0)<<12, (v&0xf)<<16)
}

func rc5(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32((v&0xf)<<24, 0xffffffff, 0xfffffdff, (v&0xf0)<<12)
}

func rc6(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32((v&0xf0)<<20, (v&0x0f)<<8, 0xffffffff, 0xfffffdff)
}

func rc7(i int) swar.Word128 {
	v := uint32(rc[i])
	return swar.SetEpi32(0xfffdffff, (v&0xf0)<<4, v&0x0f, 0xffffffff)
}
