package swar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	in := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	w := Load(in)
	out := make([]byte, 16)
	Store(out, w)
	assert.Equal(t, in, out)
}

func TestSetEpi32LaneOrder(t *testing.T) {
	w := SetEpi32(0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c)
	out := make([]byte, 16)
	Store(out, w)
	assert.Equal(t, []byte{
		0x0c, 0x0d, 0x0e, 0x0f,
		0x08, 0x09, 0x0a, 0x0b,
		0x04, 0x05, 0x06, 0x07,
		0x00, 0x01, 0x02, 0x03,
	}, out)
}

func TestXorSelfIsZero(t *testing.T) {
	w := Load([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	z := Xor(w, w)
	assert.Equal(t, Word128{}, z)
}

func TestSlliSrliSi128Inverse(t *testing.T) {
	w := Load([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	shifted := SlliSi128(w, 4)
	back := SrliSi128(shifted, 4)
	out := make([]byte, 16)
	Store(out, back)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0, 0, 0, 0}, out)
}

func TestShuffleEpi8Identity(t *testing.T) {
	identity := make([]byte, 16)
	for i := range identity {
		identity[i] = byte(i)
	}
	mask := Load(identity)
	x := Load([]byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 11, 12, 13, 14, 15, 16})
	out := make([]byte, 16)
	Store(out, ShuffleEpi8(x, mask))
	in := make([]byte, 16)
	Store(in, x)
	assert.Equal(t, in, out)
}

func TestShuffleEpi8ZeroesHighBit(t *testing.T) {
	x := Load([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	maskBytes := make([]byte, 16)
	maskBytes[0] = 0x80
	mask := Load(maskBytes)
	out := make([]byte, 16)
	Store(out, ShuffleEpi8(x, mask))
	assert.Equal(t, byte(0), out[0])
}
