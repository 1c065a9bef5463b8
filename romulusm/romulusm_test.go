package romulusm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tuneinsight/romulus/internal/fixtures"
	"github.com/tuneinsight/romulus/romulus"
)

func TestSealOpenFixtureMatrix(t *testing.T) {
	for _, v := range fixtures.Vectors([]byte("romulusm-matrix-seed")) {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			ct := Seal(nil, romulus.Key(v.Key), romulus.Nonce(v.Nonce), v.AD, v.Msg)
			got, err := Open(nil, romulus.Key(v.Key), romulus.Nonce(v.Nonce), v.AD, ct)
			assert.NoError(t, err)
			assert.Equal(t, v.Msg, got)
		})
	}
}

func testKeyNonce() (romulus.Key, romulus.Nonce) {
	var key romulus.Key
	var nonce romulus.Nonce
	for i := range key {
		key[i] = byte(i + 1)
	}
	for i := range nonce {
		nonce[i] = byte(0xB0 + i)
	}
	return key, nonce
}

func TestSealOpenRoundTrip(t *testing.T) {
	key, nonce := testKeyNonce()
	ad := []byte("associated data")
	pt := []byte("the quick brown fox jumps over the lazy dog, misuse resistant")

	ct := Seal(nil, key, nonce, ad, pt)
	got, err := Open(nil, key, nonce, ad, ct)
	assert.NoError(t, err)
	assert.Equal(t, pt, got)
}

func TestSealOpenVariousLengths(t *testing.T) {
	key, nonce := testKeyNonce()
	lengths := []int{0, 1, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100}
	for _, n := range lengths {
		pt := make([]byte, n)
		for i := range pt {
			pt[i] = byte(i * 3)
		}
		ad := make([]byte, n)
		for i := range ad {
			ad[i] = byte(n - i)
		}
		ct := Seal(nil, key, nonce, ad, pt)
		got, err := Open(nil, key, nonce, ad, ct)
		assert.NoError(t, err, "length %d", n)
		assert.Equal(t, pt, got, "length %d", n)
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	key, nonce := testKeyNonce()
	ad := []byte("ad")
	pt := []byte("secret message")

	ct := Seal(nil, key, nonce, ad, pt)
	ct[0] ^= 1

	got, err := Open(nil, key, nonce, ad, ct)
	assert.ErrorIs(t, err, romulus.ErrTagMismatch)
	assert.Nil(t, got)
}

// TestRepeatedNonceSameMessageSameCiphertext exercises the headline
// misuse-resistance property: unlike Romulus-N, reusing a nonce for the
// same (ad, message) pair must reveal nothing beyond "these are the same
// input", so the ciphertext is identical both times.
func TestRepeatedNonceSameMessageSameCiphertext(t *testing.T) {
	key, nonce := testKeyNonce()
	ad := []byte("ad")
	pt := []byte("identical message")

	ct1 := Seal(nil, key, nonce, ad, pt)
	ct2 := Seal(nil, key, nonce, ad, pt)
	assert.Equal(t, ct1, ct2)
}

// TestRepeatedNonceDifferentMessageDifferentTag exercises the other half of
// misuse resistance: reusing a nonce with a different message still yields
// an independent tag, since the tag is a deterministic function of the
// whole (key, ad, message), not of the nonce.
func TestRepeatedNonceDifferentMessageDifferentTag(t *testing.T) {
	key, nonce := testKeyNonce()
	ad := []byte("ad")

	ct1 := Seal(nil, key, nonce, ad, []byte("message one"))
	ct2 := Seal(nil, key, nonce, ad, []byte("message two"))
	assert.NotEqual(t, ct1[len(ct1)-romulus.BlockSize:], ct2[len(ct2)-romulus.BlockSize:])
}

func TestOpenRejectsShortCiphertext(t *testing.T) {
	key, nonce := testKeyNonce()
	_, err := Open(nil, key, nonce, nil, make([]byte, romulus.BlockSize-1))
	assert.ErrorIs(t, err, romulus.ErrCiphertextTooShort)
}
