package skinny

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPrecomputeRTKPlusDeterministic(t *testing.T) {
	var tk Tweakey
	tk.TK3 = [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	tk.TK2 = [16]byte{16: 0}

	rtk1 := PrecomputeRTKPlus(&tk)
	rtk2 := PrecomputeRTKPlus(&tk)

	if diff := cmp.Diff(rtk1, rtk2, cmp.AllowUnexported(RoundTweakeys{})); diff != "" {
		t.Errorf("round tweakey schedules diverged across identical inputs (-first +second):\n%s", diff)
	}
}

func TestEncryptBlockDeterministic(t *testing.T) {
	var tk Tweakey
	tk.TK3 = [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	pt := [16]byte{16: 0}
	copy(pt[:], []byte("0123456789abcdef"))

	var ct1, ct2 [16]byte
	EncryptBlock(ct1[:], pt[:], &tk)
	EncryptBlock(ct2[:], pt[:], &tk)

	assert.Equal(t, ct1, ct2)
	assert.NotEqual(t, pt, ct1)
}

func TestEncryptBlockSensitiveToKey(t *testing.T) {
	pt := []byte("0123456789abcdef")

	var tk1, tk2 Tweakey
	tk2.TK3[0] = 1

	var ct1, ct2 [16]byte
	EncryptBlock(ct1[:], pt, &tk1)
	EncryptBlock(ct2[:], pt, &tk2)

	assert.NotEqual(t, ct1, ct2)
}

func TestEncryptBlockSensitiveToTweak(t *testing.T) {
	pt := []byte("0123456789abcdef")

	var tk1, tk2 Tweakey
	tk1.TK3[0] = 0x42
	tk2.TK3[0] = 0x42
	tk2.TK1[0] = 1

	var ct1, ct2 [16]byte
	EncryptBlock(ct1[:], pt, &tk1)
	EncryptBlock(ct2[:], pt, &tk2)

	assert.NotEqual(t, ct1, ct2)
}

func TestQuadrupleRoundCountMatchesSpec(t *testing.T) {
	assert.Equal(t, 40, Rounds)
	assert.Equal(t, 0, Rounds%4)
}
