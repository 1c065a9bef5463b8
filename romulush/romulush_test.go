package romulush

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	sum1 := Sum(data)
	sum2 := Sum(data)
	assert.Equal(t, sum1, sum2)
}

func TestSumSensitiveToInput(t *testing.T) {
	sum1 := Sum([]byte("message one"))
	sum2 := Sum([]byte("message two"))
	assert.NotEqual(t, sum1, sum2)
}

func TestSumEmptyInput(t *testing.T) {
	sum := Sum(nil)
	var zero [Size]byte
	assert.NotEqual(t, zero, sum, "even the empty message goes through one padded compression step")
}

func TestSumExactMultipleOfBlockSize(t *testing.T) {
	data := make([]byte, blockSize*2)
	for i := range data {
		data[i] = byte(i)
	}
	sum := Sum(data)

	// A trailing all-zero padded block is still appended even when the
	// input length is already an exact multiple of the block size, so
	// this must differ from the sum of the same data with one trailing
	// zero byte appended (which shifts the padding length byte).
	withExtra := append(append([]byte{}, data...), 0)
	sumExtra := Sum(withExtra)
	assert.NotEqual(t, sum, sumExtra)
}

func TestSumDifferentLengthsDifferentDigests(t *testing.T) {
	short := Sum([]byte("abc"))
	long := Sum([]byte("abcabc"))
	assert.NotEqual(t, short, long)
}

func TestNewMatchesSum(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, streamed")
	want := Sum(data)

	h := New()
	n, err := h.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, len(data), n)

	got := h.Sum(nil)
	assert.Equal(t, want[:], got)
}

func TestNewWriteAcrossMultipleCalls(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, streamed in pieces")
	want := Sum(data)

	h := New()
	for _, chunk := range [][]byte{data[:10], data[10:40], data[40:]} {
		_, err := h.Write(chunk)
		assert.NoError(t, err)
	}

	got := h.Sum(nil)
	assert.Equal(t, want[:], got)
}

func TestSumDoesNotMutateState(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("partial input"))

	first := h.Sum(nil)
	second := h.Sum(nil)
	assert.Equal(t, first, second)

	_, _ = h.Write([]byte(" more input"))
	third := h.Sum(nil)
	assert.NotEqual(t, first, third)
}

func TestResetClearsState(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("some data"))
	h.Reset()

	got := h.Sum(nil)
	want := Sum(nil)
	assert.Equal(t, want[:], got)
}

func TestSizeAndBlockSize(t *testing.T) {
	h := New()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, blockSize, h.BlockSize())
}

func TestSumAppendsToPrefix(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("data"))
	prefix := []byte("prefix:")
	got := h.Sum(prefix)
	assert.Equal(t, prefix, got[:len(prefix)])
}
