package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuffer(t *testing.T) {
	assert.Equal(t, []byte(nil), NewBuffer(nil).Bytes())
	assert.Equal(t, []byte{}, NewBuffer([]byte{}).Bytes())
	assert.Equal(t, []byte{1, 2, 3}, NewBuffer([]byte{1, 2, 3}).Bytes())
}

func TestBufferWriteReadUint8(t *testing.T) {
	b := NewBuffer(make([]byte, 0, 1))
	b.WriteUint8(0xff)
	assert.Equal(t, []byte{0xff}, b.Bytes())
	assert.Equal(t, byte(0xff), b.ReadUint8())
	assert.Equal(t, []byte{}, b.Bytes())
}

func TestBufferWriteReadUint64(t *testing.T) {
	b := NewBuffer(make([]byte, 0, 8))
	b.WriteUint64(0x1122334455667788)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, b.Bytes())
	assert.Equal(t, uint64(0x1122334455667788), b.ReadUint64())
	assert.Equal(t, []byte{}, b.Bytes())
}

func TestBufferWriteReadBytes(t *testing.T) {
	b := NewBuffer(make([]byte, 0, 16))
	b.WriteBytes([]byte{1, 2, 3, 4})
	assert.Equal(t, 4, b.Len())
	got := b.ReadBytes(4)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
	assert.Equal(t, 0, b.Len())
}
