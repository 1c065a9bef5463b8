package fixtures

import "github.com/tuneinsight/romulus/internal/buffer"

// Record is one known-answer test case: a (key, nonce, ad, message) input
// together with the ciphertext (or digest) it is expected to produce. This
// is the wire format a genuine NIST LWC / SUPERCOP known-answer-test file
// would be loaded into; see DESIGN.md for why the vectors used in this
// module's own kat_test.go files are self-recorded rather than drawn from
// that external source.
type Record struct {
	Key        [16]byte
	Nonce      [16]byte
	AD         []byte
	Msg        []byte
	Ciphertext []byte
}

// EncodeRecord serializes r to its fixed big-endian-length-prefixed wire
// form.
func EncodeRecord(r Record) []byte {
	b := buffer.NewBuffer(make([]byte, 0, 32+8*3+len(r.AD)+len(r.Msg)+len(r.Ciphertext)))
	b.WriteBytes(r.Key[:])
	b.WriteBytes(r.Nonce[:])
	b.WriteUint64(uint64(len(r.AD)))
	b.WriteBytes(r.AD)
	b.WriteUint64(uint64(len(r.Msg)))
	b.WriteBytes(r.Msg)
	b.WriteUint64(uint64(len(r.Ciphertext)))
	b.WriteBytes(r.Ciphertext)
	return b.Bytes()
}

// DecodeRecord parses one Record from its wire form, as produced by
// EncodeRecord.
func DecodeRecord(raw []byte) Record {
	b := buffer.NewBuffer(raw)
	var r Record
	copy(r.Key[:], b.ReadBytes(16))
	copy(r.Nonce[:], b.ReadBytes(16))
	r.AD = append([]byte{}, b.ReadBytes(int(b.ReadUint64()))...)
	r.Msg = append([]byte{}, b.ReadBytes(int(b.ReadUint64()))...)
	r.Ciphertext = append([]byte{}, b.ReadBytes(int(b.ReadUint64()))...)
	return r
}
