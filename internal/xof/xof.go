// Package xof provides a deterministic byte expander built on BLAKE3,
// used to derive reproducible keys, nonces, and associated data for tests
// and by romulus.DeriveKey as a convenience KDF. It has no bearing on the
// security properties of the Romulus constructions themselves.
package xof

import "github.com/zeebo/blake3"

// Expand derives n deterministic bytes from label and seed. Distinct labels
// yield independent output streams from the same seed, using BLAKE3's
// context-string key derivation to separate them.
func Expand(label string, seed []byte, n int) []byte {
	h := blake3.NewDeriveKey(label)
	h.Write(seed)
	out := make([]byte, n)
	d := h.Digest()
	if _, err := d.Read(out); err != nil {
		panic(err)
	}
	return out
}
