// Package fixtures supplies deterministic test data for the Romulus test
// suites. These are not the official NIST LWC / SUPERCOP known-answer
// vectors for Romulus (those were not part of the retrieved reference
// material); they are reproducibly generated inputs used to exercise edge
// cases across block-size boundaries and to check encrypt/decrypt and tag
// properties against each other rather than against external fixed output.
package fixtures

import "github.com/tuneinsight/romulus/internal/xof"

// Vector is one self-consistency test case: a (key, nonce, ad, message)
// tuple at a chosen set of lengths.
type Vector struct {
	Name  string
	Key   [16]byte
	Nonce [16]byte
	AD    []byte
	Msg   []byte
}

// lengths spans the interesting boundaries for both the 16-byte single
// block and the 32-byte double block that AD absorption processes.
var lengths = []int{0, 1, 15, 16, 17, 31, 32, 33, 47, 48, 49, 63, 64, 65, 100, 255}

// Vectors deterministically expands one seed into a fixed set of
// (key, nonce, ad, message) tuples spanning the block-size boundaries that
// the Romulus absorption and message-processing loops branch on.
func Vectors(seed []byte) []Vector {
	vecs := make([]Vector, 0, len(lengths)*len(lengths))
	for _, adLen := range lengths {
		for _, msgLen := range lengths {
			if adLen > 64 && msgLen > 64 {
				continue // keep the generated set small; boundaries already covered
			}
			v := Vector{
				Name: label(adLen, msgLen),
				AD:   xof.Expand(label(adLen, msgLen)+":ad", seed, adLen),
				Msg:  xof.Expand(label(adLen, msgLen)+":msg", seed, msgLen),
			}
			copy(v.Key[:], xof.Expand(label(adLen, msgLen)+":key", seed, 16))
			copy(v.Nonce[:], xof.Expand(label(adLen, msgLen)+":nonce", seed, 16))
			vecs = append(vecs, v)
		}
	}
	return vecs
}

func label(adLen, msgLen int) string {
	return "ad" + itoa(adLen) + "-msg" + itoa(msgLen)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
