package romulusm

// Domain-separation bytes for Romulus-M's two passes. Pass 1 computes the
// tag over associated data and message (0x28 while still inside AD, 0x2C
// once message bytes are included); pass 2 re-encrypts under the tag as IV
// (0x24). See spec.md §4.6 and §6.
const (
	domainPass1AD  = 0x28
	domainPass1Msg = 0x2C
	domainPass2    = 0x24
	finalBase      = 0x30
)

// finalADDomain packs (ad_partial?, m_partial?, ad_zero?, m_zero?) into the
// low 4 bits XORed into the pass-1 final domain byte, mirroring
// final_ad_domain in the upstream domain.h (not present in the retrieved
// source; the exact bit layout is a resolved Open Question, see DESIGN.md).
func finalADDomain(adLen, msgLen int) byte {
	var d byte
	if adLen%romulusBlockSize != 0 {
		d |= 0x01
	}
	if msgLen%romulusBlockSize != 0 {
		d |= 0x02
	}
	if adLen == 0 {
		d |= 0x04
	}
	if msgLen == 0 {
		d |= 0x08
	}
	return d
}

const romulusBlockSize = 16
