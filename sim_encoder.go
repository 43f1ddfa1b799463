package cabac

// SimEncoder simulates the regular/bypass engines without producing a
// bitstream: it updates context state exactly as Encoder does, but
// accumulates the self-information cost of each decision (in 1/256ths of a
// bit, per bitsTab's fixed-point scale) instead of writing bytes. It owns no
// stream, so CloneSimEncoder can cheaply branch a rate-distortion trial and
// the losing branch can be discarded. A plain value copy of a SimEncoder
// shares its state vector with the original.
type SimEncoder struct {
	states StateVector
	bits   uint32
}

// NewSimEncoder returns a SimEncoder that simulates coding against states.
// states is not copied; SimEncoder mutates it exactly as Encoder.Encode
// would, so callers that want to compare alternative coding choices should
// clone the state vector themselves before branching.
func NewSimEncoder(states StateVector) *SimEncoder {
	return &SimEncoder{states: states}
}

// CloneSimEncoder returns a copy of s with an independent copy of its state
// vector and the same accumulated bit count, suitable for branching a
// simulation down two alternative paths.
func CloneSimEncoder(s *SimEncoder) *SimEncoder {
	states := make(StateVector, len(s.states))
	copy(states, s.states)
	return &SimEncoder{states: states, bits: s.bits}
}

// SimEncoderFromEncoder returns a SimEncoder that starts from states (the
// state vector a real Encoder is coding against) with its bit counter at
// zero. The returned SimEncoder holds an independent copy of the state
// vector; states is unaffected.
func SimEncoderFromEncoder(states StateVector) *SimEncoder {
	clone := make(StateVector, len(states))
	copy(clone, states)
	return &SimEncoder{states: clone}
}

// Encode simulates coding bin against the context at idx, updating context
// state identically to Encoder.Encode and adding the decision's exact
// self-information cost to the running total.
func (s *SimEncoder) Encode(idx int, binVal bool) {
	s.states.checkIdx(idx)
	v := s.states[idx]
	pStateIdx, valMPS := unpack(v)

	lps := binVal != valMPS
	var bitIdx int
	if lps {
		bitIdx = 1
	}
	s.bits += uint32(bitsTab[2*int(pStateIdx)+bitIdx])
	assertBits(pStateIdx, lps)

	if lps {
		if pStateIdx == 0 {
			valMPS = !valMPS
		}
		s.states[idx] = pack(transIdxLPS[pStateIdx], valMPS)
	} else {
		s.states[idx] = pack(transIdxMPS[pStateIdx], valMPS)
	}
}

// EncodeBypass simulates coding a bypass bin: exactly one bit (256 in the
// 1/256ths fixed-point scale) regardless of binVal, with no context state
// to update.
func (s *SimEncoder) EncodeBypass(binVal bool) {
	s.bits += 1 << 8
}

// Bits returns the accumulated self-information, in 1/256ths of a bit,
// since the last Reset (or since construction).
func (s *SimEncoder) Bits() uint32 {
	return s.bits
}

// Reset zeroes the accumulated bit count without touching context state.
func (s *SimEncoder) Reset() {
	s.bits = 0
}
