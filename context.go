package cabac

import "fmt"

// StateVector holds one adaptive probability context per decision site, as a
// packed byte (pStateIdx<<1)|valMPS per entry. Callers own and allocate a
// StateVector; the engine only ever reads and mutates entries through
// Encoder.Encode / Decoder.Decode.
type StateVector []byte

// NewStateVector allocates a StateVector of n contexts, all initialized to
// pStateIdx 0, valMPS 0 — the "equiprobable" starting state.
func NewStateVector(n int) StateVector {
	return make(StateVector, n)
}

// Set installs an explicit (pStateIdx, valMPS) pair at idx. pStateIdx must be
// in [0, 64); out-of-range values are a programmer error and panic, per the
// boundary-check discipline in spec §7.
func (sv StateVector) Set(idx int, pStateIdx uint8, valMPS bool) {
	if pStateIdx >= numPStates {
		panic(fmt.Sprintf("cabac: pStateIdx %d out of range [0,%d)", pStateIdx, numPStates))
	}
	sv[idx] = pack(pStateIdx, valMPS)
}

// Get returns the (pStateIdx, valMPS) pair stored at idx.
func (sv StateVector) Get(idx int) (pStateIdx uint8, valMPS bool) {
	return unpack(sv[idx])
}

// pack combines a pStateIdx and valMPS bit into the packed state byte layout
// confirmed against the original implementation: bit 0 is valMPS, bits 1-6
// are pStateIdx (see SPEC_FULL.md, SUPPLEMENTED FEATURES #1).
func pack(pStateIdx uint8, valMPS bool) byte {
	b := pStateIdx << 1
	if valMPS {
		b |= 1
	}
	return b
}

// unpack splits a packed state byte back into its pStateIdx and valMPS bit.
func unpack(v byte) (pStateIdx uint8, valMPS bool) {
	return v >> 1, v&1 != 0
}

// checkIdx panics if idx does not address a valid context in sv. Every
// Encoder/Decoder entry point that takes a context index calls this first,
// keeping the out-of-range boundary check in one place.
func (sv StateVector) checkIdx(idx int) {
	if idx < 0 || idx >= len(sv) {
		panic(fmt.Sprintf("cabac: context index %d out of range [0,%d)", idx, len(sv)))
	}
}
