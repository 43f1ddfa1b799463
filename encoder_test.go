package cabac

import "testing"

// TestEncodeTestMatchesSimEncoder verifies the spec's "encode_test law":
// EncodeTest(idx, bin) returns exactly the increment SimEncoder.Encode adds
// to its bit counter for the same context state and bin, for every starting
// state and both outcomes.
func TestEncodeTestMatchesSimEncoder(t *testing.T) {
	for s := uint8(0); s < numPStates; s++ {
		for _, mps := range []bool{false, true} {
			for _, bin := range []bool{false, true} {
				states := NewStateVector(1)
				states.Set(0, s, mps)
				var out []byte
				enc := NewEncoder(func(b byte) { out = append(out, b) })
				got := enc.EncodeTest(states, 0, bin)

				simStates := NewStateVector(1)
				simStates.Set(0, s, mps)
				sim := NewSimEncoder(simStates)
				before := sim.Bits()
				sim.Encode(0, bin)
				want := sim.Bits() - before

				if got != want {
					t.Errorf("EncodeTest(pState=%d,mps=%v,bin=%v) = %d, want %d", s, mps, bin, got, want)
				}
			}
		}
	}
}

// TestEncodeTestDoesNotMutate confirms EncodeTest is a pure query: the
// context state is unchanged and nothing is written to the sink.
func TestEncodeTestDoesNotMutate(t *testing.T) {
	states := NewStateVector(1)
	states.Set(0, 10, false)
	before := states[0]

	var out []byte
	enc := NewEncoder(func(b byte) { out = append(out, b) })
	_ = enc.EncodeTest(states, 0, true)

	if states[0] != before {
		t.Errorf("EncodeTest mutated context state: %d -> %d", before, states[0])
	}
	if len(out) != 0 {
		t.Errorf("EncodeTest wrote %d bytes to the sink, want 0", len(out))
	}
}
