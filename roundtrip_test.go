package cabac

import (
	"math/rand"
	"testing"
)

// Round-trip tests verify that encode->decode reproduces the original bin
// sequence and leaves the decoder's final state vector identical to the
// encoder's.

func encodeBits(numContexts int, bins []bool, bypassEvery int) (out []byte, states StateVector) {
	states = NewStateVector(numContexts)
	enc := NewEncoder(func(b byte) { out = append(out, b) })
	for i, bin := range bins {
		if bypassEvery > 0 && i%bypassEvery == 0 {
			enc.EncodeBypass(bin)
		} else {
			enc.Encode(states, i%numContexts, bin)
		}
	}
	enc.Finish()
	return out, states
}

func decodeBits(data []byte, numContexts, numBins, bypassEvery int) ([]bool, StateVector) {
	pos := 0
	dec := NewDecoder(func() byte {
		if pos >= len(data) {
			return 0
		}
		b := data[pos]
		pos++
		return b
	})
	states := NewStateVector(numContexts)
	got := make([]bool, numBins)
	for i := 0; i < numBins; i++ {
		if bypassEvery > 0 && i%bypassEvery == 0 {
			got[i] = dec.DecodeBypass()
		} else {
			got[i] = dec.Decode(states, i%numContexts)
		}
	}
	return got, states
}

func TestRoundTripRegularOnly(t *testing.T) {
	sizes := []int{1, 7, 64, 1000, 10000}
	for _, n := range sizes {
		rng := rand.New(rand.NewSource(int64(n)))
		bins := make([]bool, n)
		for i := range bins {
			// Skew toward false so the adaptive contexts actually adapt.
			bins[i] = rng.Intn(8) == 0
		}
		out, encStates := encodeBits(8, bins, 0)
		got, decStates := decodeBits(out, 8, n, 0)
		for i := range bins {
			if got[i] != bins[i] {
				t.Fatalf("size %d: bin %d = %v, want %v", n, i, got[i], bins[i])
			}
		}
		for i := range encStates {
			if encStates[i] != decStates[i] {
				t.Fatalf("size %d: context %d final state %d != decoder's %d", n, i, encStates[i], decStates[i])
			}
		}
	}
}

func TestRoundTripMixedBypass(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 5000
	bins := make([]bool, n)
	for i := range bins {
		bins[i] = rng.Intn(2) == 0
	}
	out, _ := encodeBits(16, bins, 3)
	got, _ := decodeBits(out, 16, n, 3)
	for i := range bins {
		if got[i] != bins[i] {
			t.Fatalf("bin %d = %v, want %v", i, got[i], bins[i])
		}
	}
}

func TestRoundTripTerminal(t *testing.T) {
	var out []byte
	states := NewStateVector(2)
	enc := NewEncoder(func(b byte) { out = append(out, b) })
	enc.Encode(states, 0, true)
	enc.Encode(states, 1, false)
	enc.EncodeTerminal(false)
	enc.Encode(states, 0, true)
	enc.EncodeTerminal(true)
	enc.Finish()

	pos := 0
	dec := NewDecoder(func() byte {
		b := out[pos]
		pos++
		return b
	})
	dstates := NewStateVector(2)
	if v := dec.Decode(dstates, 0); v != true {
		t.Fatalf("bin 0 = %v, want true", v)
	}
	if v := dec.Decode(dstates, 1); v != false {
		t.Fatalf("bin 1 = %v, want false", v)
	}
	if dec.DecodeTerminal() {
		t.Fatal("terminal 1 decoded true, want false")
	}
	if v := dec.Decode(dstates, 0); v != true {
		t.Fatalf("bin 2 = %v, want true", v)
	}
	if !dec.DecodeTerminal() {
		t.Fatal("terminal 2 decoded false, want true")
	}
}

func TestRoundTripIntegers(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := make([]uint32, 500)
	for i := range values {
		values[i] = uint32(rng.Intn(2_000_000))
	}

	var out []byte
	enc := NewEncoder(func(b byte) { out = append(out, b) })
	for _, v := range values {
		if err := enc.EncodeUEG(nil, v, 2, 0, 0); err != nil {
			t.Fatalf("EncodeUEG(%d): %v", v, err)
		}
	}
	enc.Finish()

	pos := 0
	dec := NewDecoder(func() byte {
		if pos >= len(out) {
			return 0
		}
		b := out[pos]
		pos++
		return b
	})
	for i, want := range values {
		got := dec.DecodeUEG(nil, 2, 0, 0)
		if got != want {
			t.Fatalf("value %d: DecodeUEG = %d, want %d", i, got, want)
		}
	}
}

func TestRoundTripSignedIntegers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]int32, 500)
	for i := range values {
		v := int32(rng.Intn(1_000_000))
		if rng.Intn(2) == 0 {
			v = -v
		}
		values[i] = v
	}

	var out []byte
	enc := NewEncoder(func(b byte) { out = append(out, b) })
	for _, v := range values {
		if err := enc.EncodeSEG(nil, v, 2, 0, 0); err != nil {
			t.Fatalf("EncodeSEG(%d): %v", v, err)
		}
	}
	enc.Finish()

	pos := 0
	dec := NewDecoder(func() byte {
		if pos >= len(out) {
			return 0
		}
		b := out[pos]
		pos++
		return b
	})
	for i, want := range values {
		got := dec.DecodeSEG(nil, 2, 0, 0)
		if got != want {
			t.Fatalf("value %d: DecodeSEG = %d, want %d", i, got, want)
		}
	}
}
