package cabac

// FrequencyVector tallies, per context index, how many zero and one bins
// have been coded against it. It's the raw material InitializationVector
// fits a StateVector to.
type FrequencyVector []struct {
	Zeros, Ones uint64
}

// NewFrequencyVector allocates a zeroed FrequencyVector with one entry per
// context index, sized to match a StateVector of the same length.
func NewFrequencyVector(n int) FrequencyVector {
	return make(FrequencyVector, n)
}

func (f FrequencyVector) count(idx int, binVal bool) {
	if binVal {
		f[idx].Ones++
	} else {
		f[idx].Zeros++
	}
}

// Add accumulates rhs's counts into f in place. f and rhs must have the
// same length; otherwise Add returns ErrSizeMismatch and leaves f
// unmodified.
func (f FrequencyVector) Add(rhs FrequencyVector) error {
	if len(f) != len(rhs) {
		return ErrSizeMismatch
	}
	for i := range f {
		f[i].Zeros += rhs[i].Zeros
		f[i].Ones += rhs[i].Ones
	}
	return nil
}

// InitializationVector fits a StateVector to measured frequencies: for each
// context, it picks the packed state whose expectTab probability is closest
// to the observed fraction of ones, searched over the 126 "non-terminal"
// packed states (the two most heavily skewed states are excluded, matching
// the original implementation's shipped search bound — see DESIGN.md).
// A context with no observations at all gets the equiprobable state 0.
func InitializationVector(f FrequencyVector) StateVector {
	s := make(StateVector, len(f))
	for i, counts := range f {
		sum := counts.Zeros + counts.Ones
		if sum == 0 {
			s[i] = 0
			continue
		}
		expect := float64(counts.Ones) / float64(sum)
		var bestIdx int
		best := 2.0
		for idx := 0; idx < 126; idx++ {
			diff := expect - expectTab[idx]
			if diff < 0 {
				diff = -diff
			}
			if diff < best {
				best = diff
				bestIdx = idx
			}
		}
		s[i] = byte(bestIdx)
	}
	return s
}

// CountingEncoder decorates an Encoder, tallying the zero/one frequency of
// every regular (context-coded) bin it encodes alongside the real encode.
type CountingEncoder struct {
	*Encoder
	Frequencies FrequencyVector
}

// NewCountingEncoder returns a CountingEncoder wrapping enc, tallying
// numContexts contexts' worth of frequencies.
func NewCountingEncoder(enc *Encoder, numContexts int) *CountingEncoder {
	return &CountingEncoder{Encoder: enc, Frequencies: NewFrequencyVector(numContexts)}
}

// Encode encodes bin exactly as the wrapped Encoder would, then tallies it.
func (c *CountingEncoder) Encode(states StateVector, idx int, binVal bool) {
	c.Encoder.Encode(states, idx, binVal)
	c.Frequencies.count(idx, binVal)
}

// CountingDecoder decorates a Decoder, tallying the zero/one frequency of
// every regular (context-coded) bin it decodes alongside the real decode.
type CountingDecoder struct {
	*Decoder
	Frequencies FrequencyVector
}

// NewCountingDecoder returns a CountingDecoder wrapping dec, tallying
// numContexts contexts' worth of frequencies.
func NewCountingDecoder(dec *Decoder, numContexts int) *CountingDecoder {
	return &CountingDecoder{Decoder: dec, Frequencies: NewFrequencyVector(numContexts)}
}

// Decode decodes exactly as the wrapped Decoder would, then tallies the
// result.
func (c *CountingDecoder) Decode(states StateVector, idx int) bool {
	binVal := c.Decoder.Decode(states, idx)
	c.Frequencies.count(idx, binVal)
	return binVal
}
