package cabac

// Decoder is the CABAC regular/bypass/terminal arithmetic decoding engine,
// the symmetric inverse of Encoder. It reads bytes lazily from a
// caller-supplied source as its bit window runs dry.
type Decoder struct {
	in func() byte

	rng     uint32
	offset  uint32
	curByte byte
	mask    byte

	tracer Tracer
}

// NewDecoder returns a Decoder that reads bytes from in, one at a time, as
// needed. in must return the next byte of the stream Encoder.Finish
// produced, in order; it must never be called fewer or more times than the
// matching encode sequence plus its Finish call requires.
//
// NewDecoder eagerly reads the first two bytes to bootstrap the offset
// register; this bootstrap relies on the encoder's suppression of its first
// output bit (see Encoder.writeBit).
func NewDecoder(in func() byte) *Decoder {
	first := in()
	second := in()
	return &Decoder{
		in:      in,
		rng:     rangeTop,
		offset:  (uint32(first) << 1) | uint32(second>>7),
		curByte: second,
		mask:    64,
		tracer:  defaultTracer,
	}
}

// SetTracer installs t as the Decoder's diagnostic observer. Passing nil
// restores the no-op default.
func (d *Decoder) SetTracer(t Tracer) {
	if t == nil {
		t = defaultTracer
	}
	d.tracer = t
}

// readBit pulls the next bit from the input stream, MSB first, pulling a
// fresh byte from the source once the current one is exhausted.
func (d *Decoder) readBit() bool {
	b := d.curByte&d.mask != 0
	d.mask >>= 1
	if d.mask == 0 {
		d.curByte = d.in()
		d.mask = 128
	}
	return b
}

// renorm renormalizes range back above rangeBot, pulling one fresh bit into
// offset per doubling.
func (d *Decoder) renorm() {
	for d.rng < rangeBot {
		d.rng <<= 1
		d.offset <<= 1
		if d.readBit() {
			d.offset |= 1
		}
	}
}

// Decode decodes a bin against the adaptive context at states[idx], then
// updates that context's state in place. idx must be in [0, len(states));
// an out-of-range idx panics.
func (d *Decoder) Decode(states StateVector, idx int) bool {
	states.checkIdx(idx)
	pStateIdx, valMPS := states.Get(idx)

	rangeIdx := (d.rng >> 6) & 3
	rangeLPS := uint32(rangeTabLPS[pStateIdx][rangeIdx])
	d.rng -= rangeLPS

	var binVal bool
	if d.offset >= d.rng {
		binVal = !valMPS
		d.offset -= d.rng
		d.rng = rangeLPS
		newMPS := valMPS
		if pStateIdx == 0 {
			newMPS = !valMPS
		}
		states.Set(idx, transIdxLPS[pStateIdx], newMPS)
	} else {
		binVal = valMPS
		states.Set(idx, transIdxMPS[pStateIdx], valMPS)
	}
	d.renorm()
	d.tracer.TraceBin(idx, binVal, pStateIdx, valMPS)
	return binVal
}

// DecodeBypass decodes a bin coded by Encoder.EncodeBypass.
func (d *Decoder) DecodeBypass() bool {
	d.offset <<= 1
	if d.readBit() {
		d.offset |= 1
	}
	binVal := d.offset >= d.rng
	if binVal {
		d.offset -= d.rng
	}
	d.tracer.TraceBypass(binVal)
	return binVal
}

// DecodeTerminal decodes a bin coded by Encoder.EncodeTerminal. A true
// result means the encoder signaled end-of-stream; the decoder must not
// read further bins afterward.
func (d *Decoder) DecodeTerminal() bool {
	d.rng -= 2
	if d.offset >= d.rng {
		d.tracer.TraceTerminal(true)
		return true
	}
	d.renorm()
	d.tracer.TraceTerminal(false)
	return false
}
