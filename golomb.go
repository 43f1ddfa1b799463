package cabac

// EncodeUEG codes an unsigned integer value, biased toward small magnitudes,
// using a two-stage scheme: first, up to numCtx context-coded decisions
// starting at context idx code a truncated unary "value < numCtx" prefix;
// once that prefix is exhausted (or immediately, if numCtx is 0) the
// remainder is coded as an Exp-Golomb(k) via the bypass engine.
//
// encodeBin codes one context-adaptive bin at the given context index;
// encodeBypass codes one bypass bin. Passing an *Encoder's Encode/
// EncodeBypass (bound to a StateVector), a *SimEncoder's, or a
// *CountingEncoder's all work identically here.
//
// EncodeUEG returns ErrValueOverflow if value is too large for this coding
// to represent without overflowing its internal accumulator.
func EncodeUEG(encodeBin func(idx int, bin bool), encodeBypass func(bin bool), value uint32, k uint, idx, numCtx int) error {
	if value > maxUEGValue {
		return ErrValueOverflow
	}
	maxIdx := idx + numCtx
	for idx < maxIdx {
		zero := value == 0
		encodeBin(idx, zero)
		idx++
		if zero {
			return nil
		}
		value--
	}
	for value >= 1<<k {
		encodeBypass(true)
		value -= 1 << k
		k++
	}
	encodeBypass(false)
	for k > 0 {
		k--
		encodeBypass((value>>k)&1 != 0)
	}
	return nil
}

// DecodeUEG decodes a value coded by EncodeUEG. decodeBin/decodeBypass must
// mirror the encodeBin/encodeBypass callbacks used to produce the stream,
// and idx/numCtx/k must match the encode call exactly.
func DecodeUEG(decodeBin func(idx int) bool, decodeBypass func() bool, k uint, idx, numCtx int) uint32 {
	var value uint32
	maxIdx := idx + numCtx
	for idx < maxIdx {
		if decodeBin(idx) {
			return value
		}
		idx++
		value++
	}
	for decodeBypass() {
		value += 1 << k
		k++
	}
	for k > 0 {
		k--
		if decodeBypass() {
			value += 1 << k
		}
	}
	return value
}

// EncodeSEG codes a signed integer, biased toward values near zero, by
// mapping it to an unsigned magnitude (negative values to odd codes,
// non-negative to even codes) and coding that with EncodeUEG.
func EncodeSEG(encodeBin func(idx int, bin bool), encodeBypass func(bin bool), value int32, k uint, idx, numCtx int) error {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	if abs < 0 {
		// value == math.MinInt32: negation overflows: definitely out of range.
		return ErrValueOverflow
	}
	mapped := uint32(abs) * 2
	if value < 0 {
		mapped--
	}
	return EncodeUEG(encodeBin, encodeBypass, mapped, k, idx, numCtx)
}

// DecodeSEG decodes a value coded by EncodeSEG.
func DecodeSEG(decodeBin func(idx int) bool, decodeBypass func() bool, k uint, idx, numCtx int) int32 {
	dec := DecodeUEG(decodeBin, decodeBypass, k, idx, numCtx)
	value := int32((dec + 1) / 2)
	if dec&1 != 0 {
		value = -value
	}
	return value
}

// EncodeUEG codes value through e against states, see the package-level
// EncodeUEG for the coding scheme.
func (e *Encoder) EncodeUEG(states StateVector, value uint32, k uint, idx, numCtx int) error {
	return EncodeUEG(func(i int, b bool) { e.Encode(states, i, b) }, e.EncodeBypass, value, k, idx, numCtx)
}

// EncodeSEG codes value through e against states, see the package-level
// EncodeSEG for the coding scheme.
func (e *Encoder) EncodeSEG(states StateVector, value int32, k uint, idx, numCtx int) error {
	return EncodeSEG(func(i int, b bool) { e.Encode(states, i, b) }, e.EncodeBypass, value, k, idx, numCtx)
}

// DecodeUEG decodes a value coded by (*Encoder).EncodeUEG.
func (d *Decoder) DecodeUEG(states StateVector, k uint, idx, numCtx int) uint32 {
	return DecodeUEG(func(i int) bool { return d.Decode(states, i) }, d.DecodeBypass, k, idx, numCtx)
}

// DecodeSEG decodes a value coded by (*Encoder).EncodeSEG.
func (d *Decoder) DecodeSEG(states StateVector, k uint, idx, numCtx int) int32 {
	return DecodeSEG(func(i int) bool { return d.Decode(states, i) }, d.DecodeBypass, k, idx, numCtx)
}

// EncodeUEG codes value through the simulation encoder.
func (s *SimEncoder) EncodeUEG(value uint32, k uint, idx, numCtx int) error {
	return EncodeUEG(s.Encode, s.EncodeBypass, value, k, idx, numCtx)
}

// EncodeSEG codes value through the simulation encoder.
func (s *SimEncoder) EncodeSEG(value int32, k uint, idx, numCtx int) error {
	return EncodeSEG(s.Encode, s.EncodeBypass, value, k, idx, numCtx)
}

// EncodeUEG codes value through c, counting every regular bin it encodes.
// This shadows the (*Encoder).EncodeUEG promoted from c's embedded Encoder,
// which would bypass counting since Go method promotion does not dispatch
// through CountingEncoder.Encode.
func (c *CountingEncoder) EncodeUEG(states StateVector, value uint32, k uint, idx, numCtx int) error {
	return EncodeUEG(func(i int, b bool) { c.Encode(states, i, b) }, c.EncodeBypass, value, k, idx, numCtx)
}

// EncodeSEG codes value through c, counting every regular bin it encodes.
func (c *CountingEncoder) EncodeSEG(states StateVector, value int32, k uint, idx, numCtx int) error {
	return EncodeSEG(func(i int, b bool) { c.Encode(states, i, b) }, c.EncodeBypass, value, k, idx, numCtx)
}

// DecodeUEG decodes through c, counting every regular bin it decodes.
func (c *CountingDecoder) DecodeUEG(states StateVector, k uint, idx, numCtx int) uint32 {
	return DecodeUEG(func(i int) bool { return c.Decode(states, i) }, c.DecodeBypass, k, idx, numCtx)
}

// DecodeSEG decodes through c, counting every regular bin it decodes.
func (c *CountingDecoder) DecodeSEG(states StateVector, k uint, idx, numCtx int) int32 {
	return DecodeSEG(func(i int) bool { return c.Decode(states, i) }, c.DecodeBypass, k, idx, numCtx)
}
