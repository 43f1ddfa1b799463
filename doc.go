// Package cabac implements Context-Adaptive Binary Arithmetic Coding as
// standardized in ISO/IEC 14496-10 / ITU-T Rec. H.264 Annex 9.
//
// CABAC compresses a sequence of binary decisions ("bins") by maintaining,
// per decision site, an adaptive probability estimate (a "context") and
// arithmetically coding the bin against that estimate. Over many bins each
// decision can cost substantially less than one bit when the estimate is
// skewed toward one outcome.
//
// This implementation follows the H.264 normative text bit-for-bit: the
// range/offset registers, the context-state transition tables, and the
// carry-propagation discipline are ports of the algorithm in Annex 9.3,
// not an approximation of it. It requires no cgo dependencies.
//
// # Engine family
//
// Five cooperating pieces make up the library:
//
//   - [StateVector]: a mutable, fixed-size sequence of packed context bytes.
//   - [Encoder] / [Decoder]: the regular/bypass/terminal arithmetic engines.
//   - [SimEncoder]: a copyable, streamless encoder that accumulates a
//     fixed-point bit-length estimate instead of driving a byte stream —
//     useful for rate-distortion trials.
//   - [CountingEncoder] / [CountingDecoder]: decorators that tally
//     per-context zero/one frequencies alongside the real encode/decode.
//   - The Exp-Golomb integer codings ([EncodeUEG], [EncodeSEG] and their
//     decode counterparts) and [InitializationVector], which fits a state
//     vector to measured frequencies.
//
// # Usage
//
// A caller owns the state vector and passes it to every Encode/Decode call;
// an encoder or decoder is constructed around a byte sink/source only:
//
//	states := cabac.NewStateVector(numContexts)
//	var out []byte
//	enc := cabac.NewEncoder(func(b byte) { out = append(out, b) })
//	enc.Encode(states, 3, bit)
//	...
//	enc.Finish()
//
// A decoder fed the encoder's output byte-for-byte, and given a state vector
// with the same initial contents, reproduces the same bin sequence and
// leaves an identical final state vector.
//
// # Wire format
//
// The bitstream is the standard H.264 CABAC stream: MSB-first within each
// byte, self-terminating only if the producer calls EncodeTerminal(true)
// at the end and reads it back via DecodeTerminal; otherwise the consumer
// must know the bin count externally. [Encoder.Finish] always appends a
// trailing stop bit followed by zero-padding to the next byte boundary.
package cabac
