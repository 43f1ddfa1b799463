// errors.go defines public error types for the cabac package.

package cabac

import "errors"

// Public error types for the higher-level integer codings and frequency
// accounting.
var (
	// ErrValueOverflow indicates a value (or its signed-to-unsigned mapping
	// in EncodeSEG) would overflow the unsigned range the Exp-Golomb coding
	// can represent.
	ErrValueOverflow = errors.New("cabac: value overflows Exp-Golomb coding range")

	// ErrSizeMismatch indicates two frequency vectors passed to Add are not
	// the same length.
	ErrSizeMismatch = errors.New("cabac: frequency vectors have different sizes")
)

// maxUEGValue bounds the magnitude EncodeUEG/DecodeUEG can carry without the
// unary-prefix/Exp-Golomb tail overflowing a uint32 accumulator. 2^30 leaves
// ample headroom below the type's range while comfortably covering every
// value the round-trip property in spec §8 requires (up to 2*10^6).
const maxUEGValue = 1 << 30
