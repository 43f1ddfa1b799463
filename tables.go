package cabac

import "math"

// Bit widths and packing constants for the H.264 CABAC engine.
// Named per ISO/IEC 14496-10 / ITU-T Rec. H.264 Annex 9.3.
const (
	numPStates = 64  // pStateIdx ranges over [0, numPStates)
	numPacked  = 128 // packed state byte (pStateIdx<<1)|valMPS ranges over [0, numPacked)

	// rangeBot / rangeTop bound range after renormalization.
	rangeBot = 0x100
	rangeTop = 0x1FE
)

// rangeTabLPS[s][q] is the LPS subinterval width for pStateIdx s, quantized
// by the top two bits of range (q = (range>>6)&3). Exact values from
// ISO/IEC 14496-10 Table 9-46.
var rangeTabLPS = [numPStates][4]uint16{
	{128, 176, 208, 240}, {128, 167, 197, 227},
	{128, 158, 187, 216}, {123, 150, 178, 205},
	{116, 142, 169, 195}, {111, 135, 160, 185},
	{105, 128, 152, 175}, {100, 122, 144, 166},
	{95, 116, 137, 158}, {90, 110, 130, 150},
	{85, 104, 123, 142}, {81, 99, 117, 135},
	{77, 94, 111, 128}, {73, 89, 105, 122},
	{69, 85, 100, 116}, {66, 80, 95, 110},
	{62, 76, 90, 104}, {59, 72, 86, 99},
	{56, 69, 81, 94}, {53, 65, 77, 89},
	{51, 62, 73, 85}, {48, 59, 69, 80},
	{46, 56, 66, 76}, {43, 53, 63, 72},
	{41, 50, 59, 69}, {39, 48, 56, 65},
	{37, 45, 54, 62}, {35, 43, 51, 59},
	{33, 41, 48, 56}, {32, 39, 46, 53},
	{30, 37, 43, 50}, {29, 35, 41, 48},
	{27, 33, 39, 45}, {26, 31, 37, 43},
	{24, 30, 35, 41}, {23, 28, 33, 39},
	{22, 27, 32, 37}, {21, 26, 30, 35},
	{20, 24, 29, 33}, {19, 23, 27, 31},
	{18, 22, 26, 30}, {17, 21, 25, 28},
	{16, 20, 23, 27}, {15, 19, 22, 25},
	{14, 18, 21, 24}, {14, 17, 20, 23},
	{13, 16, 19, 22}, {12, 15, 18, 21},
	{12, 14, 17, 20}, {11, 14, 16, 19},
	{11, 13, 15, 18}, {10, 12, 15, 17},
	{10, 12, 14, 16}, {9, 11, 13, 15},
	{9, 11, 12, 14}, {8, 10, 12, 14},
	{8, 9, 11, 13}, {7, 9, 11, 12},
	{7, 9, 10, 12}, {7, 8, 10, 11},
	{6, 8, 9, 11}, {6, 7, 9, 10},
	{6, 7, 8, 9}, {2, 2, 2, 2},
}

// transIdxLPS[s] is the next pStateIdx after observing the LPS.
var transIdxLPS = [numPStates]uint8{
	0, 0, 1, 2, 2, 4, 4, 5,
	6, 7, 8, 9, 9, 11, 11, 12,
	13, 13, 15, 15, 16, 16, 18, 18,
	19, 19, 21, 21, 22, 22, 23, 24,
	24, 25, 26, 26, 27, 27, 28, 29,
	29, 30, 30, 30, 31, 32, 32, 33,
	33, 33, 34, 34, 35, 35, 35, 36,
	36, 36, 37, 37, 37, 38, 38, 63,
}

// transIdxMPS[s] is the next pStateIdx after observing the MPS.
var transIdxMPS = [numPStates]uint8{
	1, 2, 3, 4, 5, 6, 7, 8,
	9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40,
	41, 42, 43, 44, 45, 46, 47, 48,
	49, 50, 51, 52, 53, 54, 55, 56,
	57, 58, 59, 60, 61, 62, 62, 63,
}

// expectTab[v] is the probability that a bin coded against packed state v
// comes out 0, used by InitializationVector to fit a state to measured
// frequencies. bitsTab[v] is the self-information (in 8.8 fixed point) of
// whichever outcome actually occurs for packed state v — not the same
// quantity, but conveniently addressable with the same packed index via the
// (packedState ^ binVal) trick SimEncoder uses. Both are computed once at
// package init rather than hand-transcribed, since they're defined
// recursively over pLPS and must be bit-exact with that definition (spec
// §4.1 permits either compile-time or start-up computation).
var (
	expectTab [numPacked]float64
	bitsTab   [numPacked]uint16
)

// pLPS is the LPS probability at state s: pLPS(0) = 0.5,
// pLPS(s) = pLPS(s-1) * (0.01875/0.5)^(1/63).
func pLPS(s int) float64 {
	if s == 0 {
		return 0.5
	}
	return pLPS(s-1) * math.Pow(0.01875/0.5, 1.0/63.0)
}

// fix8 converts a probability/bit count into the 8.8 fixed-point
// representation used by bitsTab: round(f * 256).
func fix8(f float64) uint16 {
	return uint16(f*256 + 0.5)
}

// bitsOf is the self-information of an event of probability p, in bits.
func bitsOf(p float64) float64 {
	return -math.Log2(p)
}

func init() {
	for s := 0; s < numPStates; s++ {
		p := pLPS(s)
		// valMPS = 0: bin=0 is the MPS outcome, probability 1-p.
		expectTab[2*s] = 1 - p
		// valMPS = 1: bin=0 is the LPS outcome, probability p.
		expectTab[2*s+1] = p
		bitsTab[2*s] = fix8(bitsOf(1 - p))
		bitsTab[2*s+1] = fix8(bitsOf(p))
	}
}
