//go:build cabac_checked

package cabac

import "fmt"

// assertBits verifies, for a "checked" build, that the fixed-point entry in
// bitsTab for pStateIdx and outcome (lps: whether the coded bin took the LPS
// branch) equals the floating-point ground truth FIX8(BITS(...)) exactly,
// mirroring the original's assert(bits == FIX8(BITS(...))) (encoder.h:376,
// 381). This is the checked-build assertion described in SPEC_FULL.md's
// ambient stack notes; it costs a math.Log2 call per regular bin and is
// compiled out entirely by default (see trace_unchecked.go).
func assertBits(pStateIdx uint8, lps bool) {
	p := pLPS(int(pStateIdx))
	want := 1 - p
	idx := 2 * int(pStateIdx)
	if lps {
		want = p
		idx++
	}
	got := bitsTab[idx]
	wantFix8 := fix8(bitsOf(want))
	if got != wantFix8 {
		panic(fmt.Sprintf("cabac: bitsTab[%d] = %d, want %d", idx, got, wantFix8))
	}
}
