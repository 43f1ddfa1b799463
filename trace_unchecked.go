//go:build !cabac_checked

package cabac

// assertBits is a no-op outside a cabac_checked build; see trace_checked.go.
func assertBits(pStateIdx uint8, lps bool) {}
