package cabac

// Tracer observes the bins an Encoder or Decoder processes. It is strictly
// observational: no Tracer method return value or panic can influence the
// coded bitstream. Encoders and Decoders returned by NewEncoder and
// NewDecoder use a no-op Tracer; install a custom one with SetTracer.
type Tracer interface {
	// TraceBin is called after a regular (context-coded) bin is coded,
	// with the context index, the coded value, and the context's state
	// immediately before the update.
	TraceBin(ctxIdx int, binVal bool, pStateIdx uint8, valMPS bool)
	// TraceBypass is called after a bypass-coded bin is coded.
	TraceBypass(binVal bool)
	// TraceTerminal is called after a terminal bin is coded.
	TraceTerminal(binVal bool)
}

type noopTracer struct{}

func (noopTracer) TraceBin(int, bool, uint8, bool) {}
func (noopTracer) TraceBypass(bool)                {}
func (noopTracer) TraceTerminal(bool)              {}

var defaultTracer Tracer = noopTracer{}
