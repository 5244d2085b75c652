package radix

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'radix'
func tracer() tracing.Trace {
	return tracing.Select("radix")
}
