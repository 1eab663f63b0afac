//go:build !eos_debug

package eos

type DefaultTracer struct{}
type labeledItem struct{}

func debugEvent(_ EventType, _ ...any)     {}
func debugInfo(_ ...any)                   {}
func debugIO(_ ...any)                     {}
func debugDate(_ ...any)                   {}
func debugTime(_ ...any)                   {}
func debugInterval(_ ...any)               {}
func debugZone(_ ...any)                   {}
func debugCompare(_ ...any)                {}
func debugConstraint(_ ...any)             {}
func debugPerf(_ ...any)                   {}
func debugPath(_ ...any) func(_ ...any)    { return func(_ ...any) {} }
func newLItem(_ any, _ ...any) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string       { return `` }
