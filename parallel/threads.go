package parallel

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Threads returns the default worker count: the logical cores reported by
// cpuid, or runtime.NumCPU when the CPU could not be identified.
func Threads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Limit resolves a requested worker count, 0 or less meaning Threads().
func Limit(requested int) int {
	if requested > 0 {
		return requested
	}
	return Threads()
}
