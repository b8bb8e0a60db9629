// Package cpuinfo reports the CPU features this module could dispatch on.
// Every kernel in this module is pure Go with no assembly backend, so
// Backend always reports "serial" today; the feature flags exist purely as
// a diagnostic surface a caller can log or expose on a /debug endpoint, the
// way an operator would want to know why a fleet is slower than expected.
//
// Grounded on veloz/ascii/ascii_amd64.go and veloz/utf8/valid_amd64.go,
// which use these same cpu.X86/cpu.ARM64 flags to gate real AVX2/SSE41/NEON
// dispatch; this package keeps the probe without the dispatch it used to
// gate, since no vector kernel ships here.
package cpuinfo

import "golang.org/x/sys/cpu"

// HasAVX reports whether the running x86-64 CPU supports AVX.
var HasAVX = cpu.X86.HasAVX

// HasSSE41 reports whether the running x86-64 CPU supports SSE4.1.
var HasSSE41 = cpu.X86.HasSSE41

// HasASIMD reports whether the running arm64 CPU supports Advanced SIMD
// (NEON).
var HasASIMD = cpu.ARM64.HasASIMD

// Backend names the code path every routine in this module actually runs:
// always "serial", since none of the feature flags above gate a vector
// kernel yet. Exists so callers can log which backend served a request
// without hardcoding the string.
func Backend() string {
	return "serial"
}
