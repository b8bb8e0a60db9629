// Package bytealg provides the pure-Go exact-match fallback strfind's
// dispatcher is cross-checked against in tests. veloz shipped a staged-SIMD
// arm64 implementation (indexExact1Byte/indexExact2Byte/indexExactRabinKarp
// kernels backed by .s files) alongside this one; none of the assembly
// shipped in this module's retrieval, and vendor SIMD backends are out of
// scope here regardless, so only the stdlib-backed fallback remains.
package bytealg

import "strings"

// Index finds the first case-sensitive match of needle in haystack.
func Index(haystack, needle string) int {
	return strings.Index(haystack, needle)
}
