// Package utf8 is where full UTF-8 validation lives: it uses the ascii
// package's IndexMask to skip the pure-ASCII prefix and decodes only the
// rest.
package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/stringswar/ascii"
)

// ValidString reports whether s consists entirely of valid UTF-8.
//
// veloz shipped this as two gocc-generated SIMD kernels (range_avx2.c,
// range_neon.c) behind build tags; neither kernel's assembly shipped in
// this module's retrieval, so both collapse to the same pure-Go path:
// skip the ASCII prefix with ascii.IndexMask (the fast case, no non-ASCII
// bytes at all) and hand the remainder to the standard library's decoder.
func ValidString(s string) bool {
	idx := ascii.IndexMask(s, 0x80)
	if idx == -1 {
		return true
	}
	return stdlib.ValidString(s[idx:])
}
