package strfind

import "github.com/mhr3/stringswar/strcmp"

// Find locates the first occurrence of needle in haystack, dispatching to
// the specialized routine sized to the needle's length, per serial.c's
// sz_find_serial length table.
func Find[B Bytes](haystack, needle B) int {
	if len(haystack) < len(needle) {
		return -1
	}

	switch len(needle) {
	case 0:
		return -1
	case 1:
		return FindByte(haystack, needle[0])
	case 2:
		return Find2Byte(haystack, needle)
	case 3:
		return Find3Byte(haystack, needle)
	case 4:
		return Find4Byte(haystack, needle)
	case 5, 6, 7, 8:
		return Bitap8(haystack, needle)
	}

	if len(needle) <= 16 {
		return Bitap16(haystack, needle)
	}
	if len(needle) <= 64 {
		return Bitap64(haystack, needle)
	}
	return findLong(haystack, needle)
}

// findLong handles needles over 64 bytes: Bitap-match the first 64 bytes,
// then byte-verify the remaining suffix; on a suffix mismatch, resume the
// search one byte past the failed match start, so an occurrence overlapping
// the failed prefix match is still found. Adapted from serial.c's
// long-needle branch of sz_find_serial.
func findLong[B Bytes](haystack, needle B) int {
	const prefixLength = 64
	prefix := needle[:prefixLength]
	suffix := needle[prefixLength:]

	i := 0
	for i <= len(haystack)-len(needle) {
		found := Bitap64(haystack[i:], prefix)
		if found < 0 {
			return -1
		}
		matchStart := i + found
		if matchStart+len(needle) > len(haystack) {
			return -1
		}

		if strcmp.EqualBytes(haystack[matchStart+prefixLength:matchStart+len(needle)], suffix) {
			return matchStart
		}

		// Resume one byte past the failed match start: skipping the whole
		// prefix would miss a match that overlaps it.
		i = matchStart + 1
	}
	return -1
}
