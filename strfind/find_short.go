package strfind

import "github.com/mhr3/stringswar/swar"

// eachPairEqual returns a word where the top bit of every 2-byte lane that
// matched between a and b is set. Ported from serial.c's
// sz_u64_each_2byte_equal.
func eachPairEqual(a, b uint64) uint64 {
	matchIndicators := ^(a ^ b)
	matchIndicators = ((matchIndicators & 0x7FFF7FFF7FFF7FFF) + 0x0001000100010001) &
		(matchIndicators & 0x8000800080008000)
	return matchIndicators
}

// Find2Byte locates the first occurrence of a 2-byte needle, processing 7
// offsets per 8-byte load (hyper-scalar SWAR).
func Find2Byte[B Bytes](haystack B, needle B) int {
	n := len(haystack)
	i := 0

	needleWord := (uint64(needle[0]) | uint64(needle[1])<<8) * 0x0001000100010001

	for ; i+8 <= n; i += 7 {
		textWord := loadU64(haystack, i)
		evenMatches := eachPairEqual(textWord, needleWord)
		// The top odd lane pairs byte 7 with the zero shifted in above it, so
		// it is masked out; offset 7 is covered by the next load or the tail.
		oddMatches := eachPairEqual(textWord>>8, needleWord) & 0x0000800080008000

		if evenMatches+oddMatches != 0 {
			matchIndicators := (evenMatches >> 8) | oddMatches
			return i + swar.Ctz64(matchIndicators)/8
		}
	}
	for ; i+2 <= n; i++ {
		if haystack[i] == needle[0] && haystack[i+1] == needle[1] {
			return i
		}
	}
	return -1
}

// Find3Byte locates the first occurrence of a 3-byte needle, processing 6
// offsets per 8-byte load.
func Find3Byte[B Bytes](haystack B, needle B) int {
	n := len(haystack)
	i := 0

	// Misaligned head, matching the source's head loop before the SWAR body.
	for ; i&7 != 0 && i+3 <= n; i++ {
		if haystack[i] == needle[0] && haystack[i+1] == needle[1] && haystack[i+2] == needle[2] {
			return i
		}
	}

	nn := uint64(needle[0]) | uint64(needle[1])<<8 | uint64(needle[2])<<16
	nn |= nn << 24
	nn <<= 16

	for ; i+8 <= n; i += 6 {
		textSlice := loadU64(haystack, i)
		first := foldToPairMask(^(textSlice ^ nn))
		second := foldToPairMask(^((textSlice << 8) ^ nn))
		third := foldToPairMask(^((textSlice << 16) ^ nn))

		matchIndicators := first | (second >> 8) | (third >> 16)
		if matchIndicators != 0 {
			return i + swar.Ctz64(matchIndicators)/8
		}
	}
	for ; i+3 <= n; i++ {
		if haystack[i] == needle[0] && haystack[i+1] == needle[1] && haystack[i+2] == needle[2] {
			return i
		}
	}
	return -1
}

// foldToPairMask AND-folds adjacent bits so that a 3-consecutive-byte (24
// bit) all-ones run collapses to a single marker bit at position 16 (and 40),
// exactly as serial.c's sz_find_3byte_serial does for its three shifted
// comparisons.
func foldToPairMask(x uint64) uint64 {
	x &= x >> 1
	x &= x >> 2
	x &= x >> 4
	return (x >> 16) & (x >> 8) & x & 0x0000010000010000
}

// Find4Byte locates the first occurrence of a 4-byte needle, processing 4
// offsets per 8-byte load via a 16-entry offset lookup table.
func Find4Byte[B Bytes](haystack B, needle B) int {
	n := len(haystack)
	i := 0

	for ; i&7 != 0 && i+4 <= n; i++ {
		if haystack[i] == needle[0] && haystack[i+1] == needle[1] &&
			haystack[i+2] == needle[2] && haystack[i+3] == needle[3] {
			return i
		}
	}

	nn := uint64(needle[0]) | uint64(needle[1])<<8 | uint64(needle[2])<<16 | uint64(needle[3])<<24
	nn |= nn << 32

	var offsetInSlice [16]byte
	offsetInSlice[0x2] = 1
	offsetInSlice[0x6] = 1
	offsetInSlice[0xA] = 1
	offsetInSlice[0xE] = 1
	offsetInSlice[0x4] = 2
	offsetInSlice[0xC] = 2
	offsetInSlice[0x8] = 3

	for ; i+8 <= n; i += 4 {
		textSlice := loadU64(haystack, i)
		text01 := (textSlice & 0x00000000FFFFFFFF) | ((textSlice & 0x000000FFFFFFFF00) << 24)
		text23 := ((textSlice & 0x0000FFFFFFFF0000) >> 16) | ((textSlice & 0x00FFFFFFFF000000) << 8)

		text01Indicators := ^(text01 ^ nn)
		text01Indicators &= text01Indicators >> 1
		text01Indicators &= text01Indicators >> 2
		text01Indicators &= text01Indicators >> 4
		text01Indicators &= text01Indicators >> 8
		text01Indicators &= text01Indicators >> 16
		text01Indicators &= 0x0000000100000001

		text23Indicators := ^(text23 ^ nn)
		text23Indicators &= text23Indicators >> 1
		text23Indicators &= text23Indicators >> 2
		text23Indicators &= text23Indicators >> 4
		text23Indicators &= text23Indicators >> 8
		text23Indicators &= text23Indicators >> 16
		text23Indicators &= 0x0000000100000001

		if text01Indicators+text23Indicators != 0 {
			matchIndicators := byte((text01Indicators >> 31) | (text01Indicators << 0) |
				(text23Indicators >> 29) | (text23Indicators << 2))
			return i + int(offsetInSlice[matchIndicators])
		}
	}
	for ; i+4 <= n; i++ {
		if haystack[i] == needle[0] && haystack[i+1] == needle[1] &&
			haystack[i+2] == needle[2] && haystack[i+3] == needle[3] {
			return i
		}
	}
	return -1
}
