// Package strfind implements the byte-scan primitives of the core: a single
// byte forward/reverse search, hyper-scalar SWAR search for 2/3/4-byte
// needles, and a Bitap dispatcher for everything else. Every search routine
// returns either a matching index in [0, len(haystack)) or -1 ("not found" is
// not an error, per the source contract); PrefixAccepted and PrefixRejected
// return a prefix length instead.
package strfind

import "github.com/mhr3/stringswar/swar"

// Bytes is the string/[]byte duality every routine in this package is
// generic over, so callers pay no conversion cost whichever they hold.
type Bytes interface{ ~string | ~[]byte }

// FindByte returns the index of the first occurrence of needle in haystack,
// or -1. Equivalent to memchr(haystack, needle, len(haystack)).
func FindByte[B Bytes](haystack B, needle byte) int {
	n := len(haystack)
	i := 0

	broadcast := uint64(needle) * 0x0101010101010101

	for ; i+8 <= n; i += 8 {
		word := loadU64(haystack, i)
		if mask := eachByteEqual(word, broadcast); mask != 0 {
			return i + swar.Ctz64(mask)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// RFindByte returns the index of the last occurrence of needle in haystack,
// or -1. Equivalent to memrchr.
func RFindByte[B Bytes](haystack B, needle byte) int {
	i := len(haystack)
	broadcast := uint64(needle) * 0x0101010101010101

	for i >= 8 {
		i -= 8
		word := loadU64(haystack, i)
		if mask := eachByteEqual(word, broadcast); mask != 0 {
			// clz64 counts from the MSB (the window's highest-index byte);
			// convert that into an offset from the window's low end.
			return i + 7 - swar.Clz64(mask)/8
		}
	}
	for j := i - 1; j >= 0; j-- {
		if haystack[j] == needle {
			return j
		}
	}
	return -1
}

// eachByteEqual returns a word where the top bit of every byte lane that
// matched between a and b is set, and every other bit is clear. Ported
// literally from serial.c's sz_u64_each_byte_equal.
func eachByteEqual(a, b uint64) uint64 {
	matchIndicators := ^(a ^ b)
	matchIndicators = ((matchIndicators & 0x7F7F7F7F7F7F7F7F) + 0x0101010101010101) &
		(matchIndicators & 0x8080808080808080)
	return matchIndicators
}

func loadU64[B Bytes](s B, at int) uint64 {
	_ = s[at+7]
	return uint64(s[at]) | uint64(s[at+1])<<8 | uint64(s[at+2])<<16 |
		uint64(s[at+3])<<24 | uint64(s[at+4])<<32 | uint64(s[at+5])<<40 |
		uint64(s[at+6])<<48 | uint64(s[at+7])<<56
}
