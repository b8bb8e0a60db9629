// Package strcmp implements byte-level equality and three-way lexicographic
// ordering over byte strings, using unaligned word loads where the platform
// allows it.
package strcmp

import "github.com/mhr3/stringswar/swar"

// Bytes is the string/[]byte duality this package is generic over.
type Bytes interface{ ~string | ~[]byte }

// Ordering is a three-state lexicographic comparison result.
type Ordering int

const (
	Less Ordering = -1
	Equal Ordering = 0
	Greater Ordering = 1
)

// EqualBytes reports whether a and b hold the same bytes. It is reflexive,
// symmetric and transitive, and agrees with Order(a, b) == Equal.
//
// Ported from serial.c's sz_equal_serial: a switch table for short inputs
// (combining 64/32/16/8-bit compares) and a 64-bit compare loop beyond that.
func EqualBytes[B Bytes](a, b B) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)

	switch {
	case n == 0:
		return true
	case n < 8:
		return equalTail(a, b, n)
	}

	for n >= 8 {
		if loadU64(a, 0) != loadU64(b, 0) {
			return false
		}
		a, b = a[8:], b[8:]
		n -= 8
	}
	return equalTail(a, b, n)
}

// equalTail compares the final n (< 8) bytes of a and b, combining 32-, 16-
// and 8-bit loads the way the source's switch-table does for lengths 0..7.
func equalTail[B Bytes](a, b B, n int) bool {
	switch n {
	case 0:
		return true
	case 1:
		return a[0] == b[0]
	case 2:
		return loadU16(a, 0) == loadU16(b, 0)
	case 3:
		return loadU16(a, 0) == loadU16(b, 0) && a[2] == b[2]
	case 4:
		return loadU32(a, 0) == loadU32(b, 0)
	case 5:
		return loadU32(a, 0) == loadU32(b, 0) && a[4] == b[4]
	case 6:
		return loadU32(a, 0) == loadU32(b, 0) && loadU16(a, 4) == loadU16(b, 4)
	case 7:
		return loadU32(a, 0) == loadU32(b, 0) && loadU16(a, 4) == loadU16(b, 4) && a[6] == b[6]
	default:
		for i := 0; i < n; i++ {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
}

// Order returns the three-way lexicographic comparison of a and b: the
// common prefix is compared 8 bytes at a time as big-endian unsigned
// integers (byte-reversing the little-endian load), falling back to a
// byte-wise tail comparison; ties are broken by length.
//
// Ported from serial.c's sz_order_serial. aShorter is computed unconditionally
// up front (serial.c's Open Question: the source only sets it inside the now
// possibly-skipped SWAR prefix loop, so the tail fallback can read it
// uninitialized when the common prefix is under 8 bytes; this port hoists it).
func Order[B Bytes](a B, b B) Ordering {
	aLen, bLen := len(a), len(b)
	aShorter := aLen < bLen
	minLength := aLen
	if !aShorter {
		minLength = bLen
	}

	i := 0
	for ; i+8 <= minLength; i += 8 {
		aWord := swar.ByteSwap64(loadU64(a, i))
		bWord := swar.ByteSwap64(loadU64(b, i))
		if aWord != bWord {
			if aWord < bWord {
				return Less
			}
			return Greater
		}
	}
	for ; i < minLength; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return Less
			}
			return Greater
		}
	}
	if aLen != bLen {
		if aShorter {
			return Less
		}
		return Greater
	}
	return Equal
}

// OrderTerminated compares two NUL-terminated byte strings the way libc's
// strcmp does. a and b must each contain a '\x00' terminator.
func OrderTerminated(a, b []byte) Ordering {
	i := 0
	for a[i] != 0 && b[i] != 0 {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return Less
			}
			return Greater
		}
		i++
	}
	if a[i] == 0 && b[i] == 0 {
		return Equal
	} else if a[i] == 0 {
		return Less
	}
	return Greater
}

func loadU16[B Bytes](s B, at int) uint16 {
	_ = s[at+1]
	return uint16(s[at]) | uint16(s[at+1])<<8
}

func loadU32[B Bytes](s B, at int) uint32 {
	_ = s[at+3]
	return uint32(s[at]) | uint32(s[at+1])<<8 | uint32(s[at+2])<<16 | uint32(s[at+3])<<24
}

func loadU64[B Bytes](s B, at int) uint64 {
	_ = s[at+7]
	return uint64(s[at]) | uint64(s[at+1])<<8 | uint64(s[at+2])<<16 | uint64(s[at+3])<<24 |
		uint64(s[at+4])<<32 | uint64(s[at+5])<<40 | uint64(s[at+6])<<48 | uint64(s[at+7])<<56
}
