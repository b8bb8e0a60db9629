// Package strhash implements the module's 64-bit byte-string hash: a
// two-lane Murmur3-x64-128 derivative that deliberately skips the final
// avalanche mixing step. It is not a drop-in MurmurHash3 replacement —
// callers that need interoperability with a standard Murmur3 implementation
// should reach for one of those instead (see the differential tests in
// hash_test.go for exactly where the two diverge).
package strhash

// Bytes is the string/[]byte duality every routine in this package is
// generic over.
type Bytes interface{ ~string | ~[]byte }

const (
	c1 = 0x87c37b91114253d5
	c2 = 0x4cf5ad432745937f
)

// Hash computes the module's 64-bit hash of data. Ported literally from
// serial.c's sz_hash_serial: 16-byte blocks run through two Murmur3-x64-128
// lanes (h1/h2, with their own rotation constants), the trailing 0-15 bytes
// are folded in byte-by-byte via the same per-length switch cascade, and the
// two lanes are summed with no final avalanche — so Hash is not a conforming
// Murmur3-x64-128 truncation, by design.
func Hash[B Bytes](data B) uint64 {
	length := len(data)
	h1 := uint64(length)
	h2 := uint64(length)

	i := 0
	for ; length-i >= 16; i += 16 {
		k1 := loadU64(data, i)
		k2 := loadU64(data, i+8)

		k1 *= c1
		k1 = rotl64(k1, 31)
		k1 *= c2
		h1 ^= k1

		h1 = rotl64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2
		k2 = rotl64(k2, 33)
		k2 *= c1
		h2 ^= k2

		h2 = rotl64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	// Tail: up to 15 remaining bytes, folded into k1 (bytes 0-7) and k2
	// (bytes 8-14) exactly as serial.c's fallthrough switch does, high byte
	// to low.
	tail := length - i
	if tail > 0 {
		var k1, k2 uint64
		if tail > 8 {
			for j := tail - 1; j >= 8; j-- {
				k2 = k2<<8 | uint64(byteAt(data, i+j))
			}
			k2 *= c2
			k2 = rotl64(k2, 33)
			k2 *= c1
			h2 ^= k2

			for j := 7; j >= 0; j-- {
				k1 = k1<<8 | uint64(byteAt(data, i+j))
			}
		} else {
			for j := tail - 1; j >= 0; j-- {
				k1 = k1<<8 | uint64(byteAt(data, i+j))
			}
		}
		k1 *= c1
		k1 = rotl64(k1, 31)
		k1 *= c2
		h1 ^= k1
	}

	// We almost entirely avoid the final mixing step, matching serial.c's
	// comment verbatim: this is not an oversight.
	return h1 + h2
}

func rotl64(x uint64, r uint) uint64 {
	return (x << r) | (x >> (64 - r))
}

func loadU64[B Bytes](s B, at int) uint64 {
	_ = s[at+7]
	return uint64(s[at]) | uint64(s[at+1])<<8 | uint64(s[at+2])<<16 |
		uint64(s[at+3])<<24 | uint64(s[at+4])<<32 | uint64(s[at+5])<<40 |
		uint64(s[at+6])<<48 | uint64(s[at+7])<<56
}

func byteAt[B Bytes](s B, i int) byte {
	return s[i]
}
