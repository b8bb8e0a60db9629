package strhash

import (
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

func TestHashDeterministic(t *testing.T) {
	// spec.md §8: hash("", 0) is stable; hash("abc", 3) == hash("abc", 3).
	if Hash("") != Hash("") {
		t.Error("Hash(\"\") is not deterministic")
	}
	if Hash("abc") != Hash("abc") {
		t.Error("Hash(\"abc\") is not deterministic")
	}
}

func TestHashDependsOnBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seen := map[uint64]string{}
	collisions := 0
	for i := 0; i < 5000; i++ {
		n := rng.Intn(64)
		buf := make([]byte, n)
		rng.Read(buf)
		s := string(buf)
		h := Hash(s)
		if prior, ok := seen[h]; ok && prior != s {
			collisions++
		}
		seen[h] = s
	}
	if collisions > 2 {
		t.Errorf("too many hash collisions across distinct random inputs: %d", collisions)
	}
}

func TestHashLengthSensitive(t *testing.T) {
	// h1/h2 seed with length, so same-prefix different-length strings must
	// not collide trivially.
	a := Hash("aaaaaaaaaaaaaaaa")
	b := Hash("aaaaaaaaaaaaaaa")
	if a == b {
		t.Error("Hash should be sensitive to length, not just content")
	}
}

func TestHashAcrossBlockBoundaries(t *testing.T) {
	// Exercise the 16-byte main loop plus every possible 0-15 byte tail.
	rng := rand.New(rand.NewSource(6))
	for n := 0; n < 80; n++ {
		buf := make([]byte, n)
		rng.Read(buf)
		s := string(buf)
		b := []byte(s)
		if Hash(s) != Hash(b) {
			t.Fatalf("Hash(string) and Hash([]byte) disagree for n=%d", n)
		}
	}
}

// TestHashDivergesFromMurmur3 documents, rather than merely asserts, that
// this hash is not a conforming Murmur3-x64-128 truncation: serial.c's
// comment says the final avalanche step is "almost entirely" skipped, and
// this test pins that divergence against a real Murmur3 implementation so
// a future change that accidentally reintroduces avalanche mixing is caught.
func TestHashDivergesFromMurmur3(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	agree := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		buf := make([]byte, rng.Intn(200))
		rng.Read(buf)
		ours := Hash(buf)
		lo, _ := murmur3.Sum128(buf)
		if ours == lo {
			agree++
		}
	}
	if agree > 1 {
		t.Errorf("Hash agreed with a finalized Murmur3-x64-128 low word %d/%d times; expected near-zero agreement since the avalanche step is intentionally skipped", agree, trials)
	}
}

// BenchmarkHashVsXXHash is a throughput reference, not a behavioral oracle:
// xxhash.Sum64 and Hash are unrelated algorithms, compared only to sanity
// check this hash isn't pathologically slower than a well-optimized peer.
func BenchmarkHashVsXXHash(b *testing.B) {
	buf := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(buf)

	b.Run("strhash", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Hash(buf)
		}
	})
	b.Run("xxhash", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = xxhash.Sum64(buf)
		}
	})
}
