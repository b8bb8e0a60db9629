package ascii

import (
	"math/rand"
	"strings"
	"testing"

	segasc "github.com/segmentio/asm/ascii"
)

func TestToLowerToUpperTables(t *testing.T) {
	// Round-trip holds even through the upstream quirk at rows 64-95.
	for b := 0; b < 256; b++ {
		if ToLower[ToUpper[byte(b)]] != ToLower[byte(b)] {
			t.Errorf("round-trip broken at byte %d: ToLower(ToUpper(%d))=%d, ToLower(%d)=%d",
				b, b, ToLower[ToUpper[byte(b)]], b, ToLower[byte(b)])
		}
	}
	// Documented anomaly: ToUpper folds 'A'-'Z' down to lowercase instead
	// of leaving them identity-mapped.
	if ToUpper['A'] != 'a' {
		t.Errorf("ToUpper['A'] = %d, want 'a' (preserved quirk)", ToUpper['A'])
	}
	if ToUpper['a'] != 'A' {
		t.Errorf("ToUpper['a'] = %d, want 'A'", ToUpper['a'])
	}
	if ToLower['A'] != 'a' {
		t.Errorf("ToLower['A'] = %d, want 'a'", ToLower['A'])
	}
	// Documented anomaly: ToLower leaves 0xD7 and 0xDF alone rather than
	// applying the usual +32 shift.
	if ToLower[0xD7] != 0xD7 {
		t.Errorf("ToLower[0xD7] = %d, want %d (preserved quirk)", ToLower[0xD7], 0xD7)
	}
	if ToLower[0xDF] != 0xDF {
		t.Errorf("ToLower[0xDF] = %d, want %d (preserved quirk)", ToLower[0xDF], 0xDF)
	}
}

func TestToASCII(t *testing.T) {
	if got := ToASCII(0xE9); got != 0x69 {
		t.Errorf("ToASCII(0xE9) = %x, want %x", got, 0x69)
	}
	if got := ToASCII('z'); got != 'z' {
		t.Errorf("ToASCII('z') = %c, want z", got)
	}
}

func TestEqualFold(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"Go", "go", true},
		{"GO", "go", true},
		{"GoLang", "golang", true},
		{"abcdefgh", "ABCDEFGH", true},
		{"abcdefghi", "ABCDEFGHJ", false},
		{"hello", "world", false},
		{"short", "longerstring", false},
	}
	for _, c := range cases {
		if got := EqualFold(c.a, c.b); got != c.want {
			t.Errorf("EqualFold(%q,%q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestEqualFoldAgainstSegmentioASM(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	alphabet := "abcABCxyzXYZ01 "
	for i := 0; i < 2000; i++ {
		a := randAlphabet(rng, alphabet, rng.Intn(40))
		b := randAlphabet(rng, alphabet, rng.Intn(40))
		want := segasc.EqualFold([]byte(a), []byte(b))
		if got := EqualFold(a, b); got != want {
			t.Fatalf("EqualFold(%q,%q) = %v, want %v (segmentio/asm)", a, b, got, want)
		}
	}
}

func TestHasPrefixSuffixFold(t *testing.T) {
	if !HasPrefixFold("HelloWorld", "hello") {
		t.Error("HasPrefixFold should match")
	}
	if HasPrefixFold("Hi", "hello") {
		t.Error("HasPrefixFold should not match short string")
	}
	if !HasSuffixFold("HelloWorld", "WORLD") {
		t.Error("HasSuffixFold should match")
	}
	if HasSuffixFold("Hi", "world") {
		t.Error("HasSuffixFold should not match short string")
	}
}

func TestIsASCII(t *testing.T) {
	if !IsASCII("hello world") {
		t.Error("IsASCII(hello world) should be true")
	}
	if IsASCII("héllo") {
		t.Error("IsASCII(héllo) should be false")
	}
}

func TestIsASCIIAgainstSegmentioASM(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 1000; i++ {
		n := rng.Intn(100)
		buf := make([]byte, n)
		rng.Read(buf)
		s := string(buf)
		if got, want := IsASCII(s), segasc.Valid([]byte(s)); got != want {
			t.Fatalf("IsASCII mismatch for %q: got %v, want %v", s, got, want)
		}
	}
}

func TestIndexMask(t *testing.T) {
	if got := IndexMask("abc\x80def", 0x80); got != 3 {
		t.Errorf("IndexMask = %d, want 3", got)
	}
	if got := IndexMask(strings.Repeat("a", 20), 0x80); got != -1 {
		t.Errorf("IndexMask = %d, want -1", got)
	}
}

func TestByteRank(t *testing.T) {
	if ByteRank[' '] != 255 {
		t.Errorf("ByteRank[' '] = %d, want 255 (most common)", ByteRank[' '])
	}
	if ByteRank['Q'] >= ByteRank['e'] {
		t.Errorf("expected 'Q' rarer than 'e': ByteRank[Q]=%d ByteRank[e]=%d", ByteRank['Q'], ByteRank['e'])
	}
}

func randAlphabet(rng *rand.Rand, alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}
