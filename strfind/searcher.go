package strfind

import (
	"github.com/mhr3/stringswar/ascii"
	"github.com/mhr3/stringswar/strcmp"
)

// Searcher amortizes needle analysis across repeated searches for the same
// pattern over different haystacks. Bitap's pattern_mask table costs
// O(256 + len(needle)) to build; Find rebuilds it on every call, which is
// wasted work when the same needle is reused, so Searcher builds it once.
//
// Grounded on veloz/ascii/ascii_searcher.go's "construct once with
// NewSearcher, call Index on multiple haystacks" design.
type Searcher struct {
	needle   string
	mask8    [256]uint8
	mask16   [256]uint16
	mask64   [256]uint64
	rareByte byte
	rareOff  int
}

// NewSearcher precomputes whatever state Find(haystack, needle) would
// otherwise recompute on every call.
func NewSearcher(needle string) Searcher {
	s := Searcher{needle: needle}
	switch {
	case len(needle) >= 5 && len(needle) <= 8:
		s.mask8 = newPatternMask8(needle)
	case len(needle) > 8 && len(needle) <= 16:
		s.mask16 = newPatternMask16(needle)
	case len(needle) > 16 && len(needle) <= 64:
		s.mask64 = newPatternMask64(needle)
	case len(needle) > 64:
		s.rareByte, s.rareOff = rareByteAndOffset(needle)
	}
	return s
}

// rareByteAndOffset picks the byte in needle with the lowest ascii.ByteRank
// (i.e. the rarest), breaking ties toward the earliest offset.
func rareByteAndOffset(needle string) (byte, int) {
	best := ascii.ByteRank[needle[0]]
	bestIdx := 0
	for i := 1; i < len(needle); i++ {
		if r := ascii.ByteRank[needle[i]]; r < best {
			best, bestIdx = r, i
		}
	}
	return needle[bestIdx], bestIdx
}

// Find locates the first occurrence of the searcher's needle in haystack.
func (s *Searcher) Find(haystack string) int {
	n := len(s.needle)
	if n == 0 || len(haystack) < n {
		return -1
	}

	switch {
	case n == 0:
		return -1
	case n == 1:
		return FindByte(haystack, s.needle[0])
	case n == 2:
		return Find2Byte(haystack, s.needle)
	case n == 3:
		return Find3Byte(haystack, s.needle)
	case n == 4:
		return Find4Byte(haystack, s.needle)
	case n <= 8:
		return runBitap8(haystack, s.mask8, n)
	case n <= 16:
		return runBitap16(haystack, s.mask16, n)
	case n <= 64:
		return runBitap64(haystack, s.mask64, n)
	default:
		// Long needles gain little from precomputed masks (the prefix mask
		// is only 64 bytes of the pattern), but the rarest byte in the
		// needle was picked once in NewSearcher, so each repeated search
		// can skip straight past haystack regions that can't possibly
		// contain a match before paying for a full needle comparison.
		return s.findLongWithRarePrefilter(haystack)
	}
}

// findLongWithRarePrefilter scans haystack for occurrences of the
// searcher's precomputed rare byte at the matching needle offset, and only
// pays for a full needle comparison at positions where that byte lines up —
// skipping the vast majority of candidate windows in haystacks where the
// rare byte is genuinely rare.
func (s *Searcher) findLongWithRarePrefilter(haystack string) int {
	n := len(s.needle)
	lastStart := len(haystack) - n
	if lastStart < 0 {
		return -1
	}

	searchFrom := s.rareOff
	for {
		scanLimit := lastStart + s.rareOff
		if searchFrom > scanLimit {
			return -1
		}
		rel := FindByte(haystack[searchFrom:scanLimit+1], s.rareByte)
		if rel < 0 {
			return -1
		}
		windowStart := searchFrom + rel - s.rareOff
		if strcmp.EqualBytes(haystack[windowStart:windowStart+n], s.needle) {
			return windowStart
		}
		searchFrom = searchFrom + rel + 1
	}
}

func runBitap8(haystack string, mask [256]uint8, m int) int {
	runningMatch := uint8(0xFF)
	for i := 0; i < len(haystack); i++ {
		runningMatch = (runningMatch << 1) | mask[haystack[i]]
		if runningMatch&(1<<uint(m-1)) == 0 {
			return i - m + 1
		}
	}
	return -1
}

func runBitap16(haystack string, mask [256]uint16, m int) int {
	runningMatch := uint16(0xFFFF)
	for i := 0; i < len(haystack); i++ {
		runningMatch = (runningMatch << 1) | mask[haystack[i]]
		if runningMatch&(1<<uint(m-1)) == 0 {
			return i - m + 1
		}
	}
	return -1
}

func runBitap64(haystack string, mask [256]uint64, m int) int {
	runningMatch := ^uint64(0)
	for i := 0; i < len(haystack); i++ {
		runningMatch = (runningMatch << 1) | mask[haystack[i]]
		if runningMatch&(1<<uint(m-1)) == 0 {
			return i - m + 1
		}
	}
	return -1
}
