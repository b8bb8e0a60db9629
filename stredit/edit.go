// Package stredit implements bounded Levenshtein edit distance and
// Needleman-Wunsch alignment scoring over arbitrary substitution costs.
// Both are two-row dynamic-programming sweeps that never allocate: callers
// size their own scratch buffer via the *MemoryNeeded queries and own its
// lifetime, mirroring serial.c's buffer-in/bound-in contract.
package stredit

import "github.com/mhr3/stringswar/swar"

// Bytes is the string/[]byte duality every routine in this package is
// generic over.
type Bytes interface{ ~string | ~[]byte }

// LevenshteinMemoryNeeded returns the number of scratch bytes Levenshtein
// needs for inputs of the given lengths. Ported from serial.c's
// sz_levenshtein_memory_needed: below the 256-byte threshold, DP cells fit
// in a byte, halving the scratch requirement versus the wide path.
func LevenshteinMemoryNeeded(aLen, bLen int) int {
	if aLen < 256 && bLen < 256 {
		return (bLen + bLen + 2) * 1
	}
	return (bLen + bLen + 2) * 8
}

// AlignmentScoreMemoryNeeded returns the number of scratch bytes
// AlignmentScore needs. Cells are always 64-bit since scores can be
// negative and unbounded in magnitude.
func AlignmentScoreMemoryNeeded(aLen, bLen int) int {
	return (bLen + bLen + 2) * 8
}

// Levenshtein computes the bounded edit distance between a and b: the
// minimum number of single-byte insertions, deletions, and substitutions
// needed to turn a into b, capped at bound. buf must be at least
// LevenshteinMemoryNeeded(len(a), len(b)) bytes; it is used purely as
// scratch and retains no meaningful contents past return.
//
// Ported from serial.c's sz_levenshtein_serial, dispatching to the
// byte-cell DP below 256-byte inputs and the word-cell DP above.
func Levenshtein[B Bytes](a, b B, buf []byte, bound int) int {
	aLen, bLen := len(a), len(b)

	if aLen == 0 {
		return min2(bLen, bound)
	}
	if bLen == 0 {
		return min2(aLen, bound)
	}

	if aLen > bLen {
		if aLen-bLen > bound {
			return bound
		}
	} else {
		if bLen-aLen > bound {
			return bound
		}
	}

	if aLen < 256 && bLen < 256 {
		return levenshteinNarrow(a, b, buf, bound)
	}
	return levenshteinWide(a, b, buf, bound)
}

// levenshteinNarrow runs the two-row DP with uint8 cells, for inputs whose
// edit distance (and therefore every intermediate DP value, since distances
// never exceed max(aLen, bLen) < 256) fits in a byte.
func levenshteinNarrow[B Bytes](a, b B, buf []byte, bound int) int {
	aLen, bLen := len(a), len(b)
	previous := buf[:bLen+1]
	current := buf[bLen+1 : 2*(bLen+1)]

	for j := 0; j <= bLen; j++ {
		previous[j] = uint8(j)
	}

	for i := 0; i < aLen; i++ {
		current[0] = uint8(i + 1)
		minDistance := bound

		for j := 0; j < bLen; j++ {
			costDeletion := int(previous[j+1]) + 1
			costInsertion := int(current[j]) + 1
			costSubstitution := int(previous[j])
			if a[i] != b[j] {
				costSubstitution++
			}
			cell := min3(costDeletion, costInsertion, costSubstitution)
			current[j+1] = uint8(cell)
			minDistance = min2(cell, minDistance)
		}

		if minDistance >= bound {
			return bound
		}
		previous, current = current, previous
	}

	if int(previous[bLen]) < bound {
		return int(previous[bLen])
	}
	return bound
}

// levenshteinWide is levenshteinNarrow's twin for inputs at or beyond the
// 256-byte threshold, with uint64 DP cells reinterpreted from the same
// scratch buffer via swar.WordsFromBytes instead of a second byte-sized
// buffer — the zero-copy reinterpretation grailbio-base/unsafe uses for its
// own scratch-buffer views.
func levenshteinWide[B Bytes](a, b B, buf []byte, bound int) int {
	aLen, bLen := len(a), len(b)
	words := swar.WordsFromBytes(buf, 2*(bLen+1))
	previous := words[:bLen+1]
	current := words[bLen+1 : 2*(bLen+1)]

	for j := 0; j <= bLen; j++ {
		previous[j] = uint64(j)
	}

	for i := 0; i < aLen; i++ {
		current[0] = uint64(i + 1)
		minDistance := uint64(bound)

		for j := 0; j < bLen; j++ {
			costDeletion := previous[j+1] + 1
			costInsertion := current[j] + 1
			costSubstitution := previous[j]
			if a[i] != b[j] {
				costSubstitution++
			}
			cell := swar.Min3(costDeletion, costInsertion, costSubstitution)
			current[j+1] = cell
			minDistance = swar.Min2(cell, minDistance)
		}

		if minDistance >= uint64(bound) {
			return bound
		}
		previous, current = current, previous
	}

	if int(previous[bLen]) < bound {
		return int(previous[bLen])
	}
	return bound
}

// SubstitutionMatrix is a flat 256x256 table of signed per-byte-pair
// substitution costs, indexed as matrix[a*256+b]. Needleman-Wunsch
// alignments built with gap=1 and matrix[i*256+j] = 0 if i==j else 1 are
// equivalent to unbounded Levenshtein.
type SubstitutionMatrix [65536]int8

// AlignmentScore computes a Needleman-Wunsch alignment score between a and
// b using a flat 256x256 substitution matrix and a single gap cost. Unlike
// Levenshtein there is no bound: costs may be negative, so the running
// minimum is not monotonic and early exit isn't possible. buf must be at
// least AlignmentScoreMemoryNeeded(len(a), len(b)) bytes.
//
// Ported from serial.c's sz_alignment_score_serial.
func AlignmentScore[B Bytes](a, b B, gap int8, subs *SubstitutionMatrix, buf []byte) int64 {
	aLen, bLen := len(a), len(b)
	if aLen == 0 {
		return int64(bLen)
	}
	if bLen == 0 {
		return int64(aLen)
	}

	words := swar.SignedWordsFromBytes(buf, 2*(bLen+1))
	previous := words[:bLen+1]
	current := words[bLen+1 : 2*(bLen+1)]

	for j := 0; j <= bLen; j++ {
		previous[j] = int64(j)
	}

	gapCost := int64(gap)
	for i := 0; i < aLen; i++ {
		current[0] = int64(i + 1)
		rowSubs := subs[int(a[i])*256 : int(a[i])*256+256]

		for j := 0; j < bLen; j++ {
			costDeletion := previous[j+1] + gapCost
			costInsertion := current[j] + gapCost
			costSubstitution := previous[j] + int64(rowSubs[b[j]])
			current[j+1] = minSigned3(costDeletion, costInsertion, costSubstitution)
		}

		previous, current = current, previous
	}

	return previous[bLen]
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c int) int {
	return min2(min2(a, b), c)
}

func minSigned3(a, b, c int64) int64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
