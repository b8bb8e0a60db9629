package strseq

import "github.com/mhr3/stringswar/swar"

// SliceSequence is a Sequence over a plain [][]byte, the "vector-of-slice
// views" capability-set example: every element already owns its own
// backing array rather than sharing one contiguous tape. Not part of the
// distilled sz_sequence_t surface, but the Sequence any caller without an
// Arrow tape on hand reaches for first.
type SliceSequence [][]byte

func (s SliceSequence) Len() int { return len(s) }

func (s SliceSequence) At(i uint64) []byte { return s[i] }

// StringSliceSequence adapts a []string to Sequence without copying any
// string's bytes; only the header conversion allocates.
type StringSliceSequence []string

func (s StringSliceSequence) Len() int { return len(s) }

func (s StringSliceSequence) At(i uint64) []byte { return swar.BytesFromString(s[i]) }
