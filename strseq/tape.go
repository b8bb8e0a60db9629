package strseq

// tapeSequence is a Sequence backed by a single contiguous byte tape plus an
// offsets vector, the Apache-Arrow variable-length-binary layout: element i
// spans tape[offsets[i]:offsets[i+1]]. This avoids one allocation and one
// pointer per string versus a [][]byte, at the cost of requiring the tape's
// bytes to already be laid out contiguously and in logical order.
type tapeSequence struct {
	tape    []byte
	offsets []uint64
}

func (s *tapeSequence) Len() int { return len(s.offsets) - 1 }

func (s *tapeSequence) At(i uint64) []byte {
	return s.tape[s.offsets[i]:s.offsets[i+1]]
}

// SequenceFromU32Tape builds a Sequence over tape using 32-bit offsets, the
// layout Arrow's plain (non-large) string/binary arrays use. offsets must
// have count+1 entries, offsets[0] == 0, and be non-decreasing; offsets[i]
// and offsets[i+1] bound element i.
//
// Ported from stringzilla.h's sz_sequence_from_u32tape contract.
func SequenceFromU32Tape(tape []byte, offsets []uint32) Sequence {
	widened := make([]uint64, len(offsets))
	for i, o := range offsets {
		widened[i] = uint64(o)
	}
	return &tapeSequence{tape: tape, offsets: widened}
}

// SequenceFromU64Tape builds a Sequence over tape using 64-bit offsets, the
// layout Arrow's "large" string/binary arrays use for tapes that may exceed
// 4GiB. offsets must have count+1 entries, offsets[0] == 0, and be
// non-decreasing.
//
// Ported from stringzilla.h's sz_sequence_from_u64tape contract.
func SequenceFromU64Tape(tape []byte, offsets []uint64) Sequence {
	return &tapeSequence{tape: tape, offsets: offsets}
}
