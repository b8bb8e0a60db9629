// Package strseq implements an indirection-vector sequence engine: sort,
// partition, and merge operations over a logical view of strings without
// ever moving the underlying bytes. Every operation permutes a caller-owned
// Order slice instead; the strings themselves stay put.
//
// Ported from stringzilla.h's sz_sequence_t family (sz_sort, sz_sort_partial,
// sz_sort_intro, sz_partition, sz_merge, sz_sequence_from_u32tape,
// sz_sequence_from_u64tape). Unlike the rest of this module, no serial.c
// implementation exists for these to port line-by-line: the header only
// declares the contract, so the algorithms below are written from that
// contract and from spec.md's redesign note replacing the C callback-pointer
// pair with a small capability interface.
package strseq

// Sequence is the capability set a caller-defined string collection
// implements: a count and random-access-by-logical-index lookup. This
// replaces the C API's pair of get_start/get_length function pointers with
// a single Go method, since a Go string or []byte slice already carries its
// own length.
type Sequence interface {
	// Len returns the number of logical elements in the sequence.
	Len() int
	// At returns the bytes of the logical element i, 0 <= i < Len().
	At(i uint64) []byte
}

// Order is the indirection vector every operation in this package permutes:
// order[k] holds the logical index (into a Sequence) of the element
// logically at position k. Callers allocate and own it; New returns the
// identity permutation [0, 1, ..., n-1] operations start from.
//
// All operations are synchronous and non-suspending. Concurrent read-only
// calls over distinct Sequence/Order pairs are safe; concurrently reading or
// writing the same Order while it is being sorted is a data race.
type Order []uint64

// New returns the identity permutation for a sequence of n elements.
func New(n int) Order {
	order := make(Order, n)
	for i := range order {
		order[i] = uint64(i)
	}
	return order
}

// Less reports whether the bytes at logical index i sort before those at j,
// using plain lexicographic byte order (strcmp.Order's contract, implemented
// inline here).
func Less(seq Sequence, i, j uint64) bool {
	return lessBytes(seq.At(i), seq.At(j))
}

// lessBytes is the byte-slice lexicographic comparison every ordering in
// this package bottoms out at.
func lessBytes(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for k := 0; k < n; k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

// Comparator is a caller-supplied strict-weak-ordering predicate over two
// logical indices of a Sequence, the Go analogue of sz_sequence_comparator_t.
type Comparator func(seq Sequence, i, j uint64) bool

// Predicate is a caller-supplied boolean test over one logical index, the Go
// analogue of sz_sequence_predicate_t.
type Predicate func(seq Sequence, i uint64) bool
