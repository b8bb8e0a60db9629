package strseq

import "math/bits"

// insertionThreshold is the range length introsort finishes with a plain
// insertion sort instead of recursing further, the usual small-range cutoff
// for quicksort-family algorithms.
const insertionThreshold = 16

// Sort sorts order in place by the lexicographic byte content of the
// sequence elements it indexes, using a radix-on-4-byte-prefix pass to
// bucket elements sharing a common prefix, then a comparison sort within
// each bucket.
//
// Radix phase: for each logical index, a 32-bit big-endian prefix key (the
// first four bytes, zero-padded for shorter strings) is packed into the high
// 32 bits of the order slot, with the logical index kept in the low 32 bits.
// A most-significant-byte-first in-place 256-way bucket partition (see
// radixSortByHigh32) then descends through the key's four bytes, leaving
// contiguous runs of equal prefix key next to each other with no auxiliary
// buffer ever allocated.
//
// Comparison phase: within each equal-prefix run, an introsort refines the
// order by full byte content (see suffixLess for why "from offset 4" isn't
// safe here), after which the high 32 bits are masked back out so order[]
// holds only logical indices again.
//
// Ported from stringzilla.h's sz_sort contract; no serial.c implementation
// exists for it in this corpus, so the hybrid below is original to this
// package, shaped by the header's radix+comparison description.
func Sort(seq Sequence, order Order) {
	n := len(order)
	if n < 2 {
		return
	}

	for k, logical := range order {
		key := uint64(prefixKey(seq.At(logical)))
		order[k] = key<<32 | logical
	}

	radixSortByHigh32(order)

	start := 0
	for start < n {
		key := order[start] >> 32
		end := start + 1
		for end < n && order[end]>>32 == key {
			end++
		}

		bucket := order[start:end]
		for i := range bucket {
			bucket[i] &= 0xFFFFFFFF
		}
		if len(bucket) > 1 {
			SortIntro(seq, bucket, suffixLess)
		}
		start = end
	}
}

// prefixKey packs up to the first 4 bytes of b into a big-endian uint32,
// zero-padding if b is shorter.
func prefixKey(b []byte) uint32 {
	var key uint32
	for i := 0; i < 4; i++ {
		key <<= 8
		if i < len(b) {
			key |= uint32(b[i])
		}
	}
	return key
}

// radixSortByHigh32 groups order in place into contiguous runs of equal
// 32-bit high-word prefix key, descending most-significant-byte-first
// through the key's four bytes (bit offsets 56, 48, 40, 32 of the 64-bit
// slot). Each level partitions its range into 256 buckets via an
// American-flag-sort-style in-place permutation — counting pass, then a
// single swap-into-place sweep driven by per-bucket cursors — and recurses
// only into buckets holding more than one element. No O(n) scratch buffer
// is ever allocated, only the fixed O(256) bucket-boundary arrays per
// level, matching sz_sort's "never allocates" contract.
func radixSortByHigh32(order Order) {
	radixPass(order, 56)
}

func radixPass(order Order, shift uint) {
	if len(order) < 2 {
		return
	}

	var counts [256]int
	for _, v := range order {
		counts[byte(v>>shift)]++
	}
	var starts [257]int
	for b := 0; b < 256; b++ {
		starts[b+1] = starts[b] + counts[b]
	}

	next := starts
	for b := 0; b < 256; b++ {
		for next[b] < starts[b+1] {
			target := byte(order[next[b]] >> shift)
			if int(target) == b {
				next[b]++
				continue
			}
			order[next[b]], order[next[target]] = order[next[target]], order[next[b]]
			next[target]++
		}
	}

	if shift == 32 {
		return
	}
	for b := 0; b < 256; b++ {
		lo, hi := starts[b], starts[b+1]
		if hi-lo > 1 {
			radixPass(order[lo:hi], shift-8)
		}
	}
}

// suffixLess compares the full byte content of two logical elements already
// known to share an identical prefix key. It deliberately does not skip the
// first 4 matched bytes: a string shorter than 4 bytes and a longer string
// that happens to hold a literal 0x00 at that position can share the same
// zero-padded prefix key while differing only past the short string's end,
// so the cheap "compare from offset 4" shortcut is not safe in general.
func suffixLess(seq Sequence, i, j uint64) bool {
	return lessBytes(seq.At(i), seq.At(j))
}

// SortPartial partially sorts order in place so that its first n elements,
// order[:n], hold the n lexicographically smallest elements in sorted
// order; the remaining elements are left in unspecified order. Equivalent
// to Sort followed by truncation, but without paying for a full sort of the
// tail.
//
// Ported from stringzilla.h's sz_sort_partial contract: a quickselect
// partition pass to isolate the n smallest, followed by SortIntro over just
// that prefix.
func SortPartial(seq Sequence, order Order, n int) {
	total := len(order)
	if n >= total {
		Sort(seq, order)
		return
	}
	if n <= 0 {
		return
	}

	quickselect(seq, order, 0, total-1, n-1, Less)
	SortIntro(seq, order[:n], Less)
}

func quickselect(seq Sequence, order Order, lo, hi, k int, less Comparator) {
	for lo < hi {
		p := partitionHoare(seq, order, lo, hi, less)
		if k <= p {
			hi = p
		} else {
			lo = p + 1
		}
	}
}

// SortIntro sorts order in place according to the caller-supplied strict
// weak ordering less: quicksort with median-of-three pivoting, falling back
// to heapsort once recursion depth exceeds 2*log2(len(order)) to bound the
// worst case at O(n log n), the classic introsort shape. Ranges at or below
// insertionThreshold finish with a plain insertion sort.
//
// Ported from stringzilla.h's sz_sort_intro contract; like Sort, no
// serial.c source exists to port, so the depth-limited hybrid below follows
// the textbook introsort algorithm the header's doc comment describes.
func SortIntro(seq Sequence, order Order, less Comparator) {
	n := len(order)
	if n < 2 {
		return
	}
	introsort(seq, order, 0, n-1, less, 2*bits.Len(uint(n)))
}

func introsort(seq Sequence, order Order, lo, hi int, less Comparator, depthLimit int) {
	for hi-lo+1 > insertionThreshold {
		if depthLimit == 0 {
			heapsort(seq, order[lo:hi+1], less)
			return
		}
		depthLimit--

		p := partitionHoare(seq, order, lo, hi, less)
		if p-lo < hi-p {
			introsort(seq, order, lo, p, less, depthLimit)
			lo = p + 1
		} else {
			introsort(seq, order, p+1, hi, less, depthLimit)
			hi = p
		}
	}
	insertionSort(seq, order[lo:hi+1], less)
}

// partitionHoare partitions order[lo:hi+1] around a median-of-three pivot,
// returning a split index j such that order[lo:j+1] are <= the pivot and
// order[j+1:hi+1] are >= it.
func partitionHoare(seq Sequence, order Order, lo, hi int, less Comparator) int {
	mid := lo + (hi-lo)/2
	medianOfThree(seq, order, lo, mid, hi, less)
	pivot := order[mid]

	i, j := lo-1, hi+1
	for {
		for {
			i++
			if !less(seq, order[i], pivot) {
				break
			}
		}
		for {
			j--
			if !less(seq, pivot, order[j]) {
				break
			}
		}
		if i >= j {
			return j
		}
		order[i], order[j] = order[j], order[i]
	}
}

// medianOfThree arranges order[a], order[b], order[c] so that order[b] holds
// their median, giving the quicksort pivot a cheap defense against
// already-sorted or reverse-sorted worst-case inputs.
func medianOfThree(seq Sequence, order Order, a, b, c int, less Comparator) {
	if less(seq, order[b], order[a]) {
		order[a], order[b] = order[b], order[a]
	}
	if less(seq, order[c], order[b]) {
		order[b], order[c] = order[c], order[b]
		if less(seq, order[b], order[a]) {
			order[a], order[b] = order[b], order[a]
		}
	}
}

func insertionSort(seq Sequence, s Order, less Comparator) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(seq, s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func heapsort(seq Sequence, s Order, less Comparator) {
	n := len(s)
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(seq, s, root, n, less)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(seq, s, 0, end, less)
	}
}

func siftDown(seq Sequence, s Order, root, n int, less Comparator) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(seq, s[child], s[child+1]) {
			child++
		}
		if !less(seq, s[root], s[child]) {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
