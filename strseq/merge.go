package strseq

// Merge combines two already-sorted runs of order, order[:mid] and
// order[mid:], into a single run sorted by less, entirely in place: an
// inplace std::set_union over the two adjacent runs, per stringzilla.h's
// sz_merge doc comment. No auxiliary buffer is allocated or accepted —
// sequence-engine operations only ever touch the caller-owned order[]
// vector.
//
// Implemented as the classic rotate-based in-place merge (the algorithm
// std::inplace_merge falls back to without scratch space): find, via
// binary search, where the larger half's midpoint value belongs in the
// smaller half, rotate that value into position, then recurse on the two
// independent sub-merges either side of it.
func Merge(seq Sequence, order Order, mid int, less Comparator) {
	mergeInPlace(seq, order, 0, mid, len(order), less)
}

func mergeInPlace(seq Sequence, order Order, lo, mid, hi int, less Comparator) {
	if lo >= mid || mid >= hi {
		return
	}
	if hi-lo == 2 {
		if less(seq, order[mid], order[lo]) {
			order[lo], order[mid] = order[mid], order[lo]
		}
		return
	}

	var m1, m2 int
	if mid-lo > hi-mid {
		m1 = lo + (mid-lo)/2
		m2 = lowerBoundOrder(seq, order, mid, hi, order[m1], less)
	} else {
		m2 = mid + (hi-mid)/2
		m1 = upperBoundOrder(seq, order, lo, mid, order[m2], less)
	}

	rotateOrder(order, m1, mid, m2)
	newMid := m1 + (m2 - mid)
	mergeInPlace(seq, order, lo, m1, newMid, less)
	mergeInPlace(seq, order, newMid, m2, hi, less)
}

// lowerBoundOrder returns the first index in order[lo:hi] whose element is
// not less than pivot, i.e. where pivot could be inserted while keeping
// everything before it strictly less.
func lowerBoundOrder(seq Sequence, order Order, lo, hi int, pivot uint64, less Comparator) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(seq, order[mid], pivot) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBoundOrder returns the first index in order[lo:hi] whose element is
// strictly greater than pivot, i.e. where pivot could be inserted after
// every element equal to it.
func upperBoundOrder(seq Sequence, order Order, lo, hi int, pivot uint64, less Comparator) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(seq, pivot, order[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// rotateOrder left-rotates order[first:last] so the block [middle:last)
// ends up before [first:middle), via the standard three-reversal trick:
// reverse each half, then reverse the whole — no auxiliary storage needed.
func rotateOrder(order Order, first, middle, last int) {
	reverseOrder(order, first, middle)
	reverseOrder(order, middle, last)
	reverseOrder(order, first, last)
}

func reverseOrder(order Order, lo, hi int) {
	for lo < hi {
		hi--
		order[lo], order[hi] = order[hi], order[lo]
		lo++
	}
}
