package aerosort

// swapRanges exchanges the length-count ranges v[i:i+count) and
// v[j:j+count) element by element. The two ranges must not overlap.
func swapRanges[T any](v []T, i, j, count int) {
	for t := 0; t < count; t++ {
		v[i+t], v[j+t] = v[j+t], v[i+t]
	}
}

// scrollLeft swaps the n elements immediately preceding s,
// v[s-n:s), with the last n elements of the count-sized block starting at
// s, v[s+count-n:s+count), and returns s-n. A no-op (beyond the returned
// position) when count is 0.
func scrollLeft[T any](v []T, s, n, count int) int {
	if count != 0 && n != 0 {
		swapRanges(v, s-n, s+count-n, n)
	}
	return s - n
}

// scrollRight is the mirror of scrollLeft: swaps v[s:s+n) with
// v[s+count:s+count+n) and returns s+n.
func scrollRight[T any](v []T, s, n, count int) int {
	if count != 0 && n != 0 {
		swapRanges(v, s, s+count, n)
	}
	return s + n
}

// localMergeUp merges v[aStart:aStart+n) and v[bStart:bStart+m) left to
// right into v[dstStart:...), stopping as soon as either side is
// exhausted and returning the unconsumed counts of each (n-i, m-j) without
// flushing them. The caller repositions whatever remains via scrollLeft
// or scrollRight instead of a forward copy. Used only within block merge's
// tightly bounded local merges, where the destination is the scrolling
// hole itself rather than a disposable gap.
func localMergeUp[T any](v []T, aStart, n, bStart, m, dstStart int, less func(a, b T) bool) (int, int) {
	i, j := 0, 0
	for i != n && j != m {
		k := dstStart + i + j
		if less(v[bStart+j], v[aStart+i]) {
			v[k], v[bStart+j] = v[bStart+j], v[k]
			j++
		} else {
			v[k], v[aStart+i] = v[aStart+i], v[k]
			i++
		}
	}
	return n - i, m - j
}
