package aerosort

import "sort"

// mergeUp merges buf (standing in for a left run of length n) with
// v[bStart:bStart+m] (the right run, still in place) left to right into
// v[bStart-n : bStart+m), the range the left run used to occupy followed
// immediately by the right run itself. Ties favor buf (the left input),
// which is what keeps the overall sort stable.
//
// If swap is true, buf aliases a region of v (the internal buffer) that
// must remain a valid element holder once the merge is done, so every
// write exchanges the winner with whatever already sits at its
// destination instead of discarding it; otherwise (buf is a disposable
// external scratch buffer) the destination is simply overwritten.
//
// A deferred restorer flushes whatever of buf remains unconsumed to its
// destination on every exit path, including a panic raised from less.
// This both completes the merge on the normal path (when b is exhausted
// first, the remaining left run is appended) and preserves element count
// on an aborted one (sortedness is not guaranteed in that case).
func mergeUp[T any](v []T, buf []T, bStart, m int, swap bool, less func(a, b T) bool) {
	n := len(buf)
	dst := bStart - n
	i, j := 0, 0

	defer func() {
		for ; i < n; i++ {
			k := dst + i + j
			if swap {
				v[k], buf[i] = buf[i], v[k]
			} else {
				v[k] = buf[i]
			}
		}
	}()

	for i != n && j != m {
		k := dst + i + j
		if less(v[bStart+j], buf[i]) {
			if swap {
				v[k], v[bStart+j] = v[bStart+j], v[k]
			} else {
				v[k] = v[bStart+j]
			}
			j++
		} else {
			if swap {
				v[k], buf[i] = buf[i], v[k]
			} else {
				v[k] = buf[i]
			}
			i++
		}
	}
}

// mergeDown is the backward counterpart of mergeUp: v[aStart:aStart+n) (the
// left run, still in place) and bufB (standing in for the right run,
// length m) are merged right to left into v[aStart : aStart+n+m), building
// the result from the gap to the right of a. Ties favor a (the left
// input).
//
// swap has the same meaning as in mergeUp, applied to bufB instead of buf.
// The deferred restorer flushes any unconsumed prefix of bufB to its
// destination on every exit path.
func mergeDown[T any](v []T, aStart, n int, bufB []T, swap bool, less func(a, b T) bool) {
	m := len(bufB)
	ia, jb := n, m

	defer func() {
		for jb > 0 {
			jb--
			k := aStart + ia + jb
			if swap {
				v[k], bufB[jb] = bufB[jb], v[k]
			} else {
				v[k] = bufB[jb]
			}
		}
	}()

	for ia != 0 && jb != 0 {
		if less(bufB[jb-1], v[aStart+ia-1]) {
			ia--
			k := aStart + ia + jb
			if swap {
				v[k], v[aStart+ia] = v[aStart+ia], v[k]
			} else {
				v[k] = v[aStart+ia]
			}
		} else {
			jb--
			k := aStart + ia + jb
			if swap {
				v[k], bufB[jb] = bufB[jb], v[k]
			} else {
				v[k] = bufB[jb]
			}
		}
	}
}

// mergeExternal attempts to merge v[aStart:aStart+n) and
// v[aStart+n:aStart+n+m) using ext as scratch: the shorter side is copied
// into ext, then the appropriate buffered merge restores it as it writes.
// Returns fail if ext is smaller than both runs.
func mergeExternal[T any](v []T, aStart, n, m int, ext []T, less func(a, b T) bool) sorted {
	shorter := n
	if m < shorter {
		shorter = m
	}
	if len(ext) < shorter {
		return fail
	}

	if n <= m {
		buf := ext[:n]
		copy(buf, v[aStart:aStart+n])
		mergeUp(v, buf, aStart+n, m, false, less)
	} else {
		buf := ext[:m]
		copy(buf, v[aStart+n:aStart+n+m])
		mergeDown(v, aStart, n, buf, false, less)
	}
	return done
}

// mergeLeft merges v[base:base+n) and v[base+n:base+n+m) in place,
// assuming m <= n, by repeatedly binary-searching for the insertion point
// of b's tail in a, rotating that suffix past b's tail, then
// binary-searching for the insertion point of a's new tail in b's head.
//
// Cost: O(m log(n/m) + m) comparisons, O(n + m^2) moves. Stable: the first
// search uses a non-strict predicate (ties keep a's element ahead of b's),
// the second uses a strict one.
func mergeLeft[T any](v []T, base, n, m int, less func(a, b T) bool) {
	for m != 0 {
		bMax := v[base+n+m-1]
		p := countWhile(n, func(i int) bool { return !less(bMax, v[base+i]) })
		length := n - p
		rotateLeft(v, base+p, length+m, length)
		n -= length

		if n == 0 {
			return
		}

		aMax := v[base+n-1]
		m = countWhile(m, func(i int) bool { return less(v[base+n+i], aMax) })
	}
}

// mergeRight is the symmetric counterpart of mergeLeft for n <= m: a is
// rotated into b instead. Returns the lengths of the final unconsumed
// tails of a and b (always one of them zero), used by the in-place block
// merge's local merges (mergeRightBlock) to know which side has elements
// left over.
//
// Cost: O(n log(m/n) + n) comparisons, O(m + n^2) moves.
func mergeRight[T any](v []T, base, n, m int, less func(a, b T) bool) (int, int) {
	end := base + n + m
	for n != 0 {
		aMin := v[end-m-n]
		index := countWhile(m, func(i int) bool { return less(v[end-m+i], aMin) })
		rotateLeft(v, end-m-n, n+index, n)
		m -= index

		if m == 0 {
			break
		}

		bMin := v[end-m]
		n -= countWhile(n, func(i int) bool { return !less(bMin, v[end-m-n+i]) })
	}
	return n, m
}

// mergeInPlace merges v[base:base+n) and v[base+n:base+n+m) using
// rotations, choosing the direction that rotates the shorter run.
func mergeInPlace[T any](v []T, base, n, m int, less func(a, b T) bool) {
	if n <= m {
		mergeRight(v, base, n, m, less)
	} else {
		mergeLeft(v, base, n, m, less)
	}
}

// countWhile returns the count of leading indices in [0, n) for which pred
// holds, assuming pred is true for a prefix and false afterward (binary
// search rather than a linear scan).
func countWhile(n int, pred func(i int) bool) int {
	return sort.Search(n, func(i int) bool { return !pred(i) })
}

// rotateLeft rotates v[start:start+total) left by left positions (the
// first `left` elements move to the end) using an in-place triple
// reversal, so key-collection and merge rotations never degrade to
// O(n) element-by-element shifting.
func rotateLeft[T any](v []T, start, total, left int) {
	if left == 0 || left == total {
		return
	}
	reverseRange(v, start, start+left)
	reverseRange(v, start+left, start+total)
	reverseRange(v, start, start+total)
}

func reverseRange[T any](v []T, lo, hi int) {
	for lo, hi = lo, hi-1; lo < hi; lo, hi = lo+1, hi-1 {
		v[lo], v[hi] = v[hi], v[lo]
	}
}
