package aerosort

import (
	"math/bits"

	"github.com/edirooss/aerosort/internal/config"
	"github.com/edirooss/aerosort/internal/telemetry"
)

// log2Ceil returns the least e such that 1<<e >= x (0 for x <= 1).
func log2Ceil(x int) int {
	e := 0
	for (1 << e) < x {
		e++
	}
	return e
}

// sortWithMergeStrategy drives a bottom-up merge sort of v[base:base+n)
// (addressed as absolute indices into v, so it composes with a key
// region living elsewhere in the same backing array): runs are grown by
// insertion sort up to evenly-spaced bounds, then merged pairwise as
// dictated by the trailing zero bits of the run counter, the same
// bit-trick a standard iterative merge sort uses to fold same-size runs
// together in the right order without recursion.
func sortWithMergeStrategy[T any](v []T, base, n int, less func(a, b T) bool, merge func(aStart, n, m int, less func(a, b T) bool)) {
	factor := 1 << log2Ceil(n/16)
	bound := func(i int) int { return base + n*i/factor }

	right := base
	for i := 1; i <= factor; i++ {
		mid := right
		right = bound(i)
		insertionSortSafe(v[mid:right], less)

		for k := 1; k <= bits.TrailingZeros(uint(i)); k++ {
			left := bound(i - (1 << k))
			merge(left, mid-left, right-mid, less)
			mid = left
		}
	}
}

// mergeRegular merges v[aStart:aStart+n) and v[aStart+n:aStart+n+m),
// preferring the external buffer ext, falling back to k's internal
// buffer, and falling back again to block merge, which always succeeds,
// so this never fails.
func mergeRegular[T any](v []T, aStart, n, m int, ext []T, k *keys[T], less func(a, b T) bool) {
	if mergeExternal(v, aStart, n, m, ext, less) == done {
		return
	}
	if k.mergeBasic(v, aStart, n, m, less) == done {
		return
	}
	blockMerge(k, v, aStart, n, aStart+n, m, less)
}

// sortBuffered sorts v[base:base+n) using ext and k's internal buffer as
// merge scratch via mergeRegular.
func sortBuffered[T any](v []T, base, n int, ext []T, k *keys[T], less func(a, b T) bool) {
	sortWithMergeStrategy(v, base, n, less, func(aStart, n2, m2 int, less func(a, b T) bool) {
		mergeRegular(v, aStart, n2, m2, ext, k, less)
	})
}

// sortLazy sorts v[base:base+n) using only in-place rotation merges, no
// buffer at all.
func sortLazy[T any](v []T, base, n int, less func(a, b T) bool) {
	sortWithMergeStrategy(v, base, n, less, func(aStart, n2, m2 int, less func(a, b T) bool) {
		mergeInPlace(v, aStart, n2, m2, less)
	})
}

// sortEasy sorts v[base:base+n) assuming ext is large enough for every
// merge along the way (the caller is responsible for that guarantee).
func sortEasy[T any](v []T, base, n int, ext []T, less func(a, b T) bool) {
	sortWithMergeStrategy(v, base, n, less, func(aStart, n2, m2 int, less func(a, b T) bool) {
		mergeExternal(v, aStart, n2, m2, ext, less)
	})
}

// restoreBy folds a fully-sorted key region of length keysLen back into
// the now-sorted task region that follows it, completing the sort.
//
// Cost: O(sqrt(n) log n) comparisons, O(n) moves.
func restoreBy[T any](v []T, keysLen int, k *keys[T], less func(a, b T) bool) {
	k.sortInternalBuffer(v, less)
	mergeRight(v, 0, keysLen, len(v)-keysLen, less)
}

// SortFull sorts v in place using ext as an external buffer, choosing a
// strategy by size: insertion sort below tuning.InsertionSortCutoff+1
// elements, a pure external-buffer sort when ext already covers half of
// v, or else key collection followed by a buffered block-merge sort
// (falling back to sortLazy outright when too few distinct keys were
// found to be worth collecting around). This is the one entry point
// pkg/aerosort calls into; everything else in this package is an
// implementation detail of it.
//
// Cost: O(n log n) comparisons and moves.
func SortFull[T any](v []T, ext []T, tuning config.Tuning, less func(a, b T) bool) {
	n := len(v)
	log := telemetry.Logger()

	if n <= tuning.InsertionSortCutoff {
		log.Debug("sort strategy: insertion", telemetry.Int("n", n))
		insertionSortSafe(v, less)
		return
	}

	if len(ext) >= n/2 {
		log.Debug("sort strategy: external buffer", telemetry.Int("n", n), telemetry.Int("ext", len(ext)))
		sortEasy(v, 0, n, ext, less)
		return
	}

	k, taskStart := collectKeys(v, tuning, less)
	switch cnt := k.tagsLen + k.bufferLen; {
	case cnt == 1:
		log.Debug("sort strategy: trivial key collection", telemetry.Int("n", n))
	case cnt >= 2 && cnt <= tuning.LazyFallbackMax:
		log.Debug("sort strategy: lazy in-place fallback", telemetry.Int("n", n), telemetry.Int("keys", cnt))
		sortLazy(v, 0, n, less)
	default:
		log.Debug("sort strategy: buffered block merge", telemetry.Int("n", n), telemetry.Int("keys", cnt))
		sortBuffered(v, taskStart, n-taskStart, ext, k, less)
		restoreBy(v, taskStart, k, less)
	}
}
