// Package aerosort implements a comparison-based, stable, in-place sort
// with O(n log n) worst-case comparisons and moves. It trades the bare
// simplicity of a textbook merge sort for avoiding its O(n) auxiliary
// allocation: a small external buffer is used when one is supplied (or
// one is acquired for the caller via Sort/SortFunc/SortFuncKey), and the
// remainder of the work is done through a collection of keys, a small
// pairwise-distinct subset of the input used both as merge scratch and,
// via block tagging, to merge runs that don't fit in any buffer at all.
package aerosort

import (
	"cmp"

	"github.com/edirooss/aerosort/internal/aerosort"
	"github.com/edirooss/aerosort/internal/config"
)

// extBufferFrac is the fraction of n allocated as an external buffer by
// the buffer-owning entry points (Sort, SortFunc, SortFuncKey). It is
// chosen so SortFull's len(ext) >= n/2 check always holds (both sides use
// the same integer division, for odd n as well), so every input above the
// insertion-sort cutoff takes the external-buffer path (sortEasy).
const extBufferFrac = 2

// Sort sorts v in ascending order. The sort is stable: equal elements
// keep their relative order.
func Sort[T cmp.Ordered](v []T) {
	SortFunc(v, func(a, b T) bool { return a < b })
}

// SortFunc sorts v using less to order elements. The sort is stable.
func SortFunc[T any](v []T, less func(a, b T) bool) {
	if len(v) < 2 {
		return
	}
	ext := make([]T, len(v)/extBufferFrac)
	aerosort.SortFull(v, ext, config.Load(), less)
}

// SortFuncKey sorts v in ascending order of key(element). The sort is
// stable.
func SortFuncKey[T any, K cmp.Ordered](v []T, key func(a T) K) {
	SortFunc(v, func(a, b T) bool { return key(a) < key(b) })
}

// SortWith sorts v in ascending order, using buf as external merge
// scratch instead of allocating one. buf may be nil or any length,
// including zero; a short or absent buffer only costs comparisons, never
// correctness.
func SortWith[T cmp.Ordered](v []T, buf []T) {
	SortWithFunc(v, buf, func(a, b T) bool { return a < b })
}

// SortWithFunc sorts v using less, with buf as external merge scratch.
func SortWithFunc[T any](v []T, buf []T, less func(a, b T) bool) {
	if len(v) < 2 {
		return
	}
	aerosort.SortFull(v, buf, config.Load(), less)
}

// SortWithFuncKey sorts v in ascending order of key(element), with buf
// as external merge scratch.
func SortWithFuncKey[T any, K cmp.Ordered](v []T, buf []T, key func(a T) K) {
	SortWithFunc(v, buf, func(a, b T) bool { return key(a) < key(b) })
}
