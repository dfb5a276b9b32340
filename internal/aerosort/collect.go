package aerosort

import (
	"sort"

	"github.com/edirooss/aerosort/internal/config"
)

// leftCollectState tracks a sorted, contiguous, pairwise-distinct run
// growing within v as it scans rightward for candidate keys: location is
// its absolute start, keysCount its current length. Every accepted key is
// rotated into place so the run stays contiguous and sorted without ever
// allocating scratch space.
type leftCollectState[T any] struct {
	location  int
	keysCount int
}

// searchUnique binary-searches the sorted run v[start:start+length) for
// target, returning (true, index) if an element comparatively equal to
// target (neither less than it nor greater) is already present, or
// (false, index) with index the rank target would take if inserted.
func searchUnique[T any](v []T, start, length int, target T, less func(a, b T) bool) (bool, int) {
	idx := sort.Search(length, func(i int) bool { return !less(v[start+i], target) })
	if idx < length && !less(target, v[start+idx]) {
		return true, idx
	}
	return false, idx
}

// insert tries to fold the candidate key at absolute index key into the
// run. If an equal value is already present, the candidate is dropped
// (keys must be pairwise distinct); otherwise the gap between the run's
// current end and the candidate is rotated out of the way and the
// candidate is inserted at its sorted rank via insertLeft.
func (st *leftCollectState[T]) insert(v []T, key int, less func(a, b T) bool) {
	found, index := searchUnique(v, st.location, st.keysCount, v[key], less)
	if found {
		return
	}

	shift := key - st.location - st.keysCount
	rotateLeft(v, st.location, st.keysCount+shift, st.keysCount)
	st.location += shift

	insertLeft(v, key, st.keysCount-index)
	st.keysCount++
}

// insertLeft moves the value at v[pos] left past count predecessors,
// shifting each of them right by one slot. It is a single insertion-sort
// step whose destination rank is already known, so it needs no
// comparisons.
func insertLeft[T any](v []T, pos, count int) {
	slot := v[pos]
	for t := 0; t < count; t++ {
		v[pos-t] = v[pos-t-1]
	}
	v[pos-count] = slot
}

// scan extends the run by attempting to insert each of v[1:] in turn,
// stopping as soon as keysCount reaches limit (or v is exhausted).
func (st *leftCollectState[T]) scan(v []T, limit int, less func(a, b T) bool) {
	for i := 1; i < len(v); i++ {
		st.insert(v, i, less)
		if st.keysCount == limit {
			break
		}
	}
}

// intoUnionState rotates the collected run to the far left of v, leaving
// it sorted and contiguous at v[0:keysCount), and returns a keys value
// describing it with the given internal buffer length, together with the
// absolute index where the remaining (unsorted) task region begins.
func (st *leftCollectState[T]) intoUnionState(v []T, bufferLen int) (*keys[T], int) {
	shift := st.location
	rotateLeft(v, 0, shift+st.keysCount, shift)
	return newKeys[T](st.keysCount, bufferLen), st.keysCount
}

// lowerBound returns the least i in [0, limit] for which pred(i) is
// false, assuming pred holds on a prefix of that range and fails
// afterward.
func lowerBound(limit int, pred func(i int) bool) int {
	return sort.Search(limit+1, func(i int) bool { return !pred(i) })
}

// collectKeys scans v for up to isqrt(FactorMul*n) pairwise-distinct
// values, sizes an internal buffer from however many it actually found,
// and moves the collection to the front of v. Returns the resulting keys
// layout and the absolute index where the task region (the remainder of
// v, yet to be sorted) begins.
//
// Cost: O(n log n) comparisons (one binary search over at most
// isqrt(FactorMul*n) keys per scanned element) and O(n) moves.
func collectKeys[T any](v []T, tuning config.Tuning, less func(a, b T) bool) (*keys[T], int) {
	n := len(v)
	factorN := tuning.KeyCollectionFactorMul * n

	k := lowerBound(n, func(i int) bool { return i*i < factorN })
	if k*k != factorN {
		k--
	}

	collection := &leftCollectState[T]{location: 0, keysCount: 1}
	collection.scan(v, k, less)
	k = collection.keysCount

	bufferLen := k - lowerBound(k/2, func(length int) bool {
		return length < (n-k)/tuning.KeyCollectionFactorMul/(k-length)
	})

	return collection.intoUnionState(v, bufferLen)
}
