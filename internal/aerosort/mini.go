package aerosort

// insertionSortSafe sorts v in place with a guarded insertion sort: for
// each i, the element is lifted into a scoped slot and predecessors are
// shifted right until the slot's position is 0 or the predecessor is not
// greater. The slot is restored on every exit path, including a panic
// raised from less, so the element count of v is preserved even if the
// comparator aborts mid-sort (sortedness is not guaranteed in that case).
//
// Cost: O(n^2) comparisons, O(n^2) moves.
func insertionSortSafe[T any](v []T, less func(a, b T) bool) {
	for i := 1; i < len(v); i++ {
		insertOne(v, i, less)
	}
}

// insertOne lifts v[i] and walks it left past every strictly-greater
// predecessor. It is split out of insertionSortSafe so the deferred slot
// restoration is scoped to a single insertion rather than the whole sort;
// otherwise a panic on the first insertion would leave every later slot
// unguarded.
func insertOne[T any](v []T, i int, less func(a, b T) bool) {
	slot := v[i]
	j := i

	defer func() {
		v[j] = slot
	}()

	for j != 0 && less(slot, v[j-1]) {
		v[j] = v[j-1]
		j--
	}
}

// heapSort sorts v in place using sift-down heap construction followed by
// repeated extract-max. It does not need to be stable: it is used only to
// sort the tags region, whose elements are pairwise distinct under less.
// Unlike insertionSortSafe, heapSort needs no deferred guard: it moves
// elements only by swapping, so a panic from less still leaves v a
// permutation of its input.
//
// Cost: O(n log n) comparisons and moves, worst case, with no extra space.
func heapSort[T any](v []T, less func(a, b T) bool) {
	n := len(v)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(v, i, n, less)
	}
	for i := n - 1; i > 0; i-- {
		v[0], v[i] = v[i], v[0]
		siftDown(v, 0, i, less)
	}
}

func siftDown[T any](v []T, root, n int, less func(a, b T) bool) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(v[child], v[child+1]) {
			child++
		}
		if !less(v[root], v[child]) {
			return
		}
		v[root], v[child] = v[child], v[root]
		root = child
	}
}
