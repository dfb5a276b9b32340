package aerosort

// keys describes the key region carved out of the front of the sequence
// being sorted: tagsLen pairwise-distinct values used to tag blocks during
// block merge, immediately followed by a bufferLen-sized internal buffer
// used as merge scratch. Both regions live in the same backing slice as
// the runs being merged; keys stores only their layout (lengths), and
// every method takes the full slice v and addresses into it with absolute
// indices, mirroring how the source this is grounded on threads raw
// pointers through a single allocation rather than independent subslices.
type keys[T any] struct {
	tagsLen           int
	bufferLen         int
	unsortableLeftLen int
}

// newKeys describes a key region of kTotal elements at the front of v,
// the last bufferLen of which serve as the internal buffer.
func newKeys[T any](kTotal, bufferLen int) *keys[T] {
	tagsLen := kTotal - bufferLen
	return &keys[T]{
		tagsLen:           tagsLen,
		bufferLen:         bufferLen,
		unsortableLeftLen: (tagsLen + 1) * bufferLen,
	}
}

// canScrollingBlockMerge reports whether a run of length aLen is short
// enough that every block it decomposes into can carry its own tag, i.e.
// whether the scrolling (tagged) block merge applies, as opposed to the
// untagged in-place variant.
func (k *keys[T]) canScrollingBlockMerge(aLen int) bool {
	return aLen < k.unsortableLeftLen
}

// sortFirst sorts v[tagsLen:length) (clamped to at least the empty range)
// with heapSort. Used to prepare however much of the tags region a given
// block merge actually needs as tags, before the tagging swaps run.
func (k *keys[T]) sortFirst(v []T, length int, less func(a, b T) bool) {
	lo := k.tagsLen
	hi := length
	if hi < lo {
		hi = lo
	}
	heapSort(v[lo:hi], less)
}

// sortInternalBuffer sorts the whole key region by heap-sorting its buffer
// part; the tags are already sorted and all smaller than every buffer
// value, so the region ends up ascending. restoreBy calls it before the
// final merge of the keys back into the task.
func (k *keys[T]) sortInternalBuffer(v []T, less func(a, b T) bool) {
	k.sortFirst(v, k.tagsLen+k.bufferLen, less)
}

// bufferStart returns the absolute index where the internal buffer
// begins.
func (k *keys[T]) bufferStart() int {
	return k.tagsLen
}

// mergeBasic attempts to merge v[aStart:aStart+n) and
// v[aStart+n:aStart+n+m) using the internal buffer as scratch for
// whichever side is shorter, the same way mergeExternal uses an external
// one. Every write into the buffer must swap rather than copy, since the
// buffer aliases part of v itself and its prior contents need to end up
// somewhere valid. Returns fail if the buffer is smaller than both runs.
func (k *keys[T]) mergeBasic(v []T, aStart, n, m int, less func(a, b T) bool) sorted {
	shorter := n
	if m < shorter {
		shorter = m
	}
	if k.bufferLen < shorter {
		return fail
	}

	bufStart := k.bufferStart()
	if n == shorter {
		swapRanges(v, bufStart, aStart, n)
		mergeUp(v, v[bufStart:bufStart+n], aStart+n, m, true, less)
	} else {
		swapRanges(v, bufStart, aStart+n, m)
		mergeDown(v, aStart, n, v[bufStart:bufStart+m], true, less)
	}
	return done
}
