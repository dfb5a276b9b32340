package aerosort

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessInt(a, b int) bool { return a < b }

func TestInsertionSortSafeSortsAndIsStable(t *testing.T) {
	type pair struct{ key, tag int }
	v := []pair{{3, 0}, {1, 0}, {3, 1}, {2, 0}, {1, 1}, {3, 2}}
	insertionSortSafe(v, func(a, b pair) bool { return a.key < b.key })

	require.True(t, sort.SliceIsSorted(v, func(i, j int) bool { return v[i].key < v[j].key }))

	var tagsForOne, tagsForThree []int
	for _, p := range v {
		switch p.key {
		case 1:
			tagsForOne = append(tagsForOne, p.tag)
		case 3:
			tagsForThree = append(tagsForThree, p.tag)
		}
	}
	assert.Equal(t, []int{0, 1}, tagsForOne)
	assert.Equal(t, []int{0, 1, 2}, tagsForThree)
}

func TestInsertionSortSafePreservesCountOnPanic(t *testing.T) {
	v := []int{5, 4, 3, 2, 1}
	calls := 0
	less := func(a, b int) bool {
		calls++
		if calls == 4 {
			panic("boom")
		}
		return a < b
	}

	func() {
		defer func() { recover() }()
		insertionSortSafe(v, less)
	}()

	assert.Len(t, v, 5)
	counts := map[int]int{}
	for _, x := range v {
		counts[x]++
	}
	for _, want := range []int{1, 2, 3, 4, 5} {
		assert.Equal(t, 1, counts[want], "value %d", want)
	}
}

func TestHeapSortSortsDistinctValues(t *testing.T) {
	v := []int{9, 1, 8, 2, 7, 3, 6, 4, 5, 0}
	heapSort(v, lessInt)
	assert.True(t, sort.IntsAreSorted(v))
}

func TestHeapSortEmptyAndSingleton(t *testing.T) {
	assert.NotPanics(t, func() { heapSort([]int{}, lessInt) })
	v := []int{42}
	heapSort(v, lessInt)
	assert.Equal(t, []int{42}, v)
}
