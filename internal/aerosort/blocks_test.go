package aerosort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBlockMergeCase builds v as tags ++ buffer ++ a ++ b, sorts a and b
// independently, merges them via blockMerge, and checks that the task
// region (a ++ b) ends up sorted and is a permutation of its inputs. The
// tags/buffer region is filled with sorted, pairwise-distinct values, as
// collectKeys would leave it, and is not asserted on.
func runBlockMergeCase(t *testing.T, tagsLen, bufferLen, aLen, bLen int, seed int64) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))

	kTotal := tagsLen + bufferLen
	v := make([]int, kTotal+aLen+bLen)
	for i := range v {
		v[i] = r.Intn(aLen + bLen + 1)
	}
	for i := 0; i < kTotal; i++ {
		v[i] = i - kTotal
	}

	aStart, bStart := kTotal, kTotal+aLen
	sort.Ints(v[aStart:bStart])
	sort.Ints(v[bStart : bStart+bLen])

	original := append([]int(nil), v[aStart:bStart+bLen]...)

	k := newKeys[int](kTotal, bufferLen)
	got := blockMerge(k, v, aStart, aLen, bStart, bLen, lessInt)
	require.Equal(t, done, got)

	task := v[aStart : bStart+bLen]
	assert.True(t, sort.IntsAreSorted(task), "tags=%d buf=%d a=%d b=%d", tagsLen, bufferLen, aLen, bLen)

	counts := map[int]int{}
	for _, x := range original {
		counts[x]++
	}
	for _, x := range task {
		counts[x]--
	}
	for x, c := range counts {
		assert.Zero(t, c, "value %d: block merge changed the multiset", x)
	}
}

func TestScrollingBlockMerge(t *testing.T) {
	// A buffer large enough relative to tagsLen that
	// canScrollingBlockMerge holds for these run lengths.
	runBlockMergeCase(t, 20, 10, 97, 83, 1)
	runBlockMergeCase(t, 20, 10, 83, 97, 2)
	runBlockMergeCase(t, 50, 20, 401, 399, 3)
}

func TestInPlaceBlockMergeFallback(t *testing.T) {
	// A tiny buffer forces canScrollingBlockMerge to fail for these run
	// lengths, exercising the in-place variant instead.
	runBlockMergeCase(t, 2, 1, 97, 83, 4)
	runBlockMergeCase(t, 2, 1, 83, 97, 5)
}

func TestBlockMergeManySizes(t *testing.T) {
	// blockMerge requires both run lengths to exceed the buffer length
	// (bufferLen=3 here), matching the precondition its only caller,
	// mergeRegular, always establishes before reaching it.
	sizes := []int{5, 8, 13, 21, 34, 55}
	for i, aLen := range sizes {
		for _, bLen := range sizes {
			runBlockMergeCase(t, 6, 3, aLen, bLen, int64(100+i))
		}
	}
}
