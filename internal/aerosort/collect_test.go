package aerosort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/edirooss/aerosort/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectKeysProducesSortedDistinctRun(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	n := 5000
	v := make([]int, n)
	for i := range v {
		v[i] = r.Intn(n / 3)
	}
	original := append([]int(nil), v...)

	k, taskStart := collectKeys(v, config.DefaultTuning(), lessInt)
	kTotal := k.tagsLen + k.bufferLen
	require.Equal(t, taskStart, kTotal)
	require.Greater(t, kTotal, 0)

	keyRun := v[:kTotal]
	assert.True(t, sort.IntsAreSorted(keyRun))
	seen := map[int]bool{}
	for _, x := range keyRun {
		assert.False(t, seen[x], "keys must be pairwise distinct, got duplicate %d", x)
		seen[x] = true
	}

	counts := map[int]int{}
	for _, x := range original {
		counts[x]++
	}
	for _, x := range v {
		counts[x]--
	}
	for x, c := range counts {
		assert.Zero(t, c, "value %d: collection changed the multiset", x)
	}
}

func TestLeftCollectStateSkipsDuplicates(t *testing.T) {
	v := []int{5, 5, 5, 5, 5}
	st := &leftCollectState[int]{location: 0, keysCount: 1}
	st.scan(v, 10, lessInt)
	assert.Equal(t, 1, st.keysCount)
}

func TestLeftCollectStateCollectsInSortedOrder(t *testing.T) {
	v := []int{5, 1, 9, 3, 7}
	st := &leftCollectState[int]{location: 0, keysCount: 1}
	st.scan(v, 5, lessInt)
	assert.Equal(t, 5, st.keysCount)
	assert.True(t, sort.IntsAreSorted(v[st.location:st.location+st.keysCount]))
}
