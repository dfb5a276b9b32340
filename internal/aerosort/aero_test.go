package aerosort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/edirooss/aerosort/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSortResult(t *testing.T, original, sorted []int) {
	t.Helper()
	require.Len(t, sorted, len(original))
	assert.True(t, sort.IntsAreSorted(sorted))

	counts := map[int]int{}
	for _, x := range original {
		counts[x]++
	}
	for _, x := range sorted {
		counts[x]--
	}
	for x, c := range counts {
		assert.Zero(t, c, "value %d: element count changed", x)
	}
}

func TestSortFullAcrossSizesAndBufferBudgets(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 10, 13, 64, 65, 100, 257, 1000, 4099}
	r := rand.New(rand.NewSource(1))

	for _, n := range sizes {
		for _, extFrac := range []int{0, 4, 2} {
			v := make([]int, n)
			for i := range v {
				v[i] = r.Intn(n + 1)
			}
			original := append([]int(nil), v...)

			var ext []int
			if extFrac > 0 {
				ext = make([]int, n/extFrac)
			}

			SortFull(v, ext, config.DefaultTuning(), lessInt)
			checkSortResult(t, original, v)
		}
	}
}

func TestSortFullFewUniqueValues(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	v := make([]int, 3000)
	for i := range v {
		v[i] = r.Intn(5)
	}
	original := append([]int(nil), v...)

	SortFull(v, nil, config.DefaultTuning(), lessInt)
	checkSortResult(t, original, v)
}

func TestSortFullAlreadySortedAndReversed(t *testing.T) {
	n := 2000
	sorted := make([]int, n)
	reversed := make([]int, n)
	for i := 0; i < n; i++ {
		sorted[i] = i
		reversed[i] = n - i
	}

	v1 := append([]int(nil), sorted...)
	SortFull(v1, nil, config.DefaultTuning(), lessInt)
	checkSortResult(t, sorted, v1)

	v2 := append([]int(nil), reversed...)
	SortFull(v2, nil, config.DefaultTuning(), lessInt)
	checkSortResult(t, reversed, v2)
}

func TestSortFullStable(t *testing.T) {
	type pair struct{ key, seq int }
	r := rand.New(rand.NewSource(3))
	n := 2000
	v := make([]pair, n)
	for i := range v {
		v[i] = pair{key: r.Intn(20), seq: i}
	}

	less := func(a, b pair) bool { return a.key < b.key }
	SortFull(v, nil, config.DefaultTuning(), less)

	for i := 1; i < len(v); i++ {
		if v[i-1].key == v[i].key {
			assert.Less(t, v[i-1].seq, v[i].seq, "equal keys must keep input order")
		} else {
			assert.LessOrEqual(t, v[i-1].key, v[i].key)
		}
	}
}

func TestSortFullDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	n := 1500
	base := make([]int, n)
	for i := range base {
		base[i] = r.Intn(n)
	}

	v1 := append([]int(nil), base...)
	v2 := append([]int(nil), base...)
	SortFull(v1, nil, config.DefaultTuning(), lessInt)
	SortFull(v2, nil, config.DefaultTuning(), lessInt)
	assert.Equal(t, v1, v2)
}
