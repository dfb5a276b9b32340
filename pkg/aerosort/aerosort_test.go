package aerosort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/aerosort/pkg/aerosort"
)

func TestSortIntsAcrossSizes(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, n := range []int{0, 1, 2, 16, 100, 5000} {
		v := make([]int, n)
		for i := range v {
			v[i] = r.Intn(n + 1)
		}
		original := append([]int(nil), v...)

		aerosort.Sort(v)
		assert.True(t, sort.IntsAreSorted(v))
		assertSamePermutation(t, original, v)
	}
}

func TestSortFuncKeyOrdersByKey(t *testing.T) {
	type record struct {
		name string
		age  int
	}
	v := []record{{"d", 4}, {"a", 1}, {"c", 3}, {"b", 2}}
	aerosort.SortFuncKey(v, func(r record) int { return r.age })

	ages := make([]int, len(v))
	for i, r := range v {
		ages[i] = r.age
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ages)
}

func TestSortWithReusesCallerBuffer(t *testing.T) {
	v := []int{9, 2, 7, 4, 1, 8, 3, 6, 5}
	buf := make([]int, 4)
	aerosort.SortWith(v, buf)
	assert.True(t, sort.IntsAreSorted(v))
}

func TestSortWithNilBufferStillCorrect(t *testing.T) {
	v := []int{9, 2, 7, 4, 1, 8, 3, 6, 5}
	aerosort.SortWith(v, nil)
	assert.True(t, sort.IntsAreSorted(v))
}

func TestSortStableOnStrings(t *testing.T) {
	type item struct {
		key string
		seq int
	}
	v := []item{{"b", 0}, {"a", 0}, {"b", 1}, {"a", 1}}
	aerosort.SortFuncKey(v, func(it item) string { return it.key })

	assert.Equal(t, []item{{"a", 0}, {"a", 1}, {"b", 0}, {"b", 1}}, v)
}

func assertSamePermutation(t *testing.T, original, sorted []int) {
	t.Helper()
	counts := map[int]int{}
	for _, x := range original {
		counts[x]++
	}
	for _, x := range sorted {
		counts[x]--
	}
	for _, c := range counts {
		assert.Zero(t, c)
	}
}
