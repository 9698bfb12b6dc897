package targeting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireAddsOnlyInRange(t *testing.T) {
	candidates := []Candidate[int]{
		{ID: 1, X: 300, Y: 0},
		{ID: 2, X: 150, Y: 0},
		{ID: 3, X: 0, Y: 199.9},
	}

	list := Acquire(nil, 0, 0, 0, 200, candidates)

	assert.Equal(t, []int{2, 3}, list)
}

func TestAcquireSkipsSelfAndDuplicates(t *testing.T) {
	candidates := []Candidate[int]{
		{ID: 7, X: 1, Y: 1},
		{ID: 8, X: 2, Y: 2},
		{ID: 8, X: 2, Y: 2},
	}

	list := Acquire([]int{8}, 7, 0, 0, 50, candidates)
	list = Acquire(list, 7, 0, 0, 50, candidates)

	assert.Equal(t, []int{8}, list)
}

func TestAcquireKeepsEntriesOutOfRange(t *testing.T) {
	list := Acquire([]int{4}, 0, 0, 0, 10, []Candidate[int]{{ID: 4, X: 1000, Y: 0}})

	assert.Equal(t, []int{4}, list)
}

func TestSortPriorityAlwaysFirst(t *testing.T) {
	dist := map[int]float64{1: 50, 2: 10, 3: 30, 9: 400}
	lookup := func(id int) (float64, bool) {
		d, ok := dist[id]
		return d, ok
	}

	orders := [][]int{
		{1, 2, 3, 9},
		{9, 3, 2, 1},
		{2, 9, 1, 3},
		{3, 1, 9, 2},
	}
	for _, list := range orders {
		Sort(list, 9, true, lookup)
		assert.Equal(t, []int{9, 2, 3, 1}, list)
	}
}

func TestSortByDistanceWithoutPriority(t *testing.T) {
	list := []int{1, 2, 3}
	dist := map[int]float64{1: 5, 2: 1, 3: 3}

	Sort(list, 0, false, func(id int) (float64, bool) { return dist[id], true })

	assert.Equal(t, []int{2, 3, 1}, list)
}

func TestSortToleratesStaleEntries(t *testing.T) {
	list := []int{5, 6, 9, 7}
	dist := map[int]float64{5: 20, 9: 1000}

	assert.NotPanics(t, func() {
		Sort(list, 9, true, func(id int) (float64, bool) {
			d, ok := dist[id]
			if !ok {
				return math.NaN(), false
			}
			return d, true
		})
	})

	assert.Len(t, list, 4)
	assert.Equal(t, 9, list[0])
	assert.ElementsMatch(t, []int{5, 6, 7, 9}, list)
}

func TestRemove(t *testing.T) {
	assert.Equal(t, []int{1, 3}, Remove([]int{1, 2, 3}, 2))
	assert.Empty(t, Remove([]int{2}, 2))
	assert.Equal(t, []int{1}, Remove([]int{1}, 5))
}
