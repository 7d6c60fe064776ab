package difference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/requirements/pkg/difference"
)

type tagged struct {
	ID   int
	Tags []string
}

// unhashable compares by ID and never offers a key, forcing pairwise mode.
func unhashable() difference.Equivalence[tagged] {
	return difference.Equivalence[tagged]{
		Equal: func(a, b tagged) bool { return a.ID == b.ID },
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	t.Run("partitions overlapping sets", func(t *testing.T) {
		result := difference.Of([]int{1, 2, 3}, []int{2, 3, 4}, difference.Comparable[int]())
		assert.Equal(t, []int{2, 3}, result.Common)
		assert.Equal(t, []int{1}, result.OnlyInActual)
		assert.Equal(t, []int{4}, result.OnlyInOther)
		assert.False(t, result.AreTheSame())
	})

	t.Run("swapping inputs swaps the one-sided partitions", func(t *testing.T) {
		forward := difference.Of([]int{1, 2, 3}, []int{2, 3, 4}, difference.Comparable[int]())
		backward := difference.Of([]int{2, 3, 4}, []int{1, 2, 3}, difference.Comparable[int]())
		assert.Equal(t, forward.OnlyInActual, backward.OnlyInOther)
		assert.Equal(t, forward.OnlyInOther, backward.OnlyInActual)
		assert.ElementsMatch(t, forward.Common, backward.Common)
	})

	t.Run("keeps source iteration order", func(t *testing.T) {
		result := difference.Of([]string{"c", "a", "b"}, []string{"z", "b", "y"}, difference.Comparable[string]())
		assert.Equal(t, []string{"b"}, result.Common)
		assert.Equal(t, []string{"c", "a"}, result.OnlyInActual)
		assert.Equal(t, []string{"z", "y"}, result.OnlyInOther)
	})

	t.Run("reports duplicates once", func(t *testing.T) {
		result := difference.Of([]int{1, 1, 2}, []int{2, 2, 3, 3}, difference.Comparable[int]())
		assert.Equal(t, []int{2}, result.Common)
		assert.Equal(t, []int{1}, result.OnlyInActual)
		assert.Equal(t, []int{3}, result.OnlyInOther)
	})

	t.Run("same elements in different order", func(t *testing.T) {
		result := difference.Of([]int{3, 2, 1}, []int{1, 2, 3}, difference.Comparable[int]())
		assert.True(t, result.AreTheSame())
	})

	t.Run("empty inputs", func(t *testing.T) {
		result := difference.Of[int](nil, nil, difference.Comparable[int]())
		assert.Empty(t, result.Common)
		assert.Empty(t, result.OnlyInActual)
		assert.Empty(t, result.OnlyInOther)
		assert.True(t, result.AreTheSame())
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		actual := []int{3, 1, 2}
		other := []int{2, 4}
		_ = difference.Of(actual, other, difference.Comparable[int]())
		assert.Equal(t, []int{3, 1, 2}, actual)
		assert.Equal(t, []int{2, 4}, other)
	})

	t.Run("pairwise mode for unhashable elements", func(t *testing.T) {
		actual := []tagged{{ID: 1}, {ID: 2, Tags: []string{"x"}}, {ID: 3}}
		other := []tagged{{ID: 2}, {ID: 3}, {ID: 4}}
		result := difference.Of(actual, other, unhashable())
		assert.Equal(t, []tagged{{ID: 2, Tags: []string{"x"}}, {ID: 3}}, result.Common)
		assert.Equal(t, []tagged{{ID: 1}}, result.OnlyInActual)
		assert.Equal(t, []tagged{{ID: 4}}, result.OnlyInOther)
	})

	t.Run("falls back to pairwise when one key is unavailable", func(t *testing.T) {
		eq := difference.Equivalence[int]{
			Equal: func(a, b int) bool { return a == b },
			Key: func(e int) (any, bool) {
				return e, e != 99
			},
		}
		result := difference.Of([]int{1, 99}, []int{99, 2}, eq)
		assert.Equal(t, []int{99}, result.Common)
		assert.Equal(t, []int{1}, result.OnlyInActual)
		assert.Equal(t, []int{2}, result.OnlyInOther)
	})
}

func TestDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("hashed", func(t *testing.T) {
		assert.Equal(t, []int{2, 1}, difference.Duplicates([]int{1, 2, 2, 1, 2, 3}, difference.Comparable[int]()))
		assert.Empty(t, difference.Duplicates([]int{1, 2, 3}, difference.Comparable[int]()))
	})

	t.Run("pairwise", func(t *testing.T) {
		elements := []tagged{{ID: 1}, {ID: 2}, {ID: 1, Tags: []string{"dup"}}, {ID: 1}}
		assert.Equal(t, []tagged{{ID: 1, Tags: []string{"dup"}}}, difference.Duplicates(elements, unhashable()))
	})
}
