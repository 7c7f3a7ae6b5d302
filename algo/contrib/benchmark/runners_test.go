package benchmark

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaninja/algosharp/algo"
)

func TestComparisonSorts(t *testing.T) {
	input := []int{5, 70, 5, 11, 1, 23, 78}
	b := ComparisonSorts(input, algo.Natural[int]())

	assert.Equal(t, []string{
		"BubbleSort", "InsertionSort", "MergeSort", "Parallel MergeSort",
		"Natural MergeSort", "SelectionSort", "QuickSort",
	}, b.Names())

	results, err := b.Run(3)
	require.NoError(t, err)
	assert.Len(t, results, 7)
	assert.Equal(t, []int{5, 70, 5, 11, 1, 23, 78}, input, "input must not be sorted in place")
}

func TestComparisonSortsActionsSort(t *testing.T) {
	input := []int{3, 2, 1}
	b := ComparisonSorts(input, algo.Natural[int]())
	for _, a := range b.actions {
		a.fn()
	}
	assert.Equal(t, []int{3, 2, 1}, input)
}

func TestComparisonSortsOf(t *testing.T) {
	b, err := ComparisonSortsOf([]int{2, 1}, algo.Natural[int](), "quick", "merge-natural", "QuickSort")
	require.NoError(t, err)
	assert.Equal(t, []string{"QuickSort", "Natural MergeSort"}, b.Names())

	_, err = ComparisonSortsOf([]int{2, 1}, algo.Natural[int]())
	require.ErrorIs(t, err, algo.ErrInvalidArgument)

	_, err = ComparisonSortsOf([]int{2, 1}, algo.Natural[int](), "quick", "bogo")
	require.ErrorIs(t, err, algo.ErrInvalidArgument)
}

func TestHeapOperations(t *testing.T) {
	input := []int{9, 4, 7, 1, 8, 2}
	b := HeapOperations(input, algo.Natural[int]())
	assert.Equal(t, []string{"BinaryHeap Add+Poll", "BinaryHeap Heapify"}, b.Names())

	results, err := b.Run(2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.True(t, slices.Equal([]int{9, 4, 7, 1, 8, 2}, input))
}
