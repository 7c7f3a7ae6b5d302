package benchmark

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/kalaninja/algosharp/algo"
	"github.com/kalaninja/algosharp/algo/contrib/heap"
	"github.com/kalaninja/algosharp/algo/contrib/sort"
)

// ComparisonSorts registers every sort in the module. Each call sorts a fresh
// copy of input, so every iteration sees the same unsorted data; the copy is
// part of the measured time for all algorithms alike.
func ComparisonSorts[T any](input []T, cmp algo.Comparator[T]) *Benchmark {
	b := New()
	for _, a := range sort.Algorithms[T]() {
		addSort(b, a, input, cmp)
	}
	return b
}

// ComparisonSortsOf is ComparisonSorts restricted to the named algorithms,
// see sort.Lookup. Duplicate names are registered once.
func ComparisonSortsOf[T any](input []T, cmp algo.Comparator[T], names ...string) (*Benchmark, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(algo.ErrInvalidArgument, "no sort algorithms selected")
	}

	algorithms := make([]sort.Algorithm[T], 0, len(names))
	for _, name := range names {
		a, err := sort.Lookup[T](name)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, a)
	}
	algorithms = lo.UniqBy(algorithms, func(a sort.Algorithm[T]) string { return a.Name })

	b := New()
	for _, a := range algorithms {
		addSort(b, a, input, cmp)
	}
	return b, nil
}

func addSort[T any](b *Benchmark, a sort.Algorithm[T], input []T, cmp algo.Comparator[T]) {
	work := make([]T, len(input))
	b.And(a.Name, func() {
		copy(work, input)
		a.Sort(work, cmp)
	})
}

// HeapOperations registers binary heap workloads over input:
//   - "BinaryHeap Add+Poll" adds every element to an empty heap, then polls
//     until it is empty.
//   - "BinaryHeap Heapify" overwrites the backing storage with input and
//     repairs it with Heapify.
func HeapOperations[T any](input []T, cmp algo.Comparator[T]) *Benchmark {
	raw := heap.NewWithCapacity(len(input), cmp)
	for _, v := range input {
		raw.Add(v)
	}

	return For("BinaryHeap Add+Poll", func() {
		h := heap.NewWithCapacity(len(input), cmp)
		for _, v := range input {
			h.Add(v)
		}
		for h.Len() > 0 {
			_, _ = h.Poll()
		}
	}).And("BinaryHeap Heapify", func() {
		for i, v := range input {
			raw.Set(i, v)
		}
		raw.Heapify()
	})
}
