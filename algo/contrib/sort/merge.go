// Copyright 2025 algosharp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"github.com/kalaninja/algosharp/algo"
	"github.com/kalaninja/algosharp/algo/contrib/workerpool"
)

// ParallelThreshold is the range size below which MergeParallel stops
// forking and sorts sequentially.
const ParallelThreshold = 2048

// MergeTopDown sorts data in place with recursive top-down merge sort. The
// sort is stable. One scratch buffer of len(data) is allocated per call and
// shared by every level of the recursion.
//
// Time complexity: O(n log(n)) in all cases. Space: O(n).
func MergeTopDown[T any](data []T, cmp algo.Comparator[T]) {
	if len(data) < 2 {
		return
	}
	split(data, 0, len(data)-1, cmp, make([]T, len(data)))
}

// MergeParallel is MergeTopDown with the two halves of every split sorted
// concurrently on workerpool.Default. Ranges shorter than ParallelThreshold
// are sorted sequentially. When algo.SequentialOnly is set it runs entirely
// on the calling goroutine.
func MergeParallel[T any](data []T, cmp algo.Comparator[T]) {
	MergeParallelPool(data, cmp, workerpool.Default())
}

// MergeParallelPool is MergeParallel on a caller-owned pool.
//
// Both halves of a split are disjoint ranges of data and of the shared
// scratch buffer, so the concurrent tasks need no locking.
func MergeParallelPool[T any](data []T, cmp algo.Comparator[T], pool *workerpool.Pool) {
	if len(data) < 2 {
		return
	}
	scratch := make([]T, len(data))
	if algo.SequentialOnly() {
		split(data, 0, len(data)-1, cmp, scratch)
		return
	}
	splitParallel(data, 0, len(data)-1, cmp, scratch, pool)
}

func split[T any](data []T, begin, end int, cmp algo.Comparator[T], scratch []T) {
	if end-begin < 1 {
		return
	}

	middle := begin + (end-begin)/2
	split(data, begin, middle, cmp, scratch)
	split(data, middle+1, end, cmp, scratch)

	merge(data, begin, middle, end, cmp, scratch)
}

func splitParallel[T any](data []T, begin, end int, cmp algo.Comparator[T], scratch []T, pool *workerpool.Pool) {
	if end-begin+1 < ParallelThreshold {
		split(data, begin, end, cmp, scratch)
		return
	}

	middle := begin + (end-begin)/2
	pool.Invoke(
		func() { splitParallel(data, begin, middle, cmp, scratch, pool) },
		func() { splitParallel(data, middle+1, end, cmp, scratch, pool) },
	)

	merge(data, begin, middle, end, cmp, scratch)
}

// MergeNatural sorts data in place with natural merge sort. Each pass walks
// the slice left to right, finds two adjacent ascending runs and merges them.
// Passes repeat until one finds a single run covering the whole slice. The
// sort is stable.
//
// Time complexity: O(n) best (sorted input, one pass), O(n log(n)) worst.
// Space: O(n).
func MergeNatural[T any](data []T, cmp algo.Comparator[T]) {
	mergeNatural(data, cmp)
}

// mergeNatural returns the number of passes, for tests.
func mergeNatural[T any](data []T, cmp algo.Comparator[T]) (passes int) {
	if len(data) < 2 {
		return 0
	}
	scratch := make([]T, len(data))
	end := len(data) - 1

	for {
		passes++
		sorted := true
		begin := 0

		for begin < end {
			left := begin
			for left < end && cmp(data[left], data[left+1]) <= 0 {
				left++
			}

			// The second run takes the final element along even when it
			// breaks order; a later pass merges it into place.
			right := left + 1
			for right == end-1 || (right < end && cmp(data[right], data[right+1]) <= 0) {
				right++
			}

			if right <= end {
				merge(data, begin, left, right, cmp, scratch)
				sorted = false
			}

			begin = right + 1
		}

		if sorted {
			return passes
		}
	}
}

// merge merges the sorted runs data[begin:middle+1] and data[middle+1:end+1]
// through scratch[begin:end+1]. On ties the left run wins, which keeps the
// merge stable.
func merge[T any](data []T, begin, middle, end int, cmp algo.Comparator[T], scratch []T) {
	l, r := begin, middle+1

	for i := begin; i <= end; i++ {
		if l <= middle && (r > end || cmp(data[l], data[r]) <= 0) {
			scratch[i] = data[l]
			l++
		} else {
			scratch[i] = data[r]
			r++
		}
	}

	copy(data[begin:end+1], scratch[begin:end+1])
}
