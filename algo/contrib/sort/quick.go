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

import "github.com/kalaninja/algosharp/algo"

// Quick sorts data in place using quicksort with a uniformly random pivot
// drawn from algo.DefaultRandom. It is safe to sort different slices from
// many goroutines at once.
//
// Time complexity: O(n log(n)) average, O(n²) worst. Space: O(log(n))
// expected stack.
func Quick[T any](data []T, cmp algo.Comparator[T]) {
	QuickRand(data, cmp, algo.DefaultRandom())
}

// QuickRand is Quick with an explicit pivot source. The pivot sequence only
// affects performance; the result is always fully ordered. A nil rnd uses
// algo.DefaultRandom.
func QuickRand[T any](data []T, cmp algo.Comparator[T], rnd algo.Random) {
	if rnd == nil {
		rnd = algo.DefaultRandom()
	}
	quickSort(data, cmp, rnd, 0, len(data)-1)
}

func quickSort[T any](data []T, cmp algo.Comparator[T], rnd algo.Random, begin, end int) {
	if begin >= end {
		return
	}

	p := partition(data, cmp, rnd, begin, end)

	quickSort(data, cmp, rnd, begin, p-1)
	quickSort(data, cmp, rnd, p+1, end)
}

// partition moves a random pivot of data[begin:end+1] to its final position
// and returns that position. Elements before it are <= pivot, elements after
// it are > pivot.
func partition[T any](data []T, cmp algo.Comparator[T], rnd algo.Random, begin, end int) int {
	pivotIndex := rnd.IntRange(begin, end+1)
	pivot := data[pivotIndex]

	algo.Swap(data, pivotIndex, end)

	index := begin
	for j := begin; j < end; j++ {
		if cmp(data[j], pivot) <= 0 {
			algo.Swap(data, index, j)
			index++
		}
	}

	algo.Swap(data, index, end)
	return index
}

// QuickSeq is QuickRand over any Sequence. A nil rnd uses
// algo.DefaultRandom.
func QuickSeq[T any](s algo.Sequence[T], cmp algo.Comparator[T], rnd algo.Random) {
	if rnd == nil {
		rnd = algo.DefaultRandom()
	}
	quickSortSeq(s, cmp, rnd, 0, s.Len()-1)
}

func quickSortSeq[T any](s algo.Sequence[T], cmp algo.Comparator[T], rnd algo.Random, begin, end int) {
	if begin >= end {
		return
	}

	pivotIndex := rnd.IntRange(begin, end+1)
	pivot := s.At(pivotIndex)
	algo.SwapAt(s, pivotIndex, end)

	index := begin
	for j := begin; j < end; j++ {
		if cmp(s.At(j), pivot) <= 0 {
			algo.SwapAt(s, index, j)
			index++
		}
	}
	algo.SwapAt(s, index, end)

	quickSortSeq(s, cmp, rnd, begin, index-1)
	quickSortSeq(s, cmp, rnd, index+1, end)
}
