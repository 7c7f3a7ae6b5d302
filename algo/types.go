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

// Package algo provides the primitives shared by the algorithms in this module:
// comparators, the mutable sequence abstraction, the swap primitive, the
// random source used for pivot selection and the sentinel errors.
//
// Every algorithm is parameterized by a Comparator. For types with a natural
// ordering, Natural returns the default comparator:
//
//	import (
//	    "github.com/kalaninja/algosharp/algo"
//	    "github.com/kalaninja/algosharp/algo/contrib/sort"
//	)
//
//	data := []int{5, 70, 5, 11, 1, 23, 78}
//	sort.Quick(data, algo.Natural[int]())
//
// To sort descending or build a max-heap, invert the comparator:
//
//	sort.MergeTopDown(data, algo.Reverse(algo.Natural[int]()))
package algo

import "cmp"

// Comparator defines a total order over T. It returns a negative number when
// a orders before b, zero when they are equal and a positive number when a
// orders after b. Its signature matches cmp.Compare, so cmp.Compare[T] can be
// used directly.
type Comparator[T any] func(a, b T) int

// Natural returns the natural ordering of an ordered type. It is the default
// comparator for every algorithm in this module.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse inverts c. A heap built with a reversed comparator is a max-heap.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Less reports whether a orders strictly before b.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// Equal reports whether a and b compare as equal.
func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}

// Sequence is a mutable, fixed-length, randomly indexable collection.
// Out-of-range indexes panic, as slice indexing does.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
}

// Slice adapts a Go slice to Sequence. Writes go to the underlying array.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// At returns the element at index i.
func (s Slice[T]) At(i int) T { return s[i] }

// Set stores v at index i.
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Swap exchanges the elements at positions i and j.
func Swap[T any](data []T, i, j int) {
	data[i], data[j] = data[j], data[i]
}

// SwapAt exchanges the elements at positions i and j of a Sequence.
func SwapAt[T any](s Sequence[T], i, j int) {
	tmp := s.At(i)
	s.Set(i, s.At(j))
	s.Set(j, tmp)
}
