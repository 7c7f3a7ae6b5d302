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

// Package heap provides an array-backed binary heap ordered by a pluggable
// comparator.
//
// The heap is a min-heap with respect to its comparator: the root is the
// element that orders first. To get a max-heap, invert the comparator:
//
//	h := heap.New(algo.Reverse(algo.Natural[int]()))
//	h.Add(3)
//	h.Add(7)
//	top, _ := h.Peek() // 7
package heap

import (
	"cmp"
	"iter"
	"slices"

	"github.com/kalaninja/algosharp/algo"
)

// Heap is a complete binary tree stored in a slice that satisfies the heap
// ordering property: for every i > 0, cmp(items[parent(i)], items[i]) <= 0.
//
// Heap is not safe for concurrent use.
type Heap[T any] struct {
	items []T
	cmp   algo.Comparator[T]
}

// New creates an empty heap ordered by c.
func New[T any](c algo.Comparator[T]) *Heap[T] {
	return &Heap[T]{cmp: c}
}

// NewWithCapacity creates an empty heap ordered by c that can hold capacity
// elements without growing. A negative capacity is treated as zero.
func NewWithCapacity[T any](capacity int, c algo.Comparator[T]) *Heap[T] {
	return &Heap[T]{
		items: make([]T, 0, max(capacity, 0)),
		cmp:   c,
	}
}

// NewOrdered creates an empty min-heap using the natural ordering of T.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(algo.Natural[T]())
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// Cap returns the number of elements the heap can hold without growing.
func (h *Heap[T]) Cap() int { return cap(h.items) }

// At returns the element at storage index i.
func (h *Heap[T]) At(i int) T { return h.items[i] }

// Set stores v at storage index i. It does not maintain the heap property;
// call Heapify after raw modifications.
func (h *Heap[T]) Set(i int, v T) { h.items[i] = v }

// Add inserts item. Time complexity: O(log(n)) amortized.
func (h *Heap[T]) Add(item T) {
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

// Peek returns the root without removing it: the minimum for a min-heap,
// the maximum for a max-heap. Time complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, algo.ErrEmptyCollection
	}
	return h.items[0], nil
}

// Poll removes and returns the root. Time complexity: O(log(n)).
func (h *Heap[T]) Poll() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, algo.ErrEmptyCollection
	}

	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.truncate(last)
	if last > 0 {
		h.down(0)
	}
	return root, nil
}

// Remove deletes the first element that compares equal to item and reports
// whether one was found. Time complexity: O(n) search plus O(log(n)) repair.
func (h *Heap[T]) Remove(item T) bool {
	i := slices.IndexFunc(h.items, func(v T) bool {
		return h.cmp.Equal(v, item)
	})
	if i < 0 {
		return false
	}

	last := len(h.items) - 1
	h.items[i] = h.items[last]
	h.truncate(last)
	if i == last {
		return true
	}

	if i > 0 && h.cmp(h.items[parent(i)], h.items[i]) > 0 {
		h.up(i)
	} else {
		h.down(i)
	}
	return true
}

// Heapify repairs the heap after raw modifications through Set. It makes a
// single pass from the last element to the second, swapping each element
// with its parent when the parent orders after it. A value placed anywhere
// in the tree that orders before everything else ends up at the root, but
// unlike a bottom-up build this pass does not guarantee Validate for every
// arrangement. Time complexity: O(n).
func (h *Heap[T]) Heapify() {
	for i := len(h.items) - 1; i > 0; i-- {
		p := parent(i)
		if h.cmp(h.items[p], h.items[i]) > 0 {
			algo.Swap(h.items, i, p)
		}
	}
}

// Validate reports whether the heap property holds. Time complexity: O(n).
func (h *Heap[T]) Validate() bool {
	for i := len(h.items) - 1; i > 0; i-- {
		if h.cmp(h.items[parent(i)], h.items[i]) > 0 {
			return false
		}
	}
	return true
}

// All returns an iterator over the elements in storage order, which is heap
// order rather than sorted order. It does not modify the heap.
func (h *Heap[T]) All() iter.Seq[T] {
	return slices.Values(h.items)
}

// Values returns a copy of the elements in storage order.
func (h *Heap[T]) Values() []T {
	return slices.Clone(h.items)
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// truncate shrinks the heap to n elements, zeroing the vacated slot so the
// removed value can be collected.
func (h *Heap[T]) truncate(n int) {
	var zero T
	h.items[n] = zero
	h.items = h.items[:n]
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.cmp.Less(h.items[i], h.items[p]) {
			break
		}
		algo.Swap(h.items, i, p)
		i = p
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		l, r := left(i), right(i)
		if l < n && h.cmp.Less(h.items[l], h.items[smallest]) {
			smallest = l
		}
		if r < n && h.cmp.Less(h.items[r], h.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		algo.Swap(h.items, i, smallest)
		i = smallest
	}
}
