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
	"strings"

	"github.com/pkg/errors"

	"github.com/kalaninja/algosharp/algo"
)

// Algorithm describes one sort entry point.
type Algorithm[T any] struct {
	// Name is the display name, e.g. "Parallel MergeSort".
	Name string
	// Alias is the short command-line name, e.g. "merge-parallel".
	Alias string
	// Stable is true when equal elements keep their relative input order.
	Stable bool
	// Sort sorts data in place.
	Sort func(data []T, cmp algo.Comparator[T])
}

// Algorithms returns every sort entry point in a fixed order.
func Algorithms[T any]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "BubbleSort", Alias: "bubble", Sort: Bubble[T]},
		{Name: "InsertionSort", Alias: "insertion", Sort: Insertion[T]},
		{Name: "MergeSort", Alias: "merge", Stable: true, Sort: MergeTopDown[T]},
		{Name: "Parallel MergeSort", Alias: "merge-parallel", Stable: true, Sort: MergeParallel[T]},
		{Name: "Natural MergeSort", Alias: "merge-natural", Stable: true, Sort: MergeNatural[T]},
		{Name: "SelectionSort", Alias: "selection", Sort: Selection[T]},
		{Name: "QuickSort", Alias: "quick", Sort: Quick[T]},
	}
}

// Lookup finds an algorithm by display name or alias, ignoring case.
func Lookup[T any](name string) (Algorithm[T], error) {
	for _, a := range Algorithms[T]() {
		if strings.EqualFold(a.Name, name) || strings.EqualFold(a.Alias, name) {
			return a, nil
		}
	}
	return Algorithm[T]{}, errors.Wrapf(algo.ErrInvalidArgument, "unknown sort algorithm %q", name)
}

// IsSorted reports whether data is in non-decreasing order according to cmp.
func IsSorted[T any](data []T, cmp algo.Comparator[T]) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
