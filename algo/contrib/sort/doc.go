// Package sort provides classic in-place comparison sorts parameterized by a
// comparator.
//
// # Algorithms
//
//   - Bubble, Insertion, Selection: O(n²) reference sorts
//   - Quick: randomized-pivot quicksort, O(n log n) average
//   - MergeTopDown: recursive merge sort with a single scratch buffer
//   - MergeParallel: merge sort that sorts the two halves of each split
//     concurrently on a worker pool
//   - MergeNatural: bottom-up merge sort that merges existing ascending runs,
//     O(n) on sorted input
//
// The merge sorts are stable. The others are not required to be.
//
// # Example Usage
//
//	import (
//	    "github.com/kalaninja/algosharp/algo"
//	    "github.com/kalaninja/algosharp/algo/contrib/sort"
//	)
//
//	func Process(data []int) {
//	    sort.MergeTopDown(data, algo.Natural[int]())  // In-place ascending sort
//	}
//
//	func ProcessWithSeed(data []int) {
//	    sort.QuickRand(data, algo.Natural[int](), algo.NewRandom(1))  // Reproducible pivots
//	}
//
// Every entry point accepts empty and single-element input and returns
// immediately.
package sort
