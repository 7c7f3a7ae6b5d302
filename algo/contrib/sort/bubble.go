package sort

import "github.com/kalaninja/algosharp/algo"

// Bubble sorts data in place with bubble sort. Each pass stops at the position
// of the previous pass's last swap, since everything after it is in place.
//
// Time complexity: O(n) best, O(n²) average and worst. Space: O(1).
func Bubble[T any](data []T, cmp algo.Comparator[T]) {
	n := len(data) - 1
	for n > 0 {
		lastSwap := 0
		for j := 0; j < n; j++ {
			if cmp(data[j], data[j+1]) <= 0 {
				continue
			}
			algo.Swap(data, j, j+1)
			lastSwap = j
		}
		n = lastSwap
	}
}
