package sort

import "github.com/kalaninja/algosharp/algo"

// Selection sorts data in place with selection sort.
//
// Time complexity: O(n²) in all cases. Space: O(1).
func Selection[T any](data []T, cmp algo.Comparator[T]) {
	for i := 0; i < len(data)-1; i++ {
		m := i
		for j := i + 1; j < len(data); j++ {
			if cmp(data[m], data[j]) > 0 {
				m = j
			}
		}
		if m != i {
			algo.Swap(data, i, m)
		}
	}
}
