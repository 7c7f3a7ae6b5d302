package sort

import "github.com/kalaninja/algosharp/algo"

// Insertion sorts data in place with insertion sort.
//
// Time complexity: O(n) best, O(n²) average and worst. Space: O(1).
func Insertion[T any](data []T, cmp algo.Comparator[T]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i
		for j > 0 && cmp(data[j-1], key) > 0 {
			data[j] = data[j-1]
			j--
		}
		data[j] = key
	}
}

// InsertionSeq is Insertion over any Sequence.
func InsertionSeq[T any](s algo.Sequence[T], cmp algo.Comparator[T]) {
	for i := 1; i < s.Len(); i++ {
		key := s.At(i)
		j := i
		for j > 0 && cmp(s.At(j-1), key) > 0 {
			s.Set(j, s.At(j-1))
			j--
		}
		s.Set(j, key)
	}
}
