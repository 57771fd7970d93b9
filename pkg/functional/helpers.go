package f

import "slices"

type Set[T comparable] map[T]struct{}

func NewSet[T comparable]() Set[T] {
	return make(map[T]struct{})
}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Contains(item T) bool {
	_, found := s[item]
	return found
}

func Map[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, t := range ts {
		us[i] = f(t)
	}
	return us
}

func Filtered[T any](ts []T, f func(T) bool) []T {
	filtered := make([]T, 0)
	for _, t := range ts {
		if f(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// RemoveDuplicates keeps the first occurrence of each item.
func RemoveDuplicates[T comparable](sliceList []T) []T {
	seen := NewSet[T]()
	return slices.DeleteFunc(slices.Clone(sliceList), func(t T) bool {
		if seen.Contains(t) {
			return true
		}
		seen.Add(t)
		return false
	})
}

// SlicesItemsMatch reports whether two slices hold the same items with the
// same multiplicity, regardless of order.
func SlicesItemsMatch[T comparable](s1, s2 []T) bool {
	if len(s1) != len(s2) {
		return false
	}
	counts := make(map[T]int, len(s1))
	for _, item := range s1 {
		counts[item]++
	}
	for _, item := range s2 {
		counts[item]--
		if counts[item] < 0 {
			return false
		}
	}
	return true
}
