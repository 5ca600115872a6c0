package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func ContainsString(s []string, e string) bool {
	return slices.Contains(s, e)
}

// SortedKeys returns the keys of the given map in ascending order
func SortedKeys[T constraints.Ordered, K any](input map[T]K) []T {
	result := make([]T, 0, len(input))
	for k := range input {
		result = append(result, k)
	}
	slices.Sort(result)
	return result
}
