package util

import (
	"golang.org/x/exp/constraints"
)

// Coerce returns value, limited to the range [min, max]
func Coerce[T constraints.Integer | constraints.Float](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
