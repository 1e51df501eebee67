package utils

import "golang.org/x/exp/constraints"

// ExtremalIndices returns the indices of every element equal to the
// maximum (maximize true) or minimum (maximize false) of values. Equality
// is exact. Returns nil for an empty slice.
func ExtremalIndices[T constraints.Ordered](values []T, maximize bool) []int {
	if len(values) == 0 {
		return nil
	}

	best := values[0]
	for _, v := range values[1:] {
		if (maximize && v > best) || (!maximize && v < best) {
			best = v
		}
	}

	var indices []int
	for i, v := range values {
		if v == best {
			indices = append(indices, i)
		}
	}
	return indices
}

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
