package validation

// Duplicates returns, in first-repeat order, each key that occurs more than
// once in items. It makes one pass with a seen-set.
func Duplicates[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]bool, len(items))
	var dups []K
	for _, it := range items {
		k := key(it)
		reported, ok := seen[k]
		switch {
		case !ok:
			seen[k] = false
		case !reported:
			seen[k] = true
			dups = append(dups, k)
		}
	}
	return dups
}

// Indexes returns the positions of items for which match is true.
func Indexes[T any](items []T, match func(T) bool) []int {
	var idx []int
	for i, it := range items {
		if match(it) {
			idx = append(idx, i)
		}
	}
	return idx
}
