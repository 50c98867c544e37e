package predicates

// IsMonotone reports whether every adjacent pair of a sequence
// satisfies the given ordering function. Non-sequence values and
// nil functions report false; sequences shorter than two
// elements are trivially monotone.
func IsMonotone(v any, cmp func(a, b any) bool) bool {
	if cmp == nil {
		return false
	}

	elems, ok := elementsOf(v)
	if !ok {
		return false
	}

	for i := 0; i+1 < len(elems); i++ {
		if !cmp(elems[i], elems[i+1]) {
			return false
		}
	}

	return true
}

// IsIncreasing reports whether a sequence is monotonically
// non-decreasing.
func IsIncreasing(v any) bool {
	return monotoneBy(v, func(c int) bool { return c <= 0 })
}

// IsStrictlyIncreasing reports whether a sequence is strictly
// increasing.
func IsStrictlyIncreasing(v any) bool {
	return monotoneBy(v, func(c int) bool { return c < 0 })
}

// IsDecreasing reports whether a sequence is monotonically
// non-increasing.
func IsDecreasing(v any) bool {
	return monotoneBy(v, func(c int) bool { return c >= 0 })
}

// IsStrictlyDecreasing reports whether a sequence is strictly
// decreasing.
func IsStrictlyDecreasing(v any) bool {
	return monotoneBy(v, func(c int) bool { return c > 0 })
}

// monotoneBy checks the Compare result of each adjacent pair
// against an acceptance function. Unorderable pairs fail.
func monotoneBy(v any, accept func(int) bool) bool {
	return IsMonotone(v, func(a, b any) bool {
		c, ok := Compare(a, b)
		return ok && accept(c)
	})
}
