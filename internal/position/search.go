package position

import "golang.org/x/exp/constraints"

// Number is any type the default comparator can order
type Number interface {
	constraints.Integer | constraints.Float
}

// Compare is the default comparator, ordering numbers by the sign of x-y
func Compare[N Number](x, y N) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// GreaterEqual returns the first index whose value is >= y, or len(arr) when there is none
func GreaterEqual[N Number](arr []N, y N) int {
	return GreaterEqualRange(arr, y, Compare[N], 0, len(arr)-1)
}

// Greater returns the first index whose value is > y, or len(arr) when there is none
func Greater[N Number](arr []N, y N) int {
	return GreaterRange(arr, y, Compare[N], 0, len(arr)-1)
}

// Less returns the last index whose value is < y, or -1 when there is none
func Less[N Number](arr []N, y N) int {
	return LessRange(arr, y, Compare[N], 0, len(arr)-1)
}

// LessEqual returns the last index whose value is <= y, or -1 when there is none
func LessEqual[N Number](arr []N, y N) int {
	return LessEqualRange(arr, y, Compare[N], 0, len(arr)-1)
}

// Equal returns the first index whose value equals y, or -1
func Equal[N Number](arr []N, y N) int {
	return EqualRange(arr, y, Compare[N], 0, len(arr)-1)
}

// GreaterEqualFunc is GreaterEqual with a custom comparator
func GreaterEqualFunc[T, Y any](arr []T, y Y, cmp func(T, Y) int) int {
	return GreaterEqualRange(arr, y, cmp, 0, len(arr)-1)
}

// GreaterFunc is Greater with a custom comparator
func GreaterFunc[T, Y any](arr []T, y Y, cmp func(T, Y) int) int {
	return GreaterRange(arr, y, cmp, 0, len(arr)-1)
}

// LessFunc is Less with a custom comparator
func LessFunc[T, Y any](arr []T, y Y, cmp func(T, Y) int) int {
	return LessRange(arr, y, cmp, 0, len(arr)-1)
}

// LessEqualFunc is LessEqual with a custom comparator
func LessEqualFunc[T, Y any](arr []T, y Y, cmp func(T, Y) int) int {
	return LessEqualRange(arr, y, cmp, 0, len(arr)-1)
}

// EqualFunc is Equal with a custom comparator
func EqualFunc[T, Y any](arr []T, y Y, cmp func(T, Y) int) int {
	return EqualRange(arr, y, cmp, 0, len(arr)-1)
}

// GreaterEqualRange searches the inclusive range [lo, hi] for the first index i
// with cmp(arr[i], y) >= 0. It returns hi+1 when no such index exists.
func GreaterEqualRange[T, Y any](arr []T, y Y, cmp func(T, Y) int, lo, hi int) int {
	return lowerBound(arr, lo, hi, func(v T) bool { return cmp(v, y) >= 0 })
}

// GreaterRange searches [lo, hi] for the first index i with cmp(arr[i], y) > 0,
// returning hi+1 when no such index exists
func GreaterRange[T, Y any](arr []T, y Y, cmp func(T, Y) int, lo, hi int) int {
	return lowerBound(arr, lo, hi, func(v T) bool { return cmp(v, y) > 0 })
}

// LessRange searches [lo, hi] for the last index i with cmp(arr[i], y) < 0,
// returning lo-1 when no such index exists
func LessRange[T, Y any](arr []T, y Y, cmp func(T, Y) int, lo, hi int) int {
	if lo > hi {
		return lo - 1
	}

	return GreaterEqualRange(arr, y, cmp, lo, hi) - 1
}

// LessEqualRange searches [lo, hi] for the last index i with cmp(arr[i], y) <= 0,
// returning lo-1 when no such index exists
func LessEqualRange[T, Y any](arr []T, y Y, cmp func(T, Y) int, lo, hi int) int {
	if lo > hi {
		return lo - 1
	}

	return GreaterRange(arr, y, cmp, lo, hi) - 1
}

// EqualRange searches [lo, hi] for an index i with cmp(arr[i], y) == 0.
// With duplicates the first matching index is returned; -1 when absent.
func EqualRange[T, Y any](arr []T, y Y, cmp func(T, Y) int, lo, hi int) int {
	i := GreaterEqualRange(arr, y, cmp, lo, hi)
	if i <= hi && i >= lo && cmp(arr[i], y) == 0 {
		return i
	}

	return -1
}

// lowerBound returns the first index in [lo, hi] where pred holds, assuming pred
// is monotonic (false...false true...true) over the range. Returns hi+1 otherwise.
func lowerBound[T any](arr []T, lo, hi int, pred func(T) bool) int {
	if lo > hi {
		return hi + 1
	}

	left, right := lo, hi+1
	for left < right {
		mid := int(uint(left+right) >> 1)
		if pred(arr[mid]) {
			right = mid
		} else {
			left = mid + 1
		}
	}

	return left
}
