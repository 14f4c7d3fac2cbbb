package position

// Reposition projects a dense window array onto a new global range.
//
// arr holds the values for global indices [startIndex, startIndex+len(arr)).
// The result covers [newStart, newEnd): values in the overlap keep their global
// position, slots only present in the new range are filled with unset, and
// values outside the new range are dropped. An empty new range yields a
// zero-length slice.
func Reposition[T any](arr []T, startIndex, newStart, newEnd int, unset T) []T {
	if newEnd <= newStart {
		return []T{}
	}

	out := make([]T, newEnd-newStart)

	overlapStart := max(startIndex, newStart)
	overlapEnd := min(startIndex+len(arr), newEnd)

	if overlapStart >= overlapEnd {
		for i := range out {
			out[i] = unset
		}

		return out
	}

	for i := newStart; i < overlapStart; i++ {
		out[i-newStart] = unset
	}

	copy(out[overlapStart-newStart:overlapEnd-newStart], arr[overlapStart-startIndex:overlapEnd-startIndex])

	for i := overlapEnd; i < newEnd; i++ {
		out[i-newStart] = unset
	}

	return out
}
