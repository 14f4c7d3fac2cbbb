package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Reposition(t *testing.T) {
	const unset = -1

	tests := []struct {
		name     string
		arr      []int
		start    int
		newStart int
		newEnd   int
		expected []int
	}{
		{"identity", []int{10, 11, 12}, 10, 10, 13, []int{10, 11, 12}},
		{"shift forward", []int{10, 11, 12}, 10, 11, 15, []int{11, 12, unset, unset}},
		{"shift backward", []int{10, 11, 12}, 10, 8, 12, []int{unset, unset, 10, 11}},
		{"grow both sides", []int{10, 11}, 10, 9, 13, []int{unset, 10, 11, unset}},
		{"shrink inside", []int{10, 11, 12, 13}, 10, 11, 13, []int{11, 12}},
		{"disjoint after", []int{10, 11}, 10, 20, 22, []int{unset, unset}},
		{"disjoint before", []int{10, 11}, 10, 0, 3, []int{unset, unset, unset}},
		{"empty range", []int{10, 11}, 10, 10, 10, []int{}},
		{"inverted range", []int{10, 11}, 10, 12, 10, []int{}},
		{"empty source", []int{}, 0, 0, 2, []int{unset, unset}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reposition(tt.arr, tt.start, tt.newStart, tt.newEnd, unset))
		})
	}
}

func Test_Reposition_PreservesIntersection(t *testing.T) {
	arr := make([]int, 50)
	for i := range arr {
		arr[i] = 100 + i
	}

	const start = 100

	for newStart := 60; newStart < 170; newStart += 7 {
		for width := 0; width < 80; width += 9 {
			newEnd := newStart + width
			out := Reposition(arr, start, newStart, newEnd, 0)

			assert.Len(t, out, width)

			for g := newStart; g < newEnd; g++ {
				if g >= start && g < start+len(arr) {
					assert.Equal(t, g, out[g-newStart])
				} else {
					assert.Equal(t, 0, out[g-newStart])
				}
			}
		}
	}
}

func Test_Reposition_DoesNotAlias(t *testing.T) {
	arr := []int{1, 2, 3}
	out := Reposition(arr, 0, 0, 3, 0)
	out[0] = 42

	assert.Equal(t, 1, arr[0])
}
