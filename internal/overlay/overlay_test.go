package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddOverlay(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		existing []Range
		first    int
		last     int
		class    string
		expected []Range
	}{
		{
			name:   "middle of unclassed line",
			length: 10,
			first:  5,
			last:   6,
			class:  "abc",
			expected: []Range{
				{0, 5, ""},
				{5, 6, "abc"},
				{6, 10, ""},
			},
		},
		{
			name:     "whole unclassed line",
			length:   10,
			first:    0,
			last:     10,
			class:    "abc",
			expected: []Range{{0, 10, "abc"}},
		},
		{
			name:   "prefix of line",
			length: 10,
			first:  0,
			last:   3,
			class:  "x",
			expected: []Range{
				{0, 3, "x"},
				{3, 10, ""},
			},
		},
		{
			name:   "inside a single classed range",
			length: 10,
			existing: []Range{
				{0, 4, "ansi31"},
				{4, 10, "ansi32"},
			},
			first: 5,
			last:  7,
			class: "m",
			expected: []Range{
				{0, 4, "ansi31"},
				{4, 5, "ansi32"},
				{5, 7, "ansi32 m"},
				{7, 10, "ansi32"},
			},
		},
		{
			name:   "spanning several ranges",
			length: 12,
			existing: []Range{
				{0, 3, "a"},
				{3, 6, ""},
				{6, 9, "b"},
				{9, 12, "c"},
			},
			first: 2,
			last:  10,
			class: "m",
			expected: []Range{
				{0, 2, "a"},
				{2, 3, "a m"},
				{3, 6, "m"},
				{6, 9, "b m"},
				{9, 10, "c m"},
				{10, 12, "c"},
			},
		},
		{
			name:   "aligned with range boundaries",
			length: 9,
			existing: []Range{
				{0, 3, "a"},
				{3, 6, "b"},
				{6, 9, "c"},
			},
			first: 3,
			last:  9,
			class: "m",
			expected: []Range{
				{0, 3, "a"},
				{3, 6, "b m"},
				{6, 9, "c m"},
			},
		},
		{
			name:     "empty overlay leaves partition untouched",
			length:   4,
			existing: []Range{{0, 4, "a"}},
			first:    2,
			last:     2,
			class:    "m",
			expected: []Range{{0, 4, "a"}},
		},
		{
			name:     "empty line",
			length:   0,
			first:    0,
			last:     0,
			class:    "m",
			expected: []Range{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddOverlay(tt.length, tt.existing, tt.first, tt.last, tt.class)
			assert.Equal(t, tt.expected, result)
			assertPartition(t, tt.length, result)
		})
	}
}

func Test_AddOverlay_DoesNotMutateInput(t *testing.T) {
	existing := []Range{{0, 5, "a"}, {5, 10, "b"}}
	snapshot := append([]Range(nil), existing...)

	_ = AddOverlay(10, existing, 2, 8, "m")

	assert.Equal(t, snapshot, existing)
}

func Test_AddOverlay_InvalidRangePanics(t *testing.T) {
	tests := []struct {
		name  string
		first int
		last  int
	}{
		{"negative start", -1, 2},
		{"start after end", 4, 3},
		{"end past line", 2, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)

				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrInvalidRange))
			}()

			AddOverlay(10, nil, tt.first, tt.last, "m")
		})
	}
}

func Test_AddOverlay_DisjointOverlaysCommute(t *testing.T) {
	base := []Range{{0, 4, "a"}, {4, 8, ""}, {8, 16, "b"}}

	pairs := [][4]int{
		{1, 3, 5, 7},
		{2, 4, 4, 6},
		{0, 9, 9, 16},
		{5, 6, 10, 12},
	}

	for _, p := range pairs {
		ab := AddOverlay(16, AddOverlay(16, base, p[0], p[1], "x"), p[2], p[3], "y")
		ba := AddOverlay(16, AddOverlay(16, base, p[2], p[3], "y"), p[0], p[1], "x")

		assert.Equal(t, ab, ba, "overlays %v", p)
		assertPartition(t, 16, ab)
	}
}

func Test_AddOverlay_FullLineOnUnclassed(t *testing.T) {
	fromNil := AddOverlay(7, nil, 0, 7, "m")
	fromExplicit := AddOverlay(7, []Range{{0, 7, ""}}, 0, 7, "m")

	assert.Equal(t, []Range{{0, 7, "m"}}, fromNil)
	assert.Equal(t, fromNil, fromExplicit)
}

func Test_JoinClasses(t *testing.T) {
	assert.Equal(t, "a b", JoinClasses("a", "b"))
	assert.Equal(t, "b", JoinClasses("", "b"))
	assert.Equal(t, "a", JoinClasses("a", ""))
	assert.Equal(t, "", JoinClasses("", ""))
	assert.Equal(t, "a b c", JoinClasses("a", "", "b", "c"))
}

func Test_Check(t *testing.T) {
	assert.NoError(t, Check(5, 0, 5))
	assert.NoError(t, Check(0, 0, 0))
	assert.ErrorIs(t, Check(5, 3, 2), ErrInvalidRange)
}

func Test_Text(t *testing.T) {
	assert.Equal(t, []string{"hello"}, Text("hello", nil))
	assert.Equal(t, []string{"he", "llo"}, Text("hello", []Range{{0, 2, "a"}, {2, 5, ""}}))
}

func assertPartition(t *testing.T, length int, ranges []Range) {
	t.Helper()

	pos := 0
	for _, r := range ranges {
		assert.Equal(t, pos, r.FirstPos)
		assert.Greater(t, r.LastPos, r.FirstPos)
		pos = r.LastPos
	}

	assert.Equal(t, length, pos)
}
