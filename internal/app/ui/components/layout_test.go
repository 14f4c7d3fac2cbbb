package components

import (
	"strings"
	"testing"

	"github.com/muesli/ansi"
	"github.com/stretchr/testify/assert"
)

func Test_PadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{name: "empty string pad to 5", input: "", width: 5, expect: "     "},
		{name: "short string pad to 10", input: "hello", width: 10, expect: "hello     "},
		{name: "exact width no padding", input: "hello", width: 5, expect: "hello"},
		{name: "longer than width no change", input: "hello world", width: 5, expect: "hello world"},
		{name: "escapes do not count", input: "\x1b[31mred\x1b[0m", width: 5, expect: "\x1b[31mred\x1b[0m  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PadRight(tt.input, tt.width))
		})
	}
}

func Test_PadBetween(t *testing.T) {
	assert.Equal(t, "a    b", PadBetween(6, "a", "b"))
	assert.Equal(t, "left right", PadBetween(3, "left", "right"))
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expect   string
	}{
		{name: "fits", input: "build", maxWidth: 10, expect: "build"},
		{name: "cut", input: "build.log", maxWidth: 6, expect: "build…"},
		{name: "single cell", input: "build", maxWidth: 1, expect: "…"},
		{name: "zero width", input: "build", maxWidth: 0, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func Test_RenderHeader(t *testing.T) {
	header := RenderHeader(60, "build.log", "12 lines")

	assert.Contains(t, header, "build.log")
	assert.Contains(t, header, "12 lines")
	assert.LessOrEqual(t, ansi.PrintableRuneWidth(header), 60)
}

func Test_RenderFooter(t *testing.T) {
	footer := RenderFooter(40, "match 1/3", "FOLLOW", "q quit")
	lines := strings.Split(footer, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "match 1/3")
	assert.Contains(t, lines[0], "FOLLOW")
	assert.Contains(t, lines[1], "q quit")
}
