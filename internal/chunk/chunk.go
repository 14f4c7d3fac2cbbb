package chunk

import (
	"errors"
	"fmt"
)

// Log type tags accepted by Parse
const (
	// LogTypeStdio marks logs whose lines start with a one-byte stream marker
	LogTypeStdio = 's'
	// LogTypeText marks logs without stream markers
	LogTypeText = 't'
)

// Stream markers carried by stdio logs
const (
	LineTypeStdout = 'o'
	LineTypeStderr = 'e'
	LineTypeHeader = 'h'
)

var (
	ErrChunksNotContiguous = errors.New("chunks are not contiguous")
	ErrInvalidChunk        = errors.New("invalid chunk")
)

// Chunk is an immutable, indexed slice of a log covering lines [FirstLine, LastLine).
//
// Text holds the raw line contents, escape sequences included, with stream
// markers and line terminators removed. Line i of the chunk spans
// Text[TextLineBounds[i]:TextLineBounds[i+1]].
//
// LinesWithEscapes lists the chunk-relative lines known to contain escape
// sequences; nil means escapes are not tracked and any line may have them.
// When the shadow (TextNoEscapes and TextNoEscapesLineBounds) is present it is
// the fully stripped mirror of Text.
type Chunk struct {
	FirstLine        int
	LastLine         int
	Text             string
	TextLineBounds   []int
	LineTypes        string
	LinesWithEscapes []int

	TextNoEscapes           string
	TextNoEscapesLineBounds []int
}

// LineCount returns the number of lines in the chunk
func (c Chunk) LineCount() int {
	return c.LastLine - c.FirstLine
}

// HasShadow reports whether the escape-stripped mirror is present
func (c Chunk) HasShadow() bool {
	return c.TextNoEscapesLineBounds != nil
}

// Line returns the raw text of chunk-relative line i
func (c Chunk) Line(i int) string {
	return c.Text[c.TextLineBounds[i]:c.TextLineBounds[i+1]]
}

// LineType returns the stream marker of chunk-relative line i
func (c Chunk) LineType(i int) byte {
	return c.LineTypes[i]
}

// VisibleLine returns the escape-stripped text of chunk-relative line i
func (c Chunk) VisibleLine(i int) string {
	if c.HasShadow() {
		return c.TextNoEscapes[c.TextNoEscapesLineBounds[i]:c.TextNoEscapesLineBounds[i+1]]
	}

	return stripLine(c.Line(i))
}

// Contains reports whether the global line index falls inside the chunk
func (c Chunk) Contains(line int) bool {
	return line >= c.FirstLine && line < c.LastLine
}

// Validate checks the structural invariants of the chunk
func (c Chunk) Validate() error {
	n := c.LineCount()

	if n < 0 {
		return fmt.Errorf("%w: last line %d before first line %d", ErrInvalidChunk, c.LastLine, c.FirstLine)
	}

	if len(c.LineTypes) != n {
		return fmt.Errorf("%w: %d line types for %d lines", ErrInvalidChunk, len(c.LineTypes), n)
	}

	if err := validateBounds(c.TextLineBounds, n, len(c.Text)); err != nil {
		return fmt.Errorf("%w: text bounds: %w", ErrInvalidChunk, err)
	}

	if !c.HasShadow() && c.TextNoEscapes != "" {
		return fmt.Errorf("%w: shadow text without shadow bounds", ErrInvalidChunk)
	}

	if c.HasShadow() {
		if err := validateBounds(c.TextNoEscapesLineBounds, n, len(c.TextNoEscapes)); err != nil {
			return fmt.Errorf("%w: shadow bounds: %w", ErrInvalidChunk, err)
		}
	}

	for i, line := range c.LinesWithEscapes {
		if line < 0 || line >= n {
			return fmt.Errorf("%w: escaped line %d out of range", ErrInvalidChunk, line)
		}

		if i > 0 && line <= c.LinesWithEscapes[i-1] {
			return fmt.Errorf("%w: escaped lines not strictly ascending at %d", ErrInvalidChunk, i)
		}
	}

	return nil
}

func validateBounds(bounds []int, lines, textLen int) error {
	if len(bounds) != lines+1 {
		return fmt.Errorf("%d bounds for %d lines", len(bounds), lines)
	}

	if bounds[0] != 0 {
		return fmt.Errorf("first bound is %d", bounds[0])
	}

	if bounds[lines] != textLen {
		return fmt.Errorf("last bound %d does not match text length %d", bounds[lines], textLen)
	}

	for i := 1; i <= lines; i++ {
		if bounds[i] < bounds[i-1] {
			return fmt.Errorf("bounds decrease at line %d", i)
		}
	}

	return nil
}
