package overlay

import (
	"errors"
	"fmt"
	"strings"

	"logweave/internal/position"
)

// ErrInvalidRange is raised when an overlay does not fit inside its line
var ErrInvalidRange = errors.New("invalid overlay range")

// Range is one classed span of a line's visible text.
// A line's ranges partition [0, lineLength) in order, without gaps or overlap.
type Range struct {
	FirstPos int
	LastPos  int
	Classes  string
}

// Len returns the number of bytes covered by the range
func (r Range) Len() int {
	return r.LastPos - r.FirstPos
}

// Check validates that [firstPos, lastPos) fits inside a line of lineLength bytes
func Check(lineLength, firstPos, lastPos int) error {
	if firstPos < 0 || firstPos > lastPos || lastPos > lineLength {
		return fmt.Errorf("%w: [%d, %d) in line of length %d", ErrInvalidRange, firstPos, lastPos, lineLength)
	}

	return nil
}

// JoinClasses joins class names with a single space, skipping empty names
func JoinClasses(classes ...string) string {
	var b strings.Builder

	for _, c := range classes {
		if c == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(c)
	}

	return b.String()
}

// AddOverlay returns a new partition of the line where overlayClass is added to
// every byte of [firstPos, lastPos). A nil existing partition stands for the whole
// line without classes. The input slice is never modified.
//
// An invalid range is a caller bug and panics with an error wrapping ErrInvalidRange.
func AddOverlay(lineLength int, existing []Range, firstPos, lastPos int, overlayClass string) []Range {
	if err := Check(lineLength, firstPos, lastPos); err != nil {
		panic(err)
	}

	if lineLength == 0 {
		return []Range{}
	}

	if len(existing) == 0 {
		existing = []Range{{FirstPos: 0, LastPos: lineLength}}
	}

	if firstPos == lastPos {
		return append([]Range(nil), existing...)
	}

	byLastPos := func(r Range, pos int) int { return r.LastPos - pos }

	startIdx := position.GreaterFunc(existing, firstPos, byLastPos)
	endIdx := position.GreaterEqualFunc(existing, lastPos, byLastPos)

	if startIdx >= len(existing) || endIdx >= len(existing) {
		panic(fmt.Errorf("%w: partition ends at %d, line length is %d", ErrInvalidRange, existing[len(existing)-1].LastPos, lineLength))
	}

	result := make([]Range, 0, len(existing)+2)
	result = append(result, existing[:startIdx]...)

	if startIdx == endIdx {
		r := existing[startIdx]

		if firstPos > r.FirstPos {
			result = append(result, Range{FirstPos: r.FirstPos, LastPos: firstPos, Classes: r.Classes})
		}

		result = append(result, Range{FirstPos: firstPos, LastPos: lastPos, Classes: JoinClasses(r.Classes, overlayClass)})

		if lastPos < r.LastPos {
			result = append(result, Range{FirstPos: lastPos, LastPos: r.LastPos, Classes: r.Classes})
		}

		return append(result, existing[endIdx+1:]...)
	}

	first := existing[startIdx]
	if firstPos > first.FirstPos {
		result = append(result, Range{FirstPos: first.FirstPos, LastPos: firstPos, Classes: first.Classes})
	}

	result = append(result, Range{FirstPos: firstPos, LastPos: first.LastPos, Classes: JoinClasses(first.Classes, overlayClass)})

	for _, r := range existing[startIdx+1 : endIdx] {
		result = append(result, Range{FirstPos: r.FirstPos, LastPos: r.LastPos, Classes: JoinClasses(r.Classes, overlayClass)})
	}

	last := existing[endIdx]
	result = append(result, Range{FirstPos: last.FirstPos, LastPos: lastPos, Classes: JoinClasses(last.Classes, overlayClass)})

	if lastPos < last.LastPos {
		result = append(result, Range{FirstPos: lastPos, LastPos: last.LastPos, Classes: last.Classes})
	}

	return append(result, existing[endIdx+1:]...)
}

// Text returns the slices of text named by each range, in order
func Text(text string, ranges []Range) []string {
	if ranges == nil {
		return []string{text}
	}

	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, text[r.FirstPos:r.LastPos])
	}

	return parts
}
