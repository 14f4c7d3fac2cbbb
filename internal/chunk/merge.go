package chunk

import "fmt"

// Merge joins two contiguous chunks into a new one; a must end where b starts.
//
// When both chunks track escaped lines the lists are concatenated. When either
// carries a shadow, the result carries a shadow for all of its lines and stops
// tracking escapes, so the merged representation does not depend on which
// side had the shadow.
func Merge(a, b Chunk) (Chunk, error) {
	if a.LastLine != b.FirstLine {
		return Chunk{}, fmt.Errorf("%w: [%d, %d) followed by [%d, %d)",
			ErrChunksNotContiguous, a.FirstLine, a.LastLine, b.FirstLine, b.LastLine)
	}

	merged := Chunk{
		FirstLine:      a.FirstLine,
		LastLine:       b.LastLine,
		Text:           a.Text + b.Text,
		TextLineBounds: concatBounds(a.TextLineBounds, b.TextLineBounds, len(a.Text)),
		LineTypes:      a.LineTypes + b.LineTypes,
	}

	if !a.HasShadow() && !b.HasShadow() {
		if a.LinesWithEscapes != nil && b.LinesWithEscapes != nil {
			merged.LinesWithEscapes = concatEscaped(a.LinesWithEscapes, b.LinesWithEscapes, a.LineCount())
		}

		return merged, nil
	}

	aShadow, aBounds := shadowOf(a)
	bShadow, bBounds := shadowOf(b)

	merged.TextNoEscapes = aShadow + bShadow
	merged.TextNoEscapesLineBounds = concatBounds(aBounds, bBounds, len(aShadow))

	return merged, nil
}

// MergeAll folds a run of contiguous chunks into one. An empty run yields an
// empty chunk.
func MergeAll(chunks []Chunk) (Chunk, error) {
	if len(chunks) == 0 {
		return Parse(0, "", LogTypeText, false), nil
	}

	merged := chunks[0]

	for _, c := range chunks[1:] {
		var err error

		merged, err = Merge(merged, c)
		if err != nil {
			return Chunk{}, err
		}
	}

	return merged, nil
}

// shadowOf returns the chunk's shadow, deriving it when missing
func shadowOf(c Chunk) (string, []int) {
	if c.HasShadow() {
		return c.TextNoEscapes, c.TextNoEscapesLineBounds
	}

	return buildShadow(c)
}

// concatBounds appends b's bounds shifted by offset to a's, dropping b's leading 0
func concatBounds(a, b []int, offset int) []int {
	out := make([]int, 0, len(a)+len(b)-1)
	out = append(out, a...)

	for _, bound := range b[1:] {
		out = append(out, bound+offset)
	}

	return out
}

// concatEscaped appends b's line indices shifted by offset to a's
func concatEscaped(a, b []int, offset int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)

	for _, line := range b {
		out = append(out, line+offset)
	}

	return out
}
