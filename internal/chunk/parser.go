package chunk

import (
	"strings"

	"logweave/internal/ansi"
)

// stripLine removes the escape sequences of one line
func stripLine(line string) string {
	return ansi.StripLineEscapeCodes(line)
}

// splitLines splits a blob on \n, dropping the empty line after a final \n
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Parse builds a chunk starting at global line firstLine from a raw blob.
//
// With logType LogTypeStdio the first byte of every line is its stream marker;
// any other log type tags every line as stdout. With eagerShadow the stripped
// mirror is built up front and escapes are not tracked per line; otherwise
// lines containing escape sequences are recorded in LinesWithEscapes.
func Parse(firstLine int, text string, logType byte, eagerShadow bool) Chunk {
	lines := splitLines(text)

	var (
		raw     strings.Builder
		shadow  strings.Builder
		types   = make([]byte, 0, len(lines))
		bounds  = make([]int, 1, len(lines)+1)
		sbounds []int
		escaped []int
	)

	raw.Grow(len(text))

	if eagerShadow {
		sbounds = make([]int, 1, len(lines)+1)
		shadow.Grow(len(text))
	} else {
		escaped = []int{}
	}

	for i, line := range lines {
		lineType := byte(LineTypeStdout)

		if logType == LogTypeStdio && len(line) > 0 {
			lineType = line[0]
			line = line[1:]
		}

		types = append(types, lineType)

		raw.WriteString(line)
		bounds = append(bounds, raw.Len())

		switch {
		case eagerShadow:
			shadow.WriteString(stripLine(line))
			sbounds = append(sbounds, shadow.Len())
		case ansi.LineHasEscapes(line):
			escaped = append(escaped, i)
		}
	}

	return Chunk{
		FirstLine:               firstLine,
		LastLine:                firstLine + len(lines),
		Text:                    raw.String(),
		TextLineBounds:          bounds,
		LineTypes:               string(types),
		LinesWithEscapes:        escaped,
		TextNoEscapes:           shadow.String(),
		TextNoEscapesLineBounds: sbounds,
	}
}

// EnsureShadow returns the chunk with its stripped mirror built. Chunks that
// already carry a shadow are returned unchanged. Escape tracking is dropped,
// since the shadow supersedes it.
func EnsureShadow(c Chunk) Chunk {
	if c.HasShadow() {
		return c
	}

	c.TextNoEscapes, c.TextNoEscapesLineBounds = buildShadow(c)
	c.LinesWithEscapes = nil

	return c
}

// EscapedRatio returns the share of lines known to contain escapes, or 1 when
// escapes are not tracked
func EscapedRatio(c Chunk) float64 {
	n := c.LineCount()
	if n == 0 {
		return 0
	}

	if c.LinesWithEscapes == nil {
		return 1
	}

	return float64(len(c.LinesWithEscapes)) / float64(n)
}

// buildShadow strips the chunk's text line by line. When escapes are tracked,
// only the listed lines need stripping.
func buildShadow(c Chunk) (string, []int) {
	n := c.LineCount()

	var shadow strings.Builder
	shadow.Grow(len(c.Text))

	bounds := make([]int, 1, n+1)

	if c.LinesWithEscapes != nil && len(c.LinesWithEscapes) == 0 {
		shadow.WriteString(c.Text)

		return shadow.String(), append(bounds, c.TextLineBounds[1:]...)
	}

	next := 0

	for i := 0; i < n; i++ {
		line := c.Line(i)

		if c.LinesWithEscapes == nil {
			line = stripLine(line)
		} else if next < len(c.LinesWithEscapes) && c.LinesWithEscapes[next] == i {
			line = stripLine(line)
			next++
		}

		shadow.WriteString(line)
		bounds = append(bounds, shadow.Len())
	}

	return shadow.String(), bounds
}
