package search

import (
	"logweave/internal/ansi"
	"logweave/internal/chunk"
	"logweave/internal/position"
)

// cursorLookahead is how many line boundaries the cursor steps over before
// falling back to binary search
const cursorLookahead = 4

// Result is one match; LineStart and LineEnd are offsets into the visible
// (escape-stripped) text of global line LineIndex
type Result struct {
	LineIndex int
	LineStart int
	LineEnd   int
}

// ChunkResults holds one chunk's matches in ascending (line, offset) order and
// the index of the first match of every line that has one
type ChunkResults struct {
	Results     []Result
	FirstByLine map[int]int
}

// NewChunkResults indexes results sorted by line
func NewChunkResults(results []Result) ChunkResults {
	return ChunkResults{
		Results:     results,
		FirstByLine: ResultsToLineIndexMap(results),
	}
}

// HasLine reports whether the line has at least one match
func (r ChunkResults) HasLine(lineIndex int) bool {
	_, ok := r.FirstByLine[lineIndex]
	return ok
}

// ResultsToLineIndexMap maps each line index to the index of its first result.
// results must be sorted by LineIndex.
func ResultsToLineIndexMap(results []Result) map[int]int {
	m := make(map[int]int)

	for i, r := range results {
		if _, ok := m[r.LineIndex]; !ok {
			m[r.LineIndex] = i
		}
	}

	return m
}

// FindInChunks searches every chunk, keeping one result set per chunk
func FindInChunks(chunks []chunk.Chunk, m *Matcher) []ChunkResults {
	out := make([]ChunkResults, len(chunks))

	for i, c := range chunks {
		out[i] = NewChunkResults(FindInChunk(c, m))
	}

	return out
}

// FindInChunk returns every match in the chunk, ordered by line then offset.
//
// Only Plain matchers use the direct and hybrid scans: chunks with a shadow or
// without escaped lines are searched in one pass over their visible text,
// otherwise the raw text is searched and matches on escaped lines are replaced
// by a search of that line's stripped text. Every other mode, CaseInsensitive
// included, runs line by line over the visible text so that anchors and word
// boundaries see real line edges.
func FindInChunk(c chunk.Chunk, m *Matcher) []Result {
	switch {
	case c.LineCount() == 0:
		return []Result{}
	case m.re != nil:
		return findPerLine(c, m)
	case c.HasShadow():
		return findDirect(c.FirstLine, c.TextNoEscapes, c.TextNoEscapesLineBounds, m)
	case c.LinesWithEscapes == nil:
		shadowed := chunk.EnsureShadow(c)
		return findDirect(c.FirstLine, shadowed.TextNoEscapes, shadowed.TextNoEscapesLineBounds, m)
	case len(c.LinesWithEscapes) == 0:
		return findDirect(c.FirstLine, c.Text, c.TextLineBounds, m)
	default:
		return findHybrid(c, m)
	}
}

// lineCursor maps ascending text offsets to line numbers
type lineCursor struct {
	bounds []int
	line   int
}

// locate returns the line containing pos; pos must not decrease between calls
func (lc *lineCursor) locate(pos int) int {
	for step := 0; step < cursorLookahead; step++ {
		if pos < lc.bounds[lc.line+1] {
			return lc.line
		}

		lc.line++
	}

	lc.line = position.LessEqualRange(lc.bounds, pos, position.Compare[int], lc.line, len(lc.bounds)-2)

	return lc.line
}

// findDirect searches text whose lines contain no escapes
func findDirect(firstLine int, text string, bounds []int, m *Matcher) []Result {
	results := []Result{}
	scan := m.scanner(text)
	cursor := lineCursor{bounds: bounds}

	for from := 0; from < len(text); {
		pos, length, ok := scan(from)
		if !ok {
			break
		}

		line := cursor.locate(pos)

		if pos+length > bounds[line+1] {
			from = pos + 1
			continue
		}

		results = append(results, Result{
			LineIndex: firstLine + line,
			LineStart: pos - bounds[line],
			LineEnd:   pos - bounds[line] + length,
		})
		from = pos + length
	}

	return results
}

// findHybrid searches the raw text and re-searches escaped lines on their own,
// flushing each escaped line's results once the scan reaches it
func findHybrid(c chunk.Chunk, m *Matcher) []Result {
	results := []Result{}
	escaped := c.LinesWithEscapes
	bounds := c.TextLineBounds
	scan := m.scanner(c.Text)
	cursor := lineCursor{bounds: bounds}
	next := 0

	for from := 0; from < len(c.Text); {
		pos, length, ok := scan(from)
		if !ok {
			break
		}

		line := cursor.locate(pos)

		for next < len(escaped) && escaped[next] <= line {
			results = append(results, findInLine(c, escaped[next], m)...)
			next++
		}

		if next > 0 && escaped[next-1] == line {
			from = bounds[line+1]
			continue
		}

		if pos+length > bounds[line+1] {
			from = pos + 1
			continue
		}

		results = append(results, Result{
			LineIndex: c.FirstLine + line,
			LineStart: pos - bounds[line],
			LineEnd:   pos - bounds[line] + length,
		})
		from = pos + length
	}

	for ; next < len(escaped); next++ {
		results = append(results, findInLine(c, escaped[next], m)...)
	}

	return results
}

// findInLine searches the stripped text of one chunk-relative line
func findInLine(c chunk.Chunk, line int, m *Matcher) []Result {
	var results []Result

	visible := ansi.StripLineEscapeCodes(c.Line(line))

	m.each(visible, func(pos, length int) {
		results = append(results, Result{
			LineIndex: c.FirstLine + line,
			LineStart: pos,
			LineEnd:   pos + length,
		})
	})

	return results
}

// findPerLine searches each line's visible text separately
func findPerLine(c chunk.Chunk, m *Matcher) []Result {
	results := []Result{}
	escaped := c.LinesWithEscapes
	next := 0

	for i := 0; i < c.LineCount(); i++ {
		var visible string

		switch {
		case c.HasShadow():
			visible = c.VisibleLine(i)
		case escaped == nil:
			visible = ansi.StripLineEscapeCodes(c.Line(i))
		case next < len(escaped) && escaped[next] == i:
			visible = ansi.StripLineEscapeCodes(c.Line(i))
			next++
		default:
			visible = c.Line(i)
		}

		line := c.FirstLine + i

		m.each(visible, func(pos, length int) {
			results = append(results, Result{LineIndex: line, LineStart: pos, LineEnd: pos + length})
		})
	}

	return results
}
