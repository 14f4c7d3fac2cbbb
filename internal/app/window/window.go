package window

import (
	"fmt"

	"logweave/internal/ansi"
	"logweave/internal/app/errors"
	"logweave/internal/chunk"
	"logweave/internal/config"
	"logweave/internal/config/logger"
	"logweave/internal/overlay"
	"logweave/internal/position"
	"logweave/internal/search"
)

// Line is one visible log line with its class partition
type Line struct {
	Index   int
	Type    byte
	Text    string
	Classes []overlay.Range
}

// Window holds the loaded chunks of one log ordered by line. Contiguous
// neighbours are merged while the result stays within the merge limit.
type Window struct {
	chunks     []chunk.Chunk
	mergeLines int
	log        logger.Logger
}

// NewWindow creates an empty Window
func NewWindow(cfg *config.Config, log logger.Logger) *Window {
	return &Window{
		mergeLines: cfg.Window.MergeLines,
		log:        log.WithComponent("WINDOW"),
	}
}

// Add inserts a chunk. Chunks must not overlap lines already loaded; gaps
// are allowed. Empty chunks are ignored.
func (w *Window) Add(c chunk.Chunk) error {
	if c.LineCount() == 0 {
		return nil
	}

	i := position.GreaterFunc(w.chunks, c.FirstLine, compareFirstLine)

	if i > 0 && w.chunks[i-1].LastLine > c.FirstLine {
		return w.overlap(c, w.chunks[i-1])
	}

	if i < len(w.chunks) && w.chunks[i].FirstLine < c.LastLine {
		return w.overlap(c, w.chunks[i])
	}

	w.chunks = append(w.chunks, chunk.Chunk{})
	copy(w.chunks[i+1:], w.chunks[i:])
	w.chunks[i] = c

	if i+1 < len(w.chunks) {
		w.mergeAt(i)
	}

	if i > 0 {
		w.mergeAt(i - 1)
	}

	return nil
}

func (w *Window) overlap(c, loaded chunk.Chunk) error {
	return fmt.Errorf("%w: [%d, %d) against [%d, %d)",
		errors.ErrOverlappingChunk, c.FirstLine, c.LastLine, loaded.FirstLine, loaded.LastLine)
}

// mergeAt merges chunk i with chunk i+1 when they are contiguous and small enough
func (w *Window) mergeAt(i int) {
	a, b := w.chunks[i], w.chunks[i+1]
	if a.LastLine != b.FirstLine || a.LineCount()+b.LineCount() > w.mergeLines {
		return
	}

	merged, err := chunk.Merge(a, b)
	if err != nil {
		w.log.Warn().Err(err).Msg("Failed to merge chunks")
		return
	}

	w.chunks[i] = merged
	w.chunks = append(w.chunks[:i+1], w.chunks[i+2:]...)

	w.log.Debug().Msgf("Merged chunks into [%d, %d)", merged.FirstLine, merged.LastLine)
}

// Chunks returns the loaded chunks in line order
func (w *Window) Chunks() []chunk.Chunk {
	return w.chunks
}

// Len returns the number of loaded chunks
func (w *Window) Len() int {
	return len(w.chunks)
}

// Span returns the first loaded line and one past the last
func (w *Window) Span() (int, int) {
	if len(w.chunks) == 0 {
		return 0, 0
	}

	return w.chunks[0].FirstLine, w.chunks[len(w.chunks)-1].LastLine
}

// Locate returns the index of the chunk holding line
func (w *Window) Locate(line int) (int, bool) {
	i := position.LessEqualFunc(w.chunks, line, compareFirstLine)
	if i < 0 || !w.chunks[i].Contains(line) {
		return -1, false
	}

	return i, true
}

// Line returns the visible text and style classes of a global line
func (w *Window) Line(line int) (Line, bool) {
	i, ok := w.Locate(line)
	if !ok {
		return Line{}, false
	}

	return w.line(i, line), true
}

// HighlightedLine returns Line with the matches of results layered on top.
// results must come from Search on the current chunks.
func (w *Window) HighlightedLine(line int, results []search.ChunkResults, classes search.Classes) (Line, bool) {
	i, ok := w.Locate(line)
	if !ok {
		return Line{}, false
	}

	l := w.line(i, line)

	if i < len(results) {
		l.Classes = search.OverlaySearchResultsOnLine(results[i], line, len(l.Text), l.Classes, classes)
	}

	return l, true
}

func (w *Window) line(i, line int) Line {
	c := w.chunks[i]
	local := line - c.FirstLine

	text, classes := ansi.ParseEscapeCodesToClasses(c.Line(local))

	return Line{
		Index:   line,
		Type:    c.LineType(local),
		Text:    text,
		Classes: classes,
	}
}

// Search finds m in every loaded chunk; the result is indexed like Chunks
func (w *Window) Search(m *search.Matcher) []search.ChunkResults {
	return search.FindInChunks(w.chunks, m)
}

// Reset drops all loaded chunks
func (w *Window) Reset() {
	w.chunks = nil
}

func compareFirstLine(c chunk.Chunk, line int) int {
	return c.FirstLine - line
}
