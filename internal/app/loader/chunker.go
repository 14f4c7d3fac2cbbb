package loader

import (
	"strings"

	"logweave/internal/chunk"
	"logweave/internal/config"
)

// chunker accumulates complete lines and cuts them into chunks
type chunker struct {
	size    int
	policy  string
	ratio   float64
	logType byte
	next    int
	buf     strings.Builder
	lines   int
}

func newChunker(cfg *config.Config, firstLine int) *chunker {
	return &chunker{
		size:    cfg.Chunks.Lines,
		policy:  cfg.Chunks.Shadow,
		ratio:   cfg.Chunks.ShadowRatio,
		logType: cfg.LogType(),
		next:    firstLine,
	}
}

// add appends one line, which must end in \n, and returns a chunk once the
// configured size is reached
func (c *chunker) add(line string) (chunk.Chunk, bool) {
	c.buf.WriteString(line)
	c.lines++

	if c.lines < c.size {
		return chunk.Chunk{}, false
	}

	return c.cut(), true
}

// flush returns the pending lines as a short chunk, if any
func (c *chunker) flush() (chunk.Chunk, bool) {
	if c.lines == 0 {
		return chunk.Chunk{}, false
	}

	return c.cut(), true
}

func (c *chunker) cut() chunk.Chunk {
	ch := chunk.Parse(c.next, c.buf.String(), c.logType, c.policy == config.ShadowAlways)

	if c.policy == config.ShadowAuto && chunk.EscapedRatio(ch) > c.ratio {
		ch = chunk.EnsureShadow(ch)
	}

	c.next = ch.LastLine
	c.buf.Reset()
	c.lines = 0

	return ch
}
