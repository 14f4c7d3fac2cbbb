package viewer

import "logweave/internal/position"

// cachedLine is one rendered line; the zero value marks an empty slot
type cachedLine struct {
	text string
	ok   bool
}

// lineCache keeps the rendered lines of the visible range. Sliding keeps
// the lines that stay visible.
type lineCache struct {
	start int
	lines []cachedLine
}

// slide moves the cache to cover [start, end)
func (c *lineCache) slide(start, end int) {
	c.lines = position.Reposition(c.lines, c.start, start, end, cachedLine{})
	c.start = start
}

func (c *lineCache) get(line int) (string, bool) {
	i := line - c.start
	if i < 0 || i >= len(c.lines) {
		return "", false
	}

	return c.lines[i].text, c.lines[i].ok
}

func (c *lineCache) put(line int, text string) {
	i := line - c.start
	if i < 0 || i >= len(c.lines) {
		return
	}

	c.lines[i] = cachedLine{text: text, ok: true}
}

// reset drops every rendered line
func (c *lineCache) reset() {
	c.lines = make([]cachedLine, len(c.lines))
}
