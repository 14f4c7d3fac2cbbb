package viewer

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"logweave/internal/app/ui/components"
	"logweave/internal/chunk"
	"logweave/internal/search"
)

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Loading…"
	}

	header := components.RenderHeader(m.ui.width, m.state.title, m.renderPosition())

	var help string
	if m.mode.Is(Searching) {
		help = m.ui.help.View(m.ui.searchKeys)
	} else {
		help = m.ui.help.View(m.ui.keys)
	}

	footer := components.RenderFooter(m.ui.width, m.renderStatus(), m.renderIndicators(), help)

	return joinLines([]string{header, m.ui.viewport.View(), footer})
}

// renderLine renders one log line with its gutter, cut to the screen width
func (m Model) renderLine(line int) (string, bool) {
	l, ok := m.win.HighlightedLine(line, m.state.results, m.state.classes)
	if !ok {
		return "", false
	}

	mark := " "

	switch l.Type {
	case chunk.LineTypeStderr:
		mark = components.StderrMarkStyle.Render("▌")
	case chunk.LineTypeHeader:
		mark = components.HeaderMarkStyle.Render("▌")
	}

	return xansi.Truncate(mark+m.term.Line(l), m.ui.width, ""), true
}

// renderPosition renders the visible line range
func (m Model) renderPosition() string {
	total := m.TotalLines()
	if total == 0 {
		return "empty"
	}

	last := min(m.state.top+m.bodyHeight(), total)

	return fmt.Sprintf("%d-%d/%d", m.state.top+1, last, total)
}

// renderStatus renders the search input or the search status
func (m Model) renderStatus() string {
	if m.mode.Is(Searching) {
		return m.input.View()
	}

	if m.state.err != nil {
		return components.ErrorStyle.Render(m.state.err.Error())
	}

	if m.state.matcher == nil {
		return ""
	}

	total := search.Total(m.state.results)
	if total == 0 {
		return components.StatusStyle.Render(fmt.Sprintf("%q: no matches", m.state.matcher.Query()))
	}

	ordinal := search.Ordinal(m.state.results, m.state.cursor.chunk, m.state.cursor.index)

	return components.StatusStyle.Render(fmt.Sprintf("%q: match %d/%d", m.state.matcher.Query(), ordinal, total))
}

// renderIndicators renders search flags and the follow marker
func (m Model) renderIndicators() string {
	var flags []string

	if m.state.caseInsensitive {
		flags = append(flags, "icase")
	}

	if m.state.regex {
		flags = append(flags, "regex")
	}

	if m.state.follow {
		flags = append(flags, components.FollowStyle.Render("FOLLOW"))
	}

	return strings.Join(flags, " ")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
