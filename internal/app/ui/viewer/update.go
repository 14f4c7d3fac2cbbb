package viewer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"logweave/internal/chunk"
	"logweave/internal/search"
)

// chunkMsg carries one chunk received from the source
type chunkMsg chunk.Chunk

// sourceClosedMsg signals the source has no more chunks
type sourceClosedMsg struct{}

// waitForChunkCmd waits for the next chunk of source
func waitForChunkCmd(source <-chan chunk.Chunk) tea.Cmd {
	if source == nil {
		return nil
	}

	return func() tea.Msg {
		c, ok := <-source
		if !ok {
			return sourceClosedMsg{}
		}

		return chunkMsg(c)
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.ui.ready = true

		m.invalidate()
		m.scrollTo(m.state.top)

	case chunkMsg:
		m.handleChunk(chunk.Chunk(msg))
		cmd = waitForChunkCmd(m.source)

	case sourceClosedMsg:
		m.log.Debug().Msg("Source closed")
		m.state.streaming = false
		m.state.follow = false

	case tea.KeyMsg:
		if m.mode.Is(Searching) {
			return m.handleSearchKey(msg)
		}

		return m.handleKey(msg)

	default:
		if m.mode.Is(Searching) {
			*m.input, cmd = m.input.Update(msg)
		}
	}

	m.refresh()

	return m, cmd
}

// handleChunk adds a chunk to the window and refreshes search results
func (m *Model) handleChunk(c chunk.Chunk) {
	if err := m.win.Add(c); err != nil {
		m.log.Warn().Err(err).Msg("Dropped chunk")
		m.state.err = err

		return
	}

	if m.state.matcher != nil {
		m.research()
	}

	m.invalidate()

	if m.state.follow {
		m.scrollTo(m.maxTop())
	}
}

// research reruns the active search and keeps the cursor on the same match
func (m *Model) research() {
	current, hasCurrent := search.Resolve(m.state.results, m.state.cursor.chunk, m.state.cursor.index)

	m.state.results = m.win.Search(m.state.matcher)

	if !hasCurrent {
		m.state.cursor = noCursor
		return
	}

	c, i := search.FindFirstSearchResultFrom(m.state.results, current.LineIndex)
	if c != search.NotFound {
		results := m.state.results[c].Results

		for j := i; j < len(results) && results[j].LineIndex == current.LineIndex; j++ {
			if results[j].LineStart >= current.LineStart {
				i = j
				break
			}
		}
	}

	m.state.cursor = cursor{chunk: c, index: i}
}

// handleKey processes keyboard input while browsing
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.state.follow = false
		m.scrollTo(m.state.top - 1)

	case key.Matches(msg, keys.Down):
		m.scrollTo(m.state.top + 1)

	case key.Matches(msg, keys.PageUp):
		m.state.follow = false
		m.scrollTo(m.state.top - m.bodyHeight())

	case key.Matches(msg, keys.PageDown):
		m.scrollTo(m.state.top + m.bodyHeight())

	case key.Matches(msg, keys.Top):
		m.state.follow = false
		m.scrollTo(0)

	case key.Matches(msg, keys.Bottom):
		m.scrollTo(m.maxTop())

	case key.Matches(msg, keys.Follow):
		if m.state.streaming {
			m.state.follow = !m.state.follow
			if m.state.follow {
				m.scrollTo(m.maxTop())
			}
		}

	case key.Matches(msg, keys.Search):
		if err := m.mode.Event(m.ctx, OpenSearch); err != nil {
			m.log.Warn().Err(err).Msg("Failed to open search")
		}

	case key.Matches(msg, keys.Next):
		m.step(search.FindNextSearchResult)

	case key.Matches(msg, keys.Prev):
		m.step(search.FindPrevSearchResult)

	case key.Matches(msg, keys.Clear):
		m.clearSearch()

	case key.Matches(msg, keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll
		m.invalidate()
		m.scrollTo(m.state.top)
	}

	m.refresh()

	return m, nil
}

// handleSearchKey processes keyboard input while a query is typed
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.searchKeys

	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.ui.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, keys.Submit):
		query := m.input.Value()

		if err := m.mode.Event(m.ctx, Submit); err != nil {
			m.log.Warn().Err(err).Msg("Failed to submit search")
		}

		m.runSearch(query)

	case key.Matches(msg, keys.Cancel):
		if err := m.mode.Event(m.ctx, Cancel); err != nil {
			m.log.Warn().Err(err).Msg("Failed to cancel search")
		}

	case key.Matches(msg, keys.ToggleCase):
		m.state.caseInsensitive = !m.state.caseInsensitive

	case key.Matches(msg, keys.ToggleRe):
		m.state.regex = !m.state.regex

	default:
		*m.input, cmd = m.input.Update(msg)
	}

	m.refresh()

	return m, cmd
}

// runSearch compiles query and jumps to the first match at or below the top line
func (m *Model) runSearch(query string) {
	if query == "" {
		m.clearSearch()
		return
	}

	matcher, err := search.NewMatcher(query, search.ModeFor(m.state.caseInsensitive, m.state.regex))
	if err != nil {
		m.state.err = err
		return
	}

	m.state.err = nil
	m.state.matcher = matcher
	m.state.results = m.win.Search(matcher)

	c, i := search.FindFirstSearchResultFrom(m.state.results, m.state.top)
	m.state.cursor = cursor{chunk: c, index: i}

	m.log.Debug().Msgf("Search %q (%s): %d matches", query, matcher.Mode(), search.Total(m.state.results))

	m.invalidate()
	m.revealCursor()
}

// step moves the cursor with a navigation function
func (m *Model) step(move func([]search.ChunkResults, int, int) (int, int)) {
	if m.state.matcher == nil {
		return
	}

	if m.state.cursor == noCursor {
		c, i := search.FindFirstSearchResultFrom(m.state.results, m.state.top)
		m.state.cursor = cursor{chunk: c, index: i}
	} else {
		c, i := move(m.state.results, m.state.cursor.chunk, m.state.cursor.index)
		m.state.cursor = cursor{chunk: c, index: i}
	}

	m.state.follow = false
	m.revealCursor()
}

func (m *Model) revealCursor() {
	if r, ok := search.Resolve(m.state.results, m.state.cursor.chunk, m.state.cursor.index); ok {
		m.reveal(r.LineIndex)
	}
}

// clearSearch removes the active query and its highlights
func (m *Model) clearSearch() {
	m.state.matcher = nil
	m.state.results = nil
	m.state.cursor = noCursor
	m.state.err = nil

	m.invalidate()
}
