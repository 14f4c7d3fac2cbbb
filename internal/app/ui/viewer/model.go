package viewer

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/looplab/fsm"

	"logweave/internal/app/render"
	"logweave/internal/app/ui/components"
	"logweave/internal/app/window"
	"logweave/internal/chunk"
	"logweave/internal/config"
	"logweave/internal/config/logger"
	"logweave/internal/search"
)

// Options configures one viewer session
type Options struct {
	Title  string
	Follow bool
	Output io.Writer
}

// cursor points at one search result
type cursor struct {
	chunk int
	index int
}

var noCursor = cursor{chunk: search.NotFound, index: search.NotFound}

// Model is the Bubble Tea model of the log viewer
type Model struct {
	ctx    context.Context
	source <-chan chunk.Chunk
	win    *window.Window
	term   *render.Terminal
	mode   *fsm.FSM
	input  *textinput.Model
	cache  *lineCache

	state struct {
		title           string
		top             int
		follow          bool
		streaming       bool
		caseInsensitive bool
		regex           bool
		matcher         *search.Matcher
		results         []search.ChunkResults
		cursor          cursor
		classes         search.Classes
		err             error
	}

	ui struct {
		width      int
		height     int
		ready      bool
		keys       components.KeyMap
		searchKeys components.SearchKeyMap
		help       help.Model
		viewport   viewport.Model
	}

	log logger.Logger
}

// NewModel creates a viewer over the chunks received from source
func NewModel(ctx context.Context, cfg *config.Config, source <-chan chunk.Chunk, win *window.Window, opts Options, log logger.Logger) Model {
	log = log.WithComponent("VIEWER")

	input := textinput.New()
	input.Prompt = "/"
	input.PromptStyle = components.PromptStyle
	input.Placeholder = "search"

	classes := search.Classes{
		Begin: cfg.Highlight.Begin,
		Match: cfg.Highlight.Match,
		End:   cfg.Highlight.End,
	}

	output := opts.Output
	if output == nil {
		output = io.Discard
	}

	m := Model{
		ctx:    ctx,
		source: source,
		win:    win,
		term: render.NewTerminal(output, render.TerminalOptions{
			LineNumbers: true,
			Highlight:   classes,
		}),
		mode:  newModeFSM(&input, log),
		input: &input,
		cache: &lineCache{},
		log:   log,
	}

	m.state.title = opts.Title
	m.state.follow = opts.Follow
	m.state.streaming = source != nil
	m.state.caseInsensitive = cfg.Search.CaseInsensitive
	m.state.regex = cfg.Search.Regex
	m.state.cursor = noCursor
	m.state.classes = classes

	m.ui.keys = components.DefaultKeyMap()
	m.ui.searchKeys = components.DefaultSearchKeyMap()
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)

	return m
}

// Init starts receiving chunks
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChunkCmd(m.source))
}

// Mode returns the current input mode
func (m Model) Mode() string {
	return m.mode.Current()
}

// Top returns the first visible line
func (m Model) Top() int {
	return m.state.top
}

// TotalLines returns one past the last loaded line
func (m Model) TotalLines() int {
	_, last := m.win.Span()
	return last
}

// bodyHeight is the number of log lines that fit on screen
func (m Model) bodyHeight() int {
	h := m.ui.height - components.HeaderHeight - components.FooterHeight
	if m.ui.help.ShowAll {
		h -= len(m.ui.keys.FullHelp()[0]) - 1
	}

	return max(h, components.MinBodyHeight)
}

// maxTop is the largest top line that still fills the screen
func (m Model) maxTop() int {
	return max(m.TotalLines()-m.bodyHeight(), 0)
}

// scrollTo sets the first visible line, clamped to the loaded range
func (m *Model) scrollTo(top int) {
	m.state.top = min(max(top, 0), m.maxTop())
}

// reveal scrolls the least amount needed to show line, centering it when it was off screen
func (m *Model) reveal(line int) {
	if line >= m.state.top && line < m.state.top+m.bodyHeight() {
		return
	}

	m.scrollTo(line - m.bodyHeight()/2)
}

// refresh renders the visible lines into the viewport
func (m *Model) refresh() {
	if !m.ui.ready {
		return
	}

	height := m.bodyHeight()
	end := min(m.state.top+height, m.TotalLines())

	m.cache.slide(m.state.top, m.state.top+height)

	lines := make([]string, 0, height)
	for i := m.state.top; i < end; i++ {
		text, ok := m.cache.get(i)
		if !ok {
			text, ok = m.renderLine(i)
			if ok {
				m.cache.put(i, text)
			}
		}

		lines = append(lines, text)
	}

	m.ui.viewport.Width = m.ui.width
	m.ui.viewport.Height = height
	m.ui.viewport.SetContent(joinLines(lines))
}

// invalidate drops rendered lines after the content or highlights changed
func (m *Model) invalidate() {
	m.cache.reset()
}
