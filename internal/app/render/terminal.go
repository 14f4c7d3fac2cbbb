package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"logweave/internal/app/errors"
	"logweave/internal/app/window"
	"logweave/internal/overlay"
	"logweave/internal/search"
)

// TerminalOptions configures the terminal renderer
type TerminalOptions struct {
	// Color forces colored output even when the writer is not a terminal
	Color bool
	// LineNumbers prefixes every line with its 1-based number
	LineNumbers bool
	// Highlight names the classes marking search matches
	Highlight search.Classes
}

// Terminal renders class partitions back to terminal styles
type Terminal struct {
	opts     TerminalOptions
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
	gutter   lipgloss.Style
}

// NewTerminal creates a terminal Renderer writing to w
func NewTerminal(w io.Writer, opts TerminalOptions) *Terminal {
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI256)
	}

	return &Terminal{
		opts:     opts,
		renderer: r,
		styles:   make(map[string]lipgloss.Style),
		gutter:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render writes every line followed by a newline
func (t *Terminal) Render(w io.Writer, lines []window.Line) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, t.Line(l)+"\n"); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrFailedToRender, err)
		}
	}

	return nil
}

// Line returns one line styled for the terminal, without newline
func (t *Terminal) Line(l window.Line) string {
	var b strings.Builder

	if t.opts.LineNumbers {
		b.WriteString(t.gutter.Render(fmt.Sprintf("%6d ", l.Index+1)))
	}

	if len(l.Classes) == 0 {
		b.WriteString(l.Text)
		return b.String()
	}

	for i, part := range overlay.Text(l.Text, l.Classes) {
		classes := l.Classes[i].Classes
		if part == "" || classes == "" {
			b.WriteString(part)
			continue
		}

		b.WriteString(t.style(classes).Render(part))
	}

	return b.String()
}

// style returns the cached style for a class list
func (t *Terminal) style(classes string) lipgloss.Style {
	if s, ok := t.styles[classes]; ok {
		return s
	}

	s := t.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	for _, class := range strings.Fields(classes) {
		s = t.apply(s, class)
	}

	t.styles[classes] = s

	return s
}

// apply adds the effect of one class to s
func (t *Terminal) apply(s lipgloss.Style, class string) lipgloss.Style {
	if class == t.opts.Highlight.Match {
		return s.Reverse(true)
	}

	if rest, ok := strings.CutPrefix(class, "ansifg-"); ok {
		return s.Foreground(lipgloss.Color(rest))
	}

	if rest, ok := strings.CutPrefix(class, "ansibg-"); ok {
		return s.Background(lipgloss.Color(rest))
	}

	code, err := strconv.Atoi(strings.TrimPrefix(class, "ansi"))
	if err != nil || !strings.HasPrefix(class, "ansi") {
		return s
	}

	switch {
	case code == 1:
		return s.Bold(true)
	case code == 2:
		return s.Faint(true)
	case code == 3:
		return s.Italic(true)
	case code == 4:
		return s.Underline(true)
	case code == 5 || code == 6:
		return s.Blink(true)
	case code == 7:
		return s.Reverse(true)
	case code == 9:
		return s.Strikethrough(true)
	case code >= 30 && code <= 37:
		return s.Foreground(paletteIndex(code - 30))
	case code >= 90 && code <= 97:
		return s.Foreground(paletteIndex(code - 90 + 8))
	case code >= 40 && code <= 47:
		return s.Background(paletteIndex(code - 40))
	case code >= 100 && code <= 107:
		return s.Background(paletteIndex(code - 100 + 8))
	}

	return s
}

func paletteIndex(n int) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(n))
}
