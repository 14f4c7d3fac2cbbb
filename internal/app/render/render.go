package render

import (
	"fmt"
	"io"

	"logweave/internal/app/errors"
	"logweave/internal/app/window"
	"logweave/internal/chunk"
)

// Output formats
const (
	FormatHTML     = "html"
	FormatTerminal = "ansi"
	FormatText     = "text"
)

// Renderer writes visible log lines with their class partitions
type Renderer interface {
	Render(w io.Writer, lines []window.Line) error
}

// ValidateFormat checks that format names a known renderer
func ValidateFormat(format string) error {
	switch format {
	case FormatHTML, FormatTerminal, FormatText:
		return nil
	default:
		return fmt.Errorf("%w: '%s' (must be '%s', '%s' or '%s')",
			errors.ErrUnknownFormat, format, FormatHTML, FormatTerminal, FormatText)
	}
}

// lineTypeClass names the CSS class of a line's stream
func lineTypeClass(t byte) string {
	switch t {
	case chunk.LineTypeStderr:
		return "stderr"
	case chunk.LineTypeHeader:
		return "header"
	default:
		return "stdout"
	}
}

// textRenderer writes visible text only
type textRenderer struct{}

// NewText creates a Renderer that drops all styling
func NewText() Renderer {
	return textRenderer{}
}

func (textRenderer) Render(w io.Writer, lines []window.Line) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l.Text+"\n"); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrFailedToRender, err)
		}
	}

	return nil
}
