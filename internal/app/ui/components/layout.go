package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	infoWidth := ansi.PrintableRuneWidth(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if ansi.PrintableRuneWidth(title) > maxTitleWidth && maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
	}

	separatorWidth := width - ansi.PrintableRuneWidth(title) - infoWidth - HeaderFixedChars
	if separatorWidth < HeaderSeparatorMinWidth {
		separatorWidth = HeaderSeparatorMinWidth
	}

	return RenderLine(3) + " " + HeaderStyle.Render(title) + " " + RenderLine(separatorWidth) + " " + info + " " + RenderLine(3)
}

// RenderFooter renders the status line above the help line
func RenderFooter(width int, left, right, help string) string {
	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		PadBetween(width, left, right),
		HelpStyle.Render(help),
	))
}

// PadRight pads s with spaces to the printable width
func PadRight(s string, width int) string {
	n := ansi.PrintableRuneWidth(s)
	if n >= width {
		return s
	}

	return s + strings.Repeat(" ", width-n)
}

// PadBetween places left and right at the edges of width, keeping at least one space between them
func PadBetween(width int, left, right string) string {
	gap := width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}

// Truncate shortens plain text to maxWidth printable cells, marking the cut with …
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if ansi.PrintableRuneWidth(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if ansi.PrintableRuneWidth(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}
