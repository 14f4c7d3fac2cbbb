package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	usage string
	desc  string
}

var usageEntries = []helpEntry{
	{"logweave render [file]", "Render a log, '-' or no file reads stdin"},
	{"logweave search <query> [patterns...]", "Search logs matching glob patterns"},
	{"logweave view [file] --follow", "Browse, search and follow a log"},
	{"logweave css [selector]", "Print the stylesheet for HTML output"},
	{"logweave init", "Generate a config template"},
	{"logweave version", "Show version"},
}

var exampleEntries = []helpEntry{
	{"logweave render build.log -f html --standalone", "Write a self-contained HTML page"},
	{"make 2>&1 | logweave render -n", "Render piped output with line numbers"},
	{"logweave search -i timeout 'logs/**/*.log'", "Find matches across many logs"},
	{"logweave search -o -e 'id=[0-9]+' app.log", "Print only the matched request ids"},
	{"logweave view app.log -F", "Follow a growing log"},
}

// renderHelp renders the help page
func renderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderEntries(usageEntries, commandName),
		sectionHeader.Render("Examples:"),
		renderEntries(exampleEntries, exampleCode),
		RenderHint(),
	) + "\n"
}

func renderEntries(entries []helpEntry, style lipgloss.Style) string {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.usage))
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		pad := fmt.Sprintf("%*s", width-len(e.usage)+4, "")
		lines = append(lines, bodyMedium.Render("  "+style.Render(e.usage)+pad+e.desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
