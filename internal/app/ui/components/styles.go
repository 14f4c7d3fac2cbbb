package components

import "github.com/charmbracelet/lipgloss"

// Common styles of the viewer chrome
var (
	// HeaderStyle for the title line
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// FooterStyle for the status and help lines
	FooterStyle = lipgloss.NewStyle()

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// StatusStyle for the search status
	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// FollowStyle marks follow mode
	FollowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgFollow)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgError)

	// PromptStyle for the search prompt
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// StderrMarkStyle for the gutter of stderr lines
	StderrMarkStyle = lipgloss.NewStyle().
			Foreground(FgError)

	// HeaderMarkStyle for the gutter of header lines
	HeaderMarkStyle = lipgloss.NewStyle().
			Foreground(FgWarning)

	// GutterStyle for line numbers
	GutterStyle = lipgloss.NewStyle().
			Foreground(FgBorder)
)
