package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the viewer chrome
const (
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text
	FgError   = lipgloss.Color("9")       // Red - errors and stderr marks
	FgWarning = lipgloss.Color("11")      // Yellow - header lines
	FgFollow  = lipgloss.Color("10")      // Green - follow indicator
)
