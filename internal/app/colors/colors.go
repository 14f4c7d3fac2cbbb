package colors

import (
	"fmt"
)

// ANSI color codes for terminal output
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Reverse = "\033[7m"

	// Text colors
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	White   = "\033[37m"
	Gray    = "\033[90m"
)

// Color functions for semantic styling
func Primary(text string) string {
	return Magenta + text + Reset
}

func Success(text string) string {
	return Green + text + Reset
}

func Warning(text string) string {
	return Yellow + text + Reset
}

func Error(text string) string {
	return Red + text + Reset
}

func Info(text string) string {
	return Blue + text + Reset
}

func Muted(text string) string {
	return Gray + text + Reset
}

func Title(text string) string {
	return Bold + White + text + Reset
}

func Subtitle(text string) string {
	return Bold + text + Reset
}

// Match marks a search hit inside a result line
func Match(text string) string {
	return Bold + Yellow + Reverse + text + Reset
}

// Location formats a "path:line" search location
func Location(path string, line int) string {
	return fmt.Sprintf("%s%s%s", Primary(path), Muted(":"), Success(fmt.Sprintf("%d", line)))
}

// Status symbols
const (
	StatusFound   = "●"
	StatusMissing = "○"
	ProgressArrow = "⎿"
)
