package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/calev/grind/tracker"
)

var (
	easyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	hardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	barLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	barMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	barHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// DifficultyBadge renders a difficulty label, colored when ANSI output is
// enabled: green for easy, yellow for medium, red for hard.
func DifficultyBadge(difficulty tracker.Difficulty) string {
	label := string(difficulty)
	if !ANSIEnabled() {
		return label
	}
	switch difficulty {
	case tracker.DifficultyEasy:
		return easyStyle.Render(label)
	case tracker.DifficultyMedium:
		return mediumStyle.Render(label)
	case tracker.DifficultyHard:
		return hardStyle.Render(label)
	default:
		return label
	}
}

// ProgressBar renders a fixed-width bar for a whole-number percentage.
// Color tracks completion: under 30 red, under 70 yellow, otherwise green.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if !ANSIEnabled() {
		return bar
	}

	switch {
	case percent < 30:
		return barLowStyle.Render(bar)
	case percent < 70:
		return barMidStyle.Render(bar)
	default:
		return barHighStyle.Render(bar)
	}
}

// Muted renders dimmed secondary text when ANSI output is enabled.
func Muted(value string) string {
	if !ANSIEnabled() {
		return value
	}
	return mutedStyle.Render(value)
}

// ANSIEnabled reports whether styled output should be emitted.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
