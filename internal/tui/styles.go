package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Symbols for visual feedback.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "!"
	SymbolBullet  = "•"
)

// Success renders a check-marked line.
func Success(msg string) string {
	return SuccessStyle.Render(SymbolCheck + " " + msg)
}

// Failure renders a cross-marked line.
func Failure(msg string) string {
	return ErrorStyle.Render(SymbolCross + " " + msg)
}

// Warning renders a warning line.
func Warning(msg string) string {
	return WarningStyle.Render(SymbolWarning + " " + msg)
}

// Bullet renders an indented list item.
func Bullet(msg string) string {
	return "  " + LabelStyle.Render(SymbolBullet) + " " + msg
}
