package components

import (
	"strings"

	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key hints on the left and a
// status message on the right.
func RenderStatusBar(width int, hints, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	msgStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface)

	left := " " + hints
	right := ""
	if message != "" {
		right = message + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return style.Render(left) +
		style.Render(strings.Repeat(" ", gap)) +
		msgStyle.Render(right)
}
