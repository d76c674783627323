package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and context on the right.
func RenderStatusBar(width int, context string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [e]dit  [←→]tabs  [?]help  [q]uit"
	right := context + " "

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
