package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/tui/theme"
)

// Tab represents a single tab in the tab bar. Key is the shortcut and is
// always the first letter of Name.
type Tab struct {
	Name string
	Key  string
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: "o"},
	{Name: "Breakdown", Key: "b"},
	{Name: "Tax", Key: "t"},
	{Name: "Goal", Key: "g"},
}

// TabVisualWidth returns the rendered width of a tab: its name plus one
// column of padding on each side. Active and inactive tabs are the same
// width so hit-testing does not depend on the selection.
func TabVisualWidth(tab Tab, _ bool) int {
	return lipgloss.Width(tab.Name) + 2
}

// RenderTabBar renders the tab row padded to width. Tabs are separated by a
// single column.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true).
		Underline(true)
	pad := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
			continue
		}
		rest := strings.TrimPrefix(tab.Name, strings.ToUpper(tab.Key))
		parts[i] = pad + keyStyle.Render(strings.ToUpper(tab.Key)) + inactiveStyle.Render(rest) + pad
	}

	row := strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a shortcut key, or -1.
func TabIdxByKey(key string) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
