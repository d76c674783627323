package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/tui/components"
	"github.com/theirongolddev/payreal/internal/tui/theme"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var lines []string
	for _, row := range cli.BreakdownRows(a.result) {
		if len(row) == 1 {
			lines = append(lines, ruleStyle.Render(strings.Repeat("─", innerW)))
			continue
		}
		label, value := row[0], row[1]
		ls, vs := labelStyle, valueStyle
		if isTotalRow(label) {
			ls, vs = totalStyle, totalStyle
		}
		gap := max(innerW-lipgloss.Width(label)-lipgloss.Width(value), 1)
		lines = append(lines, ls.Render(label)+space.Render(strings.Repeat(" ", gap))+vs.Render(value))
	}

	return components.ContentCard("Monthly Breakdown", strings.Join(lines, "\n"), cw)
}

func isTotalRow(label string) bool {
	switch label {
	case "Net After Statutory", "Total Outgoings", "Real Spendable":
		return true
	}
	return false
}
