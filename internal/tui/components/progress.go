package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/tui/theme"
)

func clampPct(pct float64) float64 {
	return min(max(pct, 0), 1)
}

// ShareBar renders a labeled bar showing part as a share of whole, e.g. one
// deduction's share of gross monthly income.
func ShareBar(label string, part, whole float64, color lipgloss.Color, labelW, barW int) string {
	t := theme.Active

	pct := 0.0
	if whole > 0 {
		pct = clampPct(part / whole)
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		space +
		bar.ViewAs(pct) +
		space +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}

// GoalBar renders progress toward a savings goal after a number of months.
func GoalBar(saved, goal float64, barW int) string {
	t := theme.Active

	pct := 1.0
	if goal > 0 {
		pct = clampPct(saved / goal)
	}
	color := t.Info
	if pct >= 1 {
		color = t.Good
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	return bar.ViewAs(pct) + space + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
