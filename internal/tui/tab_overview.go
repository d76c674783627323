package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/tui/components"
	"github.com/theirongolddev/payreal/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.result

	metrics := []components.Metric{
		{Label: "Gross Monthly", Value: cli.FormatNaira(r.GrossMonthly)},
		{Label: "After Tax & Pension", Value: cli.FormatNaira(r.NetAfterStatutory),
			Note: cli.FormatNaira(r.StatutoryTotal()) + " statutory"},
		{Label: "Real Spendable", Value: cli.FormatNaira(r.RealSpendable),
			Note: r.Outlook().String(), Color: outlookColor(r.Outlook())},
	}
	if !a.isCompactLayout() {
		metrics = append(metrics, components.Metric{
			Label: "Months to Goal", Value: r.MonthsToGoal.String(),
			Note: "saving " + cli.FormatNaira(r.MaxMonthlySave) + "/mo",
		})
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	advice := lipgloss.NewStyle().
		Foreground(outlookColor(r.Outlook())).
		Background(t.Surface).
		Width(components.CardInnerWidth(cw)).
		Render(cli.Advisory(r))

	var shares []string
	if r.GrossMonthly > 0 {
		labelW := len("Spendable")
		barW := max(components.CardInnerWidth(cw)-labelW-8, 10)
		shares = []string{
			components.ShareBar("Statutory", r.StatutoryTotal(), r.GrossMonthly, t.Warn, labelW, barW),
			components.ShareBar("Outgoings", r.TotalOutgoings, r.GrossMonthly, t.Info, labelW, barW),
			components.ShareBar("Spendable", max(r.RealSpendable, 0), r.GrossMonthly, t.Good, labelW, barW),
		}
	}

	b.WriteString(components.ContentCard("Outlook", advice, cw))
	if len(shares) > 0 {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Where the money goes", strings.Join(shares, "\n"), cw))
	}
	return b.String()
}
