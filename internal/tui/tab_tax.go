package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/tui/components"
	"github.com/theirongolddev/payreal/internal/tui/theme"
)

func (a App) renderTaxTab(cw int) string {
	t := theme.Active
	tax := a.result.Tax

	metrics := []components.Metric{
		{Label: "Relief (CRA)", Value: cli.FormatNaira(tax.Relief)},
		{Label: "Taxable Income", Value: cli.FormatNaira(tax.Taxable)},
		{Label: "Annual PAYE", Value: cli.FormatNaira(tax.AnnualTax),
			Note: cli.FormatNaira(tax.MonthlyTax()) + "/mo", Color: t.Warn},
		{Label: "Effective Rate", Value: cli.FormatPercent(tax.EffectiveRate / 100)},
	}

	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(metrics[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], cw))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	const amountW = 14
	bandW := max(innerW-2*amountW, 16)
	row := func(style lipgloss.Style, band, chargeable, owed string) string {
		right := style.Width(amountW).Align(lipgloss.Right)
		return style.Width(bandW).Render(band) + right.Render(chargeable) + right.Render(owed)
	}

	var lines []string
	lines = append(lines, row(headStyle, "Band", "Chargeable", "Tax"))
	for i, band := range tax.Bands {
		lines = append(lines, row(rowStyle, cli.BandLabel(i, band.Bracket),
			cli.FormatNaira(band.Chargeable), cli.FormatNaira(band.Tax)))
	}
	if len(tax.Bands) == 0 {
		lines = append(lines, dimStyle.Render("No taxable income after relief."))
	}

	b.WriteString(components.ContentCard("PAYE Bands", strings.Join(lines, "\n"), cw))
	b.WriteString("\n")
	b.WriteString(dimStyle.Width(cw).Render(cli.TaxCaption))
	return b.String()
}
