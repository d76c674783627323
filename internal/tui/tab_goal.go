package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/tui/components"
	"github.com/theirongolddev/payreal/internal/tui/theme"
)

// maxProjectionMonths caps the savings projection chart.
const maxProjectionMonths = 60

func (a App) renderGoalTab(cw int) string {
	t := theme.Active
	r := a.result
	innerW := components.CardInnerWidth(cw)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	msg, ok := cli.GoalMessage(r)
	if !ok {
		body := mutedStyle.Render("No savings goal set. Press [e] to add one.")
		return components.ContentCard("Savings Goal", body, cw)
	}
	pace, _ := r.GoalPace()

	metrics := []components.Metric{
		{Label: "Goal", Value: cli.FormatNaira(r.Input.GoalAmount)},
		{Label: "Monthly Save", Value: cli.FormatNaira(r.MaxMonthlySave),
			Note: fmt.Sprintf("%.0f%% of spendable", engine.SavingsRate*100)},
		{Label: "Months to Goal", Value: r.MonthsToGoal.String(), Note: pace.String(), Color: paceColor(pace)},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	planStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	verdictStyle := lipgloss.NewStyle().Foreground(paceColor(pace)).Background(t.Surface).Bold(true).Width(innerW)

	months := projectionMonths(r.MonthsToGoal.Months, r.MonthsToGoal.Unbounded)
	progressLine := mutedStyle.Render("After 12 months: ") +
		components.GoalBar(r.MaxMonthlySave*12, r.Input.GoalAmount, max(innerW-24, 10))

	body := planStyle.Render(cli.GoalPlan(r)) + "\n" + verdictStyle.Render(msg) + "\n\n" + progressLine
	b.WriteString(components.ContentCard("Savings Goal", body, cw))

	if r.MaxMonthlySave > 0 {
		values, labels := savingsProjection(r.MaxMonthlySave, months)
		chart := components.BarChart(values, labels, r.Input.GoalAmount, t.Accent, innerW, 8)
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Cumulative Savings", chart, cw))
	}
	return b.String()
}

// projectionMonths picks how many months the chart covers: through the goal
// month, at least a year, at most maxProjectionMonths.
func projectionMonths(toGoal int, unbounded bool) int {
	if unbounded {
		return 12
	}
	return min(max(toGoal, 12), maxProjectionMonths)
}

// savingsProjection returns cumulative savings for months 1..n.
func savingsProjection(perMonth float64, n int) ([]float64, []string) {
	values := make([]float64, n)
	labels := make([]string, n)
	for i := range n {
		values[i] = perMonth * float64(i+1)
		labels[i] = fmt.Sprintf("M%d", i+1)
	}
	return values, labels
}
