package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/payreal/internal/engine"
)

// Captions shown under a full report.
const (
	TaxCaption = "PAYE calculated using Nigeria's 2025 progressive tax rates + Consolidated Relief Allowance (CRA)."
	TipCaption = "Tip: Even ₦5k/month in CowryWise adds up over time!"
)

// Advisory returns the headline message for the result's spendable outlook.
func Advisory(r engine.BudgetResult) string {
	switch r.Outlook() {
	case engine.OutlookDeficit:
		return "Your monthly obligations exceed your take-home pay. Consider adjusting expenses or increasing income."
	case engine.OutlookTight:
		return "Your spendable income is tight. Small changes (e.g., walking to work) can help!"
	default:
		return fmt.Sprintf("You have %s left for food, personal needs, and savings!", FormatNaira(r.RealSpendable))
	}
}

// GoalPlan returns the savings-rate line for the goal tracker.
func GoalPlan(r engine.BudgetResult) string {
	return fmt.Sprintf("If you save %s/month (%.0f%% of spendable income):",
		FormatNaira(r.MaxMonthlySave), engine.SavingsRate*100)
}

// GoalMessage returns the goal-tracker verdict. ok is false when the result
// has no goal section.
func GoalMessage(r engine.BudgetResult) (msg string, ok bool) {
	pace, ok := r.GoalPace()
	if !ok {
		return "", false
	}
	n := r.MonthsToGoal.Months
	switch {
	case r.MonthsToGoal.Unbounded:
		return "At this rate the goal is out of reach.", true
	case pace == engine.PaceWithinYear:
		return fmt.Sprintf("You'll reach your %s goal in %d months!", FormatNaira(r.Input.GoalAmount), n), true
	case pace == engine.PaceWithinTwoYears:
		return fmt.Sprintf("You'll reach your goal in about %d months (~%s).", n, FormatYears(n)), true
	default:
		return fmt.Sprintf("It will take %d months. Consider increasing savings rate or side income.", n), true
	}
}

func outlookStyle(o engine.Outlook) func(...string) string {
	switch o {
	case engine.OutlookDeficit:
		return badStyle.Render
	case engine.OutlookTight:
		return warnStyle.Render
	default:
		return goodStyle.Render
	}
}

func paceStyle(p engine.Pace) func(...string) string {
	switch p {
	case engine.PaceWithinYear:
		return goodStyle.Render
	case engine.PaceWithinTwoYears:
		return infoStyle.Render
	default:
		return warnStyle.Render
	}
}

// BreakdownRows itemises statutory deductions and monthly outgoings.
func BreakdownRows(r engine.BudgetResult) [][]string {
	return [][]string{
		{"Gross Monthly", FormatNaira(r.GrossMonthly)},
		{"---"},
		{fmt.Sprintf("Pension (%s)", FormatRate(engine.PensionRate)), FormatNaira(r.Pension)},
		{fmt.Sprintf("NHF (%s)", FormatRate(engine.NHFRate)), FormatNaira(r.NHF)},
		{fmt.Sprintf("PAYE Tax (%.1f%% of gross)", r.Tax.EffectiveRate), FormatNaira(r.PAYE)},
		{"Net After Statutory", FormatNaira(r.NetAfterStatutory)},
		{"---"},
		{"Transport", FormatNaira(r.Transport)},
		{"Housing", FormatNaira(r.RentShare)},
		{"Family Support", FormatNaira(r.FamilySupport)},
		{"House Upkeep", FormatNaira(r.HouseUpkeep)},
		{"Total Outgoings", FormatNaira(r.TotalOutgoings)},
		{"---"},
		{"Real Spendable", FormatNaira(r.RealSpendable)},
	}
}

// RenderReport renders the full salary reality report for one result.
func RenderReport(r engine.BudgetResult) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("SALARY REALITY  %s  %s/yr",
		displayCity(r.Input.City), FormatNaira(r.Input.GrossAnnual))))
	b.WriteString("\n\n")

	b.WriteString(RenderTable(Table{
		Headers: []string{"Monthly", "Amount"},
		Rows:    BreakdownRows(r),
	}))
	b.WriteString("\n")

	if r.GrossMonthly > 0 {
		labelW := len("Outgoings")
		b.WriteString(headerStyle.Render("  Where the money goes"))
		b.WriteString("\n")
		b.WriteString(RenderHorizontalBar("Statutory", r.StatutoryTotal(), r.GrossMonthly, labelW, 30))
		b.WriteString("\n")
		b.WriteString(RenderHorizontalBar("Outgoings", r.TotalOutgoings, r.GrossMonthly, labelW, 30))
		b.WriteString("\n")
		b.WriteString(RenderHorizontalBar("Spendable", max(r.RealSpendable, 0), r.GrossMonthly, labelW, 30))
		b.WriteString("\n\n")
	}

	b.WriteString("  ")
	b.WriteString(outlookStyle(r.Outlook())(Advisory(r)))
	b.WriteString("\n")

	if msg, ok := GoalMessage(r); ok {
		pace, _ := r.GoalPace()
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("  Your Savings Goal"))
		b.WriteString("\n  ")
		b.WriteString(valueStyle.Render(GoalPlan(r)))
		b.WriteString("\n  ")
		b.WriteString(paceStyle(pace)(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(TaxCaption))
	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(TipCaption))
	b.WriteString("\n")

	return b.String()
}

// RenderTaxTable renders the relief, bracket walk and totals for one income.
func RenderTaxTable(t engine.TaxResult) string {
	rows := [][]string{
		{"Gross Annual", "", FormatNaira(t.GrossAnnual)},
		{"Relief (CRA)", "", FormatNaira(t.Relief)},
		{"Taxable Income", "", FormatNaira(t.Taxable)},
		{"---"},
	}
	for i, band := range t.Bands {
		rows = append(rows, []string{
			BandLabel(i, band.Bracket),
			FormatNaira(band.Chargeable),
			FormatNaira(band.Tax),
		})
	}
	if len(t.Bands) == 0 {
		rows = append(rows, []string{"No taxable income", "", FormatNaira(0)})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Annual PAYE", "", FormatNaira(t.AnnualTax)},
		[]string{"Monthly PAYE", "", FormatNaira(t.MonthlyTax())},
		[]string{"Effective Rate", "", FormatPercent(t.EffectiveRate / 100)},
	)

	return RenderTable(Table{
		Headers: []string{"Band", "Chargeable", "Tax"},
		Rows:    rows,
	})
}

// BandLabel names the i-th bracket the way payslips do, e.g. "Next 500K @ 15%".
func BandLabel(i int, b engine.TaxBracket) string {
	switch {
	case i == 0:
		return fmt.Sprintf("First %s @ %s", FormatCompact(b.Width), FormatRate(b.Rate))
	case math.IsInf(b.Width, 1):
		return fmt.Sprintf("Above @ %s", FormatRate(b.Rate))
	default:
		return fmt.Sprintf("Next %s @ %s", FormatCompact(b.Width), FormatRate(b.Rate))
	}
}

// RenderCityTable lists the transport and housing profile for every city.
func RenderCityTable() string {
	var rows [][]string
	for _, c := range engine.Cities() {
		p := engine.ProfileFor(c)
		rows = append(rows, []string{string(c), FormatNaira(p.Transport), FormatNaira(p.RentShare)})
	}
	return RenderTable(Table{
		Title:   "City Profiles (monthly)",
		Headers: []string{"City", "Transport", "Rent Share"},
		Rows:    rows,
	})
}

// RenderComparison renders several results side by side, one column each.
func RenderComparison(names []string, results []engine.BudgetResult) string {
	if len(results) == 0 {
		return ""
	}

	headers := append([]string{"Monthly"}, names...)
	line := func(label string, f func(engine.BudgetResult) string) []string {
		row := []string{label}
		for _, r := range results {
			row = append(row, f(r))
		}
		return row
	}
	money := func(get func(engine.BudgetResult) float64) func(engine.BudgetResult) string {
		return func(r engine.BudgetResult) string { return FormatNaira(get(r)) }
	}

	rows := [][]string{
		line("City", func(r engine.BudgetResult) string { return displayCity(r.Input.City) }),
		line("Gross Monthly", money(func(r engine.BudgetResult) float64 { return r.GrossMonthly })),
		line("Statutory", money(engine.BudgetResult.StatutoryTotal)),
		line("Net After Statutory", money(func(r engine.BudgetResult) float64 { return r.NetAfterStatutory })),
		line("Outgoings", money(func(r engine.BudgetResult) float64 { return r.TotalOutgoings })),
		{"---"},
		line("Real Spendable", money(func(r engine.BudgetResult) float64 { return r.RealSpendable })),
		line("Monthly Save", money(func(r engine.BudgetResult) float64 { return r.MaxMonthlySave })),
		line("Months to Goal", func(r engine.BudgetResult) string { return r.MonthsToGoal.String() }),
		line("Outlook", func(r engine.BudgetResult) string { return r.Outlook().String() }),
	}

	return RenderTable(Table{Headers: headers, Rows: rows})
}

func displayCity(c engine.City) string {
	if c == "" {
		return string(engine.CityOther)
	}
	return string(c)
}
