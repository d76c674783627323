package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/payreal/internal/engine"
)

func referenceResult() engine.BudgetResult {
	return engine.ComputeBudget(engine.BudgetInput{
		GrossAnnual:   2_985_762,
		City:          engine.CityLagos,
		FamilySupport: 40_000,
		HouseUpkeep:   50_000,
		GoalAmount:    250_000,
	})
}

func TestAdvisory(t *testing.T) {
	tests := []struct {
		spendable float64
		contains  string
	}{
		{-1, "exceed your take-home pay"},
		{0, "tight"},
		{49_999, "tight"},
		{50_000, "You have ₦50,000 left"},
	}
	for _, tt := range tests {
		r := engine.BudgetResult{RealSpendable: tt.spendable}
		if got := Advisory(r); !strings.Contains(got, tt.contains) {
			t.Errorf("Advisory(spendable=%v) = %q, want it to contain %q", tt.spendable, got, tt.contains)
		}
	}
}

func TestGoalMessage(t *testing.T) {
	mk := func(months int) engine.BudgetResult {
		return engine.BudgetResult{
			Input:         engine.BudgetInput{GoalAmount: 250_000},
			RealSpendable: 100_000,
			MonthsToGoal:  engine.Horizon{Months: months},
		}
	}

	tests := []struct {
		months   int
		contains string
	}{
		{3, "You'll reach your ₦250,000 goal in 3 months!"},
		{18, "about 18 months (~1 year)"},
		{53, "It will take 53 months"},
	}
	for _, tt := range tests {
		msg, ok := GoalMessage(mk(tt.months))
		if !ok {
			t.Fatalf("GoalMessage(%d months) not ok", tt.months)
		}
		if !strings.Contains(msg, tt.contains) {
			t.Errorf("GoalMessage(%d months) = %q, want it to contain %q", tt.months, msg, tt.contains)
		}
	}

	noGoal := mk(3)
	noGoal.Input.GoalAmount = 0
	if _, ok := GoalMessage(noGoal); ok {
		t.Error("GoalMessage reported a goal section with no goal amount")
	}
}

func TestRenderReport(t *testing.T) {
	out := RenderReport(referenceResult())

	for _, want := range []string{
		"Lagos",
		"Pension (8%)",
		"NHF (2.5%)",
		"₦248,814",
		"₦175,000",
		"₦15,743",
		"tight",
		"If you save ₦4,723/month",
		"It will take 53 months",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderTaxTable(t *testing.T) {
	out := RenderTaxTable(engine.ComputeTax(2_985_762))
	for _, want := range []string{"First 300K @ 7%", "Next 1.6M @ 21%", "₦627,010", "₦383,338", "12.8%"} {
		if !strings.Contains(out, want) {
			t.Errorf("tax table missing %q", want)
		}
	}
	if strings.Contains(out, "24%") {
		t.Error("tax table shows the top band for an income that never reaches it")
	}
}

func TestRenderComparison(t *testing.T) {
	a := referenceResult()
	in := a.Input
	in.City = engine.CityIbadan
	b := engine.ComputeBudget(in)

	out := RenderComparison([]string{"lagos", "ibadan"}, []engine.BudgetResult{a, b})
	for _, want := range []string{"lagos", "ibadan", "Ibadan", "53 months", "Real Spendable"} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison missing %q", want)
		}
	}
	if RenderComparison(nil, nil) != "" {
		t.Error("empty comparison should render nothing")
	}
}

func TestRenderTableAlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Item", "Amount"},
		Rows:    [][]string{{"a", "₦1"}, {"b", "₦1,000,000"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := len([]rune(lines[0]))
	for i, l := range lines {
		if n := len([]rune(l)); n != want {
			t.Errorf("line %d has %d runes, want %d: %q", i, n, want, l)
		}
	}
}
