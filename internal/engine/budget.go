package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Statutory and savings rates applied to monthly figures.
const (
	PensionRate = 0.08
	NHFRate     = 0.025
	SavingsRate = 0.3
)

// ErrInvalidAmount is returned by Validate for negative or non-finite amounts.
var ErrInvalidAmount = errors.New("invalid amount")

// BudgetInput is everything the projector needs. Amounts other than
// GrossAnnual are monthly.
type BudgetInput struct {
	GrossAnnual   float64 `json:"gross_annual" yaml:"gross_annual"`
	City          City    `json:"city" yaml:"city"`
	WalksToWork   bool    `json:"walks_to_work" yaml:"walks_to_work"`
	FamilySupport float64 `json:"family_support" yaml:"family_support"`
	HouseUpkeep   float64 `json:"house_upkeep" yaml:"house_upkeep"`
	GoalAmount    float64 `json:"goal_amount" yaml:"goal_amount"`
}

// Validate checks that every amount is finite and non-negative.
func (in BudgetInput) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"gross_annual", in.GrossAnnual},
		{"family_support", in.FamilySupport},
		{"house_upkeep", in.HouseUpkeep},
		{"goal_amount", in.GoalAmount},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidAmount, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %v)", ErrInvalidAmount, f.name, f.v)
		}
	}
	return nil
}

// Horizon is the number of months needed to reach a savings goal.
// Unbounded means the goal is never reached at the current rate.
type Horizon struct {
	Months    int
	Unbounded bool
}

// Never is the unbounded horizon.
var Never = Horizon{Unbounded: true}

// String renders the horizon for humans.
func (h Horizon) String() string {
	if h.Unbounded {
		return "never"
	}
	if h.Months == 1 {
		return "1 month"
	}
	return strconv.Itoa(h.Months) + " months"
}

// MarshalJSON encodes an unbounded horizon as null.
func (h Horizon) MarshalJSON() ([]byte, error) {
	if h.Unbounded {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(h.Months)), nil
}

// UnmarshalJSON reverses MarshalJSON.
func (h *Horizon) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*h = Never
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("horizon: %w", err)
	}
	*h = Horizon{Months: n}
	return nil
}

// MarshalYAML encodes an unbounded horizon as null.
func (h Horizon) MarshalYAML() (interface{}, error) {
	if h.Unbounded {
		return nil, nil
	}
	return h.Months, nil
}

// BudgetResult is the full monthly picture for one BudgetInput.
type BudgetResult struct {
	Input BudgetInput `json:"input" yaml:"input"`
	Tax   TaxResult   `json:"tax" yaml:"tax"`

	GrossMonthly      float64 `json:"gross_monthly" yaml:"gross_monthly"`
	Pension           float64 `json:"pension" yaml:"pension"`
	NHF               float64 `json:"nhf" yaml:"nhf"`
	PAYE              float64 `json:"paye" yaml:"paye"`
	NetAfterStatutory float64 `json:"net_after_statutory" yaml:"net_after_statutory"`

	Transport      float64 `json:"transport" yaml:"transport"`
	RentShare      float64 `json:"rent_share" yaml:"rent_share"`
	FamilySupport  float64 `json:"family_support" yaml:"family_support"`
	HouseUpkeep    float64 `json:"house_upkeep" yaml:"house_upkeep"`
	TotalOutgoings float64 `json:"total_outgoings" yaml:"total_outgoings"`

	RealSpendable  float64 `json:"real_spendable" yaml:"real_spendable"`
	MaxMonthlySave float64 `json:"max_monthly_save" yaml:"max_monthly_save"`
	MonthsToGoal   Horizon `json:"months_to_goal" yaml:"months_to_goal"`
}

// StatutoryTotal is pension + NHF + PAYE.
func (r BudgetResult) StatutoryTotal() float64 {
	return r.Pension + r.NHF + r.PAYE
}

// ComputeBudget runs the pipeline: tax, statutory netting, outgoings,
// savings projection. It does not validate; negative spendable income is a
// valid result.
func ComputeBudget(in BudgetInput) BudgetResult {
	var grossMonthly float64
	if in.GrossAnnual > 0 {
		grossMonthly = in.GrossAnnual / 12
	}

	pension := grossMonthly * PensionRate
	nhf := grossMonthly * NHFRate

	tax := ComputeTax(in.GrossAnnual)
	paye := tax.AnnualTax / 12

	net := grossMonthly - (pension + nhf + paye)

	profile := ProfileFor(in.City)
	transport := profile.Transport
	if in.WalksToWork {
		transport = 0
	}

	outgoings := transport + profile.RentShare + in.FamilySupport + in.HouseUpkeep
	spendable := net - outgoings

	save, horizon := projectSavings(spendable, in.GoalAmount)

	return BudgetResult{
		Input:             in,
		Tax:               tax,
		GrossMonthly:      grossMonthly,
		Pension:           pension,
		NHF:               nhf,
		PAYE:              paye,
		NetAfterStatutory: net,
		Transport:         transport,
		RentShare:         profile.RentShare,
		FamilySupport:     in.FamilySupport,
		HouseUpkeep:       in.HouseUpkeep,
		TotalOutgoings:    outgoings,
		RealSpendable:     spendable,
		MaxMonthlySave:    save,
		MonthsToGoal:      horizon,
	}
}

func projectSavings(spendable, goal float64) (float64, Horizon) {
	if spendable <= 0 {
		return 0, Never
	}
	save := math.Min(spendable*SavingsRate, spendable)
	return save, monthsToGoal(goal, save)
}

// monthsToGoal rounds half to even, matching the reference calculator.
// Quotients past the int range saturate at math.MaxInt.
func monthsToGoal(goal, save float64) Horizon {
	if goal <= 0 || save <= 0 {
		return Never
	}
	q := math.RoundToEven(goal / save)
	if q >= math.MaxInt {
		return Horizon{Months: math.MaxInt}
	}
	return Horizon{Months: int(q)}
}
