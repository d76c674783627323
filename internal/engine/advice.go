package engine

// TightThreshold is the monthly spendable income below which a budget is
// considered tight.
const TightThreshold = 50_000

// Outlook classifies real spendable income.
type Outlook int

const (
	OutlookDeficit Outlook = iota
	OutlookTight
	OutlookComfortable
)

func (o Outlook) String() string {
	switch o {
	case OutlookDeficit:
		return "deficit"
	case OutlookTight:
		return "tight"
	default:
		return "comfortable"
	}
}

// Outlook classifies the result's real spendable income.
func (r BudgetResult) Outlook() Outlook {
	switch {
	case r.RealSpendable < 0:
		return OutlookDeficit
	case r.RealSpendable < TightThreshold:
		return OutlookTight
	default:
		return OutlookComfortable
	}
}

// Pace classifies how quickly a savings goal is reached.
type Pace int

const (
	PaceWithinYear Pace = iota
	PaceWithinTwoYears
	PaceSlow
)

func (p Pace) String() string {
	switch p {
	case PaceWithinYear:
		return "within_year"
	case PaceWithinTwoYears:
		return "within_two_years"
	default:
		return "slow"
	}
}

// GoalPace classifies the savings horizon. ok is false when there is no goal
// to report on: no goal amount or no positive spendable income.
func (r BudgetResult) GoalPace() (p Pace, ok bool) {
	if r.Input.GoalAmount <= 0 || r.RealSpendable <= 0 {
		return PaceSlow, false
	}
	h := r.MonthsToGoal
	switch {
	case h.Unbounded:
		return PaceSlow, true
	case h.Months < 12:
		return PaceWithinYear, true
	case h.Months < 24:
		return PaceWithinTwoYears, true
	default:
		return PaceSlow, true
	}
}
