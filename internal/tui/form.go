package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"
	"github.com/theirongolddev/payreal/internal/tui/theme"
)

// FormValues holds the raw form fields. Amounts stay as typed text until
// Input parses them.
type FormValues struct {
	Gross  string
	City   string
	Walks  bool
	Family string
	Upkeep string
	Goal   string
	Theme  string
}

// NewFormValues pre-fills the form from an existing input.
func NewFormValues(in engine.BudgetInput) *FormValues {
	city := string(in.City)
	if !in.City.Known() {
		city = string(engine.CityOther)
	}
	return &FormValues{
		Gross:  amountText(in.GrossAnnual),
		City:   city,
		Walks:  in.WalksToWork,
		Family: amountText(in.FamilySupport),
		Upkeep: amountText(in.HouseUpkeep),
		Goal:   amountText(in.GoalAmount),
		Theme:  theme.Active.Name,
	}
}

func amountText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Input parses the form into engine input.
func (v *FormValues) Input() (engine.BudgetInput, error) {
	var in engine.BudgetInput
	fields := []struct {
		raw string
		dst *float64
	}{
		{v.Gross, &in.GrossAnnual},
		{v.Family, &in.FamilySupport},
		{v.Upkeep, &in.HouseUpkeep},
		{v.Goal, &in.GoalAmount},
	}
	for _, f := range fields {
		n, err := cli.ParseAmount(f.raw)
		if err != nil {
			return engine.BudgetInput{}, err
		}
		*f.dst = n
	}
	in.City = engine.City(v.City)
	in.WalksToWork = v.Walks
	return in, nil
}

func validateAmount(s string) error {
	_, err := cli.ParseAmount(s)
	return err
}

// NewInputForm builds the salary form bound to v. withTheme adds a theme
// picker, used by the setup command.
func NewInputForm(v *FormValues, withTheme bool) *huh.Form {
	cityOpts := make([]huh.Option[string], 0, len(engine.Cities()))
	for _, c := range engine.Cities() {
		cityOpts = append(cityOpts, huh.NewOption(string(c), string(c)))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Annual gross salary (₦)").
				Description("e.g. 2985762, 3,000,000 or 3m").
				Value(&v.Gross).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Title("City").
				Options(cityOpts...).
				Value(&v.City),
			huh.NewConfirm().
				Title("Do you walk to work?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.Walks),
		).Title("Income & location"),
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly family support (₦)").
				Value(&v.Family).
				Validate(validateAmount),
			huh.NewInput().
				Title("Monthly house upkeep (₦)").
				Description("Food, utilities, toiletries").
				Value(&v.Upkeep).
				Validate(validateAmount),
			huh.NewInput().
				Title("Savings goal (₦)").
				Description("e.g. a laptop or an emergency fund").
				Value(&v.Goal).
				Validate(validateAmount),
		).Title("Monthly obligations"),
	}

	if withTheme {
		themeOpts := make([]huh.Option[string], 0, len(theme.All))
		for _, name := range theme.Names() {
			themeOpts = append(themeOpts, huh.NewOption(name, name))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		).Title("Appearance"))
	}

	return huh.NewForm(groups...).WithShowHelp(true)
}
