// Package engine computes Nigerian PAYE tax and the monthly budget that
// follows from it. Every function here is pure and safe for concurrent use.
package engine

import "math"

// Relief allowance (CRA) parameters.
const (
	ReliefFloor = 200_000
	ReliefRate  = 0.21
)

// TaxBracket is one band of the progressive schedule. Width is the amount of
// taxable income charged at Rate; the last band is unbounded.
type TaxBracket struct {
	Width float64
	Rate  float64
}

// brackets is the PAYE schedule, lowest band first.
var brackets = []TaxBracket{
	{Width: 300_000, Rate: 0.07},
	{Width: 300_000, Rate: 0.11},
	{Width: 500_000, Rate: 0.15},
	{Width: 500_000, Rate: 0.19},
	{Width: 1_600_000, Rate: 0.21},
	{Width: math.Inf(1), Rate: 0.24},
}

// Brackets returns a copy of the PAYE schedule, lowest band first.
func Brackets() []TaxBracket {
	return append([]TaxBracket(nil), brackets...)
}

// BandCharge records how much of a bracket was used and what it cost.
type BandCharge struct {
	Bracket    TaxBracket `json:"-" yaml:"-"`
	Rate       float64    `json:"rate" yaml:"rate"`
	Chargeable float64    `json:"chargeable" yaml:"chargeable"`
	Tax        float64    `json:"tax" yaml:"tax"`
}

// TaxResult is the annual PAYE position for one gross income.
type TaxResult struct {
	GrossAnnual   float64      `json:"gross_annual" yaml:"gross_annual"`
	Relief        float64      `json:"relief" yaml:"relief"`
	Taxable       float64      `json:"taxable" yaml:"taxable"`
	AnnualTax     float64      `json:"annual_tax" yaml:"annual_tax"`
	EffectiveRate float64      `json:"effective_rate_percent" yaml:"effective_rate_percent"`
	Bands         []BandCharge `json:"bands,omitempty" yaml:"bands,omitempty"`
}

// MonthlyTax returns the PAYE deducted each month.
func (r TaxResult) MonthlyTax() float64 {
	return r.AnnualTax / 12
}

// ComputeTax applies the relief allowance and walks the bracket schedule.
//
// After charging a band, remaining is reduced by the band's full width, not
// by the chargeable amount. A partially filled band therefore drives
// remaining negative and ends the walk; results match the usual progressive
// formula and must stay bit-for-bit identical to it.
func ComputeTax(grossAnnual float64) TaxResult {
	if grossAnnual <= 0 {
		return TaxResult{GrossAnnual: grossAnnual}
	}

	relief := math.Max(ReliefFloor, ReliefRate*grossAnnual)
	taxable := math.Max(0, grossAnnual-relief)

	var (
		tax   float64
		bands []BandCharge
	)
	remaining := taxable
	for _, b := range brackets {
		if remaining <= 0 {
			break
		}
		chargeable := math.Min(remaining, b.Width)
		charge := chargeable * b.Rate
		tax += charge
		remaining -= b.Width

		bands = append(bands, BandCharge{
			Bracket:    b,
			Rate:       b.Rate,
			Chargeable: chargeable,
			Tax:        charge,
		})
	}

	return TaxResult{
		GrossAnnual:   grossAnnual,
		Relief:        relief,
		Taxable:       taxable,
		AnnualTax:     tax,
		EffectiveRate: tax / grossAnnual * 100,
		Bands:         bands,
	}
}
