package engine

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeTax_NonPositiveIncome(t *testing.T) {
	for _, gross := range []float64{0, -1, -2_500_000} {
		r := ComputeTax(gross)
		if r.AnnualTax != 0 || r.EffectiveRate != 0 {
			t.Errorf("ComputeTax(%v) = (%v, %v), want (0, 0)", gross, r.AnnualTax, r.EffectiveRate)
		}
		if len(r.Bands) != 0 {
			t.Errorf("ComputeTax(%v) charged %d bands, want none", gross, len(r.Bands))
		}
	}
}

func TestComputeTax_HandComputed(t *testing.T) {
	tests := []struct {
		name      string
		gross     float64
		relief    float64
		taxable   float64
		tax       float64
		effective float64
		bands     int
	}{
		{
			// Fully covered by the relief floor.
			name: "below relief floor", gross: 200_000,
			relief: 200_000, taxable: 0, tax: 0, effective: 0, bands: 0,
		},
		{
			// 300k taxable fills the first band exactly.
			name: "first band exactly full", gross: 500_000,
			relief: 200_000, taxable: 300_000, tax: 21_000, effective: 4.2, bands: 1,
		},
		{
			// 300k @ 7% + 100k @ 11%: the second band is partially filled.
			name: "partial second band", gross: 600_000,
			relief: 200_000, taxable: 400_000, tax: 32_000, effective: 32_000.0 / 600_000 * 100, bands: 2,
		},
		{
			// Relief 627,010.02; taxable 2,358,751.98;
			// 21,000 + 33,000 + 75,000 + 95,000 + 758,751.98 @ 21% = 383,337.9158.
			name: "reference salary", gross: 2_985_762,
			relief: 627_010.02, taxable: 2_358_751.98, tax: 383_337.9158,
			effective: 383_337.9158 / 2_985_762 * 100, bands: 5,
		},
		{
			// Taxable 7.9M: 560,000 on the first 3.2M + 4.7M @ 24%.
			name: "top band", gross: 10_000_000,
			relief: 2_100_000, taxable: 7_900_000, tax: 1_688_000, effective: 16.88, bands: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeTax(tt.gross)
			if !approx(r.Relief, tt.relief, 1e-6) {
				t.Errorf("Relief = %.4f, want %.4f", r.Relief, tt.relief)
			}
			if !approx(r.Taxable, tt.taxable, 1e-6) {
				t.Errorf("Taxable = %.4f, want %.4f", r.Taxable, tt.taxable)
			}
			if !approx(r.AnnualTax, tt.tax, 1e-6) {
				t.Errorf("AnnualTax = %.6f, want %.6f", r.AnnualTax, tt.tax)
			}
			if !approx(r.EffectiveRate, tt.effective, 1e-9) {
				t.Errorf("EffectiveRate = %.6f, want %.6f", r.EffectiveRate, tt.effective)
			}
			if len(r.Bands) != tt.bands {
				t.Errorf("len(Bands) = %d, want %d", len(r.Bands), tt.bands)
			}
		})
	}
}

func TestComputeTax_BandsSumToTax(t *testing.T) {
	r := ComputeTax(2_985_762)

	var sum, chargeable float64
	for _, b := range r.Bands {
		sum += b.Tax
		chargeable += b.Chargeable
	}
	if sum != r.AnnualTax {
		t.Fatalf("sum of band tax = %v, AnnualTax = %v", sum, r.AnnualTax)
	}
	if !approx(chargeable, r.Taxable, 1e-6) {
		t.Fatalf("sum of chargeable = %v, Taxable = %v", chargeable, r.Taxable)
	}

	last := r.Bands[len(r.Bands)-1]
	if last.Rate != 0.21 || !approx(last.Chargeable, 758_751.98, 1e-6) {
		t.Fatalf("last band = %+v, want 758,751.98 @ 21%%", last)
	}
}

// Subtracting the full width after a partial band must match the textbook
// sum of min(max(taxable - lower, 0), width) * rate.
func TestComputeTax_MatchesStandardProgressiveFormula(t *testing.T) {
	standard := func(taxable float64) float64 {
		var tax, lower float64
		for _, b := range Brackets() {
			part := math.Min(math.Max(taxable-lower, 0), b.Width)
			tax += part * b.Rate
			lower += b.Width
		}
		return tax
	}

	for gross := 0.0; gross <= 12_000_000; gross += 37_500 {
		r := ComputeTax(gross)
		if want := standard(r.Taxable); !approx(r.AnnualTax, want, 1e-6) {
			t.Fatalf("gross %.0f: tax = %.6f, standard formula = %.6f", gross, r.AnnualTax, want)
		}
	}
}

func TestComputeTax_Monotonic(t *testing.T) {
	prev := ComputeTax(0).AnnualTax
	for gross := 10_000.0; gross <= 20_000_000; gross += 10_000 {
		tax := ComputeTax(gross).AnnualTax
		if tax < prev {
			t.Fatalf("tax decreased at gross %.0f: %.4f < %.4f", gross, tax, prev)
		}
		if tax < 0 {
			t.Fatalf("negative tax at gross %.0f", gross)
		}
		prev = tax
	}
}

func TestBrackets_Invariants(t *testing.T) {
	bs := Brackets()
	if len(bs) != 6 {
		t.Fatalf("len(Brackets()) = %d, want 6", len(bs))
	}
	for i := 1; i < len(bs); i++ {
		if bs[i].Rate < bs[i-1].Rate {
			t.Errorf("bracket %d rate %.2f below bracket %d rate %.2f",
				i, bs[i].Rate, i-1, bs[i-1].Rate)
		}
	}
	if !math.IsInf(bs[len(bs)-1].Width, 1) {
		t.Error("last bracket must be unbounded")
	}
}

func TestBrackets_ReturnsCopy(t *testing.T) {
	want := ComputeTax(2_985_762).AnnualTax

	bs := Brackets()
	for i := range bs {
		bs[i].Rate = 0.9
	}
	if got := ComputeTax(2_985_762).AnnualTax; got != want {
		t.Fatalf("editing the returned schedule changed tax: %v, want %v", got, want)
	}
	if Brackets()[0].Rate != 0.07 {
		t.Error("Brackets() exposed the package schedule")
	}
}
