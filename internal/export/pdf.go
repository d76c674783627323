package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"
)

var (
	pdfHeaderColor  = [3]int{40, 40, 40}
	pdfHeaderText   = [3]int{255, 255, 255}
	pdfSectionColor = [3]int{0, 0, 0}
	pdfBodyColor    = [3]int{50, 50, 50}
	pdfLineColor    = [3]int{200, 200, 200}
)

// writePDF renders one A4 page per report. The core fonts have no naira
// sign, so amounts use the NGN prefix.
func writePDF(w io.Writer, reports []Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	section := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(pdfSectionColor[0], pdfSectionColor[1], pdfSectionColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(pdfLineColor[0], pdfLineColor[1], pdfLineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(3)
	}

	rows := func(items [][2]string) {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(pdfBodyColor[0], pdfBodyColor[1], pdfBodyColor[2])
		for _, it := range items {
			pdf.CellFormat(120, 6, tr(it[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, tr(it[1]), "", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	for i, rp := range reports {
		r := rp.Result
		pdf.AddPage()

		title := rp.Name
		if title == "" {
			title = "Salary Reality"
		}
		if len(title) > 80 {
			title = title[:77] + "..."
		}
		pdf.SetFillColor(pdfHeaderColor[0], pdfHeaderColor[1], pdfHeaderColor[2])
		pdf.SetTextColor(pdfHeaderText[0], pdfHeaderText[1], pdfHeaderText[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr("  "+title), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(pdfBodyColor[0], pdfBodyColor[1], pdfBodyColor[2])
		commute := "commutes"
		if r.Input.WalksToWork {
			commute = "walks to work"
		}
		city := string(r.Input.City)
		if city == "" {
			city = string(engine.CityOther)
		}
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  %s, %s, %s/yr gross", city, commute, cli.FormatNGN(r.Input.GrossAnnual))),
			"", 1, "L", true, 0, "")
		pdf.Ln(8)

		section("Summary")
		rows([][2]string{
			{"Gross Monthly", cli.FormatNGN(r.GrossMonthly)},
			{"After Tax & Pension", cli.FormatNGN(r.NetAfterStatutory)},
			{"Real Spendable", cli.FormatNGN(r.RealSpendable)},
		})

		section("Statutory Deductions")
		rows([][2]string{
			{fmt.Sprintf("Pension (%s)", cli.FormatRate(engine.PensionRate)), cli.FormatNGN(r.Pension)},
			{fmt.Sprintf("NHF (%s)", cli.FormatRate(engine.NHFRate)), cli.FormatNGN(r.NHF)},
			{fmt.Sprintf("PAYE (%.1f%% effective)", r.Tax.EffectiveRate), cli.FormatNGN(r.PAYE)},
		})

		section("Monthly Outgoings")
		rows([][2]string{
			{"Transport", cli.FormatNGN(r.Transport)},
			{"Housing", cli.FormatNGN(r.RentShare)},
			{"Family Support", cli.FormatNGN(r.FamilySupport)},
			{"House Upkeep", cli.FormatNGN(r.HouseUpkeep)},
			{"Total", cli.FormatNGN(r.TotalOutgoings)},
		})

		section("Advisory")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(pdfBodyColor[0], pdfBodyColor[1], pdfBodyColor[2])
		advice := asciiMoney(cli.Advisory(r))
		if msg, ok := cli.GoalMessage(r); ok {
			advice += "\n\n" + asciiMoney(cli.GoalPlan(r)) + "\n" + asciiMoney(msg)
		}
		pdf.MultiCell(190, 5, tr(advice), "", "L", false)

		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(cli.TaxCaption), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", i+1), "", 0, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func asciiMoney(s string) string {
	return strings.ReplaceAll(s, "₦", "NGN ")
}
