// Package export writes budget results as JSON, YAML, CSV or PDF.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/payreal/internal/cli"
	"github.com/theirongolddev/payreal/internal/engine"
)

// ErrUnsupportedFormat is returned for unknown format names or extensions.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts a format name or a file extension (".yml" included).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Report is one named result.
type Report struct {
	Name   string
	Result engine.BudgetResult
}

// Record is the serialized form of a Report: the result plus its advisory
// labels.
type Record struct {
	Name                string `json:"name,omitempty" yaml:"name,omitempty"`
	engine.BudgetResult `yaml:",inline"`
	Outlook             string `json:"outlook" yaml:"outlook"`
	GoalPace            string `json:"goal_pace,omitempty" yaml:"goal_pace,omitempty"`
	Advisory            string `json:"advisory" yaml:"advisory"`
	GoalMessage         string `json:"goal_message,omitempty" yaml:"goal_message,omitempty"`
}

// NewRecord builds the serialized form of one result.
func NewRecord(name string, r engine.BudgetResult) Record {
	rec := Record{
		Name:         name,
		BudgetResult: r,
		Outlook:      r.Outlook().String(),
		Advisory:     cli.Advisory(r),
	}
	if pace, ok := r.GoalPace(); ok {
		rec.GoalPace = pace.String()
		rec.GoalMessage, _ = cli.GoalMessage(r)
	}
	return rec
}

func records(reports []Report) []Record {
	out := make([]Record, len(reports))
	for i, rp := range reports {
		out[i] = NewRecord(rp.Name, rp.Result)
	}
	return out
}

// Write encodes reports to w. JSON and YAML emit a single object for one
// report and a list otherwise.
func Write(w io.Writer, f Format, reports []Report) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, reports)
	case FormatYAML:
		return writeYAML(w, reports)
	case FormatCSV:
		return writeCSV(w, reports)
	case FormatPDF:
		return writePDF(w, reports)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteFile writes reports to path in the format implied by its extension
// and returns the absolute path written.
func WriteFile(path string, reports []Report) (string, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s file: %w", f, err)
	}
	if err := Write(file, f, reports); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s file: %w", f, err)
	}
	return filepath.Abs(path)
}

func writeJSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	var v any = records(reports)
	if len(reports) == 1 {
		v = NewRecord(reports[0].Name, reports[0].Result)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	var v any = records(reports)
	if len(reports) == 1 {
		v = NewRecord(reports[0].Name, reports[0].Result)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// CSVHeader lists the CSV columns in order.
var CSVHeader = []string{
	"name", "city", "walks_to_work", "gross_annual", "gross_monthly",
	"pension", "nhf", "paye", "net_after_statutory",
	"transport", "rent_share", "family_support", "house_upkeep", "total_outgoings",
	"real_spendable", "max_monthly_save", "goal_amount", "months_to_goal", "outlook",
}

func writeCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, rp := range reports {
		r := rp.Result
		months := ""
		if !r.MonthsToGoal.Unbounded {
			months = strconv.Itoa(r.MonthsToGoal.Months)
		}
		record := []string{
			rp.Name,
			string(r.Input.City),
			strconv.FormatBool(r.Input.WalksToWork),
			money(r.Input.GrossAnnual),
			money(r.GrossMonthly),
			money(r.Pension),
			money(r.NHF),
			money(r.PAYE),
			money(r.NetAfterStatutory),
			money(r.Transport),
			money(r.RentShare),
			money(r.FamilySupport),
			money(r.HouseUpkeep),
			money(r.TotalOutgoings),
			money(r.RealSpendable),
			money(r.MaxMonthlySave),
			money(r.Input.GoalAmount),
			months,
			r.Outlook().String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
