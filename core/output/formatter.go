// Package output renders household reports for humans and machines.
// This layer owns all presentation rounding; the engine hands it exact
// values.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"prepstock/core/types"
	"prepstock/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report
	Render(w io.Writer, report *types.HouseholdReport) error
}

// New returns the formatter for a format name
func New(f Format) (Formatter, error) {
	switch f {
	case FormatCLI:
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", f)
	}
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, report *types.HouseholdReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, report *types.HouseholdReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Preparedness score: %d/100 (%s)\n", report.Score, tierLabel(report.Tier))
	fmt.Fprintf(&b, "Household: %d adults, %d children, %d pets, %d days of supply\n\n",
		report.Household.Adults, report.Household.Children,
		report.Household.Pets, report.Household.SupplyDurationDays)

	for _, cat := range report.Categories {
		fmt.Fprintf(&b, "%s %-12s %5s%%  (%d items: %d ok, %d warning, %d critical)\n",
			statusGlyph(cat.Status), cat.CategoryID,
			cat.CompletionPercent.Round(0), cat.ItemCount,
			cat.OKCount, cat.WarningCount, cat.CriticalCount)

		for _, s := range cat.Shortages {
			fmt.Fprintf(&b, "    missing %s %s of %s (%s of %s)\n",
				s.Missing, s.Unit, s.ItemName, s.Actual, s.Needed)
		}

		if cat.Calories != nil && cat.Calories.Missing.Sign() > 0 {
			fmt.Fprintf(&b, "    missing %s kcal (%s of %s)\n",
				cat.Calories.Missing.Round(0), cat.Calories.Actual.Round(0), cat.Calories.Needed.Round(0))
		}
		if cat.Water != nil {
			fmt.Fprintf(&b, "    drinking %s l + preparation %s l\n",
				cat.Water.DrinkingNeeded, cat.Water.PreparationNeeded)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func statusGlyph(s types.ItemStatus) string {
	switch s {
	case types.StatusOK:
		return "[ok]"
	case types.StatusWarning:
		return "[!!]"
	default:
		return "[XX]"
	}
}

func tierLabel(t types.ScoreTier) string {
	switch t {
	case types.TierExcellent:
		return "excellent"
	case types.TierGood:
		return "good"
	default:
		return "needs work"
	}
}
