// Package score rolls all catalog entries into the single 0-100 household
// preparedness score.
package score

import (
	"github.com/shopspring/decimal"

	"prepstock/core/quantity"
	"prepstock/core/shortage"
	"prepstock/core/types"
)

// Preparedness averages the per-entry fill percentage over every applicable
// catalog entry, equal weight per entry rather than per category, rounded to
// the nearest integer. An empty catalog (after freezer exclusion) scores 0.
func Preparedness(agg *shortage.Aggregator, catalog types.Catalog, inv types.Inventory, h types.HouseholdConfig) int {
	h, _ = h.Normalized()

	total := decimal.Zero
	entries := 0
	for _, id := range catalog.Categories() {
		fills, _ := agg.Fills(id, inv, h)
		for _, f := range fills {
			total = total.Add(quantity.Percent(f.Actual, f.Needed))
			entries++
		}
	}

	if entries == 0 {
		return 0
	}
	avg := total.Div(decimal.NewFromInt(int64(entries)))
	return int(avg.Round(0).IntPart())
}

// Tier maps a score to its presentation label band
func Tier(score int) types.ScoreTier {
	switch {
	case score >= 80:
		return types.TierExcellent
	case score >= 50:
		return types.TierGood
	default:
		return types.TierNeedsWork
	}
}
