package status

import (
	"time"

	"github.com/shopspring/decimal"

	"prepstock/core/quantity"
	"prepstock/core/types"
)

// Category rolls item-level statuses and the completion percentage into one
// category result.
//
// The baseline status comes from the completion bands. A single critical
// item overrides the band: an expired or empty item must not hide behind an
// otherwise healthy percentage. A category with no tracked items is critical
// at 0% by definition; absence of supplies is total unpreparedness, not "not
// applicable".
//
// itemTargets maps inventory item ids to the scaled need of the catalog
// entry each item matched; unmatched items get a zero target.
func Category(id types.CategoryID, items types.Inventory, totals types.CategoryTotals, itemTargets map[string]decimal.Decimal, now time.Time, p types.Params) types.CategoryResult {
	result := types.CategoryResult{
		CategoryTotals: totals,
		ItemCount:      len(items),
	}

	for _, item := range items {
		switch ForItem(item, itemTargets[item.ID], now, p) {
		case types.StatusCritical:
			result.CriticalCount++
		case types.StatusWarning:
			result.WarningCount++
		default:
			result.OKCount++
		}
	}

	if result.ItemCount == 0 {
		result.CompletionPercent = decimal.Zero
		result.Status = types.StatusCritical
		return result
	}

	result.CompletionPercent = quantity.Percent(totals.TotalActual, totals.TotalNeeded)
	result.Status = bandStatus(result.CompletionPercent, p)
	if result.CriticalCount > 0 {
		result.Status = types.StatusCritical
	}
	return result
}

func bandStatus(completion decimal.Decimal, p types.Params) types.ItemStatus {
	if completion.LessThan(p.CriticalBelowPercent) {
		return types.StatusCritical
	}
	if completion.LessThan(p.OKFromPercent) {
		return types.StatusWarning
	}
	return types.StatusOK
}
