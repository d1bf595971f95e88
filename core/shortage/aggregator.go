// Package shortage aggregates owned versus needed quantities per category:
// per-entry fills, the sorted shortage list, and the calorie and water
// sub-totals the food and water categories carry.
//
// Aggregation is O(catalog entries x inventory items) per category because
// every item is matched against the category's entries. Catalogs are tens of
// entries, so this is negligible; a much larger catalog would want a
// template-id index built once per pass.
package shortage

import (
	"sort"

	"github.com/shopspring/decimal"

	"prepstock/core/match"
	"prepstock/core/quantity"
	"prepstock/core/scaling"
	"prepstock/core/types"
)

// EntryFill is the owned-versus-needed state of one catalog entry
type EntryFill struct {
	// Entry is the catalog entry
	Entry types.RecommendedItem

	// Actual is the summed quantity of matched inventory items
	Actual decimal.Decimal

	// Needed is the scaled target, ceiled for discrete units
	Needed decimal.Decimal
}

// Aggregator computes category totals from one snapshot. It is stateless
// between calls and safe for concurrent use.
type Aggregator struct {
	catalog types.Catalog
	matcher match.Matcher
	params  types.Params
}

// New creates an aggregator over a catalog
func New(catalog types.Catalog, matcher match.Matcher, params types.Params) *Aggregator {
	return &Aggregator{catalog: catalog, matcher: matcher, params: params}
}

// Fills computes per-entry fills for one category plus the per-item target
// map (inventory item id -> the need of the entry it matched). Freezer-gated
// entries are dropped before matching, so nothing counts toward them.
// Unknown or custom categories yield no fills, not an error.
func (a *Aggregator) Fills(id types.CategoryID, inv types.Inventory, h types.HouseholdConfig) ([]EntryFill, map[string]decimal.Decimal) {
	h, _ = h.Normalized()

	var entries []types.RecommendedItem
	for _, e := range a.catalog.ForCategory(id) {
		if scaling.Applicable(e, h) {
			entries = append(entries, e)
		}
	}

	fills := make([]EntryFill, len(entries))
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		fills[i] = EntryFill{
			Entry:  e,
			Actual: decimal.Zero,
			Needed: quantity.CeilForUnit(scaling.Quantity(e, h, a.params), e.Unit),
		}
		index[e.ID] = i
	}

	itemTargets := make(map[string]decimal.Decimal)
	for _, item := range inv.ForCategory(id) {
		entryID, ok := a.matcher.Match(entries, item)
		if !ok {
			itemTargets[item.ID] = decimal.Zero
			continue
		}
		i := index[entryID]
		fills[i].Actual = fills[i].Actual.Add(item.Quantity)
		itemTargets[item.ID] = fills[i].Needed
	}

	return fills, itemTargets
}

// Category aggregates one category into totals, shortages and (where
// applicable) calorie and water sub-totals.
func (a *Aggregator) Category(id types.CategoryID, inv types.Inventory, h types.HouseholdConfig) types.CategoryTotals {
	totals, _ := a.CategoryWithTargets(id, inv, h)
	return totals
}

// CategoryWithTargets is Category plus the per-item target map, so callers
// assembling a full category result match each snapshot exactly once.
func (a *Aggregator) CategoryWithTargets(id types.CategoryID, inv types.Inventory, h types.HouseholdConfig) (types.CategoryTotals, map[string]decimal.Decimal) {
	h, _ = h.Normalized()
	fills, itemTargets := a.Fills(id, inv, h)

	totals := types.CategoryTotals{
		CategoryID:  id,
		TotalActual: decimal.Zero,
		TotalNeeded: decimal.Zero,
		Units:       unitSummary(fills),
	}

	for _, f := range fills {
		totals.TotalActual = totals.TotalActual.Add(f.Actual)
		totals.TotalNeeded = totals.TotalNeeded.Add(f.Needed)

		missing := quantity.Missing(f.Actual, f.Needed)
		if missing.Sign() > 0 {
			totals.Shortages = append(totals.Shortages, types.Shortage{
				ItemID:   f.Entry.ID,
				ItemName: f.Entry.Name,
				Actual:   f.Actual,
				Needed:   f.Needed,
				Unit:     f.Entry.Unit,
				Missing:  missing,
			})
		}
	}

	// Largest gap first; stable sort keeps catalog order for equal gaps.
	sort.SliceStable(totals.Shortages, func(i, j int) bool {
		return totals.Shortages[i].Missing.GreaterThan(totals.Shortages[j].Missing)
	})

	switch id {
	case types.CategoryFood:
		totals.Calories = a.calorieTotals(inv.ForCategory(id), h)
	case types.CategoryWater:
		totals.Water = a.waterTotals(h)
		// The water completion is liter-denominated: owned liters against
		// drinking plus preparation water. Non-liter entries (purification
		// tablets) keep their per-entry shortages and statuses but never
		// stand in for stored water.
		totals.TotalActual = decimal.Zero
		for _, f := range fills {
			if f.Entry.Unit == types.UnitLiter {
				totals.TotalActual = totals.TotalActual.Add(f.Actual)
			}
		}
		totals.TotalNeeded = totals.Water.DrinkingNeeded.Add(totals.Water.PreparationNeeded)
	}

	return totals, itemTargets
}

// calorieTotals sums owned calories over the food items of the snapshot and
// derives the household requirement from the calorie person-equivalent.
func (a *Aggregator) calorieTotals(items types.Inventory, h types.HouseholdConfig) *types.CalorieTotals {
	actual := decimal.Zero
	for _, item := range items {
		if item.CaloriesPerUnit.Sign() > 0 {
			actual = actual.Add(item.Quantity.Mul(item.CaloriesPerUnit))
		}
	}

	needed := scaling.CaloriePersonEquivalent(h, a.params).
		Mul(decimal.NewFromInt(int64(h.SupplyDurationDays))).
		Mul(a.params.DailyCaloriesPerAdult)

	return &types.CalorieTotals{
		Actual:  actual,
		Needed:  needed,
		Missing: quantity.Missing(actual, needed),
	}
}

// waterTotals splits the water need into drinking water (person-equivalent x
// days x daily liters) and preparation water (reconstitution needs of the
// recommended food quantities).
func (a *Aggregator) waterTotals(h types.HouseholdConfig) *types.WaterTotals {
	drinking := scaling.PersonEquivalent(h, a.params).
		Mul(decimal.NewFromInt(int64(h.SupplyDurationDays))).
		Mul(a.params.DailyWaterLitersPerPerson)

	preparation := decimal.Zero
	for _, e := range a.catalog.ForCategory(types.CategoryFood) {
		if !scaling.Applicable(e, h) || e.WaterLitersPerUnit.Sign() <= 0 {
			continue
		}
		preparation = preparation.Add(scaling.Quantity(e, h, a.params).Mul(e.WaterLitersPerUnit))
	}

	return &types.WaterTotals{
		DrinkingNeeded:    drinking,
		PreparationNeeded: preparation,
	}
}

func unitSummary(fills []EntryFill) types.UnitSummary {
	if len(fills) == 0 {
		return types.NoUnits()
	}
	unit := fills[0].Entry.Unit
	for _, f := range fills[1:] {
		if f.Entry.Unit != unit {
			return types.Mixed()
		}
	}
	return types.Homogeneous(unit)
}
