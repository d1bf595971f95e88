package shortage

import (
	"testing"

	"github.com/shopspring/decimal"

	"prepstock/core/match"
	"prepstock/core/quantity"
	"prepstock/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testCatalog = types.Catalog{
	{
		ID: "drinking-water", Name: "Drinking water", Category: types.CategoryWater,
		BaseQuantity: d("9"), Unit: types.UnitLiter,
		ScaleWithPeople: true, ScaleWithDays: true,
	},
	{
		ID: "water-purification-tablets", Name: "Water purification tablets", Category: types.CategoryWater,
		BaseQuantity: d("10"), Unit: types.UnitTablet,
		ScaleWithPeople: true, ScaleWithDays: true,
	},
	{
		ID: "rice", Name: "Rice", Category: types.CategoryFood,
		BaseQuantity: d("0.6"), Unit: types.UnitKilogram,
		ScaleWithPeople: true, ScaleWithDays: true,
		CaloriesPerUnit: d("3600"), WaterLitersPerUnit: d("1.5"),
	},
	{
		ID: "canned-vegetables", Name: "Canned vegetables", Category: types.CategoryFood,
		BaseQuantity: d("3"), Unit: types.UnitCan,
		ScaleWithPeople: true, ScaleWithDays: true,
		CaloriesPerUnit: d("250"),
	},
	{
		ID: "frozen-vegetables", Name: "Frozen vegetables", Category: types.CategoryFood,
		BaseQuantity: d("0.5"), Unit: types.UnitKilogram,
		ScaleWithPeople: true, ScaleWithDays: true,
		RequiresFreezer: true, CaloriesPerUnit: d("350"),
	},
}

func newAggregator() *Aggregator {
	return New(testCatalog, match.NewDefault(), types.DefaultParams())
}

func oneAdult() types.HouseholdConfig {
	return types.HouseholdConfig{Adults: 1, SupplyDurationDays: 3}
}

func item(id, template string, category types.CategoryID, qty string, unit types.Unit) types.InventoryItem {
	return types.InventoryItem{
		ID:                id,
		Name:              id,
		CategoryID:        category,
		Quantity:          d(qty),
		Unit:              unit,
		NeverExpires:      true,
		ProductTemplateID: template,
	}
}

func TestCategoryShortagesSortedDescending(t *testing.T) {
	inv := types.Inventory{
		item("w1", "drinking-water", types.CategoryWater, "4", types.UnitLiter),
		// no tablets at all: missing 10, the larger gap
	}

	totals := newAggregator().Category(types.CategoryWater, inv, oneAdult())

	if len(totals.Shortages) != 2 {
		t.Fatalf("got %d shortages, want 2", len(totals.Shortages))
	}
	if totals.Shortages[0].ItemID != "water-purification-tablets" {
		t.Errorf("largest gap first: got %s", totals.Shortages[0].ItemID)
	}
	if totals.Shortages[0].Missing.String() != "10" {
		t.Errorf("tablet shortage = %s, want 10", totals.Shortages[0].Missing)
	}
	if totals.Shortages[1].Missing.String() != "5" {
		t.Errorf("water shortage = %s, want 5", totals.Shortages[1].Missing)
	}
	for _, s := range totals.Shortages {
		if s.Missing.Sign() <= 0 {
			t.Errorf("shortage %s has non-positive missing %s", s.ItemID, s.Missing)
		}
	}
}

// TestCategoryShortagesTieBreak: equal gaps keep catalog order.
func TestCategoryShortagesTieBreak(t *testing.T) {
	tied := types.Catalog{
		{ID: "b-entry", Name: "B", Category: types.CategoryTools, BaseQuantity: d("5"), Unit: types.UnitPiece},
		{ID: "a-entry", Name: "A", Category: types.CategoryTools, BaseQuantity: d("5"), Unit: types.UnitPiece},
	}
	agg := New(tied, match.NewDefault(), types.DefaultParams())

	totals := agg.Category(types.CategoryTools, nil, oneAdult())

	if len(totals.Shortages) != 2 {
		t.Fatalf("got %d shortages, want 2", len(totals.Shortages))
	}
	if totals.Shortages[0].ItemID != "b-entry" || totals.Shortages[1].ItemID != "a-entry" {
		t.Errorf("tie-break lost catalog order: %s, %s",
			totals.Shortages[0].ItemID, totals.Shortages[1].ItemID)
	}
}

func TestCategoryNoShortageWhenStocked(t *testing.T) {
	inv := types.Inventory{
		item("w1", "drinking-water", types.CategoryWater, "20", types.UnitLiter),
		item("t1", "water-purification-tablets", types.CategoryWater, "10", types.UnitTablet),
	}

	totals := newAggregator().Category(types.CategoryWater, inv, oneAdult())
	if len(totals.Shortages) != 0 {
		t.Errorf("fully stocked category reported %d shortages", len(totals.Shortages))
	}
}

// TestDiscreteUnitCeiling: a child-only household needs 2.25 cans raw; the
// comparison must use 3 whole cans, never a fractional shortage.
func TestDiscreteUnitCeiling(t *testing.T) {
	h := types.HouseholdConfig{Children: 1, SupplyDurationDays: 3}

	fills, _ := newAggregator().Fills(types.CategoryFood, nil, h)
	for _, f := range fills {
		if f.Entry.ID == "canned-vegetables" {
			if f.Needed.String() != "3" {
				t.Errorf("canned vegetables need = %s, want ceiled 3", f.Needed)
			}
			return
		}
	}
	t.Fatal("canned-vegetables entry missing from fills")
}

func TestFreezerGatedEntriesExcluded(t *testing.T) {
	h := oneAdult()

	fills, _ := newAggregator().Fills(types.CategoryFood, nil, h)
	for _, f := range fills {
		if f.Entry.ID == "frozen-vegetables" {
			t.Fatal("freezer-gated entry present without a freezer")
		}
	}

	h.UseFreezer = true
	fills, _ = newAggregator().Fills(types.CategoryFood, nil, h)
	found := false
	for _, f := range fills {
		if f.Entry.ID == "frozen-vegetables" {
			found = true
		}
	}
	if !found {
		t.Error("freezer-gated entry missing despite freezer")
	}
}

func TestUnitSummary(t *testing.T) {
	water := newAggregator().Category(types.CategoryWater, nil, oneAdult())
	if water.Units.Kind != types.UnitMixed {
		t.Errorf("water units = %s, want mixed (liters + tablets)", water.Units.Kind)
	}

	single := types.Catalog{
		{ID: "a", Name: "a", Category: types.CategoryWater, BaseQuantity: d("1"), Unit: types.UnitLiter},
		{ID: "b", Name: "b", Category: types.CategoryWater, BaseQuantity: d("2"), Unit: types.UnitLiter},
	}
	homogeneous := New(single, match.NewDefault(), types.DefaultParams()).
		Category(types.CategoryWater, nil, oneAdult())
	if homogeneous.Units.Kind != types.UnitHomogeneous || homogeneous.Units.Unit != types.UnitLiter {
		t.Errorf("units = %+v, want homogeneous liters", homogeneous.Units)
	}

	empty := newAggregator().Category(types.CategoryID("custom"), nil, oneAdult())
	if empty.Units.Kind != types.UnitNone {
		t.Errorf("custom category units = %s, want none", empty.Units.Kind)
	}
}

// TestCustomCategoryIsEmptyNotError: unknown categories return zero totals
// and no shortages.
func TestCustomCategoryIsEmptyNotError(t *testing.T) {
	totals := newAggregator().Category(types.CategoryID("ham-radio"), nil, oneAdult())

	if !totals.TotalActual.IsZero() || !totals.TotalNeeded.IsZero() {
		t.Errorf("custom category totals = %s/%s, want 0/0", totals.TotalActual, totals.TotalNeeded)
	}
	if len(totals.Shortages) != 0 {
		t.Errorf("custom category has %d shortages, want none", len(totals.Shortages))
	}
}

func TestUnmatchedItemsExcludedFromTotals(t *testing.T) {
	inv := types.Inventory{
		item("w1", "drinking-water", types.CategoryWater, "9", types.UnitLiter),
		item("mystery", "", types.CategoryWater, "50", types.UnitPiece), // no match stage applies
	}

	totals, targets := newAggregator().CategoryWithTargets(types.CategoryWater, inv, oneAdult())

	if totals.TotalActual.String() != "9" {
		t.Errorf("TotalActual = %s, want 9 (unmatched item must not count)", totals.TotalActual)
	}
	if !targets["mystery"].IsZero() {
		t.Errorf("unmatched item target = %s, want 0", targets["mystery"])
	}
}

func TestCalorieTotals(t *testing.T) {
	inv := types.Inventory{
		item("r1", "rice", types.CategoryFood, "1", types.UnitKilogram),
	}
	inv[0].CaloriesPerUnit = d("3600")

	totals := newAggregator().Category(types.CategoryFood, inv, oneAdult())

	if totals.Calories == nil {
		t.Fatal("food category must carry calorie totals")
	}
	if totals.Calories.Actual.String() != "3600" {
		t.Errorf("actual calories = %s, want 3600", totals.Calories.Actual)
	}
	// 1 adult x 3 days x 2000 kcal
	if totals.Calories.Needed.String() != "6000" {
		t.Errorf("needed calories = %s, want 6000", totals.Calories.Needed)
	}
	if totals.Calories.Missing.String() != "2400" {
		t.Errorf("missing calories = %s, want 2400", totals.Calories.Missing)
	}
}

func TestCalorieNeedWeightsChildren(t *testing.T) {
	h := types.HouseholdConfig{Adults: 2, Children: 2, SupplyDurationDays: 3}

	totals := newAggregator().Category(types.CategoryFood, nil, h)

	// (2 + 2*0.75) x 3 days x 2000 kcal = 21000
	if totals.Calories.Needed.String() != "21000" {
		t.Errorf("needed calories = %s, want 21000", totals.Calories.Needed)
	}
}

func TestWaterTotalsSplit(t *testing.T) {
	totals := newAggregator().Category(types.CategoryWater, nil, oneAdult())

	if totals.Water == nil {
		t.Fatal("water category must carry the water split")
	}
	// 1 person-equivalent x 3 days x 3 l
	if totals.Water.DrinkingNeeded.String() != "9" {
		t.Errorf("drinking water = %s, want 9", totals.Water.DrinkingNeeded)
	}
	// rice: 0.6 kg x 1.5 l/kg
	if totals.Water.PreparationNeeded.String() != "0.9" {
		t.Errorf("preparation water = %s, want 0.9", totals.Water.PreparationNeeded)
	}
	// the two parts are additive into the category need
	want := totals.Water.DrinkingNeeded.Add(totals.Water.PreparationNeeded)
	if !totals.TotalNeeded.Equal(want) {
		t.Errorf("TotalNeeded = %s, want %s", totals.TotalNeeded, want)
	}
}

// TestWaterTotalsLiterDenominated: purification tablets fill their own
// entry but must never stand in for stored liters in the category
// completion.
func TestWaterTotalsLiterDenominated(t *testing.T) {
	inv := types.Inventory{
		item("t1", "water-purification-tablets", types.CategoryWater, "10", types.UnitTablet),
	}

	totals, targets := newAggregator().CategoryWithTargets(types.CategoryWater, inv, oneAdult())

	if !totals.TotalActual.IsZero() {
		t.Errorf("TotalActual = %s, want 0 (tablets are not liters)", totals.TotalActual)
	}
	// drinking 9 + preparation 0.9
	if totals.TotalNeeded.String() != "9.9" {
		t.Errorf("TotalNeeded = %s, want 9.9", totals.TotalNeeded)
	}
	if quantity.Percent(totals.TotalActual, totals.TotalNeeded).Sign() != 0 {
		t.Error("completion must be 0% with no stored water")
	}

	// the tablets still count at entry level
	if targets["t1"].String() != "10" {
		t.Errorf("tablet target = %s, want 10", targets["t1"])
	}
	if len(totals.Shortages) != 1 || totals.Shortages[0].ItemID != "drinking-water" {
		t.Fatalf("shortages = %+v, want only drinking-water", totals.Shortages)
	}
}

// TestIdempotence: the same snapshot aggregates to identical results on
// every call.
func TestIdempotence(t *testing.T) {
	inv := types.Inventory{
		item("w1", "drinking-water", types.CategoryWater, "4", types.UnitLiter),
	}
	agg := newAggregator()

	first := agg.Category(types.CategoryWater, inv, oneAdult())
	second := agg.Category(types.CategoryWater, inv, oneAdult())

	if first.TotalActual.String() != second.TotalActual.String() ||
		first.TotalNeeded.String() != second.TotalNeeded.String() ||
		len(first.Shortages) != len(second.Shortages) {
		t.Error("repeated aggregation diverged")
	}
	for i := range first.Shortages {
		if first.Shortages[i].Missing.String() != second.Shortages[i].Missing.String() {
			t.Errorf("shortage %d diverged", i)
		}
	}
}
