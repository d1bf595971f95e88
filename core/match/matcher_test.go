package match

import (
	"testing"

	"prepstock/core/types"
)

var entries = []types.RecommendedItem{
	{ID: "drinking-water", Name: "Drinking water", Category: types.CategoryWater, Unit: types.UnitLiter},
	{ID: "water-purification-tablets", Name: "Water purification tablets", Category: types.CategoryWater, Unit: types.UnitTablet},
}

func TestDefaultMatch(t *testing.T) {
	m := NewDefault()

	tests := []struct {
		name    string
		item    types.InventoryItem
		wantID  string
		matched bool
	}{
		{
			"template id link",
			types.InventoryItem{Name: "Evian 6-pack", ProductTemplateID: "drinking-water"},
			"drinking-water", true,
		},
		{
			"item type link",
			types.InventoryItem{Name: "Old import", ItemType: "water-purification-tablets"},
			"water-purification-tablets", true,
		},
		{
			"name equals entry id",
			types.InventoryItem{Name: "drinking-water"},
			"drinking-water", true,
		},
		{
			"name equals entry name, case-insensitive",
			types.InventoryItem{Name: "  DRINKING WATER "},
			"drinking-water", true,
		},
		{
			"unit fallback when unambiguous",
			types.InventoryItem{Name: "Canister", Unit: types.UnitLiter},
			"drinking-water", true,
		},
		{
			"no link at all",
			types.InventoryItem{Name: "Mystery box", Unit: types.UnitPiece},
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := m.Match(entries, tt.item)
			if ok != tt.matched || id != tt.wantID {
				t.Errorf("Match = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.matched)
			}
		})
	}
}

// TestDefaultMatchAmbiguousUnit: two entries sharing a unit make the unit
// fallback ambiguous; the item must stay unmatched rather than guess.
func TestDefaultMatchAmbiguousUnit(t *testing.T) {
	twoLiterEntries := []types.RecommendedItem{
		{ID: "drinking-water", Unit: types.UnitLiter},
		{ID: "cooking-water", Unit: types.UnitLiter},
	}

	_, ok := NewDefault().Match(twoLiterEntries, types.InventoryItem{Name: "Canister", Unit: types.UnitLiter})
	if ok {
		t.Error("ambiguous unit fallback must not match")
	}
}

// TestDefaultMatchBrokenLinkStaysUnmatched: an explicit template or type
// reference that resolves to no entry is a broken link; the item must stay
// unmatched instead of falling through to the name or unit heuristics.
func TestDefaultMatchBrokenLinkStaysUnmatched(t *testing.T) {
	items := []types.InventoryItem{
		{Name: "Drinking water", ProductTemplateID: "retired-entry", Unit: types.UnitLiter},
		{Name: "Drinking water", ItemType: "retired-entry", Unit: types.UnitLiter},
	}
	for _, item := range items {
		if id, ok := NewDefault().Match(entries, item); ok {
			t.Errorf("broken link matched %q, want unmatched", id)
		}
	}
}

func TestDefaultMatchTemplateBeatsName(t *testing.T) {
	item := types.InventoryItem{
		Name:              "water-purification-tablets",
		ProductTemplateID: "drinking-water",
	}
	id, ok := NewDefault().Match(entries, item)
	if !ok || id != "drinking-water" {
		t.Errorf("Match = (%q, %v), want template link to win", id, ok)
	}
}
