package types

import "github.com/shopspring/decimal"

// RecommendedItem is a catalog entry: a static, product-shipped rule for how
// much of an item a household should own and how that amount scales.
// BaseQuantity is calibrated against the reference duration (3 days) for one
// person-equivalent.
type RecommendedItem struct {
	// ID is the stable catalog identifier, also the match key for linked
	// inventory items
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Category is the supply category the entry belongs to
	Category CategoryID `json:"category"`

	// BaseQuantity is the amount per unit of scale (reference duration,
	// one person-equivalent)
	BaseQuantity decimal.Decimal `json:"base_quantity"`

	// Unit is the measurement unit of BaseQuantity
	Unit Unit `json:"unit"`

	// ScaleWithPeople multiplies by the weighted person count
	ScaleWithPeople bool `json:"scale_with_people"`

	// ScaleWithDays multiplies by supplyDurationDays / reference days
	ScaleWithDays bool `json:"scale_with_days"`

	// ScaleWithPets multiplies by the pet count
	ScaleWithPets bool `json:"scale_with_pets"`

	// RequiresFreezer excludes the entry entirely for households without a
	// freezer (not applicable, not zero-need)
	RequiresFreezer bool `json:"requires_freezer"`

	// CaloriesPerUnit is kcal per unit, set on food entries
	CaloriesPerUnit decimal.Decimal `json:"calories_per_unit"`

	// WaterLitersPerUnit is preparation water in liters needed per unit for
	// foods that require reconstitution
	WaterLitersPerUnit decimal.Decimal `json:"water_liters_per_unit"`
}

// Catalog is an immutable set of recommended items, in shipped order. The
// order is load-bearing: it is the tie-break for equal shortages.
type Catalog []RecommendedItem

// ForCategory returns the entries belonging to a category, preserving
// catalog order
func (c Catalog) ForCategory(id CategoryID) Catalog {
	var out Catalog
	for _, entry := range c {
		if entry.Category == id {
			out = append(out, entry)
		}
	}
	return out
}

// ByID returns the entry with the given id
func (c Catalog) ByID(id string) (RecommendedItem, bool) {
	for _, entry := range c {
		if entry.ID == id {
			return entry, true
		}
	}
	return RecommendedItem{}, false
}

// Categories returns the distinct categories present in the catalog, in
// first-appearance order
func (c Catalog) Categories() []CategoryID {
	seen := make(map[CategoryID]bool)
	var out []CategoryID
	for _, entry := range c {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			out = append(out, entry.Category)
		}
	}
	return out
}
