package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is one user-owned stock row. The engine only reads
// snapshots; creation and mutation belong to the inventory layer.
type InventoryItem struct {
	// ID identifies the item
	ID string `json:"id"`

	// Name is the user-facing name
	Name string `json:"name"`

	// CategoryID is the supply category the user filed the item under
	CategoryID CategoryID `json:"category_id"`

	// Quantity is the owned amount, never negative
	Quantity decimal.Decimal `json:"quantity"`

	// Unit is the measurement unit of Quantity
	Unit Unit `json:"unit"`

	// NeverExpires suppresses all expiration-based classification
	NeverExpires bool `json:"never_expires"`

	// ExpirationDate is the best-before date, date precision only
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`

	// CaloriesPerUnit is kcal per unit for food items
	CaloriesPerUnit decimal.Decimal `json:"calories_per_unit,omitempty"`

	// RequiresWaterLiters is preparation water per unit for dried foods
	RequiresWaterLiters decimal.Decimal `json:"requires_water_liters,omitempty"`

	// CapacityWh is stored energy for power items
	CapacityWh decimal.Decimal `json:"capacity_wh,omitempty"`

	// CapacityMah is stored charge for power items
	CapacityMah decimal.Decimal `json:"capacity_mah,omitempty"`

	// ProductTemplateID links the item to the catalog entry it was created
	// from; empty for custom items
	ProductTemplateID string `json:"product_template_id,omitempty"`

	// ItemType is a secondary catalog link used by imports that predate
	// template ids
	ItemType string `json:"item_type,omitempty"`
}

// Inventory is a snapshot of all tracked items
type Inventory []InventoryItem

// ForCategory returns the items filed under a category, preserving order
func (inv Inventory) ForCategory(id CategoryID) Inventory {
	var out Inventory
	for _, item := range inv {
		if item.CategoryID == id {
			out = append(out, item)
		}
	}
	return out
}
