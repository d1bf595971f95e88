// Package catalog ships the authoritative recommendation table: how much of
// which item a household should own per category, calibrated to 3 days for
// one person-equivalent. The engine treats this as an immutable input;
// households can extend or override it with HCL overlay files.
package catalog

import (
	"github.com/shopspring/decimal"

	"prepstock/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Standard returns a fresh copy of the built-in catalog. Quantities follow
// common civil-protection 3-day checklists.
func Standard() types.Catalog {
	return types.Catalog{
		// Water
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

		// Food
		{
			ID: "rice", Name: "Rice", Category: types.CategoryFood,
			BaseQuantity: d("0.6"), Unit: types.UnitKilogram,
			ScaleWithPeople: true, ScaleWithDays: true,
			CaloriesPerUnit: d("3600"), WaterLitersPerUnit: d("1.5"),
		},
		{
			ID: "pasta", Name: "Pasta", Category: types.CategoryFood,
			BaseQuantity: d("0.6"), Unit: types.UnitKilogram,
			ScaleWithPeople: true, ScaleWithDays: true,
			CaloriesPerUnit: d("3500"), WaterLitersPerUnit: d("1"),
		},
		{
			ID: "canned-vegetables", Name: "Canned vegetables", Category: types.CategoryFood,
			BaseQuantity: d("3"), Unit: types.UnitCan,
			ScaleWithPeople: true, ScaleWithDays: true,
			CaloriesPerUnit: d("250"),
		},
		{
			ID: "canned-stew", Name: "Canned stew", Category: types.CategoryFood,
			BaseQuantity: d("2"), Unit: types.UnitCan,
			ScaleWithPeople: true, ScaleWithDays: true,
			CaloriesPerUnit: d("450"),
		},
		{
			ID: "crispbread", Name: "Crispbread", Category: types.CategoryFood,
			BaseQuantity: d("1"), Unit: types.UnitPack,
			ScaleWithPeople: true, ScaleWithDays: true,
			CaloriesPerUnit: d("1300"),
		},
		{
			ID: "dried-fruit", Name: "Dried fruit and nuts", Category: types.CategoryFood,
			BaseQuantity: d("0.3"), Unit: types.UnitKilogram,
			ScaleWithPeople: true, ScaleWithDays: true,
			CaloriesPerUnit: d("2800"),
		},
		{
			ID: "frozen-vegetables", Name: "Frozen vegetables", Category: types.CategoryFood,
			BaseQuantity: d("0.5"), Unit: types.UnitKilogram,
			ScaleWithPeople: true, ScaleWithDays: true,
			RequiresFreezer: true, CaloriesPerUnit: d("350"),
		},

		// Medical
		{
			ID: "first-aid-kit", Name: "First aid kit", Category: types.CategoryMedical,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},
		{
			ID: "pain-relievers", Name: "Pain relievers", Category: types.CategoryMedical,
			BaseQuantity: d("1"), Unit: types.UnitPack,
			ScaleWithPeople: true,
		},
		{
			ID: "disinfectant", Name: "Disinfectant", Category: types.CategoryMedical,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},

		// Hygiene
		{
			ID: "toilet-paper", Name: "Toilet paper", Category: types.CategoryHygiene,
			BaseQuantity: d("2"), Unit: types.UnitRoll,
			ScaleWithPeople: true, ScaleWithDays: true,
		},
		{
			ID: "soap", Name: "Soap", Category: types.CategoryHygiene,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
			ScaleWithPeople: true,
		},
		{
			ID: "garbage-bags", Name: "Garbage bags", Category: types.CategoryHygiene,
			BaseQuantity: d("1"), Unit: types.UnitRoll,
		},

		// Power
		{
			ID: "flashlight", Name: "Flashlight", Category: types.CategoryPower,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},
		{
			ID: "batteries-aa", Name: "AA batteries", Category: types.CategoryPower,
			BaseQuantity: d("4"), Unit: types.UnitPiece,
			ScaleWithPeople: true,
		},
		{
			ID: "power-bank", Name: "Power bank", Category: types.CategoryPower,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},
		{
			ID: "candles", Name: "Candles", Category: types.CategoryPower,
			BaseQuantity: d("3"), Unit: types.UnitPiece,
			ScaleWithDays: true,
		},
		{
			ID: "matches", Name: "Matches or lighter", Category: types.CategoryPower,
			BaseQuantity: d("1"), Unit: types.UnitPack,
		},

		// Tools
		{
			ID: "camping-stove", Name: "Camping stove", Category: types.CategoryTools,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},
		{
			ID: "gas-cartridge", Name: "Gas cartridges", Category: types.CategoryTools,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
			ScaleWithDays: true,
		},
		{
			ID: "battery-radio", Name: "Battery-powered radio", Category: types.CategoryTools,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},
		{
			ID: "multi-tool", Name: "Multi-tool", Category: types.CategoryTools,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},

		// Documents
		{
			ID: "document-folder", Name: "Document folder with copies", Category: types.CategoryDocuments,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},
		{
			ID: "emergency-contacts", Name: "Emergency contact list", Category: types.CategoryDocuments,
			BaseQuantity: d("1"), Unit: types.UnitPiece,
		},

		// Pets
		{
			ID: "pet-food", Name: "Pet food", Category: types.CategoryPets,
			BaseQuantity: d("0.9"), Unit: types.UnitKilogram,
			ScaleWithPets: true, ScaleWithDays: true,
		},
		{
			ID: "pet-water", Name: "Pet drinking water", Category: types.CategoryPets,
			BaseQuantity: d("6"), Unit: types.UnitLiter,
			ScaleWithPets: true, ScaleWithDays: true,
		},
	}
}
