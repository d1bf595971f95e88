package types

import "github.com/shopspring/decimal"

// Params holds the tunable constants of the engine. Product logic never
// hard-codes these; callers start from DefaultParams and override.
type Params struct {
	// AdultWeight is an adult's contribution to the person-equivalent
	AdultWeight decimal.Decimal

	// ChildWeight is a child's contribution to the person-equivalent
	ChildWeight decimal.Decimal

	// ReferenceDays is the duration BaseQuantity is calibrated against
	ReferenceDays int

	// QuantityWarningRatio is the actual/target ratio below which a
	// non-expired item is a warning
	QuantityWarningRatio decimal.Decimal

	// ExpiryWarningDays is the look-ahead window for expiration warnings
	ExpiryWarningDays int

	// CriticalBelowPercent is the completion band below which a category
	// is critical
	CriticalBelowPercent decimal.Decimal

	// OKFromPercent is the completion band from which a category is ok
	OKFromPercent decimal.Decimal

	// DailyCaloriesPerAdult is the kcal/day requirement of one adult
	DailyCaloriesPerAdult decimal.Decimal

	// ChildCalorieFraction scales an adult's calorie requirement for a child
	ChildCalorieFraction decimal.Decimal

	// DailyWaterLitersPerPerson is drinking water per person-equivalent per
	// day
	DailyWaterLitersPerPerson decimal.Decimal
}

// DefaultParams returns the shipped engine constants
func DefaultParams() Params {
	return Params{
		AdultWeight:               decimal.NewFromInt(1),
		ChildWeight:               decimal.RequireFromString("0.75"),
		ReferenceDays:             3,
		QuantityWarningRatio:      decimal.RequireFromString("0.5"),
		CriticalBelowPercent:      decimal.NewFromInt(30),
		OKFromPercent:             decimal.NewFromInt(70),
		ExpiryWarningDays:         30,
		DailyCaloriesPerAdult:     decimal.NewFromInt(2000),
		ChildCalorieFraction:      decimal.RequireFromString("0.75"),
		DailyWaterLitersPerPerson: decimal.NewFromInt(3),
	}
}
