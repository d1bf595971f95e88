// Package scaling converts household composition and supply duration into
// target quantities for catalog entries. All functions are pure and clamp
// invalid household input defensively.
package scaling

import (
	"github.com/shopspring/decimal"

	"prepstock/core/types"
)

// PersonEquivalent returns the weighted person count of a household:
// adults at full weight, children at the configured fraction of an adult.
func PersonEquivalent(h types.HouseholdConfig, p types.Params) decimal.Decimal {
	h, _ = h.Normalized()
	adults := decimal.NewFromInt(int64(h.Adults)).Mul(p.AdultWeight)
	children := decimal.NewFromInt(int64(h.Children)).Mul(p.ChildWeight)
	return adults.Add(children)
}

// CaloriePersonEquivalent weights children by the calorie fraction instead
// of the general child weight; the two default to the same value but are
// independently tunable.
func CaloriePersonEquivalent(h types.HouseholdConfig, p types.Params) decimal.Decimal {
	h, _ = h.Normalized()
	adults := decimal.NewFromInt(int64(h.Adults))
	children := decimal.NewFromInt(int64(h.Children)).Mul(p.ChildCalorieFraction)
	return adults.Add(children)
}

// Applicable reports whether a catalog entry applies to the household at
// all. Freezer-gated entries are excluded entirely when the household has no
// freezer: not applicable, not zero-need.
func Applicable(entry types.RecommendedItem, h types.HouseholdConfig) bool {
	if entry.RequiresFreezer && !h.UseFreezer {
		return false
	}
	return true
}

// Quantity returns the exact scaled target for an entry. No rounding happens
// here; user-facing integers come from RecommendedTarget and discrete-unit
// needs are ceiled by the aggregator.
//
// BaseQuantity is calibrated to the reference duration for one
// person-equivalent, so the duration factor is days/referenceDays rather
// than the raw day count. People and pet factors are independent: an entry
// scales with whichever flags it sets, multiplicatively when it sets both.
func Quantity(entry types.RecommendedItem, h types.HouseholdConfig, p types.Params) decimal.Decimal {
	h, _ = h.Normalized()

	q := entry.BaseQuantity
	if entry.ScaleWithPeople {
		q = q.Mul(PersonEquivalent(h, p))
	}
	if entry.ScaleWithPets {
		q = q.Mul(decimal.NewFromInt(int64(h.Pets)))
	}
	if entry.ScaleWithDays {
		ref := p.ReferenceDays
		if ref < 1 {
			ref = 1
		}
		// Multiply before dividing so whole-number results stay exact.
		q = q.Mul(decimal.NewFromInt(int64(h.SupplyDurationDays))).
			Div(decimal.NewFromInt(int64(ref)))
	}
	return q
}

// RecommendedTarget is the user-facing integer target: the exact scaled
// quantity ceiled to the next whole unit (9 liters stays 9, 31.5 becomes
// 32).
func RecommendedTarget(entry types.RecommendedItem, h types.HouseholdConfig, p types.Params) decimal.Decimal {
	return Quantity(entry, h, p).Ceil()
}
