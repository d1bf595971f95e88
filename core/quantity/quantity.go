// Package quantity provides deterministic quantity arithmetic.
// All engine math goes through shopspring/decimal; float64 appears only at
// ingestion and presentation boundaries. Identical snapshots must produce
// bit-identical results.
package quantity

import (
	"github.com/shopspring/decimal"

	"prepstock/core/types"
)

var hundred = decimal.NewFromInt(100)

// Percent returns actual/needed as a percentage clamped to [0, 100].
// A non-positive need reads as fully satisfied, never as a division error:
// an entry the household no longer needs is not infinitely short.
func Percent(actual, needed decimal.Decimal) decimal.Decimal {
	if needed.Sign() <= 0 {
		return hundred
	}
	pct := actual.Div(needed).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.Sign() < 0 {
		return decimal.Zero
	}
	return pct
}

// CeilForUnit rounds a need up to a whole number when the unit counts
// indivisible things, so comparisons never report fractional cans or pieces.
// Continuous units pass through untouched.
func CeilForUnit(q decimal.Decimal, u types.Unit) decimal.Decimal {
	if u.Discrete() {
		return q.Ceil()
	}
	return q
}

// Missing returns max(0, needed - actual)
func Missing(actual, needed decimal.Decimal) decimal.Decimal {
	m := needed.Sub(actual)
	if m.Sign() < 0 {
		return decimal.Zero
	}
	return m
}
