// Package status classifies inventory items and whole categories into the
// three-level adequacy scale. Expiration dominates quantity: a fully
// stocked item that expired yesterday is still critical.
package status

import (
	"time"

	"github.com/shopspring/decimal"

	"prepstock/core/types"
)

// dateOnly truncates a timestamp to its calendar date in UTC. All expiry
// math is midnight-to-midnight so an item expiring today is not prematurely
// flagged expired by a timestamp delta.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntilExpiration returns the whole calendar days until the expiration
// date. The second return is false for never-expiring items and items
// without a date. Today is 0, yesterday is -1.
func DaysUntilExpiration(expiration *time.Time, neverExpires bool, now time.Time) (int, bool) {
	if neverExpires || expiration == nil {
		return 0, false
	}
	diff := dateOnly(*expiration).Sub(dateOnly(now))
	return int(diff.Hours() / 24), true
}

// IsExpired reports whether the expiration date is strictly before today
func IsExpired(expiration *time.Time, neverExpires bool, now time.Time) bool {
	days, ok := DaysUntilExpiration(expiration, neverExpires, now)
	return ok && days < 0
}

// Classify derives the status of one item from its quantity, its target and
// its expiration data. Precedence:
//
//  1. expired -> critical
//  2. expiring within the warning window -> warning, regardless of quantity
//  3. zero quantity -> critical
//  4. below the warning ratio of the target -> warning
//  5. otherwise ok
func Classify(qty, target decimal.Decimal, expiration *time.Time, neverExpires bool, now time.Time, p types.Params) types.ItemStatus {
	if days, ok := DaysUntilExpiration(expiration, neverExpires, now); ok {
		if days < 0 {
			return types.StatusCritical
		}
		if days <= p.ExpiryWarningDays {
			return types.StatusWarning
		}
	}
	if qty.Sign() <= 0 {
		return types.StatusCritical
	}
	if target.Sign() > 0 && qty.LessThan(target.Mul(p.QuantityWarningRatio)) {
		return types.StatusWarning
	}
	return types.StatusOK
}

// ForItem classifies an inventory item against its catalog target. Items
// with no catalog target (target zero) can only be warned or criticized for
// expiry or emptiness, never for quantity ratio.
func ForItem(item types.InventoryItem, target decimal.Decimal, now time.Time, p types.Params) types.ItemStatus {
	return Classify(item.Quantity, target, item.ExpirationDate, item.NeverExpires, now, p)
}
