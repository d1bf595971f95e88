package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shortage is the positive gap between target and owned quantity for one
// catalog entry
type Shortage struct {
	// ItemID is the catalog entry id
	ItemID string `json:"item_id"`

	// ItemName is the catalog entry display name
	ItemName string `json:"item_name"`

	// Actual is the owned quantity summed over matched inventory items
	Actual decimal.Decimal `json:"actual"`

	// Needed is the scaled target quantity
	Needed decimal.Decimal `json:"needed"`

	// Unit is the catalog entry unit
	Unit Unit `json:"unit"`

	// Missing is max(0, Needed - Actual), always positive in emitted records
	Missing decimal.Decimal `json:"missing"`
}

// CalorieTotals are the food-category calorie sub-totals
type CalorieTotals struct {
	Actual  decimal.Decimal `json:"actual"`
	Needed  decimal.Decimal `json:"needed"`
	Missing decimal.Decimal `json:"missing"`
}

// WaterTotals split the water-category need into its two additive parts
type WaterTotals struct {
	// DrinkingNeeded is person-equivalent x days x daily liters
	DrinkingNeeded decimal.Decimal `json:"drinking_needed"`

	// PreparationNeeded is water required to reconstitute the recommended
	// food quantities
	PreparationNeeded decimal.Decimal `json:"preparation_needed"`
}

// CategoryTotals is the aggregation result for one category
type CategoryTotals struct {
	CategoryID CategoryID `json:"category_id"`

	// Shortages lists unmet entries, largest gap first
	Shortages []Shortage `json:"shortages"`

	// TotalActual sums owned quantities over all catalog entries
	TotalActual decimal.Decimal `json:"total_actual"`

	// TotalNeeded sums target quantities over all catalog entries
	TotalNeeded decimal.Decimal `json:"total_needed"`

	// Units summarizes unit homogeneity across the category's entries
	Units UnitSummary `json:"units"`

	// Calories is set for the food category only
	Calories *CalorieTotals `json:"calories,omitempty"`

	// Water is set for the water category only
	Water *WaterTotals `json:"water,omitempty"`
}

// CategoryResult is the full derived state of one category
type CategoryResult struct {
	CategoryTotals

	// ItemCount is the number of inventory items filed under the category
	ItemCount int `json:"item_count"`

	// Status is the rolled-up category status
	Status ItemStatus `json:"status"`

	// CompletionPercent is actual/needed capped at 100
	CompletionPercent decimal.Decimal `json:"completion_percent"`

	// CriticalCount, WarningCount and OKCount tally per-item statuses and
	// always sum to ItemCount
	CriticalCount int `json:"critical_count"`
	WarningCount  int `json:"warning_count"`
	OKCount       int `json:"ok_count"`
}

// HouseholdReport is the complete derived dashboard state for one snapshot
type HouseholdReport struct {
	// GeneratedAt is the single clock value the whole pass used
	GeneratedAt time.Time `json:"generated_at"`

	// Household is the (normalized) configuration the report was computed
	// for
	Household HouseholdConfig `json:"household"`

	// Categories holds one result per category, in catalog order followed
	// by inventory-only categories
	Categories []CategoryResult `json:"categories"`

	// Score is the overall preparedness score, 0..100
	Score int `json:"score"`

	// Tier is the presentation label derived from Score
	Tier ScoreTier `json:"tier"`
}

// ScoreTier is the presentation label band for the preparedness score
type ScoreTier string

const (
	TierExcellent ScoreTier = "excellent"
	TierGood      ScoreTier = "good"
	TierNeedsWork ScoreTier = "needs_work"
)
