// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// ItemStatus is the three-level adequacy status of an item or category
type ItemStatus string

const (
	StatusOK       ItemStatus = "ok"
	StatusWarning  ItemStatus = "warning"
	StatusCritical ItemStatus = "critical"
)

// String returns the string representation of the status
func (s ItemStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known status
func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusOK, StatusWarning, StatusCritical:
		return true
	default:
		return false
	}
}

// CategoryID identifies a supply category
type CategoryID string

const (
	CategoryWater     CategoryID = "water"
	CategoryFood      CategoryID = "food"
	CategoryMedical   CategoryID = "medical"
	CategoryHygiene   CategoryID = "hygiene"
	CategoryPower     CategoryID = "power"
	CategoryTools     CategoryID = "tools"
	CategoryDocuments CategoryID = "documents"
	CategoryPets      CategoryID = "pets"
)

// String returns the string representation of the category id
func (c CategoryID) String() string {
	return string(c)
}

// IsStandard checks whether the category is one of the shipped categories.
// The engine tolerates unknown categories (they aggregate to empty results),
// so this is informational, not a validity gate.
func (c CategoryID) IsStandard() bool {
	switch c {
	case CategoryWater, CategoryFood, CategoryMedical, CategoryHygiene,
		CategoryPower, CategoryTools, CategoryDocuments, CategoryPets:
		return true
	default:
		return false
	}
}

// StandardCategories returns the shipped categories in display order
func StandardCategories() []CategoryID {
	return []CategoryID{
		CategoryWater,
		CategoryFood,
		CategoryMedical,
		CategoryHygiene,
		CategoryPower,
		CategoryTools,
		CategoryDocuments,
		CategoryPets,
	}
}

// Unit is the measurement unit of a quantity
type Unit string

const (
	UnitLiter        Unit = "l"
	UnitKilogram     Unit = "kg"
	UnitGram         Unit = "g"
	UnitPiece        Unit = "pcs"
	UnitCan          Unit = "cans"
	UnitPack         Unit = "packs"
	UnitTablet       Unit = "tablets"
	UnitRoll         Unit = "rolls"
	UnitWattHour     Unit = "wh"
	UnitMilliampHour Unit = "mah"
)

// String returns the string representation of the unit
func (u Unit) String() string {
	return string(u)
}

// Discrete reports whether the unit counts indivisible things. Needs in
// discrete units are ceiled before comparison so a shortage of "0.3 cans"
// is never reported.
func (u Unit) Discrete() bool {
	switch u {
	case UnitPiece, UnitCan, UnitPack, UnitTablet, UnitRoll:
		return true
	default:
		return false
	}
}

// UnitSummaryKind tags how the units of a category relate
type UnitSummaryKind string

const (
	// UnitNone means there were no catalog entries to derive a unit from
	UnitNone UnitSummaryKind = "none"

	// UnitHomogeneous means all entries share one unit
	UnitHomogeneous UnitSummaryKind = "homogeneous"

	// UnitMixed means the category mixes incompatible units; callers must
	// fall back to a count or percentage display
	UnitMixed UnitSummaryKind = "mixed"
)

// UnitSummary is the per-category unit verdict. It replaces a nullable
// "primary unit" so callers cannot forget to handle the mixed case.
type UnitSummary struct {
	Kind UnitSummaryKind `json:"kind"`
	Unit Unit            `json:"unit,omitempty"`
}

// Homogeneous builds a summary for a single shared unit
func Homogeneous(u Unit) UnitSummary {
	return UnitSummary{Kind: UnitHomogeneous, Unit: u}
}

// Mixed builds a summary for incompatible units
func Mixed() UnitSummary {
	return UnitSummary{Kind: UnitMixed}
}

// NoUnits builds a summary for an entry-less category
func NoUnits() UnitSummary {
	return UnitSummary{Kind: UnitNone}
}
