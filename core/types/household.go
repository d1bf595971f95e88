package types

// HouseholdConfig describes the household the engine computes targets for.
// It is owned by the settings layer; the engine treats it as a read-only
// snapshot.
type HouseholdConfig struct {
	// Adults is the number of adults
	Adults int `json:"adults"`

	// Children is the number of children
	Children int `json:"children"`

	// Pets is the number of pets
	Pets int `json:"pets"`

	// SupplyDurationDays is how many days the stock should cover
	SupplyDurationDays int `json:"supply_duration_days"`

	// UseFreezer gates freezer-dependent catalog entries
	UseFreezer bool `json:"use_freezer"`
}

// Normalized returns a copy with all counts clamped to valid ranges and
// reports whether any clamping happened. A transient invalid snapshot
// (mid-edit form state) must not produce negative or zero targets that mask
// real shortages, so callers clamp instead of rejecting.
func (h HouseholdConfig) Normalized() (HouseholdConfig, bool) {
	clamped := false
	if h.Adults < 0 {
		h.Adults = 0
		clamped = true
	}
	if h.Children < 0 {
		h.Children = 0
		clamped = true
	}
	if h.Pets < 0 {
		h.Pets = 0
		clamped = true
	}
	if h.SupplyDurationDays < 1 {
		h.SupplyDurationDays = 1
		clamped = true
	}
	return h, clamped
}
