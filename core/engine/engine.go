// Package engine orchestrates the calculation layers into whole-household
// reports. It owns no state beyond its wiring (catalog, matcher, params,
// clock); every report is a pure function of the snapshot it is given.
package engine

import (
	"time"

	"prepstock/core/clock"
	"prepstock/core/match"
	"prepstock/core/score"
	"prepstock/core/shortage"
	"prepstock/core/status"
	"prepstock/core/types"
)

// Engine computes derived preparedness state from household snapshots
type Engine struct {
	catalog types.Catalog
	matcher match.Matcher
	params  types.Params
	clock   clock.Clock
}

// Option configures an Engine
type Option func(*Engine)

// WithMatcher overrides the catalog-to-inventory matching strategy
func WithMatcher(m match.Matcher) Option {
	return func(e *Engine) { e.matcher = m }
}

// WithParams overrides the engine constants
func WithParams(p types.Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithClock injects the time source; reports capture it once per pass
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// New creates an engine over a catalog with default wiring
func New(catalog types.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		matcher: match.NewDefault(),
		params:  types.DefaultParams(),
		clock:   clock.System(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine was built over
func (e *Engine) Catalog() types.Catalog {
	return e.catalog
}

// Params returns the engine constants
func (e *Engine) Params() types.Params {
	return e.params
}

// Report computes the complete derived dashboard state for one snapshot.
// The clock is read exactly once so no category in a single report can
// disagree about "today".
func (e *Engine) Report(h types.HouseholdConfig, inv types.Inventory) types.HouseholdReport {
	now := e.clock()
	normalized, _ := h.Normalized()

	var results []types.CategoryResult
	for _, id := range e.categories(inv) {
		results = append(results, e.categoryAt(id, normalized, inv, now))
	}

	agg := shortage.New(e.catalog, e.matcher, e.params)
	s := score.Preparedness(agg, e.catalog, inv, normalized)

	return types.HouseholdReport{
		GeneratedAt: now,
		Household:   normalized,
		Categories:  results,
		Score:       s,
		Tier:        score.Tier(s),
	}
}

// Category computes the derived state of a single category
func (e *Engine) Category(id types.CategoryID, h types.HouseholdConfig, inv types.Inventory) types.CategoryResult {
	normalized, _ := h.Normalized()
	return e.categoryAt(id, normalized, inv, e.clock())
}

// Score computes the overall preparedness score for one snapshot
func (e *Engine) Score(h types.HouseholdConfig, inv types.Inventory) int {
	agg := shortage.New(e.catalog, e.matcher, e.params)
	return score.Preparedness(agg, e.catalog, inv, h)
}

func (e *Engine) categoryAt(id types.CategoryID, h types.HouseholdConfig, inv types.Inventory, now time.Time) types.CategoryResult {
	agg := shortage.New(e.catalog, e.matcher, e.params)
	totals, itemTargets := agg.CategoryWithTargets(id, inv, h)
	return status.Category(id, inv.ForCategory(id), totals, itemTargets, now, e.params)
}

// categories lists every category the report covers: the standard order
// first, then any extra catalog categories, then inventory-only custom
// categories in first-appearance order.
func (e *Engine) categories(inv types.Inventory) []types.CategoryID {
	seen := make(map[types.CategoryID]bool)
	var out []types.CategoryID

	add := func(id types.CategoryID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	catalogHas := make(map[types.CategoryID]bool)
	for _, id := range e.catalog.Categories() {
		catalogHas[id] = true
	}
	inventoryHas := make(map[types.CategoryID]bool)
	for _, item := range inv {
		inventoryHas[item.CategoryID] = true
	}

	for _, id := range types.StandardCategories() {
		if catalogHas[id] || inventoryHas[id] {
			add(id)
		}
	}
	for _, id := range e.catalog.Categories() {
		add(id)
	}
	for _, item := range inv {
		add(item.CategoryID)
	}
	return out
}
