// Package match decides which catalog entry an inventory item counts
// toward. Matching is a soft heuristic, not a foreign key, and silently
// changes shortage totals, so the strategy is an explicit, pluggable
// interface rather than ad hoc fallbacks.
package match

import (
	"strings"

	"prepstock/core/types"
)

// Matcher assigns an inventory item to at most one catalog entry out of the
// entries of the item's category. Implementations must be deterministic.
type Matcher interface {
	// Match returns the id of the catalog entry the item counts toward,
	// or false when the item is custom/unlinked. Entries are passed in
	// catalog order.
	Match(entries []types.RecommendedItem, item types.InventoryItem) (string, bool)
}

// Default is the shipped matching strategy, in three stages:
//
//  1. template link: ProductTemplateID or ItemType equals an entry id
//  2. name link: the normalized item name equals an entry id or name
//  3. unit fallback: exactly one entry in the category carries the item's
//     unit
//
// Stages 2 and 3 only apply to items without a template/type link; a link
// that resolves to no entry stays unmatched. Ambiguous items stay unmatched
// too; they still count toward item totals and statuses, just not toward
// catalog-driven needs.
type Default struct{}

// NewDefault returns the shipped matcher
func NewDefault() Default {
	return Default{}
}

// Match implements Matcher
func (Default) Match(entries []types.RecommendedItem, item types.InventoryItem) (string, bool) {
	for _, e := range entries {
		if item.ProductTemplateID != "" && item.ProductTemplateID == e.ID {
			return e.ID, true
		}
		if item.ItemType != "" && item.ItemType == e.ID {
			return e.ID, true
		}
	}
	// An explicit link that resolves to no entry is a broken reference, not
	// an invitation to guess; the heuristics below only apply to unlinked
	// items.
	if item.ProductTemplateID != "" || item.ItemType != "" {
		return "", false
	}

	name := normalize(item.Name)
	if name != "" {
		for _, e := range entries {
			if name == e.ID || name == normalize(e.Name) {
				return e.ID, true
			}
		}
	}

	var candidate string
	count := 0
	for _, e := range entries {
		if e.Unit == item.Unit {
			candidate = e.ID
			count++
		}
	}
	if count == 1 {
		return candidate, true
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
