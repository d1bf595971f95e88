package catalog

import (
	"fmt"

	"prepstock/core/types"
	"prepstock/internal/errors"
)

// Validate checks a catalog for definition mistakes: duplicate ids, missing
// names or units, non-positive base quantities, negative nutrition
// attributes. Returns all violations, not just the first.
func Validate(c types.Catalog) error {
	var problems []string
	seen := make(map[string]bool)

	for i, entry := range c {
		where := fmt.Sprintf("entry %d (%s)", i, entry.ID)

		if entry.ID == "" {
			problems = append(problems, fmt.Sprintf("entry %d: empty id", i))
		} else if seen[entry.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate id", where))
		}
		seen[entry.ID] = true

		if entry.Name == "" {
			problems = append(problems, fmt.Sprintf("%s: empty name", where))
		}
		if entry.Category == "" {
			problems = append(problems, fmt.Sprintf("%s: empty category", where))
		}
		if entry.Unit == "" {
			problems = append(problems, fmt.Sprintf("%s: empty unit", where))
		}
		if entry.BaseQuantity.Sign() <= 0 {
			problems = append(problems, fmt.Sprintf("%s: base quantity must be positive", where))
		}
		if entry.CaloriesPerUnit.Sign() < 0 {
			problems = append(problems, fmt.Sprintf("%s: negative calories per unit", where))
		}
		if entry.WaterLitersPerUnit.Sign() < 0 {
			problems = append(problems, fmt.Sprintf("%s: negative water liters per unit", where))
		}
	}

	if len(problems) > 0 {
		err := errors.Catalog("catalog validation failed")
		err.WithContext("problems", problems)
		return err
	}
	return nil
}
