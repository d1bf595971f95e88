// Package cmd - catalog inspection command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prepstock/catalog"
	"prepstock/core/scaling"
	"prepstock/core/types"
	"prepstock/internal/config"
)

var (
	catAdults   int
	catChildren int
	catPets     int
	catDays     int
	catFreezer  bool
)

// catalogCmd lists the effective catalog with targets scaled to a household
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List recommended items and their targets for a household",
	Long: `List the effective catalog (built-ins plus overlays) with each entry's
target quantity scaled to the household given by flags. Freezer-gated
entries are omitted for households without a freezer.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().IntVar(&catAdults, "adults", 1, "number of adults")
	catalogCmd.Flags().IntVar(&catChildren, "children", 0, "number of children")
	catalogCmd.Flags().IntVar(&catPets, "pets", 0, "number of pets")
	catalogCmd.Flags().IntVar(&catDays, "days", 3, "supply duration in days")
	catalogCmd.Flags().BoolVar(&catFreezer, "freezer", false, "household uses a freezer")
	catalogCmd.Flags().StringArrayVar(&overlayFiles, "overlay", nil, "catalog overlay HCL file (repeatable)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	overlays := append([]string{}, cfg.CatalogOverlays...)
	overlays = append(overlays, overlayFiles...)

	cat, err := catalog.Effective(overlays)
	if err != nil {
		return err
	}

	household := types.HouseholdConfig{
		Adults:             catAdults,
		Children:           catChildren,
		Pets:               catPets,
		SupplyDurationDays: catDays,
		UseFreezer:         catFreezer,
	}
	params := cfg.Engine.Params()

	var current types.CategoryID
	for _, entry := range cat {
		if !scaling.Applicable(entry, household) {
			continue
		}
		if entry.Category != current {
			current = entry.Category
			fmt.Printf("\n%s\n", current)
		}
		fmt.Printf("  %-28s %8s %s\n",
			entry.Name,
			scaling.RecommendedTarget(entry, household, params),
			entry.Unit)
	}
	return nil
}
