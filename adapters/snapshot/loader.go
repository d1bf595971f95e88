// Package snapshot ingests household and inventory snapshots from YAML (or
// JSON, which YAML subsumes) files for the CLI. Ingestion is the boundary
// where invalid input gets clamped and logged; the engine itself stays
// silent.
package snapshot

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"prepstock/core/types"
	"prepstock/internal/errors"
	"prepstock/internal/logging"
)

// Snapshot is one ingested household + inventory state
type Snapshot struct {
	Household types.HouseholdConfig
	Items     types.Inventory
}

type fileSnapshot struct {
	Household fileHousehold `yaml:"household"`
	Items     []fileItem    `yaml:"items"`
}

type fileHousehold struct {
	Adults             int  `yaml:"adults"`
	Children           int  `yaml:"children"`
	Pets               int  `yaml:"pets"`
	SupplyDurationDays int  `yaml:"supply_duration_days"`
	UseFreezer         bool `yaml:"use_freezer"`
}

type fileItem struct {
	ID                  string  `yaml:"id"`
	Name                string  `yaml:"name"`
	Category            string  `yaml:"category"`
	Quantity            float64 `yaml:"quantity"`
	Unit                string  `yaml:"unit"`
	NeverExpires        bool    `yaml:"never_expires"`
	Expires             string  `yaml:"expires"`
	CaloriesPerUnit     float64 `yaml:"calories_per_unit"`
	RequiresWaterLiters float64 `yaml:"requires_water_liters"`
	CapacityWh          float64 `yaml:"capacity_wh"`
	CapacityMah         float64 `yaml:"capacity_mah"`
	Template            string  `yaml:"template"`
	ItemType            string  `yaml:"item_type"`
}

// expiration dates are date precision only
const dateLayout = "2006-01-02"

// Load reads a snapshot file
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Snapshot("reading snapshot file", err).WithContext("path", path)
	}
	return Parse(data)
}

// Parse decodes snapshot bytes
func Parse(data []byte) (*Snapshot, error) {
	var raw fileSnapshot
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Snapshot("decoding snapshot", err)
	}

	household := types.HouseholdConfig{
		Adults:             raw.Household.Adults,
		Children:           raw.Household.Children,
		Pets:               raw.Household.Pets,
		SupplyDurationDays: raw.Household.SupplyDurationDays,
		UseFreezer:         raw.Household.UseFreezer,
	}
	if normalized, clamped := household.Normalized(); clamped {
		logging.Warn("household snapshot contained invalid counts, clamped",
			zap.Any("original", household))
		household = normalized
	}

	items := make(types.Inventory, 0, len(raw.Items))
	for i, f := range raw.Items {
		item, err := convertItem(f)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeSnapshot, err, "item %d (%s)", i, f.Name)
		}
		items = append(items, item)
	}

	return &Snapshot{Household: household, Items: items}, nil
}

func convertItem(f fileItem) (types.InventoryItem, error) {
	item := types.InventoryItem{
		ID:                  f.ID,
		Name:                f.Name,
		CategoryID:          types.CategoryID(f.Category),
		Quantity:            decimal.NewFromFloat(f.Quantity),
		Unit:                types.Unit(f.Unit),
		NeverExpires:        f.NeverExpires,
		CaloriesPerUnit:     decimal.NewFromFloat(f.CaloriesPerUnit),
		RequiresWaterLiters: decimal.NewFromFloat(f.RequiresWaterLiters),
		CapacityWh:          decimal.NewFromFloat(f.CapacityWh),
		CapacityMah:         decimal.NewFromFloat(f.CapacityMah),
		ProductTemplateID:   f.Template,
		ItemType:            f.ItemType,
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if item.Quantity.Sign() < 0 {
		logging.Warn("negative quantity clamped to zero",
			zap.String("item", item.Name))
		item.Quantity = decimal.Zero
	}

	if f.Expires != "" {
		t, err := time.Parse(dateLayout, f.Expires)
		if err != nil {
			return item, err
		}
		item.ExpirationDate = &t
	}

	return item, nil
}
