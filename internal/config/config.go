// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"prepstock/core/types"
	"prepstock/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains the overridable engine constants
	Engine EngineConfig `json:"engine"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// CatalogOverlays lists HCL files merged over the built-in catalog
	CatalogOverlays []string `json:"catalog_overlays,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig mirrors types.Params with plain JSON-friendly numbers.
// Conversion to decimals happens once, at Params().
type EngineConfig struct {
	// AdultWeight is an adult's person-equivalent contribution
	AdultWeight float64 `json:"adult_weight"`

	// ChildWeight is a child's person-equivalent contribution
	ChildWeight float64 `json:"child_weight"`

	// ReferenceDays is the duration catalog base quantities cover
	ReferenceDays int `json:"reference_days"`

	// QuantityWarningRatio is the actual/target warning threshold
	QuantityWarningRatio float64 `json:"quantity_warning_ratio"`

	// ExpiryWarningDays is the expiration warning window
	ExpiryWarningDays int `json:"expiry_warning_days"`

	// CriticalBelowPercent is the lower completion band edge
	CriticalBelowPercent float64 `json:"critical_below_percent"`

	// OKFromPercent is the upper completion band edge
	OKFromPercent float64 `json:"ok_from_percent"`

	// DailyCaloriesPerAdult is kcal/day for one adult
	DailyCaloriesPerAdult float64 `json:"daily_calories_per_adult"`

	// ChildCalorieFraction scales the adult calorie requirement for children
	ChildCalorieFraction float64 `json:"child_calorie_fraction"`

	// DailyWaterLitersPerPerson is drinking water per person-equivalent/day
	DailyWaterLitersPerPerson float64 `json:"daily_water_liters_per_person"`
}

// Params converts the configured constants into engine parameters
func (c EngineConfig) Params() types.Params {
	return types.Params{
		AdultWeight:               decimal.NewFromFloat(c.AdultWeight),
		ChildWeight:               decimal.NewFromFloat(c.ChildWeight),
		ReferenceDays:             c.ReferenceDays,
		QuantityWarningRatio:      decimal.NewFromFloat(c.QuantityWarningRatio),
		ExpiryWarningDays:         c.ExpiryWarningDays,
		CriticalBelowPercent:      decimal.NewFromFloat(c.CriticalBelowPercent),
		OKFromPercent:             decimal.NewFromFloat(c.OKFromPercent),
		DailyCaloriesPerAdult:     decimal.NewFromFloat(c.DailyCaloriesPerAdult),
		ChildCalorieFraction:      decimal.NewFromFloat(c.ChildCalorieFraction),
		DailyWaterLitersPerPerson: decimal.NewFromFloat(c.DailyWaterLitersPerPerson),
	}
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowShortages lists per-entry shortages in CLI output
	ShowShortages bool `json:"show_shortages"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			AdultWeight:               1.0,
			ChildWeight:               0.75,
			ReferenceDays:             3,
			QuantityWarningRatio:      0.5,
			ExpiryWarningDays:         30,
			CriticalBelowPercent:      30,
			OKFromPercent:             70,
			DailyCaloriesPerAdult:     2000,
			ChildCalorieFraction:      0.75,
			DailyWaterLitersPerPerson: 3,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowShortages: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the conventional config location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".prepstock.json")
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
